package auth

import (
	"autopecas-web/internal/domain"
	"autopecas-web/internal/domain/entity"
	"autopecas-web/internal/domain/repository"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier abstrai a verificação de credenciais. O algoritmo concreto
// fica atrás da interface; senhas nunca são comparadas em texto claro.
type PasswordVerifier interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// BcryptVerifier implementação padrão de PasswordVerifier com bcrypt.
type BcryptVerifier struct{}

// Hash gera o hash bcrypt da senha com o custo padrão.
func (BcryptVerifier) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara a senha submetida com o hash armazenado.
func (BcryptVerifier) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// UseCase caso de uso de autenticação: login por email e senha.
type UseCase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, verifier PasswordVerifier) *UseCase {
	return &UseCase{userRepo: userRepo, verifier: verifier}
}

// Login verifica email e senha e devolve o usuário autenticado.
// Email desconhecido e senha incorreta produzem o mesmo ErrInvalidCredentials,
// para não revelar quais emails existem.
func (uc *UseCase) Login(email, senha string) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.verifier.Verify(user.PasswordHash, senha) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
