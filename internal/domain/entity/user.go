package entity

import "time"

// User representa um usuário do sistema. Usuários são provisionados via cmd/seed
// (não existe rota de cadastro) e nunca são alterados ou removidos pela aplicação.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca a senha em claro
	FullName     string
	CreatedAt    time.Time
}
