package repository

import "autopecas-web/internal/domain/entity"

// UserRepository porta de persistência para usuários.
// Os métodos de leitura devolvem (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
