package repository

import "autopecas-web/internal/domain/entity"

// MovementRepository porta de persistência para movimentações de estoque.
// Movimentações são append-only: não há update nem delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListRecent devolve as movimentações mais recentes (ordem decrescente de
	// data), com nome da peça e do usuário resolvidos.
	ListRecent(limit int) ([]*entity.MovementWithDetails, error)
}
