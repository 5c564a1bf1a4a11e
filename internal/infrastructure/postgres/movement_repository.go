package postgres

import (
	"context"
	"fmt"

	"autopecas-web/internal/domain/entity"
	"autopecas-web/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL (usável
// com pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste uma movimentação. Registros são imutáveis: não existe
// update nem delete correspondente.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, user_id, part_id, moved_at, quantity, direction)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.UserID, movement.PartID, movement.MovedAt,
		movement.Quantity, movement.Direction,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListRecent devolve as movimentações mais recentes com nome da peça e do
// usuário resolvidos por join.
func (r *MovementRepo) ListRecent(limit int) ([]*entity.MovementWithDetails, error) {
	query := `
		SELECT m.id, m.user_id, m.part_id, m.moved_at, m.quantity, m.direction,
		       p.name, u.full_name
		FROM movements m
		JOIN parts p ON p.id = m.part_id
		JOIN users u ON u.id = m.user_id
		ORDER BY m.moved_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementWithDetails
	for rows.Next() {
		var m entity.MovementWithDetails
		if err := rows.Scan(&m.ID, &m.UserID, &m.PartID, &m.MovedAt, &m.Quantity,
			&m.Direction, &m.PartName, &m.UserName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
