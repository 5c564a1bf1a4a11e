package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"autopecas-web/internal/domain"
	"autopecas-web/internal/domain/entity"
	"autopecas-web/internal/domain/repository"
	"autopecas-web/pkg/textnorm"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, name, serial_number, stock, min_stock, price, description, compatibility, created_at, updated_at`

// PartRepo implementação de PartRepository sobre PostgreSQL (usável com pool ou tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository constrói o adaptador de persistência de autopeças.
// Passar pool ou tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste uma nova autopeça, mantendo a coluna de busca normalizada.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (id, name, serial_number, stock, min_stock, price, description, compatibility, search_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.SerialNumber, part.Stock, part.MinStock, part.Price,
		part.Description, part.Compatibility, searchText(part), part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtém uma peça por ID.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	return r.get(`SELECT `+partColumns+` FROM parts WHERE id = $1`, id)
}

// GetByIDForUpdate obtém a peça bloqueando a linha (SELECT FOR UPDATE), para
// o cálculo de estoque não correr contra outra movimentação simultânea. Só
// tem efeito dentro de uma transação.
func (r *PartRepo) GetByIDForUpdate(id string) (*entity.Part, error) {
	return r.get(`SELECT `+partColumns+` FROM parts WHERE id = $1 FOR UPDATE`, id)
}

func (r *PartRepo) get(query, id string) (*entity.Part, error) {
	var p entity.Part
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.SerialNumber, &p.Stock, &p.MinStock, &p.Price,
		&p.Description, &p.Compatibility, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		// Id malformado (não uuid) conta como inexistente, não como erro
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return &p, nil
}

// List devolve as peças ordenadas por nome. Um termo não vazio (já normalizado
// pelo caso de uso) filtra por substring na coluna de busca, que concatena
// nome e número de série sem acentos.
func (r *PartRepo) List(search string) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts ORDER BY name`
	args := []any{}
	if search != "" {
		query = `SELECT ` + partColumns + ` FROM parts WHERE search_text LIKE '%' || $1 || '%' ORDER BY name`
		args = append(args, search)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.SerialNumber, &p.Stock, &p.MinStock, &p.Price,
			&p.Description, &p.Compatibility, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update sobrescreve todos os campos editáveis da peça (full replace).
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts
		SET name = $2, serial_number = $3, stock = $4, min_stock = $5, price = $6,
		    description = $7, compatibility = $8, search_text = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.SerialNumber, part.Stock, part.MinStock, part.Price,
		part.Description, part.Compatibility, searchText(part), part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// UpdateStock grava apenas o estoque (usado pelo motor de movimentação).
func (r *PartRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE parts SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update part stock: %w", err)
	}
	return nil
}

// Delete remove a peça por ID. Movimentações vinculadas -> domain.ErrPartInUse;
// id malformado ou inexistente é um no-op.
func (r *PartRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPartInUse
		}
		if isInvalidTextRepresentation(err) {
			return nil
		}
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

func searchText(part *entity.Part) string {
	return textnorm.Fold(part.Name + " " + part.SerialNumber)
}
