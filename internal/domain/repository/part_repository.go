package repository

import "autopecas-web/internal/domain/entity"

// PartRepository porta de persistência para autopeças.
// Os métodos de leitura devolvem (nil, nil) quando o registro não existe.
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id string) (*entity.Part, error)
	// GetByIDForUpdate lê a peça bloqueando a linha (SELECT FOR UPDATE).
	// Só tem efeito quando o repositório está atado a uma transação.
	GetByIDForUpdate(id string) (*entity.Part, error)
	// List devolve todas as peças ordenadas por nome. Um termo não vazio filtra
	// por substring em nome ou número de série.
	List(search string) ([]*entity.Part, error)
	// Update sobrescreve todos os campos editáveis da peça (full replace).
	Update(part *entity.Part) error
	// UpdateStock grava apenas o campo de estoque.
	UpdateStock(id string, stock int) error
	// Delete remove a peça. Devolve domain.ErrPartInUse quando há movimentações
	// vinculadas (violação de integridade referencial).
	Delete(id string) error
}
