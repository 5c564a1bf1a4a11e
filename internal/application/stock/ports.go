package stock

import (
	"context"

	"autopecas-web/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação de banco, com repositórios
// atados a essa transação. O insert da movimentação e o update do estoque
// precisam persistir atomicamente: ou ambos, ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		partRepo repository.PartRepository,
	) error) error
}
