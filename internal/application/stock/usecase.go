package stock

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"autopecas-web/internal/application/dto"
	"autopecas-web/internal/domain"
	"autopecas-web/internal/domain/entity"
	"autopecas-web/internal/domain/repository"
)

// Formatos de data aceitos no formulário de movimentação: o do input
// datetime-local e o formato com segundos do sistema legado.
var movedAtLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04:05"}

// UseCase registra movimentações de estoque de forma transacional e monta os
// dados da tela de estoque (peças + histórico recente).
type UseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewUseCase constrói o caso de uso de estoque.
func NewUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo}
}

// Result resultado de uma movimentação aplicada, para o handler decidir entre
// mensagem de sucesso e alerta de estoque mínimo.
type Result struct {
	PartName     string
	NewStock     int
	MinStock     int
	BelowMinimum bool
}

// RegisterMovement valida o formulário e aplica a movimentação dentro de uma
// única transação: lê a peça com bloqueio de linha (SELECT FOR UPDATE),
// calcula o novo estoque, grava o registro imutável de movimentação e
// atualiza o estoque da peça. Saída que deixaria o estoque negativo aborta
// com domain.ErrInsufficientStock antes de qualquer escrita.
func (uc *UseCase) RegisterMovement(ctx context.Context, userID string, form dto.MovementForm) (*Result, error) {
	direction, ok := entity.NormalizeDirection(form.Tipo)
	if !ok {
		return nil, domain.NewValidationError("Tipo de movimentação inválido. Use ENTRADA ou SAIDA.")
	}
	quantity, err := strconv.Atoi(form.Quantidade)
	if err != nil || quantity <= 0 {
		return nil, domain.NewValidationError("Quantidade inválida. Informe um número inteiro maior que zero.")
	}
	movedAt, vErr := parseMovedAt(form.Data)
	if vErr != nil {
		return nil, vErr
	}

	var result *Result
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		partRepo repository.PartRepository,
	) error {
		part, err := partRepo.GetByIDForUpdate(form.PecaID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}

		newStock := part.Stock + quantity
		if direction == entity.DirectionSaida {
			newStock = part.Stock - quantity
			if newStock < 0 {
				return domain.ErrInsufficientStock
			}
		}

		mov := &entity.Movement{
			ID:        uuid.New().String(),
			UserID:    userID,
			PartID:    part.ID,
			MovedAt:   movedAt,
			Quantity:  quantity,
			Direction: direction,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := partRepo.UpdateStock(part.ID, newStock); err != nil {
			return err
		}

		result = &Result{
			PartName:     part.Name,
			NewStock:     newStock,
			MinStock:     part.MinStock,
			BelowMinimum: newStock < part.MinStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecentMovements devolve as últimas movimentações com nomes resolvidos, para
// o histórico da tela de estoque.
func (uc *UseCase) RecentMovements(limit int) ([]*entity.MovementWithDetails, error) {
	if limit <= 0 {
		limit = 10
	}
	return uc.movRepo.ListRecent(limit)
}

func parseMovedAt(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	for _, layout := range movedAtLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.NewValidationError("Data da movimentação inválida.")
}
