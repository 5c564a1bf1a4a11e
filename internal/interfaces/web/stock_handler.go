package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"autopecas-web/internal/application/catalog"
	"autopecas-web/internal/application/dto"
	"autopecas-web/internal/application/stock"
	"autopecas-web/internal/domain"
	"autopecas-web/pkg/logger"
)

// StockHandler rotas de gestão de estoque (grupo protegido).
type StockHandler struct {
	sessions  *session.Store
	stockUC   *stock.UseCase
	catalogUC *catalog.UseCase
	log       *logger.Logger
}

// NewStockHandler constrói o handler.
func NewStockHandler(sessions *session.Store, stockUC *stock.UseCase, catalogUC *catalog.UseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{sessions: sessions, stockUC: stockUC, catalogUC: catalogUC, log: log}
}

// Page exibe a situação do estoque e as 10 movimentações mais recentes.
func (h *StockHandler) Page(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	parts, errParts := h.catalogUC.List("")
	movements, errMovs := h.stockUC.RecentMovements(10)
	if errParts != nil || errMovs != nil {
		h.log.Error().AnErr("parts", errParts).AnErr("movements", errMovs).Msg("carga da tela de estoque")
		flash(sess, "error", "Erro ao carregar dados de estoque.")
	}
	return renderPage(c, sess, "estoque", fiber.Map{
		"Parts":     parts,
		"Movements": movements,
	})
}

// RegisterMovement registra uma movimentação de estoque e informa o resultado:
// sucesso simples ou alerta quando o novo estoque fica abaixo do mínimo.
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	var form dto.MovementForm
	if err := c.BodyParser(&form); err != nil {
		return flashAndRedirect(c, sess, "error", "Dados do formulário inválidos.", "/estoque")
	}
	userID, _ := sess.Get(sessionUserIDKey).(string)

	result, err := h.stockUC.RegisterMovement(c.UserContext(), userID, form)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			return flashAndRedirect(c, sess, "error", vErr.Message, "/estoque")
		case errors.Is(err, domain.ErrNotFound):
			return flashAndRedirect(c, sess, "error", "Autopeça não encontrada!", "/estoque")
		case errors.Is(err, domain.ErrInsufficientStock):
			return flashAndRedirect(c, sess, "error", "Estoque insuficiente para esta movimentação!", "/estoque")
		default:
			h.log.Error().Err(err).Msg("registro de movimentação")
			return flashAndRedirect(c, sess, "error", "Erro ao registrar movimentação.", "/estoque")
		}
	}

	if result.BelowMinimum {
		msg := fmt.Sprintf("ALERTA: Estoque da peça %q está abaixo do mínimo! Estoque atual: %d, Mínimo: %d",
			result.PartName, result.NewStock, result.MinStock)
		return flashAndRedirect(c, sess, "warning", msg, "/estoque")
	}
	return flashAndRedirect(c, sess, "success", "Movimentação registrada com sucesso!", "/estoque")
}
