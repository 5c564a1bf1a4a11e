package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"autopecas-web/internal/application/catalog"
	"autopecas-web/internal/application/dto"
	"autopecas-web/internal/domain"
	"autopecas-web/pkg/logger"
)

// PartHandler rotas do catálogo de autopeças (grupo protegido).
type PartHandler struct {
	sessions  *session.Store
	catalogUC *catalog.UseCase
	log       *logger.Logger
}

// NewPartHandler constrói o handler.
func NewPartHandler(sessions *session.Store, catalogUC *catalog.UseCase, log *logger.Logger) *PartHandler {
	return &PartHandler{sessions: sessions, catalogUC: catalogUC, log: log}
}

// List lista as autopeças, com busca opcional por nome ou número de série.
// Falha de banco não derruba a página: exibe a lista vazia com o erro em flash.
func (h *PartHandler) List(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	search := c.Query("search")
	parts, err := h.catalogUC.List(search)
	if err != nil {
		h.log.Error().Err(err).Msg("busca de autopeças")
		flash(sess, "error", "Erro ao buscar autopeças.")
		parts = nil
	}
	return renderPage(c, sess, "autopecas", fiber.Map{
		"Parts":  parts,
		"Search": search,
	})
}

// Create cadastra uma nova autopeça a partir do formulário da listagem.
// Toda saída (validação, erro de banco, sucesso) volta para /autopecas.
func (h *PartHandler) Create(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	var form dto.PartForm
	if err := c.BodyParser(&form); err != nil {
		return flashAndRedirect(c, sess, "error", "Dados do formulário inválidos.", "/autopecas")
	}

	if err := h.catalogUC.Create(form); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return flashAndRedirect(c, sess, "error", vErr.Message, "/autopecas")
		}
		h.log.Error().Err(err).Msg("cadastro de autopeça")
		return flashAndRedirect(c, sess, "error", "Erro ao adicionar autopeça.", "/autopecas")
	}
	return flashAndRedirect(c, sess, "success", "Autopeça adicionada com sucesso!", "/autopecas")
}

// EditForm exibe o formulário de edição pré-preenchido.
func (h *PartHandler) EditForm(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	part, err := h.catalogUC.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return flashAndRedirect(c, sess, "error", "Autopeça não encontrada!", "/autopecas")
		}
		h.log.Error().Err(err).Msg("leitura de autopeça para edição")
		return flashAndRedirect(c, sess, "error", "Erro ao buscar autopeça.", "/autopecas")
	}
	return renderPage(c, sess, "edit_autopeca", fiber.Map{"Part": part})
}

// Update aplica a edição. Falhas de validação voltam para o formulário de
// edição (preservando o id); o restante volta para a listagem.
func (h *PartHandler) Update(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	var form dto.PartForm
	if err := c.BodyParser(&form); err != nil {
		return flashAndRedirect(c, sess, "error", "Dados do formulário inválidos.", "/autopecas/edit/"+id)
	}

	if err := h.catalogUC.Update(id, form); err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			return flashAndRedirect(c, sess, "error", vErr.Message, "/autopecas/edit/"+id)
		case errors.Is(err, domain.ErrNotFound):
			return flashAndRedirect(c, sess, "error", "Autopeça não encontrada!", "/autopecas")
		default:
			h.log.Error().Err(err).Msg("atualização de autopeça")
			return flashAndRedirect(c, sess, "error", "Erro ao atualizar autopeça.", "/autopecas")
		}
	}
	return flashAndRedirect(c, sess, "success", "Autopeça atualizada com sucesso!", "/autopecas")
}

// Delete exclui a peça. Histórico de movimentações impede a exclusão; id
// inexistente é um no-op reportado como sucesso (comportamento idempotente).
func (h *PartHandler) Delete(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	if err := h.catalogUC.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrPartInUse) {
			return flashAndRedirect(c, sess, "error",
				"Não é possível excluir: a autopeça possui movimentações registradas.", "/autopecas")
		}
		h.log.Error().Err(err).Msg("exclusão de autopeça")
		return flashAndRedirect(c, sess, "error", "Erro ao excluir autopeça.", "/autopecas")
	}
	return flashAndRedirect(c, sess, "success", "Autopeça excluída com sucesso!", "/autopecas")
}
