package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"autopecas-web/internal/application/auth"
	"autopecas-web/internal/application/dto"
	"autopecas-web/internal/domain"
	"autopecas-web/pkg/logger"
)

// AuthHandler rotas de autenticação e páginas de entrada.
type AuthHandler struct {
	sessions *session.Store
	authUC   *auth.UseCase
	log      *logger.Logger
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(sessions *session.Store, authUC *auth.UseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, authUC: authUC, log: log}
}

// Index redireciona para o dashboard quando logado, senão para o login.
func (h *AuthHandler) Index(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err == nil && sess.Get(sessionUserIDKey) != nil {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// ShowLogin exibe o formulário de login.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	return renderPage(c, sess, "login", nil)
}

// Login processa as credenciais submetidas. Sucesso estabelece a identidade na
// sessão e redireciona para o dashboard; falha reexibe o login com a mensagem.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		flash(sess, "error", "Credenciais inválidas. Tente novamente.")
		return renderPage(c, sess, "login", nil)
	}

	user, err := h.authUC.Login(form.Email, form.Senha)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			flash(sess, "error", "Credenciais inválidas. Tente novamente.")
		} else {
			h.log.Error().Err(err).Msg("verificação de credenciais")
			flash(sess, "error", "Erro ao verificar credenciais. Tente novamente.")
		}
		return renderPage(c, sess, "login", nil)
	}

	// Identidade nova, id de sessão novo: o id anterior deixa de valer
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionUserIDKey, user.ID)
	sess.Set(sessionUserNameKey, user.FullName)
	if err := sess.Save(); err != nil {
		return err
	}
	h.log.Info().Str("user_id", user.ID).Msg("login efetuado")
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout limpa toda a sessão e volta ao login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// Dashboard página inicial após o login.
func (h *AuthHandler) Dashboard(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	return renderPage(c, sess, "dashboard", nil)
}
