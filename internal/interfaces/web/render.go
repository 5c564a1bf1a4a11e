package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// renderPage renderiza a view com as mensagens flash pendentes e o nome do
// usuário logado, salvando a sessão (o consumo dos flashes precisa persistir).
func renderPage(c *fiber.Ctx, sess *session.Session, view string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["Flashes"] = consumeFlashes(sess)
	if name, ok := sess.Get(sessionUserNameKey).(string); ok {
		bind["UserName"] = name
	}
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Render(view, bind)
}

// flashAndRedirect grava uma mensagem flash e redireciona (padrão
// POST-Redirect-GET de todas as operações de escrita).
func flashAndRedirect(c *fiber.Ctx, sess *session.Session, category, text, target string) error {
	flash(sess, category, text)
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect(target, fiber.StatusFound)
}
