package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// RequireLogin é o guard de sessão aplicado ao grupo de rotas protegidas:
// sem marcador de usuário logado, redireciona para /login sem efeitos
// colaterais.
func RequireLogin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if sess.Get(sessionUserIDKey) == nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}
