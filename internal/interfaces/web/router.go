package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"autopecas-web/internal/application/auth"
	"autopecas-web/internal/application/catalog"
	"autopecas-web/internal/application/stock"
	"autopecas-web/pkg/logger"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	Sessions  *session.Store
	AuthUC    *auth.UseCase
	CatalogUC *catalog.UseCase
	StockUC   *stock.UseCase
	Log       *logger.Logger
}

// Router registra as rotas da aplicação. As rotas públicas vêm antes do grupo
// protegido; o guard de sessão vale para todo o restante.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.Sessions, deps.AuthUC, deps.Log)
	app.Get("/", authHandler.Index)
	app.Get("/login", authHandler.ShowLogin)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Rotas protegidas (exigem usuário logado na sessão)
	protected := app.Group("/", RequireLogin(deps.Sessions))
	protected.Get("/dashboard", authHandler.Dashboard)

	partHandler := NewPartHandler(deps.Sessions, deps.CatalogUC, deps.Log)
	protected.Get("/autopecas", partHandler.List)
	protected.Post("/autopecas/add", partHandler.Create)
	protected.Get("/autopecas/edit/:id", partHandler.EditForm)
	protected.Post("/autopecas/update/:id", partHandler.Update)
	protected.Get("/autopecas/delete/:id", partHandler.Delete)

	stockHandler := NewStockHandler(deps.Sessions, deps.StockUC, deps.CatalogUC, deps.Log)
	protected.Get("/estoque", stockHandler.Page)
	protected.Post("/movimentacao", stockHandler.RegisterMovement)
}
