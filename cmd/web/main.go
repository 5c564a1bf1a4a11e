package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"autopecas-web/internal/application/auth"
	"autopecas-web/internal/application/catalog"
	"autopecas-web/internal/application/stock"
	"autopecas-web/internal/infrastructure/postgres"
	"autopecas-web/internal/infrastructure/redisstore"
	"autopecas-web/internal/interfaces/web"
	"autopecas-web/pkg/config"
	"autopecas-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("criação do esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.BcryptVerifier{})
	catalogUC := catalog.NewUseCase(partRepo)
	stockUC := stock.NewUseCase(txRunner, movRepo)

	// Sessões em memória por padrão; Redis quando SESSION_STORE=redis, para
	// os logins sobreviverem a restart.
	var sessionStorage fiber.Storage
	if cfg.Session.Store == "redis" {
		store, err := redisstore.New(ctx, cfg.Session)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao Redis de sessões")
		}
		defer store.Close()
		sessionStorage = store
	}
	sessions := web.NewSessionStore(cfg.Session, sessionStorage)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        web.NewViewEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	web.Router(app, web.RouterDeps{
		Sessions:  sessions,
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		StockUC:   stockUC,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
