package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appbilling "github.com/billflow/billflow-api/internal/application/billing"
	appcontact "github.com/billflow/billflow-api/internal/application/contact"
	appcontent "github.com/billflow/billflow-api/internal/application/content"
	"github.com/billflow/billflow-api/internal/domain/repository"
	"github.com/billflow/billflow-api/internal/infrastructure/email"
	"github.com/billflow/billflow-api/internal/infrastructure/memory"
	infrapdf "github.com/billflow/billflow-api/internal/infrastructure/pdf"
	"github.com/billflow/billflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/billflow/billflow-api/internal/interfaces/http"
	"github.com/billflow/billflow-api/pkg/config"
	"github.com/billflow/billflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()

	// Marketing content is embedded seed data regardless of storage mode.
	store, err := memory.NewStore()
	if err != nil {
		log.Fatal().Err(err).Msg("load seed data")
	}

	var clientRepo repository.ClientRepository
	var invoiceRepo repository.InvoiceRepository
	if cfg.DB.Configured() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to PostgreSQL")
		}
		defer pool.Close()
		clientRepo = postgres.NewClientRepository(pool)
		invoiceRepo = postgres.NewInvoiceRepository(pool)
		log.Info().Msg("using PostgreSQL storage")
	} else {
		clientRepo = store.Clients()
		invoiceRepo = store.Invoices()
		log.Info().Msg("no database configured, using in-memory storage with seed data")
	}

	mailer := email.NewResendMailer(email.Config{
		APIKey:      cfg.Email.ResendAPIKey,
		FromAddress: cfg.Email.FromAddress,
		SupportTo:   cfg.Email.SupportTo,
	})
	if !mailer.IsEnabled() {
		log.Warn().Msg("RESEND_API_KEY not set, outbound email is disabled")
	}
	renderer := infrapdf.NewMarotoInvoiceRenderer()

	clientUC := appbilling.NewClientUseCase(clientRepo)
	invoiceUC := appbilling.NewInvoiceUseCase(invoiceRepo, clientRepo, renderer, mailer)
	pdfUC := appbilling.NewPDFUseCase(invoiceRepo, clientRepo, renderer)
	contactUC := appcontact.NewUseCase(mailer)
	contentUC := appcontent.NewUseCase(store.Content())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BillFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:  clientUC,
		InvoiceUC: invoiceUC,
		PDFUC:     pdfUC,
		ContactUC: contactUC,
		ContentUC: contentUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
