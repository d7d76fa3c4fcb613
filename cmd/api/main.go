package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/messenger-api/internal/application/widget"
	"github.com/jhoicas/messenger-api/internal/infrastructure/appapi"
	"github.com/jhoicas/messenger-api/internal/infrastructure/geo"
	"github.com/jhoicas/messenger-api/internal/infrastructure/mongodb"
	httpRouter "github.com/jhoicas/messenger-api/internal/interfaces/http"
	"github.com/jhoicas/messenger-api/pkg/config"
	"github.com/jhoicas/messenger-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongodb.Connect(connectCtx, cfg.Mongo)
	cancelConnect()
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := client.Database(cfg.Mongo.Database)
	customerRepo := mongodb.NewCustomerRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)

	// Notificador de actividad: fire-and-forget hacia el API principal.
	// Sin URL configurada se inyecta el no-op (mismo camino de código).
	var notifier widget.ActivityNotifier = widget.NoopNotifier{}
	if cfg.AppAPI.URL != "" {
		notifier = appapi.New(cfg.AppAPI.URL, time.Duration(cfg.AppAPI.TimeoutSeconds)*time.Second, log)
	}

	geoClient := geo.New(geo.Mode(cfg.Geo.Mode), cfg.Geo.BaseURL, time.Duration(cfg.Geo.TimeoutSeconds)*time.Second)

	customerUC := widget.NewCustomerUseCase(customerRepo, notifier)
	companyUC := widget.NewCompanyUseCase(companyRepo, customerRepo, notifier)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		CompanyUC:  companyUC,
		Geo:        geoClient,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
