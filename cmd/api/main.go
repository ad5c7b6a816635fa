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

	"github.com/avasquez/biblioteca-api/internal/application/catalogo"
	"github.com/avasquez/biblioteca-api/internal/application/circulacion"
	"github.com/avasquez/biblioteca-api/internal/application/usecase"
	infraexport "github.com/avasquez/biblioteca-api/internal/infrastructure/export"
	infrapdf "github.com/avasquez/biblioteca-api/internal/infrastructure/pdf"
	"github.com/avasquez/biblioteca-api/internal/infrastructure/postgres"
	httpRouter "github.com/avasquez/biblioteca-api/internal/interfaces/http"
	"github.com/avasquez/biblioteca-api/pkg/config"
	"github.com/avasquez/biblioteca-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	libroRepo := postgres.NewLibroRepository(pool)
	editorialRepo := postgres.NewEditorialRepository(pool)
	autorRepo := postgres.NewAutorRepository(pool)
	ejemplarRepo := postgres.NewEjemplarRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	tipoDocRepo := postgres.NewTipoDocumentoRepository(pool)
	prestamoRepo := postgres.NewPrestamoRepository(pool)
	reservaRepo := postgres.NewReservaRepository(pool)
	multaRepo := postgres.NewMultaRepository(pool)
	tarifaRepo := postgres.NewTarifaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	dcExporter := infraexport.NewDublinCoreExporter()
	comprobanteGen := infrapdf.NewMarotoComprobanteGenerator()

	catalogoUC := catalogo.NewCatalogoUseCase(
		libroRepo, editorialRepo, autorRepo, ejemplarRepo, prestamoRepo, dcExporter,
	)
	usuarioUC := usecase.NewUsuarioUseCase(
		usuarioRepo, tipoDocRepo, prestamoRepo, multaRepo, ejemplarRepo, libroRepo,
	)
	prestamoUC := circulacion.NewPrestamoUseCase(
		txRunner, prestamoRepo, ejemplarRepo, usuarioRepo, libroRepo,
		tarifaRepo, comprobanteGen, cfg.App.Name,
	)
	reservaUC := circulacion.NewReservaUseCase(reservaRepo, usuarioRepo, ejemplarRepo, libroRepo)
	multaUC := circulacion.NewMultaUseCase(multaRepo, prestamoRepo, ejemplarRepo, libroRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Biblioteca API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogoUC: catalogoUC,
		UsuarioUC:  usuarioUC,
		PrestamoUC: prestamoUC,
		ReservaUC:  reservaUC,
		MultaUC:    multaUC,
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
