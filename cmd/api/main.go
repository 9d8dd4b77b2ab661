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
	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	infracache "github.com/jhoicas/estoque-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewStockItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplyRepo := postgres.NewSupplyRepository(pool)
	todoRepo := postgres.NewTodoRepository(pool)
	roomRepo := postgres.NewRoomRepository(pool)
	professionalRepo := postgres.NewProfessionalRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché Redis de listados: opcional, REDIS_ADDR vacío lo deshabilita.
	var itemCache stock.ItemListCache
	if cfg.Redis.Addr != "" {
		redisCache, err := infracache.NewRedisItemCache(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		itemCache = redisCache
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché Redis habilitado")
	}

	stockUC := stock.NewStockUseCase(itemRepo, movementRepo, itemCache)
	recordMovementUC := stock.NewRecordMovementUseCase(txRunner, itemCache)
	pdfGenerator := infrapdf.NewMarotoHistoryGenerator()
	historyPDFUC := stock.NewHistoryPDFUseCase(itemRepo, movementRepo, pdfGenerator)

	productUC := usecase.NewProductUseCase(productRepo)
	supplyUC := usecase.NewSupplyUseCase(supplyRepo)
	todoUC := usecase.NewTodoUseCase(todoRepo)
	roomUC := usecase.NewRoomUseCase(roomRepo)
	professionalUC := usecase.NewProfessionalUseCase(professionalRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:        stockUC,
		RecordMovement: recordMovementUC,
		HistoryPDF:     historyPDFUC,
		ProductUC:      productUC,
		SupplyUC:       supplyUC,
		TodoUC:         todoUC,
		RoomUC:         roomUC,
		ProfessionalUC: professionalUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
