package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC        *stock.StockUseCase
	RecordMovement *stock.RecordMovementUseCase
	HistoryPDF     *stock.HistoryPDFUseCase
	ProductUC      *usecase.ProductUseCase
	SupplyUC       *usecase.SupplyUseCase
	TodoUC         *usecase.TodoUseCase
	RoomUC         *usecase.RoomUseCase
	ProfessionalUC *usecase.ProfessionalUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stock items + ledger de movimientos (protegido)
	items := protected.Group("/stock/items")
	stockHandler := NewStockHandler(deps.StockUC, deps.RecordMovement, deps.HistoryPDF)
	items.Post("/", stockHandler.Create)
	items.Get("/", stockHandler.List)
	items.Get("/:id", stockHandler.GetByID)
	items.Put("/:id", stockHandler.Update)
	items.Delete("/:id", stockHandler.Delete)
	items.Post("/:id/movements", stockHandler.RecordMovement)
	items.Get("/:id/movements", stockHandler.ListMovements)
	items.Get("/:id/movements/pdf", stockHandler.ExportHistoryPDF)

	// Products / compras (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Supplies (protegido)
	supplies := protected.Group("/supplies")
	supplyHandler := NewSupplyHandler(deps.SupplyUC)
	supplies.Post("/", supplyHandler.Create)
	supplies.Get("/", supplyHandler.List)
	supplies.Put("/:id", supplyHandler.Update)
	supplies.Delete("/:id", supplyHandler.Delete)

	// Todos (protegido)
	todos := protected.Group("/todos")
	todoHandler := NewTodoHandler(deps.TodoUC)
	todos.Post("/", todoHandler.Create)
	todos.Get("/", todoHandler.List)
	todos.Put("/:id", todoHandler.Update)
	todos.Patch("/:id/toggle", todoHandler.ToggleDone)
	todos.Delete("/:id", todoHandler.Delete)

	// Rooms (protegido)
	rooms := protected.Group("/rooms")
	roomHandler := NewRoomHandler(deps.RoomUC)
	rooms.Post("/", roomHandler.Create)
	rooms.Get("/", roomHandler.List)
	rooms.Put("/:id", roomHandler.Update)
	rooms.Delete("/:id", roomHandler.Delete)

	// Professionals: catálogo compartido entre usuarios (protegido)
	professionals := protected.Group("/professionals")
	professionalHandler := NewProfessionalHandler(deps.ProfessionalUC)
	professionals.Post("/", professionalHandler.Create)
	professionals.Get("/", professionalHandler.List)
	professionals.Delete("/:id", professionalHandler.Delete)
}
