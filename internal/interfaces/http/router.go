package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/depot-api/internal/application/auth"
	"github.com/tu-usuario/depot-api/internal/application/ledger"
	"github.com/tu-usuario/depot-api/internal/application/orders"
	"github.com/tu-usuario/depot-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC      *orders.OrderUseCase
	SettlementUC *ledger.SettlementUseCase
	CustomerUC   *usecase.CustomerUseCase
	ProductUC    *usecase.ProductUseCase
	BrandUC      *usecase.BrandUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/admin/login", authHandler.AdminLogin)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireAdmin()

	// Catálogo: lectura para cualquier usuario autenticado, escritura solo admin
	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Post("/", admin, brandHandler.Create)
	brands.Put("/:id", admin, brandHandler.Update)
	brands.Delete("/:id", admin, brandHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", admin, productHandler.Create)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Clientes: perfil propio o admin; deuda y abonos solo admin
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.SettlementUC)
	customers.Get("/", admin, customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", admin, customerHandler.Update)
	customers.Delete("/:id", admin, customerHandler.Delete)
	customers.Post("/:id/settle", admin, customerHandler.Settle)

	// Pedidos: el cliente ve los suyos, el admin opera todos
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Put("/:id", admin, orderHandler.Update)
	ordersGroup.Delete("/:id", admin, orderHandler.Delete)
	ordersGroup.Patch("/:id/status", admin, orderHandler.SetStatus)

	// Gestión de administradores (solo admin)
	admins := protected.Group("/admins", admin)
	adminHandler := NewAdminHandler(deps.AuthUC)
	admins.Get("/", adminHandler.List)
	admins.Get("/:id", adminHandler.GetByID)
	admins.Post("/", adminHandler.Create)
	admins.Delete("/:id", adminHandler.Delete)

	// Registro diario de abonos (solo admin)
	settlements := protected.Group("/settlements", admin)
	settlementHandler := NewSettlementHandler(deps.SettlementUC)
	settlements.Get("/", settlementHandler.List)
	settlements.Get("/today", settlementHandler.Today)
	settlements.Delete("/", settlementHandler.PurgeAll)
}
