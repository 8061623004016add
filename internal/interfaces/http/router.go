package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pymesoft/gestion-pyme/internal/application/auth"
	"github.com/pymesoft/gestion-pyme/internal/application/billing"
	"github.com/pymesoft/gestion-pyme/internal/application/pos"
	"github.com/pymesoft/gestion-pyme/internal/application/usecase"
	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC    *usecase.CustomerUseCase
	ProductUC     *usecase.ProductUseCase
	StockUC       *usecase.StockUseCase
	UserUC        *usecase.UserUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoiceQuery  *billing.QueryUseCase
	InvoicePDF    *billing.PDFUseCase
	Checkout      *pos.CheckoutUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/", productHandler.Update)
	products.Delete("/", productHandler.Delete)

	// Stock
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Post("/", stockHandler.Create)
	stock.Patch("/", stockHandler.Adjust)

	// Facturación (creación, consulta, borrado y exportación a PDF)
	invoices := api.Group("/facturacion")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoiceQuery, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// POS
	posGroup := api.Group("/pos")
	posHandler := NewPOSHandler(deps.Checkout)
	posGroup.Post("/checkout", posHandler.Checkout)

	// Users (protegido; borrar requiere rol ADMIN)
	users := api.Group("/users", AuthMiddleware(deps.JWTSecret))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)
	users.Put("/:id/change-password", userHandler.ChangePassword)
}
