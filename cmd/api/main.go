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
	"github.com/pymesoft/gestion-pyme/internal/application/auth"
	"github.com/pymesoft/gestion-pyme/internal/application/billing"
	"github.com/pymesoft/gestion-pyme/internal/application/pos"
	"github.com/pymesoft/gestion-pyme/internal/application/usecase"
	infrapdf "github.com/pymesoft/gestion-pyme/internal/infrastructure/pdf"
	"github.com/pymesoft/gestion-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/pymesoft/gestion-pyme/internal/interfaces/http"
	"github.com/pymesoft/gestion-pyme/pkg/config"
	"github.com/pymesoft/gestion-pyme/pkg/logger"
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

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(txRunner, productRepo, stockRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, productRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	createInvoiceUC := billing.NewCreateInvoiceUseCase(
		txRunner, invoiceRepo, cfg.Billing.PreserveLineQuantities,
	)
	invoiceQueryUC := billing.NewQueryUseCase(invoiceRepo, customerRepo, productRepo)

	// PDF: comprobante imprimible de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.PDF.LogoPath)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, productRepo, pdfGenerator)

	checkoutUC := pos.NewCheckoutUseCase(createInvoiceUC)

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
		Title:    "Gestión PyME API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:    customerUC,
		ProductUC:     productUC,
		StockUC:       stockUC,
		UserUC:        userUC,
		CreateInvoice: createInvoiceUC,
		InvoiceQuery:  invoiceQueryUC,
		InvoicePDF:    invoicePDFUC,
		Checkout:      checkoutUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
