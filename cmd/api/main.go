package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ims/internal/backup"
	"go-ims/internal/config"
	"go-ims/internal/handler"
	"go-ims/internal/invoice"
	"go-ims/internal/middleware"
	"go-ims/internal/repository"
	"go-ims/internal/service"
	"go-ims/internal/ws"
	"go-ims/pkg/database"
	"go-ims/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// 1. Load Env
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	appLog := logger.Setup(cfg.LogLevel, cfg.IsProduction())
	if envErr != nil {
		appLog.Warn().Msg(".env file not found, using process environment")
	}

	// 2. Setup Database
	dbLevel := gormlogger.Warn
	if cfg.LogLevel == "debug" || cfg.LogLevel == "trace" {
		dbLevel = gormlogger.Info
	}
	db, err := database.Connect(database.Options{
		Driver:      cfg.DBDriver,
		Path:        cfg.DBPath,
		DatabaseURL: cfg.DatabaseURL,
		LogLevel:    dbLevel,
	}, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Msg("connect database")
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	fsys := afero.NewOsFs()
	invoices := invoice.NewStore(fsys, cfg.BillDir)
	reporter := backup.NewReporter(fsys, cfg.BackupDir)
	trigger := backup.NewTrigger(reporter, backup.ExecRunner{}, backup.TriggerOptions{
		Shell:       cfg.BackupShell,
		Python:      cfg.PredictPython,
		StepTimeout: cfg.BackupStepTimeout,
	})

	employeeRepo := repository.NewEmployeeRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	summaryRepo := repository.NewSummaryRepo(db)

	employeeService := service.NewEmployeeService(employeeRepo)
	invService := service.NewInventoryService(productRepo, wsHub)
	billingService := service.NewBillingService(saleRepo, productRepo, db, invoices, invoice.NewNumberer(), wsHub)
	dashService := service.NewDashboardService(summaryRepo)

	handlers := &handler.Handlers{
		Employee:  handler.NewEmployeeHandler(employeeService),
		Supplier:  handler.NewSupplierHandler(supplierRepo),
		Category:  handler.NewCategoryHandler(categoryRepo),
		Inventory: handler.NewInventoryHandler(invService),
		Bill:      handler.NewBillHandler(billingService),
		Dashboard: handler.NewDashboardHandler(dashService),
		Backup:    handler.NewBackupHandler(reporter, trigger),
	}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:               "IMS Backend",
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(appLog))
	app.Use(cors.New())

	// 6. Routes
	handler.SetupRoutes(app, handlers)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Join(c)
		defer wsHub.Leave(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	// 7. Graceful Shutdown
	go func() {
		appLog.Info().Str("port", cfg.HTTPPort).Msg("server listening")
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			appLog.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info().Msg("shutting down server")
	wsHub.Stop()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLog.Error().Err(err).Msg("server forced to shutdown")
	}
	if err := database.Close(db); err != nil {
		appLog.Error().Err(err).Msg("close database")
	}
	appLog.Info().Msg("server exited")
}
