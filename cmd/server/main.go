package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/config"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/database"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/handlers"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/middleware"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/pdf"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/schema"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/services"
	"github.com/tolentino2025/FireSafeITM-sub001/internal/types"

	_ "github.com/tolentino2025/FireSafeITM-sub001/docs/api" // Swagger docs
)

// @title FireSafe ITM API
// @version 1.0.0
// @description Fire protection inspection, testing and maintenance service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/tolentino2025/FireSafeITM-sub001
// @contact.email suporte@firesafeitm.com.br

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Optional .env; environment wins in deployed setups
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	registry := schema.DefaultRegistry()
	cache := services.NewReportCache()

	// The archive workflow persists locally by default; a configured remote
	// report store turns this process into a workflow host only.
	var store services.ArchiveStore = &services.GormArchiveStore{DB: db}
	if cfg.ArchiveStoreURL != "" {
		store = &services.HTTPArchiveStore{
			BaseURL: cfg.ArchiveStoreURL,
			Client:  &http.Client{Timeout: 30 * time.Second},
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("firesafe")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}
	schemaHandler := &handlers.SchemaHandler{Registry: registry}
	inspectionHandler := &handlers.InspectionHandler{DB: db, Registry: registry}
	draftHandler := &handlers.DraftHandler{DB: db}
	archiveHandler := &handlers.ArchiveHandler{
		DB:       db,
		Registry: registry,
		Renderer: pdf.NewTemplateRenderer(),
		Store:    store,
		Cache:    cache,
		Notifier: services.LogNotifier{},
		Delays:   services.PacingDelays{Outcome: cfg.OutcomeDelay, Navigate: cfg.NavigateDelay},
	}

	// Health
	api.Get("/health", healthHandler.Health)

	// Form schemas (read-only catalog)
	api.Get("/schemas", schemaHandler.ListSchemas)
	api.Get("/schemas/:formId", schemaHandler.GetSchema)
	api.Post("/schemas/:formId/progress", schemaHandler.EvaluateProgress)

	// Inspections (all require an acting user)
	inspections := api.Group("/inspections", middleware.RequireUser())
	inspections.Post("/", inspectionHandler.CreateInspection)
	inspections.Patch("/:id", inspectionHandler.UpdateInspection)
	inspections.Get("/:id", inspectionHandler.GetInspection)
	inspections.Post("/:id/forms/:formId/complete", inspectionHandler.CompleteSubForm)
	inspections.Post("/:id/archive", archiveHandler.ArchiveInspection)

	// Archived reports
	reports := api.Group("/reports", middleware.RequireUser())
	reports.Post("/archived", archiveHandler.ArchiveReport)
	reports.Get("/archived", archiveHandler.ListArchivedReports)
	reports.Get("/archived/:id", archiveHandler.GetArchivedReport)

	// Drafts
	drafts := api.Group("/drafts")
	drafts.Put("/:key", draftHandler.SaveDraft)
	drafts.Get("/:key", draftHandler.GetDraft)
	drafts.Delete("/:key", draftHandler.DeleteDraft)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Domain errors carry their own code and type
	if ce, ok := err.(*types.CustomError); ok {
		code = ce.Code
		message = ce.Message
		errorType = ce.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
