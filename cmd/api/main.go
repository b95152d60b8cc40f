package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"scanresume/resume-analyzer/internal/config"
	"scanresume/resume-analyzer/internal/handlers"
	"scanresume/resume-analyzer/internal/services"
)

func main() {
	// Load and validate configuration; any violation is fatal here.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("✅ Config loaded successfully")

	if !config.ValidCredentialShape(cfg.Gemini.APIKey, "gemini") {
		log.Println("⚠️  GEMINI_API_KEY does not match the expected key shape")
	}

	// Initialize rate limiter (disabled when Redis is not configured)
	limiter := services.NewRateLimiter(cfg.Redis.URL, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	log.Println("✅ Rate limiter initialized")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(geminiService)
	log.Println("✅ Analyzer service initialized")

	// Initialize feedback mailer (optional)
	var mailer services.FeedbackMailer
	if cfg.Mail.APIKey != "" {
		if !config.ValidCredentialShape(cfg.Mail.APIKey, "resend") {
			log.Println("⚠️  RESEND_API_KEY does not match the expected key shape")
		}
		mailer = services.NewFeedbackMailer(cfg.Mail.APIKey, cfg.Mail.From, cfg.Mail.To)
		log.Println("✅ Feedback mailer initialized")
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, feedback emails disabled")
	}

	// Initialize text extractor
	extractor := services.NewTextExtractor()

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(cfg, limiter, analyzerService)
	feedbackHandler := handlers.NewFeedbackHandler(mailer)
	extractHandler := handlers.NewExtractHandler(extractor)
	healthHandler := handlers.NewHealthHandler(limiter)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Scanresume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AppURL,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", healthHandler.HandleHealth)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/feedback", feedbackHandler.HandleFeedback)
	api.Post("/extract", extractHandler.HandleExtract)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Scanresume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/feedback",
				"POST /api/v1/extract",
				"GET /api/v1/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
