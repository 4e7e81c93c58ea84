package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yt-study/config"
	"yt-study/handlers"
	"yt-study/logger"
	"yt-study/repository/sqlite"
	"yt-study/services/study"
	"yt-study/summarize"
	"yt-study/youtube"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logWriter, err := logger.Init(cfg.LogDir, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize run store
	db, err := sqlite.InitDB(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repo, err := sqlite.NewRepository(db)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Initialize transcript fetcher
	fetcher, err := youtube.NewFetcher(youtube.Config{
		YtDlpPath:        cfg.YouTube.YtDlpPath,
		Timeout:          cfg.YouTube.FetchTimeout,
		Languages:        cfg.YouTube.Languages,
		TempDir:          cfg.TempDir,
		FetchesPerMinute: cfg.YouTube.FetchesPerMinute,
	})
	if err != nil {
		log.Fatalf("Failed to initialize transcript fetcher: %v", err)
	}

	// Initialize summarizer
	model, err := summarize.NewOpenAIModel(summarize.OpenAIConfig{
		APIKey:  cfg.Summarizer.APIKey,
		BaseURL: cfg.Summarizer.BaseURL,
		Model:   cfg.Summarizer.Model,
		Timeout: cfg.Summarizer.CallTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize summary model: %v", err)
	}
	summarizer := summarize.NewService(model, summarize.Config{
		ChunkSize: cfg.Summarizer.ChunkSize,
	})

	// Initialize study service
	studyService := study.NewService(repo, fetcher, summarizer, study.Config{
		PipelineTimeout: cfg.PipelineTimeout,
		RunTTL:          cfg.Database.RunTTL,
	})

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: !cfg.Debug,
		AppName:               "yt-study",
	})

	setupMiddleware(app, cfg, logWriter)

	// Setup routes
	studyHandler := handlers.NewStudyHandler(studyService)

	app.Post("/api/summarize", studyHandler.Summarize)
	app.Get("/api/runs/:id", studyHandler.GetRun)
	app.Get("/api/runs/:id/export", studyHandler.ExportRun)
	app.Get("/health", handlers.HealthCheck)

	// Static files
	app.Static("/", "./static")

	// Expired runs are pruned in the background so the store stays bounded.
	pruneCtx, stopPruner := context.WithCancel(context.Background())
	defer stopPruner()
	go runPruner(pruneCtx, studyService, cfg.Database.RunTTL)

	// Graceful shutdown setup
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Println("Shutting down server...")

		stopPruner()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	serverAddr := ":" + cfg.ServerPort
	if cfg.Debug {
		log.Printf("Server starting on http://localhost%s", serverAddr)
	}

	if err := app.Listen(serverAddr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

func setupMiddleware(app *fiber.App, cfg *config.Config, accessLog io.Writer) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.Debug,
	}))

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.New().String()
		},
	}))

	app.Use(fiberLogger.New(fiberLogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: accessLog,
	}))

	app.Use(cors.New())

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: cfg.RateLimitInterval,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded",
			})
		},
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelDefault,
	}))

	app.Use(etag.New())
}

// runPruner deletes expired runs on a fixed cadence until ctx is canceled.
func runPruner(ctx context.Context, svc study.Service, ttl time.Duration) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.PruneExpired(context.Background()); err != nil {
				logrus.WithError(err).Warn("Failed to prune expired runs")
			}
		}
	}
}
