package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"taskdash/internal/config"
	"taskdash/internal/database"
	"taskdash/internal/handlers"
	"taskdash/internal/jobs"
	"taskdash/internal/logging"
	"taskdash/internal/middleware"
	"taskdash/internal/services"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Structured logging (JSON in production, text in dev)
	logging.Init()

	log.Println("🚀 Starting TaskDash Server...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	}

	cfg := config.Load()
	log.Printf("📋 Configuration loaded (Port: %s, Env: %s)", cfg.Port, cfg.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.NewMongoDB(cfg.MongoURI)
	if err != nil {
		cancel()
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	if err := db.Initialize(ctx); err != nil {
		cancel()
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	cancel()
	log.Println("✅ MongoDB connected and indexes ensured")

	// Stores and analytics
	taskStore := services.NewTaskStore(db)
	projectStore := services.NewProjectStore(db)
	meetingStore := services.NewMeetingStore(db)
	reminderStore := services.NewReminderStore(db)
	goalStore := services.NewGoalStore(db)
	analytics := services.NewAnalyticsService(db, cfg.StatsCacheTTL)

	app := fiber.New(fiber.Config{
		AppName:      "TaskDash v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    4 * 1024 * 1024,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New())

	prometheus := fiberprometheus.New("taskdash")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
	log.Println("📊 Prometheus metrics endpoint enabled at /metrics")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	// Routes
	api := app.Group("/api")
	handlers.NewHealthHandler(db).Register(api)
	handlers.NewTaskHandler(taskStore, analytics).Register(api)
	handlers.NewProjectHandler(projectStore, analytics).Register(api)
	handlers.NewMeetingHandler(meetingStore, analytics).Register(api)
	handlers.NewReminderHandler(reminderStore, analytics).Register(api)
	handlers.NewGoalHandler(goalStore, analytics).Register(api)
	handlers.NewAnalyticsHandler(analytics).Register(api)

	// Background jobs
	scheduler, err := jobs.NewScheduler()
	if err != nil {
		log.Fatalf("❌ Failed to create job scheduler: %v", err)
	}
	sweep := jobs.NewMilestoneSweepJob(projectStore)
	if err := scheduler.Daily("milestone-overdue-sweep", cfg.MilestoneSweepHour, sweep.Run); err != nil {
		log.Fatalf("❌ Failed to schedule milestone sweep: %v", err)
	}
	scheduler.Start()
	log.Printf("🕐 Background jobs: milestone overdue sweep (daily %d:00)", cfg.MilestoneSweepHour)

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("\n🛑 Shutting down server...")

		scheduler.Stop()

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Error shutting down server: %v", err)
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := db.Close(shutdownCtx); err != nil {
			log.Printf("⚠️ Error closing MongoDB connection: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
