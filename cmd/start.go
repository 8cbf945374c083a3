package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"travel-admin/core/config"
	"travel-admin/core/database"
	"travel-admin/core/images"
	"travel-admin/core/loader"
	"travel-admin/core/logger"
	"travel-admin/core/middleware/auth"
	"travel-admin/core/middleware/rayid"
	"travel-admin/core/storage"

	"travel-admin/feature/admin"
	"travel-admin/feature/enquiries"
	"travel-admin/feature/flights"
	"travel-admin/feature/hotels"
	"travel-admin/feature/packages"
	"travel-admin/feature/visas"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "travel-admin/docs/swagger"
)

// @title Travel Admin API
// @version 1.0
// @description Administrative API of the travel booking site.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the travel admin server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The admin gate cannot run without a signing secret.
		if err := cfg.Server.Validate(); err != nil {
			logg.Fatal("Invalid server configuration", zap.Error(err))
		}

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ctx := context.Background()
		if err := storage.EnsureBucket(ctx, store, cfg.Storage); err != nil {
			logg.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		uploader := images.NewUploader(store, cfg.Storage, logg)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first so every log line can be traced.
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Session gate handed to each feature; features decide which of
		// their routes are public.
		protect := auth.New(auth.Config{Secret: cfg.Server.JwtSecret})

		// 6. Register and Load Features
		adminFeature := admin.NewFeature(db, cfg.Server, logg, protect)

		mgr := loader.NewManager()
		mgr.Register(adminFeature)
		mgr.Register(packages.NewFeature(db, uploader, logg, protect))
		mgr.Register(hotels.NewFeature(db, uploader, logg, protect))
		mgr.Register(visas.NewFeature(db, uploader, logg, protect))
		mgr.Register(flights.NewFeature(db, uploader, logg, protect))
		mgr.Register(enquiries.NewFeature(db, logg, protect))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Seed the admin credential once schemas exist.
		if err := adminFeature.Service().Seed(ctx); err != nil {
			logg.Fatal("Failed to seed admin credential", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
