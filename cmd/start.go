package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"prefab-manager/core/assets"
	"prefab-manager/core/config"
	"prefab-manager/core/database"
	"prefab-manager/core/loader"
	"prefab-manager/core/logger"
	"prefab-manager/core/middleware/auth"
	"prefab-manager/core/middleware/rayid"
	"prefab-manager/core/prefab"
	"prefab-manager/core/scene"
	"prefab-manager/core/storage"

	"prefab-manager/feature/components"
	"prefab-manager/feature/history"
	"prefab-manager/feature/prefabs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "prefab-manager/docs/swagger"
)

// @title Prefab Manager API
// @version 1.0
// @description API for synchronizing prefab instances with their masters.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the prefab manager server",
	Long:  `Starts the HTTP server, loads the scene and initializes all enabled features.`,
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

		// 3. Connect to Database (Optional; history is disabled without it)
		var hist *history.Store
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, history disabled", zap.Error(err))
		} else {
			hist = history.NewStore(conn)
			if err := hist.Migrate(); err != nil {
				logg.Warn("History migration failed, history disabled", zap.Error(err))
				hist = nil
			} else {
				logg.Info("Connected to history database")
			}
		}

		// 4. Build the component catalog
		catalog, err := components.NewCatalog()
		if err != nil {
			logg.Fatal("Failed to build component catalog", zap.Error(err))
		}

		// 5. Open the prefab library
		var library assets.Library
		switch cfg.Assets.Source {
		case assets.SourceStorage:
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			library, err = assets.NewStorageLibrary(context.Background(), client, cfg.Storage.Bucket, cfg.Assets.Prefix, cfg.Assets.Manifest)
			if err != nil {
				logg.Fatal("Failed to open storage prefab library", zap.Error(err))
			}
		case assets.SourceFile:
			library, err = assets.NewFileLibrary(cfg.Assets.Dir, cfg.Assets.Manifest)
			if err != nil {
				logg.Fatal("Failed to open file prefab library", zap.Error(err))
			}
		default:
			logg.Fatal("Invalid assets source", zap.String("source", cfg.Assets.Source))
		}

		// 6. Load the scene
		store, err := scene.Load(cfg.Assets.Scene, catalog)
		if err != nil {
			logg.Fatal("Failed to load scene", zap.Error(err))
		}

		engine := prefab.NewEngine(library, catalog, logg)

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 8. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(prefabs.NewFeature(engine, store, catalog, hist, logg))

		// Middleware: ray IDs first so everything is traceable.
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

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
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
