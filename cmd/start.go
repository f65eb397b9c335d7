package cmd

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"object-storage/core/config"
	"object-storage/core/database"
	"object-storage/core/loader"
	"object-storage/core/logger"
	"object-storage/core/middleware/auth"
	"object-storage/core/middleware/rayid"
	"object-storage/core/storage"
	"object-storage/feature/health"
	"object-storage/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "object-storage/docs/swagger"
)

// @title Object Storage API
// @version 1.0
// @description Key/value blob storage backed by an S3-compatible object store.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the object storage server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := setup()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Catalog database (Optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to catalog database")
			}
		}

		mgr, err := buildFeatures(cfg, db, logg)
		if err != nil {
			logg.Fatal("Failed to initialize storage", zap.Error(err))
		}

		app, err := newApp(cfg, mgr, logg)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("bucket", cfg.Storage.Bucket))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

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

// newApp builds the fiber app: middleware first, then every enabled feature.
// Only GET /health bypasses the API key; POST /health/fix creates buckets and
// stays protected.
func newApp(cfg *config.Config, mgr *loader.Manager, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Server.BodyLimit(),
	})

	// RayID must be first to trace everything
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

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/health"}}))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))
	return app, nil
}

// buildFeatures wires the storage-backed features. A disabled storage yields
// an empty manager rather than an error.
func buildFeatures(cfg *config.Config, db *gorm.DB, logg *zap.Logger) (*loader.Manager, error) {
	mgr := loader.NewManager()

	store, err := storage.New(cfg.Storage, logg)
	if errors.Is(err, storage.ErrDisabled) {
		logg.Warn("Storage is disabled, object routes are not registered")
		return mgr, nil
	}
	if err != nil {
		return nil, err
	}

	mgr.Register(health.NewFeature(store.Client(), cfg.Storage, logg))
	mgr.Register(objects.NewFeature(store, cfg.Storage, db, logg))
	return mgr, nil
}
