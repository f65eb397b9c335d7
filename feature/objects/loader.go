package objects

import (
	"fmt"

	"object-storage/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	catalog *Catalog
}

// NewFeature creates the objects feature. db may be nil, which disables the catalog.
func NewFeature(store storage.ObjectStorage, cfg storage.Config, db *gorm.DB, logger *zap.Logger) *Feature {
	var catalog *Catalog
	if db != nil {
		catalog = NewCatalog(db)
	}
	svc := NewService(store, cfg, catalog, logger)
	return &Feature{service: svc, handler: NewHandler(svc), catalog: catalog}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "objects"
}

// IsEnabled reports whether a store is configured.
func (f *Feature) IsEnabled() bool {
	return f.service.store != nil
}

// Load migrates the catalog, if any, and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.catalog != nil {
		if err := f.catalog.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate object catalog: %w", err)
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}
