package prefabs

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"prefab-manager/core/prefab"
	"prefab-manager/feature/history"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the prefabs feature.
func NewFeature(engine *prefab.Engine, store prefab.Store, catalog *prefab.Catalog, hist *history.Store, logger *zap.Logger) *Feature {
	svc := NewService(engine, store, catalog, hist, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "prefabs"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
