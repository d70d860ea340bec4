package product

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"versync/core/install"
	"versync/core/reconcile"
	"versync/core/registry"
	"versync/core/storage"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Product feature.
func NewFeature(store registry.Store, source install.Source, productCfg install.Config, recordsCfg reconcile.Config, logger *zap.Logger, db *gorm.DB, client storage.Client, bucket string) *Feature {
	svc := NewService(store, source, productCfg, recordsCfg, logger, db, client, bucket)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "product"
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
