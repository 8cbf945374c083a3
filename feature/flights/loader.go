package flights

import (
	"travel-admin/core/images"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	protect fiber.Handler
}

// NewFeature creates a new Flights feature.
func NewFeature(db *gorm.DB, uploader *images.Uploader, logger *zap.Logger, protect fiber.Handler) *Feature {
	svc := NewService(db, uploader, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h, protect: protect}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "flights"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the schema and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app, f.protect)
	return nil
}
