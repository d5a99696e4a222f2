package health

import (
	"appserve/core/loader"

	"github.com/gofiber/fiber/v2"
)

// AppName is the dotted name to list in INSTALLED_APPS.
const AppName = "contrib.health"

func init() {
	loader.Register(AppName, func(d loader.Deps) loader.Feature {
		return NewFeature(d)
	})
}

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Health feature.
func NewFeature(d loader.Deps) *Feature {
	svc := NewService(d.Settings, d.Logger, d.DB, d.ProcName)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "health"
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
