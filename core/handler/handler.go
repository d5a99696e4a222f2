package handler

import (
	"errors"
	"fmt"

	"appserve/core/loader"
	"appserve/core/logger"
	"appserve/core/middleware/auth"
	"appserve/core/middleware/rayid"
	"appserve/core/settings"
	"appserve/core/storage"

	_ "appserve/docs/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrBuild wraps every handler construction failure.
var ErrBuild = errors.New("build handler")

// Options are the collaborators of the core handler.
type Options struct {
	Settings *settings.Settings
	// ApiKey protects every installed app. Empty disables the check.
	ApiKey string
	// ProcName is reported by installed apps.
	ProcName string
	Logger   *zap.Logger
	// DB is the default database; may be nil.
	DB *gorm.DB
	// Storage serves s3:// media paths.
	Storage storage.Client
	// Bucket is used when an s3:// media path omits its bucket.
	Bucket string
}

// Build constructs the core handler: a Fiber app with every installed app
// mounted behind the request middleware.
func Build(opts Options) (*fiber.App, error) {
	return build(opts, nil)
}

// BuildWithMedia constructs the core handler wrapped with a media layer
// serving mediaPath under ADMIN_MEDIA_PREFIX. mediaPath is either a
// directory or an s3://bucket/prefix location.
func BuildWithMedia(opts Options, mediaPath string) (*fiber.App, error) {
	return build(opts, func(app *fiber.App, l *zap.Logger) error {
		return mountMedia(app, opts, l, mediaPath)
	})
}

func build(opts Options, media func(*fiber.App, *zap.Logger) error) (*fiber.App, error) {
	if opts.Settings == nil {
		return nil, fmt.Errorf("%w: no settings", ErrBuild)
	}
	logg := opts.Logger
	if logg == nil {
		logg = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               opts.ProcName,
	})

	// RayID must be first to trace everything.
	app.Use(rayid.New())
	app.Use(requestLogger(logg))

	if media != nil {
		if err := media(app, logg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuild, err)
		}
	}

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Use(auth.New(auth.Config{ApiKey: opts.ApiKey}))

	mgr := loader.NewManager(logg)
	deps := loader.Deps{
		Settings: opts.Settings,
		Logger:   logg,
		DB:       opts.DB,
		ProcName: opts.ProcName,
	}
	if err := mgr.Install(opts.Settings.InstalledApps, deps); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}
	if err := mgr.LoadAll(app); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	names := make([]string, 0, len(mgr.Features()))
	for _, f := range mgr.Features() {
		names = append(names, f.Name())
	}
	logg.Info("Built handler", zap.Strings("features", names))
	return app, nil
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
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
	}
}
