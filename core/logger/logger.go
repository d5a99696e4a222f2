package logger

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConfigureFuncPath is the LOGGING_CONFIG value that selects Configure.
const ConfigureFuncPath = "logger.configure"

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	if cfg.Output != "" {
		config.OutputPaths = []string{cfg.Output}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	if len(cfg.Fields) > 0 {
		keys := make([]string, 0, len(cfg.Fields))
		for k := range cfg.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fields := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, zap.String(k, cfg.Fields[k]))
		}
		logger = logger.With(fields...)
	}

	return logger, nil
}

// Configure builds a logger from a settings module's LOGGING declaration and
// installs it as the global zap logger.
func Configure(data map[string]any) error {
	cfg := Config{Level: "info", Format: "json", Output: "stderr"}
	if err := mapstructure.WeakDecode(data, &cfg); err != nil {
		return fmt.Errorf("decode LOGGING: %w", err)
	}

	l, err := New(&cfg)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	return nil
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}
