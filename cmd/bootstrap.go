package cmd

import (
	"appserve/core/database"
	"appserve/core/loader"
	"appserve/core/logger"
	"appserve/core/settings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// project is the outcome of bootstrap.
type project struct {
	settings *settings.Settings
	resolved *settings.Resolved
	importer *settings.Importer
}

// bootstrap locates, imports and merges the settings module. Every
// registered app is importable, so "<pkg>.*" entries can expand to them.
func bootstrap(settingsPath string, logg *zap.Logger) (*project, error) {
	imp := settings.NewImporter()
	for _, name := range loader.Registered() {
		imp.Register(name, appModule)
	}

	logging := settings.NewLoggingRegistry()
	logging.Register(logger.ConfigureFuncPath, logger.Configure)

	merger := settings.NewMerger(imp, logging, logg)
	live, resolved, err := settings.Load(settingsPath, imp, merger)
	if err != nil {
		return nil, err
	}
	return &project{settings: live, resolved: resolved, importer: imp}, nil
}

// appModule is the settings module of a compiled-in app; apps declare nothing.
func appModule() (map[string]any, error) {
	return map[string]any{}, nil
}

// connectDatabase opens DATABASES.default. The connection is optional;
// failures are logged and yield nil.
func connectDatabase(s *settings.Settings, logg *zap.Logger) *gorm.DB {
	cfg, ok := s.Databases["default"]
	if !ok {
		return nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	logg.Info("Connected to default database",
		zap.String("host", cfg.Host),
		zap.String("name", cfg.Name))
	return db
}
