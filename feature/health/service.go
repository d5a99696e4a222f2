package health

import (
	"context"
	"time"

	"appserve/core/database"
	"appserve/core/settings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// Report is the health payload.
type Report struct {
	Status         string `json:"status"`
	SettingsModule string `json:"settings_module"`
	ProcName       string `json:"proc_name"`
	TimeZone       string `json:"time_zone,omitempty"`
	InstalledApps  int    `json:"installed_apps"`
	Database       string `json:"database"`
	DatabaseError  string `json:"database_error,omitempty"`
}

// Service computes the health report.
type Service struct {
	settings *settings.Settings
	logger   *zap.Logger
	db       *gorm.DB
	procName string
}

// NewService creates a new health service.
func NewService(s *settings.Settings, logger *zap.Logger, db *gorm.DB, procName string) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{settings: s, logger: logger, db: db, procName: procName}
}

// Check builds the report. A failing database degrades the status.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Status:         "ok",
		SettingsModule: s.settings.ModuleName,
		ProcName:       s.procName,
		TimeZone:       s.settings.TimeZone,
		InstalledApps:  len(s.settings.InstalledApps),
		Database:       "not_configured",
	}

	if s.db == nil {
		return report
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := database.Ping(ctx, s.db); err != nil {
		report.Status = "degraded"
		report.Database = "unavailable"
		report.DatabaseError = err.Error()
		return report
	}
	report.Database = "ok"
	return report
}
