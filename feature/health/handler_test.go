package health

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"appserve/core/loader"
	"appserve/core/settings"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupTestApp(t *testing.T, db *gorm.DB) *fiber.App {
	live := settings.New()
	live.ModuleName = "mysite.settings"
	live.TimeZone = "UTC"
	live.InstalledApps = []string{AppName}

	app := fiber.New()
	feature := NewFeature(loader.Deps{Settings: live, Logger: zap.NewNop(), DB: db, ProcName: "web"})
	require.NoError(t, feature.Load(app))
	return app
}

func decodeReport(t *testing.T, app *fiber.App) (int, Report) {
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	return resp.StatusCode, report
}

func TestFeature(t *testing.T) {
	feature := NewFeature(loader.Deps{Settings: settings.New()})
	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.Contains(t, loader.Registered(), AppName)
}

func TestHandleHealth_NoDatabase(t *testing.T) {
	status, report := decodeReport(t, setupTestApp(t, nil))

	assert.Equal(t, 200, status)
	assert.Equal(t, Report{
		Status:         "ok",
		SettingsModule: "mysite.settings",
		ProcName:       "web",
		TimeZone:       "UTC",
		InstalledApps:  1,
		Database:       "not_configured",
	}, report)
}

func TestHandleHealth_DatabaseUp(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectPing()

	status, report := decodeReport(t, setupTestApp(t, db))

	assert.Equal(t, 200, status)
	assert.Equal(t, "ok", report.Database)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleHealth_DatabaseDown(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	status, report := decodeReport(t, setupTestApp(t, db))

	assert.Equal(t, 503, status)
	assert.Equal(t, "degraded", report.Status)
	assert.Equal(t, "unavailable", report.Database)
	assert.Equal(t, "connection refused", report.DatabaseError)
}
