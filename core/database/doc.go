// Package database connects to the databases a settings module declares.
//
// Each DATABASES entry decodes into a Config. Connect opens it through GORM
// with the MySQL driver, applies pool limits and verifies it with a ping
// bounded by TimeoutSeconds. The connection is optional: the runner logs a
// warning and keeps serving when it fails.
//
// # Usage
//
//	db, err := database.Connect(live.Databases["default"])
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
