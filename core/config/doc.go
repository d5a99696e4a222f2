// Package config provides process-level configuration for the runner.
//
// It utilizes Viper for loading configuration from a .env file, environment
// variables, an optional config file (--config) and command-line flags, in
// increasing precedence. Names the runner does not know are ignored.
//
// Project settings (INSTALLED_APPS, TIME_ZONE, ...) are not handled here;
// they come from the settings module, see package settings.
//
// # Configuration Structure
//
//   - Server: bind address, API key, process name, admin media path
//   - Storage: S3/MinIO credentials for s3:// media paths
//   - Log: level and format of the bootstrap logger
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", "", cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Bind)
package config
