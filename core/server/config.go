package server

import (
	"fmt"
	"net"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Bind is the host:port the server listens on.
	Bind string `mapstructure:"bind" default:"127.0.0.1:8000"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// ProcName names the process in logs. Defaults to the settings module name.
	ProcName string `mapstructure:"proc_name" default:""`
	// AdminMediaPath is the directory, or s3://bucket/prefix, served by the media layer.
	AdminMediaPath string `mapstructure:"admin_media_path" default:""`
}

// Validate checks that Bind is a host:port pair with a numeric port.
func (c Config) Validate() error {
	_, port, err := net.SplitHostPort(c.Bind)
	if err != nil {
		return fmt.Errorf("invalid bind address %q: %w", c.Bind, err)
	}
	if _, err := net.LookupPort("tcp", port); err != nil {
		return fmt.Errorf("invalid bind port %q: %w", port, err)
	}
	return nil
}

// ProcNameOr returns ProcName, or fallback when it is unset.
func (c Config) ProcNameOr(fallback string) string {
	if c.ProcName != "" {
		return c.ProcName
	}
	return fallback
}
