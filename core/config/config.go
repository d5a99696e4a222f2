package config

import (
	"fmt"
	"reflect"
	"strings"

	"appserve/core/logger"
	"appserve/core/server"
	"appserve/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all process-level configuration for the runner.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage backing s3:// media paths.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the bootstrap logger.
	Log logger.Config `mapstructure:"log"`
}

// flagKeys maps command-line flags to the config keys they override.
var flagKeys = map[string]string{
	"bind":             "server.bind",
	"api-key":          "server.api_key",
	"name":             "server.proc_name",
	"admin-media-path": "server.admin_media_path",
	"log-level":        "log.level",
	"log-format":       "log.format",
}

// LoadConfig loads configuration from the .env file in path, the environment,
// an optional config file and the given flags, in increasing precedence.
// Unknown keys in the config file are ignored.
func LoadConfig(path, file string, flags *pflag.FlagSet) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_BIND -> server.bind)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Maps have no scalar default to register.
		if field.Type.Kind() == reflect.Map {
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
