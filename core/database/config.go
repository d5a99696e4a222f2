package database

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Config holds configuration for one DATABASES entry.
type Config struct {
	// Host is the database host.
	Host string `mapstructure:"host" json:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" json:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" json:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" json:"password" default:""`
	// Name is the database name.
	Name string `mapstructure:"name" json:"name" default:""`
	// Driver is the database driver. Only mysql is supported.
	Driver string `mapstructure:"driver" json:"driver" default:"mysql"`
	// TimeoutSeconds bounds connection setup, reads, writes and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" json:"timeout_seconds" default:"30"`
}

// DriverMySQL is the only driver Connect accepts.
const DriverMySQL = "mysql"

// withDefaults fills the zero fields a settings module may leave out from
// their 'default' tags.
func (c Config) withDefaults() Config {
	v := reflect.ValueOf(&c).Elem()
	t := v.Type()

	defaults := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value, ok := field.Tag.Lookup("default")
		if !ok || value == "" || !v.Field(i).IsZero() {
			continue
		}
		defaults[field.Tag.Get("mapstructure")] = value
	}

	// Tags are compile-time constants; a failure here is a programming error.
	if err := mapstructure.WeakDecode(defaults, &c); err != nil {
		panic(err)
	}
	return c
}
