package settings

import (
	"reflect"
	"regexp"

	"appserve/core/database"

	"github.com/go-viper/mapstructure/v2"
)

// Settings is the live configuration of a project.
// It is built once at startup by Load and treated as read-only afterwards.
type Settings struct {
	// ModuleName is the dotted name of the settings module that was merged.
	ModuleName string `mapstructure:"-"`

	// Debug enables development-only behaviour such as the settings diff endpoint.
	Debug bool `mapstructure:"DEBUG" default:"false"`
	// SecretKey is the project secret.
	SecretKey string `mapstructure:"SECRET_KEY" default:""`
	// InstalledApps lists the dotted names of the apps to mount.
	InstalledApps []string `mapstructure:"INSTALLED_APPS"`
	// TemplateDirs lists template directories.
	TemplateDirs []string `mapstructure:"TEMPLATE_DIRS"`
	// TimeZone is an IANA zone name installed into the process at merge time.
	TimeZone string `mapstructure:"TIME_ZONE" default:""`
	// LanguageCode is the project language.
	LanguageCode string `mapstructure:"LANGUAGE_CODE" default:"en-us"`
	// MediaRoot is the directory holding user media.
	MediaRoot string `mapstructure:"MEDIA_ROOT" default:""`
	// MediaURL is the public URL prefix of MediaRoot.
	MediaURL string `mapstructure:"MEDIA_URL" default:""`
	// AdminMediaPrefix is the URL prefix the media layer is served under.
	AdminMediaPrefix string `mapstructure:"ADMIN_MEDIA_PREFIX" default:"/media/"`
	// LoggingConfig names the logging function, as "<module>.<function>".
	LoggingConfig string `mapstructure:"LOGGING_CONFIG" default:""`
	// Logging is passed to the LoggingConfig function.
	Logging map[string]any `mapstructure:"LOGGING"`
	// Databases maps connection aliases to database settings.
	Databases map[string]database.Config `mapstructure:"DATABASES"`

	// Extra holds upper-case declarations without a typed field.
	Extra map[string]any `mapstructure:"-"`
}

// New returns Settings populated with the defaults from the struct tags.
func New() *Settings {
	s := &Settings{Extra: map[string]any{}}

	defaults := map[string]any{}
	collectDefaults(reflect.TypeOf(*s), defaults)
	// Defaults are compile-time constants; a failure here is a programming error.
	if _, err := decode(defaults, s); err != nil {
		panic(err)
	}
	return s
}

// collectDefaults reads the 'default' tag of every field that carries a
// 'mapstructure' name.
func collectDefaults(t reflect.Type, out map[string]any) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := field.Tag.Get("mapstructure")
		if key == "" || key == "-" {
			continue
		}
		if value, ok := field.Tag.Lookup("default"); ok {
			out[key] = value
		}
	}
}

// Get returns the value of a declaration by its upper-case name, looking at
// typed fields first and Extra second.
func (s *Settings) Get(name string) (any, bool) {
	v := reflect.ValueOf(s).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("mapstructure") == name {
			return v.Field(i).Interface(), true
		}
	}
	value, ok := s.Extra[name]
	return value, ok
}

// Diff returns every declaration whose value differs from base.
// Secrets are masked.
func (s *Settings) Diff(base *Settings) map[string]any {
	out := map[string]any{}

	cur := reflect.ValueOf(s).Elem()
	ref := reflect.ValueOf(base).Elem()
	t := cur.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("mapstructure")
		if key == "" || key == "-" {
			continue
		}
		if reflect.DeepEqual(cur.Field(i).Interface(), ref.Field(i).Interface()) {
			continue
		}
		out[key] = Mask(key, cur.Field(i).Interface())
	}

	for key, value := range s.Extra {
		if old, ok := base.Extra[key]; ok && reflect.DeepEqual(old, value) {
			continue
		}
		out[key] = Mask(key, value)
	}
	return out
}

// hiddenSettings matches the names whose values Mask hides.
var hiddenSettings = regexp.MustCompile(`(?i)API|KEY|PASS|SECRET|SIGNATURE|TOKEN`)

// MaskedValue replaces hidden values.
const MaskedValue = "********"

// Mask hides value when key looks sensitive. Nested maps and lists are
// masked key by key.
func Mask(key string, value any) any {
	if hiddenSettings.MatchString(key) {
		return MaskedValue
	}
	switch v := value.(type) {
	case map[string]any:
		masked := make(map[string]any, len(v))
		for k, item := range v {
			masked[k] = Mask(k, item)
		}
		return masked
	case []any:
		masked := make([]any, len(v))
		for i, item := range v {
			masked[i] = Mask("", item)
		}
		return masked
	case map[string]database.Config:
		masked := make(map[string]database.Config, len(v))
		for alias, cfg := range v {
			if cfg.Password != "" {
				cfg.Password = MaskedValue
			}
			masked[alias] = cfg
		}
		return masked
	}
	return value
}

// decode applies values onto s and returns the keys that matched no field.
// Maps and slices are replaced rather than merged.
func decode(values map[string]any, s *Settings) ([]string, error) {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           s,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ZeroFields:       true,
		Metadata:         &md,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(values); err != nil {
		return nil, err
	}
	return md.Unused, nil
}
