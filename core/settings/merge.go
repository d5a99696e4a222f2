package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"
)

const wildcardSuffix = ".*"

// tupleSettings are list declarations that tolerate a single string.
var tupleSettings = []string{"INSTALLED_APPS", "TEMPLATE_DIRS"}

var appNamePattern = regexp.MustCompile(`^[a-zA-Z]\w*`)

// Merger applies settings modules onto live settings.
type Merger struct {
	importer *Importer
	logging  *LoggingRegistry
	logger   *zap.Logger

	// ZoneinfoRoot is the zone database TIME_ZONE is validated against.
	ZoneinfoRoot string
	// InstallTimezone exports a validated TIME_ZONE to the process.
	InstallTimezone func(tz string) error
}

// NewMerger creates a Merger. The importer resolves wildcard app packages and
// the registry resolves LOGGING_CONFIG.
func NewMerger(importer *Importer, logging *LoggingRegistry, logger *zap.Logger) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Merger{
		importer:        importer,
		logging:         logging,
		logger:          logger,
		ZoneinfoRoot:    DefaultZoneinfoRoot,
		InstallTimezone: installTimezone,
	}
}

// Merge copies the upper-case declarations of m onto live, then normalises
// INSTALLED_APPS, installs TIME_ZONE and runs LOGGING_CONFIG.
//
// An invalid TIME_ZONE is reported as *InvalidTimezoneError and leaves the
// process zone untouched.
func (mg *Merger) Merge(live *Settings, m *Module) error {
	declared := make(map[string]any, len(m.Values))
	for name, value := range m.Values {
		if name != strings.ToUpper(name) {
			continue
		}
		if slices.Contains(tupleSettings, name) {
			if s, ok := value.(string); ok {
				value = []string{s}
			}
		}
		declared[name] = value
	}

	unused, err := decode(declared, live)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidSetting, m.Name, err)
	}
	if live.Extra == nil {
		live.Extra = map[string]any{}
	}
	for _, name := range unused {
		if value, ok := declared[name]; ok {
			live.Extra[name] = value
		}
	}

	apps, err := mg.expandApps(live.InstalledApps)
	if err != nil {
		return err
	}
	live.InstalledApps = apps

	if tzReloadSupported && live.TimeZone != "" {
		if err := validateTimezone(mg.ZoneinfoRoot, live.TimeZone); err != nil {
			return err
		}
		if err := mg.InstallTimezone(live.TimeZone); err != nil {
			return fmt.Errorf("install timezone %s: %w", live.TimeZone, err)
		}
	}

	if live.LoggingConfig != "" && mg.logging != nil {
		fn, err := mg.logging.Lookup(live.LoggingConfig)
		if err != nil {
			return err
		}
		if err := fn(live.Logging); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoggingConfig, live.LoggingConfig, err)
		}
	}

	mg.logger.Debug("Merged settings module",
		zap.String("module", m.Name),
		zap.Int("declarations", len(declared)),
		zap.Strings("installed_apps", live.InstalledApps))
	return nil
}

// expandApps replaces every "<pkg>.*" entry with one entry per qualifying
// subdirectory of pkg, in lexical order. Without a package directory the
// modules registered below pkg are used instead. Other entries keep their
// order.
func (mg *Merger) expandApps(apps []string) ([]string, error) {
	if apps == nil {
		return nil, nil
	}
	expanded := make([]string, 0, len(apps))
	for _, app := range apps {
		pkg, ok := strings.CutSuffix(app, wildcardSuffix)
		if !ok {
			expanded = append(expanded, app)
			continue
		}

		// A package on disk wins; registered modules cover compiled-in apps.
		module, err := mg.importer.Import(pkg)
		if err != nil && !errors.Is(err, ErrSettingsImportFailed) {
			return nil, fmt.Errorf("expand %s: %w", app, err)
		}
		dir := ""
		if module != nil {
			dir = module.Dir()
		}
		if dir == "" {
			registered := mg.importer.Children(pkg)
			if len(registered) == 0 {
				return nil, fmt.Errorf("expand %s: %w", app, &NotFoundError{Name: pkg, Import: true})
			}
			expanded = append(expanded, registered...)
			continue
		}

		// os.ReadDir returns entries sorted by name.
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", app, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if !appNamePattern.MatchString(name) {
				continue
			}
			if info, err := os.Stat(filepath.Join(dir, name)); err != nil || !info.IsDir() {
				continue
			}
			expanded = append(expanded, pkg+"."+name)
		}
	}
	return expanded, nil
}

// Load runs the whole pipeline: locate, import, merge.
// The returned Resolved is non-nil whenever location succeeded.
func Load(explicitPath string, importer *Importer, merger *Merger) (*Settings, *Resolved, error) {
	resolved, err := Locate(explicitPath)
	if err != nil {
		return nil, nil, err
	}

	importer.AddRoots(resolved.SearchRoots...)
	module, err := importer.Import(resolved.ModuleName)
	if err != nil {
		return nil, resolved, err
	}

	live := New()
	live.ModuleName = resolved.ModuleName
	if err := merger.Merge(live, module); err != nil {
		return nil, resolved, err
	}
	return live, resolved, nil
}
