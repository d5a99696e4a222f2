package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvironmentVariable carries the dotted settings module name.
	EnvironmentVariable = "APPSERVE_SETTINGS_MODULE"
	// DefaultSettingsFile is looked up in the working directory when neither
	// a path nor EnvironmentVariable is given.
	DefaultSettingsFile = "settings.yaml"
)

// Resolved is the outcome of Locate.
type Resolved struct {
	// ModuleName is the dotted settings module name.
	ModuleName string
	// SearchRoots are the directories the module is resolved against,
	// project directory first.
	SearchRoots []string
}

// Validate reports whether the module name is set and every root exists.
func (r *Resolved) Validate() error {
	if r.ModuleName == "" {
		return fmt.Errorf("%w: empty module name", ErrSettingsNotFound)
	}
	for _, root := range r.SearchRoots {
		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("search root %s: %w", root, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("search root %s is not a directory", root)
		}
	}
	return nil
}

// Locate determines the settings module name and its search roots.
//
// With an explicit path the module name is derived from the file's directory
// and stem, so "/srv/mysite/settings.yaml" becomes "mysite.settings". Without
// one, EnvironmentVariable is used as is; failing that DefaultSettingsFile
// must exist in the working directory. A derived name is written back to
// EnvironmentVariable.
func Locate(explicitPath string) (*Resolved, error) {
	var settingsPath, settingsFile, moduleName string

	if explicitPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		settingsPath = cwd
		if name, ok := os.LookupEnv(EnvironmentVariable); ok && name != "" {
			moduleName = name
		} else {
			settingsFile = DefaultSettingsFile
		}
	} else {
		abs, err := filepath.Abs(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", explicitPath, err)
		}
		settingsPath, settingsFile = filepath.Split(abs)
		settingsPath = filepath.Clean(settingsPath)
	}

	projectPath := filepath.Dir(settingsPath)
	if moduleName == "" {
		if _, err := os.Stat(filepath.Join(settingsPath, settingsFile)); err != nil {
			return nil, &NotFoundError{Name: settingsFile}
		}
		stem := strings.TrimSuffix(settingsFile, filepath.Ext(settingsFile))
		moduleName = filepath.Base(settingsPath) + "." + stem
		if err := os.Setenv(EnvironmentVariable, moduleName); err != nil {
			return nil, fmt.Errorf("set %s: %w", EnvironmentVariable, err)
		}
	}

	return &Resolved{
		ModuleName:  moduleName,
		SearchRoots: []string{projectPath, settingsPath},
	}, nil
}
