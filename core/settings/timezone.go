package settings

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// DefaultZoneinfoRoot is the local zone database consulted to validate TIME_ZONE.
const DefaultZoneinfoRoot = "/usr/share/zoneinfo"

// tzReloadSupported mirrors platforms where TZ in the environment drives the
// local zone.
var tzReloadSupported = runtime.GOOS != "windows"

// validateTimezone fails only when the database root exists and has no entry
// for tz.
func validateTimezone(root, tz string) error {
	if root == "" {
		return nil
	}
	if _, err := os.Stat(root); err != nil {
		return nil
	}
	parts := append([]string{root}, strings.Split(tz, "/")...)
	if _, err := os.Stat(filepath.Join(parts...)); err != nil {
		return &InvalidTimezoneError{Value: tz}
	}
	return nil
}

// installTimezone exports TZ and reloads time.Local. A zone the runtime
// cannot load leaves time.Local untouched.
func installTimezone(tz string) error {
	if err := os.Setenv("TZ", tz); err != nil {
		return err
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	time.Local = loc
	return nil
}
