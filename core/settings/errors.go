package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrSettingsNotFound indicates the conventional settings file is absent.
	ErrSettingsNotFound = errors.New("settings not found")
	// ErrSettingsImportFailed indicates a dotted module name could not be
	// resolved on the search path.
	ErrSettingsImportFailed = errors.New("settings import failed")
	// ErrInvalidTimezone indicates TIME_ZONE names a zone missing from the
	// local zone database.
	ErrInvalidTimezone = errors.New("invalid timezone")
	// ErrInvalidSetting indicates a declaration could not be decoded onto
	// its typed field.
	ErrInvalidSetting = errors.New("invalid setting")
	// ErrLoggingConfig indicates LOGGING_CONFIG could not be resolved or the
	// resolved function failed.
	ErrLoggingConfig = errors.New("logging configuration failed")
)

// NotFoundError is returned when a settings file or module cannot be found.
// Import reports whether the failure happened while resolving a dotted
// module name rather than while locating a file on disk.
type NotFoundError struct {
	Name   string
	Import bool
}

func (e *NotFoundError) Error() string {
	if e.Import {
		return fmt.Sprintf("can't find '%s' in your search path", e.Name)
	}
	return fmt.Sprintf("settings file '%s' not found in current folder", e.Name)
}

// Is lets errors.Is match the matching sentinel.
func (e *NotFoundError) Is(target error) bool {
	if e.Import {
		return target == ErrSettingsImportFailed
	}
	return target == ErrSettingsNotFound
}

// InvalidTimezoneError reports the TIME_ZONE value that failed validation.
type InvalidTimezoneError struct {
	Value string
}

func (e *InvalidTimezoneError) Error() string {
	return "incorrect timezone setting: " + e.Value
}

func (e *InvalidTimezoneError) Is(target error) bool {
	return target == ErrInvalidTimezone
}
