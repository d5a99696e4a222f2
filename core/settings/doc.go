// Package settings resolves, imports and merges a project's settings module.
//
// A settings module is a YAML, TOML or JSON document whose upper-case
// top-level names are declarations, for example:
//
//	DEBUG: true
//	TIME_ZONE: Europe/Berlin
//	INSTALLED_APPS:
//	  - contrib.health
//	  - myproject.apps.*
//	LOGGING_CONFIG: logger.configure
//	LOGGING:
//	  level: debug
//	  format: console
//
// # Pipeline
//
//   - Locate: finds the module name and search roots from an explicit path,
//     the APPSERVE_SETTINGS_MODULE environment variable, or settings.yaml in
//     the working directory.
//   - Importer: walks a dotted name one segment at a time over its search
//     path, under a single lock, and decodes the leaf file.
//   - Merger: applies the module's declarations onto a live *Settings,
//     coerces single strings into lists, expands wildcard apps, installs the
//     timezone and runs the configured logging hook.
//
// # Usage
//
//	imp := settings.NewImporter()
//	merger := settings.NewMerger(imp, settings.NewLoggingRegistry(), zap.L())
//	live, resolved, err := settings.Load("", imp, merger)
package settings
