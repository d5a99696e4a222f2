// Package loader provides the installed-app system.
//
// Apps are compiled-in features registered under dotted names, usually from
// an init() in the app's package:
//
//	func init() {
//	    loader.Register("contrib.health", func(d loader.Deps) loader.Feature {
//	        return NewFeature(d)
//	    })
//	}
//
// INSTALLED_APPS in the settings module then selects which of them are
// mounted, in order. A name without a registered factory is an error.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the features of one application. It handles:
//   - Building features for installed app names via Install()
//   - Registration of ad-hoc features via Register()
//   - Loading of enabled features via LoadAll()
package loader
