package loader

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"appserve/core/settings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrAppNotRegistered is returned when an installed app has no registered factory.
var ErrAppNotRegistered = errors.New("app not registered")

// Feature is an installable app.
type Feature interface {
	// Name returns the name of the feature.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes.
	Load(app fiber.Router) error
}

// Deps are the collaborators handed to app factories.
type Deps struct {
	Settings *settings.Settings
	Logger   *zap.Logger
	// DB is the default database; nil when none is configured or reachable.
	DB       *gorm.DB
	ProcName string
}

// Factory builds a Feature for the given dependencies.
type Factory func(deps Deps) Feature

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

// Register binds a dotted app name to its factory.
// Call this from an init() in the app's package. It panics on duplicates.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("loader: app %q registered twice", name))
	}
	registry[name] = factory
}

// Registered returns the sorted names of all registered apps.
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Manager holds the features to load into an application.
type Manager struct {
	features []Feature
	logger   *zap.Logger
}

// NewManager creates an empty Manager.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// Register adds a feature.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Install builds and registers the feature of every named app, in order.
// Every name must have been registered with Register.
func (m *Manager) Install(names []string, deps Deps) error {
	for _, name := range names {
		factory, ok := lookup(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrAppNotRegistered, name)
		}
		m.Register(factory(deps))
	}
	return nil
}

// Features returns the registered features in registration order.
func (m *Manager) Features() []Feature {
	return m.features
}

// LoadAll loads every enabled feature into app.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.logger.Info("Skipping disabled feature", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("load feature %s: %w", f.Name(), err)
		}
		m.logger.Info("Loaded feature", zap.String("feature", f.Name()))
	}
	return nil
}
