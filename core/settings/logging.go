package settings

import (
	"fmt"
	"strings"
	"sync"
)

// LoggingFunc receives the LOGGING declaration and wires the project's
// logging.
type LoggingFunc func(cfg map[string]any) error

// LoggingRegistry maps "<module>.<function>" paths to logging functions.
type LoggingRegistry struct {
	mu      sync.RWMutex
	modules map[string]map[string]LoggingFunc
}

// NewLoggingRegistry creates an empty registry.
func NewLoggingRegistry() *LoggingRegistry {
	return &LoggingRegistry{modules: map[string]map[string]LoggingFunc{}}
}

// Register binds path to fn. The path is split on its last dot into the
// module and the function name.
func (r *LoggingRegistry) Register(path string, fn LoggingFunc) {
	module, name, ok := splitFuncPath(path)
	if !ok {
		panic(fmt.Sprintf("settings: invalid logging function path %q", path))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.modules[module] == nil {
		r.modules[module] = map[string]LoggingFunc{}
	}
	r.modules[module][name] = fn
}

// Lookup resolves path to its function.
func (r *LoggingRegistry) Lookup(path string) (LoggingFunc, error) {
	module, name, ok := splitFuncPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a <module>.<function> path", ErrLoggingConfig, path)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	funcs, ok := r.modules[module]
	if !ok {
		return nil, fmt.Errorf("%w: no module named %q", ErrLoggingConfig, module)
	}
	fn, ok := funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: module %q has no function %q", ErrLoggingConfig, module, name)
	}
	return fn, nil
}

func splitFuncPath(path string) (module, name string, ok bool) {
	idx := strings.LastIndexByte(path, '.')
	if idx <= 0 || idx == len(path)-1 {
		return "", "", false
	}
	return path[:idx], path[idx+1:], true
}
