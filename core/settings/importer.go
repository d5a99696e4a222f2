package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SourceExtensions are the settings file extensions the importer recognises,
// in lookup order.
var SourceExtensions = []string{".yaml", ".yml", ".toml", ".json"}

// Module is a loaded settings module or package.
type Module struct {
	// Name is the dotted module name.
	Name string
	// File is the source file; empty for packages and registered modules.
	File string
	// Path is the sub-search path of a package; nil for leaf modules.
	Path []string
	// Values holds the top-level declarations of the module.
	Values map[string]any
}

// Dir returns the directory the module lives in.
func (m *Module) Dir() string {
	if len(m.Path) > 0 {
		return m.Path[0]
	}
	if m.File != "" {
		return filepath.Dir(m.File)
	}
	return ""
}

// LoaderFunc produces the declarations of a compiled-in module.
type LoaderFunc func() (map[string]any, error)

// Importer resolves dotted module names against a search path.
// A single mutex serialises every resolution.
type Importer struct {
	mu         sync.Mutex
	searchPath []string
	registry   map[string]LoaderFunc
}

// NewImporter creates an Importer with an empty search path.
func NewImporter() *Importer {
	return &Importer{registry: map[string]LoaderFunc{}}
}

// Register binds a dotted name to a compiled-in module. Registered names are
// resolved before the filesystem is consulted.
func (i *Importer) Register(name string, fn LoaderFunc) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.registry[name] = fn
}

// AddRoots prepends each root to the search path unless already present.
// The last root added is searched first.
func (i *Importer) AddRoots(roots ...string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, root := range roots {
		if slices.Contains(i.searchPath, root) {
			continue
		}
		i.searchPath = append([]string{root}, i.searchPath...)
	}
}

// Children returns the registered names directly below pkg whose last
// segment is a valid app name, in lexical order.
func (i *Importer) Children(pkg string) []string {
	i.mu.Lock()
	defer i.mu.Unlock()

	var names []string
	for name := range i.registry {
		rest, ok := strings.CutPrefix(name, pkg+".")
		if !ok || strings.Contains(rest, ".") || !appNamePattern.MatchString(rest) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SearchPath returns a copy of the current search path.
func (i *Importer) SearchPath() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.searchPath)
}

// Import resolves name one segment at a time and loads the final module.
// Any segment that cannot be found aborts the walk with a *NotFoundError.
func (i *Importer) Import(name string) (*Module, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if fn, ok := i.registry[name]; ok {
		values, err := fn()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		return &Module{Name: name, Values: values}, nil
	}

	if name == "" {
		return nil, &NotFoundError{Name: name, Import: true}
	}

	var module *Module
	scope := i.searchPath
	for _, part := range strings.Split(name, ".") {
		qualified := part
		if module != nil {
			if len(module.Path) == 0 {
				return nil, &NotFoundError{Name: name, Import: true}
			}
			scope = module.Path
			qualified = module.Name + "." + part
		}

		next, err := findModule(qualified, part, scope)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, &NotFoundError{Name: name, Import: true}
		}
		module = next
	}
	return module, nil
}

// findModule looks for part in every directory of scope. A package
// directory wins over a source file in the same directory. It returns nil
// when nothing matches.
func findModule(qualified, part string, scope []string) (*Module, error) {
	if part == "" {
		return nil, nil
	}
	for _, dir := range scope {
		candidate := filepath.Join(dir, part)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return &Module{Name: qualified, Path: []string{candidate}, Values: map[string]any{}}, nil
		}
		for _, ext := range SourceExtensions {
			file := candidate + ext
			info, err := os.Stat(file)
			if err != nil || info.IsDir() {
				continue
			}
			values, err := readSource(file)
			if err != nil {
				return nil, err
			}
			return &Module{Name: qualified, File: file, Values: values}, nil
		}
	}
	return nil, nil
}

// readSource decodes a settings file, keeping the case of every name.
func readSource(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	values := map[string]any{}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &values)
	case ".toml":
		err = toml.Unmarshal(data, &values)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&values)
	default:
		err = fmt.Errorf("unsupported settings format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}
