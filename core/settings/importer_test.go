package settings

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImporter_AddRoots(t *testing.T) {
	imp := NewImporter()
	imp.AddRoots("/project", "/project/site")
	imp.AddRoots("/project")

	assert.Equal(t, []string{"/project/site", "/project"}, imp.SearchPath())
}

func TestImporter_Children(t *testing.T) {
	imp := NewImporter()
	for _, name := range []string{"contrib.sites", "contrib.admin", "contrib.admin.docs", "contrib._hidden", "contribx.app", "contrib"} {
		imp.Register(name, emptyModule)
	}

	assert.Equal(t, []string{"contrib.admin", "contrib.sites"}, imp.Children("contrib"))
	assert.Equal(t, []string{"contrib.admin.docs"}, imp.Children("contrib.admin"))
	assert.Empty(t, imp.Children("ghost"))
}

func TestImporter_Import(t *testing.T) {
	t.Run("FileModule", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "mysite", "settings.yaml"), "DEBUG: true\nTIME_ZONE: UTC\n")

		imp := NewImporter()
		imp.AddRoots(root)

		mod, err := imp.Import("mysite.settings")
		require.NoError(t, err)

		assert.Equal(t, "mysite.settings", mod.Name)
		assert.Equal(t, filepath.Join(root, "mysite", "settings.yaml"), mod.File)
		assert.Nil(t, mod.Path)
		assert.Equal(t, true, mod.Values["DEBUG"])
		assert.Equal(t, "UTC", mod.Values["TIME_ZONE"])
	})

	t.Run("NestedPackages", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "corp", "conf", "prod.toml"), "SECRET_KEY = \"x\"\n")

		imp := NewImporter()
		imp.AddRoots(root)

		mod, err := imp.Import("corp.conf.prod")
		require.NoError(t, err)
		assert.Equal(t, "corp.conf.prod", mod.Name)
		assert.Equal(t, "x", mod.Values["SECRET_KEY"])
	})

	t.Run("JSONModule", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "site", "settings.json"), `{"DEBUG": true, "lower": 1}`)

		imp := NewImporter()
		imp.AddRoots(root)

		mod, err := imp.Import("site.settings")
		require.NoError(t, err)
		assert.Equal(t, true, mod.Values["DEBUG"])
		assert.Contains(t, mod.Values, "lower")
	})

	t.Run("PackageModule", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "apps", "blog", "settings.yaml"), "")

		imp := NewImporter()
		imp.AddRoots(root)

		mod, err := imp.Import("apps")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "apps")}, mod.Path)
		assert.Equal(t, filepath.Join(root, "apps"), mod.Dir())
	})

	t.Run("FirstRootWins", func(t *testing.T) {
		first := t.TempDir()
		second := t.TempDir()
		writeFile(t, filepath.Join(first, "site", "settings.yaml"), "NAME: first\n")
		writeFile(t, filepath.Join(second, "site", "settings.yaml"), "NAME: second\n")

		imp := NewImporter()
		imp.AddRoots(second, first)

		mod, err := imp.Import("site.settings")
		require.NoError(t, err)
		assert.Equal(t, "first", mod.Values["NAME"])
	})

	t.Run("MissingSecondSegment", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a", "other", "c.yaml"), "BROKEN: [\n")

		imp := NewImporter()
		imp.AddRoots(root)

		mod, err := imp.Import("a.b.c")
		assert.Nil(t, mod)
		assert.ErrorIs(t, err, ErrSettingsImportFailed)
		assert.EqualError(t, err, "can't find 'a.b.c' in your search path")

		// The lock is released on failure.
		require.True(t, imp.mu.TryLock())
		imp.mu.Unlock()
	})

	t.Run("SegmentBelowLeafModule", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "site", "settings.yaml"), "DEBUG: true\n")

		imp := NewImporter()
		imp.AddRoots(root)

		_, err := imp.Import("site.settings.extra")
		assert.ErrorIs(t, err, ErrSettingsImportFailed)
	})

	t.Run("EmptySegment", func(t *testing.T) {
		imp := NewImporter()
		imp.AddRoots(t.TempDir())

		_, err := imp.Import("site..settings")
		assert.ErrorIs(t, err, ErrSettingsImportFailed)
	})

	t.Run("DecodeError", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "site", "settings.yaml"), "DEBUG: [\n")

		imp := NewImporter()
		imp.AddRoots(root)

		_, err := imp.Import("site.settings")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSettingsImportFailed)
		assert.True(t, imp.mu.TryLock())
		imp.mu.Unlock()
	})

	t.Run("RegisteredModule", func(t *testing.T) {
		imp := NewImporter()
		imp.Register("builtin.settings", func() (map[string]any, error) {
			return map[string]any{"DEBUG": true}, nil
		})

		mod, err := imp.Import("builtin.settings")
		require.NoError(t, err)
		assert.Equal(t, true, mod.Values["DEBUG"])
		assert.Equal(t, "", mod.Dir())
	})

	t.Run("RegisteredModuleError", func(t *testing.T) {
		imp := NewImporter()
		boom := errors.New("boom")
		imp.Register("builtin.settings", func() (map[string]any, error) { return nil, boom })

		_, err := imp.Import("builtin.settings")
		assert.ErrorIs(t, err, boom)
	})
}
