package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deniedFs refuses to open one path.
type deniedFs struct {
	afero.Fs
	denied string
}

func (d deniedFs) Open(name string) (afero.File, error) {
	if filepath.Clean(name) == d.denied {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Open(name)
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
}

func defaultOptions() Options {
	return Options{
		Extensions: []string{".ts", ".tsx", ".js", ".jsx"},
		Exclude:    []string{"node_modules", "dist", "build", ".git"},
	}
}

func TestKeyCalls(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"/src/app.tsx":               `const a = t('nav.home'); const b = tNav("nav.about");`,
		"/src/lib/util.ts":           "t( `settings.theme` )\n// t('commented.out')",
		"/src/lib/other.js":          `format('not.a.key'); test('spec.name'); t('nav.home')`,
		"/src/readme.md":             `t('markdown.key')`,
		"/src/node_modules/pkg/x.js": `t('vendor.key')`,
		"/src/dist/bundle.js":        `t('dist.key')`,
		"/src/lib/legacy.jsx":        `tOld('legacy.title')`,
		"/src/lib/lower.ts":          `tnav('lower.key')`,
	})

	s := New(fs, defaultOptions())
	keys, err := s.KeyCalls(context.Background(), "/src")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"commented.out",
		"legacy.title",
		"nav.about",
		"nav.home",
		"settings.theme",
	}, keys.Sorted())
}

func TestPrefixesUsed(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{
		"/src/page.tsx":     `const { t } = useT(); prefixes('nav', "settings.profile")`,
		"/src/legacy.ts":    `const p = 'legacy.old';`,
		"/src/partial.ts":   `const p = 'dialog.confirm.extra';`,
		"/src/.git/HEAD.ts": `'hidden'`,
		"/src/build/out.js": `'build.only'`,
	})
	s := New(fs, defaultOptions())

	t.Run("Single Walk For Many Prefixes", func(t *testing.T) {
		used, err := s.PrefixesUsed(context.Background(), "/src", []string{
			"nav", "settings.profile", "legacy.old", "dialog.confirm", "hidden", "build.only",
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{
			"nav":              true,
			"settings.profile": true,
			"legacy.old":       true,
			"dialog.confirm":   false,
			"hidden":           false,
			"build.only":       false,
		}, used)
	})

	t.Run("Single Prefix", func(t *testing.T) {
		ok, err := s.PrefixUsed(context.Background(), "/src", "nav")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.PrefixUsed(context.Background(), "/src", "na")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Metacharacters Are Literal", func(t *testing.T) {
		ok, err := s.PrefixUsed(context.Background(), "/src", "legacy.ol.")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Empty List", func(t *testing.T) {
		used, err := s.PrefixesUsed(context.Background(), "/src", nil)
		require.NoError(t, err)
		assert.Empty(t, used)
	})
}

func TestScanErrors(t *testing.T) {
	t.Run("Unreadable Directory Is Reported And Skipped", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		writeFiles(t, mem, map[string]string{
			"/src/ok/a.ts":     `t('visible.key')`,
			"/src/locked/b.ts": `t('hidden.key')`,
		})

		var reported []string
		s := New(deniedFs{Fs: mem, denied: "/src/locked"}, Options{
			Extensions: []string{".ts"},
			OnError:    func(path string, err error) { reported = append(reported, path) },
		})

		keys, err := s.KeyCalls(context.Background(), "/src")
		require.NoError(t, err)
		assert.Equal(t, []string{"visible.key"}, keys.Sorted())
		assert.Contains(t, reported, "/src/locked")
	})

	t.Run("Unreadable File Is Reported And Skipped", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		writeFiles(t, mem, map[string]string{
			"/src/a.ts": `t('a.key')`,
			"/src/b.ts": `t('b.key')`,
		})

		var reported []string
		s := New(deniedFs{Fs: mem, denied: "/src/b.ts"}, Options{
			Extensions: []string{".ts"},
			OnError:    func(path string, err error) { reported = append(reported, path) },
		})

		keys, err := s.KeyCalls(context.Background(), "/src")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.key"}, keys.Sorted())
		assert.Equal(t, []string{"/src/b.ts"}, reported)
	})

	t.Run("Missing Root Yields Nothing", func(t *testing.T) {
		var reported []string
		s := New(afero.NewMemMapFs(), Options{
			Extensions: []string{".ts"},
			OnError:    func(path string, err error) { reported = append(reported, path) },
		})

		keys, err := s.KeyCalls(context.Background(), "/missing")
		require.NoError(t, err)
		assert.Equal(t, 0, keys.Len())
		assert.Equal(t, []string{"/missing"}, reported)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		writeFiles(t, mem, map[string]string{"/src/a.ts": `t('a.key')`})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(mem, defaultOptions()).KeyCalls(ctx, "/src")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
