package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("input", "src/locales/en.json", "")
	fs.String("locales", "src/locales", "")
	fs.StringSlice("languages", []string{"en"}, "")
	fs.String("log-level", "info", "")
	return fs
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir(), "", nil)
		require.NoError(t, err)

		assert.Equal(t, "src/locales/en.json", cfg.Input)
		assert.Equal(t, "src/types/i18n.generated.ts", cfg.Output)
		assert.False(t, cfg.Watch)
		assert.Equal(t, "src/locales", cfg.Locales)
		assert.Equal(t, "src", cfg.Source)
		assert.Equal(t, []string{"en"}, cfg.Languages)
		assert.Equal(t, BackendFS, cfg.Backend)
		assert.Empty(t, cfg.Validation.IgnoreKeys)
		assert.Empty(t, cfg.Validation.IgnoreBlocks)
		assert.Equal(t, 10, cfg.Validation.MaxUnusedKeys)
		assert.Equal(t, []string{".ts", ".tsx", ".js", ".jsx"}, cfg.Scan.Extensions)
		assert.Equal(t, []string{"node_modules", "dist", "build", ".git"}, cfg.Scan.Exclude)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "translations", cfg.Database.Table)
		assert.Empty(t, cfg.File)
	})

	t.Run("Discovers Config File", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "i18next-typesafe.config.json"), `{
			"locales": "public/locales",
			"languages": ["en", "fr", "de"],
			"validation": {
				"ignoreKeys": ["debug.*"],
				"ignoreBlocks": ["legacy.*"],
				"maxUnusedKeys": 3
			}
		}`)

		cfg, err := LoadConfig(dir, "", nil)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "i18next-typesafe.config.json"), cfg.File)
		assert.Equal(t, "public/locales", cfg.Locales)
		assert.Equal(t, []string{"en", "fr", "de"}, cfg.Languages)
		assert.Equal(t, []string{"debug.*"}, cfg.Validation.IgnoreKeys)
		assert.Equal(t, []string{"legacy.*"}, cfg.Validation.IgnoreBlocks)
		assert.Equal(t, 3, cfg.Validation.MaxUnusedKeys)
		assert.Equal(t, "src", cfg.Source)
	})

	t.Run("Dot File Wins Discovery", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".i18next-typesafe.json"), `{"source": "app"}`)
		writeFile(t, filepath.Join(dir, "i18next-typesafe.config.json"), `{"source": "lib"}`)

		cfg, err := LoadConfig(dir, "", nil)
		require.NoError(t, err)
		assert.Equal(t, "app", cfg.Source)
	})

	t.Run("Explicit Config File", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.yaml")
		writeFile(t, path, "source: web\nbackend: s3\nstorage:\n  bucket: i18n\n  prefix: locales\n")

		cfg, err := LoadConfig(t.TempDir(), path, nil)
		require.NoError(t, err)
		assert.Equal(t, "web", cfg.Source)
		assert.Equal(t, BackendS3, cfg.Backend)
		assert.Equal(t, "i18n", cfg.Storage.Bucket)
		assert.Equal(t, "locales", cfg.Storage.Prefix)
	})

	t.Run("Missing Explicit Config File", func(t *testing.T) {
		_, err := LoadConfig(t.TempDir(), "/does/not/exist.json", nil)
		assert.Error(t, err)
	})

	t.Run("Malformed Config File", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".i18next-typesafe.json"), `{"source": `)

		_, err := LoadConfig(dir, "", nil)
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("Env Overrides File", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".i18next-typesafe.json"), `{"locales": "from-file", "languages": ["en"]}`)
		t.Setenv("I18N_LOCALES", "from-env")
		t.Setenv("I18N_LANGUAGES", "en, fr")
		t.Setenv("I18N_VALIDATION_MAXUNUSEDKEYS", "0")

		cfg, err := LoadConfig(dir, "", nil)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Locales)
		assert.Equal(t, []string{"en", "fr"}, cfg.Languages)
		assert.Equal(t, 0, cfg.Validation.MaxUnusedKeys)
	})

	t.Run("Dot Env File", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("I18N_SOURCE", "")
		writeFile(t, filepath.Join(dir, ".env"), "I18N_SOURCE=from-dotenv\n")

		cfg, err := LoadConfig(dir, "", nil)
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.Source)
	})

	t.Run("Changed Flags Override Everything", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".i18next-typesafe.json"), `{"locales": "from-file", "input": "i18n/en.json"}`)
		t.Setenv("I18N_LOCALES", "from-env")

		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--locales", "from-flag", "--languages", "en,fr", "--log-level", "debug"}))

		cfg, err := LoadConfig(dir, "", flags)
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.Locales)
		assert.Equal(t, []string{"en", "fr"}, cfg.Languages)
		assert.Equal(t, "debug", cfg.Log.Level)
		// Unchanged flag defaults do not mask the file.
		assert.Equal(t, "i18n/en.json", cfg.Input)
	})

	t.Run("Unknown Backend", func(t *testing.T) {
		t.Setenv("I18N_BACKEND", "redis")
		_, err := LoadConfig(t.TempDir(), "", nil)
		assert.ErrorContains(t, err, "unknown backend")
	})
}

func TestCanonicalLanguage(t *testing.T) {
	tests := []struct {
		input string
		lang  string
		ext   string
	}{
		{"src/locales/en.json", "en", ".json"},
		{"locales/pt-BR.yaml", "pt-BR", ".yaml"},
		{"en", "en", ".json"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := &Config{Input: tt.input}
			assert.Equal(t, tt.lang, c.CanonicalLanguage())
			assert.Equal(t, tt.ext, c.Extension())
		})
	}
}
