package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"i18next-typesafe/core/database"
	"i18next-typesafe/core/logger"
	"i18next-typesafe/core/server"
	"i18next-typesafe/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. I18N_LOCALES.
const EnvPrefix = "I18N"

// Catalog backends.
const (
	BackendFS    = "fs"
	BackendS3    = "s3"
	BackendMySQL = "mysql"
)

// FileNames are tried in order when no config file is given explicitly.
var FileNames = []string{".i18next-typesafe.json", "i18next-typesafe.config.json"}

// FlagKeys maps command-line flag names to configuration keys.
// Only flags the user actually set override other sources.
var FlagKeys = map[string]string{
	"input":     "input",
	"output":    "output",
	"watch":     "watch",
	"locales":   "locales",
	"source":    "source",
	"languages": "languages",
	"backend":   "backend",
	"log-level": "log.level",
	"port":      "server.port",
}

// Config holds all configuration for the application.
type Config struct {
	// Input is the canonical locale file the key type is generated from.
	Input string `mapstructure:"input" default:"src/locales/en.json"`
	// Output is the generated type declaration file.
	Output string `mapstructure:"output" default:"src/types/i18n.generated.ts"`
	// Watch regenerates whenever Input changes.
	Watch bool `mapstructure:"watch" default:"false"`
	// Locales is the directory holding `<lang>.json` files.
	Locales string `mapstructure:"locales" default:"src/locales"`
	// Source is the application source root scanned for usage.
	Source string `mapstructure:"source" default:"src"`
	// Languages are compared by the sync check.
	Languages []string `mapstructure:"languages" default:"en"`
	// Backend selects where locale documents are read from: fs, s3 or mysql.
	Backend string `mapstructure:"backend" default:"fs"`

	Validation ValidationConfig `mapstructure:"validation"`
	Scan       ScanConfig       `mapstructure:"scan"`

	// Server holds configuration for the HTTP report server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the S3/MinIO backend.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the MySQL backend.
	Database database.Config `mapstructure:"database"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// ValidationConfig tunes the unused-block and unused-key checks.
type ValidationConfig struct {
	IgnoreKeys   []string `mapstructure:"ignoreKeys" default:""`
	IgnoreBlocks []string `mapstructure:"ignoreBlocks" default:""`
	// MaxUnusedKeys is the largest unused-key count that still passes.
	MaxUnusedKeys int `mapstructure:"maxUnusedKeys" default:"10"`
}

// ScanConfig selects which source files are searched.
type ScanConfig struct {
	Extensions []string `mapstructure:"extensions" default:".ts,.tsx,.js,.jsx"`
	Exclude    []string `mapstructure:"exclude" default:"node_modules,dist,build,.git"`
}

// CanonicalLanguage is the base name of Input without its extension.
func (c *Config) CanonicalLanguage() string {
	base := filepath.Base(c.Input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Extension is the locale file extension, taken from Input.
func (c *Config) Extension() string {
	if ext := filepath.Ext(c.Input); ext != "" {
		return ext
	}
	return ".json"
}

// Validate checks settings that cannot be expressed as defaults.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFS, BackendS3, BackendMySQL:
	default:
		return fmt.Errorf("unknown backend %q (want fs, s3 or mysql)", c.Backend)
	}
	if c.Input == "" {
		return errors.New("input must not be empty")
	}
	if c.Validation.MaxUnusedKeys < 0 {
		return errors.New("validation.maxUnusedKeys must not be negative")
	}
	return nil
}

// LoadConfig resolves configuration from defaults, the config file, the
// environment and explicitly set flags, in increasing precedence.
// dir is searched for `.env` and the default config file names; file, when
// non-empty, must exist. flags may be nil.
func LoadConfig(dir, file string, flags *pflag.FlagSet) (*Config, error) {
	envPath := filepath.Join(dir, ".env")

	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	used, err := findConfigFile(dir, file)
	if err != nil {
		return nil, err
	}
	if used != "" {
		v.SetConfigFile(used)
		v.SetConfigType(configType(used))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", used, err)
		}
	}

	// Map environment variables to nested keys (e.g. I18N_SERVER_PORT -> server.port)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.File = used
	config.Languages = splitList(config.Languages)
	config.Scan.Extensions = splitList(config.Scan.Extensions)
	config.Scan.Exclude = splitList(config.Scan.Exclude)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func findConfigFile(dir, file string) (string, error) {
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return "", fmt.Errorf("config file %s: %w", file, err)
		}
		return file, nil
	}
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// splitList trims entries and expands comma-separated values coming from env
// variables, dropping empties.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
