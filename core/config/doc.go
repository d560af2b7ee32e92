// Package config resolves the settings every command runs with.
//
// It utilizes Viper for layering configuration sources and godotenv for an
// optional `.env` file. Sources are applied in increasing precedence:
//
//  1. Built-in defaults from the `default` struct tags.
//  2. A JSON (or YAML) config file: the `--config` path, else the first of
//     `.i18next-typesafe.json` and `i18next-typesafe.config.json` found in the
//     working directory.
//  3. Environment variables prefixed with I18N_, e.g. I18N_LOCALES or
//     I18N_VALIDATION_MAXUNUSEDKEYS.
//  4. Command-line flags the user explicitly set.
//
// Config file discovery happens here and nowhere else; the rest of the
// program receives a fully resolved *Config.
//
// # Configuration Structure
//
//   - input, output, watch: key type generation
//   - locales, languages, backend: where locale documents come from
//   - source, scan: which application files are searched
//   - validation: ignore patterns and the unused-key threshold
//   - server, storage, database, log: infrastructure settings
//
// # Usage
//
//	cfg, err := config.LoadConfig(".", "", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.CanonicalLanguage())
package config
