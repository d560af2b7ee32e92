// Package pattern compiles the ignore-pattern language used by the validators.
//
// Patterns come from the `validation.ignoreKeys` and `validation.ignoreBlocks`
// configuration lists. The language is deliberately tiny:
//
//   - `*` matches any run of characters, including an empty run and dots.
//   - Every other character matches itself.
//
// A pattern must match the whole candidate; `legacy.*` matches `legacy.old.title`
// but not `app.legacy.old`.
//
// # Usage
//
//	m := pattern.Compile([]string{"legacy.*", "debug.panel"})
//	m.Match("legacy.old.title") // true
package pattern
