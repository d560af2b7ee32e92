// Package validation checks translation catalogs against each other and against
// application source.
//
// # Checks
//
//   - Sync: every configured language must define exactly the same keys.
//     Languages whose document is missing or malformed are skipped with a
//     warning; at least two must remain.
//   - Blocks: every block of the canonical document (an object whose children
//     are all leaves) must be referenced in source, either through a
//     `prefixes('...')` declaration or as a quoted string. Any unused block
//     fails the check.
//   - Keys: every key of the canonical document should appear as the first
//     argument of a `t('...')` style call. Unused keys are grouped by parent
//     for reporting and only fail the check when there are more than
//     MaxUnusedKeys of them (10 by default).
//
// Ignore patterns from configuration suppress blocks and keys that are known
// to be used indirectly.
//
// # Detectors and Service
//
// DetectUnusedBlocks and DetectUnusedKeys are pure functions over key sets and
// scan results. Service wires them to a locale.Source and a scanner, and
// coalesces concurrent identical scans so the HTTP server never walks the
// same tree twice at once.
//
// # Reports
//
// Printer renders reports as colored text or JSON. Policy violations are data
// in the report (Passed == false); errors are reserved for documents that
// cannot be loaded.
//
// # Routes
//
//	GET /validate         all checks, run concurrently
//	GET /validate/sync
//	GET /validate/blocks
//	GET /validate/keys
package validation
