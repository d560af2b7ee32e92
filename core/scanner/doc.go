// Package scanner finds evidence of translation usage in application source.
//
// The scanner walks a directory tree, prunes excluded directory names such as
// node_modules or .git, and reads files whose name ends with an allowed
// extension. Matching is textual:
//
//   - KeyCalls collects the first string argument of `t('...')` and
//     `tFoo('...')` style calls.
//   - PrefixesUsed looks for `prefixes('...')` declarations or the quoted
//     prefix anywhere in a file.
//
// Neither mode parses the source language, so calls inside comments count as
// usage. Directories or files that cannot be read are passed to the OnError
// hook and skipped; they never fail the walk.
package scanner
