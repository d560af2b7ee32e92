// Package locale loads translation documents by language code.
//
// Three backends implement Source:
//
//   - FSSource reads `<locales>/<lang><ext>` through afero.
//   - BucketSource reads `<prefix>/<lang><ext>` from an S3 or MinIO bucket.
//   - DatabaseSource reads `(translation_key, value)` rows of one locale from a
//     MySQL table and expands dotted keys back into nested objects.
//
// Every backend reports a missing language as ErrNotFound and malformed
// content as *ParseError, so callers can decide per document whether the
// failure is fatal or a warning.
package locale
