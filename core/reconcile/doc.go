// Package reconcile compares the key sets of several languages.
//
// Each language contributes one KeySource. CompareSync computes, for every
// unordered pair, the keys only the first language has and the keys only the
// second has. The comparison fails as soon as any pair differs in either
// direction.
//
// # Architecture
//
//  1. Collect loads key sets concurrently through a Loader and separates
//     languages that failed to load, so one broken file never aborts the rest.
//  2. CompareSync builds the pairwise differences, the union of all keys and a
//     per-key presence list (Drift) used for reporting.
//
// At least two sources are required. With fewer, CompareSync returns
// ErrTooFewLanguages instead of reporting success.
//
// # Usage Example
//
//	sources, failures := reconcile.Collect(ctx, []string{"en", "fr"}, loadKeys)
//	for _, f := range failures {
//	    log.Warn("skipping language", zap.String("lang", f.Language), zap.Error(f.Err))
//	}
//	result, err := reconcile.CompareSync(sources)
//	if errors.Is(err, reconcile.ErrTooFewLanguages) {
//	    // nothing to compare
//	}
package reconcile
