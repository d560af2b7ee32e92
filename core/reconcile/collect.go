package reconcile

import (
	"context"
	"sync"

	"i18next-typesafe/core/catalog"
)

// Loader returns the key set of one language.
type Loader func(ctx context.Context, lang string) (catalog.KeySet, error)

// LoadFailure records a language that could not be loaded.
type LoadFailure struct {
	Language string
	Err      error
}

// Collect loads every language concurrently.
// Loaded sources keep the order of langs; languages whose load failed are
// returned separately so the caller can warn and carry on.
func Collect(ctx context.Context, langs []string, load Loader) ([]KeySource, []LoadFailure) {
	var (
		keys = make([]catalog.KeySet, len(langs))
		errs = make([]error, len(langs))
		wg   sync.WaitGroup
	)

	wg.Add(len(langs))
	for i, lang := range langs {
		go func(i int, lang string) {
			defer wg.Done()
			keys[i], errs[i] = load(ctx, lang)
		}(i, lang)
	}
	wg.Wait()

	sources := make([]KeySource, 0, len(langs))
	var failures []LoadFailure
	for i, lang := range langs {
		if errs[i] != nil {
			failures = append(failures, LoadFailure{Language: lang, Err: errs[i]})
			continue
		}
		sources = append(sources, KeySource{Language: lang, Keys: keys[i]})
	}
	return sources, failures
}

// Dedupe drops repeated language codes, keeping the first occurrence.
func Dedupe(langs []string) []string {
	seen := make(map[string]struct{}, len(langs))
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		if _, ok := seen[l]; ok || l == "" {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
