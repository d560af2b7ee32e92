package reconcile

import (
	"errors"

	"i18next-typesafe/core/catalog"
)

// ErrTooFewLanguages is returned when fewer than two key sets are available.
var ErrTooFewLanguages = errors.New("sync comparison needs at least two languages")

// KeySource is the key set loaded for one language.
type KeySource struct {
	// Language is the language code, e.g. "en".
	Language string

	// Keys is the flattened key set of that language's document.
	Keys catalog.KeySet
}

// PairDiff holds both one-sided differences for a pair of languages.
type PairDiff struct {
	// A and B are the compared language codes, A listed first.
	A string `json:"a"`
	B string `json:"b"`

	// OnlyInA lists sorted keys present in A but missing in B.
	OnlyInA []string `json:"only_in_a"`

	// OnlyInB lists sorted keys present in B but missing in A.
	OnlyInB []string `json:"only_in_b"`
}

// InSync reports whether the pair has no differences.
func (p PairDiff) InSync() bool {
	return len(p.OnlyInA) == 0 && len(p.OnlyInB) == 0
}

// KeyResult is the presence of one key across every compared language.
type KeyResult struct {
	// Key is the dotted key path.
	Key string `json:"key"`

	// Present lists languages defining the key, in comparison order.
	Present []string `json:"present"`

	// Missing lists languages lacking the key, in comparison order.
	Missing []string `json:"missing"`
}

// SyncResult is the outcome of comparing several languages.
type SyncResult struct {
	// Languages are the compared language codes in the order given.
	Languages []string `json:"languages"`

	// Pairs holds one entry per unordered language pair.
	Pairs []PairDiff `json:"pairs"`

	// Drift lists every key missing from at least one language, sorted by key.
	Drift []KeyResult `json:"drift"`

	// Summary provides aggregate counts.
	Summary SyncSummary `json:"summary"`

	// InSync is true when every pair matches exactly.
	InSync bool `json:"in_sync"`
}

// SyncSummary provides aggregate statistics for a sync comparison.
type SyncSummary struct {
	// TotalKeys is the size of the union of all key sets.
	TotalKeys int `json:"total_keys"`

	// KeysPerLanguage is the key count of each language.
	KeysPerLanguage map[string]int `json:"keys_per_language"`

	// MissingPerLanguage counts union keys each language lacks.
	MissingPerLanguage map[string]int `json:"missing_per_language"`
}
