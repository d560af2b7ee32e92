package validation

import (
	"i18next-typesafe/core/reconcile"
)

// SkippedLanguage is a language left out of the sync comparison.
type SkippedLanguage struct {
	Language string `json:"language"`
	Location string `json:"location"`
	Reason   string `json:"reason"`
}

// SyncReport is the outcome of the cross-language check.
type SyncReport struct {
	*reconcile.SyncResult
	Skipped []SkippedLanguage `json:"skipped"`
	Passed  bool              `json:"passed"`
}

// Mismatches returns the pairs that differ.
func (r *SyncReport) Mismatches() []reconcile.PairDiff {
	var out []reconcile.PairDiff
	for _, p := range r.Pairs {
		if !p.InSync() {
			out = append(out, p)
		}
	}
	return out
}
