package reconcile

import (
	"sort"

	"i18next-typesafe/core/catalog"
)

// CompareSync compares every unordered pair of key sets.
// Pairs follow the order of sources: (0,1), (0,2) ... (1,2) and so on.
// It returns ErrTooFewLanguages when fewer than two sources are given.
func CompareSync(sources []KeySource) (*SyncResult, error) {
	if len(sources) < 2 {
		return nil, ErrTooFewLanguages
	}

	result := &SyncResult{
		Languages: make([]string, 0, len(sources)),
		Pairs:     make([]PairDiff, 0, len(sources)*(len(sources)-1)/2),
		Drift:     []KeyResult{},
		InSync:    true,
	}
	for _, s := range sources {
		result.Languages = append(result.Languages, s.Language)
	}

	for i := 0; i < len(sources); i++ {
		for j := i + 1; j < len(sources); j++ {
			pair := diffPair(sources[i], sources[j])
			if !pair.InSync() {
				result.InSync = false
			}
			result.Pairs = append(result.Pairs, pair)
		}
	}

	union := buildUnion(sources)
	result.Summary = SyncSummary{
		TotalKeys:          len(union),
		KeysPerLanguage:    make(map[string]int, len(sources)),
		MissingPerLanguage: make(map[string]int, len(sources)),
	}
	for _, s := range sources {
		result.Summary.KeysPerLanguage[s.Language] = s.Keys.Len()
		result.Summary.MissingPerLanguage[s.Language] = 0
	}

	for key := range union {
		kr := buildResult(key, sources)
		if len(kr.Missing) == 0 {
			continue
		}
		for _, lang := range kr.Missing {
			result.Summary.MissingPerLanguage[lang]++
		}
		result.Drift = append(result.Drift, kr)
	}

	// Sort drift by key for deterministic output
	sort.Slice(result.Drift, func(i, j int) bool {
		return result.Drift[i].Key < result.Drift[j].Key
	})

	return result, nil
}

// Pair returns the comparison of languages a and b, in that orientation.
func (r *SyncResult) Pair(a, b string) (PairDiff, bool) {
	for _, p := range r.Pairs {
		switch {
		case p.A == a && p.B == b:
			return p, true
		case p.A == b && p.B == a:
			return PairDiff{A: a, B: b, OnlyInA: p.OnlyInB, OnlyInB: p.OnlyInA}, true
		}
	}
	return PairDiff{}, false
}

func diffPair(a, b KeySource) PairDiff {
	return PairDiff{
		A:       a.Language,
		B:       b.Language,
		OnlyInA: a.Keys.Difference(b.Keys),
		OnlyInB: b.Keys.Difference(a.Keys),
	}
}

// buildUnion creates a union of the keys of every source.
func buildUnion(sources []KeySource) catalog.KeySet {
	sets := make([]catalog.KeySet, 0, len(sources))
	for _, s := range sources {
		sets = append(sets, s.Keys)
	}
	return catalog.Union(sets...)
}

// buildResult records which sources define key.
func buildResult(key string, sources []KeySource) KeyResult {
	kr := KeyResult{Key: key, Present: []string{}, Missing: []string{}}
	for _, s := range sources {
		if s.Keys.Has(key) {
			kr.Present = append(kr.Present, s.Language)
		} else {
			kr.Missing = append(kr.Missing, s.Language)
		}
	}
	return kr
}
