package validation

import (
	"sort"

	"i18next-typesafe/core/catalog"
	"i18next-typesafe/core/pattern"
)

// RootGroup names the group of keys that sit directly under the document root.
const RootGroup = "(root)"

// DefaultMaxUnusedKeys is the largest unused-key count that still passes.
const DefaultMaxUnusedKeys = 10

// KeyGroup collects unused keys sharing a parent path.
type KeyGroup struct {
	Block string   `json:"block"`
	Keys  []string `json:"keys"`
}

// KeysReport is the outcome of the unused-key check.
type KeysReport struct {
	TotalKeys int `json:"total_keys"`
	// Calls is the number of distinct key literals found in source.
	Calls   int        `json:"calls"`
	Ignored int        `json:"ignored"`
	Unused  []string   `json:"unused"`
	Groups  []KeyGroup `json:"groups"`
	// Threshold is the largest unused count that still passes.
	Threshold int  `json:"threshold"`
	Passed    bool `json:"passed"`
}

// Warning reports whether unused keys exist without failing the check.
func (r *KeysReport) Warning() bool {
	return r.Passed && len(r.Unused) > 0
}

// DetectUnusedKeys lists keys that are not called in source, are not a block
// prefix and are not ignored. The check fails only when more than threshold
// keys are unused.
func DetectUnusedKeys(keys, blockPrefixes catalog.KeySet, ignore *pattern.Matcher, evidence catalog.KeySet, threshold int) *KeysReport {
	r := &KeysReport{
		TotalKeys: keys.Len(),
		Calls:     evidence.Len(),
		Unused:    []string{},
		Groups:    []KeyGroup{},
		Threshold: threshold,
	}

	groups := make(map[string][]string)
	for _, key := range keys.Sorted() {
		if ignore.Match(key) {
			r.Ignored++
			continue
		}
		if evidence.Has(key) || blockPrefixes.Has(key) {
			continue
		}
		r.Unused = append(r.Unused, key)

		parent := catalog.Parent(key)
		if parent == "" {
			parent = RootGroup
		}
		groups[parent] = append(groups[parent], key)
	}

	for block, members := range groups {
		r.Groups = append(r.Groups, KeyGroup{Block: block, Keys: members})
	}
	sort.Slice(r.Groups, func(i, j int) bool {
		return r.Groups[i].Block < r.Groups[j].Block
	})

	r.Passed = len(r.Unused) <= threshold
	return r
}
