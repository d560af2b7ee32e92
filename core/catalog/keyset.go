package catalog

import "sort"

// KeySet is an unordered set of dotted key paths.
type KeySet map[string]struct{}

// NewKeySet builds a set from the given keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts key into the set.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Has reports whether key is a member.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of members.
func (s KeySet) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order.
func (s KeySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Difference returns the sorted members of s that are absent from other.
func (s KeySet) Difference(other KeySet) []string {
	out := make([]string, 0)
	for k := range s {
		if !other.Has(k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Union merges every set into a new one.
func Union(sets ...KeySet) KeySet {
	out := make(KeySet)
	for _, s := range sets {
		for k := range s {
			out[k] = struct{}{}
		}
	}
	return out
}
