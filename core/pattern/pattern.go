package pattern

import (
	"strings"

	"github.com/gobwas/glob"
)

// Matcher reports whether a key or block prefix is covered by any of a set of
// ignore patterns.
type Matcher struct {
	patterns []string
	globs    []glob.Glob
	// minLens holds the literal length of each pattern. A shorter candidate
	// can only satisfy a glob by overlapping its literal segments.
	minLens []int
}

// Compile builds a Matcher from ignore patterns.
// Only `*` is special; every other character, including glob metacharacters
// such as `?`, `[` or `{`, matches itself.
func Compile(patterns []string) *Matcher {
	m := &Matcher{}
	for _, p := range patterns {
		g, err := glob.Compile(quote(p))
		if err != nil {
			// Cannot happen after quoting, but a broken pattern must never match.
			continue
		}
		m.patterns = append(m.patterns, p)
		m.globs = append(m.globs, g)
		m.minLens = append(m.minLens, len(p)-strings.Count(p, "*"))
	}
	return m
}

// quote escapes everything except the `*` wildcard.
func quote(p string) string {
	parts := strings.Split(p, "*")
	for i, part := range parts {
		parts[i] = glob.QuoteMeta(part)
	}
	return strings.Join(parts, "*")
}

// Match returns true if candidate matches at least one pattern in full.
func (m *Matcher) Match(candidate string) bool {
	if m == nil {
		return false
	}
	for i, g := range m.globs {
		if len(candidate) < m.minLens[i] {
			continue
		}
		if g.Match(candidate) {
			return true
		}
	}
	return false
}

// Patterns returns the patterns the matcher was compiled from.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return m.patterns
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.globs)
}
