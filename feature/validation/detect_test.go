package validation

import (
	"fmt"
	"testing"

	"i18next-typesafe/core/catalog"
	"i18next-typesafe/core/pattern"

	"github.com/stretchr/testify/assert"
)

func TestDetectUnusedBlocks(t *testing.T) {
	t.Run("Ignored Block Passes", func(t *testing.T) {
		blocks := []catalog.Block{{Prefix: "legacy.old", KeyCount: 3}}
		ignore := pattern.Compile([]string{"legacy.*"})

		r := DetectUnusedBlocks(blocks, ignore, noneUsed(ScanTargets(blocks, ignore)))

		assert.True(t, r.Passed)
		assert.Equal(t, blocks, r.Ignored)
		assert.Empty(t, r.Unused)
		assert.Equal(t, BlockIgnored, r.Blocks[0].Status)
	})

	t.Run("Partitions Blocks", func(t *testing.T) {
		blocks := []catalog.Block{
			{Prefix: "nav", KeyCount: 2},
			{Prefix: "dialog", KeyCount: 4},
			{Prefix: "debug.panel", KeyCount: 1},
			{Prefix: "footer", KeyCount: 3},
		}
		ignore := pattern.Compile([]string{"debug.*"})
		used := map[string]bool{"nav": true, "dialog": false, "footer": false}

		r := DetectUnusedBlocks(blocks, ignore, used)

		assert.False(t, r.Passed)
		assert.Equal(t, []catalog.Block{{Prefix: "nav", KeyCount: 2}}, r.Used)
		assert.Equal(t, []catalog.Block{{Prefix: "dialog", KeyCount: 4}, {Prefix: "footer", KeyCount: 3}}, r.Unused)
		assert.Equal(t, []catalog.Block{{Prefix: "debug.panel", KeyCount: 1}}, r.Ignored)
		assert.Equal(t, 7, r.UnusedKeys)
		assert.Len(t, r.Blocks, 4)
	})

	t.Run("No Blocks", func(t *testing.T) {
		r := DetectUnusedBlocks(nil, nil, nil)
		assert.True(t, r.Passed)
	})
}

// noneUsed marks every prefix as unused.
func noneUsed(prefixes []string) map[string]bool {
	out := make(map[string]bool, len(prefixes))
	for _, p := range prefixes {
		out[p] = false
	}
	return out
}

func numberedKeys(n int) catalog.KeySet {
	keys := catalog.NewKeySet()
	for i := 0; i < n; i++ {
		keys.Add(fmt.Sprintf("page.key%02d", i))
	}
	return keys
}

func TestDetectUnusedKeys(t *testing.T) {
	empty := catalog.NewKeySet()

	t.Run("Eleven Unused Fails", func(t *testing.T) {
		r := DetectUnusedKeys(numberedKeys(11), empty, nil, empty, DefaultMaxUnusedKeys)
		assert.Len(t, r.Unused, 11)
		assert.False(t, r.Passed)
	})

	t.Run("Ten Unused Passes With Warning", func(t *testing.T) {
		r := DetectUnusedKeys(numberedKeys(10), empty, nil, empty, DefaultMaxUnusedKeys)
		assert.Len(t, r.Unused, 10)
		assert.True(t, r.Passed)
		assert.True(t, r.Warning())
	})

	t.Run("Evidence Ignore And Block Prefixes", func(t *testing.T) {
		keys := catalog.NewKeySet("nav.home", "nav.about", "title", "debug.one", "settings")
		prefixes := catalog.NewKeySet("settings")
		ignore := pattern.Compile([]string{"debug.*"})
		evidence := catalog.NewKeySet("nav.home", "not.in.catalog")

		r := DetectUnusedKeys(keys, prefixes, ignore, evidence, 0)

		assert.Equal(t, []string{"nav.about", "title"}, r.Unused)
		assert.Equal(t, 1, r.Ignored)
		assert.Equal(t, 5, r.TotalKeys)
		assert.Equal(t, 2, r.Calls)
		assert.Equal(t, []KeyGroup{
			{Block: RootGroup, Keys: []string{"title"}},
			{Block: "nav", Keys: []string{"nav.about"}},
		}, r.Groups)
		assert.False(t, r.Passed)
	})

	t.Run("All Used", func(t *testing.T) {
		keys := catalog.NewKeySet("a.b")
		r := DetectUnusedKeys(keys, empty, nil, keys, DefaultMaxUnusedKeys)
		assert.True(t, r.Passed)
		assert.False(t, r.Warning())
		assert.Empty(t, r.Groups)
	})
}
