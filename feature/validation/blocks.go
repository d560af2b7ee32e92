package validation

import (
	"i18next-typesafe/core/catalog"
	"i18next-typesafe/core/pattern"
)

// BlockStatus classifies a block after the usage scan.
type BlockStatus string

const (
	BlockIgnored BlockStatus = "ignored"
	BlockUsed    BlockStatus = "used"
	BlockUnused  BlockStatus = "unused"
)

// BlockResult is one block and its classification.
type BlockResult struct {
	catalog.Block
	Status BlockStatus `json:"status"`
}

// BlocksReport is the outcome of the unused-block check.
type BlocksReport struct {
	Blocks  []BlockResult   `json:"blocks"`
	Used    []catalog.Block `json:"used"`
	Unused  []catalog.Block `json:"unused"`
	Ignored []catalog.Block `json:"ignored"`
	// UnusedKeys is the number of keys held by unused blocks.
	UnusedKeys int  `json:"unused_keys"`
	Passed     bool `json:"passed"`
}

// ScanTargets returns the prefixes of blocks that are not ignored, in order.
func ScanTargets(blocks []catalog.Block, ignore *pattern.Matcher) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if !ignore.Match(b.Prefix) {
			out = append(out, b.Prefix)
		}
	}
	return out
}

// DetectUnusedBlocks partitions blocks into ignored, used and unused.
// used holds the scan result for every non-ignored prefix; a prefix missing
// from it counts as unused. The check passes only when no block is unused.
func DetectUnusedBlocks(blocks []catalog.Block, ignore *pattern.Matcher, used map[string]bool) *BlocksReport {
	r := &BlocksReport{
		Blocks:  make([]BlockResult, 0, len(blocks)),
		Used:    []catalog.Block{},
		Unused:  []catalog.Block{},
		Ignored: []catalog.Block{},
	}

	for _, b := range blocks {
		var status BlockStatus
		switch {
		case ignore.Match(b.Prefix):
			status = BlockIgnored
			r.Ignored = append(r.Ignored, b)
		case used[b.Prefix]:
			status = BlockUsed
			r.Used = append(r.Used, b)
		default:
			status = BlockUnused
			r.Unused = append(r.Unused, b)
			r.UnusedKeys += b.KeyCount
		}
		r.Blocks = append(r.Blocks, BlockResult{Block: b, Status: status})
	}

	r.Passed = len(r.Unused) == 0
	return r
}
