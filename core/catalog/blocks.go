package catalog

import "strings"

// Block is an object whose direct children are all leaves.
type Block struct {
	Prefix   string `json:"prefix"`
	KeyCount int    `json:"key_count"`
}

// ExtractBlocks walks the document in order and returns every block.
// The root object is never reported as a block; deeper objects are always
// examined whether or not their parent qualified.
func ExtractBlocks(doc *Document) []Block {
	blocks := make([]Block, 0)
	if doc == nil || !doc.Root.IsObject() {
		return blocks
	}
	for _, f := range doc.Root.Fields {
		if f.Value.IsObject() {
			blocks = extractInto(blocks, f.Value, f.Key)
		}
	}
	return blocks
}

func extractInto(blocks []Block, n *Node, path string) []Block {
	if isBlock(n) {
		blocks = append(blocks, Block{Prefix: path, KeyCount: len(n.Fields)})
	}
	for _, f := range n.Fields {
		if f.Value.IsObject() {
			blocks = extractInto(blocks, f.Value, join(path, f.Key))
		}
	}
	return blocks
}

func isBlock(n *Node) bool {
	if len(n.Fields) == 0 {
		return false
	}
	for _, f := range n.Fields {
		if f.Value.IsObject() {
			return false
		}
	}
	return true
}

// BlockPrefixes returns the prefixes of blocks as a set.
func BlockPrefixes(blocks []Block) KeySet {
	s := make(KeySet, len(blocks))
	for _, b := range blocks {
		s.Add(b.Prefix)
	}
	return s
}

// Parent returns the key path without its last segment, or "" for a root-level key.
func Parent(key string) string {
	i := strings.LastIndex(key, ".")
	if i < 0 {
		return ""
	}
	return key[:i]
}
