package catalog

// Flatten returns every root-to-leaf dotted path of the document.
// Null, scalar and array values terminate a path; objects are descended.
func Flatten(doc *Document) KeySet {
	keys := make(KeySet)
	if doc == nil {
		return keys
	}
	flattenInto(keys, doc.Root, "")
	return keys
}

// FlattenNode flattens an object node under the given prefix.
func FlattenNode(n *Node, prefix string) KeySet {
	keys := make(KeySet)
	flattenInto(keys, n, prefix)
	return keys
}

func flattenInto(keys KeySet, n *Node, prefix string) {
	if !n.IsObject() {
		return
	}
	for _, f := range n.Fields {
		path := join(prefix, f.Key)
		if f.Value.IsObject() {
			flattenInto(keys, f.Value, path)
			continue
		}
		keys.Add(path)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
