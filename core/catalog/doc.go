// Package catalog models translation documents and derives key sets from them.
//
// A document is a tree of Node values. Objects keep their fields in the order
// they appear in the source file; null, string, number, bool and array values
// are leaves.
//
// # Keys
//
// Flatten produces the dotted path of every leaf:
//
//	{"nav": {"home": "Home", "about": null}, "title": "App"}
//	=> nav.home, nav.about, title
//
// # Blocks
//
// A block is a non-root object with at least one child where no child is an
// object. In the example above `nav` is a block with two keys. A block prefix
// never appears in the flattened key set of the same document.
//
// # Formats
//
// Decode reads JSON by default and YAML for `.yaml` or `.yml` names. The root
// of either must be an object.
package catalog
