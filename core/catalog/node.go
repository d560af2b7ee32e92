package catalog

// Kind is the variant tag of a Node.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Node is one value of a translation document.
// Scalars keep their source text in Value, arrays use Items and objects use
// Fields in document order.
type Node struct {
	Kind   Kind
	Value  string
	Items  []*Node
	Fields []Field
}

// Field is a single key/value entry of an object node.
type Field struct {
	Key   string
	Value *Node
}

// IsObject reports whether the node is a nested mapping.
func (n *Node) IsObject() bool {
	return n != nil && n.Kind == KindObject
}

// IsLeaf reports whether the node terminates a key path.
// Null, scalars and arrays are all leaves.
func (n *Node) IsLeaf() bool {
	return !n.IsObject()
}

// Get returns the value stored under key in an object node.
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsObject() {
		return nil, false
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Constructors used by decoders and tests.

// Null returns a null node.
func Null() *Node { return &Node{Kind: KindNull} }

// String returns a string node.
func String(s string) *Node { return &Node{Kind: KindString, Value: s} }

// Number returns a number node holding its literal text.
func Number(text string) *Node { return &Node{Kind: KindNumber, Value: text} }

// Bool returns a boolean node.
func Bool(b bool) *Node {
	if b {
		return &Node{Kind: KindBool, Value: "true"}
	}
	return &Node{Kind: KindBool, Value: "false"}
}

// Array returns an array node.
func Array(items ...*Node) *Node { return &Node{Kind: KindArray, Items: items} }

// Object returns an object node with the given fields in order.
func Object(fields ...Field) *Node { return &Node{Kind: KindObject, Fields: fields} }

// F is shorthand for building a Field.
func F(key string, value *Node) Field { return Field{Key: key, Value: value} }

// Document is a parsed translation catalog. Its root is always an object.
type Document struct {
	// Name identifies where the document was loaded from (a path, object key or table).
	Name string
	Root *Node
}

// NewDocument wraps an object node as a document.
func NewDocument(name string, root *Node) *Document {
	if root == nil {
		root = Object()
	}
	return &Document{Name: name, Root: root}
}
