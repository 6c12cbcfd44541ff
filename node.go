package xmlbuilder

import "fmt"

// NodeKind is the kind of a tree node.
type NodeKind int

// Name returns a stable name for the NodeKind. If the NodeKind is invalid,
// the Name() will be empty. String() returns a human-readable representation
// for information purposes; if a stable string is required, use this instead.
func (n NodeKind) Name() string {
	if int(n) < nodeKindLength {
		return kindName[n]
	}
	return ""
}

// String returns a human-readable representation of the NodeKind. If a stable
// string is required, use Name().
func (n NodeKind) String() string {
	s := n.Name()
	if s == "" {
		s = "<unknown>"
	}
	return fmt.Sprintf("%s(%d)", s, n)
}

// Range of allowed NodeKind values.
const (
	NoNode NodeKind = iota
	ElemNode
	TextNode

	nodeKindLength int = iota
)

var kindName = [nodeKindLength]string{
	NoNode:   "none",
	ElemNode: "elem",
	TextNode: "text",
}

// Node is a member of the document tree: either an Elem or a Text. The
// variant is fixed when the tree is constructed, not probed during
// traversal.
type Node interface {
	kind() NodeKind
}
