package xmlbuilder

import (
	"fmt"
	"strconv"
)

// Elem represents an XML element to be rendered by the Builder.
//
// Attrs are written in declaration order. Content may mix Elem and Text
// nodes in any order; an Elem with no Content is rendered self-closed
// ("<tag/>"), an Elem with any Content at all is rendered with an explicit
// closing tag even if the only child is an empty Text.
type Elem struct {
	Name    string
	Attrs   []Attr
	Content []Node
}

func (e Elem) kind() NodeKind { return ElemNode }

// Text represents a text node. It is rendered escaped inside its parent
// element.
type Text string

func (t Text) kind() NodeKind { return TextNode }

// Value converts an arbitrary value into a Node. Elem and Text pass
// through; anything else becomes a Text node via its canonical string
// form. A nil value becomes the empty Text, never the literal "nil".
//
// This is the permissive entry point for callers that assemble trees from
// loosely typed data: anything that isn't an element is a text leaf.
func Value(v any) Node {
	// Pointer variants are in the Node method set too, via the promoted
	// value-receiver marker; they must not fall through to the scalar
	// default or they'd stringify as struct dumps.
	switch t := v.(type) {
	case Elem:
		return t
	case *Elem:
		if t == nil {
			return Text("")
		}
		return *t
	case Text:
		return t
	case *Text:
		if t == nil {
			return Text("")
		}
		return *t
	default:
		return Text(scalarString(v))
	}
}

// scalarString is the canonical string form shared by text nodes and
// attribute values. nil stringifies to "" so absent values never leak
// into a document.
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.FormatInt(int64(t), 10)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
