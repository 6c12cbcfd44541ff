package xmlbuilder

import (
	"bytes"

	"golang.org/x/text/encoding"
)

const (
	defaultBufSize  = 2048
	defaultEncoding = "UTF-8"
)

// Builder renders node trees into XML document strings.
//
// A Builder holds configuration only; all traversal state lives on the
// stack of each Build call, so a single Builder may serve any number of
// concurrent Build calls.
type Builder struct {
	// MaxDepth limits element nesting depth. 0 means no limit.
	MaxDepth int

	// MaxNodes limits the total number of nodes visited, text leaves
	// included. 0 means no limit.
	MaxNodes int

	// Determines how much memory the output buffer starts with. Set to 0
	// to use the default.
	InitialBufSize int

	encodingLabel string
	encoder       *encoding.Encoder
}

// Option is an option to the Builder.
type Option func(b *Builder)

// WithMaxDepth sets a nesting depth budget. Exceeding it fails the build
// with a LimitError.
func WithMaxDepth(n int) Option {
	return func(b *Builder) { b.MaxDepth = n }
}

// WithMaxNodes sets a node count budget. Exceeding it fails the build
// with a LimitError.
func WithMaxNodes(n int) Option {
	return func(b *Builder) { b.MaxNodes = n }
}

// WithEncoding re-encodes the finished document with the supplied encoder
// and places label into the declaration's encoding="..." attribute:
//
//	enc := charmap.Windows1252.NewEncoder()
//	b := xmlbuilder.New(xmlbuilder.WithEncoding("windows-1252", enc))
//
// Trees are still assembled from UTF-8 strings - the document is
// converted after it is rendered. Characters the target encoding cannot
// represent are written as numeric character references.
func WithEncoding(label string, enc *encoding.Encoder) Option {
	return func(b *Builder) {
		b.encodingLabel = label
		b.encoder = encoding.HTMLEscapeUnsupported(enc)
	}
}

// New returns a Builder configured with the supplied options. The zero
// Builder is also valid and produces UTF-8 documents.
func New(options ...Option) *Builder {
	b := &Builder{}
	for _, o := range options {
		o(b)
	}
	return b
}

// Build renders root into a complete XML document string: the fixed
// declaration followed immediately by the rendered tree, single line, no
// added whitespace. root may be an element or a bare text node.
//
// On error no partial document is returned.
func (b *Builder) Build(root Node) (string, error) {
	buf, err := b.render(root)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildBytes is Build returning the document as a byte slice.
func (b *Builder) BuildBytes(root Node) ([]byte, error) {
	buf, err := b.render(root)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Build renders root using a zero Builder. See Builder.Build.
func Build(root Node) (string, error) {
	var b Builder
	return b.Build(root)
}

func (b *Builder) render(root Node) (*bytes.Buffer, error) {
	bufsize := b.InitialBufSize
	if bufsize <= 0 {
		bufsize = defaultBufSize
	}
	buf := &bytes.Buffer{}
	buf.Grow(bufsize)

	st := &buildState{
		printer:  printer{buf},
		maxDepth: b.MaxDepth,
		maxNodes: b.MaxNodes,
	}

	label := b.encodingLabel
	if label == "" {
		label = defaultEncoding
	}
	st.printDecl(label)

	if err := st.node(root, 0); err != nil {
		return nil, err
	}

	if b.encoder != nil {
		out, err := b.encoder.Bytes(buf.Bytes())
		if err != nil {
			return nil, err
		}
		buf = bytes.NewBuffer(out)
	}
	return buf, nil
}

// buildState is the per-call traversal state. A fresh one is created for
// every render, which is what keeps Build reentrant.
type buildState struct {
	printer
	visited  int
	maxDepth int
	maxNodes int
}

func (st *buildState) node(n Node, depth int) error {
	st.visited++
	if st.maxNodes > 0 && st.visited > st.maxNodes {
		return &LimitError{Kind: kindOf(n), Limit: "nodes", Value: st.maxNodes}
	}
	if st.maxDepth > 0 && depth > st.maxDepth {
		return &LimitError{Kind: kindOf(n), Limit: "depth", Value: st.maxDepth}
	}

	// Both value and pointer variants are in the Node method set; a
	// pointer element is still an element.
	switch t := n.(type) {
	case Elem:
		return st.elem(t, depth)
	case *Elem:
		if t == nil {
			return nil
		}
		return st.elem(*t, depth)
	case Text:
		st.EscapeString(string(t))
		return nil
	case *Text:
		if t != nil {
			st.EscapeString(string(*t))
		}
		return nil
	case nil:
		return nil
	}
	return nil
}

func kindOf(n Node) NodeKind {
	if n == nil {
		return NoNode
	}
	return n.kind()
}

func (st *buildState) elem(e Elem, depth int) error {
	if e.Name == "" {
		return &MissingNameError{}
	}

	st.WriteByte('<')
	st.WriteString(e.Name)
	for _, a := range e.Attrs {
		st.printAttr(a.Name, a.Value)
	}

	if len(e.Content) == 0 {
		st.WriteString("/>")
		return nil
	}

	st.WriteByte('>')
	for _, c := range e.Content {
		if err := st.node(c, depth+1); err != nil {
			return err
		}
	}
	st.WriteString("</")
	st.WriteString(e.Name)
	st.WriteByte('>')
	return nil
}
