package xmlbuilder

import "bytes"

var (
	escAmp  = []byte("&amp;")
	escQuot = []byte("&quot;")
	escApos = []byte("&apos;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
)

// printer accumulates the document. bytes.Buffer grows geometrically, so
// appends stay amortised O(1) even for trees with hundreds of thousands
// of nodes.
type printer struct {
	*bytes.Buffer
}

// EscapeString writes s with the five XML entities substituted. The scan
// visits each input byte exactly once and never re-examines written
// output, so an ampersand introduced by a substitution cannot be escaped
// a second time.
func (p printer) EscapeString(s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc []byte
		switch s[i] {
		case '&':
			esc = escAmp
		case '"':
			esc = escQuot
		case '\'':
			esc = escApos
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		default:
			continue
		}
		p.WriteString(s[last:i])
		p.Write(esc)
		last = i + 1
	}
	p.WriteString(s[last:])
}

func (p printer) printAttr(name, value string) {
	p.WriteByte(' ')
	p.WriteString(name)
	p.WriteString(`="`)
	p.EscapeString(value)
	p.WriteByte('"')
}

func (p printer) printDecl(encoding string) {
	p.WriteString(`<?xml version="1.0" encoding="`)
	p.WriteString(encoding)
	p.WriteString(`" standalone="yes"?>`)
}
