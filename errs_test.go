package xmlbuilder

import (
	"errors"
	"strings"
	"testing"

	tt "github.com/waterfoul/xmlbuilder/testtool"
)

func TestMissingNameRoot(t *testing.T) {
	out, err := Build(Elem{})
	tt.Equals(t, "", out)

	var mne *MissingNameError
	tt.Assert(t, errors.As(err, &mne))
	tt.Assert(t, strings.Contains(err.Error(), "XML node missing name"))
}

func TestMissingNameNested(t *testing.T) {
	out, err := Build(Elem{Name: "root", Content: []Node{
		Elem{Name: "ok"},
		Elem{Name: "mid", Content: []Node{Elem{}}},
	}})
	tt.Equals(t, "", out)

	var mne *MissingNameError
	tt.Assert(t, errors.As(err, &mne))
}

func TestMaxNodes(t *testing.T) {
	b := New(WithMaxNodes(2))
	out, err := b.Build(Elem{Name: "root", Content: []Node{
		Elem{Name: "a"},
		Elem{Name: "b"},
	}})
	tt.Equals(t, "", out)

	var le *LimitError
	tt.Assert(t, errors.As(err, &le))
	tt.Equals(t, "nodes", le.Limit)
	tt.Equals(t, 2, le.Value)
	tt.Equals(t, ElemNode, le.Kind)
	tt.Pattern(t, `^xmlbuilder: elem node exceeds max nodes limit of \d+$`, err.Error())

	// Exactly at the budget is fine.
	out, err = b.Build(Elem{Name: "root", Content: []Node{Elem{Name: "a"}}})
	tt.OK(t, err)
	tt.Equals(t, decl+"<root><a/></root>", out)
}

func TestMaxNodesCountsTextLeaves(t *testing.T) {
	b := New(WithMaxNodes(2))
	_, err := b.Build(Elem{Name: "root", Content: []Node{
		Text("a"), Text("b"),
	}})

	var le *LimitError
	tt.Assert(t, errors.As(err, &le))
	tt.Equals(t, "nodes", le.Limit)
	tt.Equals(t, TextNode, le.Kind)
}

func TestMaxDepth(t *testing.T) {
	b := New(WithMaxDepth(1))

	out, err := b.Build(Elem{Name: "root", Content: []Node{Elem{Name: "a"}}})
	tt.OK(t, err)
	tt.Equals(t, decl+"<root><a/></root>", out)

	out, err = b.Build(Elem{Name: "root", Content: []Node{
		Elem{Name: "a", Content: []Node{Elem{Name: "deep"}}},
	}})
	tt.Equals(t, "", out)

	var le *LimitError
	tt.Assert(t, errors.As(err, &le))
	tt.Equals(t, "depth", le.Limit)
	tt.Equals(t, 1, le.Value)
	tt.Equals(t, ElemNode, le.Kind)
}
