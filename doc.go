/*
Package xmlbuilder renders an in-memory tree of element and text nodes
into a single minified XML document string.

It is the serialization half of a document generator: the surrounding
application assembles a tree, xmlbuilder turns it into escaped XML text.
There is no parser, no namespaces, no CDATA or comments, and no
pretty-printing - the output is one line, declaration first.

A tree is made of two node shapes. Elem carries a name, ordered
attributes and ordered children; Text is an escaped text leaf:

	doc := xmlbuilder.Elem{
		Name:  "workbook",
		Attrs: []xmlbuilder.Attr{{Name: "version", Value: "1.0"}},
		Content: []xmlbuilder.Node{
			xmlbuilder.Elem{Name: "sheet", Attrs: []xmlbuilder.Attr{
				xmlbuilder.Attr{Name: "id"}.Int(1),
			}},
			xmlbuilder.Text("hello"),
		},
	}

	out, err := xmlbuilder.Build(doc)
	// <?xml version="1.0" encoding="UTF-8" standalone="yes"?>
	// <workbook version="1.0"><sheet id="1"/>hello</workbook>

Elements without children are self-closed; elements with any child at
all, even a single empty text node, get an explicit closing tag. An
element without a name fails the entire build with MissingNameError.

Builder options follow Dave Cheney's functional options pattern
(https://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis):

	b := xmlbuilder.New(
		xmlbuilder.WithMaxDepth(256),
		xmlbuilder.WithMaxNodes(1 << 20),
	)

Provided options are:
  - WithMaxDepth(int)
  - WithMaxNodes(int)
  - WithEncoding(string, *encoding.Encoder)

A Builder holds configuration only. Every Build call carries its own
traversal state, so one Builder can serve concurrent calls.
*/
package xmlbuilder
