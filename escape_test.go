package xmlbuilder

import (
	"bytes"
	"strings"
	"testing"

	tt "github.com/waterfoul/xmlbuilder/testtool"
)

func escape(s string) string {
	var buf bytes.Buffer
	printer{&buf}.EscapeString(s)
	return buf.String()
}

// unescape reverses escape for round-trip checks. &amp; must be undone
// last or entity text produced by the other substitutions would be
// corrupted.
var unescape = strings.NewReplacer(
	"&quot;", `"`,
	"&apos;", "'",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
)

func TestEscapeString(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out string
	}{
		{"", ""},
		{"plain", "plain"},
		{"&", "&amp;"},
		{`"`, "&quot;"},
		{"'", "&apos;"},
		{"<", "&lt;"},
		{">", "&gt;"},
		{"1&2", "1&amp;2"},
		{`a < b > c & d "e" 'f'`, "a &lt; b &gt; c &amp; d &quot;e&quot; &apos;f&apos;"},
		{"&&&", "&amp;&amp;&amp;"},
		{"résumé & café", "résumé &amp; café"},
	} {
		tt.Equals(t, tc.out, escape(tc.in))
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, in := range []string{
		`& " ' < >`,
		"a&amp;b",
		"<![CDATA[not special here]]>",
		`<a href="x?y=1&z=2">'quoted'</a>`,
	} {
		tt.Equals(t, in, unescape.Replace(escape(in)))
	}
}

func TestEscapeAppliedOnce(t *testing.T) {
	// A single pass must not touch the ampersands it emits itself; a
	// deliberate second pass must.
	tt.Equals(t, "&amp;", escape("&"))
	tt.Equals(t, "&amp;amp;", escape(escape("&")))
	tt.Equals(t, "&amp;lt;tag&amp;gt;", escape(escape("<tag>")))
}
