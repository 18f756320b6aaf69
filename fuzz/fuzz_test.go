package fuzz

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/ndyaml"
)

// seedCorpus seeds the fuzzer with documents exercising every scalar
// style, container shape, and edge case the parser recognizes.
var seedCorpus = []string{
	"",
	"\n",
	"null\n",
	"~\n",
	"true\n",
	"false\n",
	"123\n",
	"-123\n",
	"0xFF\n",
	"0o17\n",
	"0b101\n",
	"1.5\n",
	"-1.5\n",
	".inf\n",
	"-.inf\n",
	".nan\n",
	"plain scalar\n",
	"'it''s'\n",
	"\"a\\nb\\tc\"\n",
	"name: Descartes\ncountry: Grece\n",
	"a:\n  b: 1\n  c: 2\n",
	"- 1\n- 2\n- 3\n",
	"a:\n  - 1\n  - 2\n",
	"# a leading comment\nkey: value  # trailing\n",
	"key: |\n  line one\n  line two\n",
	"key: |-\n  line one\n  line two\n",
	"key: |+\n  line one\n  line two\n\n\n",
	"key: >\n  folded\n  text\n",
	"\n    greeting: Hello World!\n    ",
	"\n    - 10\n    - 24\n    - 30\n    ",
	"a: b\r\nc:\r\n- d\r\n- e\r\n",
	"key:\n",
	"key: \n",
	"\t\n",
	"key: 'unclosed\n",
	"key: \"bad \\q escape\"\n",
}

// FuzzRoundTrip checks that every document the parser accepts is
// reproduced byte-for-byte on serialization, and that malformed input
// either parses or returns a *ndyaml.ParseError — never panics.
func FuzzRoundTrip(f *testing.F) {
	for _, s := range seedCorpus {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		doc, err := ndyaml.FromString(src)
		if err != nil {
			var perr *ndyaml.ParseError
			require.ErrorAs(t, err, &perr)
			return
		}
		out, err := doc.ToBytes()
		require.NoError(t, err)
		require.Equal(t, src, string(out))
	})
}

// FuzzEditLocality checks that rewriting one scalar entry in a mapping
// leaves the rest of the document reparseable and the edited entry
// reflecting the new value, regardless of surrounding comments or
// indentation.
func FuzzEditLocality(f *testing.F) {
	for _, s := range seedCorpus {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		doc, err := ndyaml.FromString(src)
		if err != nil {
			return
		}
		root, ok := doc.Root().AsMapping()
		if !ok {
			return
		}
		keys := root.Keys()
		if len(keys) == 0 {
			return
		}
		target := keys[0]

		wroot, ok := doc.RootMut().AsMapping()
		if !ok {
			return
		}
		entry, ok := wroot.GetMut(target)
		if !ok {
			return
		}
		entry.SetString("fuzzed")

		out, err := doc.ToBytes()
		require.NoError(t, err)

		redoc, err := ndyaml.From(out)
		require.NoError(t, err, "rewritten document must still parse")
		rroot, ok := redoc.Root().AsMapping()
		require.True(t, ok)
		v, ok := rroot.Get(target)
		require.True(t, ok)
		s, ok := v.AsStr()
		require.True(t, ok)
		require.Equal(t, "fuzzed", s)
	})
}
