package ndyaml_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/ndyaml"
)

// roundTripCases are byte inputs the parser must accept and reproduce
// exactly on serialization.
var roundTripCases = []string{
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
	"'single quoted'\n",
	"\"double \\n quoted\"\n",
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
}

func TestRoundTrip(t *testing.T) {
	for _, src := range roundTripCases {
		src := src
		t.Run(src, func(t *testing.T) {
			doc, err := ndyaml.FromString(src)
			require.NoError(t, err)
			out, err := doc.ToBytes()
			require.NoError(t, err)
			require.Equal(t, src, string(out))
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"key: 'unclosed\n",
		"key: \"unclosed\n",
		"key: \"bad \\q escape\"\n",
		"key: \"bad \\x1 escape\"\n",
	}
	for _, src := range cases {
		src := src
		t.Run(src, func(t *testing.T) {
			_, err := ndyaml.FromString(src)
			require.Error(t, err)
			var perr *ndyaml.ParseError
			require.ErrorAs(t, err, &perr)
		})
	}
}

func TestTabInIndentError(t *testing.T) {
	_, err := ndyaml.FromString("a:\n\tb: 1\n")
	require.Error(t, err)
}
