package ndyaml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/ndyaml/internal/rawh"
)

func TestDecodeSingleQuoted(t *testing.T) {
	require.Equal(t, "it's", decodeSingleQuoted([]byte(`'it''s'`)))
	require.Equal(t, "", decodeSingleQuoted([]byte(`''`)))
}

func TestDecodeDoubleQuoted(t *testing.T) {
	require.Equal(t, "a\nb\tc\"d", decodeDoubleQuoted([]byte(`"a\nb\tc\"d"`)))
	require.Equal(t, "é", decodeDoubleQuoted([]byte(`"é"`)))
	require.Equal(t, "AB", decodeDoubleQuoted([]byte("\"A\\\n  B\"")))
}

func TestDecodeBlockScalarClip(t *testing.T) {
	b := &blockScalar{chomping: rawh.ClipChomping, indent: 2}
	require.Equal(t, "a\nb\n", decodeBlockScalar([]byte("  a\n  b\n"), LiteralStyle, b))
}

func TestDecodeBlockScalarStrip(t *testing.T) {
	b := &blockScalar{chomping: rawh.StripChomping, indent: 2}
	require.Equal(t, "a\nb", decodeBlockScalar([]byte("  a\n  b\n\n\n"), LiteralStyle, b))
}

func TestDecodeBlockScalarKeep(t *testing.T) {
	b := &blockScalar{chomping: rawh.KeepChomping, indent: 2}
	require.Equal(t, "a\nb\n\n\n", decodeBlockScalar([]byte("  a\n  b\n\n\n"), LiteralStyle, b))
}

func TestFoldedScalarJoinsPlainLines(t *testing.T) {
	b := &blockScalar{chomping: rawh.ClipChomping, indent: 2}
	require.Equal(t, "a b\n", decodeBlockScalar([]byte("  a\n  b\n"), FoldedStyle, b))
}

func TestRenderInt(t *testing.T) {
	require.Equal(t, "255", renderInt(255, 0))
	require.Equal(t, "0xff", renderInt(255, 3))
	require.Equal(t, "-0xff", renderInt(-255, 3))
}

func TestRenderFloat(t *testing.T) {
	require.Equal(t, ".inf", renderFloat(math.Inf(1)))
	require.Equal(t, "1.5", renderFloat(1.5))
}
