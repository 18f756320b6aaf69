package ndyaml_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/ndyaml"
)

func TestScenario_SetStringReplacesScalars(t *testing.T) {
	doc, err := ndyaml.FromString("name: Descartes\ncountry: Grece\n")
	require.NoError(t, err)

	root, ok := doc.RootMut().AsMapping()
	require.True(t, ok)

	name, ok := root.GetMut("name")
	require.True(t, ok)
	name.SetString("Plato")

	country, ok := root.GetMut("country")
	require.True(t, ok)
	country.SetString("Greece")

	require.Equal(t, "name: Plato\ncountry: Greece\n", doc.String())
}

func TestScenario_InsertIntoMapping(t *testing.T) {
	doc, err := ndyaml.FromString("\n    greeting: Hello World!\n    ")
	require.NoError(t, err)

	root, ok := doc.RootMut().AsMapping()
	require.True(t, ok)
	root.InsertString("greeting2", "Hello Rust!")

	require.Equal(t, "\n    greeting: Hello World!\n    greeting2: Hello Rust!\n    ", doc.String())
}

func TestScenario_MutateSequenceElements(t *testing.T) {
	doc, err := ndyaml.FromString("\n    - 10\n    - 24\n    - 30\n    ")
	require.NoError(t, err)

	seq, ok := doc.RootMut().AsSequence()
	require.True(t, ok)
	for i := 0; i < seq.Len(); i++ {
		el, ok := seq.GetMut(i)
		require.True(t, ok)
		v, ok := el.AsI64()
		require.True(t, ok)
		if v%10 == 0 {
			el.SetI64(v / 10)
		}
	}

	require.Equal(t, "\n    - 1\n    - 24\n    - 3\n    ", doc.String())
}

func TestScenario_BlockLiteralUnaffectedByUnrelatedEdit(t *testing.T) {
	doc, err := ndyaml.FromString("key: |\n  line one\n  line two\nother: 1\n")
	require.NoError(t, err)

	root, ok := doc.Root().AsMapping()
	require.True(t, ok)
	v, ok := root.Get("key")
	require.True(t, ok)
	s, ok := v.AsStr()
	require.True(t, ok)
	require.Equal(t, "line one\nline two\n", s)

	wroot, ok := doc.RootMut().AsMapping()
	require.True(t, ok)
	other, ok := wroot.GetMut("other")
	require.True(t, ok)
	other.SetI64(2)

	require.Equal(t, "key: |\n  line one\n  line two\nother: 2\n", doc.String())
}

func TestScenario_IntegerStylePreservedAcrossRewrite(t *testing.T) {
	doc, err := ndyaml.FromString("n: 0xFF\n")
	require.NoError(t, err)

	root, ok := doc.Root().AsMapping()
	require.True(t, ok)
	n, ok := root.Get("n")
	require.True(t, ok)
	v, ok := n.AsI64()
	require.True(t, ok)
	require.EqualValues(t, 255, v)

	wroot, ok := doc.RootMut().AsMapping()
	require.True(t, ok)
	nm, ok := wroot.GetMut("n")
	require.True(t, ok)
	nm.SetU32(16)

	require.Equal(t, "n: 0x10\n", doc.String())
}

func TestScenario_CommentsPreservedAroundEdit(t *testing.T) {
	doc, err := ndyaml.FromString("# comment\nkey: value  # trailing\n")
	require.NoError(t, err)

	root, ok := doc.RootMut().AsMapping()
	require.True(t, ok)
	key, ok := root.GetMut("key")
	require.True(t, ok)
	key.SetString("v2")

	require.Equal(t, "# comment\nkey: v2  # trailing\n", doc.String())
}

func TestReadCursor_TypeMismatchReturnsAbsence(t *testing.T) {
	doc, err := ndyaml.FromString("key: 1\n")
	require.NoError(t, err)
	root, ok := doc.Root().AsMapping()
	require.True(t, ok)
	v, ok := root.Get("key")
	require.True(t, ok)

	_, ok = v.AsStr()
	require.False(t, ok)
	_, ok = v.AsBool()
	require.False(t, ok)
	f, ok := v.AsF64()
	require.True(t, ok)
	require.Equal(t, 1.0, f)
}

func TestSameIndentSequenceValueIsEditable(t *testing.T) {
	doc, err := ndyaml.FromString("a: 1\nc:\n- d\n- e\n")
	require.NoError(t, err)

	root, ok := doc.Root().AsMapping()
	require.True(t, ok)
	c, ok := root.Get("c")
	require.True(t, ok)
	seq, ok := c.AsSequence()
	require.True(t, ok)
	require.Equal(t, 2, seq.Len())

	wroot, ok := doc.RootMut().AsMapping()
	require.True(t, ok)
	wc, ok := wroot.GetMut("c")
	require.True(t, ok)
	wseq, ok := wc.AsSequence()
	require.True(t, ok)
	wseq.PushString("f")

	require.Equal(t, "a: 1\nc:\n- d\n- e\n- f\n", doc.String())
}

func TestMappingOrderPreservedAfterEdits(t *testing.T) {
	doc, err := ndyaml.FromString("a: 1\nb: 2\n")
	require.NoError(t, err)
	root, ok := doc.RootMut().AsMapping()
	require.True(t, ok)
	root.InsertI64("c", 3)

	rroot, ok := doc.Root().AsMapping()
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, rroot.Keys())
}

func TestMappingRemoveFirstEntryRejoinsCleanly(t *testing.T) {
	doc, err := ndyaml.FromString("a: 1\nb: 2\nc: 3\n")
	require.NoError(t, err)
	root, ok := doc.RootMut().AsMapping()
	require.True(t, ok)
	require.True(t, root.Remove("a"))

	require.Equal(t, "b: 2\nc: 3\n", doc.String())
}

func TestMappingRemoveMiddleEntryRejoinsCleanly(t *testing.T) {
	doc, err := ndyaml.FromString("a: 1\nb: 2\nc: 3\n")
	require.NoError(t, err)
	root, ok := doc.RootMut().AsMapping()
	require.True(t, ok)
	require.True(t, root.Remove("b"))

	require.Equal(t, "a: 1\nc: 3\n", doc.String())
}

func TestSequencePushAppendsInOrder(t *testing.T) {
	doc, err := ndyaml.FromString("- 1\n- 2\n")
	require.NoError(t, err)
	seq, ok := doc.RootMut().AsSequence()
	require.True(t, ok)
	seq.PushI64(3)

	require.Equal(t, "- 1\n- 2\n- 3\n", doc.String())
}

func TestIdStableAcrossSetCalls(t *testing.T) {
	doc, err := ndyaml.FromString("a: 1\nb: 2\n")
	require.NoError(t, err)
	root, ok := doc.RootMut().AsMapping()
	require.True(t, ok)
	a, ok := root.GetMut("a")
	require.True(t, ok)
	id := a.Id()
	a.SetI64(100)

	v := doc.Value(id)
	got, ok := v.AsI64()
	require.True(t, ok)
	require.EqualValues(t, 100, got)
}

func TestLookupErrorAfterRemoval(t *testing.T) {
	doc, err := ndyaml.FromString("a: 1\nb: 2\n")
	require.NoError(t, err)
	root, ok := doc.Root().AsMapping()
	require.True(t, ok)
	a, ok := root.Get("a")
	require.True(t, ok)
	id := a.Id()

	wroot, ok := doc.RootMut().AsMapping()
	require.True(t, ok)
	require.True(t, wroot.Remove("a"))

	_, ok = doc.Value(id).Kind()
	require.False(t, ok)
	require.False(t, doc.Value(id).IsNull())
}
