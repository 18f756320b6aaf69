package ndyaml_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/ndyaml"
)

func TestToAny(t *testing.T) {
	doc, err := ndyaml.FromString("name: Plato\nage: 80\ntags:\n  - greek\n  - philosopher\nalive: false\nnote:\n")
	require.NoError(t, err)

	got := ndyaml.ToAny(doc.Root())
	m, ok := got.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Plato", m["name"])
	require.EqualValues(t, 80, m["age"])
	require.Equal(t, false, m["alive"])
	require.Nil(t, m["note"])

	tags, ok := m["tags"].([]any)
	require.True(t, ok)
	require.Equal(t, []any{"greek", "philosopher"}, tags)
}
