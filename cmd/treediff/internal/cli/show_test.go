package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Outline(t *testing.T) {
	out, err := run(t, "show", "testdata/two.tree")
	require.NoError(t, err)
	assert.Equal(t, "A (@1)\n  B (@2)\n  C (@3)\n    D (@4)\n", out)
}

func TestShowCmd_Bracket(t *testing.T) {
	out, err := run(t, "show", "-f", "bracket", "testdata/two.yaml")
	require.NoError(t, err)
	assert.Equal(t, "{A{B}{C{D}}}\n", out)
}

func TestShowCmd_YAML(t *testing.T) {
	out, err := run(t, "show", "--format", "yaml", "testdata/one.tree")
	require.NoError(t, err)
	assert.Contains(t, out, "label: A")
	assert.Contains(t, out, "label: D")
}

func TestShowCmd_Markdown(t *testing.T) {
	out, err := run(t, "show", "-f", "bracket", "testdata/before.md")
	require.NoError(t, err)
	assert.Equal(t, "{Document{Heading1{Text}}{Paragraph{Text}}}\n", out)
}

func TestShowCmd_Errors(t *testing.T) {
	_, err := run(t, "show")
	assert.ErrorContains(t, err, "accepts 1 arg(s)")

	_, err = run(t, "show", "-f", "svg", "testdata/two.tree")
	assert.ErrorContains(t, err, `unknown show format "svg"`)
}
