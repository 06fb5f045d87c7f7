package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuygensING/alexandria-markup-sub001/cmd/treediff/internal/report"
	"github.com/HuygensING/alexandria-markup-sub001/ted"
)

func TestDiffCmd_Text(t *testing.T) {
	out, err := run(t, "diff", "testdata/one.tree", "testdata/two.tree")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"diff testdata/one.tree testdata/two.tree",
		"No change for A (@1 and @1)",
		"Change from B (@2) to C (@3)",
		"No change for D (@3 and @4)",
		"Insert B (@2)",
		"cost: 2 (1 relabel, 1 insert, 0 delete)",
		"",
	}, "\n"), out)
}

func TestDiffCmd_Scenarios(t *testing.T) {
	tests := []struct {
		source, target string
		cost           int
		change         string
	}{
		{"one.tree", "three.tree", 3, "Insert E (@5)"},
		{"two.tree", "three.tree", 1, "Insert E (@5)"},
		{"three.tree", "four.tree", 1, "Change from C (@3) to CC (@3)"},
		{"two.tree", "two.yaml", 0, "No change for D (@4 and @4)"},
		{"two.yaml", "two.json", 0, "No change for C (@3 and @3)"},
	}

	for _, tt := range tests {
		t.Run(tt.source+"→"+tt.target, func(t *testing.T) {
			out, err := run(t, "diff", "-f", "json", "testdata/"+tt.source, "testdata/"+tt.target)
			require.NoError(t, err)

			var doc report.Document
			require.NoError(t, json.Unmarshal([]byte(out), &doc))
			assert.Equal(t, tt.cost, doc.Cost)

			var lines []string
			for _, e := range doc.Mapping {
				lines = append(lines, e.Line)
			}
			assert.Contains(t, lines, tt.change)
		})
	}
}

func TestDiffCmd_Markdown(t *testing.T) {
	out, err := run(t, "diff", "--detail", "testdata/before.md", "testdata/after.md")
	require.NoError(t, err)

	assert.Contains(t, out, "Change from Heading1 (@2) to Heading2 (@2)  Heading[-1-]{+2+}")
	assert.Contains(t, out, "Insert ListItem (@7)")
	assert.Contains(t, out, "cost: 5 (1 relabel, 4 insert, 0 delete)")
}

func TestDiffCmd_MarkdownText(t *testing.T) {
	out, err := run(t, "--text", "diff", "testdata/before.md", "testdata/after.md")
	require.NoError(t, err)
	assert.Contains(t, out, "Insert Text:item (@9)")
}

func TestDiffCmd_Table(t *testing.T) {
	out, err := run(t, "diff", "--format", "table", "testdata/one.tree", "testdata/two.tree")
	require.NoError(t, err)
	assert.Contains(t, out, "relabel")
	assert.Contains(t, out, "COST")
}

func TestDiffCmd_ColorAlways(t *testing.T) {
	out, err := run(t, "diff", "--color", "always", "testdata/one.tree", "testdata/two.tree")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
}

func TestDiffCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
		msg  string
	}{
		{name: "one argument", args: []string{"diff", "testdata/one.tree"}, msg: "accepts 2 arg(s)"},
		{name: "bad format", args: []string{"diff", "-f", "xml", "testdata/one.tree", "testdata/two.tree"}, want: report.ErrUnknownFormat},
		{name: "bad color", args: []string{"diff", "--color", "sometimes", "testdata/one.tree", "testdata/two.tree"}, msg: "unknown color mode"},
		{name: "missing file", args: []string{"diff", "testdata/none.tree", "testdata/two.tree"}, msg: "none.tree"},
		{name: "too large", args: []string{"diff", "--max-cells", "1", "testdata/one.tree", "testdata/two.tree"}, want: ted.ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.msg != "" {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
}
