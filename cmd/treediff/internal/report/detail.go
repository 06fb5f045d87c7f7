package report

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LabelDiff shows how label a turns into b, marking removed text as [-x-]
// and added text as {+y+}.
func LabelDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		}
	}

	return sb.String()
}
