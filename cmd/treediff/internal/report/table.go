package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

func position(p int) string {
	if p == tree.None {
		return "-"
	}

	return strconv.Itoa(p)
}

func writeTable(w io.Writer, doc *Document) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Op", "From", "Source", "To", "Target", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, e := range doc.Mapping {
		table.Append([]string{e.Op, position(e.From), e.FromLabel, position(e.To), e.ToLabel, e.Detail})
	}

	table.SetFooter([]string{"", "", "", "", "Cost", strconv.Itoa(doc.Cost)})
	table.Render()

	return nil
}
