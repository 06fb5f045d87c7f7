package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/HuygensING/alexandria-markup-sub001/ted"
)

// ColorMode selects when the text format is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UseColor resolves mode for w: auto styles only terminals.
func UseColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// palette styles one line per Op.
type palette struct {
	header lipgloss.Style
	ops    map[ted.Op]lipgloss.Style
	detail lipgloss.Style
}

func newPalette(w io.Writer, color bool) palette {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)

		return palette{
			header: r.NewStyle(),
			ops:    map[ted.Op]lipgloss.Style{},
			detail: r.NewStyle(),
		}
	}

	r.SetColorProfile(termenv.ANSI256)

	return palette{
		header: r.NewStyle().Bold(true),
		ops: map[ted.Op]lipgloss.Style{
			ted.NoChange: r.NewStyle().Foreground(lipgloss.Color("245")),
			ted.Relabel:  r.NewStyle().Foreground(lipgloss.Color("3")),
			ted.Insert:   r.NewStyle().Foreground(lipgloss.Color("2")),
			ted.Delete:   r.NewStyle().Foreground(lipgloss.Color("1")),
		},
		detail: r.NewStyle().Italic(true),
	}
}

func (p palette) line(op ted.Op, s string) string {
	if st, ok := p.ops[op]; ok {
		return st.Render(s)
	}

	return s
}

func writeText(w io.Writer, doc *Document, color bool) error {
	p := newPalette(w, color)

	if _, err := fmt.Fprintln(w, p.header.Render(fmt.Sprintf("diff %s %s", doc.Source, doc.Target))); err != nil {
		return err
	}
	for _, e := range doc.Mapping {
		line := p.line(e.op, e.Line)
		if e.Detail != "" {
			line += "  " + p.detail.Render(e.Detail)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	s := doc.Summary
	_, err := fmt.Fprintf(w, "cost: %d (%d relabel, %d insert, %d delete)\n", doc.Cost, s.Relabel, s.Insert, s.Delete)

	return err
}
