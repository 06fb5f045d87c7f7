package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/HuygensING/alexandria-markup-sub001/ted"
	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// Format names an output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat indicates a format name that ParseFormat does not know.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Diff is one computed comparison.
type Diff struct {
	SourceName string
	TargetName string
	Source     *tree.Tree
	Target     *tree.Tree
	Result     *ted.Result
}

// Options control rendering.
type Options struct {
	Format Format

	// Detail adds a character-level diff to every relabel.
	Detail bool

	// Color enables ANSI styling of the text format.
	Color bool
}

// Entry is one mapping pair with its labels resolved.
type Entry struct {
	Op        string `json:"op" yaml:"op"`
	From      int    `json:"from,omitempty" yaml:"from,omitempty"`
	To        int    `json:"to,omitempty" yaml:"to,omitempty"`
	FromLabel string `json:"from_label,omitempty" yaml:"from_label,omitempty"`
	ToLabel   string `json:"to_label,omitempty" yaml:"to_label,omitempty"`
	Line      string `json:"line" yaml:"line"`
	Detail    string `json:"detail,omitempty" yaml:"detail,omitempty"`

	op ted.Op
}

// Document is the machine-readable form of a Diff.
type Document struct {
	Source  string  `json:"source" yaml:"source"`
	Target  string  `json:"target" yaml:"target"`
	Cost    int     `json:"cost" yaml:"cost"`
	Summary Summary `json:"summary" yaml:"summary"`
	Mapping []Entry `json:"mapping" yaml:"mapping"`
}

// Summary mirrors ted.Summary with stable field names.
type Summary struct {
	NoChange int `json:"no_change" yaml:"no_change"`
	Relabel  int `json:"relabel" yaml:"relabel"`
	Insert   int `json:"insert" yaml:"insert"`
	Delete   int `json:"delete" yaml:"delete"`
}

// Build resolves every mapping pair of d into an Entry.
func Build(d Diff, detail bool) (*Document, error) {
	if d.Source == nil || d.Target == nil || d.Result == nil {
		return nil, errors.New("report: incomplete diff")
	}

	lines, err := ted.Describe(d.Source, d.Target, d.Result.Mapping)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	sum, err := ted.Summarize(d.Source, d.Target, d.Result.Mapping)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	doc := &Document{
		Source:  d.SourceName,
		Target:  d.TargetName,
		Cost:    d.Result.Cost,
		Summary: Summary(sum),
		Mapping: make([]Entry, 0, len(d.Result.Mapping)),
	}
	for k, p := range d.Result.Mapping {
		// Describe already validated every pair.
		op, _ := ted.Classify(d.Source, d.Target, p)
		e := Entry{Op: op.String(), From: p.From, To: p.To, Line: lines[k], op: op}
		if p.From != tree.None {
			e.FromLabel = d.Source.Label(p.From)
		}
		if p.To != tree.None {
			e.ToLabel = d.Target.Label(p.To)
		}
		if detail && op == ted.Relabel {
			e.Detail = LabelDiff(e.FromLabel, e.ToLabel)
		}
		doc.Mapping = append(doc.Mapping, e)
	}

	return doc, nil
}

// Write renders d to w.
func Write(w io.Writer, d Diff, opts Options) error {
	doc, err := Build(d, opts.Detail)
	if err != nil {
		return err
	}

	switch opts.Format {
	case FormatText, "":
		return writeText(w, doc, opts.Color)
	case FormatTable:
		return writeTable(w, doc)
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, doc)
	}

	return fmt.Errorf("%q: %w", opts.Format, ErrUnknownFormat)
}
