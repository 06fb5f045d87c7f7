package ted

import (
	"fmt"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// Op classifies a mapping entry.
type Op int

const (
	// NoChange aligns two nodes with equal labels.
	NoChange Op = iota
	// Relabel aligns two nodes with different labels.
	Relabel
	// Insert adds a target node.
	Insert
	// Delete removes a source node.
	Delete
)

// String returns the lower-case name of op.
func (op Op) String() string {
	switch op {
	case NoChange:
		return "no-change"
	case Relabel:
		return "relabel"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	}

	return fmt.Sprintf("op(%d)", int(op))
}

// Summary counts the entries of a mapping per Op.
type Summary struct {
	NoChange int
	Relabel  int
	Insert   int
	Delete   int
}

// Changes is the number of entries that are not NoChange.
func (s Summary) Changes() int { return s.Relabel + s.Insert + s.Delete }

// Classify returns the Op of p, checking its positions against a and b.
func Classify(a, b *tree.Tree, p Pair) (Op, error) {
	if a == nil || b == nil {
		return 0, ErrNilTree
	}
	if absent(p.From) && absent(p.To) {
		return 0, ErrEmptyPair
	}
	if !absent(p.From) && a.NodeAt(p.From) == nil {
		return 0, fmt.Errorf("ted: source position %d: %w", p.From, tree.ErrInvalidPosition)
	}
	if !absent(p.To) && b.NodeAt(p.To) == nil {
		return 0, fmt.Errorf("ted: target position %d: %w", p.To, tree.ErrInvalidPosition)
	}

	switch {
	case absent(p.From):
		return Insert, nil
	case absent(p.To):
		return Delete, nil
	case a.Label(p.From) == b.Label(p.To):
		return NoChange, nil
	}

	return Relabel, nil
}

// Describe renders one line per entry of m, in order:
//
//	No change for A (@1 and @1)
//	Change from B (@2) to C (@3)
//	Insert B (@2)
//	Delete D (@3)
func Describe(a, b *tree.Tree, m []Pair) ([]string, error) {
	lines := make([]string, 0, len(m))
	for _, p := range m {
		op, err := Classify(a, b, p)
		if err != nil {
			return nil, err
		}

		switch op {
		case NoChange:
			lines = append(lines, fmt.Sprintf("No change for %s (@%d and @%d)", a.Label(p.From), p.From, p.To))
		case Relabel:
			lines = append(lines, fmt.Sprintf("Change from %s (@%d) to %s (@%d)", a.Label(p.From), p.From, b.Label(p.To), p.To))
		case Insert:
			lines = append(lines, fmt.Sprintf("Insert %s (@%d)", b.Label(p.To), p.To))
		case Delete:
			lines = append(lines, fmt.Sprintf("Delete %s (@%d)", a.Label(p.From), p.From))
		}
	}

	return lines, nil
}

// Summarize counts the entries of m per Op.
func Summarize(a, b *tree.Tree, m []Pair) (Summary, error) {
	var s Summary
	for _, p := range m {
		op, err := Classify(a, b, p)
		if err != nil {
			return Summary{}, err
		}

		switch op {
		case NoChange:
			s.NoChange++
		case Relabel:
			s.Relabel++
		case Insert:
			s.Insert++
		case Delete:
			s.Delete++
		}
	}

	return s, nil
}
