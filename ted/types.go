package ted

import (
	"errors"
	"log/slog"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

var (
	// ErrNilTree indicates that one of the input trees is nil.
	ErrNilTree = errors.New("ted: tree is nil")

	// ErrTooLarge indicates that the E table would exceed Options.MaxCells.
	ErrTooLarge = errors.New("ted: alignment table exceeds cell limit")

	// ErrEmptyPair indicates a mapping entry whose sides are both absent.
	ErrEmptyPair = errors.New("ted: mapping entry has no side")
)

// DefaultMaxCells bounds the E table at 16Mi cells.
const DefaultMaxCells = 1 << 24

// Pair is one mapping entry. From is a source position, To a target
// position; tree.None marks the absent side of an insertion (From) or a
// deletion (To).
type Pair struct {
	From int
	To   int
}

// Result is the outcome of Diff.
type Result struct {
	// Cost is the minimum total edit cost.
	Cost int

	// Mapping realizes Cost, sorted by SortMapping.
	Mapping []Pair
}

// Option configures Diff.
type Option func(*Options)

// Options holds the configurable parameters of Diff.
type Options struct {
	// Cost prices relabels, deletions and insertions. Defaults to UnitCost.
	Cost CostFunc

	// MaxCells bounds the number of E table cells; non-positive means no bound.
	MaxCells int

	// Logger receives debug statistics. Defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns unit costs, DefaultMaxCells and a silent logger.
func DefaultOptions() Options {
	return Options{
		Cost:     UnitCost,
		MaxCells: DefaultMaxCells,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// WithCostFunc replaces the cost model. A nil fn keeps the current one.
func WithCostFunc(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithMaxCells bounds the E table. Zero or negative disables the bound.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		o.MaxCells = n
	}
}

// WithLogger routes debug statistics to l. A nil l keeps the current logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// absent reports whether p is the absent position.
func absent(p int) bool { return p == tree.None }
