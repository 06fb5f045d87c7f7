// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn  = ExcelColumnLabel ("A","B",...,"Z","AA",...)
//   • alphabet = nil (labels come from labelFn)
//   • rng      = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. Constructors
// receive it by pointer only to advance the shared label counter.
type builderConfig struct {
	// labelFn maps the creation index of a node to its label.
	labelFn func(int) string
	// alphabet, when non-empty, overrides labelFn.
	alphabet []string
	// rng drives Random and alphabet draws; nil means no randomness.
	rng *rand.Rand

	// next is the creation index of the next node.
	next int
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{
		labelFn: ExcelColumnLabel,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// label returns the label of the next created node and advances the counter.
// With an alphabet and an RNG, labels are drawn uniformly; with an alphabet
// only, they cycle through it.
func (c *builderConfig) label() string {
	k := c.next
	c.next++

	switch {
	case len(c.alphabet) > 0 && c.rng != nil:
		return c.alphabet[c.rng.Intn(len(c.alphabet))]
	case len(c.alphabet) > 0:
		return c.alphabet[k%len(c.alphabet)]
	}

	return c.labelFn(k)
}
