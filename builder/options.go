// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; algorithms
// and constructors never panic.

package builder

import "math/rand"

// Option customizes the builder configuration before construction begins.
type Option func(*builderConfig)

// WithLabelFn sets the label generator: creation index -> label.
// Panics on nil.
func WithLabelFn(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}

	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithAlphabet restricts labels to the given symbols. Panics when empty.
func WithAlphabet(alphabet ...string) Option {
	if len(alphabet) == 0 {
		panic("builder: WithAlphabet()")
	}
	symbols := append([]string(nil), alphabet...)

	return func(c *builderConfig) {
		c.alphabet = symbols
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded RNG, making Random reproducible.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
