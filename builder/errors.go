// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "Path: n=0 < min=1: builder: ...".
//   • Option constructors panic on meaningless input; constructors never panic.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, arity, depth) is below
// the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor was used without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failure to attach a
// node to the tree under construction.
var ErrConstructFailed = errors.New("builder: construction failed")
