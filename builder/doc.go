// SPDX-License-Identifier: MIT
// Package: builder
//
// Package builder produces deterministic synthetic trees for tests, examples
// and benchmarks of the tree edit distance engine.
//
// One orchestrator, Build(opts, cons...), creates a root and applies each
// Constructor in order; every constructor grows a subtree under the root.
//
// Constructors:
//
//	Path(n)              a chain of n nodes
//	Star(n)              n leaves
//	Complete(k, depth)   a complete k-ary subtree of the given depth
//	Random(n)            n nodes attached to uniformly chosen existing nodes
//
// Options:
//
//	WithLabelFn(fn)      label of the k-th created node (default ExcelColumnLabel)
//	WithAlphabet(a...)   draw labels from a fixed alphabet
//	WithSeed(seed)       seeded RNG for Random and alphabet draws
//	WithRand(r)          explicit RNG
//
// Determinism: same options, seed and constructor order ⇒ identical trees.
//
// Errors: ErrTooFewNodes, ErrNeedRandSource, ErrConstructFailed.
package builder
