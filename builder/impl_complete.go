// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - Complete(arity, depth): full k-ary levels under the root.
//
// Nodes are created in preorder, so labels follow preorder positions.
// Complexity: O(arity^depth) nodes.

package builder

import (
	"fmt"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

const (
	methodComplete = "Complete"
	minArity       = 1
	minDepth       = 1
)

// Complete returns a Constructor that gives the root arity children, each
// of them arity children, and so on for depth levels.
func Complete(arity, depth int) Constructor {
	return func(root *tree.Node, cfg *builderConfig) error {
		if arity < minArity {
			return fmt.Errorf("%s: arity=%d < min=%d: %w", methodComplete, arity, minArity, ErrTooFewNodes)
		}
		if depth < minDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodComplete, depth, minDepth, ErrTooFewNodes)
		}

		return grow(root, cfg, arity, depth)
	}
}

// grow attaches arity children to parent and recurses depth-1 levels.
func grow(parent *tree.Node, cfg *builderConfig, arity, depth int) error {
	if depth == 0 {
		return nil
	}
	for i := 0; i < arity; i++ {
		child, err := attach(methodComplete, parent, cfg)
		if err != nil {
			return err
		}
		if err = grow(child, cfg, arity, depth-1); err != nil {
			return err
		}
	}

	return nil
}
