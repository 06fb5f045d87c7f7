// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point.
//
// Contract:
//   • Build creates the root from the first label, then runs cons in order.
//   • Every constructor grows a subtree under the root and labels nodes in
//     creation order, so labels are stable for equal inputs.
//   • Constructor errors are wrapped once with "Build: %w".

package builder

import (
	"fmt"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// Constructor grows a subtree under root using the resolved configuration.
type Constructor func(root *tree.Node, cfg *builderConfig) error

// Build creates a root node, applies every constructor in order and returns
// the resulting tree, not yet indexed.
//
// Complexity: O(len(opts)) to resolve options plus the cost of each constructor.
func Build(opts []Option, cons ...Constructor) (*tree.Tree, error) {
	cfg := newBuilderConfig(opts...)
	root := tree.NewNode(cfg.label())

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(root, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return tree.New(root)
}

// attach creates a labeled child under parent.
func attach(method string, parent *tree.Node, cfg *builderConfig) (*tree.Node, error) {
	child := tree.NewNode(cfg.label())
	if err := parent.AddChild(child); err != nil {
		return nil, fmt.Errorf("%s: AddChild(%s): %w: %w", method, child.Label, ErrConstructFailed, err)
	}

	return child, nil
}
