// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - Path(n): a chain of n nodes hanging from the root.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that appends a chain of n nodes under the root,
// each node the only child of the previous one.
func Path(n int) Constructor {
	return func(root *tree.Node, cfg *builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}

		parent := root
		for i := 0; i < n; i++ {
			child, err := attach(methodPath, parent, cfg)
			if err != nil {
				return err
			}
			parent = child
		}

		return nil
	}
}
