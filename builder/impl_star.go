// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - Star(n): n leaves directly under the root.

package builder

import (
	"fmt"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

const (
	methodStar   = "Star"
	minStarNodes = 1
)

// Star returns a Constructor that appends n leaves to the root, left to right.
func Star(n int) Constructor {
	return func(root *tree.Node, cfg *builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}

		for i := 0; i < n; i++ {
			if _, err := attach(methodStar, root, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}
