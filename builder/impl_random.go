// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go - Random(n): random recursive tree.
//
// Contract:
//   • Requires an RNG (WithSeed/WithRand), else ErrNeedRandSource.
//   • Each new node picks its father uniformly among the root and the nodes
//     this constructor created before it.
//
// Complexity: O(n) time, O(n) extra space.

package builder

import (
	"fmt"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

const (
	methodRandom   = "Random"
	minRandomNodes = 1
)

// Random returns a Constructor that attaches n nodes at random places.
func Random(n int) Constructor {
	return func(root *tree.Node, cfg *builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomNodes, ErrTooFewNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		pool := make([]*tree.Node, 0, n+1)
		pool = append(pool, root)
		for i := 0; i < n; i++ {
			parent := pool[cfg.rng.Intn(len(pool))]
			child, err := attach(methodRandom, parent, cfg)
			if err != nil {
				return err
			}
			pool = append(pool, child)
		}

		return nil
	}
}
