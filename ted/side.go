package ted

import (
	"fmt"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// side caches the per-tree data the tables are indexed by.
//
// An E key on one side is the triple (i, s, u) with u on the ancestor path
// of i and s on the ancestor path of u. Since ancestors of i are identified
// by their depth, the triple is stored as (i, ds, du) with ds ≤ du ≤ depth(i)
// and packed densely: node i owns (depth(i)+1)(depth(i)+2)/2 consecutive keys.
type side struct {
	size   int
	labels []string
	depth  []int

	// chain[p][k] is the ancestor of p at depth k; chain[p][depth[p]] == p.
	chain [][]int

	// off[p] is the first key owned by p; keys is the total.
	off  []int
	keys int

	// keyNode, keyS and keyU decode a key back into (i, ds, du).
	keyNode []int
	keyS    []int
	keyU    []int
}

// newSide indexes t and materializes the ancestor chain of every position.
// Complexity: O(N·depth) time and memory.
func newSide(t *tree.Tree) (*side, error) {
	n := t.Size()
	sd := &side{
		size:   n,
		labels: make([]string, n+1),
		depth:  make([]int, n+1),
		chain:  make([][]int, n+1),
		off:    make([]int, n+2),
	}

	for p := 1; p <= n; p++ {
		up, err := t.Ancestors(p)
		if err != nil {
			return nil, fmt.Errorf("ted: ancestors of %d: %w", p, err)
		}

		// up runs p → root; chain runs root → p.
		d := len(up) - 1
		chain := make([]int, d+1)
		for k, a := range up {
			chain[d-k] = a
		}

		sd.labels[p] = t.Label(p)
		sd.depth[p] = d
		sd.chain[p] = chain
		sd.off[p+1] = sd.off[p] + (d+1)*(d+2)/2
	}
	sd.keys = sd.off[n+1]

	sd.keyNode = make([]int, sd.keys)
	sd.keyS = make([]int, sd.keys)
	sd.keyU = make([]int, sd.keys)
	for p := 1; p <= n; p++ {
		for du := 0; du <= sd.depth[p]; du++ {
			for ds := 0; ds <= du; ds++ {
				k := sd.key(p, ds, du)
				sd.keyNode[k], sd.keyS[k], sd.keyU[k] = p, ds, du
			}
		}
	}

	return sd, nil
}

// key packs (i, ds, du).
func (sd *side) key(i, ds, du int) int {
	return sd.off[i] + du*(du+1)/2 + ds
}

// peel returns the key left after removing the last node i from (i, ds, du).
// When u is i itself the unaligned path shrinks to end at father(i).
func (sd *side) peel(i, ds, du int) int {
	return sd.key(i-1, ds, min(du, sd.depth[i]-1))
}

// label returns a pointer to the label at p for the cost model.
func (sd *side) label(p int) *string {
	return &sd.labels[p]
}
