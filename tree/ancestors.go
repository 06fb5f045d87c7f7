package tree

import (
	"iter"
	"slices"
)

// AncestorPath returns a sequence yielding p, father(p), father(father(p)),
// and so on up to and including the root.
//
// The position is validated before anything is produced; an out-of-range p
// fails with ErrInvalidPosition and a nil sequence. The sequence is computed
// synchronously from the cached father links and can be ranged over again.
//
// Example:
//
//	path, err := t.AncestorPath(4)
//	for p := range path {
//	    fmt.Println(p) // 4, 3, 1
//	}
func (t *Tree) AncestorPath(p int) (iter.Seq[int], error) {
	if !t.valid(p) {
		return nil, t.invalid("AncestorPath", p)
	}

	return func(yield func(int) bool) {
		for cur := p; cur != None; cur = t.father[cur] {
			if !yield(cur) {
				return
			}
		}
	}, nil
}

// Ancestors returns AncestorPath(p) materialized as a slice.
func (t *Tree) Ancestors(p int) ([]int, error) {
	path, err := t.AncestorPath(p)
	if err != nil {
		return nil, err
	}

	return slices.Collect(path), nil
}
