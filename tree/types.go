package tree

import (
	"errors"
	"sync"
)

// None is the absent position. Valid positions start at 1.
const None = 0

// Sentinel errors for tree construction and positional queries.
var (
	// ErrNilNode indicates a nil root or a nil child.
	ErrNilNode = errors.New("tree: node is nil")

	// ErrHasParent indicates that a node is already attached to a parent.
	ErrHasParent = errors.New("tree: node already has a parent")

	// ErrFrozen indicates a mutation of a node whose tree has been indexed.
	ErrFrozen = errors.New("tree: tree is indexed and frozen")

	// ErrInvalidPosition indicates a position outside 1..Size(), or a
	// request for the father of the root.
	ErrInvalidPosition = errors.New("tree: invalid position")
)

// Node is a labeled tree node with ordered children.
//
// The children slice is owned by the node; parent is a non-owning
// back-reference set by AddChild.
type Node struct {
	// Label is the node's label, compared by the cost model.
	Label string

	children []*Node
	parent   *Node

	// pos is the preorder position, valid only once frozen is set.
	pos    int
	frozen bool
}

// Tree owns a root node and, once indexed, the preorder index of its nodes.
// A Tree must not be copied after first use.
type Tree struct {
	root *Node

	// index[p] is the node at position p; index[0] is unused.
	index []*Node

	// father[p] and depth[p] are cached per position at indexing time.
	father []int
	depth  []int

	once sync.Once
}
