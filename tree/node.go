package tree

import "fmt"

// NewNode returns a detached leaf labeled label.
func NewNode(label string) *Node {
	return &Node{Label: label}
}

// AddChild appends child as the last child of n.
//
// Errors:
//   - ErrNilNode   if child is nil.
//   - ErrHasParent if child is already attached, or child is n or one of
//     n's ancestors.
//   - ErrFrozen    if n belongs to an indexed tree.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	if n.frozen || child.frozen {
		return fmt.Errorf("tree: AddChild(%q): %w", child.Label, ErrFrozen)
	}
	if child.parent != nil {
		return fmt.Errorf("tree: AddChild(%q): %w", child.Label, ErrHasParent)
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return fmt.Errorf("tree: AddChild(%q): ancestor of %q: %w", child.Label, n.Label, ErrHasParent)
		}
	}

	child.parent = n
	n.children = append(n.children, child)

	return nil
}

// Add creates a child labeled label, appends it to n and returns it.
// It panics if n is frozen; use AddChild to handle that case as an error.
func (n *Node) Add(label string) *Node {
	child := NewNode(label)
	if err := n.AddChild(child); err != nil {
		panic(err)
	}

	return child
}

// Children returns a copy of n's children in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)

	return out
}

// Parent returns n's father, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Position returns n's preorder position, or None before its tree is indexed.
func (n *Node) Position() int {
	if !n.frozen {
		return None
	}

	return n.pos
}
