package converters

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// DefaultYAMLNodeLimit caps the nodes FromYAML builds, aliases included.
const DefaultYAMLNodeLimit = 1 << 20

// YAMLOption configures FromYAML.
type YAMLOption func(*yamlReader)

// WithNodeLimit caps the number of tree nodes FromYAML may build. Every
// alias expansion counts its nodes again. n <= 0 keeps the default.
func WithNodeLimit(n int) YAMLOption {
	return func(y *yamlReader) {
		if n > 0 {
			y.limit = n
		}
	}
}

// yamlReader converts a decoded document while counting built nodes.
type yamlReader struct {
	limit int
	built int

	// expanding holds the anchors whose alias is being expanded.
	expanding map[*yaml.Node]bool
}

// FromYAML decodes one YAML (or JSON) document into a tree.
//
// A node may be written in any of three forms:
//
//	A                        # scalar: a leaf labeled A
//	{label: A, children: []} # explicit form
//	A: [B, {C: [D]}]         # single-key mapping: label to child list
//
// The forms mix freely, so "{A: [B, {label: C, children: [D]}]}" is valid.
// Anchors and aliases are expanded in place; a document that expands to
// more than the node limit fails with ErrTooManyNodes.
func FromYAML(r io.Reader, opts ...YAMLOption) (*tree.Tree, error) {
	yr := &yamlReader{limit: DefaultYAMLNodeLimit, expanding: map[*yaml.Node]bool{}}
	for _, opt := range opts {
		opt(yr)
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}

		return nil, fmt.Errorf("converters: decode yaml: %w", err)
	}

	root, err := yr.node(&doc)
	if err != nil {
		return nil, err
	}

	return tree.New(root)
}

// leaf counts and builds one node.
func (yr *yamlReader) leaf(label string) (*tree.Node, error) {
	if yr.built >= yr.limit {
		return nil, fmt.Errorf("converters: yaml expands past %d nodes: %w", yr.limit, ErrTooManyNodes)
	}
	yr.built++

	return tree.NewNode(label), nil
}

// enter marks alias a as being expanded; an anchor reached again through
// its own value is a cycle.
func (yr *yamlReader) enter(a *yaml.Node) error {
	if yr.expanding[a.Alias] {
		return fmt.Errorf("line %d: alias *%s refers to itself: %w", a.Line, a.Value, ErrBadDocument)
	}
	yr.expanding[a.Alias] = true

	return nil
}

func (yr *yamlReader) node(y *yaml.Node) (*tree.Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return nil, ErrEmpty
		}

		return yr.node(y.Content[0])
	case yaml.AliasNode:
		if err := yr.enter(y); err != nil {
			return nil, err
		}
		defer delete(yr.expanding, y.Alias)

		return yr.node(y.Alias)
	case yaml.ScalarNode:
		return yr.leaf(y.Value)
	case yaml.MappingNode:
		if isExplicit(y) {
			return yr.explicit(y)
		}
		if len(y.Content) != 2 {
			return nil, fmt.Errorf("line %d: mapping needs one key or label/children: %w", y.Line, ErrBadDocument)
		}
		if y.Content[0].Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: label must be a scalar: %w", y.Line, ErrBadDocument)
		}

		return yr.withChildren(y.Content[0].Value, y.Content[1])
	default:
		return nil, fmt.Errorf("line %d: a sequence cannot be a node: %w", y.Line, ErrBadDocument)
	}
}

// isExplicit reports whether a mapping uses the label/children keys.
func isExplicit(y *yaml.Node) bool {
	for k := 0; k < len(y.Content); k += 2 {
		if y.Content[k].Value == "label" {
			return true
		}
	}

	return false
}

func (yr *yamlReader) explicit(y *yaml.Node) (*tree.Node, error) {
	var label string
	var children *yaml.Node
	for k := 0; k+1 < len(y.Content); k += 2 {
		key, val := y.Content[k], y.Content[k+1]
		switch key.Value {
		case "label":
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: label must be a scalar: %w", val.Line, ErrBadDocument)
			}
			label = val.Value
		case "children":
			children = val
		default:
			return nil, fmt.Errorf("line %d: unknown key %q: %w", key.Line, key.Value, ErrBadDocument)
		}
	}

	if children == nil {
		return yr.leaf(label)
	}

	return yr.withChildren(label, children)
}

// withChildren builds a node whose children come from a sequence; a null
// value yields a leaf.
func (yr *yamlReader) withChildren(label string, seq *yaml.Node) (*tree.Node, error) {
	n, err := yr.leaf(label)
	if err != nil {
		return nil, err
	}
	if seq.Kind == yaml.AliasNode {
		if err = yr.enter(seq); err != nil {
			return nil, err
		}
		defer delete(yr.expanding, seq.Alias)
		seq = seq.Alias
	}
	switch {
	case seq.Kind == yaml.ScalarNode && seq.ShortTag() == "!!null":
		return n, nil
	case seq.Kind != yaml.SequenceNode:
		return nil, fmt.Errorf("line %d: children of %q must be a sequence: %w", seq.Line, label, ErrBadDocument)
	}

	for _, item := range seq.Content {
		child, err := yr.node(item)
		if err != nil {
			return nil, err
		}
		if err = n.AddChild(child); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// yamlDoc is the explicit form written by ToYAML.
type yamlDoc struct {
	Label    string     `yaml:"label"`
	Children []*yamlDoc `yaml:"children,omitempty"`
}

// ToYAML writes t in the explicit label/children form.
func ToYAML(w io.Writer, t *tree.Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDoc(t.Root())); err != nil {
		return fmt.Errorf("converters: encode yaml: %w", err)
	}

	return enc.Close()
}

func toDoc(n *tree.Node) *yamlDoc {
	d := &yamlDoc{Label: n.Label}
	for _, c := range n.Children() {
		d.Children = append(d.Children, toDoc(c))
	}

	return d
}
