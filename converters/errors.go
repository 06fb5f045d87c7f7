package converters

import "errors"

var (
	// ErrSyntax indicates malformed bracket notation.
	ErrSyntax = errors.New("converters: syntax error")

	// ErrBadDocument indicates a YAML/JSON document that does not describe a tree.
	ErrBadDocument = errors.New("converters: document is not a tree")

	// ErrEmpty indicates an input without any node.
	ErrEmpty = errors.New("converters: empty input")

	// ErrTooManyNodes indicates a document that expands past the node limit.
	ErrTooManyNodes = errors.New("converters: too many nodes")
)
