package converters

import (
	"fmt"
	"strings"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// ParseBracket reads a tree in bracket notation: every node is written as
// "{label children...}", e.g. "{A{B}{C{D}}}" for A→(B, C→D).
//
// Whitespace around braces is ignored and labels are trimmed; a backslash
// escapes the next character, so labels may contain "\{", "\}" and "\\".
func ParseBracket(s string) (*tree.Tree, error) {
	p := &bracketParser{src: s}
	p.skipSpace()
	if p.done() {
		return nil, ErrEmpty
	}

	root, err := p.node()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.done() {
		return nil, p.errorf("trailing input")
	}

	return tree.New(root)
}

type bracketParser struct {
	src string
	pos int
}

func (p *bracketParser) done() bool { return p.pos >= len(p.src) }

func (p *bracketParser) errorf(format string, args ...any) error {
	return fmt.Errorf("converters: bracket offset %d: %s: %w", p.pos, fmt.Sprintf(format, args...), ErrSyntax)
}

func (p *bracketParser) skipSpace() {
	for !p.done() && strings.ContainsRune(" \t\r\n", rune(p.src[p.pos])) {
		p.pos++
	}
}

// node parses "{label children...}" starting at the opening brace.
func (p *bracketParser) node() (*tree.Node, error) {
	if p.done() || p.src[p.pos] != '{' {
		return nil, p.errorf("expected '{'")
	}
	p.pos++

	// 1. Label up to the first unescaped brace
	var label strings.Builder
	for !p.done() && p.src[p.pos] != '{' && p.src[p.pos] != '}' {
		if p.src[p.pos] == '\\' {
			p.pos++
			if p.done() {
				return nil, p.errorf("dangling escape")
			}
		}
		label.WriteByte(p.src[p.pos])
		p.pos++
	}
	n := tree.NewNode(strings.TrimSpace(label.String()))

	// 2. Children until the closing brace
	for {
		p.skipSpace()
		if p.done() {
			return nil, p.errorf("unterminated node %q", n.Label)
		}
		if p.src[p.pos] == '}' {
			p.pos++

			return n, nil
		}

		child, err := p.node()
		if err != nil {
			return nil, err
		}
		if err = n.AddChild(child); err != nil {
			return nil, err
		}
	}
}

// FormatBracket writes t in bracket notation, escaping braces and
// backslashes inside labels.
func FormatBracket(t *tree.Tree) string {
	var b strings.Builder
	writeBracket(&b, t.Root())

	return b.String()
}

var bracketEscaper = strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`)

func writeBracket(b *strings.Builder, n *tree.Node) {
	b.WriteByte('{')
	b.WriteString(bracketEscaper.Replace(n.Label))
	for _, c := range n.Children() {
		writeBracket(b, c)
	}
	b.WriteByte('}')
}
