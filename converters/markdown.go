package converters

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// MarkdownOption configures FromMarkdown.
type MarkdownOption func(*markdownConfig)

type markdownConfig struct {
	content bool
}

// WithTextContent appends the text of Text and String nodes to their labels,
// e.g. "Text:hello", so edits inside paragraphs show up as relabels.
func WithTextContent() MarkdownOption {
	return func(c *markdownConfig) { c.content = true }
}

// FromMarkdown parses a Markdown document with goldmark and returns its
// node structure. Labels are goldmark node kinds ("Document", "Paragraph",
// "List", "ListItem", "Emphasis", ...); headings carry their level, e.g.
// "Heading2".
func FromMarkdown(src []byte, opts ...MarkdownOption) (*tree.Tree, error) {
	cfg := markdownConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var stack []*tree.Node
	var root *tree.Node
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			stack = stack[:len(stack)-1]

			return ast.WalkContinue, nil
		}

		tn := tree.NewNode(markdownLabel(n, src, cfg))
		if len(stack) == 0 {
			root = tn
		} else if err := stack[len(stack)-1].AddChild(tn); err != nil {
			return ast.WalkStop, err
		}
		stack = append(stack, tn)

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("converters: walk markdown: %w", err)
	}

	return tree.New(root)
}

func markdownLabel(n ast.Node, src []byte, cfg markdownConfig) string {
	switch v := n.(type) {
	case *ast.Heading:
		return fmt.Sprintf("%s%d", v.Kind(), v.Level)
	case *ast.Text:
		if cfg.content {
			return v.Kind().String() + ":" + string(v.Segment.Value(src))
		}
	case *ast.String:
		if cfg.content {
			return v.Kind().String() + ":" + string(v.Value)
		}
	case *ast.FencedCodeBlock:
		if lang := strings.TrimSpace(string(v.Language(src))); lang != "" {
			return v.Kind().String() + ":" + lang
		}
	}

	return n.Kind().String()
}
