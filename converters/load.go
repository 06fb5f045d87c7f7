package converters

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HuygensING/alexandria-markup-sub001/tree"
)

// Format names an input notation.
type Format string

const (
	BracketNotation  Format = "bracket"
	YAMLDocument     Format = "yaml"
	MarkdownDocument Format = "markdown"
)

// FormatOf picks a format from a file extension: .md/.markdown are Markdown,
// .yaml/.yml/.json are YAML, anything else is bracket notation.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return MarkdownDocument
	case ".yaml", ".yml", ".json":
		return YAMLDocument
	default:
		return BracketNotation
	}
}

// Load reads a whole tree from r in the given format.
func Load(r io.Reader, f Format, md ...MarkdownOption) (*tree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("converters: read: %w", err)
	}

	switch f {
	case MarkdownDocument:
		return FromMarkdown(data, md...)
	case YAMLDocument:
		return FromYAML(bytes.NewReader(data))
	case BracketNotation:
		return ParseBracket(string(data))
	default:
		return nil, fmt.Errorf("converters: unknown format %q", f)
	}
}

// LoadFile opens path and loads it in the format chosen by FormatOf.
func LoadFile(path string, md ...MarkdownOption) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f, FormatOf(path), md...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}
