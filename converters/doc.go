// Package converters builds tree.Tree values from textual sources and
// writes them back out:
//   - bracket notation, e.g. {A{B}{C{D}}}
//   - YAML or JSON documents (gopkg.in/yaml.v3)
//   - the block and inline structure of Markdown documents (github.com/yuin/goldmark)
//
// Use LoadFile to pick a reader by file extension.
package converters
