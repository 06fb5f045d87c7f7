// Package report renders a tree diff for the terminal or for other tools:
// styled text lines, an aligned table, or JSON/YAML documents.
package report
