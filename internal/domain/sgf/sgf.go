package sgf

import (
	"fmt"
	"sort"
	"strings"
)

// GameTree is one SGF tree: the main line plus variations.
type GameTree struct {
	Nodes    []Node
	Children []*GameTree
}

// Node holds the properties of one SGF node. A property may repeat (AB[aa][bb]).
type Node struct {
	Properties map[string][]string
}

type SGF struct {
	Root *GameTree
}

// propertyOrder puts root properties first, then setup stones, then moves.
var propertyOrder = []string{"FF", "GM", "SZ", "PB", "PW", "DT", "RE", "C", "AB", "AW", "PL", "B", "W"}

// Point encodes a cell the SGF way: column letter first, then row letter.
func Point(row, col int) string {
	return string([]byte{byte('a' + col), byte('a' + row)})
}

func (s *SGF) String() string {
	var builder strings.Builder
	builder.WriteString("(")
	if s.Root != nil {
		serializeGameTree(&builder, s.Root)
	}
	builder.WriteString(")")
	return builder.String()
}

func serializeGameTree(builder *strings.Builder, tree *GameTree) {
	for _, node := range tree.Nodes {
		builder.WriteString(";")

		used := make(map[string]bool)
		for _, key := range propertyOrder {
			if values, ok := node.Properties[key]; ok {
				used[key] = true
				writeProperty(builder, key, values)
			}
		}

		var rest []string
		for key := range node.Properties {
			if !used[key] {
				rest = append(rest, key)
			}
		}
		sort.Strings(rest)
		for _, key := range rest {
			writeProperty(builder, key, node.Properties[key])
		}
	}

	for _, child := range tree.Children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}

func writeProperty(builder *strings.Builder, key string, values []string) {
	builder.WriteString(key)
	for _, v := range values {
		fmt.Fprintf(builder, "[%s]", escape(v))
	}
}

func escape(v string) string {
	return strings.NewReplacer(`\`, `\\`, `]`, `\]`).Replace(v)
}
