package depgraph

import (
	"bytes"
	"fmt"
	"strings"
)

const separatorWidth = 60 // Width of separator lines in text output

// ToDOT outputs the graph in Graphviz DOT format. Placeholder nodes are
// rendered dashed; edges carry their constraint as a label.
func (g *Graph) ToDOT() string {
	var buf bytes.Buffer

	buf.WriteString("digraph modules {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box];\n\n")

	for _, name := range g.order {
		node := g.nodes[name]
		label := name
		if node.Version != "" {
			label = fmt.Sprintf("%s\\n%s", name, node.Version)
		}
		attrs := fmt.Sprintf(`label="%s"`, label)
		if node.Placeholder() {
			attrs += ", style=dashed"
		}
		buf.WriteString(fmt.Sprintf("  %q [%s];\n", name, attrs))
	}

	buf.WriteString("\n")

	for _, name := range g.order {
		node := g.nodes[name]
		for _, dep := range node.depOrder {
			buf.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n",
				name, dep, node.Dependencies[dep]))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ToText outputs a human-readable listing of the graph.
func (g *Graph) ToText() string {
	var buf bytes.Buffer

	buf.WriteString("Module Dependency Graph\n")
	buf.WriteString(strings.Repeat("=", separatorWidth) + "\n\n")

	stats := g.Stats()
	buf.WriteString(fmt.Sprintf("Modules: %d\n", stats.Modules))
	if stats.Placeholders > 0 {
		buf.WriteString(fmt.Sprintf("Placeholders: %d\n", stats.Placeholders))
	}
	buf.WriteString(fmt.Sprintf("Edges: %d\n\n", stats.Edges))

	for _, name := range g.order {
		node := g.nodes[name]
		if node.Placeholder() {
			buf.WriteString(fmt.Sprintf("%s (undeclared)\n", name))
		} else {
			buf.WriteString(fmt.Sprintf("%s@%s\n", name, node.Version))
		}
		for _, dep := range node.depOrder {
			buf.WriteString(fmt.Sprintf("  -> %s (%s)\n", dep, node.Dependencies[dep]))
		}
	}

	return buf.String()
}
