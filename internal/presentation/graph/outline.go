package graph

import (
	"fmt"
	"strings"

	"github.com/bitreaper/lineage/pkg/domain"
)

// GenerateOutline produces a markdown outline of a hierarchy: a heading with
// the name and topology, then one nested list item per node in declaration
// order. Intended to be fed through a terminal markdown renderer.
func GenerateOutline(name string, topology domain.Topology, root *domain.Node) string {
	var sb strings.Builder
	if name == "" {
		name = "hierarchy"
	}
	sb.WriteString(fmt.Sprintf("# %s (%s)\n\n", name, topology))
	if root == nil {
		sb.WriteString("_empty_\n")
		return sb.String()
	}

	var walk func(n *domain.Node, depth int)
	walk = func(n *domain.Node, depth int) {
		tag := n.Tag
		if tag == "" {
			tag = "(anchor)"
		}
		line := fmt.Sprintf("%s- **%s**", strings.Repeat("  ", depth), tag)
		if len(n.Aliases) > 0 {
			line += fmt.Sprintf(" (aka %s)", strings.Join(n.Aliases, ", "))
		}
		sb.WriteString(line + "\n")
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	return sb.String()
}
