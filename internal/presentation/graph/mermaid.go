package graph

import (
	"fmt"
	"strings"

	"github.com/bitreaper/lineage/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart (graph TD) for a hierarchy.
// The root renders as a circle, every other node as a rectangle; aliases are
// listed under the tag. Chain edges read top-down as the version series.
func GenerateMermaid(root *domain.Node) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if root == nil {
		return sb.String()
	}

	ids := make(map[*domain.Node]string)
	next := 0
	id := func(n *domain.Node) string {
		if s, ok := ids[n]; ok {
			return s
		}
		s := fmt.Sprintf("n%d", next)
		next++
		ids[n] = s
		return s
	}

	var walk func(n *domain.Node)
	walk = func(n *domain.Node) {
		opener, closer := "[", "]"
		if n.Parent == nil {
			opener, closer = "((", "))" // Circle for the root
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id(n), opener, nodeLabel(n), closer))
		for _, child := range n.Children {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", id(n), id(child)))
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)

	return sb.String()
}

func nodeLabel(n *domain.Node) string {
	tag := n.Tag
	if tag == "" {
		tag = "(anchor)"
	}
	// Escape double quotes for Mermaid labels
	tag = strings.ReplaceAll(tag, "\"", "'")
	if len(n.Aliases) == 0 {
		return tag
	}
	return fmt.Sprintf("%s <br/> %s", tag, strings.Join(n.Aliases, ", "))
}
