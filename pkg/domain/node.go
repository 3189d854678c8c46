package domain

// Topology constrains the shape of a hierarchy.
type Topology int

const (
	// Chain is a linear version series: every node has at most one child and
	// tags are totally ordered (version strings).
	Chain Topology = iota
	// Tree is an unrestricted model hierarchy: arbitrary branching, tags
	// compared only for equality (model identifiers).
	Tree
)

func (t Topology) String() string {
	switch t {
	case Chain:
		return "chain"
	case Tree:
		return "tree"
	default:
		return "unknown"
	}
}

// Node represents one declared specialization in a hierarchy.
//
// The registry owns every node; Parent and Children are non-owning links used
// for traversal only. Children preserves declaration order, which is the
// tie-break for tree resolution. After registration a node is never mutated,
// so concurrent reads need no synchronization.
type Node struct {
	// Tag is the primary identifier. For chain nodes it is a version string
	// ordered by the hierarchy's Comparator; for tree nodes it is a model
	// identifier compared for equality. An empty tag is legal only for a
	// chain root acting as a pure anchor.
	Tag string

	// Aliases are additional equality tags for tree nodes. A model query
	// matches a node if it equals Tag or any alias.
	Aliases []string

	// Payload is an opaque handle to whatever the node represents, commonly
	// a factory.Constructor. The resolvers never inspect it.
	Payload any

	// Parent is nil for the root.
	Parent *Node

	// Children in declaration order.
	Children []*Node
}

// Matches reports whether tag equals the node's Tag or one of its Aliases.
func (n *Node) Matches(tag string) bool {
	if n.Tag != "" && n.Tag == tag {
		return true
	}
	for _, a := range n.Aliases {
		if a == tag {
			return true
		}
	}
	return false
}

// Depth returns the number of ancestors above the node.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Root climbs to the top of the hierarchy containing the node.
func (n *Node) Root() *Node {
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}
