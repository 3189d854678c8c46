package dsl

// NodeBuilder configures a single declared specialization.
type NodeBuilder struct {
	tag      string
	aliases  []string
	payload  any
	children []*NodeBuilder
}

// Payload attaches the opaque handle the node represents, commonly a
// factory.Constructor.
func (n *NodeBuilder) Payload(v any) *NodeBuilder {
	n.payload = v
	return n
}

// Aliases adds additional equality tags (tree hierarchies).
func (n *NodeBuilder) Aliases(aliases ...string) *NodeBuilder {
	n.aliases = append(n.aliases, aliases...)
	return n
}

// Child declares a specialization of this node and returns its builder.
// Declaration order is preserved and is the tree resolver's tie-break.
func (n *NodeBuilder) Child(tag string) *NodeBuilder {
	child := &NodeBuilder{tag: tag}
	n.children = append(n.children, child)
	return child
}

// Version declares the next revision in a chain and returns its builder.
// It reads better than Child at chain declaration sites; the two are
// equivalent.
func (n *NodeBuilder) Version(tag string) *NodeBuilder {
	return n.Child(tag)
}
