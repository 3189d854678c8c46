// Package registry implements the process-wide store of declared
// specialization nodes. A registry holds exactly one hierarchy and has a
// two-phase lifecycle: mutable while the owning entity declares its
// specializations, immutable once Finalize is called. All structural
// invariants (single root, chain linearity, version ordering) are enforced
// here, at registration time, so the resolvers can stay pure traversals.
package registry

import (
	"sync"

	"github.com/bitreaper/lineage/pkg/domain"
)

// Registry is an append-only arena of nodes forming one hierarchy.
type Registry struct {
	mu        sync.RWMutex
	topology  domain.Topology
	cmp       domain.Comparator
	root      *domain.Node
	nodes     []*domain.Node
	owned     map[*domain.Node]struct{}
	finalized bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithComparator overrides the chain ordering used to validate version tags.
// Ignored for tree registries. Default: domain.CompareVersions.
func WithComparator(cmp domain.Comparator) Option {
	return func(r *Registry) {
		if cmp != nil {
			r.cmp = cmp
		}
	}
}

// New creates an empty registry for the given topology.
func New(topology domain.Topology, opts ...Option) *Registry {
	r := &Registry{
		topology: topology,
		cmp:      domain.CompareVersions,
		owned:    make(map[*domain.Node]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NodeOption configures a node at registration time.
type NodeOption func(*domain.Node)

// WithPayload attaches an opaque payload to the node.
func WithPayload(v any) NodeOption {
	return func(n *domain.Node) {
		n.Payload = v
	}
}

// WithAliases adds equality aliases to the node (tree hierarchies).
func WithAliases(aliases ...string) NodeOption {
	return func(n *domain.Node) {
		n.Aliases = append(n.Aliases, aliases...)
	}
}

// Register appends a new node under parent. A nil parent declares the root.
//
// Failure modes: *domain.DuplicateRootError when the hierarchy already has a
// root, *domain.ForeignNodeError when parent was not registered here,
// *domain.NonLinearChainError and *domain.OutOfOrderVersionError for chain
// topology violations, and domain.ErrFinalized after Finalize.
//
// Registration is not idempotent: in a tree, registering the same tag twice
// under one parent creates a distinct sibling (resolution then picks the first
// by declaration order).
func (r *Registry) Register(tag string, parent *domain.Node, opts ...NodeOption) (*domain.Node, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.finalized {
		return nil, domain.ErrFinalized
	}

	if parent == nil {
		if r.root != nil {
			return nil, &domain.DuplicateRootError{Existing: r.root.Tag, Tag: tag}
		}
	} else {
		if _, ok := r.owned[parent]; !ok {
			return nil, &domain.ForeignNodeError{Tag: parent.Tag}
		}
		if r.topology == domain.Chain {
			if len(parent.Children) > 0 {
				return nil, &domain.NonLinearChainError{
					Parent:   parent.Tag,
					Existing: parent.Children[0].Tag,
					Tag:      tag,
				}
			}
			if anc := nearestTagged(parent); anc != nil && r.cmp(tag, anc.Tag) <= 0 {
				return nil, &domain.OutOfOrderVersionError{Parent: anc.Tag, Tag: tag}
			}
		}
	}

	node := &domain.Node{
		Tag:    tag,
		Parent: parent,
	}
	for _, opt := range opts {
		opt(node)
	}

	if parent == nil {
		r.root = node
	} else {
		parent.Children = append(parent.Children, node)
	}
	r.nodes = append(r.nodes, node)
	r.owned[node] = struct{}{}
	return node, nil
}

// nearestTagged climbs from n (inclusive) to the first node carrying a tag.
// Chain roots may be untagged anchors.
func nearestTagged(n *domain.Node) *domain.Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Tag != "" {
			return cur
		}
	}
	return nil
}

// Finalize ends the declaration phase. Subsequent Register calls fail with
// domain.ErrFinalized. Finalize is idempotent and establishes the
// happens-before edge callers need before issuing concurrent lookups.
func (r *Registry) Finalize() {
	r.mu.Lock()
	r.finalized = true
	r.mu.Unlock()
}

// Finalized reports whether the declaration phase has ended.
func (r *Registry) Finalized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.finalized
}

// Topology returns the hierarchy shape this registry enforces.
func (r *Registry) Topology() domain.Topology {
	return r.topology
}

// Root returns the hierarchy root, or nil before the first registration.
func (r *Registry) Root() *domain.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// Nodes returns a snapshot of all nodes in registration order.
func (r *Registry) Nodes() []*domain.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Node, len(r.nodes))
	copy(out, r.nodes)
	return out
}
