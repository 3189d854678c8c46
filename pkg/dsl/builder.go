package dsl

import (
	"fmt"

	"github.com/bitreaper/lineage/pkg/domain"
	"github.com/bitreaper/lineage/pkg/registry"
)

// Builder accumulates node declarations and compiles them into a registry.
type Builder struct {
	topology domain.Topology
	cmp      domain.Comparator
	root     *NodeBuilder
}

// New creates a builder for the given topology.
func New(topology domain.Topology) *Builder {
	return &Builder{topology: topology}
}

// Chain is shorthand for New(domain.Chain) with the root version declared.
func Chain(rootTag string) *Builder {
	b := New(domain.Chain)
	b.Root(rootTag)
	return b
}

// Tree is shorthand for New(domain.Tree) with the root model declared.
func Tree(rootTag string) *Builder {
	b := New(domain.Tree)
	b.Root(rootTag)
	return b
}

// Comparator sets the chain ordering used during Build validation.
func (b *Builder) Comparator(cmp domain.Comparator) *Builder {
	b.cmp = cmp
	return b
}

// Root declares the hierarchy root. Calling it twice replaces the whole
// declaration; use Build for the duplicate-root defect of a live registry.
func (b *Builder) Root(tag string) *NodeBuilder {
	b.root = &NodeBuilder{tag: tag}
	return b.root
}

// RootBuilder returns the declared root's builder, or nil before Root is
// called. Convenient with the Chain and Tree shorthands.
func (b *Builder) RootBuilder() *NodeBuilder {
	return b.root
}

// Build registers every declared node depth-first in declaration order and
// returns the finalized registry. Structural defects (branching chains,
// out-of-order versions) surface here as the registry's typed errors.
func (b *Builder) Build() (*registry.Registry, error) {
	if b.root == nil {
		return nil, fmt.Errorf("no root declared")
	}

	var regOpts []registry.Option
	if b.cmp != nil {
		regOpts = append(regOpts, registry.WithComparator(b.cmp))
	}
	reg := registry.New(b.topology, regOpts...)

	if err := b.register(reg, b.root, nil); err != nil {
		return nil, err
	}
	reg.Finalize()
	return reg, nil
}

func (b *Builder) register(reg *registry.Registry, nb *NodeBuilder, parent *domain.Node) error {
	var opts []registry.NodeOption
	if nb.payload != nil {
		opts = append(opts, registry.WithPayload(nb.payload))
	}
	if len(nb.aliases) > 0 {
		opts = append(opts, registry.WithAliases(nb.aliases...))
	}

	node, err := reg.Register(nb.tag, parent, opts...)
	if err != nil {
		return fmt.Errorf("declaring %q: %w", nb.tag, err)
	}
	for _, child := range nb.children {
		if err := b.register(reg, child, node); err != nil {
			return err
		}
	}
	return nil
}
