package lineage

import (
	"io"
	"log/slog"

	"github.com/bitreaper/lineage/pkg/domain"
	"github.com/bitreaper/lineage/pkg/registry"
	"github.com/bitreaper/lineage/pkg/resolve"
)

// Hierarchy is the high-level entry point for the Lineage library. It wraps a
// registry and the matching resolver so callers declare and query in one
// place.
type Hierarchy struct {
	name   string
	reg    *registry.Registry
	cmp    domain.Comparator
	logger *slog.Logger
}

// Option defines a functional option for configuring a Hierarchy.
type Option func(*Hierarchy)

// WithName labels the hierarchy in logs and presentation output.
func WithName(name string) Option {
	return func(h *Hierarchy) {
		h.name = name
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hierarchy) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithComparator overrides the chain tag ordering (default:
// domain.CompareVersions). Ignored by tree hierarchies.
func WithComparator(cmp domain.Comparator) Option {
	return func(h *Hierarchy) {
		if cmp != nil {
			h.cmp = cmp
		}
	}
}

// New creates an empty hierarchy of the given topology.
func New(topology domain.Topology, opts ...Option) *Hierarchy {
	h := &Hierarchy{cmp: domain.CompareVersions}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if h.name != "" {
		h.logger = h.logger.With("hierarchy", h.name)
	}
	h.reg = registry.New(topology, registry.WithComparator(h.cmp))
	return h
}

// NewChain creates an empty linear version hierarchy.
func NewChain(opts ...Option) *Hierarchy {
	return New(domain.Chain, opts...)
}

// NewTree creates an empty model hierarchy.
func NewTree(opts ...Option) *Hierarchy {
	return New(domain.Tree, opts...)
}

// FromRegistry wraps an already-built registry, e.g. the output of
// dsl.Builder.Build or manifest.Load.
func FromRegistry(reg *registry.Registry, opts ...Option) *Hierarchy {
	h := &Hierarchy{cmp: domain.CompareVersions, reg: reg}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if h.name != "" {
		h.logger = h.logger.With("hierarchy", h.name)
	}
	return h
}

// Register declares a specialization under parent (nil parent = root).
// See registry.Registry.Register for the failure modes.
func (h *Hierarchy) Register(tag string, parent *domain.Node, opts ...registry.NodeOption) (*domain.Node, error) {
	node, err := h.reg.Register(tag, parent, opts...)
	if err != nil {
		h.logger.Debug("registration rejected", "tag", tag, "err", err)
		return nil, err
	}
	h.logger.Debug("registered", "tag", tag, "depth", node.Depth())
	return node, nil
}

// Finalize ends the declaration phase; the hierarchy is then safe for
// unbounded concurrent lookups.
func (h *Hierarchy) Finalize() {
	h.reg.Finalize()
	h.logger.Debug("finalized", "nodes", h.reg.Len())
}

// FindVersion resolves the chain for a version tag, starting at the root.
func (h *Hierarchy) FindVersion(version string, opts ...resolve.Option) (*domain.Node, error) {
	merged := append([]resolve.Option{resolve.WithComparator(h.cmp)}, opts...)
	node, err := resolve.FindVersion(h.reg.Root(), version, merged...)
	if err != nil {
		h.logger.Debug("version lookup failed", "version", version, "err", err)
		return nil, err
	}
	h.logger.Debug("version resolved", "version", version, "tag", node.Tag)
	return node, nil
}

// FindPreviousVersion returns the specialization the node was derived from.
func (h *Hierarchy) FindPreviousVersion(node *domain.Node) (*domain.Node, error) {
	return resolve.FindPreviousVersion(node)
}

// FindAncestor climbs from the node toward the root looking for an exact tag.
func (h *Hierarchy) FindAncestor(node *domain.Node, version string) (*domain.Node, error) {
	return resolve.FindAncestor(node, version)
}

// FindModel resolves the tree for a model identifier, starting at the root.
func (h *Hierarchy) FindModel(model string, opts ...resolve.Option) (*domain.Node, error) {
	node, err := resolve.FindModel(h.reg.Root(), model, opts...)
	if err != nil {
		h.logger.Debug("model lookup failed", "model", model, "err", err)
		return nil, err
	}
	h.logger.Debug("model resolved", "model", model, "tag", node.Tag)
	return node, nil
}

// Name returns the hierarchy label, possibly empty.
func (h *Hierarchy) Name() string {
	return h.name
}

// Topology returns the hierarchy shape.
func (h *Hierarchy) Topology() domain.Topology {
	return h.reg.Topology()
}

// Root returns the hierarchy root, or nil before the first registration.
func (h *Hierarchy) Root() *domain.Node {
	return h.reg.Root()
}

// Nodes returns all registered nodes in declaration order, for introspection
// and visualization.
func (h *Hierarchy) Nodes() []*domain.Node {
	return h.reg.Nodes()
}

// Len returns the number of registered nodes.
func (h *Hierarchy) Len() int {
	return h.reg.Len()
}

// Registry exposes the underlying registry.
func (h *Hierarchy) Registry() *registry.Registry {
	return h.reg
}
