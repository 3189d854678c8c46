// Package factory constructs concrete handlers from resolved specialization
// nodes. It is the instantiation layer on top of pkg/resolve: resolve picks
// the node, factory invokes whatever constructor the node's payload carries.
package factory

import (
	"context"

	"github.com/bitreaper/lineage/pkg/domain"
	"github.com/bitreaper/lineage/pkg/resolve"
)

// Constructor builds a concrete handler instance. It receives a context and
// free-form arguments, mirroring how the declaring entity would have invoked
// a versioned subclass constructor.
type Constructor func(ctx context.Context, args map[string]any) (any, error)

// NewFromVersion resolves the chain below root for version and instantiates
// the resulting node. Resolution options (Exact, FallbackToRoot) apply as in
// resolve.FindVersion.
func NewFromVersion(ctx context.Context, root *domain.Node, version string, args map[string]any, opts ...resolve.Option) (any, error) {
	node, err := resolve.FindVersion(root, version, opts...)
	if err != nil {
		return nil, err
	}
	return Instantiate(ctx, node, args)
}

// NewFromModel resolves the tree below root for model and instantiates the
// resulting node.
func NewFromModel(ctx context.Context, root *domain.Node, model string, args map[string]any, opts ...resolve.Option) (any, error) {
	node, err := resolve.FindModel(root, model, opts...)
	if err != nil {
		return nil, err
	}
	return Instantiate(ctx, node, args)
}

// NewPrevious instantiates the specialization the node was derived from,
// for rolling an interface back one revision.
func NewPrevious(ctx context.Context, node *domain.Node, args map[string]any) (any, error) {
	prev, err := resolve.FindPreviousVersion(node)
	if err != nil {
		return nil, err
	}
	return Instantiate(ctx, prev, args)
}

// Instantiate invokes the node's payload. A Constructor payload is called
// with the given arguments; any other non-nil payload is returned as-is
// (static handlers need no construction). A nil payload fails with
// *domain.NoConstructorError.
func Instantiate(ctx context.Context, node *domain.Node, args map[string]any) (any, error) {
	switch p := node.Payload.(type) {
	case Constructor:
		return p(ctx, args)
	case func(ctx context.Context, args map[string]any) (any, error):
		return p(ctx, args)
	case nil:
		return nil, &domain.NoConstructorError{Tag: node.Tag}
	default:
		return p, nil
	}
}
