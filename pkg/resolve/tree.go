package resolve

import "github.com/bitreaper/lineage/pkg/domain"

// FindModel searches the subtree below root for the first node matching the
// model identifier, on its primary tag or any alias. The traversal is
// depth-first and pre-order: the root is checked before its children, and
// children are visited in declaration order. When several nodes share a tag
// the first one declared wins; that tie-break is deliberate and stable across
// runs.
//
// A miss fails with *domain.ModelNotFoundError unless FallbackToRoot is set,
// in which case the root is returned as the default handler.
func FindModel(root *domain.Node, model string, opts ...Option) (*domain.Node, error) {
	cfg := newConfig(opts)

	if root != nil {
		if n := findModel(root, model); n != nil {
			return n, nil
		}
		if cfg.fallbackRoot {
			return root, nil
		}
	}
	rootTag := ""
	if root != nil {
		rootTag = root.Tag
	}
	return nil, &domain.ModelNotFoundError{Model: model, Root: rootTag}
}

func findModel(n *domain.Node, model string) *domain.Node {
	if n.Matches(model) {
		return n
	}
	for _, child := range n.Children {
		if found := findModel(child, model); found != nil {
			return found
		}
	}
	return nil
}
