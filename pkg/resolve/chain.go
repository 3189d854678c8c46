package resolve

import "github.com/bitreaper/lineage/pkg/domain"

// FindVersion walks the chain below root and returns the most specific node
// whose tag is not newer than version. A query newer than every registered
// version resolves to the deepest (newest) node: newest-known is the best
// available approximation for unseen-newer software. A query older than every
// tagged node fails with *domain.VersionNotFoundError.
//
// An untagged root acts as a pure anchor: it is walked through but never
// returned as a match (it can still be returned via FallbackToRoot).
//
// The walk assumes chain linearity. Encountering a node with more than one
// child fails with *domain.AmbiguousChainError; graphs built through
// pkg/registry reject such a registration up front, so this only triggers on
// hand-assembled graphs.
func FindVersion(root *domain.Node, version string, opts ...Option) (*domain.Node, error) {
	cfg := newConfig(opts)

	var best, last *domain.Node
	cur := root
	for cur != nil {
		last = cur
		if cur.Tag != "" {
			if cfg.cmp(cur.Tag, version) > 0 {
				// Everything below is newer still.
				break
			}
			best = cur
		}
		switch len(cur.Children) {
		case 0:
			cur = nil
		case 1:
			cur = cur.Children[0]
		default:
			return nil, &domain.AmbiguousChainError{Node: cur.Tag, Children: len(cur.Children)}
		}
	}

	if cfg.exact && best != nil && cfg.cmp(best.Tag, version) != 0 {
		best = nil
	}
	if best != nil {
		return best, nil
	}
	if cfg.fallbackRoot && root != nil {
		return root, nil
	}
	bottom := ""
	if last != nil {
		bottom = last.Tag
	}
	return nil, &domain.VersionNotFoundError{Version: version, Bottom: bottom}
}

// FindPreviousVersion returns the node's parent, the specialization it was
// derived from. It fails with *domain.NoPreviousVersionError on the chain
// root. Intended for interface rollback: instantiating the previous revision
// when the current one cannot serve.
func FindPreviousVersion(node *domain.Node) (*domain.Node, error) {
	if node == nil || node.Parent == nil {
		tag := ""
		if node != nil {
			tag = node.Tag
		}
		return nil, &domain.NoPreviousVersionError{Tag: tag}
	}
	return node.Parent, nil
}

// FindAncestor climbs from the node toward the root and returns the first
// ancestor whose tag equals version. It fails with
// *domain.VersionNotFoundError when the top of the chain is reached without a
// match. The node itself is not considered.
func FindAncestor(node *domain.Node, version string) (*domain.Node, error) {
	if node == nil {
		return nil, &domain.VersionNotFoundError{Version: version}
	}
	var top *domain.Node
	for cur := node; cur != nil; cur = cur.Parent {
		top = cur
	}
	for cur := node.Parent; cur != nil; cur = cur.Parent {
		if cur.Tag != "" && cur.Tag == version {
			return cur, nil
		}
	}
	bottom := ""
	if top != nil {
		bottom = top.Tag
	}
	return nil, &domain.VersionNotFoundError{Version: version, Bottom: bottom}
}
