package resolve

import "github.com/bitreaper/lineage/pkg/domain"

type config struct {
	cmp          domain.Comparator
	exact        bool
	fallbackRoot bool
}

// Option adjusts a single lookup. Options never mutate the graph.
type Option func(*config)

// Exact requires the resolved tag to equal the query exactly. Without it,
// FindVersion settles for the most specific version not newer than the query.
func Exact() Option {
	return func(c *config) {
		c.exact = true
	}
}

// FallbackToRoot returns the subtree root instead of failing when no node
// matches. Useful when the base entity carries default behavior that predates
// any differentiated specialization.
func FallbackToRoot() Option {
	return func(c *config) {
		c.fallbackRoot = true
	}
}

// WithComparator overrides the version ordering for this lookup. It must
// match the ordering the chain was registered under. Ignored by FindModel.
func WithComparator(cmp domain.Comparator) Option {
	return func(c *config) {
		if cmp != nil {
			c.cmp = cmp
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{cmp: domain.CompareVersions}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
