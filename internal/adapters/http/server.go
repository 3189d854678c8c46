// Package http exposes a hierarchy as a small read-only JSON API: resolution
// queries, introspection, health, and prometheus metrics. Lookups stay pure
// traversals; the adapter adds nothing but transport.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bitreaper/lineage/pkg/domain"
	"github.com/bitreaper/lineage/pkg/resolve"
)

// Hierarchy defines what the server needs from the resolution core.
type Hierarchy interface {
	Name() string
	Topology() domain.Topology
	Root() *domain.Node
	Nodes() []*domain.Node
	FindVersion(version string, opts ...resolve.Option) (*domain.Node, error)
	FindModel(model string, opts ...resolve.Option) (*domain.Node, error)
}

// Server serves resolution queries for one hierarchy.
type Server struct {
	hierarchy Hierarchy
	metrics   *metrics
}

// NewHandler creates the HTTP handler for a hierarchy.
func NewHandler(h Hierarchy) http.Handler {
	s := &Server{
		hierarchy: h,
		metrics:   newMetrics(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/hierarchy", s.handleHierarchy)
	r.Get("/resolve/version", s.handleResolveVersion)
	r.Get("/resolve/model", s.handleResolveModel)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	return r
}

// nodeView is the JSON shape of a resolved node.
type nodeView struct {
	Tag     string   `json:"tag"`
	Aliases []string `json:"aliases,omitempty"`
	Depth   int      `json:"depth"`
	Parent  string   `json:"parent,omitempty"`
}

func viewOf(n *domain.Node) nodeView {
	v := nodeView{
		Tag:     n.Tag,
		Aliases: n.Aliases,
		Depth:   n.Depth(),
	}
	if n.Parent != nil {
		v.Parent = n.Parent.Tag
	}
	return v
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHierarchy(w http.ResponseWriter, r *http.Request) {
	nodes := s.hierarchy.Nodes()
	views := make([]nodeView, 0, len(nodes))
	for _, n := range nodes {
		views = append(views, viewOf(n))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":     s.hierarchy.Name(),
		"topology": s.hierarchy.Topology().String(),
		"nodes":    views,
	})
}

func (s *Server) handleResolveVersion(w http.ResponseWriter, r *http.Request) {
	s.handleResolve(w, r, "version", func(tag string, opts []resolve.Option) (*domain.Node, error) {
		if r.URL.Query().Get("exact") == "true" {
			opts = append(opts, resolve.Exact())
		}
		return s.hierarchy.FindVersion(tag, opts...)
	})
}

func (s *Server) handleResolveModel(w http.ResponseWriter, r *http.Request) {
	s.handleResolve(w, r, "model", func(tag string, opts []resolve.Option) (*domain.Node, error) {
		return s.hierarchy.FindModel(tag, opts...)
	})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request, kind string, find func(string, []resolve.Option) (*domain.Node, error)) {
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing 'tag' query parameter", Kind: "bad_request"})
		return
	}

	var opts []resolve.Option
	if r.URL.Query().Get("fallback") == "true" {
		opts = append(opts, resolve.FallbackToRoot())
	}

	start := time.Now()
	node, err := find(tag, opts)
	s.metrics.observe(kind, outcomeOf(err), time.Since(start))

	if err != nil {
		writeJSON(w, statusOf(err), errorResponse{Error: err.Error(), Kind: kindOf(err)})
		return
	}
	writeJSON(w, http.StatusOK, viewOf(node))
}

// outcomeOf labels the lookup result for metrics.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "hit"
	case isNotFound(err):
		return "miss"
	default:
		return "error"
	}
}

func isNotFound(err error) bool {
	var vnf *domain.VersionNotFoundError
	var mnf *domain.ModelNotFoundError
	return errors.As(err, &vnf) || errors.As(err, &mnf)
}

// statusOf maps resolution failures to HTTP codes: lookup misses are 404,
// structural defects are 500.
func statusOf(err error) int {
	if isNotFound(err) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func kindOf(err error) string {
	var (
		vnf *domain.VersionNotFoundError
		mnf *domain.ModelNotFoundError
		amb *domain.AmbiguousChainError
	)
	switch {
	case errors.As(err, &vnf):
		return "version_not_found"
	case errors.As(err, &mnf):
		return "model_not_found"
	case errors.As(err, &amb):
		return "ambiguous_chain"
	default:
		return "internal"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
