package domain

import (
	"errors"
	"fmt"
)

// ErrFinalized is returned by Register once a registry has been finalized.
var ErrFinalized = errors.New("hierarchy is finalized")

// DuplicateRootError reports a second parentless registration in a hierarchy
// that already has a root.
type DuplicateRootError struct {
	Existing string // tag of the root already registered
	Tag      string // tag of the rejected registration
}

func (e *DuplicateRootError) Error() string {
	return fmt.Sprintf("root %q already registered, cannot register second root %q", e.Existing, e.Tag)
}

// NonLinearChainError reports an attempt to register a second child under a
// chain node. Chains are single-lineage only; a node holding two children has
// no well-defined "next version".
type NonLinearChainError struct {
	Parent   string // tag of the node that would branch
	Existing string // tag of the child it already holds
	Tag      string // tag of the rejected sibling
}

func (e *NonLinearChainError) Error() string {
	return fmt.Sprintf("chain node %q already has child %q, cannot register %q: chains allow at most one child per node", e.Parent, e.Existing, e.Tag)
}

// OutOfOrderVersionError reports a chain registration whose tag does not sort
// strictly after its nearest tagged ancestor. Duplicate tags in a chain fail
// with this error as well.
type OutOfOrderVersionError struct {
	Parent string // tag of the nearest tagged ancestor
	Tag    string // tag of the rejected registration
}

func (e *OutOfOrderVersionError) Error() string {
	return fmt.Sprintf("version %q does not sort after its ancestor %q", e.Tag, e.Parent)
}

// ForeignNodeError reports a parent reference that belongs to a different
// registry.
type ForeignNodeError struct {
	Tag string // tag of the foreign parent
}

func (e *ForeignNodeError) Error() string {
	return fmt.Sprintf("parent node %q belongs to a different hierarchy", e.Tag)
}

// AmbiguousChainError reports that a chain walk encountered a node with more
// than one child. This only occurs on graphs assembled without registry
// validation; registry-built chains fail at registration instead.
type AmbiguousChainError struct {
	Node     string // tag of the branching node
	Children int
}

func (e *AmbiguousChainError) Error() string {
	return fmt.Sprintf("node %q has %d children, chain lookup is ambiguous", e.Node, e.Children)
}

// VersionNotFoundError reports a version lookup that matched no node.
type VersionNotFoundError struct {
	Version string // the queried version
	Bottom  string // tag of the deepest node examined
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found in chain, hit bottom at %q", e.Version, e.Bottom)
}

// NoPreviousVersionError reports a previous-version lookup on a root node.
type NoPreviousVersionError struct {
	Tag string // tag of the node without a parent
}

func (e *NoPreviousVersionError) Error() string {
	return fmt.Sprintf("node %q is the top of its chain, no previous version", e.Tag)
}

// ModelNotFoundError reports a model lookup that matched no node in the
// subtree.
type ModelNotFoundError struct {
	Model string // the queried model identifier
	Root  string // tag of the subtree root that was searched
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %q not found under %q", e.Model, e.Root)
}

// NoConstructorError reports a factory instantiation on a node whose payload
// is not a constructor.
type NoConstructorError struct {
	Tag string
}

func (e *NoConstructorError) Error() string {
	return fmt.Sprintf("node %q has no constructor payload", e.Tag)
}
