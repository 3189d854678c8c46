// Package resolve implements the lookup algorithms over registered
// hierarchies: the chain resolver for version series and the tree resolver
// for model hierarchies.
//
// Both resolvers are pure functions over immutable node graphs. They never
// mutate, block, or retain state between calls, so they are safe for
// unbounded concurrent use once the declaration phase has completed (see
// registry.Finalize). Every failed lookup returns a typed error from
// pkg/domain so callers can branch on cause.
package resolve
