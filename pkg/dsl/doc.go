// Package dsl provides a fluent builder for declaring specialization
// hierarchies in code. It replaces the subclass-per-version declaration style
// of inheritance-based designs: instead of deriving a class per revision, the
// owning entity declares its chain or tree once and the builder registers the
// nodes in declaration order.
//
// Build compiles the declarations into a finalized registry, surfacing all
// structural defects (branching chains, out-of-order versions) at build time.
package dsl
