// Package domain contains the core data model of Lineage: the specialization
// node, the hierarchy topologies, tag ordering, and the typed errors that
// registration and resolution can surface.
//
// Nodes are created by pkg/registry during the declaration phase and are
// immutable afterwards; everything in this package is pure data with no
// behavior beyond comparison and error formatting.
package domain
