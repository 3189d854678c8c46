/*
Package lineage resolves, at runtime, which concrete specialization of an
abstract entity should handle a given tag (a version string or a device-model
identifier) without a hand-maintained dispatch table.

An entity declares its specializations once, as a hierarchy of tagged nodes:
a linear chain for things that evolve revision by revision (protocol versions,
firmware releases), or a tree for things that branch by model and variant
(device families). Lookups then walk the declared graph instead of an if/else
ladder in a factory method.

# Concept

Registration happens during an initialization phase and the hierarchy is
immutable afterwards. Chain lookups return the most specific version not newer
than the query, so an observed version between two known revisions resolves to
the older one, and a version newer than everything known resolves to the
newest. Tree lookups are a depth-first, declaration-ordered search for an
equality match. Every failed lookup is a typed error; nothing is swallowed.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/bitreaper/lineage"
	)

	func main() {
		h := lineage.NewChain(lineage.WithName("acuity"))

		v10, err := h.Register("1.0", nil)
		if err != nil {
			log.Fatal(err)
		}
		v11, _ := h.Register("1.1", v10)
		h.Register("2.0", v11)
		h.Finalize()

		// Observed firmware 1.5: handled by the 1.1 specialization.
		node, err := h.FindVersion("1.5")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(node.Tag) // "1.1"
	}

Hierarchies can also be declared fluently with pkg/dsl, loaded from YAML
manifests with pkg/manifest, and served over HTTP with the lineage CLI.
*/
package lineage
