package lineage_test

import (
	"fmt"
	"log"

	"github.com/bitreaper/lineage"
	"github.com/bitreaper/lineage/pkg/dsl"
)

// Example demonstrates declaring a version chain and resolving an observed
// version that sits between two known revisions.
func Example() {
	h := lineage.NewChain(lineage.WithName("acuity"))

	v10, err := h.Register("1.0", nil)
	if err != nil {
		log.Fatal(err)
	}
	v11, _ := h.Register("1.1", v10)
	h.Register("2.0", v11)
	h.Finalize()

	node, err := h.FindVersion("1.5")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(node.Tag)
	// Output: 1.1
}

// Example_tree demonstrates model resolution over a branching hierarchy
// declared with the fluent builder.
func Example_tree() {
	b := dsl.Tree("Phone")
	iphone := b.RootBuilder().Child("iPhone")
	iphone.Child("iPhone6")
	iphone.Child("iPhone7").Aliases("A1660")
	b.RootBuilder().Child("Pixel")

	reg, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	h := lineage.FromRegistry(reg)

	node, err := h.FindModel("A1660")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(node.Tag)
	// Output: iPhone7
}
