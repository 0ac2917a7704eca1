package morphism_test

import (
	"fmt"

	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/morphism"
)

func ExampleIsomorphismSearch() {
	triangleA, _ := hgraph.NewMHGraph([]int{1, 2}, []int{1, 3}, []int{2, 3})
	triangleB, _ := hgraph.NewMHGraph([]int{10, 20}, []int{10, 30}, []int{20, 30})
	ok, _ := morphism.IsomorphismSearch(triangleA, triangleB, false)
	fmt.Println(ok)
	// Output: true
}
