package translation_test

import (
	"fmt"

	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/translation"
)

func ExampleNumberOfCNFs() {
	g, _ := hgraph.NewMHGraph([]int{1, 2})
	fmt.Println(translation.NumberOfCNFs(g))
	// Output: 4
}
