package satoracle_test

import (
	"fmt"

	"github.com/katalvlaran/mhgraphsat/satoracle"
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

func ExampleDIMACS() {
	f, _ := symbolic.NewCNF([]any{1, -2})
	fmt.Print(satoracle.DIMACS(f))
	// Output: -2 1 0
}
