package symbolic_test

import (
	"fmt"

	"github.com/katalvlaran/mhgraphsat/symbolic"
)

func ExampleReduceClause() {
	c, _ := symbolic.NewClause(1, -1, 2)
	fmt.Println(symbolic.ReduceClause(c))
	// Output: T
}
