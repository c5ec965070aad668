package symbolic_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/paratope/symbolic"
)

// ExampleAffine_Substitute shows partial substitution followed by evaluation.
func ExampleAffine_Substitute() {
	vars := symbolic.MustVars("x", "y")
	e, _ := symbolic.NewAffineFrom(vars, big.NewRat(2, 1),
		[]*big.Rat{big.NewRat(-2, 1), big.NewRat(1, 3)})
	fmt.Println(e)

	half, _ := e.Substitute(map[symbolic.Var]*big.Rat{"x": big.NewRat(1, 2)})
	fmt.Println(half)

	v, _ := half.Eval(map[symbolic.Var]*big.Rat{"x": big.NewRat(1, 2), "y": big.NewRat(3, 1)})
	fmt.Println(v.RatString())

	// Output:
	// 2 - 2*x + 1/3*y
	// 1 + 1/3*y
	// 2
}
