// Package symbolic provides the small exact symbolic layer needed to express
// parametrized coordinates: named variables (Var) and affine forms (Affine)
// with rational coefficients.
//
//	x, y := symbolic.Var("x"), symbolic.Var("y")
//	e, _ := symbolic.NewAffineFrom([]symbolic.Var{x, y}, big.NewRat(2, 1),
//		[]*big.Rat{big.NewRat(-2, 1), new(big.Rat)})
//	fmt.Println(e) // 2 - 2*x
//
// Affine values are immutable; Substitute, AddTerm and AddConst return new
// values. Printing is canonical, so equal forms print identically.
package symbolic
