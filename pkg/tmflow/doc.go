// Package tmflow computes sound flowpipe enclosures for initial value
// problems x' = F(x) using the Taylor Model method: symbolic Taylor
// expansion via iterated Lie derivatives, Picard-operator fixed-point
// remainder refinement, and a contractive widening search, composed
// step by step across a time horizon.
//
// # Features
//
// - Sparse multivariate polynomial algebra with outward-rounded interval
// arithmetic
// - Picard-operator remainder refinement with a contractive widening
// search
// - Step-by-step flowpipe composition over an arbitrary time horizon
// - Optional finite-difference Jacobian diagnostics
//
// # Quick Start
//
// Building the variable set and vector field for x' = 1+y, y' = -x^2:
//
//	vars, err := tmflow.NewVariableSet([]string{"x", "y"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	x, _ := tmflow.Var(vars, "x")
//	y, _ := tmflow.Var(vars, "y")
//	xSq, _ := tmflow.Pow(x, 2)
//	field := tmflow.PolynomialVector{
//		tmflow.Add(tmflow.Const(vars, 1), y),
//		tmflow.ScalarMul(-1, xSq),
//	}
//
// Running the integration:
//
//	horizon, _ := tmflow.NewInterval(0, 0.1)
//	initialBox := tmflow.IntervalVector{ /* ... */ }
//	problem := tmflow.Problem{
//		Vars:        vars,
//		StateVars:   vars.StateVars(),
//		Field:       field,
//		InitialBox:  initialBox,
//		TimeHorizon: horizon,
//		// OdeVarBox, InitialRemainders: see spec's worked example.
//	}
//
//	result, err := tmflow.Integrate(context.Background(), problem, tmflow.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	f, err := os.Create("flowpipes.csv")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//	if err := tmflow.WriteCSV(f, result); err != nil {
//		log.Fatal(err)
//	}
package tmflow
