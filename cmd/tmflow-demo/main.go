package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hybberish/tmflow/pkg/tmflow"
)

// tmflow-demo runs the worked example from the project's Taylor Model
// write-up: x' = 1+y, y' = -x^2 over the time horizon [0, 0.1], and
// writes the resulting flowpipes to flowpipes.csv in the current
// directory.
func main() {
	vars, err := tmflow.NewVariableSet([]string{"x", "y"})
	if err != nil {
		log.Fatalf("tmflow-demo: building variable set: %v", err)
	}

	x, err := tmflow.Var(vars, "x")
	if err != nil {
		log.Fatalf("tmflow-demo: resolving x: %v", err)
	}
	y, err := tmflow.Var(vars, "y")
	if err != nil {
		log.Fatalf("tmflow-demo: resolving y: %v", err)
	}

	xSquared, err := tmflow.Pow(x, 2)
	if err != nil {
		log.Fatalf("tmflow-demo: squaring x: %v", err)
	}

	field := tmflow.PolynomialVector{
		tmflow.Add(tmflow.Const(vars, 1), y),
		tmflow.ScalarMul(-1, xSquared),
	}

	odeVarBox, err := intervalVector(
		[2]float64{-0.0020, 0.0020},
		[2]float64{-0.0021, 0.0021},
	)
	if err != nil {
		log.Fatalf("tmflow-demo: building ode variable box: %v", err)
	}

	initialRemainders, err := intervalVector(
		[2]float64{-0.1, 0.1},
		[2]float64{-0.1, 0.1},
	)
	if err != nil {
		log.Fatalf("tmflow-demo: building initial remainder estimate: %v", err)
	}

	initialBox, err := intervalVector(
		[2]float64{-1.0, 1.0},
		[2]float64{-0.5, 0.5},
	)
	if err != nil {
		log.Fatalf("tmflow-demo: building initial box: %v", err)
	}

	horizon, err := tmflow.NewInterval(0, 0.1)
	if err != nil {
		log.Fatalf("tmflow-demo: building time horizon: %v", err)
	}

	problem := tmflow.Problem{
		Vars:              vars,
		StateVars:         vars.StateVars(),
		Field:             field,
		OdeVarBox:         odeVarBox,
		InitialBox:        initialBox,
		InitialRemainders: initialRemainders,
		TimeHorizon:       horizon,
	}

	cfg := tmflow.DefaultConfig()

	result, err := tmflow.Integrate(context.Background(), problem, cfg)
	if err != nil {
		log.Fatalf("tmflow-demo: integration failed: %v", err)
	}

	f, err := os.Create("flowpipes.csv")
	if err != nil {
		log.Fatalf("tmflow-demo: creating flowpipes.csv: %v", err)
	}
	defer f.Close()

	if err := tmflow.WriteCSV(f, result); err != nil {
		log.Fatalf("tmflow-demo: writing flowpipes.csv: %v", err)
	}

	fmt.Printf("wrote %d flowpipes to flowpipes.csv\n", len(result.Flowpipes))
}

func intervalVector(bounds ...[2]float64) (tmflow.IntervalVector, error) {
	iv := make(tmflow.IntervalVector, len(bounds))
	for i, b := range bounds {
		interval, err := tmflow.NewInterval(b[0], b[1])
		if err != nil {
			return nil, err
		}
		iv[i] = interval
	}
	return iv, nil
}
