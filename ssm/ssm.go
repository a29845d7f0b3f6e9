// Package ssm represents a sum of exponentials as a discrete time state space
// model. The state carries one decaying amplitude per exponential and the
// observation sums them, which is the finite automaton a matrix product
// operator uses to generate exponentially decaying couplings site by site.
package ssm

import (
	"gonum.org/v1/gonum/mat"
)

// StateSpaceModel interface has two parts:
//
// 1) The state transition x[n+1] = Step(x[n]).
//
// 2) The observation y[n] = Observation(x[n]).
type StateSpaceModel interface {
	// Advance the state by one site
	Step(state mat.Vector) *mat.VecDense
	// Returns the observed value of a state
	Observation(state mat.Vector) float64
	// Returns the state space order
	StateSpaceOrder() int
}

// Response runs model from the initial state x0 and returns the observations
// y[0], ..., y[n-1]. x0 is not modified.
func Response(model StateSpaceModel, x0 mat.Vector, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	res := make([]float64, n)
	state := mat.VecDenseCopyOf(x0)
	for index := range res {
		res[index] = model.Observation(state)
		state = model.Step(state)
	}
	return res
}
