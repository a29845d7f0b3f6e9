package ssm

import (
	"github.com/hammal/longrange/gonumExtensions"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch is returned when the model parameters do not match.
var ErrDimensionMismatch = errors.New("ssm: dimension mismatch")

// AutonomousLinearStateSpaceModel struct represent the system
//
// x[n+1] = A x[n]
//
// y[n] = C x[n]
//
// without inputs.
type AutonomousLinearStateSpaceModel struct {
	// State Dynamics
	A *mat.Dense
	// Observation matrix (1 by N)
	C *mat.Dense
	// Initial state
	X0 *mat.VecDense
}

// NewAutonomousLinearStateSpaceModel checks that A is square and matches C and x0.
func NewAutonomousLinearStateSpaceModel(A, C *mat.Dense, x0 *mat.VecDense) (*AutonomousLinearStateSpaceModel, error) {
	m, n := A.Dims()
	mC, nC := C.Dims()
	if m != n || mC != 1 || nC != m || x0.Len() != m {
		return nil, errors.Wrapf(ErrDimensionMismatch, "A is %dx%d, C is %dx%d, x0 has %d entries", m, n, mC, nC, x0.Len())
	}
	return &AutonomousLinearStateSpaceModel{A: A, C: C, X0: x0}, nil
}

// NewExponentialSum returns the model with
//
// A = diag(eigs), C = coeffs^T, x[0] = 1
//
// whose impulse response y[n] = sum_k coeffs[k] eigs[k]^n is the exponential sum.
func NewExponentialSum(eigs, coeffs []float64) (*AutonomousLinearStateSpaceModel, error) {
	if len(eigs) == 0 || len(eigs) != len(coeffs) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d eigenvalues and %d coefficients", len(eigs), len(coeffs))
	}
	N := len(eigs)
	c := make([]float64, N)
	copy(c, coeffs)
	ones := make([]float64, N)
	for index := range ones {
		ones[index] = 1
	}
	return NewAutonomousLinearStateSpaceModel(gonumExtensions.Diagonal(eigs), mat.NewDense(1, N, c), mat.NewVecDense(N, ones))
}

// Step returns the next state
// x[n+1] = A x[n]
func (model AutonomousLinearStateSpaceModel) Step(state mat.Vector) *mat.VecDense {
	var res mat.VecDense
	res.MulVec(model.A, state)
	return &res
}

// Observation returns the observed value
// y[n] = C x[n]
func (model AutonomousLinearStateSpaceModel) Observation(state mat.Vector) float64 {
	var res mat.VecDense
	res.MulVec(model.C, state)
	return res.AtVec(0)
}

// ImpulseResponse returns y[0], ..., y[n-1] starting from X0.
func (model AutonomousLinearStateSpaceModel) ImpulseResponse(n int) []float64 {
	return Response(model, model.X0, n)
}

func (model AutonomousLinearStateSpaceModel) StateSpaceOrder() int {
	m, _ := model.A.Dims()
	return m
}
