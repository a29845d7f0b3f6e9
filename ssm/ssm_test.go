package ssm

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewExponentialSum(t *testing.T) {
	eigs := []float64{0.9, 0.5, -0.3}
	coeffs := []float64{1, 2, 0.5}
	model, err := NewExponentialSum(eigs, coeffs)
	require.NoError(t, err)
	assert.Equal(t, 3, model.StateSpaceOrder())

	var _ StateSpaceModel = model

	// A is diagonal, so A^n is diagonal with eigs^n
	var power mat.Dense
	power.Pow(model.A, 4)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row == col {
				assert.InDelta(t, math.Pow(eigs[row], 4), power.At(row, col), 1e-15)
			} else {
				assert.Zero(t, power.At(row, col))
			}
		}
	}
}

func TestImpulseResponse(t *testing.T) {
	eigs := []float64{0.9, 0.5, -0.3}
	coeffs := []float64{1, 2, 0.5}
	model, err := NewExponentialSum(eigs, coeffs)
	require.NoError(t, err)

	response := model.ImpulseResponse(25)
	require.Len(t, response, 25)
	for n, y := range response {
		var want float64
		for k := range eigs {
			want += coeffs[k] * math.Pow(eigs[k], float64(n))
		}
		assert.InDelta(t, want, y, 1e-14, "tap %d", n)
	}
	assert.Empty(t, model.ImpulseResponse(0))
}

func TestImpulseResponseDoesNotMutateInitialState(t *testing.T) {
	model, err := NewExponentialSum([]float64{0.5}, []float64{1})
	require.NoError(t, err)
	model.ImpulseResponse(10)
	assert.Equal(t, 1., model.X0.AtVec(0))
}

func TestNewExponentialSumMismatch(t *testing.T) {
	_, err := NewExponentialSum([]float64{0.5, 0.2}, []float64{1})
	assert.True(t, errors.Is(err, ErrDimensionMismatch))

	_, err = NewExponentialSum(nil, nil)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestNewAutonomousLinearStateSpaceModelMismatch(t *testing.T) {
	A := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	C := mat.NewDense(1, 3, []float64{1, 1, 1})
	_, err := NewAutonomousLinearStateSpaceModel(A, C, mat.NewVecDense(2, nil))
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

// counter adds one to its single state on every step and observes twice the state.
type counter struct{}

func (counter) Step(state mat.Vector) *mat.VecDense {
	return mat.NewVecDense(1, []float64{state.AtVec(0) + 1})
}

func (counter) Observation(state mat.Vector) float64 {
	return 2 * state.AtVec(0)
}

func (counter) StateSpaceOrder() int { return 1 }

func TestResponse(t *testing.T) {
	x0 := mat.NewVecDense(1, []float64{3})
	assert.Equal(t, []float64{6, 8, 10, 12}, Response(counter{}, x0, 4))
	assert.Equal(t, 3., x0.AtVec(0))
	assert.Empty(t, Response(counter{}, x0, 0))
	assert.Empty(t, Response(counter{}, x0, -2))
}

func BenchmarkImpulseResponse(b *testing.B) {
	model, _ := NewExponentialSum(
		[]float64{0.99, 0.95, 0.9, 0.8, 0.7, 0.5, 0.3, 0.2, 0.1, 0.05},
		[]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		model.ImpulseResponse(1000)
	}
}
