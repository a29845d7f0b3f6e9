package expfit

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/hammal/longrange/signal"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateMatchesDirectSum(t *testing.T) {
	eigs := []complex128{0.95, 0.5, -0.2}
	coeffs := []float64{1.5, -0.25, 3}
	direct := func(x float64) float64 {
		return 1.5*math.Pow(0.95, x) - 0.25*math.Pow(0.5, x) + 3*math.Pow(-0.2, x)
	}

	sites := []float64{0, 1, 2, 3, 10, 57}
	for _, x := range sites {
		got, err := Evaluate(eigs, coeffs, x)
		require.NoError(t, err)
		assert.InDelta(t, direct(x), got, 1e-14, "x = %v", x)
	}

	got, err := EvaluateSites(eigs, coeffs, sites)
	require.NoError(t, err)
	require.Len(t, got, len(sites))
	for index, x := range sites {
		scalar, _ := Evaluate(eigs, coeffs, x)
		assert.Equal(t, scalar, got[index], "x = %v", x)
	}
}

func TestEvaluateAtZeroIsCoefficientSum(t *testing.T) {
	got, err := Evaluate([]complex128{0.9, 0.1}, []float64{0.25, 0.5}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.75, got)
}

func TestEvaluateFractionalSite(t *testing.T) {
	got, err := Evaluate([]complex128{0.25}, []float64{2}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1., got, 1e-15)
}

func TestEvaluateComplexPair(t *testing.T) {
	lambda := complex(0.5, 0.3)
	eigs := []complex128{lambda, cmplx.Conj(lambda)}
	coeffs := []float64{1, 1}
	for _, x := range []float64{0, 1, 2, 7.5} {
		got, err := Evaluate(eigs, coeffs, x)
		require.NoError(t, err)
		assert.InDelta(t, 2*real(cmplx.Pow(lambda, complex(x, 0))), got, 1e-14, "x = %v", x)
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	_, err := Evaluate([]complex128{0.5, 0.2}, []float64{1}, 1)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = EvaluateSites([]complex128{0.5}, []float64{1, 2}, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestResidualSitesStartAtZero(t *testing.T) {
	eigs := []complex128{0.5}
	coeffs := []float64{1}
	residual, err := Residual(signal.PolyDecay, 1., 4, eigs, coeffs)
	require.NoError(t, err)
	require.Len(t, residual, 4)

	assert.True(t, math.IsInf(residual[0], 1))
	for i := 1; i < 4; i++ {
		x := float64(i)
		assert.InDelta(t, 1/x-math.Pow(0.5, x), residual[i], 1e-15, "site %d", i)
	}
}

func TestResidualInvalid(t *testing.T) {
	_, err := Residual(nil, 1, 4, []complex128{0.5}, []float64{1})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = Residual(signal.PolyDecay, 1, 4, []complex128{0.5}, nil)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	for _, alpha := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		residual, err := Residual(signal.PolyDecay, alpha, 4, []complex128{0.5}, []float64{1})
		assert.Nil(t, residual)
		assert.True(t, errors.Is(err, ErrInvalidParameter), "alpha = %v", alpha)
		assert.True(t, errors.Is(err, signal.ErrInvalidExponent), "alpha = %v", alpha)
	}
}

func BenchmarkEvaluateSites(b *testing.B) {
	eigs := []complex128{0.99, 0.95, 0.9, 0.8, 0.7, 0.5, 0.3, 0.2, 0.1, 0.05}
	coeffs := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	sites := signal.Range(0, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EvaluateSites(eigs, coeffs, sites)
	}
}
