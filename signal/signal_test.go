package signal

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyDecay(t *testing.T) {
	assert.Equal(t, 0.0625, PolyDecay(2., 4.))
	assert.Equal(t, []float64{1., 0.5, 0.25}, Sample(PolyDecay, 1., []float64{1, 2, 4}))
	assert.True(t, math.IsInf(PolyDecay(1.5, 0), 1))
}

func TestMapScalarMatchesSequence(t *testing.T) {
	fn := func(x float64) float64 { return PolyDecay(0.7, x) }
	sites := Range(1, 25)
	seq := Map(sites, fn)
	require.Len(t, seq, len(sites))
	for index, site := range sites {
		assert.Equal(t, Map(site, fn), seq[index], "site %v", site)
	}
}

func TestMapEmpty(t *testing.T) {
	res := Map([]float64{}, math.Sqrt)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestRange(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, Range(0, 4))
	assert.Equal(t, []float64{1, 2}, Range(1, 2))
	assert.Empty(t, Range(3, 0))
}

func TestValidateExponent(t *testing.T) {
	for _, alpha := range []float64{1e-9, 0.5, 1, 3} {
		assert.NoError(t, ValidateExponent(alpha), "alpha = %v", alpha)
	}
	for _, alpha := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := ValidateExponent(alpha)
		assert.True(t, errors.Is(err, ErrInvalidExponent), "alpha = %v, err = %v", alpha, err)
	}
}
