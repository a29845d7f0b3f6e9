// Package coupling turns a fitted exponential sum into the per component
// coupling arrays consumed by a long range Hamiltonian builder.
//
// For an interaction J r^(-alpha) approximated by sum_k c_k lambda_k^r, a
// matrix product operator generating component k applies the decay Xi[k] =
// lambda_k on every site between the two operators and the amplitude
// J c_k lambda_k once, so the coupling between sites i and i + r is
//
// sum_k J c_k lambda_k Xi[k]^(r-1) = sum_k J c_k lambda_k^r ~ J r^(-alpha)
//
// The operator grid itself is built elsewhere.
package coupling

import (
	"fmt"
	"math"

	"github.com/hammal/longrange/expfit"
	"github.com/hammal/longrange/ssm"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidCouplings is returned for a missing or inconsistent approximation
	// or a non-finite coupling strength.
	ErrInvalidCouplings = errors.New("coupling: invalid input")

	// ErrComplexDecay is returned when a fitted basis is complex. The operator
	// grid needs real decays.
	ErrComplexDecay = errors.New("coupling: complex decay")

	// ErrDecayAboveUnity is returned when a fitted basis exceeds one, which
	// would make the generated coupling grow with distance.
	ErrDecayAboveUnity = errors.New("coupling: decay needs to be at most 1")
)

// Couplings holds one entry per exponential component.
type Couplings struct {
	// Amplitude of the S+S- + S-S+ terms, Jxx[k] = xy c_k lambda_k
	Jxx []float64
	// Amplitude of the SzSz term, Jz[k] = z c_k lambda_k
	Jz []float64
	// Decay per site, Xi[k] = lambda_k
	Xi []float64
}

// Build scales the fitted bases and coefficients by the coupling strengths xy
// and z.
func Build(approx *expfit.Approximation, xy, z float64) (*Couplings, error) {
	if approx == nil {
		return nil, errors.Wrap(ErrInvalidCouplings, "approximation is nil")
	}
	if len(approx.Eigenvalues) == 0 || len(approx.Eigenvalues) != len(approx.Coefficients) {
		return nil, errors.Wrapf(ErrInvalidCouplings, "%d eigenvalues and %d coefficients",
			len(approx.Eigenvalues), len(approx.Coefficients))
	}
	if !finite(xy) || !finite(z) {
		return nil, errors.Wrapf(ErrInvalidCouplings, "coupling strengths xy = %v, z = %v", xy, z)
	}
	xi, err := approx.RealEigenvalues()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrComplexDecay, err)
	}
	for index, decay := range xi {
		if decay > 1 {
			return nil, errors.Wrapf(ErrDecayAboveUnity, "component %d has decay %v", index, decay)
		}
	}

	res := &Couplings{
		Jxx: make([]float64, len(xi)),
		Jz:  make([]float64, len(xi)),
		Xi:  xi,
	}
	for index, decay := range xi {
		amplitude := approx.Coefficients[index] * decay
		res.Jxx[index] = xy * amplitude
		res.Jz[index] = z * amplitude
	}
	return res, nil
}

// Len returns the number of components.
func (c *Couplings) Len() int {
	return len(c.Xi)
}

// At returns the couplings between two sites at distance r >= 1
//
// J(r) = sum_k J[k] Xi[k]^(r-1)
func (c *Couplings) At(r int) (jxx, jz float64, err error) {
	if r < 1 {
		return 0, 0, errors.Wrapf(ErrInvalidCouplings, "distance %d < 1", r)
	}
	for index, decay := range c.Xi {
		p := math.Pow(decay, float64(r-1))
		jxx += c.Jxx[index] * p
		jz += c.Jz[index] * p
	}
	return jxx, jz, nil
}

// Profile returns the couplings at distances 1..n by running the automaton
// x[r+1] = diag(Xi) x[r] site by site, the way the operator grid accumulates
// the decay.
func (c *Couplings) Profile(n int) (jxx, jz []float64, err error) {
	if n < 0 {
		return nil, nil, errors.Wrapf(ErrInvalidCouplings, "profile length %d < 0", n)
	}
	xx, err := ssm.NewExponentialSum(c.Xi, c.Jxx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidCouplings, err)
	}
	zz, err := ssm.NewExponentialSum(c.Xi, c.Jz)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidCouplings, err)
	}
	return ssm.Response(xx, xx.X0, n), ssm.Response(zz, zz.X0, n), nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
