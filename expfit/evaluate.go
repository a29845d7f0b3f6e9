package expfit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/hammal/longrange/signal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// power returns Re(eig^x). Real eigenvalues go through math.Pow so that integer
// powers of negative bases stay exact.
func power(eig complex128, x float64) float64 {
	if imag(eig) == 0 {
		return math.Pow(real(eig), x)
	}
	return real(cmplx.Pow(eig, complex(x, 0)))
}

func evaluate(eigs []complex128, coeffs []float64, x float64) float64 {
	var est float64
	for k, eig := range eigs {
		est += coeffs[k] * power(eig, x)
	}
	return est
}

func checkLengths(eigs []complex128, coeffs []float64) error {
	if len(eigs) != len(coeffs) {
		return errors.Wrapf(ErrInvalidParameter, "%d eigenvalues and %d coefficients", len(eigs), len(coeffs))
	}
	return nil
}

// Evaluate returns
//
// sum_k coeffs[k] eigs[k]^x
//
// keeping the real part for complex eigenvalues.
func Evaluate(eigs []complex128, coeffs []float64, x float64) (float64, error) {
	if err := checkLengths(eigs, coeffs); err != nil {
		return 0, err
	}
	return evaluate(eigs, coeffs, x), nil
}

// EvaluateSites is Evaluate applied to every site in xs.
func EvaluateSites(eigs []complex128, coeffs []float64, xs []float64) ([]float64, error) {
	if err := checkLengths(eigs, coeffs); err != nil {
		return nil, err
	}
	return signal.Map(xs, func(x float64) float64 { return evaluate(eigs, coeffs, x) }), nil
}

// Residual returns the pointwise error
//
// error[i] = fn(alpha, i) - sum_k coeffs[k] eigs[k]^i,  i = 0, ..., nSites-1
//
// Note that the sites start at 0 while the fit samples start at 1, so
// error[0] is +Inf for PolyDecay.
func Residual(fn signal.DecayFunction, alpha float64, nSites int, eigs []complex128, coeffs []float64) ([]float64, error) {
	if fn == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "decay function is nil")
	}
	if err := signal.ValidateExponent(alpha); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if nSites < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "number of sites %d < 0", nSites)
	}
	sites := signal.Range(0, nSites)
	approx, err := EvaluateSites(eigs, coeffs, sites)
	if err != nil {
		return nil, err
	}
	truth := signal.Sample(fn, alpha, sites)
	return floats.SubTo(make([]float64, nSites), truth, approx), nil
}
