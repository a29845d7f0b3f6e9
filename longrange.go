// Package longrange approximates long range interactions r^(-alpha) by short
// sums of exponentials
//
// f(r) ~ sum_k c_k lambda_k^r
//
// which a matrix product operator can represent with one decaying channel per
// component. The fit itself lives in package expfit; this package offers the
// boundary functions on single sites or sequences of sites and the experiment
// glue that turns a configuration into coupling arrays.
package longrange

import (
	"fmt"

	"github.com/hammal/longrange/expfit"
	"github.com/hammal/longrange/signal"
	"github.com/pkg/errors"
)

// PolyDecay returns x^(-alpha) for a site or for each site of a sequence.
// alpha must be finite and > 0.
func PolyDecay[S signal.Sites](alpha float64, x S) (S, error) {
	if err := signal.ValidateExponent(alpha); err != nil {
		var zero S
		return zero, fmt.Errorf("%w: %w", expfit.ErrInvalidParameter, err)
	}
	return signal.Map(x, func(site float64) float64 { return signal.PolyDecay(alpha, site) }), nil
}

// LongRangeCoeffs fits nApprox exponentials to fn(alpha, .) on the sites
// 1..nSites. See expfit.LongRangeCoeffs.
//
// Besides alpha > 0, nApprox >= 1 and nSites > nApprox it requires
// nSites >= 2 nApprox - 1, so that the sample matrix has at least nApprox lags
// and the fit returns nApprox bases. Anything else is
// expfit.ErrInvalidParameter.
func LongRangeCoeffs(fn signal.DecayFunction, alpha float64, nSites, nApprox int, opts ...expfit.Option) (*expfit.Approximation, error) {
	return expfit.LongRangeCoeffs(fn, alpha, nSites, nApprox, opts...)
}

// AppxEval evaluates sum_k coeffs[k] eigs[k]^x at a site or at each site of a
// sequence, keeping the real part.
func AppxEval[S signal.Sites](eigs []complex128, coeffs []float64, x S) (S, error) {
	if len(eigs) != len(coeffs) {
		var zero S
		return zero, errors.Wrapf(expfit.ErrInvalidParameter, "%d eigenvalues and %d coefficients", len(eigs), len(coeffs))
	}
	approx := &expfit.Approximation{Eigenvalues: eigs, Coefficients: coeffs}
	return signal.Map(x, approx.At), nil
}
