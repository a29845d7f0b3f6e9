package expfit

import (
	"math"

	"github.com/hammal/longrange/logging"
	"github.com/hammal/longrange/signal"
	"github.com/pkg/errors"
)

// Approximation is the result of a fit:
//
// f(x) ~ sum_k Coefficients[k] Eigenvalues[k]^x
//
// with Error[i] = f(i) - approximation(i) for i = 0, ..., nSites-1.
type Approximation struct {
	// Fitted exponential bases, descending in the order of SortEigenvalues
	Eigenvalues []complex128
	// Coefficient of each basis
	Coefficients []float64
	// Pointwise residual over the sites 0..nSites-1
	Error []float64
}

// LongRangeCoeffs fits nApprox exponentials to fn(alpha, .) sampled on the sites
// 1..nSites. It requires alpha > 0, nApprox >= 1, nSites > nApprox and
// nSites >= 2 nApprox - 1; violations return ErrInvalidParameter before any
// matrix is built.
func LongRangeCoeffs(fn signal.DecayFunction, alpha float64, nSites, nApprox int, opts ...Option) (*Approximation, error) {
	if err := validate(fn, alpha, nSites, nApprox); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	// Pass the resolved options on so the steps share one configuration.
	var resolved Option = func(dst *options) { *dst = o }

	sample, err := NewSampleMatrix(fn, alpha, nSites, nApprox)
	if err != nil {
		return nil, err
	}
	eigs, err := ShiftEigenvalues(sample, resolved)
	if err != nil {
		return nil, errors.WithMessage(err, "shift eigenvalues")
	}
	coeffs, err := FitCoefficients(eigs, fn, alpha, nSites, resolved)
	if err != nil {
		return nil, errors.WithMessage(err, "coefficients")
	}
	residual, err := Residual(fn, alpha, nSites, eigs, coeffs)
	if err != nil {
		return nil, errors.WithMessage(err, "residual")
	}

	res := &Approximation{
		Eigenvalues:  eigs,
		Coefficients: coeffs,
		Error:        residual,
	}
	o.logger.V(logging.DEBUG).Info("fitted exponential sum",
		"alpha", alpha, "sites", nSites, "components", nApprox, "maxError", res.MaxAbsError(1))
	return res, nil
}

// At evaluates the approximation at site x.
func (a *Approximation) At(x float64) float64 {
	return evaluate(a.Eigenvalues, a.Coefficients, x)
}

// AtSites evaluates the approximation at every site in xs.
func (a *Approximation) AtSites(xs []float64) []float64 {
	return signal.Map(xs, a.At)
}

// MaxAbsError returns max |Error[i]| over i >= from, 0 if there is no such i.
// Use from = 1 to skip the singular site 0 of PolyDecay.
func (a *Approximation) MaxAbsError(from int) float64 {
	if from < 0 {
		from = 0
	}
	var res float64
	for index := from; index < len(a.Error); index++ {
		res = math.Max(res, math.Abs(a.Error[index]))
	}
	return res
}

// RealEigenvalues returns the eigenvalues as real numbers, or
// ErrComplexEigenvalues if any has a non-zero imaginary part.
func (a *Approximation) RealEigenvalues() ([]float64, error) {
	res := make([]float64, len(a.Eigenvalues))
	for index, eig := range a.Eigenvalues {
		if imag(eig) != 0 {
			return nil, errors.Wrapf(ErrComplexEigenvalues, "eigenvalue %d is %v", index, eig)
		}
		res[index] = real(eig)
	}
	return res, nil
}
