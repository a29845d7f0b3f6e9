package expfit

import (
	"fmt"

	"github.com/hammal/longrange/gonumExtensions"
	"github.com/hammal/longrange/signal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// FitCoefficients solves the least squares problem
//
// min_c || L c - f ||_2,  L[i, k] = Re(eigs[k]^(i+1)),  f[i] = fn(alpha, i+1)
//
// over the sites i = 0, ..., nSites-1. Rank deficient L yields the minimum norm
// solution.
func FitCoefficients(eigs []complex128, fn signal.DecayFunction, alpha float64, nSites int, opts ...Option) ([]float64, error) {
	if len(eigs) == 0 {
		return nil, errors.Wrap(ErrInvalidParameter, "no eigenvalues")
	}
	if fn == nil {
		return nil, errors.Wrap(ErrInvalidParameter, "decay function is nil")
	}
	if err := signal.ValidateExponent(alpha); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if nSites < len(eigs) {
		return nil, errors.Wrapf(ErrInvalidParameter, "%d sites for %d components", nSites, len(eigs))
	}
	o := gatherOptions(opts)

	n := len(eigs)
	lmat := mat.NewDense(nSites, n, nil)
	fvec := make([]float64, nSites)
	for row := 0; row < nSites; row++ {
		site := float64(row + 1)
		for col, eig := range eigs {
			lmat.Set(row, col, power(eig, site))
		}
		fvec[row] = fn(alpha, site)
	}
	if gonumExtensions.HasNaNOrInf(lmat) {
		return nil, errors.Wrap(ErrNumericalFailure, "design matrix is not finite")
	}
	if !gonumExtensions.FiniteVec(fvec) {
		return nil, errors.Wrapf(ErrInvalidParameter, "decay function is not finite on sites 1..%d", nSites)
	}

	coeffs, err := o.lstsq.Solve(lmat, fvec)
	if err != nil {
		return nil, err
	}
	if len(coeffs) != n {
		return nil, errors.Wrapf(ErrNumericalFailure, "got %d coefficients for %d components", len(coeffs), n)
	}
	if !gonumExtensions.FiniteVec(coeffs) {
		return nil, errors.Wrap(ErrNumericalFailure, "coefficients are not finite")
	}
	return coeffs, nil
}
