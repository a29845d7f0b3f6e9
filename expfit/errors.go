package expfit

import "github.com/pkg/errors"

var (
	// ErrInvalidParameter is returned before any matrix work when the decay
	// exponent, the number of sites or components, or the lengths of
	// eigenvalues and coefficients are unusable.
	ErrInvalidParameter = errors.New("expfit: invalid parameter")

	// ErrNumericalFailure is returned when a factorization does not converge
	// or produces a non-finite result.
	ErrNumericalFailure = errors.New("expfit: numerical failure")

	// ErrComplexEigenvalues is returned when a real valued view of the fitted
	// bases is requested but at least one of them is complex.
	ErrComplexEigenvalues = errors.New("expfit: complex eigenvalues")
)
