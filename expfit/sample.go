package expfit

import (
	"fmt"

	"github.com/hammal/longrange/gonumExtensions"
	"github.com/hammal/longrange/signal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// validate checks the fit parameters. The thin QR of the sample matrix needs at
// least as many rows (nSites - nApprox + 1) as columns (nApprox), and the shift
// operator needs at least two rows.
func validate(fn signal.DecayFunction, alpha float64, nSites, nApprox int) error {
	if fn == nil {
		return errors.Wrap(ErrInvalidParameter, "decay function is nil")
	}
	return ValidateParameters(alpha, nSites, nApprox)
}

// ValidateParameters checks alpha, nSites and nApprox the way LongRangeCoeffs
// does, without a decay function.
func ValidateParameters(alpha float64, nSites, nApprox int) error {
	if err := signal.ValidateExponent(alpha); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if nApprox < 1 {
		return errors.Wrapf(ErrInvalidParameter, "number of components %d < 1", nApprox)
	}
	if nSites <= nApprox {
		return errors.Wrapf(ErrInvalidParameter, "number of sites %d must exceed number of components %d", nSites, nApprox)
	}
	if rows := nSites - nApprox + 1; rows < nApprox {
		return errors.Wrapf(ErrInvalidParameter, "%d sites give %d lags for %d components, need at least %d sites",
			nSites, rows, nApprox, 2*nApprox-1)
	}
	return nil
}

// NewSampleMatrix returns the (nSites - nApprox + 1 by nApprox) matrix
//
// S[i, j] = fn(alpha, j + 1 + i)
//
// so that row i is the window of nApprox samples starting at lag i + 1.
func NewSampleMatrix(fn signal.DecayFunction, alpha float64, nSites, nApprox int) (*mat.Dense, error) {
	if err := validate(fn, alpha, nSites, nApprox); err != nil {
		return nil, err
	}
	rows := nSites - nApprox + 1
	res := mat.NewDense(rows, nApprox, nil)
	for row := 0; row < rows; row++ {
		for col := 0; col < nApprox; col++ {
			res.Set(row, col, fn(alpha, float64(col+1+row)))
		}
	}
	if gonumExtensions.HasNaNOrInf(res) {
		return nil, errors.Wrapf(ErrInvalidParameter, "decay function is not finite on sites 1..%d", nSites)
	}
	return res, nil
}
