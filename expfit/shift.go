package expfit

import (
	"cmp"
	"fmt"
	"math/cmplx"
	"slices"

	"github.com/hammal/longrange/gonumExtensions"
	"github.com/hammal/longrange/logging"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ShiftEigenvalues returns the fitted exponential bases of a sample matrix.
//
// With sample = Q R (thin), Q1 = Q[0:m-1, :] and Q2 = Q[1:m, :] the shift operator
//
// L = Q1^+ Q2
//
// maps one lag onto the next. Its eigenvalues are returned in the order of
// SortEigenvalues. A rank deficient Q1 is truncated at the configured rcond
// and logged, it is not an error.
func ShiftEigenvalues(sample mat.Matrix, opts ...Option) ([]complex128, error) {
	o := gatherOptions(opts)
	m, n := sample.Dims()
	if m < 2 || m < n {
		return nil, errors.Wrapf(ErrInvalidParameter, "sample matrix %dx%d needs at least 2 and at least %d rows", m, n, n)
	}

	q, err := o.factorizer.Factorize(sample)
	if err != nil {
		return nil, err
	}
	if qm, qn := q.Dims(); qm != m || qn != n {
		return nil, errors.Wrapf(ErrNumericalFailure, "orthogonal factor is %dx%d, want %dx%d", qm, qn, m, n)
	}

	q1 := q.Slice(0, m-1, 0, n)
	q2 := q.Slice(1, m, 0, n)
	q1Inv, rank, err := gonumExtensions.PseudoInverse(q1, o.rcond)
	if err != nil {
		return nil, fmt.Errorf("%w: pseudo-inverse of Q1: %w", ErrNumericalFailure, err)
	}
	if rank < n {
		o.logger.Info("shift operator is ill-conditioned, truncating pseudo-inverse",
			"rank", rank, "components", n, "rcond", o.rcond)
	}

	// L = Q1^+ Q2
	var l mat.Dense
	l.Mul(q1Inv, q2)
	if gonumExtensions.HasNaNOrInf(&l) {
		return nil, errors.Wrap(ErrNumericalFailure, "shift operator is not finite")
	}

	eigs, err := o.eigen.Eigenvalues(&l)
	if err != nil {
		return nil, err
	}
	if len(eigs) != n {
		return nil, errors.Wrapf(ErrNumericalFailure, "got %d eigenvalues for %d components", len(eigs), n)
	}
	for _, eig := range eigs {
		if cmplx.IsNaN(eig) || cmplx.IsInf(eig) {
			return nil, errors.Wrapf(ErrNumericalFailure, "eigenvalue %v is not finite", eig)
		}
	}
	SortEigenvalues(eigs)
	o.logger.V(logging.TRACE).Info("shift operator eigenvalues", "eigenvalues", eigs)
	return eigs, nil
}

// SortEigenvalues sorts eigs in place, ascending by real part then imaginary
// part, and reverses the result. This is not an ordering by magnitude: -0.9
// comes after 0.1.
func SortEigenvalues(eigs []complex128) {
	slices.SortFunc(eigs, func(a, b complex128) int {
		if c := cmp.Compare(real(a), real(b)); c != 0 {
			return c
		}
		return cmp.Compare(imag(a), imag(b))
	})
	slices.Reverse(eigs)
}
