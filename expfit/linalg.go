package expfit

import (
	"fmt"

	"github.com/hammal/longrange/gonumExtensions"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// OrthogonalFactorizer returns the thin orthogonal factor Q of a = Q R, a
// (m by n) matrix with orthonormal columns, m >= n.
type OrthogonalFactorizer interface {
	Factorize(a mat.Matrix) (*mat.Dense, error)
}

// EigenDecomposer returns the eigenvalues of a square matrix in no particular
// order.
type EigenDecomposer interface {
	Eigenvalues(a mat.Matrix) ([]complex128, error)
}

// LeastSquaresSolver minimises ||a x - b||_2 over x. For a rank deficient a it
// returns the minimum norm solution.
type LeastSquaresSolver interface {
	Solve(a mat.Matrix, b []float64) ([]float64, error)
}

// HouseholderQR is the OrthogonalFactorizer backed by LAPACK's Householder QR
// (Geqrf followed by Orgqr). The full m by m factor is never formed.
type HouseholderQR struct{}

// Factorize returns the thin factor Q, the first n columns of the full Q.
func (HouseholderQR) Factorize(a mat.Matrix) (*mat.Dense, error) {
	m, n := a.Dims()
	if n == 0 || m < n {
		return nil, errors.Wrapf(ErrInvalidParameter, "thin QR of %dx%d matrix needs rows >= cols > 0", m, n)
	}
	q := mat.DenseCopyOf(a)
	raw := q.RawMatrix()
	tau := make([]float64, n)

	// Workspace queries first, lwork = -1 returns the optimal size in work[0].
	work := make([]float64, 1)
	lapack64.Geqrf(raw, tau, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Geqrf(raw, tau, work, len(work))

	work = work[:1]
	lapack64.Orgqr(raw, tau, work, -1)
	if size := int(work[0]); size > cap(work) {
		work = make([]float64, size)
	} else {
		work = work[:cap(work)]
	}
	// Overwrites the reflectors stored in q with the explicit thin factor.
	lapack64.Orgqr(raw, tau, work, len(work))
	return q, nil
}

// GeneralEigen is the EigenDecomposer backed by gonum's non-symmetric Eigen.
type GeneralEigen struct{}

// Eigenvalues of a, complex conjugate pairs included.
func (GeneralEigen) Eigenvalues(a mat.Matrix) ([]complex128, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		r, c := a.Dims()
		return nil, errors.Wrapf(ErrNumericalFailure, "eigen decomposition of %dx%d matrix did not converge", r, c)
	}
	return eig.Values(nil), nil
}

// SVDLeastSquares is the LeastSquaresSolver based on the pseudo-inverse. Singular
// values at or below RCond times the largest one are treated as zero.
type SVDLeastSquares struct {
	RCond float64
}

// Solve returns a^+ b
func (s SVDLeastSquares) Solve(a mat.Matrix, b []float64) ([]float64, error) {
	m, n := a.Dims()
	if m == 0 || n == 0 {
		return nil, errors.Wrap(ErrInvalidParameter, "least squares of an empty matrix")
	}
	if len(b) != m {
		return nil, errors.Wrapf(ErrInvalidParameter, "right hand side has %d entries, matrix has %d rows", len(b), m)
	}
	pinv, _, err := gonumExtensions.PseudoInverse(a, s.RCond)
	if err != nil {
		return nil, fmt.Errorf("%w: least squares: %w", ErrNumericalFailure, err)
	}
	res := make([]float64, n)
	x := mat.NewVecDense(n, res)
	// x = a^+ b
	x.MulVec(pinv, mat.NewVecDense(m, b))
	return res, nil
}
