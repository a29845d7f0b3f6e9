package gonumExtensions

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrFactorization is returned when a gonum factorization fails to converge.
var ErrFactorization = errors.New("gonumExtensions: factorization failed")

// Diagonal returns a square matrix with values on the main diagonal
func Diagonal(values []float64) *mat.Dense {
	n := len(values)
	res := mat.NewDense(n, n, nil)
	for index, value := range values {
		res.Set(index, index, value)
	}
	return res
}

// HasNaNOrInf checks if there are any NaN or Inf in matrix
func HasNaNOrInf(matrix mat.Matrix) bool {
	m, n := matrix.Dims()
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			if math.IsNaN(matrix.At(row, col)) || math.IsInf(matrix.At(row, col), 0) {
				return true
			}
		}
	}
	return false
}

// FiniteVec reports whether every entry of v is neither NaN nor Inf.
func FiniteVec(v []float64) bool {
	for _, value := range v {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}
	return true
}

// PseudoInverse computes the Moore-Penrose pseudo-inverse of a (m by n) through
// a thin singular value decomposition
//
// a^+ = V S^+ U^T
//
// where singular values s <= rcond * max(s) are treated as zero. The number of
// retained singular values is returned as the rank.
func PseudoInverse(a mat.Matrix, rcond float64) (*mat.Dense, int, error) {
	m, n := a.Dims()
	if rcond < 0 || math.IsNaN(rcond) {
		return nil, 0, errors.Errorf("gonumExtensions: invalid rcond %v", rcond)
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, 0, errors.Wrapf(ErrFactorization, "svd of %dx%d matrix", m, n)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	res := mat.NewDense(n, m, nil)
	if len(s) == 0 || s[0] == 0 {
		return res, 0, nil
	}

	// Values are sorted in decreasing order so the cutoff is relative to s[0].
	cutoff := rcond * s[0]
	rank := 0
	inv := make([]float64, len(s))
	for index, value := range s {
		if value > cutoff {
			inv[index] = 1 / value
			rank++
		}
	}

	// tmp = V S^+
	var tmp mat.Dense
	tmp.Mul(&v, Diagonal(inv))
	// res = V S^+ U^T
	res.Mul(&tmp, u.T())
	return res, rank, nil
}
