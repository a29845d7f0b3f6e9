package expfit

import (
	"math"

	"github.com/go-logr/logr"
)

const (
	// DefaultRCond is the relative singular value cutoff of the pseudo-inverse
	// of Q1 in the shift operator.
	DefaultRCond = 1e-15

	// DefaultLstsqRCond is the relative singular value cutoff of the
	// coefficient least squares problem, the float64 machine epsilon.
	DefaultLstsqRCond = 0x1p-52
)

// Option configures a fit. Options are applied in order, later ones win.
type Option func(*options)

type options struct {
	rcond      float64
	lstsqRCond float64
	logger     logr.Logger
	factorizer OrthogonalFactorizer
	eigen      EigenDecomposer
	lstsq      LeastSquaresSolver
}

// WithRCond sets the pseudo-inverse cutoff used for the shift operator.
// Singular values of Q1 at or below rcond times the largest are discarded.
// It panics if rcond is negative or NaN.
func WithRCond(rcond float64) Option {
	if rcond < 0 || math.IsNaN(rcond) {
		panic("expfit: WithRCond: rcond must be >= 0")
	}
	return func(o *options) { o.rcond = rcond }
}

// WithLstsqRCond sets the cutoff of the default least squares solver. It has
// no effect together with WithLeastSquaresSolver.
// It panics if rcond is negative or NaN.
func WithLstsqRCond(rcond float64) Option {
	if rcond < 0 || math.IsNaN(rcond) {
		panic("expfit: WithLstsqRCond: rcond must be >= 0")
	}
	return func(o *options) { o.lstsqRCond = rcond }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithFactorizer replaces the thin QR factorization.
func WithFactorizer(f OrthogonalFactorizer) Option {
	return func(o *options) { o.factorizer = f }
}

// WithEigenDecomposer replaces the eigenvalue solver of the shift operator.
func WithEigenDecomposer(e EigenDecomposer) Option {
	return func(o *options) { o.eigen = e }
}

// WithLeastSquaresSolver replaces the coefficient least squares solver.
func WithLeastSquaresSolver(s LeastSquaresSolver) Option {
	return func(o *options) { o.lstsq = s }
}

func gatherOptions(opts []Option) options {
	o := options{
		rcond:      DefaultRCond,
		lstsqRCond: DefaultLstsqRCond,
		logger:     logr.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.factorizer == nil {
		o.factorizer = HouseholderQR{}
	}
	if o.eigen == nil {
		o.eigen = GeneralEigen{}
	}
	if o.lstsq == nil {
		o.lstsq = SVDLeastSquares{RCond: o.lstsqRCond}
	}
	return o
}
