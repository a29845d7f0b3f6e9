package signal

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidExponent is returned for a decay exponent that is not a finite,
// strictly positive number.
var ErrInvalidExponent = errors.New("signal: decay exponent must be finite and > 0")

// DecayFunction is a real valued function of a decay parameter alpha and a site
// x. The exponential sum fit samples it at integer sites.
type DecayFunction func(alpha, x float64) float64

// PolyDecay is the polynomial decay
//
// f(x) = x^(-alpha)
//
// as used for long range couplings 1/r^alpha. PolyDecay(alpha, 0) is +Inf for
// alpha > 0.
func PolyDecay(alpha, x float64) float64 {
	return math.Pow(x, -alpha)
}

// ValidateExponent checks that alpha is a usable decay exponent.
func ValidateExponent(alpha float64) error {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return errors.Wrapf(ErrInvalidExponent, "alpha = %v", alpha)
	}
	return nil
}

// Sample evaluates fn at every site for the given alpha.
func Sample(fn DecayFunction, alpha float64, sites []float64) []float64 {
	return Map(sites, func(x float64) float64 { return fn(alpha, x) })
}
