// Package signal holds the real valued functions of a lattice distance that
// are approximated by sums of exponentials, together with helpers for
// evaluating them on a single site or on a sequence of sites.
package signal

// Sites is either a single site or an ordered sequence of sites. Every
// function in this package that accepts Sites evaluates element wise, so a
// scalar and a one element slice give the same value.
type Sites interface {
	float64 | []float64
}

// Map applies fn to every site in x and returns a value of the same shape.
func Map[S Sites](x S, fn func(float64) float64) S {
	switch v := any(x).(type) {
	case float64:
		return any(fn(v)).(S)
	case []float64:
		res := make([]float64, len(v))
		for index, site := range v {
			res[index] = fn(site)
		}
		return any(res).(S)
	}
	// Sites only admits the two cases above.
	panic("signal: unsupported site type")
}

// Range returns the n consecutive sites from, from+1, ..., from+n-1
func Range(from, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	res := make([]float64, n)
	for index := range res {
		res[index] = float64(from + index)
	}
	return res
}
