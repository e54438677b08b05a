// Package bisect finds roots the slow, reliable way.
package bisect

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBracket means f(lo) and f(hi) are on the same side of zero, so
	// there is nothing to bisect.
	ErrBracket = errors.New("bisect: interval does not bracket a root")
	// ErrIterations means the bracket never narrowed below tolerance in
	// the allotted iterations.
	ErrIterations = errors.New("bisect: no convergence within iteration limit")
)

// Root finds x in [lo, hi] where f crosses zero.  f(lo) and f(hi) must have
// opposite signs (an endpoint that is exactly zero is returned as-is).  The
// search stops when |f(mid)| or the half-width of the bracket falls below
// tolerance; maxIterations is a hard stop so a misbehaving f surfaces as an
// error instead of a hang.
func Root(f func(float64) float64, lo, hi, tolerance float64, maxIterations int) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", ErrBracket, lo, flo, hi, fhi)
	}

	for i := 0; i < maxIterations; i++ {
		mid := lo + (hi-lo)/2
		fmid := f(mid)
		if math.Abs(fmid) < tolerance || (hi-lo)/2 < tolerance {
			return mid, nil
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0, fmt.Errorf("%w (%d iterations, bracket [%g, %g])", ErrIterations, maxIterations, lo, hi)
}
