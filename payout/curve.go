package payout

import (
	"math"

	"github.com/ts4z/divvy/bisect"
)

// curve is the calibrated per-rank prize function
//
//	P(rank) = minCoins + (prize1 - minCoins) / rank^alpha
//
// Rank 1 gets prize1 no matter what alpha is; alpha only controls how fast
// the rest fall toward the floor.
type curve struct {
	prize1   int64
	minCoins int64
	alpha    float64
}

// at evaluates the curve at a 1-based rank.
func (c curve) at(rank int) float64 {
	return float64(c.minCoins) + float64(c.prize1-c.minCoins)/math.Pow(float64(rank), c.alpha)
}

// curveTotal sums the curve over every individual rank.  This is what
// calibration drives to the pool.
func curveTotal(winners int, prize1, minCoins int64, alpha float64) float64 {
	head := float64(prize1 - minCoins)
	total := float64(winners) * float64(minCoins)
	for i := 1; i <= winners; i++ {
		total += head / math.Pow(float64(i), alpha)
	}
	return total
}

// solveCurve finds the alpha that makes the per-rank curve spend the pool
// exactly.  The residual is monotone decreasing in alpha: alpha 0 pays
// everyone prize1, a huge alpha pays the floor to everyone but first.  So
// a sign change over [0, alphaMax] is both necessary and sufficient, and
// its absence means no decay rate can fit this pool under the fixed
// first-place anchor.
func solveCurve(winners int, totalCoins, prize1, minCoins int64) (curve, error) {
	f := func(alpha float64) float64 {
		return curveTotal(winners, prize1, minCoins, alpha) - float64(totalCoins)
	}
	alpha, err := bisect.Root(f, 0, alphaMax, alphaTolerance, alphaMaxIterations)
	if err != nil {
		return curve{}, Errorf(InsufficientPool, "no payout curve fits %d winners, pool %d, first place %d, minimum %d: %w",
			winners, totalCoins, prize1, minCoins, err)
	}
	return curve{prize1: prize1, minCoins: minCoins, alpha: alpha}, nil
}
