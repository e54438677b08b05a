package payout

// Package payout splits a prize pool over ranked winners.  Given a field
// size, a pool of indivisible coins, and a per-winner minimum, it plans a
// short sequence of rank ranges ("buckets"), prices each one off a
// calibrated decay curve, and squares the rounding error away so the table
// pays out the pool exactly.

import (
	"github.com/ts4z/divvy/nice"
)

// Tunables.  These are the whole personality of the table; everything else
// is bookkeeping.
const (
	// FirstPlaceShare is the fraction of the pool promised to first place,
	// before nice-rounding.
	FirstPlaceShare = 0.22
	// GrowthRatio is how fast bucket widths grow once the podium is paid.
	GrowthRatio = 2.5
	// MinWinners is the smallest field Compute accepts.  The planner
	// degenerates to one bucket per rank at or below it.
	MinWinners = 4

	// Curve calibration bounds.  The decay exponent lives in
	// [0, alphaMax]; the bracket halves until it is narrower than
	// alphaTolerance, and alphaMaxIterations is the hard stop.
	alphaMax           = 64.0
	alphaTolerance     = 1e-9
	alphaMaxIterations = 200

	// maxReconcilePasses bounds how many rounds of nudging the engine will
	// try before declaring the leftover unmovable.
	maxReconcilePasses = 50
)

// Bucket is a contiguous run of ranks that all win the same amount.
type Bucket struct {
	From  int   // first rank covered (1-based, inclusive)
	To    int   // last rank covered (inclusive)
	Coins int64 // per-winner award
}

// Width is how many ranks the bucket covers.
func (b Bucket) Width() int {
	return b.To - b.From + 1
}

// Distribution is the finished payout table, best rank first.
type Distribution []Bucket

// Total is the aggregate paid over all buckets.
func (d Distribution) Total() int64 {
	total := int64(0)
	for _, b := range d {
		total += b.Coins * int64(b.Width())
	}
	return total
}

func (d Distribution) Clone() Distribution {
	clone := make(Distribution, len(d))
	copy(clone, d)
	return clone
}

// Compute produces the payout table for a field of winners paid from
// totalCoins, every winner getting at least minCoins.  The result covers
// ranks 1..winners exactly once, awards never increase with rank, and the
// aggregate equals totalCoins to the coin.  Identical inputs always produce
// the identical table.
func Compute(winners int, totalCoins, minCoins int64) (Distribution, error) {
	if winners < MinWinners {
		return nil, Errorf(InvalidWinnerCount, "need at least %d winners, got %d", MinWinners, winners)
	}
	if totalCoins <= 0 {
		return nil, Errorf(InvalidAmount, "pool must be positive, got %d", totalCoins)
	}
	if minCoins <= 0 {
		return nil, Errorf(InvalidAmount, "per-winner minimum must be positive, got %d", minCoins)
	}
	if totalCoins <= int64(winners)*minCoins {
		return nil, Errorf(InsufficientPool, "pool of %d cannot pay %d winners at least %d each", totalCoins, winners, minCoins)
	}

	prize1 := nicePrize1(totalCoins)
	if prize1 <= minCoins {
		return nil, Errorf(InsufficientPool, "first place would get %d, under the per-winner minimum %d", prize1, minCoins)
	}

	c, err := solveCurve(winners, totalCoins, prize1, minCoins)
	if err != nil {
		return nil, err
	}

	sizes := bucketSizes(winners, bucketCount(winners))
	prices, err := reconcile(sizes, c, totalCoins, minCoins)
	if err != nil && len(sizes) < winners {
		// A coarse plan can strand a leftover its wide buckets only move
		// in whole-width steps.  One bucket per rank can always place
		// single coins, so replan before giving up.
		sizes = bucketSizes(winners, winners)
		prices, err = reconcile(sizes, c, totalCoins, minCoins)
	}
	if err != nil {
		return nil, err
	}

	d := assemble(sizes, prices)
	if err := d.validate(winners, totalCoins, minCoins); err != nil {
		return nil, err
	}
	return d, nil
}

// nicePrize1 is the rank-1 award: the first-place share of the pool,
// rounded down to a nice number.  It is fixed before the curve is
// calibrated; the curve bends underneath it.
func nicePrize1(totalCoins int64) int64 {
	return nice.Floor(int64(FirstPlaceShare * float64(totalCoins)))
}

// reconcile prices the buckets off the curve and nudges them until the
// paid total equals the pool exactly.  The pass cap turns a stuck table
// into an error instead of a spin.
func reconcile(sizes []int, c curve, totalCoins, minCoins int64) ([]int64, error) {
	prices := priceBuckets(sizes, c, minCoins)
	for pass := 0; ; pass++ {
		gap := totalCoins - paidTotal(prices, sizes)
		if gap == 0 {
			return prices, nil
		}
		if pass >= maxReconcilePasses {
			return nil, Errorf(ReconciliationFailure, "%d coins still unreconciled after %d passes", gap, pass)
		}
		if reconcilePass(prices, sizes, gap, minCoins) == 0 {
			return nil, Errorf(ReconciliationFailure, "cannot move leftover of %d coins without breaking the table", gap)
		}
	}
}

func assemble(sizes []int, prices []int64) Distribution {
	d := make(Distribution, len(sizes))
	from := 1
	for i, width := range sizes {
		d[i] = Bucket{From: from, To: from + width - 1, Coins: prices[i]}
		from += width
	}
	return d
}

// validate re-checks every published invariant before a table leaves the
// package.  Any violation here is a defect in the stages above, so it
// reports as a reconciliation failure rather than bad input.
func (d Distribution) validate(winners int, totalCoins, minCoins int64) error {
	if len(d) == 0 {
		return Errorf(ReconciliationFailure, "empty distribution for %d winners", winners)
	}
	if d[0].From != 1 {
		return Errorf(ReconciliationFailure, "first bucket starts at rank %d, want 1", d[0].From)
	}
	if d[len(d)-1].To != winners {
		return Errorf(ReconciliationFailure, "last bucket ends at rank %d, want %d", d[len(d)-1].To, winners)
	}
	for i, b := range d {
		if b.To < b.From {
			return Errorf(ReconciliationFailure, "bucket %d spans %d..%d", i+1, b.From, b.To)
		}
		if b.Coins < minCoins {
			return Errorf(ReconciliationFailure, "bucket %d pays %d, under the minimum %d", i+1, b.Coins, minCoins)
		}
		if i > 0 {
			if b.From != d[i-1].To+1 {
				return Errorf(ReconciliationFailure, "bucket %d starts at rank %d, want %d", i+1, b.From, d[i-1].To+1)
			}
			if b.Coins > d[i-1].Coins {
				return Errorf(ReconciliationFailure, "bucket %d pays %d, more than the bucket above it (%d)", i+1, b.Coins, d[i-1].Coins)
			}
		}
	}
	if got := d.Total(); got != totalCoins {
		return Errorf(ReconciliationFailure, "table pays %d, want exactly %d", got, totalCoins)
	}
	return nil
}
