package nice

// Package nice knows which numbers look good on a payout screen.  Small
// awards can land on any integer; bigger awards snap to coarser steps so
// the table reads at a glance.

import (
	"sort"
)

// Step-rule boundaries.  Below each boundary the listed step applies:
// 1..9 every integer, 10..99 fives, 100..249 twenty-fives, 250 and up
// fifties.
const (
	fivesFrom       = 10
	twentyFivesFrom = 100
	fiftiesFrom     = 250
)

// IsNice reports whether n sits on the step rule.
func IsNice(n int64) bool {
	switch {
	case n <= 0:
		return false
	case n < fivesFrom:
		return true
	case n < twentyFivesFrom:
		return n%5 == 0
	case n < fiftiesFrom:
		return n%25 == 0
	default:
		return n%50 == 0
	}
}

// Numbers returns every nice value in [1, max], ascending.  It walks the
// step rule directly rather than testing every integer.
func Numbers(max int64) []int64 {
	var out []int64
	for n := int64(1); n < fivesFrom && n <= max; n++ {
		out = append(out, n)
	}
	for n := int64(fivesFrom); n < twentyFivesFrom && n <= max; n += 5 {
		out = append(out, n)
	}
	for n := int64(twentyFivesFrom); n < fiftiesFrom && n <= max; n += 25 {
		out = append(out, n)
	}
	for n := int64(fiftiesFrom); n <= max; n += 50 {
		out = append(out, n)
	}
	return out
}

// RoundDown returns the largest table entry that is at most value.  An
// empty table rounds everything to zero; a value beyond the table clamps
// to the table's maximum.  Rounding down is the point: never promise more
// than the pool can cover.
func RoundDown(value int64, table []int64) int64 {
	if len(table) == 0 {
		return 0
	}
	i := sort.Search(len(table), func(i int) bool { return table[i] > value })
	if i == 0 {
		return 0
	}
	return table[i-1]
}

// Floor is RoundDown against the whole step rule, no table required.
func Floor(value int64) int64 {
	switch {
	case value <= 0:
		return 0
	case value < fivesFrom:
		return value
	case value < twentyFivesFrom:
		return value - value%5
	case value < fiftiesFrom:
		return value - value%25
	default:
		return value - value%50
	}
}

// Ceil returns the smallest nice value that is at least value.
func Ceil(value int64) int64 {
	if value <= 1 {
		return 1
	}
	if IsNice(value) {
		return value
	}
	// not nice, so value is at least 10 here
	switch {
	case value < twentyFivesFrom:
		return value + 5 - value%5
	case value < fiftiesFrom:
		return value + 25 - value%25
	default:
		return value + 50 - value%50
	}
}
