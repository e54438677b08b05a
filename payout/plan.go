package payout

import (
	"math"
)

// The top three ranks always stand alone.  Everything below the podium is
// grouped into buckets whose widths grow geometrically, so a big field
// still fits on one screen.
const podium = 3

// bucketCount decides how many buckets a field of the given size gets.
// Fields at or below MinWinners pay per rank.  Above that, the count is
// the largest number of baseline buckets that fit inside the field, which
// grows roughly logarithmically: ten times the winners is two or three
// more buckets, not ten times the table.
func bucketCount(winners int) int {
	if winners <= MinWinners {
		return winners
	}
	count := podium
	covered := podium
	width := 1
	for {
		width = nextWidth(width)
		if covered+width > winners {
			break
		}
		covered += width
		count++
	}
	return max(count, MinWinners)
}

// nextWidth grows a bucket width by GrowthRatio, rounded to the nearest
// rank.
func nextWidth(width int) int {
	return int(math.Round(float64(width) * GrowthRatio))
}

// baselineSizes is the ideal width sequence for count buckets: the podium
// singles, then geometric growth off the previous width.
func baselineSizes(count int) []int {
	sizes := make([]int, 0, count)
	for i := 0; i < count && i < podium; i++ {
		sizes = append(sizes, 1)
	}
	width := 1
	for i := podium; i < count; i++ {
		width = nextWidth(width)
		sizes = append(sizes, width)
	}
	return sizes
}

// bucketSizes spreads winners ranks over count buckets, summing exactly to
// winners.  Fields under MinWinners get no plan at all.  The baseline
// widths rarely land exactly, so the tail is squared up: a shortfall
// stretches the last bucket, an overshoot is taken back from the tail
// without ever emptying a bucket or touching the podium singles.
func bucketSizes(winners, count int) []int {
	if winners < MinWinners {
		return nil
	}
	// out-of-band counts are clamped to something satisfiable
	count = max(count, MinWinners)
	count = min(count, winners)

	sizes := baselineSizes(count)
	total := 0
	for _, w := range sizes {
		total += w
	}

	if total < winners {
		sizes[len(sizes)-1] += winners - total
		return sizes
	}

	excess := total - winners
	for i := len(sizes) - 1; i >= podium && excess > 0; i-- {
		give := min(excess, sizes[i]-1)
		sizes[i] -= give
		excess -= give
	}
	return sizes
}
