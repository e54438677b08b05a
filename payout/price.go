package payout

import (
	"sort"

	"github.com/ts4z/divvy/nice"
)

// priceBuckets samples the curve at each bucket's first rank (the best
// rank in the span, since everyone in a bucket wins the same amount) and
// rounds the sample down to a nice number, keeping prices non-increasing
// and at least the floor.
func priceBuckets(sizes []int, c curve, minCoins int64) []int64 {
	prices := make([]int64, len(sizes))
	rank := 1
	for i, width := range sizes {
		p := nice.Floor(int64(c.at(rank)))
		if i > 0 && p > prices[i-1] {
			p = prices[i-1]
		}
		if p < minCoins {
			p = minCoins
		}
		prices[i] = p
		rank += width
	}
	return prices
}

// paidTotal is the aggregate the current prices commit to.
func paidTotal(prices []int64, sizes []int) int64 {
	total := int64(0)
	for i, p := range prices {
		total += p * int64(sizes[i])
	}
	return total
}

// reconcilePass moves coins toward closing the gap between the pool and
// the committed total, and reports how many it moved.  A positive gap
// means rounding down left coins on the table; a negative gap means the
// wide buckets were priced off their best rank and overcommit.  When the
// bulk mover cannot place anything, settle takes over with single-coin
// moves.  No single step ever moves more than the remaining gap, so the
// engine's pass loop cannot oscillate.
func reconcilePass(prices []int64, sizes []int, gap int64, minCoins int64) int64 {
	if gap > 0 {
		if moved := topUp(prices, sizes, gap); moved != 0 {
			return moved
		}
		return settle(prices, sizes, gap, minCoins)
	}
	return shave(prices, sizes, -gap, minCoins)
}

// topUp hands out coins the rounding left behind.  A gap big enough to
// give the widest bucket a raise goes to the wide cheap buckets first, so
// the fewest distinct awards change; each stays strictly below the bucket
// above it.  Whatever remains trickles into the narrow buckets just under
// first place, capped at the next nice number up and at the award above.
// First place itself is anchored and never moves.
func topUp(prices []int64, sizes []int, gap int64) int64 {
	moved := int64(0)

	widest := 0
	for _, w := range sizes {
		widest = max(widest, w)
	}
	if gap >= int64(widest) {
		for _, b := range byWidthDesc(sizes) {
			if b == 0 {
				continue
			}
			width := int64(sizes[b])
			room := prices[b-1] - prices[b] - 1
			if room <= 0 {
				continue
			}
			delta := min(room, (gap-moved)/width)
			if delta <= 0 {
				continue
			}
			prices[b] += delta
			moved += delta * width
		}
	}

	for b := 1; b < len(prices) && b <= podium && moved < gap; b++ {
		width := int64(sizes[b])
		ceiling := min(nice.Ceil(prices[b]+1), prices[b-1])
		room := ceiling - prices[b]
		if room <= 0 {
			continue
		}
		delta := min(room, (gap-moved)/width)
		if delta <= 0 {
			continue
		}
		prices[b] += delta
		moved += delta * width
	}
	return moved
}

// shave takes overcommitted coins back, cheap seats first.  Walking from
// the bottom up lets each bucket fall toward the (possibly just lowered)
// price below it, so equal-price runs unlock from the tail.  Nothing drops
// below minCoins, the ordering never inverts, and first place is anchored
// here too.
func shave(prices []int64, sizes []int, over int64, minCoins int64) int64 {
	moved := int64(0)
	for b := len(prices) - 1; b >= 1 && moved < over; b-- {
		width := int64(sizes[b])
		floor := minCoins
		if b < len(prices)-1 {
			floor = max(floor, prices[b+1])
		}
		room := prices[b] - floor
		if room <= 0 {
			continue
		}
		delta := min(room, (over-moved)/width)
		if delta <= 0 {
			continue
		}
		prices[b] -= delta
		moved += delta * width
	}
	return moved
}

// settle makes the single-coin moves the bulk passes will not.  First it
// raises one narrow-enough bucket a single unit toward the award above it,
// equality allowed.  When every such bucket is pinned it trades instead:
// raise a wide bucket one unit and hand the overshoot back from the
// single-rank buckets above it, so a leftover smaller than the bucket's
// width still lands.  First place stays anchored throughout.
func settle(prices []int64, sizes []int, gap, minCoins int64) int64 {
	for b := 1; b < len(prices); b++ {
		if int64(sizes[b]) > gap || prices[b] >= prices[b-1] {
			continue
		}
		prices[b]++
		return int64(sizes[b])
	}

	for b := 1; b < len(prices); b++ {
		width := int64(sizes[b])
		if width <= gap || prices[b] >= prices[b-1] {
			continue
		}
		trial := make([]int64, len(prices))
		copy(trial, prices)
		trial[b]++
		if giveBack(trial, sizes, b, width-gap, minCoins) {
			copy(prices, trial)
			return gap
		}
	}
	return 0
}

// giveBack sheds exactly over coins from the single-rank buckets above b,
// nearest first, each falling no lower than the (possibly just raised)
// award below it.  Reports whether the full amount came off.
func giveBack(prices []int64, sizes []int, b int, over, minCoins int64) bool {
	for j := b - 1; j >= 1 && over > 0; j-- {
		if sizes[j] != 1 {
			continue
		}
		floor := max(minCoins, prices[j+1])
		take := min(prices[j]-floor, over)
		if take > 0 {
			prices[j] -= take
			over -= take
		}
	}
	return over == 0
}

// byWidthDesc returns bucket indexes ordered widest first; ties go to the
// lower bucket, so deep-field awards move before podium ones.
func byWidthDesc(sizes []int) []int {
	idx := make([]int, len(sizes))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if sizes[ia] != sizes[ib] {
			return sizes[ia] > sizes[ib]
		}
		return ia > ib
	})
	return idx
}
