package payout

import (
	"reflect"
	"testing"
)

func TestPriceBuckets(t *testing.T) {
	// A hand-picked decay close to what 20/5000/50 calibrates to.
	c := curve{prize1: 1100, minCoins: 50, alpha: 0.955}
	sizes := []int{1, 1, 1, 3, 14}

	got := priceBuckets(sizes, c, 50)
	want := []int64{1100, 550, 400, 300, 200}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("priceBuckets() = %v, want %v", got, want)
	}
}

func TestPriceBucketsClampToFloor(t *testing.T) {
	// A steep curve drops under the floor well before the last bucket.
	c := curve{prize1: 1000, minCoins: 10, alpha: 8}
	sizes := []int{1, 1, 1, 3, 14}

	prices := priceBuckets(sizes, c, 10)
	if prices[0] != 1000 {
		t.Errorf("first price = %d, want 1000", prices[0])
	}
	for i, p := range prices {
		if p < 10 {
			t.Errorf("price %d = %d, under the floor", i, p)
		}
		if i > 0 && p > prices[i-1] {
			t.Errorf("price %d = %d > price %d = %d", i, p, i-1, prices[i-1])
		}
	}
}

func TestPaidTotal(t *testing.T) {
	prices := []int64{1100, 550, 400, 300, 200}
	sizes := []int{1, 1, 1, 3, 14}
	if got := paidTotal(prices, sizes); got != 5750 {
		t.Errorf("paidTotal() = %d, want 5750", got)
	}
}

func TestTopUpPrefersWideBuckets(t *testing.T) {
	prices := []int64{1000, 500, 400, 300, 200}
	sizes := []int{1, 1, 1, 3, 14}

	moved := topUp(prices, sizes, 140)
	if moved != 140 {
		t.Errorf("moved %d coins, want 140", moved)
	}
	want := []int64{1000, 500, 400, 300, 210}
	if !reflect.DeepEqual(prices, want) {
		t.Errorf("prices = %v, want %v", prices, want)
	}
}

func TestTopUpSmallGapGoesToTheRunnersUp(t *testing.T) {
	prices := []int64{1000, 500, 400, 300, 200}
	sizes := []int{1, 1, 1, 3, 14}

	moved := topUp(prices, sizes, 3)
	if moved != 3 {
		t.Errorf("moved %d coins, want 3", moved)
	}
	if prices[0] != 1000 {
		t.Errorf("first place moved to %d, should be anchored", prices[0])
	}
	if prices[1] != 503 {
		t.Errorf("second place = %d, want 503", prices[1])
	}
}

func TestShave(t *testing.T) {
	// The overshoot from pricing 20/5000/50 off the curve.
	prices := []int64{1100, 550, 400, 300, 200}
	sizes := []int{1, 1, 1, 3, 14}

	moved := shave(prices, sizes, 750, 50)
	if moved != 750 {
		t.Errorf("moved %d coins, want 750", moved)
	}
	want := []int64{1100, 550, 398, 298, 147}
	if !reflect.DeepEqual(prices, want) {
		t.Errorf("prices = %v, want %v", prices, want)
	}
}

func TestShaveStopsAtTheFloor(t *testing.T) {
	prices := []int64{100, 60, 60}
	sizes := []int{1, 2, 3}

	moved := shave(prices, sizes, 1000, 50)
	if moved != 50 {
		t.Errorf("moved %d coins, want 50", moved)
	}
	want := []int64{100, 50, 50}
	if !reflect.DeepEqual(prices, want) {
		t.Errorf("prices = %v, want %v", prices, want)
	}
}

func TestSettleRaisesAPinnedBucket(t *testing.T) {
	// Everything below the drop is pinned to the award above it, so the
	// bulk passes sit still; settle lifts the first bucket with headroom.
	prices := []int64{9, 9, 9, 9, 2, 2}
	sizes := []int{1, 1, 1, 1, 1, 1}

	moved := settle(prices, sizes, 1, 1)
	if moved != 1 {
		t.Errorf("moved %d coins, want 1", moved)
	}
	want := []int64{9, 9, 9, 9, 3, 2}
	if !reflect.DeepEqual(prices, want) {
		t.Errorf("prices = %v, want %v", prices, want)
	}
}

func TestSettleTradesWithTheRunnersUp(t *testing.T) {
	// One coin left and only the two-seat bucket can take it: raising it
	// overspends by one, which third place hands back.
	prices := []int64{25, 25, 25, 22}
	sizes := []int{1, 1, 1, 2}

	moved := settle(prices, sizes, 1, 1)
	if moved != 1 {
		t.Errorf("moved %d coins, want 1", moved)
	}
	want := []int64{25, 25, 24, 23}
	if !reflect.DeepEqual(prices, want) {
		t.Errorf("prices = %v, want %v", prices, want)
	}
}

func TestSettleRefusesToBreakTheTable(t *testing.T) {
	// Nothing above the two-seat bucket has a coin to give back, so the
	// trade is off and the caller sees an honest zero.
	prices := []int64{3, 3, 3, 2}
	sizes := []int{1, 1, 1, 2}

	if moved := settle(prices, sizes, 1, 1); moved != 0 {
		t.Errorf("moved %d coins, want 0", moved)
	}
	want := []int64{3, 3, 3, 2}
	if !reflect.DeepEqual(prices, want) {
		t.Errorf("prices = %v, want %v (settle must not leave half a trade)", prices, want)
	}
}

func TestByWidthDesc(t *testing.T) {
	got := byWidthDesc([]int{1, 1, 1, 3, 14, 3})
	want := []int{4, 5, 3, 2, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("byWidthDesc() = %v, want %v", got, want)
	}
}
