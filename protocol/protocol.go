// package protocol defines the JSON shape divvy emits for scripts.
package protocol

import (
	"encoding/json"

	"github.com/ts4z/divvy/payout"
)

const (
	// Version indicates an incompatible change to the emitted JSON.  A
	// consumer that sees a bigger number than it was written against should
	// stop and complain rather than guess.
	Version = 1
)

// Record is one rank range and its per-winner award.
type Record struct {
	From  int   `json:"from"`
	To    int   `json:"to"`
	Coins int64 `json:"coins"`
}

// Table is a whole payout as it goes over the wire, wrapped with the inputs
// that produced it so a consumer can tell what it is looking at.
type Table struct {
	Version    int      `json:"version"`
	Winners    int      `json:"winners"`
	TotalCoins int64    `json:"totalCoins"`
	MinCoins   int64    `json:"minCoins"`
	Buckets    []Record `json:"buckets"`
}

// Encode wraps a finished distribution for the wire.
func Encode(winners int, totalCoins, minCoins int64, d payout.Distribution) Table {
	buckets := make([]Record, len(d))
	for i, b := range d {
		buckets[i] = Record{From: b.From, To: b.To, Coins: b.Coins}
	}
	return Table{
		Version:    Version,
		Winners:    winners,
		TotalCoins: totalCoins,
		MinCoins:   minCoins,
		Buckets:    buckets,
	}
}

// Distribute computes a payout and encodes it in one step.
func Distribute(winners int, totalCoins, minCoins int64) (Table, error) {
	d, err := payout.Compute(winners, totalCoins, minCoins)
	if err != nil {
		return Table{}, err
	}
	return Encode(winners, totalCoins, minCoins, d), nil
}

// DistributeJSON computes a payout and returns it as JSON text.  This is the
// whole library in one call, for callers that just want the bytes.
func DistributeJSON(winners int, totalCoins, minCoins int64) ([]byte, error) {
	t, err := Distribute(winners, totalCoins, minCoins)
	if err != nil {
		return nil, err
	}
	return Marshal(t)
}

// Distribution converts the wire records back into a payout.Distribution.
func (t Table) Distribution() payout.Distribution {
	d := make(payout.Distribution, len(t.Buckets))
	for i, r := range t.Buckets {
		d[i] = payout.Bucket{From: r.From, To: r.To, Coins: r.Coins}
	}
	return d
}

// Marshal renders t as indented JSON with a trailing newline, ready for a
// pipe.
func Marshal(t Table) ([]byte, error) {
	out, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// Unmarshal parses what Marshal wrote.
func Unmarshal(data []byte) (Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return Table{}, err
	}
	return t, nil
}
