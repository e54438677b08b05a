package defaults

// Canned events for interactive sessions.  These are starting points for
// an operator to fiddle with, not policy.

type Preset struct {
	Name       string
	Winners    int
	TotalCoins int64
	MinCoins   int64
}

func Presets() []Preset {
	return []Preset{
		{Name: "turbo", Winners: 20, TotalCoins: 5_000, MinCoins: 50},
		{Name: "nightly", Winners: 50, TotalCoins: 25_000, MinCoins: 100},
		{Name: "weekend", Winners: 200, TotalCoins: 150_000, MinCoins: 100},
		{Name: "main-event", Winners: 1_000, TotalCoins: 2_000_000, MinCoins: 500},
	}
}

// ByName finds a preset, or comes back empty-handed.
func ByName(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
