package game

import (
	"slices"
	"time"
)

// Catalog tables are read-only reference data. Exported accessors hand out
// copies so callers can never mutate the shared tables.

type RodSpec struct {
	Name      string
	CastTime  time.Duration
	SpeedMult float64
	RareMult  float64
	Cost      int
}

type NetSpec struct {
	Name      string
	ThrowTime time.Duration
	SpeedMult float64
	RareMult  float64
	Cost      int
}

type BaitSpec struct {
	Name   string
	Cost   int
	Amount int
}

type CatchSpec struct {
	Name   string
	Weight float64
}

// RareFishSpec is only eligible while its bait is equipped and in stock.
// MarkerSpeed is in full sweeps per second; ZoneWidth is a fraction of the bar.
type RareFishSpec struct {
	Name        string
	Weight      float64
	Bait        int
	MarkerSpeed float64
	ZoneWidth   float64
}

type TreasureSpec struct {
	Name   string
	Weight float64
	Heal   int
}

const (
	OldBootName       = "Old Boot"
	TreasureChestName = "Treasure Chest"
	LegendaryKoiName  = "Legendary Koi"

	NoBait       = 0
	NoNet        = -1
	glowwormBait = 3

	// rareFromIndex is the first fish/crustacean table index scaled by the
	// equipment rare multiplier.
	rareFromIndex = 3
)

var rods = []RodSpec{
	{Name: "Wooden Rod", CastTime: 500 * time.Millisecond, SpeedMult: 1.0, RareMult: 1.0, Cost: 0},
	{Name: "Iron Rod", CastTime: 400 * time.Millisecond, SpeedMult: 0.8, RareMult: 1.2, Cost: 50},
	{Name: "Steel Rod", CastTime: 350 * time.Millisecond, SpeedMult: 0.65, RareMult: 1.5, Cost: 150},
	{Name: "Silver Rod", CastTime: 300 * time.Millisecond, SpeedMult: 0.5, RareMult: 2.0, Cost: 400},
	{Name: "Golden Rod", CastTime: 250 * time.Millisecond, SpeedMult: 0.35, RareMult: 3.0, Cost: 1000},
}

var nets = []NetSpec{
	{Name: "Rope Net", ThrowTime: 600 * time.Millisecond, SpeedMult: 1.0, RareMult: 1.0, Cost: 40},
	{Name: "Mesh Net", ThrowTime: 500 * time.Millisecond, SpeedMult: 0.8, RareMult: 1.4, Cost: 120},
	{Name: "Steel Net", ThrowTime: 400 * time.Millisecond, SpeedMult: 0.6, RareMult: 2.0, Cost: 300},
}

var baits = []BaitSpec{
	{Name: "No Bait", Cost: 0, Amount: 0},
	{Name: "Worm", Cost: 10, Amount: 5},
	{Name: "Shrimp", Cost: 30, Amount: 5},
	{Name: "Glowworm", Cost: 75, Amount: 5},
	{Name: "Golden Lure", Cost: 200, Amount: 3},
}

// The last two entries are not fish but share the same draw.
var fishTable = []CatchSpec{
	{Name: "Bluegill", Weight: 40},
	{Name: "Bass", Weight: 25},
	{Name: "Trout", Weight: 15},
	{Name: "Salmon", Weight: 10},
	{Name: "Catfish", Weight: 5},
	{Name: OldBootName, Weight: 4},
	{Name: TreasureChestName, Weight: 1},
}

var rareFishTable = []RareFishSpec{
	{Name: "Sturgeon", Weight: 8, Bait: 1, MarkerSpeed: 0.9, ZoneWidth: 0.30},
	{Name: "Swordfish", Weight: 5, Bait: 2, MarkerSpeed: 1.3, ZoneWidth: 0.22},
	{Name: "Anglerfish", Weight: 4, Bait: glowwormBait, MarkerSpeed: 1.1, ZoneWidth: 0.26},
	{Name: LegendaryKoiName, Weight: 2, Bait: 4, MarkerSpeed: 1.7, ZoneWidth: 0.14},
}

var crustaceanTable = []CatchSpec{
	{Name: "Shrimp", Weight: 40},
	{Name: "Crab", Weight: 30},
	{Name: "Crayfish", Weight: 20},
	{Name: "Lobster", Weight: 8},
	{Name: "King Crab", Weight: 2},
}

var treasureTable = []TreasureSpec{
	{Name: "Golden Fish", Weight: 10, Heal: 50},
	{Name: "Pearl", Weight: 20},
	{Name: "Ruby", Weight: 15},
	{Name: "Ancient Coin", Weight: 25},
	{Name: "Magic Potion", Weight: 15, Heal: 80},
	{Name: "Diamond", Weight: 5},
	{Name: "Crown", Weight: 2},
}

// sellPrices covers everything the sell counter buys. Chests, junk and
// healing loot are absent on purpose.
var sellPrices = map[string]int{
	"Bluegill": 3, "Bass": 5, "Trout": 8, "Salmon": 12, "Catfish": 18,
	"Sturgeon": 40, "Swordfish": 60, "Anglerfish": 75, LegendaryKoiName: 250,
	"Shrimp": 2, "Crab": 6, "Crayfish": 9, "Lobster": 25, "King Crab": 80,
	"Pearl": 30, "Ruby": 60, "Ancient Coin": 20, "Diamond": 150, "Crown": 400,
}

const cookedSellBonus = 2

func Rods() []RodSpec               { return slices.Clone(rods) }
func Nets() []NetSpec               { return slices.Clone(nets) }
func Baits() []BaitSpec             { return slices.Clone(baits) }
func FishTable() []CatchSpec        { return slices.Clone(fishTable) }
func RareFishTable() []RareFishSpec { return slices.Clone(rareFishTable) }
func CrustaceanTable() []CatchSpec  { return slices.Clone(crustaceanTable) }
func TreasureTable() []TreasureSpec { return slices.Clone(treasureTable) }

// SellPrice reports what the sell counter pays for item.
func SellPrice(item Item) (int, bool) {
	switch item.Kind {
	case KindFish, KindCrustacean:
	case KindLoot:
		if item.Heal > 0 {
			return 0, false
		}
	default:
		return 0, false
	}
	price, ok := sellPrices[item.Name]
	if !ok {
		return 0, false
	}
	if item.Cooked {
		price += cookedSellBonus
	}
	return price, true
}

func rareFishByName(name string) (RareFishSpec, bool) {
	for _, rf := range rareFishTable {
		if rf.Name == name {
			return rf, true
		}
	}
	return RareFishSpec{}, false
}

// CatchOutcome is the resolved result of a bite.
type CatchOutcome struct {
	Name string
	Rare bool
}

// nightScale halves the first two table entries at night and doubles the rest.
func nightScale(i int, night bool) float64 {
	switch {
	case !night:
		return 1
	case i < 2:
		return 0.5
	default:
		return 2
	}
}

// fishWeights builds the bite table: the fish table scaled for night and the
// rod, plus the rare entry unlocked by bait (0 for none).
func fishWeights(night bool, rod RodSpec, bait int) []Weighted[CatchOutcome] {
	entries := make([]Weighted[CatchOutcome], 0, len(fishTable)+1)
	for i, f := range fishTable {
		w := f.Weight * nightScale(i, night)
		if i >= rareFromIndex && rod.RareMult > 1 {
			w *= rod.RareMult
		}
		entries = append(entries, Weighted[CatchOutcome]{Weight: w, Value: CatchOutcome{Name: f.Name}})
	}
	if bait <= NoBait {
		return entries
	}
	for _, rf := range rareFishTable {
		if rf.Bait != bait {
			continue
		}
		w := rf.Weight * rod.RareMult
		if night && rf.Bait == glowwormBait {
			w *= 3
		}
		entries = append(entries, Weighted[CatchOutcome]{Weight: w, Value: CatchOutcome{Name: rf.Name, Rare: true}})
	}
	return entries
}

func pickFish(r Roller, night bool, rod RodSpec, bait int) CatchOutcome {
	return PickWeighted(r, fishWeights(night, rod, bait))
}

func crustaceanWeights(night bool, net NetSpec) []Weighted[string] {
	entries := make([]Weighted[string], 0, len(crustaceanTable))
	for i, c := range crustaceanTable {
		w := c.Weight * nightScale(i, night)
		if i >= rareFromIndex && net.RareMult > 1 {
			w *= net.RareMult
		}
		entries = append(entries, Weighted[string]{Weight: w, Value: c.Name})
	}
	return entries
}

func pickCrustacean(r Roller, night bool, net NetSpec) string {
	return PickWeighted(r, crustaceanWeights(night, net))
}

func pickTreasure(r Roller) TreasureSpec {
	entries := make([]Weighted[TreasureSpec], len(treasureTable))
	for i, t := range treasureTable {
		entries[i] = Weighted[TreasureSpec]{Weight: t.Weight, Value: t}
	}
	return PickWeighted(r, entries)
}

// IndexSpecies lists every entry the fish index tracks, in display order.
func IndexSpecies() []string {
	out := make([]string, 0, len(fishTable)+len(rareFishTable)+len(crustaceanTable))
	for _, f := range fishTable {
		out = append(out, f.Name)
	}
	for _, rf := range rareFishTable {
		out = append(out, rf.Name)
	}
	for _, c := range crustaceanTable {
		if !slices.Contains(out, c.Name) {
			out = append(out, c.Name)
		}
	}
	return out
}
