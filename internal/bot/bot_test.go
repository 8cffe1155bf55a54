package bot

import (
	"testing"
	"time"

	"github.com/appengine-ltd/tidewater/internal/game"
	"github.com/appengine-ltd/tidewater/internal/world"
)

// Row 1: rod shop, bait shop, bed, fridge, furnace, trash. Row 5 is water.
const testLayout = `##########
#RS.BF.KX#
#........#
#.1....2.#
#........#
#~~~~~~~~#
##########
`

const tick = 16 * time.Millisecond

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	m, err := world.Parse("test", testLayout)
	if err != nil {
		t.Fatalf("parse map: %v", err)
	}
	tuning := game.DefaultTuning()
	tuning.NPCMax = 0
	g, err := game.New(game.Options{Seed: 11, Tuning: &tuning, Map: m, Spawns: m.Spawns()})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	g.Clock.Time = game.NoonTime
	return g
}

// runUntil steps the game with the given bots until done reports true or
// limit of simulated time passes.
func runUntil(t *testing.T, g *game.Game, limit time.Duration, done func() bool, bots ...*Bot) time.Duration {
	t.Helper()
	var elapsed time.Duration
	for elapsed < limit {
		if done() {
			return elapsed
		}
		g.Step(tick, Frame(g, tick, bots...))
		elapsed += tick
	}
	t.Fatalf("condition not reached after %s", limit)
	return elapsed
}

func catches(g *game.Game) int {
	total := 0
	for _, n := range g.Session.FishIndex() {
		total += n
	}
	return total
}

func TestNearestStandFindsWater(t *testing.T) {
	g := newTestGame(t)
	grid := newNavGrid(g.Map)

	r, ok := grid.nearestStand(cell{col: 2, row: 3}, game.TileWater, nil)
	if !ok {
		t.Fatalf("expected a route to water")
	}
	if r.path[0] != (cell{col: 2, row: 3}) {
		t.Fatalf("expected path to start at the player, got %v", r.path)
	}
	if dest := r.dest(); dest.row != 4 || len(r.path) != 2 {
		t.Fatalf("expected one step down to row 4, got %v", r.path)
	}
	if r.facing != game.FacingDown {
		t.Fatalf("expected to face down, got %s", r.facing)
	}
}

func TestNearestStandRespectsBlockedCells(t *testing.T) {
	g := newTestGame(t)
	grid := newNavGrid(g.Map)

	r, ok := grid.nearestStand(cell{col: 1, row: 3}, game.TileRodShop, map[cell]struct{}{{col: 1, row: 2}: {}})
	if ok {
		t.Fatalf("expected the only stand to be blocked, got %v", r.path)
	}

	r, ok = grid.nearestStand(cell{col: 8, row: 3}, game.TileRodShop, nil)
	if !ok {
		t.Fatalf("expected a route to the rod shop")
	}
	if dest := r.dest(); dest != (cell{col: 1, row: 2}) || r.facing != game.FacingUp {
		t.Fatalf("expected to stand below the shop facing up, got %v %s", dest, r.facing)
	}
	for i := 1; i < len(r.path); i++ {
		a, b := r.path[i-1], r.path[i]
		if abs(a.col-b.col)+abs(a.row-b.row) != 1 {
			t.Fatalf("expected cardinal steps, got %v -> %v", a, b)
		}
	}
}

func TestNearestStandWithoutTarget(t *testing.T) {
	m, err := world.Parse("dry", "#####\n#1.2#\n#####\n")
	if err != nil {
		t.Fatalf("parse map: %v", err)
	}
	if _, ok := newNavGrid(m).nearestStand(cell{col: 1, row: 1}, game.TileWater, nil); ok {
		t.Fatalf("expected no route on a map without water")
	}
}

func TestStrike(t *testing.T) {
	cases := []struct {
		name string
		a    game.Activity
		want bool
	}{
		{"waiting", game.Activity{State: game.StateWaiting}, false},
		{"caught", game.Activity{State: game.StateCaught}, true},
		{"in zone", game.Activity{State: game.StateMinigame, Minigame: game.Minigame{Marker: 0.5, ZoneStart: 0.4, ZoneEnd: 0.6}}, true},
		{"outside zone", game.Activity{State: game.StateMinigame, Minigame: game.Minigame{Marker: 0.9, ZoneStart: 0.4, ZoneEnd: 0.6}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := strike(&tc.a); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBotFishes(t *testing.T) {
	g := newTestGame(t)
	b1 := New(1, g.Map, Options{})
	runUntil(t, g, 90*time.Second, func() bool { return catches(g) > 0 }, b1)
	if b1.Goal() != "fish" {
		t.Fatalf("expected the bot to be fishing, got %s", b1.Goal())
	}
}

func TestBotBuysUpgrade(t *testing.T) {
	g := newTestGame(t)
	p := g.Player(1)
	rod := game.Rods()[1]
	p.Gold = rod.Cost

	b1 := New(1, g.Map, Options{})
	runUntil(t, g, 20*time.Second, func() bool { return p.RodTier == 1 && !g.Overlay.Modal() }, b1)
	if p.Gold != 0 {
		t.Fatalf("expected all gold spent on the %s, got %d left", rod.Name, p.Gold)
	}
}

func TestBotSellsFullBag(t *testing.T) {
	g := newTestGame(t)
	p := g.Player(2)
	for range defaultSellAt {
		p.Inventory.Push(game.FishItem("Bass"))
	}
	p.Inventory.Push(game.JunkItem())

	b2 := New(2, g.Map, Options{})
	runUntil(t, g, 30*time.Second, func() bool { return sellable(p) == 0 && !g.Overlay.Modal() }, b2)
	if p.Gold == 0 && p.RodTier == 0 {
		t.Fatalf("expected the sale to earn gold")
	}
	if p.Stats.GoldEarned == 0 {
		t.Fatalf("expected gold earned to be recorded")
	}
}

func TestBotEatsCookedFood(t *testing.T) {
	g := newTestGame(t)
	p := g.Player(1)
	p.Hunger = p.MaxHunger - 5
	p.Inventory.Push(game.FishItem("Bass"))

	b1 := New(1, g.Map, Options{})
	runUntil(t, g, 20*time.Second, func() bool { return p.Stats.Eaten > 0 }, b1)
	if p.Stats.Cooked != 1 {
		t.Fatalf("expected the bass to be cooked first, got %d cooked", p.Stats.Cooked)
	}
	if p.Hunger >= p.MaxHunger-5 {
		t.Fatalf("expected hunger to drop, got %d", p.Hunger)
	}
}

func TestBotsSleepThroughTheNight(t *testing.T) {
	g := newTestGame(t)
	g.Clock.Time = 0.7

	b1 := New(1, g.Map, Options{})
	b2 := New(2, g.Map, Options{})
	runUntil(t, g, 40*time.Second, func() bool { return g.Session.Progress().Sleeps > 0 }, b1, b2)
	if g.Clock.TimeOfDay() == game.Night {
		t.Fatalf("expected the night to be skipped, clock at %.3f", g.Clock.Time)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
