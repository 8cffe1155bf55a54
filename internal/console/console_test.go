package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
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

func newTestConsole(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	m, err := world.Parse("test", testLayout)
	if err != nil {
		t.Fatalf("parse map: %v", err)
	}
	g, err := game.New(game.Options{Seed: 3, Map: m, Spawns: m.Spawns()})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	var out bytes.Buffer
	return New(g, &out, Options{}), &out
}

func mustHandle(t *testing.T, c *Console, line string) Result {
	t.Helper()
	res := c.Execute(line)
	if !res.Handled {
		t.Fatalf("expected %q to be handled, got %q", line, res.Message)
	}
	return res
}

func TestHelpListsVerbs(t *testing.T) {
	c, _ := newTestConsole(t)
	res := mustHandle(t, c, "help")
	for _, verb := range []string{"buy", "reel", "status", "goto"} {
		if !strings.Contains(res.Message, verb) {
			t.Fatalf("expected help to mention %q, got %q", verb, res.Message)
		}
	}
}

func TestUnknownLineIsUnhandled(t *testing.T) {
	c, _ := newTestConsole(t)
	if res := c.Execute("xyzzy"); res.Handled {
		t.Fatalf("expected gibberish to be unhandled, got %+v", res)
	}
}

func TestGotoAndFace(t *testing.T) {
	c, _ := newTestConsole(t)
	mustHandle(t, c, "p1 goto 1 2")
	res := mustHandle(t, c, "p1 face up")
	if !strings.Contains(res.Message, "rod shop") {
		t.Fatalf("expected to face the rod shop, got %q", res.Message)
	}
	if res := mustHandle(t, c, "p1 goto 0 0"); !strings.Contains(res.Message, "not walkable") {
		t.Fatalf("expected wall placement to fail, got %q", res.Message)
	}
}

func TestBuyRodAtShop(t *testing.T) {
	c, _ := newTestConsole(t)
	p := c.Game().Player(1)
	p.Gold = 100
	mustHandle(t, c, "p1 goto 1 2 up")
	res := mustHandle(t, c, "p1 buy iron rod")
	if p.RodTier != 1 {
		t.Fatalf("expected iron rod, got tier %d (%q)", p.RodTier, res.Message)
	}
	if p.Gold != 50 {
		t.Fatalf("expected 50 gold left, got %d", p.Gold)
	}
	if c.Game().Overlay.Modal() {
		t.Fatalf("expected shop to be closed after buying")
	}
}

func TestBuyNeedsTheShop(t *testing.T) {
	c, _ := newTestConsole(t)
	p := c.Game().Player(1)
	p.Gold = 100
	res := mustHandle(t, c, "p1 buy iron rod")
	if !strings.Contains(res.Message, "must face the rod shop") {
		t.Fatalf("expected shop precondition, got %q", res.Message)
	}
	if p.RodTier != 0 || p.Gold != 100 {
		t.Fatalf("expected nothing bought, tier=%d gold=%d", p.RodTier, p.Gold)
	}
}

func TestBuyBaitWithTypo(t *testing.T) {
	c, _ := newTestConsole(t)
	p := c.Game().Player(1)
	p.Gold = 30
	mustHandle(t, c, "p1 goto 2 2 up")
	mustHandle(t, c, "p1 buy wrm")
	if p.BaitCounts[1] != 5 || p.BaitType != 1 {
		t.Fatalf("expected 5 worms equipped, got counts=%v type=%d", p.BaitCounts, p.BaitType)
	}
	if p.Gold != 20 {
		t.Fatalf("expected 20 gold left, got %d", p.Gold)
	}
}

func TestSellCatch(t *testing.T) {
	c, _ := newTestConsole(t)
	p := c.Game().Player(1)
	p.Inventory.Push(game.FishItem("Bass"))
	p.Inventory.Push(game.JunkItem())
	price, ok := game.SellPrice(game.FishItem("Bass"))
	if !ok {
		t.Fatalf("expected bass to have a price")
	}
	mustHandle(t, c, "p1 goto 1 2 up")
	mustHandle(t, c, "p1 sell")
	if p.Gold != price {
		t.Fatalf("expected %d gold, got %d", price, p.Gold)
	}
	if len(p.Inventory) != 1 || p.Inventory[0].Kind != game.KindJunk {
		t.Fatalf("expected only the boot to remain, got %+v", p.Inventory)
	}
}

func TestFishAndReel(t *testing.T) {
	c, _ := newTestConsole(t)
	p := c.Game().Player(1)
	mustHandle(t, c, "p1 goto 3 4 down")
	mustHandle(t, c, "p1 act")
	if p.Activity == nil {
		t.Fatalf("expected a cast to start")
	}
	res := mustHandle(t, c, "p1 reel")
	if p.Activity != nil {
		t.Fatalf("expected the cast to finish, got %s", p.Activity.State)
	}
	if len(p.Inventory) != 1 {
		t.Fatalf("expected one catch, got %+v (%q)", p.Inventory, res.Message)
	}
	if res.Elapsed <= 0 {
		t.Fatalf("expected reel to take time")
	}
}

func TestReelWithoutCast(t *testing.T) {
	c, _ := newTestConsole(t)
	res := mustHandle(t, c, "p2 reel")
	if !strings.Contains(res.Message, "nothing in the water") {
		t.Fatalf("expected idle reel message, got %q", res.Message)
	}
}

func TestGiveNeedsProximity(t *testing.T) {
	c, _ := newTestConsole(t)
	p1, p2 := c.Game().Player(1), c.Game().Player(2)
	p1.Gold = 80

	res := mustHandle(t, c, "p1 give 50")
	if !strings.Contains(res.Message, "Get closer") || p1.Gold != 80 {
		t.Fatalf("expected proximity failure, got %q gold=%d", res.Message, p1.Gold)
	}

	mustHandle(t, c, "p2 goto 3 3")
	res = mustHandle(t, c, "p1 give 50")
	if p1.Gold != 30 || p2.Gold != 50 {
		t.Fatalf("expected 30/50 after giving, got %d/%d (%q)", p1.Gold, p2.Gold, res.Message)
	}
	if c.Game().Overlay.Modal() {
		t.Fatalf("expected give menu to close")
	}
	if res := mustHandle(t, c, "p1 give 7"); !strings.Contains(res.Message, "10, 50, 100 or all") {
		t.Fatalf("expected amount hint, got %q", res.Message)
	}
}

func TestMoveWalks(t *testing.T) {
	c, _ := newTestConsole(t)
	p := c.Game().Player(1)
	x := p.X
	res := mustHandle(t, c, "p1 move right 300ms")
	if p.X <= x {
		t.Fatalf("expected P1 to move right, x %.1f -> %.1f", x, p.X)
	}
	if !strings.Contains(res.Message, "facing right") {
		t.Fatalf("expected facing in message, got %q", res.Message)
	}
}

func TestWaitAdvancesClock(t *testing.T) {
	c, _ := newTestConsole(t)
	before := c.Game().Clock.Time
	res := mustHandle(t, c, "wait 2s")
	if res.Elapsed < 2*time.Second {
		t.Fatalf("expected at least 2s elapsed, got %s", res.Elapsed)
	}
	if c.Game().Clock.Time <= before {
		t.Fatalf("expected clock to advance from %.4f, got %.4f", before, c.Game().Clock.Time)
	}
}

func TestViews(t *testing.T) {
	c, _ := newTestConsole(t)
	if s := c.Status(); !strings.Contains(s, "P1 at 2,3") || !strings.Contains(s, "P2 at 7,3") {
		t.Fatalf("expected both players in status, got %q", s)
	}
	if idx := c.FishIndex(); !strings.Contains(idx, "Fish index 0/") || !strings.Contains(idx, "???") {
		t.Fatalf("expected empty index, got %q", idx)
	}
	if a := c.AchievementList(); !strings.Contains(a, "First Catch") || !strings.Contains(a, "Achievements 0/") {
		t.Fatalf("expected locked achievements, got %q", a)
	}
	if b := c.Board(); !strings.Contains(b, "1. P1 0 pts") {
		t.Fatalf("expected tie broken by player number, got %q", b)
	}
	m := c.LocalMap(1, 7)
	if !strings.Contains(m, "1") || !strings.Contains(m, "2") || !strings.Contains(m, "~") {
		t.Fatalf("expected players and water on the local map, got\n%s", m)
	}
}

func TestClockLine(t *testing.T) {
	if got := clockLine(game.Clock{Time: game.NoonTime}); got != "12:00 (Day)" {
		t.Fatalf("expected noon, got %q", got)
	}
	if got := clockLine(game.Clock{Time: 0}); got != "06:00 (Dawn)" {
		t.Fatalf("expected dawn, got %q", got)
	}
}

func TestRunScript(t *testing.T) {
	c, out := newTestConsole(t)
	script := strings.Join([]string{
		"# warm up",
		"",
		"p1 goto 3 4 down",
		"wait 100ms",
		"status",
	}, "\n")
	if err := c.Run(context.Background(), strings.NewReader(script), true); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "> status") {
		t.Fatalf("expected echoed commands, got %q", out.String())
	}
	if strings.Contains(out.String(), "warm up") {
		t.Fatalf("expected comments to be skipped")
	}
}

func TestRunStrictStopsOnUnknown(t *testing.T) {
	c, _ := newTestConsole(t)
	err := c.Run(context.Background(), strings.NewReader("status\nxyzzy\nboard\n"), true)
	if !errors.Is(err, ErrUnhandled) {
		t.Fatalf("expected ErrUnhandled, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line number in error, got %v", err)
	}

	if err := c.Run(context.Background(), strings.NewReader("xyzzy\nboard\n"), false); err != nil {
		t.Fatalf("expected lenient run to continue, got %v", err)
	}
}

func TestRunQuitAndCancel(t *testing.T) {
	c, _ := newTestConsole(t)
	if err := c.Run(context.Background(), strings.NewReader("status\nquit\nxyzzy\n"), true); err != nil {
		t.Fatalf("expected quit to end the run cleanly, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Run(ctx, strings.NewReader("status\n"), true); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
