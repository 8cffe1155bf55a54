package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/appengine-ltd/tidewater/internal/game"
	"github.com/appengine-ltd/tidewater/internal/parser"
)

func direction(name string) (dx, dy int, f game.Facing, ok bool) {
	switch name {
	case "up":
		return 0, -1, game.FacingUp, true
	case "down":
		return 0, 1, game.FacingDown, true
	case "left":
		return -1, 0, game.FacingLeft, true
	case "right":
		return 1, 0, game.FacingRight, true
	default:
		return 0, 0, game.FacingDown, false
	}
}

// duration reads a parsed quantity; bare numbers are seconds.
func duration(q *parser.Quantity, fallback time.Duration) time.Duration {
	if q == nil {
		return fallback
	}
	switch q.Unit {
	case parser.UnitDuration:
		return q.Duration
	case parser.UnitCount:
		return time.Duration(q.N) * time.Second
	default:
		return fallback
	}
}

func (c *Console) executeMove(n int, intent parser.Intent) Result {
	dx, dy, _, ok := direction(intent.Args[0])
	if !ok {
		return Result{Handled: true, Message: fmt.Sprintf("Unknown direction %q", intent.Args[0])}
	}
	d := duration(intent.Quantity, defaultMove)
	p := c.g.Player(n)
	in := frameFor(n, game.PlayerInput{DX: dx, DY: dy})
	var elapsed time.Duration
	for elapsed < d {
		elapsed += c.step(in)
	}
	// One idle frame so the walk cycle settles.
	elapsed += c.step(game.FrameInput{})
	col, row := tileOf(p)
	return Result{Handled: true, Elapsed: elapsed, Message: fmt.Sprintf("P%d at %d,%d facing %s", n, col, row, p.Facing)}
}

func (c *Console) executeFace(n int, args []string) Result {
	_, _, f, ok := direction(args[0])
	if !ok {
		return Result{Handled: true, Message: fmt.Sprintf("Unknown direction %q", args[0])}
	}
	p := c.g.Player(n)
	if p.Activity != nil {
		return Result{Handled: true, Message: fmt.Sprintf("P%d is busy %s", n, p.Activity.Kind)}
	}
	p.Facing = f
	_, _, tile := p.FacingTile(c.g.Map)
	return Result{Handled: true, Message: fmt.Sprintf("P%d faces %s (%s)", n, f, tile.String())}
}

func (c *Console) executeWait(q *parser.Quantity) Result {
	d := duration(q, defaultWait)
	elapsed := c.idle(d)
	return Result{Handled: true, Elapsed: elapsed, Message: "Waited " + elapsed.Round(time.Millisecond).String() + ". " + clockLine(c.g.Clock)}
}

// executeReel waits for the bite, strikes, and plays any mini-game by
// striking while the marker is inside the zone.
func (c *Console) executeReel(n int) Result {
	p := c.g.Player(n)
	if p.Activity == nil {
		return Result{Handled: true, Message: fmt.Sprintf("P%d has nothing in the water", n)}
	}
	before := len(p.Inventory)
	var elapsed time.Duration
	for p.Activity != nil && elapsed < reelLimit {
		a := p.Activity
		strike := false
		switch a.State {
		case game.StateCaught:
			strike = true
		case game.StateMinigame:
			m := a.Minigame
			strike = m.Result == game.MinigamePending && m.Marker >= m.ZoneStart && m.Marker <= m.ZoneEnd
		case game.StateCasting, game.StateWaiting:
		}
		elapsed += c.step(frameFor(n, game.PlayerInput{Act: strike}))
	}
	if p.Activity != nil {
		return Result{Handled: true, Elapsed: elapsed, Message: fmt.Sprintf("P%d gave up after %s", n, elapsed)}
	}
	if len(p.Inventory) > before {
		got := p.Inventory[len(p.Inventory)-1]
		return Result{Handled: true, Elapsed: elapsed, Message: fmt.Sprintf("P%d landed %s", n, got.DisplayName())}
	}
	return Result{Handled: true, Elapsed: elapsed, Message: fmt.Sprintf("P%d: %s", n, p.Message.Text)}
}

// openOverlay presses the key that opens kind for player n.
func (c *Console) openOverlay(n int, kind game.OverlayKind, key game.PlayerInput) (time.Duration, string, bool) {
	if c.g.Overlay.Modal() {
		if c.g.Overlay.Kind == kind && c.g.Overlay.Owner == n-1 {
			return 0, "", true
		}
		return 0, fmt.Sprintf("The %s is open for P%d", c.g.Overlay.Kind, c.g.Overlay.Owner+1), false
	}
	p := c.g.Player(n)
	before := p.Message
	elapsed := c.step(frameFor(n, key))
	if c.g.Overlay.Kind != kind {
		return elapsed, c.said(p, before), false
	}
	return elapsed, "", true
}

// selectLabel picks the first entry whose label starts with name.
func (c *Console) selectLabel(name string) (string, bool) {
	for i, e := range c.g.MenuEntries() {
		if strings.HasPrefix(strings.ToLower(e.Label), strings.ToLower(name)) {
			return c.g.SelectMenu(i)
		}
	}
	return fmt.Sprintf("%s is not on the menu", name), false
}

func (c *Console) closeOverlay() time.Duration {
	if !c.g.Overlay.Modal() {
		return 0
	}
	return c.step(game.FrameInput{Escape: true})
}

func shopFor(name string) (game.Tile, game.OverlayKind, bool) {
	for _, r := range game.Rods() {
		if strings.EqualFold(r.Name, name) {
			return game.TileRodShop, game.OverlayRodShop, true
		}
	}
	for _, n := range game.Nets() {
		if strings.EqualFold(n.Name, name) {
			return game.TileRodShop, game.OverlayRodShop, true
		}
	}
	for _, b := range game.Baits() {
		if strings.EqualFold(b.Name, name) {
			return game.TileBaitShop, game.OverlayBaitShop, true
		}
	}
	return 0, game.OverlayNone, false
}

func (c *Console) executeBuy(n int, name string) Result {
	tile, kind, ok := shopFor(name)
	if !ok {
		return Result{Handled: true, Message: fmt.Sprintf("Nobody sells %q", name)}
	}
	return c.shop(n, tile, kind, name)
}

func (c *Console) executeSell(n int) Result {
	return c.shop(n, game.TileRodShop, game.OverlayRodShop, "sell catch")
}

func (c *Console) shop(n int, tile game.Tile, kind game.OverlayKind, label string) Result {
	p := c.g.Player(n)
	if !c.g.Overlay.Modal() {
		if _, _, facing := p.FacingTile(c.g.Map); facing != tile {
			return Result{Handled: true, Message: fmt.Sprintf("P%d must face the %s", n, tile.String())}
		}
	}
	elapsed, msg, ok := c.openOverlay(n, kind, game.PlayerInput{Act: true})
	if !ok {
		return Result{Handled: true, Elapsed: elapsed, Message: fmt.Sprintf("P%d: %s", n, msg)}
	}
	msg, _ = c.selectLabel(label)
	elapsed += c.closeOverlay()
	return Result{Handled: true, Elapsed: elapsed, Message: fmt.Sprintf("P%d: %s (%dg left)", n, msg, p.Gold)}
}

func (c *Console) executeGive(n int, q *parser.Quantity) Result {
	label := ""
	switch {
	case q == nil:
	case q.Unit == parser.UnitAll:
		label = "Give all"
	case q.Unit == parser.UnitCount && (q.N == 10 || q.N == 50 || q.N == 100):
		label = fmt.Sprintf("Give %dg", q.N)
	}
	if label == "" {
		return Result{Handled: true, Message: "Give 10, 50, 100 or all"}
	}
	elapsed, msg, ok := c.openOverlay(n, game.OverlayGive, game.PlayerInput{Menu: true})
	if !ok {
		return Result{Handled: true, Elapsed: elapsed, Message: fmt.Sprintf("P%d: %s", n, msg)}
	}
	msg, _ = c.selectLabel(label)
	elapsed += c.closeOverlay()
	return Result{Handled: true, Elapsed: elapsed, Message: fmt.Sprintf("P%d: %s", n, msg)}
}

func (c *Console) executeGoto(n int, args []string) Result {
	col, err1 := strconv.Atoi(args[0])
	row, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return Result{Handled: true, Message: "Usage: goto <col> <row> [up|down|left|right]"}
	}
	facing := game.FacingDown
	if len(args) > 2 {
		_, _, f, ok := direction(args[2])
		if !ok {
			return Result{Handled: true, Message: fmt.Sprintf("Unknown direction %q", args[2])}
		}
		facing = f
	}
	if err := c.g.Place(n, game.TilePos{Col: col, Row: row}, facing); err != nil {
		return Result{Handled: true, Message: fmt.Sprintf("P%d: %v", n, err)}
	}
	return Result{Handled: true, Message: fmt.Sprintf("P%d placed at %d,%d facing %s", n, col, row, facing)}
}

func tileOf(p *game.Player) (int, int) {
	x, y := p.Center()
	return int(x) / game.TileSize, int(y) / game.TileSize
}
