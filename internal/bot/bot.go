// Package bot is a rule-based autopilot that plays one side of a game.Game
// through the same per-tick key input a human produces.
package bot

import (
	"log/slog"
	"math"
	"time"

	"github.com/appengine-ltd/tidewater/internal/game"
)

type goal int

const (
	goalFish goal = iota
	goalShop
	goalBait
	goalCook
	goalBed
)

func (g goal) String() string {
	switch g {
	case goalShop:
		return "shop"
	case goalBait:
		return "bait"
	case goalCook:
		return "cook"
	case goalBed:
		return "bed"
	default:
		return "fish"
	}
}

func (g goal) tile() game.Tile {
	switch g {
	case goalShop:
		return game.TileRodShop
	case goalBait:
		return game.TileBaitShop
	case goalCook:
		return game.TileFurnace
	case goalBed:
		return game.TileBed
	default:
		return game.TileWater
	}
}

const (
	defaultSellAt   = 8
	defaultHungerAt = 0.6
	stallLimit      = time.Second
	eatGap          = 600 * time.Millisecond
	retryAfter      = 5 * time.Second
	menuPressLimit  = 24
	baitReserve     = 3
)

type Options struct {
	// SellAt is the number of sellable items that triggers a shop trip.
	SellAt int
	// HungerAt is the hunger fraction at which the bot looks for food.
	HungerAt float64
	Logger   *slog.Logger
}

type Bot struct {
	player int
	grid   *navGrid
	opts   Options
	log    *slog.Logger

	goal     goal
	route    route
	step     int
	planned  bool
	arrived  bool
	lastX    float64
	lastY    float64
	stalled  time.Duration
	eatWait  time.Duration
	cooldown map[goal]time.Duration
	presses  int
	casts    int
}

// New builds an autopilot for player n (1-based) on map m.
func New(n int, m game.TileMap, opts Options) *Bot {
	if opts.SellAt <= 0 {
		opts.SellAt = defaultSellAt
	}
	if opts.HungerAt <= 0 || opts.HungerAt > 1 {
		opts.HungerAt = defaultHungerAt
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bot{
		player:   n,
		grid:     newNavGrid(m),
		opts:     opts,
		log:      logger.With("player", n),
		cooldown: map[goal]time.Duration{},
	}
}

func (b *Bot) Player() int { return b.player }

// Goal names what the bot is currently working towards.
func (b *Bot) Goal() string { return b.goal.String() }

// Frame merges the input of every bot into one tick of FrameInput.
func Frame(g *game.Game, dt time.Duration, bots ...*Bot) game.FrameInput {
	var in game.FrameInput
	for _, b := range bots {
		in.Players[b.player-1] = b.Next(g, dt)
	}
	return in
}

// Next decides the key input for the coming tick of length dt.
func (b *Bot) Next(g *game.Game, dt time.Duration) game.PlayerInput {
	p := g.Player(b.player)
	b.tick(dt)

	if g.Overlay.Modal() {
		if g.Overlay.Owner == b.player-1 {
			return b.shopping(g, p)
		}
		return game.PlayerInput{}
	}
	b.presses = 0
	if g.Sleep.Active() {
		return game.PlayerInput{}
	}
	if p.InBed {
		if tod := g.Clock.TimeOfDay(); tod == game.Dawn || tod == game.Day {
			return game.PlayerInput{Eat: true}
		}
		return game.PlayerInput{}
	}
	if a := p.Activity; a != nil {
		return game.PlayerInput{Act: strike(a)}
	}
	if b.eatWait <= 0 && b.shouldEat(p) {
		b.eatWait = eatGap
		return game.PlayerInput{Eat: true}
	}

	if next := b.choose(g, p); next != b.goal {
		b.log.Debug("bot goal", "from", b.goal.String(), "to", next.String())
		b.goal = next
		b.planned = false
	}
	return b.pursue(g, p, dt)
}

func (b *Bot) tick(dt time.Duration) {
	b.eatWait -= dt
	for k, v := range b.cooldown {
		if v -= dt; v <= 0 {
			delete(b.cooldown, k)
			continue
		}
		b.cooldown[k] = v
	}
}

// strike reports whether pressing act now lands the catch.
func strike(a *game.Activity) bool {
	switch a.State {
	case game.StateCaught:
		return true
	case game.StateMinigame:
		m := a.Minigame
		return m.Result == game.MinigamePending && m.Marker >= m.ZoneStart && m.Marker <= m.ZoneEnd
	default:
		return false
	}
}

func (b *Bot) shouldEat(p *game.Player) bool {
	inv := p.Inventory
	if inv.Has(func(it game.Item) bool { return it.Kind == game.KindTreasureChest }) {
		return true
	}
	if p.HP*2 < p.MaxHP && inv.Has(game.Item.Healing) {
		return true
	}
	if p.Starving() {
		return inv.Has(game.Item.Edible) || inv.Has(game.Item.Healing)
	}
	if !b.hungry(p) {
		return false
	}
	if inv.Has(func(it game.Item) bool { return it.Edible() && it.Cooked }) {
		return true
	}
	return !b.grid.has(game.TileFurnace) && inv.Has(game.Item.Edible)
}

func (b *Bot) hungry(p *game.Player) bool {
	return float64(p.Hunger) >= b.opts.HungerAt*float64(p.MaxHunger)
}

func (b *Bot) ready(gl goal) bool {
	return b.cooldown[gl] <= 0 && b.grid.has(gl.tile())
}

func (b *Bot) choose(g *game.Game, p *game.Player) goal {
	inv := p.Inventory
	if g.Clock.TimeOfDay() == game.Night && b.ready(goalBed) {
		return goalBed
	}
	if b.hungry(p) && b.ready(goalCook) && inv.Has(game.Item.Cookable) &&
		!inv.Has(func(it game.Item) bool { return it.Edible() && it.Cooked }) {
		return goalCook
	}
	if b.ready(goalShop) && (sellable(p) >= b.opts.SellAt || upgrade(p) != "") {
		return goalShop
	}
	if b.ready(goalBait) && baitStock(p) == 0 {
		if worm := game.Baits()[game.NoBait+1]; p.Gold >= worm.Cost*baitReserve {
			return goalBait
		}
	}
	return goalFish
}

func sellable(p *game.Player) int {
	return p.Inventory.Count(func(it game.Item) bool {
		_, ok := game.SellPrice(it)
		return ok
	})
}

func baitStock(p *game.Player) int {
	total := 0
	for i, n := range p.BaitCounts {
		if i != game.NoBait {
			total += n
		}
	}
	return total
}

// upgrade names the next rod or net p can afford, or "".
func upgrade(p *game.Player) string {
	if rods := game.Rods(); p.RodTier+1 < len(rods) && p.Gold >= rods[p.RodTier+1].Cost {
		return rods[p.RodTier+1].Name
	}
	if nets := game.Nets(); p.NetTier+1 < len(nets) && p.Gold >= nets[p.NetTier+1].Cost {
		return nets[p.NetTier+1].Name
	}
	return ""
}

// shopping drives an overlay the bot owns: move the cursor to the wanted
// entry and press act, or leave once nothing is wanted.
func (b *Bot) shopping(g *game.Game, p *game.Player) game.PlayerInput {
	entries := g.MenuEntries()
	want := -1
	switch g.Overlay.Kind {
	case game.OverlayRodShop:
		label := upgrade(p)
		if sellable(p) > 0 {
			label = "Sell catch"
		}
		for i, e := range entries {
			if label != "" && e.Label == label && !e.Owned {
				want = i
				break
			}
		}
	case game.OverlayBaitShop:
		if baitStock(p) == 0 && len(entries) > 0 && p.Gold >= entries[0].Cost {
			want = 0
		}
	case game.OverlayGive, game.OverlayNone:
	}

	b.presses++
	if want < 0 || b.presses > menuPressLimit {
		b.cooldown[goalShop] = retryAfter
		b.cooldown[goalBait] = retryAfter
		return game.PlayerInput{Eat: true}
	}
	cursor, n := g.Overlay.Cursor, len(entries)
	switch {
	case cursor == want:
		return game.PlayerInput{Act: true}
	case (want-cursor+n)%n <= n/2:
		return game.PlayerInput{Down: true}
	default:
		return game.PlayerInput{Up: true}
	}
}

func (b *Bot) pursue(g *game.Game, p *game.Player, dt time.Duration) game.PlayerInput {
	if !b.planned && !b.plan(g, p) {
		return game.PlayerInput{}
	}
	if !b.arrived {
		in, arrived := b.follow(g, p, dt)
		if !arrived {
			return in
		}
		b.arrived = true
	}
	if cellOf(p) != b.route.dest() {
		b.planned = false
		return game.PlayerInput{}
	}
	if p.Facing != b.route.facing {
		return face(b.route.facing)
	}
	if _, _, tile := p.FacingTile(g.Map); tile != b.goal.tile() {
		b.planned = false
		return game.PlayerInput{}
	}

	switch b.goal {
	case goalFish:
		b.casts++
		if _, ok := p.Net(); ok && b.casts%2 == 0 {
			return game.PlayerInput{Net: true}
		}
	case goalCook:
		b.cooldown[goalCook] = eatGap
	case goalBed:
		b.cooldown[goalBed] = retryAfter
	case goalShop, goalBait:
	}
	return game.PlayerInput{Act: true}
}

// plan routes to the nearest standing cell for the current goal, treating
// the other player's cell as blocked.
func (b *Bot) plan(g *game.Game, p *game.Player) bool {
	other := g.Player(3 - b.player)
	blocked := map[cell]struct{}{cellOf(other): {}}
	r, ok := b.grid.nearestStand(cellOf(p), b.goal.tile(), blocked)
	if !ok {
		b.log.Debug("bot has no route", "goal", b.goal.String())
		b.cooldown[b.goal] = retryAfter
		return false
	}
	b.route, b.step, b.planned, b.arrived = r, 0, true, false
	b.stalled = 0
	b.lastX, b.lastY = p.X, p.Y
	return true
}

// follow walks the planned path one tile centre at a time. It corrects the
// cross axis before moving along the path so corners are never clipped.
func (b *Bot) follow(g *game.Game, p *game.Player, dt time.Duration) (game.PlayerInput, bool) {
	eps := max(2, g.Tuning().MoveSpeed*dt.Seconds())
	cx, cy := p.Center()
	cur := cellOf(p)
	path := b.route.path

	for {
		target := path[b.step]
		ex := float64(target.col*game.TileSize+game.TileSize/2) - cx
		ey := float64(target.row*game.TileSize+game.TileSize/2) - cy
		if cur == target && math.Abs(ex) <= eps && math.Abs(ey) <= eps {
			if b.step == len(path)-1 {
				return game.PlayerInput{}, true
			}
			b.step++
			continue
		}
		if cur != target && (b.step == 0 || cur != path[b.step-1]) {
			b.planned = false
			return game.PlayerInput{}, false
		}

		if p.X == b.lastX && p.Y == b.lastY {
			b.stalled += dt
		} else {
			b.stalled = 0
		}
		b.lastX, b.lastY = p.X, p.Y
		if b.stalled > stallLimit {
			b.planned = false
			return game.PlayerInput{}, false
		}

		var in game.PlayerInput
		horizontal := target.col != cur.col
		vertical := target.row != cur.row
		switch {
		case horizontal && math.Abs(ey) > eps, !horizontal && !vertical && math.Abs(ex) <= eps, vertical && math.Abs(ex) <= eps:
			in.DY = sign(ey)
		default:
			in.DX = sign(ex)
		}
		return in, false
	}
}

func face(f game.Facing) game.PlayerInput {
	switch f {
	case game.FacingUp:
		return game.PlayerInput{DY: -1}
	case game.FacingDown:
		return game.PlayerInput{DY: 1}
	case game.FacingLeft:
		return game.PlayerInput{DX: -1}
	default:
		return game.PlayerInput{DX: 1}
	}
}

func cellOf(p *game.Player) cell {
	x, y := p.Center()
	return cell{col: int(x) / game.TileSize, row: int(y) / game.TileSize}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
