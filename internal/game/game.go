package game

import (
	"fmt"
	"log/slog"
	"time"
)

type TilePos struct {
	Col, Row int
}

type Options struct {
	Seed   int64
	Tuning *Tuning
	Map    TileMap
	Spawns [PlayerCount]TilePos
	Logger *slog.Logger
	// Roller overrides the seeded RNG, mainly for tests.
	Roller Roller
}

// Game is one cooperative session: two players on one map sharing a clock,
// a fridge and progress. It is not safe for concurrent use; Step must be
// called from a single goroutine.
type Game struct {
	Map     TileMap
	Clock   Clock
	Players [PlayerCount]*Player
	Session *Session
	Sleep   SleepCycle
	NPCs    NPCManager
	Overlay Overlay
	Panels  Panels
	Banner  Message
	Camera  Camera
	Frame   uint64

	tuning Tuning
	rng    Roller
	log    *slog.Logger
}

func New(opts Options) (*Game, error) {
	if opts.Map == nil {
		return nil, fmt.Errorf("game: map is required")
	}
	tuning := DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	for i, sp := range opts.Spawns {
		if t := opts.Map.Tile(sp.Col, sp.Row); t.Solid() {
			return nil, fmt.Errorf("game: spawn for P%d at %d,%d is on a solid tile", i+1, sp.Col, sp.Row)
		}
	}
	rng := opts.Roller
	if rng == nil {
		rng = seededRNG(opts.Seed)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := &Game{
		Map:     opts.Map,
		Clock:   Clock{Time: tuning.StartTime, DayLength: tuning.DayLength},
		Session: NewSession(),
		tuning:  tuning,
		rng:     rng,
		log:     logger,
	}
	for i, sp := range opts.Spawns {
		g.Players[i] = newPlayer(i+1, sp.Col, sp.Row, tuning)
	}
	g.Camera.follow(g.Players, g.Map, tuning.ViewWidth, tuning.ViewHeight)
	g.log.Info("session started", "session", g.Session.ID.String(), "seed", opts.Seed)
	return g, nil
}

func (g *Game) Tuning() Tuning { return g.tuning }

// Player returns player n (1-based), or nil.
func (g *Game) Player(n int) *Player {
	if n < 1 || n > PlayerCount {
		return nil
	}
	return g.Players[n-1]
}

// Place teleports player n onto a walkable tile, cancelling any activity.
func (g *Game) Place(n int, pos TilePos, facing Facing) error {
	p := g.Player(n)
	if p == nil {
		return fmt.Errorf("no player %d", n)
	}
	if g.Map.Tile(pos.Col, pos.Row).Solid() {
		return fmt.Errorf("tile %d,%d is not walkable", pos.Col, pos.Row)
	}
	p.X = float64(pos.Col * TileSize)
	p.Y = float64(pos.Row * TileSize)
	p.Facing = facing
	p.Activity = nil
	return nil
}

// Step advances the simulation by delta. The phase order is fixed: clock,
// sleep barrier, timers, panel toggles, overlay, vitals, players, NPCs,
// achievements, camera.
func (g *Game) Step(delta time.Duration, in FrameInput) {
	if delta <= 0 {
		return
	}
	g.Frame++

	if !g.Sleep.Active() {
		g.Clock.Advance(delta)
	}
	started, completed := g.Sleep.update(delta, g.Players, &g.Clock, g.tuning)
	if started {
		g.Banner.Set("Sweet dreams...", msgLong)
		g.log.Info("sleep started", "time", g.Clock.Time)
	}
	if completed {
		g.Session.recordSleep()
		g.Banner.Set("Good morning!", msgLong)
		g.log.Info("sleep finished", "sleeps", g.Session.progress.Sleeps)
	}

	for _, p := range g.Players {
		p.Message.tick(delta)
	}
	g.Banner.tick(delta)

	g.togglePanels(in)
	modal := g.Overlay.Modal()
	g.updateOverlay(in)

	for _, p := range g.Players {
		p.tickVitals(delta, g.tuning)
	}

	if !modal && !g.Sleep.Active() {
		for i := range g.Players {
			g.updatePlayer(i, delta, in.Players[i])
		}
	}

	g.updateNPCs(delta)

	for _, a := range g.Session.evaluateAchievements() {
		g.Banner.Set("Achievement unlocked: "+a.Name, msgLong)
		g.log.Info("achievement unlocked", "id", string(a.ID), "name", a.Name)
	}

	g.Camera.follow(g.Players, g.Map, g.tuning.ViewWidth, g.tuning.ViewHeight)
}
