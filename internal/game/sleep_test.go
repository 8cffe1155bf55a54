package game

import (
	"testing"
	"time"
)

func bothInBed(t *testing.T, g *Game) {
	t.Helper()
	place(t, g, 1, 4, 2, FacingUp)
	place(t, g, 2, 3, 1, FacingRight)
	var in FrameInput
	in.Players[0].Act = true
	in.Players[1].Act = true
	g.Step(tick, in)
}

func TestSleepBarrierJumpsToDawnAndCountsOnce(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	g.Clock.Time = 0.7

	bothInBed(t, g)
	if !g.Player(1).InBed || !g.Player(2).InBed {
		t.Fatalf("expected both players in bed at night")
	}
	g.Step(tick, FrameInput{})
	if !g.Sleep.Active() {
		t.Fatalf("expected sleep cycle to start once both are in bed")
	}
	if g.Player(1).InBed || g.Player(2).InBed {
		t.Fatalf("expected in-bed flags to clear when the barrier fires")
	}

	runFor(g, 4*time.Second)
	if g.Sleep.Active() {
		t.Fatalf("expected cycle to finish, phase %s", g.Sleep.Phase)
	}
	if got := g.Session.Progress().Sleeps; got != 1 {
		t.Fatalf("expected exactly one sleep, got %d", got)
	}
	if g.Clock.Time < DawnTime || g.Clock.Time > DawnTime+0.01 {
		t.Fatalf("expected clock just past dawn, got %.4f", g.Clock.Time)
	}
}

func TestSleepNeedsBothPlayers(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	g.Clock.Time = 0.7
	place(t, g, 1, 4, 2, FacingUp)

	g.Step(tick, press(1, PlayerInput{Act: true}))
	runFor(g, 2*time.Second)
	if g.Sleep.Active() || g.Session.Progress().Sleeps != 0 {
		t.Fatalf("expected no sleep with one player in bed")
	}
	if !g.Player(1).InBed {
		t.Fatalf("expected player to stay in bed while waiting")
	}

	g.Step(tick, press(1, PlayerInput{Eat: true}))
	if g.Player(1).InBed {
		t.Fatalf("expected eat key to leave bed")
	}
}

func TestBedRejectedDuringDay(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	p := place(t, g, 1, 4, 2, FacingUp)

	g.Step(tick, press(1, PlayerInput{Act: true}))
	if p.InBed {
		t.Fatalf("expected bed to be refused during the day")
	}
	if p.Message.Text != "You can only sleep at night!" {
		t.Fatalf("expected night-only message, got %q", p.Message.Text)
	}
}

func TestClockFrozenDuringSleep(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	g.Clock.Time = 0.7
	bothInBed(t, g)
	g.Step(tick, FrameInput{})

	before := g.Clock.Time
	g.Step(500*time.Millisecond, FrameInput{})
	if g.Clock.Time != before {
		t.Fatalf("expected clock frozen during fade-out, %.4f -> %.4f", before, g.Clock.Time)
	}
}
