package game

import (
	"testing"
	"time"
)

func TestHungerRisesOnInterval(t *testing.T) {
	tuning := DefaultTuning()
	p := newPlayer(1, 0, 0, tuning)

	p.tickVitals(tuning.HungerInterval-time.Millisecond, tuning)
	if p.Hunger != 0 {
		t.Fatalf("expected no hunger before interval, got %d", p.Hunger)
	}
	p.tickVitals(time.Millisecond, tuning)
	if p.Hunger != tuning.HungerStep {
		t.Fatalf("expected hunger %d after one interval, got %d", tuning.HungerStep, p.Hunger)
	}
}

func TestStarvationFloorsAtOneHP(t *testing.T) {
	tuning := DefaultTuning()
	p := newPlayer(1, 0, 0, tuning)
	p.Hunger = p.MaxHunger - 1
	p.HP = 5

	p.tickVitals(tuning.HungerInterval, tuning)
	if p.Hunger != p.MaxHunger {
		t.Fatalf("expected hunger capped at max, got %d", p.Hunger)
	}
	if p.HP != 3 {
		t.Fatalf("expected starvation damage to hp 3, got %d", p.HP)
	}
	p.tickVitals(10*tuning.HungerInterval, tuning)
	if p.HP != 1 {
		t.Fatalf("expected hp floor of 1, got %d", p.HP)
	}
	if p.Hunger != p.MaxHunger {
		t.Fatalf("expected hunger to stay at max, got %d", p.Hunger)
	}
}

func TestVitalsRunWhileShopIsOpen(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	place(t, g, 1, 1, 2, FacingUp)
	g.Step(tick, press(1, PlayerInput{Act: true}))
	if g.Overlay.Kind != OverlayRodShop {
		t.Fatalf("expected rod shop open, got %s", g.Overlay.Kind)
	}

	runFor(g, g.tuning.HungerInterval)
	if g.Player(1).Hunger == 0 || g.Player(2).Hunger == 0 {
		t.Fatalf("expected hunger to accumulate under a modal overlay")
	}
}
