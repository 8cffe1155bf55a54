package game

import "testing"

func TestRodShopBuyAndCloseWithoutEating(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	p := place(t, g, 1, 1, 2, FacingUp)
	p.Gold = 60
	p.Hunger = 50
	p.Inventory = Inventory{FishItem("Bass")}

	g.Step(tick, press(1, PlayerInput{Act: true}))
	if g.Overlay.Kind != OverlayRodShop || g.Overlay.Owner != 0 {
		t.Fatalf("expected P1 rod shop, got %+v", g.Overlay)
	}
	entries := g.MenuEntries()
	if entries[0].Label != "Iron Rod" || entries[len(entries)-1].Label != "Sell catch" {
		t.Fatalf("expected rods first and sell last, got %+v", entries)
	}

	g.Step(tick, press(1, PlayerInput{Act: true}))
	if p.RodTier != 1 || p.Gold != 10 {
		t.Fatalf("expected iron rod bought, tier=%d gold=%d", p.RodTier, p.Gold)
	}

	g.Step(tick, press(1, PlayerInput{Eat: true}))
	if g.Overlay.Modal() {
		t.Fatalf("expected eat key to close the shop")
	}
	if len(p.Inventory) != 1 || p.Hunger != 50 {
		t.Fatalf("expected closing key not to eat, inv=%+v hunger=%d", p.Inventory, p.Hunger)
	}
}

func TestShopBlocksMovementForBothPlayers(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	place(t, g, 1, 2, 2, FacingUp)
	g.Step(tick, press(1, PlayerInput{Act: true}))
	if g.Overlay.Kind != OverlayBaitShop {
		t.Fatalf("expected bait shop, got %s", g.Overlay.Kind)
	}

	p2 := g.Player(2)
	x := p2.X
	g.Step(tick, press(2, PlayerInput{DX: -1}))
	if p2.X != x {
		t.Fatalf("expected P2 frozen while a modal is open")
	}
}

func TestShopCursorWraps(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	place(t, g, 1, 2, 2, FacingUp)
	g.Step(tick, press(1, PlayerInput{Act: true}))

	g.Step(tick, press(1, PlayerInput{Up: true}))
	if want := len(g.MenuEntries()) - 1; g.Overlay.Cursor != want {
		t.Fatalf("expected cursor to wrap to %d, got %d", want, g.Overlay.Cursor)
	}
	g.Step(tick, press(1, PlayerInput{Down: true}))
	if g.Overlay.Cursor != 0 {
		t.Fatalf("expected cursor back at 0, got %d", g.Overlay.Cursor)
	}
}

func TestGiveOverlayNeedsPartnerNearby(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	a := place(t, g, 1, 2, 3, FacingDown)
	b := place(t, g, 2, 7, 3, FacingDown)
	a.Gold = 100

	g.Step(tick, press(1, PlayerInput{Menu: true}))
	if g.Overlay.Modal() {
		t.Fatalf("expected give menu refused at range")
	}

	place(t, g, 2, 3, 3, FacingDown)
	g.Step(tick, press(1, PlayerInput{Menu: true}))
	if g.Overlay.Kind != OverlayGive {
		t.Fatalf("expected give menu, got %s", g.Overlay.Kind)
	}
	g.Step(tick, press(1, PlayerInput{Down: true}))
	g.Step(tick, press(1, PlayerInput{Act: true}))
	if a.Gold != 50 || b.Gold != 50 {
		t.Fatalf("expected 50g moved, a=%d b=%d", a.Gold, b.Gold)
	}
	if g.Overlay.Modal() {
		t.Fatalf("expected give menu to close after a gift")
	}
}

func TestGiveMenuMovesWhatTheGiverHas(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	a := place(t, g, 1, 2, 3, FacingDown)
	b := place(t, g, 2, 3, 3, FacingDown)
	a.Gold = 30

	g.Step(tick, press(1, PlayerInput{Menu: true}))
	if g.Overlay.Kind != OverlayGive {
		t.Fatalf("expected give menu, got %s", g.Overlay.Kind)
	}
	msg, ok := g.SelectMenu(1)
	if !ok || a.Gold != 0 || b.Gold != 30 {
		t.Fatalf("expected 30g moved by the 50g entry, a=%d b=%d (%q)", a.Gold, b.Gold, msg)
	}
}

func TestPanelsToggleAndEscape(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	g.Step(tick, FrameInput{ToggleIndex: true, ToggleLeaderboard: true})
	if !g.Panels.Index || !g.Panels.Leaderboard || g.Panels.Achievements {
		t.Fatalf("expected index and leaderboard open, got %+v", g.Panels)
	}
	g.Step(tick, FrameInput{Escape: true})
	if g.Panels != (Panels{}) {
		t.Fatalf("expected escape to close panels, got %+v", g.Panels)
	}
}
