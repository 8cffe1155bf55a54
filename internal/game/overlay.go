package game

import "fmt"

type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayRodShop
	OverlayBaitShop
	OverlayGive
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayRodShop:
		return "rod shop"
	case OverlayBaitShop:
		return "bait shop"
	case OverlayGive:
		return "give gold"
	default:
		return "none"
	}
}

// Overlay is the single modal menu. Owner is the player index driving it.
type Overlay struct {
	Kind   OverlayKind
	Owner  int
	Cursor int
}

func (o Overlay) Modal() bool { return o.Kind != OverlayNone }

type entryAction int

const (
	actionBuyRod entryAction = iota
	actionBuyNet
	actionBuyBait
	actionSell
	actionGive
)

type MenuEntry struct {
	Label  string
	Cost   int
	Owned  bool
	action entryAction
	arg    int
}

// Panels are the non-modal info screens toggled from the keyboard.
type Panels struct {
	Index        bool
	Achievements bool
	Leaderboard  bool
}

func (g *Game) openShop(kind OverlayKind, owner int) {
	if g.Overlay.Modal() {
		return
	}
	g.Overlay = Overlay{Kind: kind, Owner: owner}
}

func (g *Game) openGive(owner int) {
	p, other := g.Players[owner], g.Players[1-owner]
	if p.distanceTo(other) > g.tuning.GiveRadius {
		p.say(fmt.Sprintf("Get closer to P%d to give gold", other.Number), msgShort)
		return
	}
	g.openShop(OverlayGive, owner)
}

// MenuEntries lists the rows of the open overlay for its owner.
func (g *Game) MenuEntries() []MenuEntry {
	if !g.Overlay.Modal() {
		return nil
	}
	p := g.Players[g.Overlay.Owner]
	var out []MenuEntry
	switch g.Overlay.Kind {
	case OverlayRodShop:
		for i, r := range rods {
			if i == 0 {
				continue
			}
			out = append(out, MenuEntry{Label: r.Name, Cost: r.Cost, Owned: i <= p.RodTier, action: actionBuyRod, arg: i})
		}
		for i, n := range nets {
			out = append(out, MenuEntry{Label: n.Name, Cost: n.Cost, Owned: i <= p.NetTier, action: actionBuyNet, arg: i})
		}
		out = append(out, MenuEntry{Label: "Sell catch", action: actionSell})
	case OverlayBaitShop:
		for i, b := range baits {
			if i == NoBait {
				continue
			}
			out = append(out, MenuEntry{
				Label:  fmt.Sprintf("%s x%d (have %d)", b.Name, b.Amount, p.BaitCounts[i]),
				Cost:   b.Cost,
				action: actionBuyBait,
				arg:    i,
			})
		}
	case OverlayGive:
		for _, amt := range []int{10, 50, 100} {
			out = append(out, MenuEntry{Label: fmt.Sprintf("Give %dg", amt), action: actionGive, arg: amt})
		}
		out = append(out, MenuEntry{Label: "Give all", action: actionGive, arg: GiveAll})
	case OverlayNone:
	}
	return out
}

func (g *Game) updateOverlay(in FrameInput) {
	if !g.Overlay.Modal() {
		return
	}
	owner := in.Players[g.Overlay.Owner]
	if in.Escape || owner.Eat {
		g.closeOverlay()
		return
	}
	entries := g.MenuEntries()
	if len(entries) == 0 {
		g.closeOverlay()
		return
	}
	switch {
	case owner.Up:
		g.Overlay.Cursor = (g.Overlay.Cursor - 1 + len(entries)) % len(entries)
	case owner.Down:
		g.Overlay.Cursor = (g.Overlay.Cursor + 1) % len(entries)
	}
	g.Overlay.Cursor = min(g.Overlay.Cursor, len(entries)-1)
	if owner.Act {
		g.selectEntry(entries[g.Overlay.Cursor])
	}
}

// SelectMenu runs the entry at index in the open overlay, as if its owner
// moved the cursor there and pressed act.
func (g *Game) SelectMenu(index int) (string, bool) {
	entries := g.MenuEntries()
	if index < 0 || index >= len(entries) {
		return "No such entry", false
	}
	g.Overlay.Cursor = index
	return g.selectEntry(entries[index])
}

func (g *Game) selectEntry(e MenuEntry) (string, bool) {
	p := g.Players[g.Overlay.Owner]
	var (
		msg string
		ok  bool
	)
	switch e.action {
	case actionBuyRod:
		msg, ok = p.BuyRod(e.arg)
	case actionBuyNet:
		msg, ok = p.BuyNet(e.arg)
	case actionBuyBait:
		msg, ok = p.BuyBait(e.arg)
	case actionSell:
		msg, ok = g.sellAll(p)
	case actionGive:
		msg, ok = giveGold(p, g.Players[1-g.Overlay.Owner], e.arg)
		if ok {
			g.closeOverlay()
		}
	}
	p.say(msg, msgNorm)
	if ok {
		g.log.Info("purchase",
			"player", p.Number,
			"entry", e.Label,
			"gold", p.Gold,
		)
	}
	return msg, ok
}

func (g *Game) closeOverlay() { g.Overlay = Overlay{} }

func (g *Game) togglePanels(in FrameInput) {
	if in.ToggleIndex {
		g.Panels.Index = !g.Panels.Index
	}
	if in.ToggleAchievements {
		g.Panels.Achievements = !g.Panels.Achievements
	}
	if in.ToggleLeaderboard {
		g.Panels.Leaderboard = !g.Panels.Leaderboard
	}
	if in.Escape && !g.Overlay.Modal() {
		g.Panels = Panels{}
	}
}
