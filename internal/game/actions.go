package game

import (
	"fmt"
	"time"
)

// updatePlayer runs one player's input-driven frame: bed, eat, bait, the
// active activity, tile interactions and finally movement.
func (g *Game) updatePlayer(i int, dt time.Duration, in PlayerInput) {
	p := g.Players[i]
	other := g.Players[1-i]

	if p.InBed {
		p.Moving = false
		p.Frame = 0
		if in.Eat {
			p.InBed = false
			p.say("Got out of bed", msgShort)
		}
		return
	}

	if in.Eat {
		g.eat(p)
	}
	if in.Bait {
		p.cycleBait()
	}

	if p.Activity != nil {
		if in.wantsMove() && p.Activity.Cancelable() {
			p.Activity = nil
		} else {
			g.advanceActivity(p, dt, in.Act)
			p.Moving = false
			return
		}
	}

	if in.Net {
		g.throwNet(p)
		if p.Activity != nil {
			p.Moving = false
			return
		}
	}

	if in.Act && g.interact(p) {
		p.Moving = false
		return
	}

	if in.Menu {
		g.openGive(i)
		if g.Overlay.Modal() {
			return
		}
	}

	p.move(dt, in, g.tuning.MoveSpeed, g.Map, other)
}

func (g *Game) activityEnv(p *Player) activityEnv {
	net, _ := p.Net()
	return activityEnv{
		rng:    g.rng,
		night:  g.Clock.IsNight(),
		rod:    p.Rod(),
		net:    net,
		bait:   p.activeBait(),
		tuning: &g.tuning,
	}
}

func (g *Game) advanceActivity(p *Player, dt time.Duration, act bool) {
	before := p.Activity.State
	next, eff := p.Activity.Advance(dt, act, g.activityEnv(p))
	if next.State == StateCaught && before != StateCaught {
		p.say("Something's biting! Press act!", msgNorm)
	}
	if !eff.Done {
		p.Activity = &next
		return
	}
	p.Activity = nil
	g.applyActivityEffect(p, next, eff)
}

func (g *Game) applyActivityEffect(p *Player, a Activity, eff ActivityEffect) {
	if eff.ConsumeBait > NoBait {
		p.BaitCounts[eff.ConsumeBait]--
		if p.BaitCounts[p.BaitType] <= 0 {
			p.BaitType = NoBait
		}
	}
	if eff.Result == MinigameFail {
		p.say(fmt.Sprintf("The %s got away!", a.Catch), msgNorm)
		g.log.Debug("minigame failed", "player", p.Number, "fish", a.Catch)
		return
	}
	if !eff.Landed {
		return
	}
	it := eff.Item
	night := g.Clock.IsNight()
	p.Inventory.Push(it)
	g.Session.recordCatch(it, eff.Rare, night)
	switch it.Kind {
	case KindFish:
		p.Stats.FishCaught++
	case KindCrustacean:
		p.Stats.CrustaceansCaught++
	case KindJunk, KindTreasureChest, KindLoot:
	}
	if eff.Rare {
		p.say(fmt.Sprintf("RARE! Caught a %s!", it.Name), msgLong)
	} else {
		p.say(fmt.Sprintf("Caught a %s!", it.Name), msgNorm)
	}
	g.log.Debug("catch landed",
		"player", p.Number,
		"activity", a.Kind.String(),
		"item", it.Name,
		"rare", eff.Rare,
		"night", night,
	)
}

func (g *Game) throwNet(p *Player) {
	net, ok := p.Net()
	if !ok {
		p.say("You need a net! Buy one at the rod shop", msgShort)
		return
	}
	col, row, tile := p.FacingTile(g.Map)
	if tile != TileWater {
		p.say("Face the water to throw a net", msgShort)
		return
	}
	a := startNetting(col, row, net)
	p.Activity = &a
}

// interact handles the act key against the faced tile. It reports whether the
// key was consumed.
func (g *Game) interact(p *Player) bool {
	col, row, tile := p.FacingTile(g.Map)
	switch tile {
	case TileWater:
		a := startFishing(col, row, p.Rod())
		p.Activity = &a
	case TileBed:
		g.enterBed(p)
	case TileFridge:
		g.deposit(p)
	case TileTrash:
		g.discard(p)
	case TileRodShop:
		g.openShop(OverlayRodShop, p.Number-1)
	case TileBaitShop:
		g.openShop(OverlayBaitShop, p.Number-1)
	case TileFurnace:
		g.cook(p)
	default:
		return false
	}
	return true
}

func (g *Game) enterBed(p *Player) {
	if g.Sleep.Active() {
		p.say("Already sleeping...", msgShort)
		return
	}
	switch g.Clock.TimeOfDay() {
	case Night, Dusk:
		p.InBed = true
		p.say("In bed. Waiting for the other player... (eat to get up)", msgLong)
	case Dawn, Day:
		p.say("You can only sleep at night!", msgShort)
	}
}
