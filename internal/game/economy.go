package game

import "fmt"

func (g *Game) eat(p *Player) {
	if i := p.Inventory.Index(func(it Item) bool { return it.Kind == KindTreasureChest }); i >= 0 {
		p.Inventory.Remove(i)
		loot := pickTreasure(g.rng)
		p.Inventory.Push(LootItem(loot))
		g.Session.recordChest()
		p.say(fmt.Sprintf("Opened chest: %s!", loot.Name), msgLong)
		g.log.Debug("chest opened", "player", p.Number, "loot", loot.Name)
		return
	}

	i := p.Inventory.Index(func(it Item) bool { return it.Edible() && it.Cooked })
	if i < 0 {
		i = p.Inventory.Index(Item.Healing)
	}
	if i < 0 {
		i = p.Inventory.Index(func(it Item) bool { return it.Edible() && !it.Cooked })
	}
	if i < 0 {
		switch {
		case p.Inventory.Has(Item.Curio):
			curio := p.Inventory[p.Inventory.Index(Item.Curio)]
			p.say(curio.Name+" - not edible", msgShort)
		case p.Inventory.Has(func(it Item) bool { return it.Kind == KindJunk }):
			p.say("Can't eat that!", msgShort)
		default:
			p.say("Nothing to eat!", msgShort)
		}
		return
	}

	it := p.Inventory.Remove(i)
	p.Stats.Eaten++
	if it.Healing() {
		before := p.HP
		p.HP = min(p.MaxHP, p.HP+it.Heal)
		p.say(fmt.Sprintf("Used %s! +%dHP", it.Name, p.HP-before), msgNorm)
		return
	}
	feed := g.tuning.RawFeed
	if it.Cooked {
		feed = g.tuning.CookedFeed
	}
	before := p.Hunger
	p.Hunger = max(0, p.Hunger-feed)
	if it.Cooked {
		p.say(fmt.Sprintf("Ate %s! -%d Hunger", it.DisplayName(), before-p.Hunger), msgNorm)
	} else {
		p.say(fmt.Sprintf("Ate Raw %s... -%d Hunger", it.Name, before-p.Hunger), msgNorm)
	}
}

// cycleBait moves to the next bait type with stock, wrapping through No Bait.
func (p *Player) cycleBait() {
	next := (p.BaitType + 1) % len(baits)
	for next != NoBait && p.BaitCounts[next] <= 0 {
		next = (next + 1) % len(baits)
	}
	p.BaitType = next
	if next == NoBait {
		p.say("Bait: "+baits[next].Name, msgShort)
		return
	}
	p.say(fmt.Sprintf("Bait: %s (%d left)", baits[next].Name, p.BaitCounts[next]), msgShort)
}

func (g *Game) cook(p *Player) {
	i := p.Inventory.Index(Item.Cookable)
	if i < 0 {
		if p.Inventory.Has(func(it Item) bool { return it.Cooked }) {
			g.Banner.Set("All fish already cooked!", msgShort)
		} else {
			g.Banner.Set("No fish to cook!", msgShort)
		}
		return
	}
	p.Inventory[i].Cooked = true
	p.Stats.Cooked++
	g.Session.recordCook()
	g.Banner.Set(fmt.Sprintf("Cooked %s!", p.Inventory[i].Name), msgNorm)
}

func (g *Game) deposit(p *Player) {
	n := len(p.Inventory)
	if n == 0 {
		g.Banner.Set(fmt.Sprintf("Fridge: %d items stored", g.Session.FridgeCount()), msgNorm)
		return
	}
	g.Session.deposit(p.Inventory)
	p.Inventory = nil
	g.Banner.Set(fmt.Sprintf("Stored %d items! (%d total)", n, g.Session.FridgeCount()), msgNorm)
}

func (g *Game) discard(p *Player) {
	i := p.Inventory.Index(func(it Item) bool { return it.Kind == KindJunk })
	if i < 0 {
		i = len(p.Inventory) - 1
	}
	if i < 0 {
		g.Banner.Set("Nothing to throw away!", msgShort)
		return
	}
	it := p.Inventory.Remove(i)
	g.Banner.Set(fmt.Sprintf("Threw away %s!", it.DisplayName()), msgNorm)
}

// BuyRod purchases rod tier. Tiers at or below the owned rod are rejected so
// the rod never downgrades.
func (p *Player) BuyRod(tier int) (string, bool) {
	if tier < 0 || tier >= len(rods) {
		return "No such rod", false
	}
	rod := rods[tier]
	if tier <= p.RodTier {
		return fmt.Sprintf("Already own %s or better", rod.Name), false
	}
	if p.Gold < rod.Cost {
		return fmt.Sprintf("Need %dg for %s", rod.Cost, rod.Name), false
	}
	p.Gold -= rod.Cost
	p.RodTier = tier
	return fmt.Sprintf("Bought %s!", rod.Name), true
}

func (p *Player) BuyNet(tier int) (string, bool) {
	if tier < 0 || tier >= len(nets) {
		return "No such net", false
	}
	net := nets[tier]
	if tier <= p.NetTier {
		return fmt.Sprintf("Already own %s or better", net.Name), false
	}
	if p.Gold < net.Cost {
		return fmt.Sprintf("Need %dg for %s", net.Cost, net.Name), false
	}
	p.Gold -= net.Cost
	p.NetTier = tier
	return fmt.Sprintf("Bought %s!", net.Name), true
}

// BuyBait adds one pack of bait and equips it when nothing is equipped.
func (p *Player) BuyBait(kind int) (string, bool) {
	if kind <= NoBait || kind >= len(baits) {
		return "No such bait", false
	}
	b := baits[kind]
	if p.Gold < b.Cost {
		return fmt.Sprintf("Need %dg for %s", b.Cost, b.Name), false
	}
	p.Gold -= b.Cost
	p.BaitCounts[kind] += b.Amount
	p.BaitType = kind
	return fmt.Sprintf("Bought %d %s! (%d owned)", b.Amount, b.Name, p.BaitCounts[kind]), true
}

// sellAll sells every priced item and returns the proceeds.
func (g *Game) sellAll(p *Player) (string, bool) {
	var kept Inventory
	total, sold := 0, 0
	for _, it := range p.Inventory {
		price, ok := SellPrice(it)
		if !ok {
			kept = append(kept, it)
			continue
		}
		total += price
		sold++
	}
	if sold == 0 {
		return "Nothing to sell", false
	}
	p.Inventory = kept
	p.Gold += total
	p.Stats.GoldEarned += total
	g.Session.recordGold(total)
	return fmt.Sprintf("Sold %d items for %dg", sold, total), true
}

// GiveAll is the amount sentinel meaning every coin the giver holds.
const GiveAll = -1

func giveGold(from, to *Player, amount int) (string, bool) {
	if amount == GiveAll {
		amount = from.Gold
	}
	amount = min(amount, from.Gold)
	if amount <= 0 {
		return "No gold to give", false
	}
	from.Gold -= amount
	to.Gold += amount
	return fmt.Sprintf("Gave %dg to P%d", amount, to.Number), true
}
