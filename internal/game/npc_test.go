package game

import (
	"testing"
	"time"
)

func npcType(t *testing.T, name string) NPCType {
	t.Helper()
	for _, typ := range npcTypes {
		if typ.Name == name {
			return typ
		}
	}
	t.Fatalf("unknown npc type %q", name)
	return NPCType{}
}

func dropNPC(g *Game, p *Player, typ NPCType) *NPC {
	npc := &NPC{X: p.X, Y: p.Y, Type: typ}
	g.NPCs.NPCs = append(g.NPCs.NPCs, npc)
	return npc
}

func TestThiefStealsBoundedCount(t *testing.T) {
	for draw, want := range []int{1, 2, 2} {
		g := newTestGame(t, &scriptedRoller{ints: []int{0, draw}})
		p := place(t, g, 1, 3, 4, FacingDown)
		p.Gold = 25
		p.Inventory = Inventory{FishItem("Bass"), JunkItem(), FishItem("Trout")}
		npc := dropNPC(g, p, npcType(t, "Bandit"))

		g.Step(tick, FrameInput{})
		if !npc.Triggered || npc.Result == nil {
			t.Fatalf("expected thief to trigger on contact")
		}
		fish := p.Inventory.Count(Item.TradeFish)
		if stolen := 2 - fish; stolen != want {
			t.Fatalf("draw %d: expected %d stolen, got %d", draw, want, stolen)
		}
		if len(p.Inventory) != 3-want {
			t.Fatalf("expected inventory to shrink by exactly %d, got %+v", want, p.Inventory)
		}
		if !p.Inventory.Has(func(it Item) bool { return it.Kind == KindJunk }) {
			t.Fatalf("expected junk to be left alone")
		}
		if p.Gold != 25 || p.Stats != (PlayerStats{}) {
			t.Fatalf("expected theft to leave gold and stats, got gold=%d stats=%+v", p.Gold, p.Stats)
		}
	}
}

func TestFriendlyWithoutFishWalksAway(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	p := place(t, g, 1, 3, 4, FacingDown)
	p.Inventory = Inventory{JunkItem(), CrustaceanItem("Crab")}
	npc := dropNPC(g, p, npcType(t, "Old Fisherman"))

	g.Step(tick, FrameInput{})
	if npc.Result == nil || npc.Result.Lines[1] != "You have no fish to trade..." {
		t.Fatalf("expected no-fish dialogue, got %+v", npc.Result)
	}
	if len(p.Inventory) != 2 || p.Gold != 0 || p.Stats.NPCTrades != 0 {
		t.Fatalf("expected no trade, got inv=%+v gold=%d", p.Inventory, p.Gold)
	}
}

func TestFriendlyTradeAppliesReward(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{floats: []float64{0}})
	p := place(t, g, 1, 3, 4, FacingDown)
	p.Inventory = Inventory{FishItem("Bluegill")}
	dropNPC(g, p, npcType(t, "Old Fisherman"))

	g.Step(tick, FrameInput{})
	if len(p.Inventory) != 0 {
		t.Fatalf("expected fish handed over, got %+v", p.Inventory)
	}
	if p.Gold != 10 || p.Stats.GoldEarned != 10 || p.Stats.NPCTrades != 1 {
		t.Fatalf("expected +10 gold trade, got gold=%d stats=%+v", p.Gold, p.Stats)
	}
	prog := g.Session.Progress()
	if prog.Trades != 1 || prog.GoldEarned != 10 {
		t.Fatalf("expected shared trade counters, got %+v", prog)
	}
}

func TestGoldenRodRewardMaxesRod(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	p := g.Player(1)
	g.applyReward(Reward{Kind: RewardGoldenRod, Text: "Golden Fishing Rod!!"}, p)
	if p.RodTier != len(rods)-1 {
		t.Fatalf("expected golden rod tier, got %d", p.RodTier)
	}
}

func TestIdleNPCLeavesAndIsPruned(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	npc := &NPC{X: 1 * TileSize, Y: 4 * TileSize, Type: npcType(t, "Raccoon")}
	place(t, g, 1, 8, 2, FacingDown)
	place(t, g, 2, 8, 4, FacingDown)
	g.NPCs.NPCs = []*NPC{npc}

	g.Step(g.tuning.NPCIdleTimeout, FrameInput{})
	if !npc.Triggered || npc.Result != nil {
		t.Fatalf("expected idle npc to depart without an encounter")
	}
	runFor(g, g.tuning.NPCFade+100*time.Millisecond)
	if len(g.NPCs.NPCs) != 0 {
		t.Fatalf("expected faded npc to be pruned, %d left", len(g.NPCs.NPCs))
	}
}

func TestSpawnRespectsDistanceBand(t *testing.T) {
	g := newTestGame(t, NewRoller(3))
	for i := 0; i < 200; i++ {
		npc := g.spawnNPC()
		if npc == nil {
			continue
		}
		tile := g.Map.Tile(int(npc.X)/TileSize, int(npc.Y)/TileSize)
		if !tile.spawnable() {
			t.Fatalf("expected npc on grass or path, got tile %d", tile)
		}
		cx, cy := npc.X+TileSize/2, npc.Y+TileSize/2
		for _, p := range g.Players {
			d := abs(cx-p.X) + abs(cy-p.Y)
			if d < float64(TileSize*g.tuning.NPCMinTiles) {
				t.Fatalf("expected npc at least %d tiles from P%d, got %.0fpx", g.tuning.NPCMinTiles, p.Number, d)
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
