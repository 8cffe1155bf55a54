package game

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type NPCType struct {
	Name      string
	Friendly  bool
	Weight    float64
	BigReward bool
	Dialogue  []string
}

type RewardKind int

const (
	RewardGold RewardKind = iota
	RewardHeal
	RewardFish
	RewardGoldenRod
)

type Reward struct {
	Kind   RewardKind
	Amount int
	Fish   string
	Weight float64
	Text   string
}

var npcTypes = []NPCType{
	{Name: "Old Fisherman", Friendly: true, Weight: 25, Dialogue: []string{
		"Howdy! Got any fish?", "I'll trade ya for that fish!", "Nice catch! Here's something for ya.",
	}},
	{Name: "Hungry Traveler", Friendly: true, Weight: 20, Dialogue: []string{
		"I'm so hungry... got a fish?", "Please, any fish will do!", "You're a lifesaver!",
	}},
	{Name: "Fish Collector", Friendly: true, Weight: 15, Dialogue: []string{
		"I collect rare fish!", "Ooh, what do you have?", "Let me see your catch!",
	}},
	{Name: "Mysterious Merchant", Friendly: true, Weight: 5, BigReward: true, Dialogue: []string{
		"I sense great fortune...", "The fish gods smile upon you!", "A rare trade, just for you...",
	}},
	{Name: "Sneaky Cat", Weight: 15, Dialogue: []string{
		"Meow! *snatches fish*", "Hiss! Mine now!", "*steals your fish and runs*",
	}},
	{Name: "Bandit", Weight: 12, Dialogue: []string{
		"Hand over the fish!", "Your fish or your life!", "Yoink! Thanks, sucker!",
	}},
	{Name: "Raccoon", Weight: 8, Dialogue: []string{
		"*rummages through your bag*", "Chitter chitter! *steals*", "*grabs fish and waddles away*",
	}},
}

var npcRewards = []Reward{
	{Kind: RewardGold, Amount: 10, Weight: 30, Text: "+{n} gold!"},
	{Kind: RewardGold, Amount: 25, Weight: 20, Text: "+{n} gold!"},
	{Kind: RewardGold, Amount: 50, Weight: 10, Text: "+{n} gold! Generous!"},
	{Kind: RewardGold, Amount: 100, Weight: 3, Text: "+{n} gold!! Jackpot!"},
	{Kind: RewardHeal, Amount: 40, Weight: 15, Text: "Healed +{n}HP!"},
	{Kind: RewardFish, Fish: "Salmon", Weight: 10, Text: "Gave you a Salmon!"},
	{Kind: RewardFish, Fish: "Catfish", Weight: 7, Text: "Gave you a Catfish!"},
}

var npcBigRewards = []Reward{
	{Kind: RewardGold, Amount: 200, Weight: 20, Text: "+{n} gold!! Amazing!"},
	{Kind: RewardGoldenRod, Weight: 15, Text: "Golden Fishing Rod!!"},
	{Kind: RewardFish, Fish: TreasureChestName, Weight: 10, Text: "Gave you a Treasure Chest!"},
	{Kind: RewardHeal, Amount: 100, Weight: 15, Text: "Full heal! +{n}HP!"},
	{Kind: RewardGold, Amount: 500, Weight: 5, Text: "+{n} gold!!! LEGENDARY!"},
}

func NPCTypes() []NPCType { return append([]NPCType(nil), npcTypes...) }

type Tone int

const (
	ToneGood Tone = iota
	ToneBig
	ToneNeutral
	ToneBad
	ToneWarn
)

// EncounterResult is the speech bubble left behind by a triggered NPC.
type EncounterResult struct {
	Lines     [3]string
	Tone      Tone
	Remaining time.Duration
}

type NPC struct {
	ID        uuid.UUID
	X, Y      float64
	Type      NPCType
	Triggered bool
	Result    *EncounterResult
	Fade      time.Duration
	Age       time.Duration
	departing bool
}

func (n *NPC) Center() (float64, float64) {
	return n.X + playerSize/2, n.Y + playerSize/2
}

// Alpha is the draw opacity while fading out.
func (n *NPC) Alpha(fade time.Duration) float64 {
	if n.Fade <= 0 || fade <= 0 {
		return 1
	}
	return max(0, 1-float64(n.Fade)/float64(fade))
}

type NPCManager struct {
	NPCs       []*NPC
	spawnTimer time.Duration
}

func (g *Game) updateNPCs(dt time.Duration) {
	m := &g.NPCs
	t := g.tuning
	m.spawnTimer += dt
	if m.spawnTimer >= t.NPCSpawnInterval && len(m.NPCs) < t.NPCMax {
		m.spawnTimer = 0
		if npc := g.spawnNPC(); npc != nil {
			m.NPCs = append(m.NPCs, npc)
			g.log.Debug("npc spawned", "id", npc.ID.String(), "type", npc.Type.Name)
		}
	}

	for _, npc := range m.NPCs {
		npc.Age += dt
		if npc.Triggered {
			switch {
			case npc.departing:
				npc.Fade += dt
			case npc.Result != nil:
				npc.Result.Remaining -= dt
				if npc.Result.Remaining <= 0 {
					npc.Fade += dt
				}
			}
			continue
		}
		if t.NPCIdleTimeout > 0 && npc.Age >= t.NPCIdleTimeout {
			npc.Triggered = true
			npc.departing = true
			g.log.Debug("npc left unmet", "id", npc.ID.String(), "type", npc.Type.Name)
			continue
		}
		nx, ny := npc.Center()
		for _, p := range g.Players {
			px, py := p.Center()
			if math.Hypot(px-nx, py-ny) < t.NPCTriggerRadius {
				g.encounter(npc, p)
				break
			}
		}
	}

	kept := m.NPCs[:0]
	for _, npc := range m.NPCs {
		if npc.Fade < t.NPCFade {
			kept = append(kept, npc)
		}
	}
	clear(m.NPCs[len(kept):])
	m.NPCs = kept
}

// spawnNPC looks for a grass or path tile within walking range of at least
// one player but not right on top of either.
func (g *Game) spawnNPC() *NPC {
	t := g.tuning
	for attempt := 0; attempt < t.NPCSpawnAttempts; attempt++ {
		col := g.rng.IntN(g.Map.Cols())
		row := g.rng.IntN(g.Map.Rows())
		if !g.Map.Tile(col, row).spawnable() {
			continue
		}
		wx := float64(col*TileSize + TileSize/2)
		wy := float64(row*TileSize + TileSize/2)
		near, tooClose := false, false
		for _, p := range g.Players {
			d := math.Abs(wx-p.X) + math.Abs(wy-p.Y)
			if d < float64(TileSize*t.NPCMinTiles) {
				tooClose = true
			}
			if d <= float64(TileSize*t.NPCMaxTiles) {
				near = true
			}
		}
		if tooClose || !near {
			continue
		}
		typ := PickWeighted(g.rng, weightedNPCTypes())
		return &NPC{
			ID:   uuid.New(),
			X:    float64(col * TileSize),
			Y:    float64(row * TileSize),
			Type: typ,
		}
	}
	return nil
}

func weightedNPCTypes() []Weighted[NPCType] {
	out := make([]Weighted[NPCType], len(npcTypes))
	for i, typ := range npcTypes {
		out[i] = Weighted[NPCType]{Weight: typ.Weight, Value: typ}
	}
	return out
}

func weightedRewards(pool []Reward) []Weighted[Reward] {
	out := make([]Weighted[Reward], len(pool))
	for i, r := range pool {
		out[i] = Weighted[Reward]{Weight: r.Weight, Value: r}
	}
	return out
}

func (g *Game) encounter(npc *NPC, p *Player) {
	npc.Triggered = true
	typ := npc.Type
	line := typ.Dialogue[g.rng.IntN(len(typ.Dialogue))]
	if typ.Friendly {
		npc.Result = g.trade(typ, line, p)
	} else {
		npc.Result = g.steal(typ, line, p)
	}
	g.log.Debug("npc encounter",
		"id", npc.ID.String(),
		"type", typ.Name,
		"player", p.Number,
		"outcome", npc.Result.Lines[1],
	)
}

func (g *Game) trade(typ NPCType, line string, p *Player) *EncounterResult {
	i := p.Inventory.Index(Item.TradeFish)
	if i < 0 {
		return &EncounterResult{
			Lines:     [3]string{typ.Name + `: "Got any fish?"`, "You have no fish to trade...", "*walks away disappointed*"},
			Tone:      ToneNeutral,
			Remaining: 2500 * time.Millisecond,
		}
	}
	fish := p.Inventory.Remove(i)
	pool := npcRewards
	if typ.BigReward {
		pool = npcBigRewards
	}
	reward := PickWeighted(g.rng, weightedRewards(pool))
	text := g.applyReward(reward, p)
	p.Stats.NPCTrades++
	g.Session.recordTrade()

	tone := ToneGood
	if typ.BigReward {
		tone = ToneBig
	}
	return &EncounterResult{
		Lines:     [3]string{fmt.Sprintf("%s: %q", typ.Name, line), "Took your " + fish.DisplayName(), text},
		Tone:      tone,
		Remaining: 3500 * time.Millisecond,
	}
}

func (g *Game) applyReward(r Reward, p *Player) string {
	switch r.Kind {
	case RewardGold:
		p.Gold += r.Amount
		p.Stats.GoldEarned += r.Amount
		g.Session.recordGold(r.Amount)
		return strings.ReplaceAll(r.Text, "{n}", fmt.Sprint(r.Amount))
	case RewardHeal:
		before := p.HP
		p.HP = min(p.MaxHP, p.HP+r.Amount)
		return strings.ReplaceAll(r.Text, "{n}", fmt.Sprint(p.HP-before))
	case RewardFish:
		p.Inventory.Push(itemForCatch(r.Fish))
		return r.Text
	case RewardGoldenRod:
		p.RodTier = len(rods) - 1
		return r.Text
	default:
		return r.Text
	}
}

func (g *Game) steal(typ NPCType, line string, p *Player) *EncounterResult {
	available := p.Inventory.Count(Item.TradeFish)
	if available == 0 {
		return &EncounterResult{
			Lines:     [3]string{fmt.Sprintf("%s: %q", typ.Name, line), "...but you have nothing to steal!", "*leaves empty-handed*"},
			Tone:      ToneWarn,
			Remaining: 2500 * time.Millisecond,
		}
	}
	n := min(available, 1+g.rng.IntN(3))
	names := make([]string, 0, n)
	for range n {
		it := p.Inventory.Remove(p.Inventory.Index(Item.TradeFish))
		names = append(names, it.Name)
	}
	return &EncounterResult{
		Lines:     [3]string{fmt.Sprintf("%s: %q", typ.Name, line), fmt.Sprintf("Stole %d fish from you!", n), strings.Join(names, ", ")},
		Tone:      ToneBad,
		Remaining: 3 * time.Second,
	}
}
