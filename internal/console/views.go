package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/appengine-ltd/tidewater/internal/game"
	"github.com/appengine-ltd/tidewater/internal/world"
)

// clockLine renders worldTime on a 24h dial where dawn starts at 06:00.
func clockLine(c game.Clock) string {
	minutes := int(math.Mod(c.Time*24*60+6*60, 24*60))
	return fmt.Sprintf("%02d:%02d (%s)", minutes/60, minutes%60, c.TimeOfDay())
}

func describePlayer(g *game.Game, p *game.Player) string {
	col, row := tileOf(p)
	var b strings.Builder
	fmt.Fprintf(&b, "at %d,%d facing %s | HP %d/%d hunger %d/%d | %dg | %s",
		col, row, p.Facing, p.HP, p.MaxHP, p.Hunger, p.MaxHunger, p.Gold, p.Rod().Name)
	if net, ok := p.Net(); ok {
		fmt.Fprintf(&b, ", %s", net.Name)
	}
	if p.BaitType != game.NoBait {
		fmt.Fprintf(&b, ", %s x%d", p.Bait().Name, p.BaitCounts[p.BaitType])
	}
	fmt.Fprintf(&b, " | bag %s", p.Inventory.Summary())
	switch {
	case p.InBed:
		b.WriteString(" | in bed")
	case p.Activity != nil:
		fmt.Fprintf(&b, " | %s: %s", p.Activity.Kind, p.Activity.State)
	}
	if g.Overlay.Modal() && g.Players[g.Overlay.Owner] == p {
		fmt.Fprintf(&b, " | %s open", g.Overlay.Kind)
	}
	return b.String()
}

// Status is the multi-line summary printed by the status command.
func (c *Console) Status() string {
	g := c.g
	var b strings.Builder
	fmt.Fprintf(&b, "%s | fridge %d | travellers %d", clockLine(g.Clock), g.Session.FridgeCount(), len(g.NPCs.NPCs))
	if g.Sleep.Active() {
		fmt.Fprintf(&b, " | sleeping (%s)", g.Sleep.Phase)
	}
	if g.Banner.Active() {
		fmt.Fprintf(&b, " | %s", g.Banner.Text)
	}
	for _, p := range g.Players {
		fmt.Fprintf(&b, "\nP%d %s", p.Number, describePlayer(g, p))
		if p.Message.Active() {
			fmt.Fprintf(&b, " | %q", p.Message.Text)
		}
	}
	for _, npc := range g.NPCs.NPCs {
		x, y := npc.Center()
		fmt.Fprintf(&b, "\n  %s at %d,%d", npc.Type.Name, int(x)/game.TileSize, int(y)/game.TileSize)
		if npc.Result != nil {
			fmt.Fprintf(&b, ": %s", strings.Join(npc.Result.Lines[:], " / "))
		}
	}
	return b.String()
}

// FishIndex lists every species with its shared catch count; species
// nobody has landed yet show as ???.
func (c *Console) FishIndex() string {
	index := c.g.Session.FishIndex()
	species := game.IndexSpecies()
	lines := make([]string, 0, len(species)+1)
	found := 0
	for _, name := range species {
		n := index[name]
		if n == 0 {
			lines = append(lines, "  ???")
			continue
		}
		found++
		lines = append(lines, fmt.Sprintf("  %-16s x%d", name, n))
	}
	header := fmt.Sprintf("Fish index %d/%d", found, len(species))
	return header + "\n" + strings.Join(lines, "\n")
}

func (c *Console) AchievementList() string {
	s := c.g.Session
	progress := s.Progress()
	lines := make([]string, 0, 8)
	done := 0
	for _, a := range game.Achievements() {
		mark := " "
		if s.Unlocked(a.ID) {
			mark = "x"
			done++
		}
		lines = append(lines, fmt.Sprintf("  [%s] %s - %s (%d/%d)", mark, a.Name, a.Description, min(a.Progress(progress), a.Goal), a.Goal))
	}
	return fmt.Sprintf("Achievements %d/%d\n%s", done, len(lines), strings.Join(lines, "\n"))
}

func (c *Console) Board() string {
	var b strings.Builder
	b.WriteString("Leaderboard")
	for i, st := range c.g.Leaderboard() {
		s := st.Stats
		fmt.Fprintf(&b, "\n  %d. P%d %d pts (fish %d, crustaceans %d, gold %d, trades %d, cooked %d, eaten %d)",
			i+1, st.Player, st.Score, s.FishCaught, s.CrustaceansCaught, s.GoldEarned, s.NPCTrades, s.Cooked, s.Eaten)
	}
	return b.String()
}

// LocalMap draws the tiles within radius of player n. Players show as their
// number and travellers as N.
func (c *Console) LocalMap(n, radius int) string {
	g := c.g
	col0, row0 := tileOf(g.Player(n))
	marks := map[[2]int]rune{}
	for _, npc := range g.NPCs.NPCs {
		x, y := npc.Center()
		marks[[2]int{int(x) / game.TileSize, int(y) / game.TileSize}] = 'N'
	}
	for _, p := range g.Players {
		col, row := tileOf(p)
		marks[[2]int{col, row}] = rune('0' + p.Number)
	}
	var b strings.Builder
	for row := row0 - radius; row <= row0+radius; row++ {
		if row < 0 || row >= g.Map.Rows() {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		for col := col0 - radius; col <= col0+radius; col++ {
			if col < 0 || col >= g.Map.Cols() {
				continue
			}
			if r, ok := marks[[2]int{col, row}]; ok {
				b.WriteRune(r)
				continue
			}
			b.WriteRune(world.Glyph(g.Map.Tile(col, row)))
		}
	}
	return b.String()
}
