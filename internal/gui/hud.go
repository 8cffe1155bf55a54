package gui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/tidewater/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudWidth = 230

// hudLines is the text block under a player's vitals bars.
func hudLines(p *game.Player) []string {
	lines := []string{fmt.Sprintf("Gold %dg", p.Gold), p.Rod().Name}
	if net, ok := p.Net(); ok {
		lines = append(lines, net.Name)
	}
	bait := p.Bait().Name
	if p.BaitType != game.NoBait {
		bait = fmt.Sprintf("%s x%d", bait, p.BaitCounts[p.BaitType])
	}
	lines = append(lines, "Bait: "+bait, "Bag: "+p.Inventory.Summary())
	return lines
}

type menuRow struct {
	Left, Right string
	Selected    bool
	Disabled    bool
}

// menuRows renders the open overlay's entries for its owner.
func menuRows(g *game.Game) []menuRow {
	entries := g.MenuEntries()
	owner := g.Players[g.Overlay.Owner]
	rows := make([]menuRow, 0, len(entries))
	for i, e := range entries {
		row := menuRow{Left: e.Label, Selected: i == g.Overlay.Cursor}
		switch {
		case e.Owned:
			row.Right = "owned"
			row.Disabled = true
		case e.Cost > 0:
			row.Right = fmt.Sprintf("%dg", e.Cost)
			row.Disabled = e.Cost > owner.Gold
		}
		rows = append(rows, row)
	}
	return rows
}

func overlayTitle(o game.Overlay) string {
	return fmt.Sprintf("P%d - %s", o.Owner+1, strings.ToUpper(o.Kind.String()[:1])+o.Kind.String()[1:])
}

func (a *App) drawHUD(screenW int32) {
	for i, p := range a.g.Players {
		x := spaceS
		if i == 1 {
			x = float32(screenW) - hudWidth - spaceS
		}
		lines := hudLines(p)
		lh := textLineHeight(typeScale.Small)
		h := 70 + float32(lh)*float32(len(lines))
		rect := rl.NewRectangle(x, spaceS, hudWidth, h)
		title := fmt.Sprintf("P%d", p.Number)
		if a.auto[i] {
			title += " (auto: " + a.bots[i].Goal() + ")"
		}
		DrawPanel(rect, title)

		y := rect.Y + 36
		drawBar(x+spaceM, y, hudWidth-2*spaceM, 8, float64(p.HP)/float64(p.MaxHP), AppTheme.Danger)
		drawBar(x+spaceM, y+12, hudWidth-2*spaceM, 8, float64(p.Hunger)/float64(p.MaxHunger), AppTheme.Warning)
		ty := int32(y + 26)
		for _, l := range lines {
			drawText(l, int32(x+spaceM), ty, typeScale.Small, AppTheme.TextSecondary)
			ty += lh
		}
	}

	clock := fmt.Sprintf("%s  |  Fridge %d", a.g.Clock.TimeOfDay(), a.g.Session.FridgeCount())
	drawTextCentered(clock, screenW/2, int32(spaceS), typeScale.Body, AppTheme.TextPrimary)
}

func (a *App) drawBanner(screenW int32) {
	if !a.g.Banner.Active() {
		return
	}
	w := measureText(a.g.Banner.Text, typeScale.Header) + int32(2*spaceM)
	rect := rl.NewRectangle(float32(screenW/2-w/2), 40, float32(w), float32(typeScale.Header)+2*spaceS)
	DrawPanel(rect, "")
	drawTextCentered(a.g.Banner.Text, screenW/2, int32(rect.Y+spaceS), typeScale.Header, AppTheme.Accent)
}

// drawPanels renders the toggled info screens using the console's text
// views, stacked left to right.
func (a *App) drawPanels(screenW, screenH int32) {
	var blocks []string
	if a.g.Panels.Index {
		blocks = append(blocks, a.cfg.Console.FishIndex())
	}
	if a.g.Panels.Achievements {
		blocks = append(blocks, a.cfg.Console.AchievementList())
	}
	if a.g.Panels.Leaderboard {
		blocks = append(blocks, a.cfg.Console.Board())
	}
	if len(blocks) == 0 {
		return
	}
	gap := spaceS
	w := (float32(screenW) - gap*float32(len(blocks)+1)) / float32(len(blocks))
	top := float32(160)
	lh := textLineHeight(typeScale.Small)
	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		rect := rl.NewRectangle(gap+float32(i)*(w+gap), top, w, float32(screenH)-top-60)
		DrawPanel(rect, lines[0])
		y := int32(rect.Y + 44)
		for _, line := range lines[1:] {
			for _, wrapped := range wrapWords(line, int32(w-2*spaceM), func(s string) int32 { return measureText(s, typeScale.Small) }) {
				if y+lh > int32(rect.Y+rect.Height) {
					break
				}
				drawText(wrapped, int32(rect.X+spaceM), y, typeScale.Small, AppTheme.TextSecondary)
				y += lh
			}
		}
	}
}

func (a *App) drawOverlay(screenW, screenH int32) {
	if !a.g.Overlay.Modal() {
		return
	}
	rows := menuRows(a.g)
	w := float32(360)
	h := 60 + float32(len(rows))*(rowHeight+spaceXS) + 30
	rect := rl.NewRectangle(float32(screenW)/2-w/2, float32(screenH)/2-h/2, w, h)
	DrawPanel(rect, overlayTitle(a.g.Overlay))
	y := rect.Y + 50
	for _, r := range rows {
		DrawListItem(rl.NewRectangle(rect.X+spaceM, y, w-2*spaceM, rowHeight), r.Selected, r.Disabled, r.Left, r.Right)
		y += rowHeight + spaceXS
	}
	owner := a.g.Players[a.g.Overlay.Owner]
	hint := fmt.Sprintf("Gold %dg  |  up/down select, act buy, eat leave", owner.Gold)
	drawText(hint, int32(rect.X+spaceM), int32(y+4), typeScale.Small, AppTheme.TextMuted)
}

func (a *App) drawCommandBar(screenW, screenH int32) {
	lh := textLineHeight(typeScale.Small)
	y := screenH - 40 - lh*int32(len(a.output))
	for _, l := range a.output {
		drawText(l.text, int32(spaceM), y, typeScale.Small, AppTheme.TextSecondary)
		y += lh
	}
	if !a.barOpen {
		return
	}
	rect := rl.NewRectangle(spaceS, float32(screenH)-36, float32(screenW)-2*spaceS, 28)
	rl.DrawRectangleRec(rect, AppTheme.PanelRaised)
	rl.DrawRectangleLinesEx(rect, 1, AppTheme.Accent)
	drawText("> "+string(a.bar)+"_", int32(rect.X+spaceS), int32(rect.Y+6), typeScale.Body, AppTheme.TextPrimary)
}
