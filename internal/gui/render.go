package gui

import (
	"math"

	"github.com/appengine-ltd/tidewater/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	playerSize = 24
	ts         = game.TileSize
)

// viewScale fits the logical view into the window without distortion.
func viewScale(winW, winH int32, viewW, viewH float64) float32 {
	if viewW <= 0 || viewH <= 0 {
		return 1
	}
	return float32(math.Min(float64(winW)/viewW, float64(winH)/viewH))
}

func (a *App) camera() rl.Camera2D {
	t := a.g.Tuning()
	return rl.Camera2D{
		Target: rl.NewVector2(float32(a.g.Camera.X), float32(a.g.Camera.Y)),
		Zoom:   viewScale(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), t.ViewWidth, t.ViewHeight),
	}
}

func (a *App) draw() {
	rl.BeginMode2D(a.camera())
	a.drawTiles()
	a.drawNPCs()
	for _, p := range a.g.Players {
		a.drawPlayer(p)
	}
	rl.EndMode2D()

	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if d := a.g.Clock.Darkness(); d > 0 {
		rl.DrawRectangle(0, 0, w, h, rl.Fade(rl.NewColor(8, 10, 40, 255), float32(d)))
	}
	a.drawWorldText()
	a.drawHUD(w)
	a.drawBanner(w)
	a.drawPanels(w, h)
	a.drawOverlay(w, h)
	if s := a.g.Sleep; s.Active() {
		rl.DrawRectangle(0, 0, w, h, rl.Fade(rl.Black, float32(s.Alpha)))
		if s.Phase == game.SleepHold {
			drawTextCentered("Zzz...", w/2, h/2, typeScale.Title, AppTheme.TextPrimary)
		}
	}
	a.drawCommandBar(w, h)
}

func (a *App) drawTiles() {
	m := a.g.Map
	t := a.g.Tuning()
	col0 := max(0, int(a.g.Camera.X)/ts)
	row0 := max(0, int(a.g.Camera.Y)/ts)
	col1 := min(m.Cols()-1, int(a.g.Camera.X+t.ViewWidth)/ts+1)
	row1 := min(m.Rows()-1, int(a.g.Camera.Y+t.ViewHeight)/ts+1)
	shimmer := float32(0.5 + 0.5*math.Sin(a.g.Clock.Time*math.Pi*400))

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			tile := m.Tile(col, row)
			x, y := int32(col*ts), int32(row*ts)
			rl.DrawRectangle(x, y, ts, ts, tileColor(tile))
			switch tile {
			case game.TileWater:
				rl.DrawRectangle(x+6, y+10+int32(shimmer*4), 12, 2, rl.Fade(rl.White, 0.35))
			case game.TileTree:
				rl.DrawCircle(x+ts/2, y+ts/2, 13, rl.NewColor(0x1E, 0x44, 0x1A, 255))
			case game.TileBed:
				rl.DrawRectangle(x+4, y+4, ts-8, 10, rl.RayWhite)
			case game.TileRodShop:
				drawTextCentered("RODS", x+ts/2, y+ts/2-5, 10, rl.Black)
			case game.TileBaitShop:
				drawTextCentered("BAIT", x+ts/2, y+ts/2-5, 10, rl.White)
			case game.TileFurnace:
				rl.DrawRectangle(x+8, y+14, ts-16, 10, rl.Orange)
			default:
			}
		}
	}
}

func (a *App) drawNPCs() {
	fade := a.g.Tuning().NPCFade
	for _, n := range a.g.NPCs.NPCs {
		alpha := float32(n.Alpha(fade))
		body := rl.NewColor(0xB0, 0x8C, 0x5A, 255)
		if !n.Type.Friendly {
			body = rl.NewColor(0x50, 0x3C, 0x5A, 255)
		}
		x, y := int32(n.X), int32(n.Y)
		rl.DrawRectangle(x+4, y+8, playerSize-8, playerSize-8, rl.Fade(body, alpha))
		rl.DrawCircle(x+playerSize/2, y+6, 6, rl.Fade(rl.Beige, alpha))
	}
}

func (a *App) drawPlayer(p *game.Player) {
	pal := playerPalettes[p.Number-1]
	x, y := int32(p.X), int32(p.Y)
	bob := int32(0)
	if p.Moving && p.Frame%2 == 1 {
		bob = 1
	}
	rl.DrawRectangle(x+6, y+16, 5, 8-bob, pal.Legs)
	rl.DrawRectangle(x+13, y+16+bob, 5, 8-bob, pal.Legs)
	rl.DrawRectangle(x+4, y+8, 16, 10, pal.Body)
	rl.DrawCircle(x+12, y+6, 6, pal.Head)
	rl.DrawRectangle(x+6, y, 12, 3, pal.Hair)

	cx, cy := p.Center()
	dx, dy := facingVector(p.Facing)
	rl.DrawCircle(int32(cx+dx*10), int32(cy+dy*10), 2, rl.Black)

	if act := p.Activity; act != nil {
		tx := float32(act.TargetCol*ts + ts/2)
		ty := float32(act.TargetRow*ts + ts/2)
		if act.Kind == game.ActivityNetting {
			rl.DrawRectangleLinesEx(rl.NewRectangle(tx-10, ty-10, 20, 20), 1, rl.RayWhite)
		} else {
			rl.DrawLineEx(rl.NewVector2(float32(cx), float32(cy)-8), rl.NewVector2(tx, ty), 1, rl.RayWhite)
			rl.DrawCircle(int32(tx), int32(ty), 3, rl.Red)
		}
	}
}

func facingVector(f game.Facing) (float64, float64) {
	switch f {
	case game.FacingUp:
		return 0, -1
	case game.FacingLeft:
		return -1, 0
	case game.FacingRight:
		return 1, 0
	default:
		return 0, 1
	}
}

// worldToScreen maps a world pixel through the current camera.
func (a *App) worldToScreen(x, y float64) (int32, int32) {
	v := rl.GetWorldToScreen2D(rl.NewVector2(float32(x), float32(y)), a.camera())
	return int32(v.X), int32(v.Y)
}

// drawWorldText draws speech, bubbles and mini-game bars in screen space so
// text stays crisp at any zoom.
func (a *App) drawWorldText() {
	for _, n := range a.g.NPCs.NPCs {
		cx, cy := n.Center()
		sx, sy := a.worldToScreen(cx, cy-playerSize)
		alpha := float32(n.Alpha(a.g.Tuning().NPCFade))
		drawTextCentered(n.Type.Name, sx, sy-typeScale.Small, typeScale.Small, rl.Fade(AppTheme.TextPrimary, alpha))
		if r := n.Result; r != nil {
			lh := textLineHeight(typeScale.Small)
			for i, line := range r.Lines {
				drawTextCentered(line, sx, sy-typeScale.Small-lh*int32(3-i), typeScale.Small, rl.Fade(toneColor(r.Tone), alpha))
			}
		}
	}

	for _, p := range a.g.Players {
		cx, cy := p.Center()
		sx, sy := a.worldToScreen(cx, cy-playerSize)
		switch {
		case p.InBed:
			drawTextCentered("Zz", sx, sy-typeScale.Body, typeScale.Body, AppTheme.TextPrimary)
		case p.Activity != nil && p.Activity.State == game.StateCaught:
			drawTextCentered("!", sx, sy-typeScale.Title, typeScale.Title, AppTheme.Accent)
		case p.Activity != nil && p.Activity.State == game.StateMinigame:
			a.drawMinigame(p.Activity.Minigame, sx, sy)
		}
		if p.Message.Active() {
			drawTextCentered(p.Message.Text, sx, sy-typeScale.Body*3, typeScale.Body, AppTheme.TextPrimary)
		}
	}
}

func (a *App) drawMinigame(m game.Minigame, cx, y int32) {
	const w, h = 120, 12
	x := float32(cx - w/2)
	top := float32(y - 30)
	rl.DrawRectangleRec(rl.NewRectangle(x, top, w, h), rl.Fade(AppTheme.Background, 0.85))
	rl.DrawRectangleRec(rl.NewRectangle(x+float32(m.ZoneStart)*w, top, float32(m.ZoneEnd-m.ZoneStart)*w, h), rl.Fade(AppTheme.Good, 0.8))
	rl.DrawRectangleRec(rl.NewRectangle(x+float32(m.Marker)*w-1, top-2, 3, h+4), rl.RayWhite)
	switch m.Result {
	case game.MinigameSuccess:
		drawTextCentered("Caught!", cx, int32(top)-typeScale.Body, typeScale.Body, AppTheme.Good)
	case game.MinigameFail:
		drawTextCentered("Got away...", cx, int32(top)-typeScale.Body, typeScale.Body, AppTheme.Danger)
	case game.MinigamePending:
	}
}
