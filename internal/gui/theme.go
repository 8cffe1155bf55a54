package gui

import (
	"github.com/appengine-ltd/tidewater/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	Divider       rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Good          rl.Color
	Warning       rl.Color
	Danger        rl.Color
}

const (
	spaceXS = float32(6)
	spaceS  = float32(10)
	spaceM  = float32(14)

	cornerRadius   = float32(0.08)
	cornerSegments = int32(8)
	rowHeight      = float32(28)
)

var AppTheme = Theme{
	Background:    rl.NewColor(0x14, 0x1A, 0x1F, 255),
	Panel:         rl.NewColor(0x1C, 0x23, 0x29, 235),
	PanelRaised:   rl.NewColor(0x21, 0x2A, 0x31, 245),
	Border:        rl.NewColor(0x2E, 0x3A, 0x40, 255),
	Divider:       rl.NewColor(0x26, 0x30, 0x38, 255),
	TextPrimary:   rl.NewColor(0xE8, 0xE2, 0xD8, 255),
	TextSecondary: rl.NewColor(0xA6, 0xAD, 0xB1, 255),
	TextMuted:     rl.NewColor(0x7D, 0x85, 0x8A, 255),
	Accent:        rl.NewColor(0xD4, 0x6A, 0x1E, 255),
	Good:          rl.NewColor(0x6C, 0xC2, 0x6A, 255),
	Warning:       rl.NewColor(0xC1, 0x8B, 0x2F, 255),
	Danger:        rl.NewColor(0xB8, 0x4A, 0x3A, 255),
}

var tileColors = map[game.Tile]rl.Color{
	game.TileGrass:     rl.NewColor(0x5A, 0x9E, 0x4B, 255),
	game.TileWall:      rl.NewColor(0x55, 0x55, 0x5D, 255),
	game.TileWater:     rl.NewColor(0x2E, 0x6F, 0xB5, 255),
	game.TilePath:      rl.NewColor(0xC9, 0xA8, 0x6A, 255),
	game.TileTree:      rl.NewColor(0x2D, 0x5A, 0x27, 255),
	game.TileHouseWall: rl.NewColor(0x8B, 0x5E, 0x3C, 255),
	game.TileDoor:      rl.NewColor(0x6B, 0x42, 0x26, 255),
	game.TileFloor:     rl.NewColor(0xB8, 0x94, 0x6A, 255),
	game.TileFurniture: rl.NewColor(0x7A, 0x55, 0x30, 255),
	game.TileBed:       rl.NewColor(0xC0, 0x4B, 0x55, 255),
	game.TileFridge:    rl.NewColor(0xDD, 0xE6, 0xEE, 255),
	game.TileFurnace:   rl.NewColor(0xB2, 0x4A, 0x1E, 255),
	game.TileTrash:     rl.NewColor(0x4E, 0x56, 0x4F, 255),
	game.TileRodShop:   rl.NewColor(0xE0, 0xA8, 0x30, 255),
	game.TileBaitShop:  rl.NewColor(0x9B, 0x59, 0xB6, 255),
}

func tileColor(t game.Tile) rl.Color {
	if c, ok := tileColors[t]; ok {
		return c
	}
	return rl.Magenta
}

type playerPalette struct {
	Body, Head, Hair, Legs rl.Color
}

// P1 is warm, P2 is cool.
var playerPalettes = [game.PlayerCount]playerPalette{
	{
		Body: rl.NewColor(0xE8, 0xC1, 0x70, 255),
		Head: rl.NewColor(0xF5, 0xD6, 0xA8, 255),
		Hair: rl.NewColor(0x5A, 0x3A, 0x1A, 255),
		Legs: rl.NewColor(0x4A, 0x6F, 0xA5, 255),
	},
	{
		Body: rl.NewColor(0x70, 0xB8, 0xE0, 255),
		Head: rl.NewColor(0xC8, 0xE0, 0xF0, 255),
		Hair: rl.NewColor(0x2A, 0x4A, 0x6A, 255),
		Legs: rl.NewColor(0xA0, 0x5A, 0x4A, 255),
	},
}

func toneColor(t game.Tone) rl.Color {
	switch t {
	case game.ToneGood:
		return AppTheme.Good
	case game.ToneBig:
		return AppTheme.Accent
	case game.ToneBad:
		return AppTheme.Danger
	case game.ToneWarn:
		return AppTheme.Warning
	default:
		return AppTheme.TextPrimary
	}
}

// DrawPanel draws a themed panel. A non-empty title gets a header with an
// accent underline.
func DrawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, AppTheme.Panel)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, 1.2, AppTheme.Border)
	if title == "" {
		return
	}
	x, y := int32(rect.X+spaceM), int32(rect.Y+spaceS)
	drawText(title, x, y, typeScale.Header, AppTheme.TextPrimary)
	lineW := max(44, float32(measureText(title, typeScale.Header))*0.6)
	underline := float32(y + typeScale.Header + 4)
	rl.DrawLineEx(rl.NewVector2(float32(x), underline), rl.NewVector2(float32(x)+lineW, underline), 2, AppTheme.Accent)
}

// DrawListItem draws one menu row; the selected row gets an accent strip.
func DrawListItem(rect rl.Rectangle, selected, disabled bool, left, right string) {
	fill := rl.Fade(AppTheme.PanelRaised, 0.45)
	stroke := rl.Fade(AppTheme.Border, 0.9)
	leftColor, rightColor := AppTheme.TextPrimary, AppTheme.TextSecondary
	switch {
	case selected:
		fill = AppTheme.PanelRaised
		stroke = AppTheme.Accent
		rightColor = AppTheme.Accent
	case disabled:
		leftColor = AppTheme.TextMuted
		rightColor = AppTheme.TextMuted
	}
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, 1.2, stroke)
	if selected {
		rl.DrawRectangleRec(rl.NewRectangle(rect.X+1, rect.Y+2, 4, rect.Height-4), AppTheme.Accent)
	}
	textY := int32(rect.Y + (rect.Height-float32(typeScale.Body))/2)
	drawText(left, int32(rect.X+spaceM), textY, typeScale.Body, leftColor)
	if right != "" {
		w := measureText(right, typeScale.Body)
		drawText(right, int32(rect.X+rect.Width-spaceM)-w, textY, typeScale.Body, rightColor)
	}
}

// drawBar draws a labelled fill bar; frac is clamped to [0,1].
func drawBar(x, y, w, h float32, frac float64, fill rl.Color) {
	frac = max(0, min(1, frac))
	rl.DrawRectangleRec(rl.NewRectangle(x, y, w, h), rl.Fade(AppTheme.Background, 0.8))
	rl.DrawRectangleRec(rl.NewRectangle(x, y, w*float32(frac), h), fill)
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, w, h), 1, AppTheme.Border)
}
