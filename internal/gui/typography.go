package gui

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type typographyScale struct {
	Title  int32
	Header int32
	Body   int32
	Small  int32
}

type typographyState struct {
	base       rl.Font
	ownsBase   bool
	lineFactor float32
}

var (
	typeScale = typographyScale{
		Title:  28,
		Header: 20,
		Body:   16,
		Small:  12,
	}
	uiType = typographyState{lineFactor: 1.3}
)

func initTypography() {
	uiType.base = rl.GetFontDefault()
	fontCandidates := []string{
		filepath.Join("assets", "fonts", "PixelOperator.ttf"),
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(fontCandidates, 32); ok {
		uiType.base = f
		uiType.ownsBase = true
		rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
	}
}

func shutdownTypography() {
	if uiType.ownsBase && uiType.base.Texture.ID != 0 {
		rl.UnloadFont(uiType.base)
	}
	uiType = typographyState{lineFactor: 1.3}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if !uiType.ownsBase {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.base, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

// drawTextCentered draws text horizontally centred on cx.
func drawTextCentered(text string, cx, y, fontSize int32, clr rl.Color) {
	drawText(text, cx-measureText(text, fontSize)/2, y, fontSize, clr)
}

func measureText(text string, fontSize int32) int32 {
	if !uiType.ownsBase {
		return rl.MeasureText(text, fontSize)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.base, text, float32(fontSize), 1).X)))
}

func textLineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * float64(uiType.lineFactor)))
}

// wrapWords breaks text into lines no wider than maxWidth as reported by
// measure.
func wrapWords(text string, maxWidth int32, measure func(string) int32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
