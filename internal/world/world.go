package world

import (
	"embed"
	"fmt"
	"strings"

	"github.com/appengine-ltd/tidewater/internal/game"
)

//go:embed maps/*.txt
var mapFiles embed.FS

const DefaultMap = "valley"

var glyphs = map[rune]game.Tile{
	'.': game.TileGrass,
	'#': game.TileWall,
	'~': game.TileWater,
	'=': game.TilePath,
	'^': game.TileTree,
	'H': game.TileHouseWall,
	'D': game.TileDoor,
	'_': game.TileFloor,
	'f': game.TileFurniture,
	'B': game.TileBed,
	'F': game.TileFridge,
	'K': game.TileFurnace,
	'X': game.TileTrash,
	'R': game.TileRodShop,
	'S': game.TileBaitShop,
	// Spawn markers sit on path.
	'1': game.TilePath,
	'2': game.TilePath,
}

// Map is a fixed tile grid with one spawn per player.
type Map struct {
	Name   string
	tiles  [][]game.Tile
	spawns [game.PlayerCount]game.TilePos
}

func (m *Map) Tile(col, row int) game.Tile {
	if row < 0 || row >= len(m.tiles) || col < 0 || col >= len(m.tiles[row]) {
		return game.TileWall
	}
	return m.tiles[row][col]
}

func (m *Map) Cols() int { return len(m.tiles[0]) }
func (m *Map) Rows() int { return len(m.tiles) }

func (m *Map) Spawns() [game.PlayerCount]game.TilePos { return m.spawns }

// Load reads a bundled map by name.
func Load(name string) (*Map, error) {
	raw, err := mapFiles.ReadFile("maps/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("unknown map %q: %w", name, err)
	}
	return Parse(name, string(raw))
}

// Parse builds a Map from ASCII rows. Every row must be the same width and
// both spawn markers must appear exactly once.
func Parse(name, text string) (*Map, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("map %s: empty", name)
	}
	m := &Map{Name: name, tiles: make([][]game.Tile, 0, len(lines))}
	var found [game.PlayerCount]bool
	width := len([]rune(lines[0]))
	for r, line := range lines {
		line = strings.TrimRight(line, "\r")
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("map %s: row %d has %d tiles, want %d", name, r, len(runes), width)
		}
		row := make([]game.Tile, width)
		for c, ch := range runes {
			tile, ok := glyphs[ch]
			if !ok {
				return nil, fmt.Errorf("map %s: unknown glyph %q at %d,%d", name, ch, c, r)
			}
			row[c] = tile
			if ch == '1' || ch == '2' {
				i := int(ch - '1')
				if found[i] {
					return nil, fmt.Errorf("map %s: duplicate spawn for P%d", name, i+1)
				}
				found[i] = true
				m.spawns[i] = game.TilePos{Col: c, Row: r}
			}
		}
		m.tiles = append(m.tiles, row)
	}
	for i, ok := range found {
		if !ok {
			return nil, fmt.Errorf("map %s: missing spawn for P%d", name, i+1)
		}
	}
	return m, nil
}

// Glyph is the ASCII rune drawn for a tile by the console renderer.
func Glyph(t game.Tile) rune {
	for ch, tile := range glyphs {
		if tile == t && ch != '1' && ch != '2' {
			return ch
		}
	}
	return '?'
}
