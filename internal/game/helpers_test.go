package game

import "time"

const tick = 16 * time.Millisecond

// fataler is satisfied by both *testing.T and *rapid.T.
type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

// gridMap is a minimal TileMap for tests.
type gridMap [][]Tile

func (m gridMap) Tile(col, row int) Tile {
	if row < 0 || row >= len(m) || col < 0 || col >= len(m[row]) {
		return TileWall
	}
	return m[row][col]
}
func (m gridMap) Cols() int { return len(m[0]) }
func (m gridMap) Rows() int { return len(m) }

var testLegend = map[rune]Tile{
	'.': TileGrass, '#': TileWall, '~': TileWater, '=': TilePath,
	'B': TileBed, 'F': TileFridge, 'K': TileFurnace, 'T': TileTrash,
	'R': TileRodShop, 'S': TileBaitShop, '1': TileGrass, '2': TileGrass,
}

// Row 1 holds one of every interactive tile; row 5 is open water.
var testLayout = []string{
	"##########",
	"#RS.BF.KT#",
	"#........#",
	"#.1....2.#",
	"#........#",
	"#~~~~~~~~#",
	"##########",
}

func parseGrid(t fataler, rows []string) (gridMap, [PlayerCount]TilePos) {
	t.Helper()
	var spawns [PlayerCount]TilePos
	m := make(gridMap, len(rows))
	for r, line := range rows {
		m[r] = make([]Tile, 0, len(line))
		for c, ch := range line {
			tile, ok := testLegend[ch]
			if !ok {
				t.Fatalf("unknown map rune %q", ch)
			}
			switch ch {
			case '1':
				spawns[0] = TilePos{Col: c, Row: r}
			case '2':
				spawns[1] = TilePos{Col: c, Row: r}
			}
			m[r] = append(m[r], tile)
		}
	}
	return m, spawns
}

// scriptedRoller replays fixed draws, then falls back to mid-range values.
type scriptedRoller struct {
	floats []float64
	ints   []int
}

func (r *scriptedRoller) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRoller) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func newTestGame(t fataler, roller Roller) *Game {
	t.Helper()
	m, spawns := parseGrid(t, testLayout)
	g, err := New(Options{Seed: 7, Map: m, Spawns: spawns, Roller: roller})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func place(t fataler, g *Game, n, col, row int, f Facing) *Player {
	t.Helper()
	if err := g.Place(n, TilePos{Col: col, Row: row}, f); err != nil {
		t.Fatalf("place p%d: %v", n, err)
	}
	return g.Player(n)
}

func press(n int, in PlayerInput) FrameInput {
	var f FrameInput
	f.Players[n-1] = in
	return f
}

// runFor steps the game with idle input for d.
func runFor(g *Game, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		g.Step(tick, FrameInput{})
	}
}
