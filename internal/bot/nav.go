package bot

import (
	"github.com/appengine-ltd/tidewater/internal/game"
)

// cell is a tile coordinate on the navigation grid.
type cell struct {
	col, row int
}

type navNeighbor struct {
	col, row int
	facing   game.Facing
}

// Movement is resolved one axis at a time, so only the four cardinal
// neighbours are traversable.
var navNeighborOffsets = [...]navNeighbor{
	{col: 0, row: -1, facing: game.FacingUp},
	{col: 1, row: 0, facing: game.FacingRight},
	{col: 0, row: 1, facing: game.FacingDown},
	{col: -1, row: 0, facing: game.FacingLeft},
}

type navGrid struct {
	cols, rows int
	tiles      []game.Tile
}

func newNavGrid(m game.TileMap) *navGrid {
	grid := &navGrid{
		cols:  m.Cols(),
		rows:  m.Rows(),
		tiles: make([]game.Tile, m.Cols()*m.Rows()),
	}
	for row := 0; row < grid.rows; row++ {
		for col := 0; col < grid.cols; col++ {
			grid.tiles[grid.index(col, row)] = m.Tile(col, row)
		}
	}
	return grid
}

func (g *navGrid) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.cols && row < g.rows
}

func (g *navGrid) index(col, row int) int {
	return row*g.cols + col
}

func (g *navGrid) tile(col, row int) game.Tile {
	if !g.inBounds(col, row) {
		return game.TileWall
	}
	return g.tiles[g.index(col, row)]
}

func (g *navGrid) isWalkable(col, row int) bool {
	return g.inBounds(col, row) && !g.tiles[g.index(col, row)].Solid()
}

func (g *navGrid) has(t game.Tile) bool {
	for _, tile := range g.tiles {
		if tile == t {
			return true
		}
	}
	return false
}

// route is a walk to a standing cell plus the direction to face on arrival.
type route struct {
	path   []cell
	facing game.Facing
}

func (r route) dest() cell { return r.path[len(r.path)-1] }

// nearestStand runs a breadth-first search from start for the closest
// walkable cell that borders a tile of the wanted kind. Cells in blocked are
// never entered. The returned path starts with start itself.
func (g *navGrid) nearestStand(start cell, want game.Tile, blocked map[cell]struct{}) (route, bool) {
	if !g.isWalkable(start.col, start.row) {
		return route{}, false
	}
	parent := map[cell]cell{start: start}
	queue := []cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range navNeighborOffsets {
			if g.tile(current.col+n.col, current.row+n.row) == want {
				return route{path: reconstructPath(parent, current), facing: n.facing}, true
			}
		}

		for _, n := range navNeighborOffsets {
			next := cell{col: current.col + n.col, row: current.row + n.row}
			if !g.isWalkable(next.col, next.row) {
				continue
			}
			if _, seen := parent[next]; seen {
				continue
			}
			if _, skip := blocked[next]; skip {
				continue
			}
			parent[next] = current
			queue = append(queue, next)
		}
	}
	return route{}, false
}

func reconstructPath(parent map[cell]cell, end cell) []cell {
	path := []cell{end}
	for current := end; parent[current] != current; {
		current = parent[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
