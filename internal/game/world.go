package game

import (
	"math"
	"time"
)

const TileSize = 32

type Tile int

const (
	TileGrass Tile = iota
	TileWall
	TileWater
	TilePath
	TileTree
	TileHouseWall
	TileDoor
	TileFloor
	TileFurniture
	TileBed
	TileFridge
	TileFurnace
	TileTrash
	TileRodShop
	TileBaitShop
)

var tileNames = [...]string{
	TileGrass:     "grass",
	TileWall:      "wall",
	TileWater:     "water",
	TilePath:      "path",
	TileTree:      "tree",
	TileHouseWall: "house wall",
	TileDoor:      "door",
	TileFloor:     "floor",
	TileFurniture: "furniture",
	TileBed:       "bed",
	TileFridge:    "fridge",
	TileFurnace:   "furnace",
	TileTrash:     "trash can",
	TileRodShop:   "rod shop",
	TileBaitShop:  "bait shop",
}

func (t Tile) String() string {
	if t < 0 || int(t) >= len(tileNames) {
		return "unknown"
	}
	return tileNames[t]
}

// Solid reports whether players and NPCs are blocked by the tile.
func (t Tile) Solid() bool {
	switch t {
	case TileWall, TileWater, TileTree, TileHouseWall, TileFurniture,
		TileBed, TileFridge, TileFurnace, TileTrash, TileRodShop, TileBaitShop:
		return true
	default:
		return false
	}
}

// Walkable tiles are the only places NPCs spawn.
func (t Tile) spawnable() bool {
	return t == TileGrass || t == TilePath
}

// TileMap is the static world layout. Out-of-range lookups must return a
// solid tile.
type TileMap interface {
	Tile(col, row int) Tile
	Cols() int
	Rows() int
}

func mapWidthPx(m TileMap) float64  { return float64(m.Cols() * TileSize) }
func mapHeightPx(m TileMap) float64 { return float64(m.Rows() * TileSize) }

func tileAt(m TileMap, x, y float64) Tile {
	return m.Tile(int(math.Floor(x/TileSize)), int(math.Floor(y/TileSize)))
}

type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

func (f Facing) offset() (int, int) {
	switch f {
	case FacingUp:
		return 0, -1
	case FacingLeft:
		return -1, 0
	case FacingRight:
		return 1, 0
	default:
		return 0, 1
	}
}

type TimeOfDay int

const (
	Dawn TimeOfDay = iota
	Day
	Dusk
	Night
)

func (t TimeOfDay) String() string {
	switch t {
	case Dawn:
		return "Dawn"
	case Day:
		return "Day"
	case Dusk:
		return "Dusk"
	default:
		return "Night"
	}
}

const (
	DawnTime  = 0.125
	NoonTime  = 0.25
	duskStart = 0.375
	nightTime = 0.625
)

// Clock is the continuous world time in [0,1), one unit per day.
type Clock struct {
	Time      float64
	DayLength time.Duration
}

func (c *Clock) Advance(delta time.Duration) {
	if c.DayLength <= 0 || delta <= 0 {
		return
	}
	c.Time += float64(delta) / float64(c.DayLength)
	c.Time -= math.Floor(c.Time)
}

func (c Clock) TimeOfDay() TimeOfDay {
	switch {
	case c.Time < DawnTime:
		return Dawn
	case c.Time < duskStart:
		return Day
	case c.Time < nightTime:
		return Dusk
	default:
		return Night
	}
}

// IsNight drives bite speed and catch weights. Dawn still counts as night.
func (c Clock) IsNight() bool {
	return c.Time > nightTime || c.Time < DawnTime
}

// Darkness is the overlay strength: 0 at noon, 0.65 at midnight.
func (c Clock) Darkness() float64 {
	return 0.65 * (0.5 - 0.5*math.Cos((c.Time-NoonTime)*math.Pi*2))
}
