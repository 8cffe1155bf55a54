package game

import (
	"math"
	"time"
)

const (
	PlayerCount = 2

	playerSize     = 24
	collisionPad   = 4
	walkFrameEvery = 150 * time.Millisecond
	walkFrames     = 4
)

// PlayerStats are per-player lifetime counters for the leaderboard.
type PlayerStats struct {
	FishCaught        int
	CrustaceansCaught int
	GoldEarned        int
	NPCTrades         int
	Cooked            int
	Eaten             int
}

type Player struct {
	Number int

	X, Y       float64
	Facing     Facing
	Frame      int
	Moving     bool
	frameTimer time.Duration

	HP          int
	MaxHP       int
	Hunger      int
	MaxHunger   int
	hungerTimer time.Duration

	Gold       int
	Inventory  Inventory
	RodTier    int
	NetTier    int
	BaitType   int
	BaitCounts []int

	Activity *Activity
	InBed    bool

	Stats   PlayerStats
	Message Message
}

func newPlayer(number, col, row int, t Tuning) *Player {
	return &Player{
		Number:     number,
		X:          float64(col * TileSize),
		Y:          float64(row * TileSize),
		Facing:     FacingDown,
		HP:         t.MaxHP,
		MaxHP:      t.MaxHP,
		MaxHunger:  t.MaxHunger,
		NetTier:    NoNet,
		BaitType:   NoBait,
		BaitCounts: make([]int, len(baits)),
	}
}

func (p *Player) Center() (float64, float64) {
	return p.X + playerSize/2, p.Y + playerSize/2
}

func (p *Player) Rod() RodSpec { return rods[p.RodTier] }

func (p *Player) Net() (NetSpec, bool) {
	if p.NetTier < 0 || p.NetTier >= len(nets) {
		return NetSpec{}, false
	}
	return nets[p.NetTier], true
}

func (p *Player) Bait() BaitSpec { return baits[p.BaitType] }

// activeBait is the bait a bite would use right now: the equipped type when
// it is still in stock, otherwise none.
func (p *Player) activeBait() int {
	if p.BaitType > NoBait && p.BaitCounts[p.BaitType] > 0 {
		return p.BaitType
	}
	return NoBait
}

// FacingTile is the tile adjacent to the player's centre in the facing
// direction.
func (p *Player) FacingTile(m TileMap) (col, row int, tile Tile) {
	cx, cy := p.Center()
	dc, dr := p.Facing.offset()
	col = int(math.Floor(cx/TileSize)) + dc
	row = int(math.Floor(cy/TileSize)) + dr
	return col, row, m.Tile(col, row)
}

func (p *Player) say(text string, d time.Duration) { p.Message.Set(text, d) }

// move applies one tick of held direction, resolving each axis separately so
// players slide along walls.
func (p *Player) move(dt time.Duration, in PlayerInput, speed float64, m TileMap, other *Player) {
	p.Moving = in.wantsMove()
	if !p.Moving {
		p.Frame = 0
		p.frameTimer = 0
		return
	}
	dx, dy := float64(in.DX), float64(in.DY)
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			p.Facing = FacingRight
		} else {
			p.Facing = FacingLeft
		}
	} else if dy > 0 {
		p.Facing = FacingDown
	} else {
		p.Facing = FacingUp
	}

	length := math.Hypot(dx, dy)
	step := speed * dt.Seconds()
	nx := p.X + dx/length*step
	if !p.collides(nx, p.Y, m, other) {
		p.X = nx
	}
	ny := p.Y + dy/length*step
	if !p.collides(p.X, ny, m, other) {
		p.Y = ny
	}

	p.frameTimer += dt
	if p.frameTimer > walkFrameEvery {
		p.Frame = (p.Frame + 1) % walkFrames
		p.frameTimer = 0
	}
}

func (p *Player) collides(x, y float64, m TileMap, other *Player) bool {
	left, right := x+collisionPad, x+playerSize-collisionPad
	top, bottom := y+collisionPad, y+playerSize-collisionPad
	for _, c := range [][2]float64{{left, top}, {right, top}, {left, bottom}, {right, bottom}} {
		if tileAt(m, c[0], c[1]).Solid() {
			return true
		}
	}
	if other == nil {
		return false
	}
	oLeft, oRight := other.X+collisionPad, other.X+playerSize-collisionPad
	oTop, oBottom := other.Y+collisionPad, other.Y+playerSize-collisionPad
	return right > oLeft && left < oRight && bottom > oTop && top < oBottom
}

func (p *Player) distanceTo(o *Player) float64 {
	ax, ay := p.Center()
	bx, by := o.Center()
	return math.Hypot(ax-bx, ay-by)
}
