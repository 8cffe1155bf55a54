package game

// Camera is the top-left corner of the shared view in world pixels.
type Camera struct {
	X, Y float64
}

// follow centres the view on the midpoint of both players, clamped to the
// map so the view never shows past the edge.
func (c *Camera) follow(players [PlayerCount]*Player, m TileMap, viewW, viewH float64) {
	var sx, sy float64
	for _, p := range players {
		x, y := p.Center()
		sx += x
		sy += y
	}
	n := float64(len(players))
	c.X = clampFloat(sx/n-viewW/2, 0, max(0, mapWidthPx(m)-viewW))
	c.Y = clampFloat(sy/n-viewH/2, 0, max(0, mapHeightPx(m)-viewH))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
