package game

import "time"

type MinigameResult int

const (
	MinigamePending MinigameResult = iota
	MinigameSuccess
	MinigameFail
)

func (r MinigameResult) String() string {
	switch r {
	case MinigameSuccess:
		return "success"
	case MinigameFail:
		return "fail"
	default:
		return "pending"
	}
}

// Minigame is the timing bar shown for rare bites: a marker bounces across
// [0,1] and the player must press act while it sits inside the centred zone.
type Minigame struct {
	Marker    float64
	Dir       float64
	Speed     float64
	ZoneStart float64
	ZoneEnd   float64
	Result    MinigameResult
	Dwell     time.Duration
}

func newMinigame(spec RareFishSpec) Minigame {
	half := spec.ZoneWidth / 2
	return Minigame{
		Dir:       1,
		Speed:     spec.MarkerSpeed,
		ZoneStart: 0.5 - half,
		ZoneEnd:   0.5 + half,
	}
}

func (m *Minigame) inZone() bool {
	return m.Marker >= m.ZoneStart && m.Marker <= m.ZoneEnd
}

// sweep moves the marker, reflecting off both ends of the bar.
func (m *Minigame) sweep(dt time.Duration) {
	m.Marker += m.Dir * m.Speed * dt.Seconds()
	for m.Marker > 1 || m.Marker < 0 {
		if m.Marker > 1 {
			m.Marker = 2 - m.Marker
			m.Dir = -1
		} else {
			m.Marker = -m.Marker
			m.Dir = 1
		}
	}
}

// step advances the bar one tick and reports true once the result has been
// shown for the full dwell.
func (m *Minigame) step(dt time.Duration, act bool, dwell time.Duration) bool {
	if m.Result != MinigamePending {
		m.Dwell -= dt
		return m.Dwell <= 0
	}
	if act {
		if m.inZone() {
			m.Result = MinigameSuccess
		} else {
			m.Result = MinigameFail
		}
		m.Dwell = dwell
		return false
	}
	m.sweep(dt)
	return false
}
