package game

import "time"

type SleepPhase int

const (
	SleepIdle SleepPhase = iota
	SleepFadeOut
	SleepHold
	SleepFadeIn
)

func (s SleepPhase) String() string {
	switch s {
	case SleepFadeOut:
		return "fade-out"
	case SleepHold:
		return "hold"
	case SleepFadeIn:
		return "fade-in"
	default:
		return "idle"
	}
}

// SleepCycle is the two-player sleep barrier. It fires only once both
// players are in bed, jumps the clock to dawn at full black and counts the
// sleep when the screen has faded back in.
type SleepCycle struct {
	Phase SleepPhase
	Alpha float64
	hold  time.Duration
}

func (s *SleepCycle) Active() bool { return s.Phase != SleepIdle }

// update reports the tick the barrier fires and the tick the cycle completes.
func (s *SleepCycle) update(dt time.Duration, players [PlayerCount]*Player, clock *Clock, t Tuning) (started, completed bool) {
	fade := dt.Seconds() / max(t.SleepFade, time.Millisecond).Seconds()
	switch s.Phase {
	case SleepIdle:
		for _, p := range players {
			if !p.InBed {
				return false, false
			}
		}
		for _, p := range players {
			p.InBed = false
			p.Activity = nil
		}
		s.Phase = SleepFadeOut
		s.Alpha = 0
		return true, false
	case SleepFadeOut:
		s.Alpha += fade
		if s.Alpha >= 1 {
			s.Alpha = 1
			clock.Time = DawnTime
			s.Phase = SleepHold
			s.hold = t.SleepHold
		}
	case SleepHold:
		s.hold -= dt
		if s.hold <= 0 {
			s.Phase = SleepFadeIn
		}
	case SleepFadeIn:
		s.Alpha -= fade
		if s.Alpha <= 0 {
			s.Alpha = 0
			s.Phase = SleepIdle
			return false, true
		}
	}
	return false, false
}
