package game

import (
	"fmt"
	"time"
)

type ActivityKind int

const (
	ActivityFishing ActivityKind = iota
	ActivityNetting
)

func (k ActivityKind) String() string {
	if k == ActivityNetting {
		return "netting"
	}
	return "fishing"
}

type ActivityState int

const (
	StateCasting ActivityState = iota
	StateWaiting
	StateCaught
	StateMinigame
)

func (s ActivityState) String() string {
	switch s {
	case StateCasting:
		return "casting"
	case StateWaiting:
		return "waiting"
	case StateCaught:
		return "caught"
	case StateMinigame:
		return "minigame"
	default:
		return fmt.Sprintf("ActivityState(%d)", int(s))
	}
}

// Activity is one in-progress fishing or netting attempt. It is a value:
// Advance returns the next Activity rather than mutating the receiver.
type Activity struct {
	Kind         ActivityKind
	State        ActivityState
	Timer        time.Duration
	CastDuration time.Duration
	TargetCol    int
	TargetRow    int

	Catch    string
	Rare     bool
	UsedBait int
	Minigame Minigame
}

// ActivityEffect is what an Advance call asks the owning player to apply.
type ActivityEffect struct {
	Done        bool
	Landed      bool
	Item        Item
	Rare        bool
	ConsumeBait int
	Result      MinigameResult
}

type activityEnv struct {
	rng    Roller
	night  bool
	rod    RodSpec
	net    NetSpec
	bait   int
	tuning *Tuning
}

func startFishing(col, row int, rod RodSpec) Activity {
	return Activity{
		Kind:         ActivityFishing,
		State:        StateCasting,
		Timer:        rod.CastTime,
		CastDuration: rod.CastTime,
		TargetCol:    col,
		TargetRow:    row,
	}
}

func startNetting(col, row int, net NetSpec) Activity {
	return Activity{
		Kind:         ActivityNetting,
		State:        StateCasting,
		Timer:        net.ThrowTime,
		CastDuration: net.ThrowTime,
		TargetCol:    col,
		TargetRow:    row,
	}
}

// Cancelable reports whether movement may abandon the activity. A running
// mini-game holds the player in place until it resolves.
func (a Activity) Cancelable() bool { return a.State != StateMinigame }

// Advance runs one tick of the activity. act is the action-key edge for this
// tick.
func (a Activity) Advance(dt time.Duration, act bool, env activityEnv) (Activity, ActivityEffect) {
	var eff ActivityEffect
	switch a.State {
	case StateCasting:
		a.Timer -= dt
		if a.Timer <= 0 {
			a.State = StateWaiting
			a.Timer = a.waitTime(env)
		}
	case StateWaiting:
		a.Timer -= dt
		if a.Timer <= 0 {
			a.Timer = 0
			a.State = StateCaught
			a.bite(env)
		}
	case StateCaught:
		if !act {
			break
		}
		if a.Kind == ActivityFishing && a.Rare {
			if spec, ok := rareFishByName(a.Catch); ok {
				a.State = StateMinigame
				a.Minigame = newMinigame(spec)
				break
			}
		}
		eff = a.land()
	case StateMinigame:
		if !a.Minigame.step(dt, act, env.tuning.MinigameDwell) {
			break
		}
		eff = ActivityEffect{Done: true, ConsumeBait: a.UsedBait, Result: a.Minigame.Result, Rare: true}
		if a.Minigame.Result == MinigameSuccess {
			eff.Landed = true
			eff.Item = FishItem(a.Catch)
		}
	}
	return a, eff
}

func (a Activity) waitTime(env activityEnv) time.Duration {
	if a.Kind == ActivityNetting {
		bounds := env.tuning.NetDayWait
		if env.night {
			bounds = env.tuning.NetNightWait
		}
		return waitBetween(env.rng, bounds, env.net.SpeedMult)
	}
	bounds := env.tuning.FishDayWait
	if env.night {
		bounds = env.tuning.FishNightWait
	}
	return waitBetween(env.rng, bounds, env.rod.SpeedMult)
}

func (a *Activity) bite(env activityEnv) {
	if a.Kind == ActivityNetting {
		a.Catch = pickCrustacean(env.rng, env.night, env.net)
		return
	}
	out := pickFish(env.rng, env.night, env.rod, env.bait)
	a.Catch = out.Name
	a.Rare = out.Rare
	a.UsedBait = env.bait
}

func (a Activity) land() ActivityEffect {
	eff := ActivityEffect{Done: true, Landed: true, ConsumeBait: a.UsedBait}
	if a.Kind == ActivityNetting {
		eff.Item = CrustaceanItem(a.Catch)
	} else {
		eff.Item = itemForCatch(a.Catch)
	}
	return eff
}
