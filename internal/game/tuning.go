package game

import "time"

// Tuning holds every balance knob the simulation reads. DefaultTuning is the
// reference game; internal/config maps a YAML file onto it.
type Tuning struct {
	DayLength time.Duration
	StartTime float64

	MaxHP          int
	MaxHunger      int
	HungerInterval time.Duration
	HungerStep     int
	StarveDamage   int
	RawFeed        int
	CookedFeed     int

	MoveSpeed float64

	FishDayWait   [2]time.Duration
	FishNightWait [2]time.Duration
	NetDayWait    [2]time.Duration
	NetNightWait  [2]time.Duration
	MinigameDwell time.Duration

	NPCSpawnInterval time.Duration
	NPCMax           int
	NPCSpawnAttempts int
	NPCIdleTimeout   time.Duration
	NPCFade          time.Duration
	NPCTriggerRadius float64
	NPCMinTiles      int
	NPCMaxTiles      int

	SleepFade time.Duration
	SleepHold time.Duration

	GiveRadius float64

	ViewWidth  float64
	ViewHeight float64
}

func DefaultTuning() Tuning {
	return Tuning{
		DayLength: 120 * time.Second,
		StartTime: NoonTime,

		MaxHP:          100,
		MaxHunger:      100,
		HungerInterval: 10 * time.Second,
		HungerStep:     2,
		StarveDamage:   2,
		RawFeed:        10,
		CookedFeed:     30,

		MoveSpeed: 180,

		FishDayWait:   [2]time.Duration{3 * time.Second, 6 * time.Second},
		FishNightWait: [2]time.Duration{2 * time.Second, 4 * time.Second},
		NetDayWait:    [2]time.Duration{2500 * time.Millisecond, 5 * time.Second},
		NetNightWait:  [2]time.Duration{1800 * time.Millisecond, 3600 * time.Millisecond},
		MinigameDwell: 1200 * time.Millisecond,

		NPCSpawnInterval: 15 * time.Second,
		NPCMax:           3,
		NPCSpawnAttempts: 50,
		NPCIdleTimeout:   60 * time.Second,
		NPCFade:          2 * time.Second,
		NPCTriggerRadius: 20,
		NPCMinTiles:      6,
		NPCMaxTiles:      15,

		SleepFade: time.Second,
		SleepHold: 1500 * time.Millisecond,

		GiveRadius: 2 * TileSize,

		ViewWidth:  640,
		ViewHeight: 480,
	}
}

func waitBetween(r Roller, bounds [2]time.Duration, mult float64) time.Duration {
	d := randomBetween(r, float64(bounds[0]), float64(bounds[1]))
	return time.Duration(d * mult)
}
