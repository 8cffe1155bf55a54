package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/tidewater/internal/game"
)

// Config is the on-disk balance and runtime file. Every field is optional;
// anything left out keeps its Default value.
type Config struct {
	Seed     int64  `yaml:"seed" json:"seed" jsonschema:"description=World seed; 0 picks one from the clock"`
	Map      string `yaml:"map" json:"map" jsonschema:"description=Bundled map name"`
	LogLevel string `yaml:"log_level" json:"log_level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	TickMS   int    `yaml:"tick_ms" json:"tick_ms" jsonschema:"minimum=1,description=Fixed step for headless and scripted runs"`

	Window   Window   `yaml:"window" json:"window"`
	Clock    Clock    `yaml:"clock" json:"clock"`
	Vitals   Vitals   `yaml:"vitals" json:"vitals"`
	Movement Movement `yaml:"movement" json:"movement"`
	Fishing  Fishing  `yaml:"fishing" json:"fishing"`
	NPC      NPC      `yaml:"npc" json:"npc"`
	Sleep    Sleep    `yaml:"sleep" json:"sleep"`
	Economy  Economy  `yaml:"economy" json:"economy"`
}

type Window struct {
	Width  int `yaml:"width" json:"width" jsonschema:"minimum=320"`
	Height int `yaml:"height" json:"height" jsonschema:"minimum=240"`
	FPS    int `yaml:"fps" json:"fps" jsonschema:"minimum=1"`
}

type Clock struct {
	DayLengthSeconds float64 `yaml:"day_length_seconds" json:"day_length_seconds"`
	StartTime        float64 `yaml:"start_time" json:"start_time" jsonschema:"minimum=0,maximum=1"`
}

type Vitals struct {
	MaxHP            int `yaml:"max_hp" json:"max_hp" jsonschema:"minimum=1"`
	MaxHunger        int `yaml:"max_hunger" json:"max_hunger" jsonschema:"minimum=1"`
	HungerIntervalMS int `yaml:"hunger_interval_ms" json:"hunger_interval_ms" jsonschema:"minimum=1"`
	HungerStep       int `yaml:"hunger_step" json:"hunger_step" jsonschema:"minimum=0"`
	StarveDamage     int `yaml:"starve_damage" json:"starve_damage" jsonschema:"minimum=0"`
	RawFeed          int `yaml:"raw_feed" json:"raw_feed" jsonschema:"minimum=0"`
	CookedFeed       int `yaml:"cooked_feed" json:"cooked_feed" jsonschema:"minimum=0"`
}

type Movement struct {
	SpeedPxPerSecond float64 `yaml:"speed_px_per_second" json:"speed_px_per_second"`
}

// Range is an inclusive millisecond range.
type Range struct {
	MinMS int `yaml:"min_ms" json:"min_ms" jsonschema:"minimum=1"`
	MaxMS int `yaml:"max_ms" json:"max_ms" jsonschema:"minimum=1"`
}

type Fishing struct {
	DayWait         Range `yaml:"day_wait" json:"day_wait"`
	NightWait       Range `yaml:"night_wait" json:"night_wait"`
	NetDayWait      Range `yaml:"net_day_wait" json:"net_day_wait"`
	NetNightWait    Range `yaml:"net_night_wait" json:"net_night_wait"`
	MinigameDwellMS int   `yaml:"minigame_dwell_ms" json:"minigame_dwell_ms" jsonschema:"minimum=1"`
}

type NPC struct {
	SpawnIntervalMS int     `yaml:"spawn_interval_ms" json:"spawn_interval_ms" jsonschema:"minimum=1"`
	Max             int     `yaml:"max" json:"max" jsonschema:"minimum=0"`
	SpawnAttempts   int     `yaml:"spawn_attempts" json:"spawn_attempts" jsonschema:"minimum=1"`
	IdleTimeoutMS   int     `yaml:"idle_timeout_ms" json:"idle_timeout_ms" jsonschema:"minimum=0,description=0 keeps unmet travellers forever"`
	FadeMS          int     `yaml:"fade_ms" json:"fade_ms" jsonschema:"minimum=1"`
	TriggerRadiusPx float64 `yaml:"trigger_radius_px" json:"trigger_radius_px"`
	MinTiles        int     `yaml:"min_tiles" json:"min_tiles" jsonschema:"minimum=0"`
	MaxTiles        int     `yaml:"max_tiles" json:"max_tiles" jsonschema:"minimum=1"`
}

type Sleep struct {
	FadeMS int `yaml:"fade_ms" json:"fade_ms" jsonschema:"minimum=1"`
	HoldMS int `yaml:"hold_ms" json:"hold_ms" jsonschema:"minimum=0"`
}

type Economy struct {
	GiveRadiusPx float64 `yaml:"give_radius_px" json:"give_radius_px"`
}

func ms(d time.Duration) int { return int(d / time.Millisecond) }

func dur(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func rangeOf(b [2]time.Duration) Range { return Range{MinMS: ms(b[0]), MaxMS: ms(b[1])} }

func (r Range) bounds() [2]time.Duration { return [2]time.Duration{dur(r.MinMS), dur(r.MaxMS)} }

// Default mirrors game.DefaultTuning plus the runtime defaults.
func Default() Config {
	t := game.DefaultTuning()
	return Config{
		Map:      "valley",
		LogLevel: "info",
		TickMS:   16,
		Window:   Window{Width: int(t.ViewWidth), Height: int(t.ViewHeight), FPS: 60},
		Clock: Clock{
			DayLengthSeconds: t.DayLength.Seconds(),
			StartTime:        t.StartTime,
		},
		Vitals: Vitals{
			MaxHP:            t.MaxHP,
			MaxHunger:        t.MaxHunger,
			HungerIntervalMS: ms(t.HungerInterval),
			HungerStep:       t.HungerStep,
			StarveDamage:     t.StarveDamage,
			RawFeed:          t.RawFeed,
			CookedFeed:       t.CookedFeed,
		},
		Movement: Movement{SpeedPxPerSecond: t.MoveSpeed},
		Fishing: Fishing{
			DayWait:         rangeOf(t.FishDayWait),
			NightWait:       rangeOf(t.FishNightWait),
			NetDayWait:      rangeOf(t.NetDayWait),
			NetNightWait:    rangeOf(t.NetNightWait),
			MinigameDwellMS: ms(t.MinigameDwell),
		},
		NPC: NPC{
			SpawnIntervalMS: ms(t.NPCSpawnInterval),
			Max:             t.NPCMax,
			SpawnAttempts:   t.NPCSpawnAttempts,
			IdleTimeoutMS:   ms(t.NPCIdleTimeout),
			FadeMS:          ms(t.NPCFade),
			TriggerRadiusPx: t.NPCTriggerRadius,
			MinTiles:        t.NPCMinTiles,
			MaxTiles:        t.NPCMaxTiles,
		},
		Sleep:   Sleep{FadeMS: ms(t.SleepFade), HoldMS: ms(t.SleepHold)},
		Economy: Economy{GiveRadiusPx: t.GiveRadius},
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(c.TickMS > 0, "tick_ms must be positive, got %d", c.TickMS)
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive")
	check(c.Window.FPS > 0, "window.fps must be positive")
	check(c.Clock.DayLengthSeconds > 0, "clock.day_length_seconds must be positive")
	check(c.Clock.StartTime >= 0 && c.Clock.StartTime < 1, "clock.start_time must be in [0,1), got %v", c.Clock.StartTime)
	check(c.Vitals.MaxHP >= 1, "vitals.max_hp must be at least 1")
	check(c.Vitals.MaxHunger >= 1, "vitals.max_hunger must be at least 1")
	check(c.Vitals.HungerIntervalMS > 0, "vitals.hunger_interval_ms must be positive")
	check(c.Movement.SpeedPxPerSecond > 0, "movement.speed_px_per_second must be positive")
	for name, r := range map[string]Range{
		"day_wait":       c.Fishing.DayWait,
		"night_wait":     c.Fishing.NightWait,
		"net_day_wait":   c.Fishing.NetDayWait,
		"net_night_wait": c.Fishing.NetNightWait,
	} {
		check(r.MinMS > 0 && r.MaxMS >= r.MinMS, "fishing.%s must satisfy 0 < min_ms <= max_ms", name)
	}
	check(c.Fishing.MinigameDwellMS > 0, "fishing.minigame_dwell_ms must be positive")
	check(c.NPC.SpawnIntervalMS > 0, "npc.spawn_interval_ms must be positive")
	check(c.NPC.Max >= 0, "npc.max cannot be negative")
	check(c.NPC.SpawnAttempts >= 1, "npc.spawn_attempts must be at least 1")
	check(c.NPC.IdleTimeoutMS >= 0, "npc.idle_timeout_ms cannot be negative")
	check(c.NPC.FadeMS > 0, "npc.fade_ms must be positive")
	check(c.NPC.MaxTiles >= c.NPC.MinTiles, "npc.max_tiles must be >= npc.min_tiles")
	check(c.Sleep.FadeMS > 0, "sleep.fade_ms must be positive")
	check(c.Economy.GiveRadiusPx > 0, "economy.give_radius_px must be positive")
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Tuning converts the file format into the simulation's knobs.
func (c Config) Tuning() game.Tuning {
	return game.Tuning{
		DayLength: time.Duration(c.Clock.DayLengthSeconds * float64(time.Second)),
		StartTime: c.Clock.StartTime,

		MaxHP:          c.Vitals.MaxHP,
		MaxHunger:      c.Vitals.MaxHunger,
		HungerInterval: dur(c.Vitals.HungerIntervalMS),
		HungerStep:     c.Vitals.HungerStep,
		StarveDamage:   c.Vitals.StarveDamage,
		RawFeed:        c.Vitals.RawFeed,
		CookedFeed:     c.Vitals.CookedFeed,

		MoveSpeed: c.Movement.SpeedPxPerSecond,

		FishDayWait:   c.Fishing.DayWait.bounds(),
		FishNightWait: c.Fishing.NightWait.bounds(),
		NetDayWait:    c.Fishing.NetDayWait.bounds(),
		NetNightWait:  c.Fishing.NetNightWait.bounds(),
		MinigameDwell: dur(c.Fishing.MinigameDwellMS),

		NPCSpawnInterval: dur(c.NPC.SpawnIntervalMS),
		NPCMax:           c.NPC.Max,
		NPCSpawnAttempts: c.NPC.SpawnAttempts,
		NPCIdleTimeout:   dur(c.NPC.IdleTimeoutMS),
		NPCFade:          dur(c.NPC.FadeMS),
		NPCTriggerRadius: c.NPC.TriggerRadiusPx,
		NPCMinTiles:      c.NPC.MinTiles,
		NPCMaxTiles:      c.NPC.MaxTiles,

		SleepFade: dur(c.Sleep.FadeMS),
		SleepHold: dur(c.Sleep.HoldMS),

		GiveRadius: c.Economy.GiveRadiusPx,

		ViewWidth:  float64(c.Window.Width),
		ViewHeight: float64(c.Window.Height),
	}
}

func (c Config) Tick() time.Duration { return dur(c.TickMS) }

func (c Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
	}
}
