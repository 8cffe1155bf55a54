package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const envPrefix = "TIDEWATER_"

// ApplyEnv overrides fields from TIDEWATER_* variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	integer := func(key string, dst *int) {
		v, ok := lookup(envPrefix + key)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, key, err))
			return
		}
		*dst = n
	}
	float := func(key string, dst *float64) {
		v, ok := lookup(envPrefix + key)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, key, err))
			return
		}
		*dst = f
	}

	if v, ok := lookup(envPrefix + "SEED"); ok && strings.TrimSpace(v) != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", envPrefix, err))
		} else {
			c.Seed = seed
		}
	}
	str("MAP", &c.Map)
	str("LOG_LEVEL", &c.LogLevel)
	integer("TICK_MS", &c.TickMS)
	float("DAY_LENGTH_SECONDS", &c.Clock.DayLengthSeconds)
	float("START_TIME", &c.Clock.StartTime)
	integer("NPC_MAX", &c.NPC.Max)
	integer("NPC_SPAWN_INTERVAL_MS", &c.NPC.SpawnIntervalMS)
	integer("HUNGER_INTERVAL_MS", &c.Vitals.HungerIntervalMS)
	integer("WINDOW_WIDTH", &c.Window.Width)
	integer("WINDOW_HEIGHT", &c.Window.Height)
	return errors.Join(errs...)
}

// FromEnv is Load followed by ApplyEnv and Validate.
func FromEnv(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
