package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/tidewater/internal/game"
)

func TestDefaultRoundTripsTuning(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, game.DefaultTuning(), cfg.Tuning())
	require.Equal(t, 16*time.Millisecond, cfg.Tick())
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidewater.yaml")
	body := `
seed: 42
log_level: debug
clock:
  day_length_seconds: 60
npc:
  max: 5
fishing:
  day_wait:
    min_ms: 1000
    max_ms: 2000
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.EqualValues(t, 42, cfg.Seed)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	tuning := cfg.Tuning()
	require.Equal(t, time.Minute, tuning.DayLength)
	require.Equal(t, 5, tuning.NPCMax)
	require.Equal(t, [2]time.Duration{time.Second, 2 * time.Second}, tuning.FishDayWait)
	require.Equal(t, game.DefaultTuning().FishNightWait, tuning.FishNightWait)
	require.Equal(t, "valley", cfg.Map)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clock: [not, a, map]\n"), 0o644))
	_, err = Load(path)
	require.ErrorContains(t, err, "parse config")
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.TickMS = 0
	cfg.Clock.StartTime = 1.5
	cfg.Fishing.NightWait = Range{MinMS: 500, MaxMS: 100}
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"tick_ms", "start_time", "night_wait", "loud"} {
		require.ErrorContains(t, err, want)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{
		"TIDEWATER_SEED":               "9001",
		"TIDEWATER_MAP":                "valley",
		"TIDEWATER_LOG_LEVEL":          "warn",
		"TIDEWATER_DAY_LENGTH_SECONDS": "30",
		"TIDEWATER_NPC_MAX":            "0",
		"TIDEWATER_TICK_MS":            " ",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	require.EqualValues(t, 9001, cfg.Seed)
	require.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	require.Equal(t, 30.0, cfg.Clock.DayLengthSeconds)
	require.Equal(t, 0, cfg.NPC.Max)
	require.Equal(t, 16, cfg.TickMS)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	lookup := func(k string) (string, bool) {
		switch k {
		case "TIDEWATER_SEED":
			return "abc", true
		case "TIDEWATER_NPC_MAX":
			return "many", true
		}
		return "", false
	}
	cfg := Default()
	err := cfg.ApplyEnv(lookup)
	require.ErrorContains(t, err, "TIDEWATER_SEED")
	require.ErrorContains(t, err, "TIDEWATER_NPC_MAX")
	require.Zero(t, cfg.Seed)
}

func TestFromEnvValidates(t *testing.T) {
	t.Setenv("TIDEWATER_TICK_MS", "-3")
	_, err := FromEnv("")
	require.ErrorContains(t, err, "invalid config")
}

func TestSchemaDescribesSections(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc struct {
		Title      string                     `json:"title"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "Tidewater config", doc.Title)
	for _, key := range []string{"seed", "log_level", "clock", "vitals", "fishing", "npc", "sleep", "economy", "window"} {
		require.Contains(t, doc.Properties, key)
	}
	require.Contains(t, string(doc.Properties["log_level"]), "debug")
}
