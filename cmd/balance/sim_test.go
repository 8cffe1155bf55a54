package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/appengine-ltd/tidewater/internal/config"
	"github.com/appengine-ltd/tidewater/internal/game"
	"github.com/appengine-ltd/tidewater/internal/world"
)

const pondLayout = `##########
#RS.BF.KX#
#........#
#.1....2.#
#........#
#~~~~~~~~#
##########
`

func pondMap(string) (game.TileMap, [game.PlayerCount]game.TilePos, error) {
	m, err := world.Parse("pond", pondLayout)
	if err != nil {
		return nil, [game.PlayerCount]game.TilePos{}, err
	}
	return m, m.Spawns(), nil
}

func testOptions(sessions int, d time.Duration) runOptions {
	cfg := config.Default()
	cfg.Seed = 100
	return runOptions{Sessions: sessions, Parallel: 2, Duration: d, Config: cfg, NewMap: pondMap}
}

func TestRunSessionsUsesConsecutiveSeeds(t *testing.T) {
	results, err := runSessions(context.Background(), testOptions(3, 60*time.Second))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Seed != 100+int64(i) {
			t.Fatalf("expected seed %d at %d, got %d", 100+i, i, r.Seed)
		}
	}
	total := 0
	for _, r := range results {
		total += catches(r)
	}
	if total == 0 {
		t.Fatalf("expected the bots to land something in a simulated minute")
	}
}

func TestRunSessionsHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runSessions(ctx, testOptions(2, time.Hour)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunSessionsReportsMapErrors(t *testing.T) {
	opts := testOptions(1, time.Second)
	opts.NewMap = func(name string) (game.TileMap, [game.PlayerCount]game.TilePos, error) {
		return nil, [game.PlayerCount]game.TilePos{}, errors.New("no such map")
	}
	_, err := runSessions(context.Background(), opts)
	if err == nil || !strings.Contains(err.Error(), "no such map") || !strings.Contains(err.Error(), "seed 100") {
		t.Fatalf("expected wrapped map error, got %v", err)
	}
}

func TestAggregate(t *testing.T) {
	results := []SessionResult{
		{Progress: game.Progress{FishCaught: 8, RareCaught: 2, GoldEarned: 100}, Species: map[string]int{"Bass": 6, "Trout": 2}, TopScore: 50},
		{Progress: game.Progress{FishCaught: 2, GoldEarned: 20}, Species: map[string]int{"Trout": 3}, TopScore: 10},
	}
	rep := aggregate(results, time.Minute)
	if rep.Sessions != 2 || rep.MeanFish != 5 || rep.MeanGoldEarned != 60 || rep.MeanTopScore != 30 {
		t.Fatalf("unexpected means %+v", rep)
	}
	if rep.RareRate != 0.2 {
		t.Fatalf("expected rare rate 0.2, got %v", rep.RareRate)
	}
	if len(rep.Species) != 2 || rep.Species[0] != (SpeciesCount{Name: "Bass", Count: 6}) {
		t.Fatalf("expected bass first, got %+v", rep.Species)
	}

	var out bytes.Buffer
	if err := writeText(&out, rep); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(out.String(), "rare rate") || !strings.Contains(out.String(), "Bass") {
		t.Fatalf("expected report text, got %q", out.String())
	}
}

func TestAggregateEmpty(t *testing.T) {
	if rep := aggregate(nil, time.Minute); rep.Sessions != 0 || rep.MeanCatches != 0 {
		t.Fatalf("expected an empty report, got %+v", rep)
	}
}
