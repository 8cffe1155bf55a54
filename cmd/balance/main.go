// Command balance plays many seeded autopilot sessions in parallel and
// prints catch and economy statistics for tuning the config file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/appengine-ltd/tidewater/internal/config"
	"github.com/appengine-ltd/tidewater/internal/game"
	"github.com/appengine-ltd/tidewater/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		sessions   int
		parallel   int
		days       float64
		seed       int64
		asJSON     bool
	)
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.IntVar(&sessions, "sessions", 32, "number of sessions to simulate")
	flag.IntVar(&parallel, "parallel", runtime.GOMAXPROCS(0), "sessions simulated at once")
	flag.Float64Var(&days, "days", 3, "in-game days per session")
	flag.Int64Var(&seed, "seed", 1, "seed of the first session")
	flag.BoolVar(&asJSON, "json", false, "print the report as JSON")
	flag.Parse()

	cfg, err := config.FromEnv(configPath)
	if err != nil {
		return err
	}
	cfg.Seed = seed
	if sessions < 1 || days <= 0 {
		return fmt.Errorf("need at least one session and a positive day count")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	d := time.Duration(days * float64(cfg.Tuning().DayLength))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := runSessions(ctx, runOptions{
		Sessions: sessions,
		Parallel: parallel,
		Duration: d,
		Config:   cfg,
		Logger:   logger,
		NewMap:   loadMap,
	})
	if err != nil {
		return err
	}
	logger.Info("balance run finished", "sessions", sessions, "wall", time.Since(start).Round(time.Millisecond))

	rep := aggregate(results, d)
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return writeText(os.Stdout, rep)
}

func loadMap(name string) (game.TileMap, [game.PlayerCount]game.TilePos, error) {
	m, err := world.Load(name)
	if err != nil {
		return nil, [game.PlayerCount]game.TilePos{}, err
	}
	return m, m.Spawns(), nil
}
