package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/appengine-ltd/tidewater/internal/config"
	"github.com/appengine-ltd/tidewater/internal/console"
	"github.com/appengine-ltd/tidewater/internal/game"
	"github.com/appengine-ltd/tidewater/internal/world"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errNoWindow = errors.New("this build has no window support (built without cgo)")

type options struct {
	cfg       config.Config
	game      *game.Game
	logger    *slog.Logger
	zoom      int
	autopilot [game.PlayerCount]bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showVersion bool
		printSchema bool
		strict      bool
		headless    bool
		auto1       bool
		auto2       bool
		configPath  string
		writeConfig string
		script      string
		seed        int64
		zoom        int
	)
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&printSchema, "print-schema", false, "print the config file JSON schema and exit")
	flag.BoolVar(&strict, "strict", false, "stop a script at the first line that is not a command")
	flag.BoolVar(&headless, "headless", false, "play from the terminal instead of opening a window")
	flag.BoolVar(&auto1, "auto1", false, "start with P1 on autopilot")
	flag.BoolVar(&auto2, "auto2", false, "start with P2 on autopilot")
	flag.StringVar(&configPath, "config", "", "YAML config file (default: the user config file when present)")
	flag.StringVar(&writeConfig, "write-config", "", "write the effective config to this path and exit")
	flag.StringVar(&script, "script", "", "run console commands from this file (- for stdin) and exit")
	flag.Int64Var(&seed, "seed", 0, "world seed, overrides config")
	flag.IntVar(&zoom, "zoom", 2, "window pixels per world pixel")
	flag.Parse()

	if showVersion {
		fmt.Printf("Tidewater %s (%s) %s\n", version, commit, date)
		return nil
	}
	if printSchema {
		b, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(b)
		return err
	}

	if configPath == "" {
		configPath = config.Discover()
	}
	cfg, err := config.FromEnv(configPath)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = seed
		}
	})
	if writeConfig != "" {
		return config.Save(writeConfig, cfg)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	g, err := newGame(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("session started", "session", g.Session.ID.String(), "seed", cfg.Seed, "map", cfg.Map, "config", configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if script != "" {
		return runScript(ctx, g, cfg, logger, script, strict)
	}
	if !headless {
		err := runWindow(options{cfg: cfg, game: g, logger: logger, zoom: max(1, zoom), autopilot: [game.PlayerCount]bool{auto1, auto2}})
		if !errors.Is(err, errNoWindow) {
			return err
		}
		logger.Warn("falling back to the terminal", "reason", err)
	}
	c := console.New(g, os.Stdout, console.Options{Tick: cfg.Tick(), Logger: logger})
	fmt.Println("Tidewater console. Type help for commands, quit to leave.")
	return c.Run(ctx, os.Stdin, false)
}

func newGame(cfg config.Config, logger *slog.Logger) (*game.Game, error) {
	m, err := world.Load(cfg.Map)
	if err != nil {
		return nil, err
	}
	tuning := cfg.Tuning()
	return game.New(game.Options{
		Seed:   cfg.Seed,
		Tuning: &tuning,
		Map:    m,
		Spawns: m.Spawns(),
		Logger: logger,
	})
}

func runScript(ctx context.Context, g *game.Game, cfg config.Config, logger *slog.Logger, path string, strict bool) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}
	c := console.New(g, os.Stdout, console.Options{Tick: cfg.Tick(), Logger: logger})
	if err := c.Run(ctx, r, strict); err != nil {
		return err
	}
	fmt.Println(c.Status())
	return nil
}
