package gui

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/appengine-ltd/tidewater/internal/bot"
	"github.com/appengine-ltd/tidewater/internal/console"
	"github.com/appengine-ltd/tidewater/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxFrame    = 100 * time.Millisecond
	logCapacity = 6
	logLifetime = 8 * time.Second
)

type AppConfig struct {
	Title   string
	Width   int32
	Height  int32
	FPS     int32
	Game    *game.Game
	Console *console.Console
	Logger  *slog.Logger
	// Autopilot starts the given players under bot control.
	Autopilot [game.PlayerCount]bool
}

type logLine struct {
	text string
	age  time.Duration
}

type App struct {
	cfg   AppConfig
	g     *game.Game
	log   *slog.Logger
	keys  keyState
	queue *lineQueue
	bots  [game.PlayerCount]*bot.Bot
	auto  [game.PlayerCount]bool

	barOpen bool
	bar     []rune
	output  []logLine
	quit    bool
}

func NewApp(cfg AppConfig) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Title == "" {
		cfg.Title = "Tidewater"
	}
	if cfg.Console == nil {
		cfg.Console = console.New(cfg.Game, io.Discard, console.Options{Logger: logger})
	}
	a := &App{
		cfg:   cfg,
		g:     cfg.Game,
		log:   logger,
		keys:  raylibKeys{},
		queue: newLineQueue(16),
		auto:  cfg.Autopilot,
	}
	for i := range a.bots {
		a.bots[i] = bot.New(i+1, cfg.Game.Map, bot.Options{Logger: logger})
	}
	return a
}

// Run opens the window and drives the game until the window closes or a
// console quit command arrives.
func (a *App) Run() error {
	rl.InitWindow(a.cfg.Width, a.cfg.Height, a.cfg.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(a.cfg.FPS)
	initTypography()
	defer shutdownTypography()

	a.log.Info("window open", "width", a.cfg.Width, "height", a.cfg.Height, "session", a.g.Session.ID.String())
	for !rl.WindowShouldClose() && !a.quit {
		dt := min(time.Duration(float64(rl.GetFrameTime())*float64(time.Second)), maxFrame)
		a.update(dt)

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		a.draw()
		rl.EndDrawing()
	}
	a.log.Info("window closed", "session", a.g.Session.ID.String())
	return nil
}

func (a *App) update(dt time.Duration) {
	typing := a.barOpen
	a.updateCommandBar()
	a.runQueued()

	var in game.FrameInput
	if !typing && !a.barOpen {
		in = sampleFrame(a.keys)
		if a.keys.Pressed(keyAutopilot1) {
			a.toggleAutopilot(0)
		}
		if a.keys.Pressed(keyAutopilot2) {
			a.toggleAutopilot(1)
		}
	}
	for i, b := range a.bots {
		if a.auto[i] {
			in.Players[i] = b.Next(a.g, dt)
		}
	}
	a.g.Step(dt, in)
	a.ageOutput(dt)
}

func (a *App) toggleAutopilot(i int) {
	a.auto[i] = !a.auto[i]
	a.log.Info("autopilot", "player", i+1, "enabled", a.auto[i])
}

// updateCommandBar collects typed characters while the bar is open. Enter
// submits the line to the queue and escape discards it.
func (a *App) updateCommandBar() {
	if !a.barOpen {
		if a.keys.Pressed(keyCommandBar) {
			a.barOpen = true
			a.bar = a.bar[:0]
		}
		return
	}
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		if r >= 32 && r < 127 {
			a.bar = append(a.bar, r)
		}
	}
	switch {
	case a.keys.Pressed(rl.KeyBackspace) && len(a.bar) > 0:
		a.bar = a.bar[:len(a.bar)-1]
	case a.keys.Pressed(rl.KeyEscape):
		a.barOpen = false
	case a.keys.Pressed(keyCommandBar):
		a.barOpen = false
		if line := strings.TrimSpace(string(a.bar)); line != "" {
			a.queue.Enqueue(line)
		}
	}
}

func (a *App) runQueued() {
	for line, ok := a.queue.Dequeue(); ok; line, ok = a.queue.Dequeue() {
		res := a.cfg.Console.Execute(line)
		a.log.Debug("command bar", "line", line, "handled", res.Handled, "elapsed", res.Elapsed)
		a.pushOutput("> " + line)
		for _, l := range strings.Split(res.Message, "\n") {
			a.pushOutput(l)
		}
		if res.Quit {
			a.quit = true
		}
	}
}

func (a *App) pushOutput(text string) {
	if text == "" {
		return
	}
	a.output = append(a.output, logLine{text: text})
	if over := len(a.output) - logCapacity; over > 0 {
		a.output = a.output[over:]
	}
}

func (a *App) ageOutput(dt time.Duration) {
	kept := a.output[:0]
	for _, l := range a.output {
		l.age += dt
		if l.age < logLifetime {
			kept = append(kept, l)
		}
	}
	a.output = kept
}
