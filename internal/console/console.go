// Package console drives a game.Game from typed or scripted command lines.
// Every command is translated into the same per-frame key input the GUI
// produces, so scripted runs exercise the real simulation path.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/appengine-ltd/tidewater/internal/game"
	"github.com/appengine-ltd/tidewater/internal/parser"
)

const (
	defaultTick = 16 * time.Millisecond
	defaultMove = 250 * time.Millisecond
	defaultWait = time.Second
	reelLimit   = 60 * time.Second
)

// Result is what one line did. Handled is false when the line could not be
// mapped to a command.
type Result struct {
	Handled bool
	Message string
	Elapsed time.Duration
	Quit    bool
}

type Options struct {
	Tick          time.Duration
	DefaultPlayer int
	Logger        *slog.Logger
}

type Console struct {
	g       *game.Game
	parser  *parser.Parser
	out     io.Writer
	tick    time.Duration
	player  int
	log     *slog.Logger
	context parser.ParseContext
}

func New(g *game.Game, out io.Writer, opts Options) *Console {
	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}
	player := opts.DefaultPlayer
	if player < 1 || player > game.PlayerCount {
		player = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if out == nil {
		out = io.Discard
	}
	return &Console{
		g:       g,
		parser:  parser.New(),
		out:     out,
		tick:    tick,
		player:  player,
		log:     logger,
		context: parser.ParseContext{Shop: shopNames()},
	}
}

func (c *Console) Game() *game.Game { return c.g }

// Execute parses one line and runs it against the game.
func (c *Console) Execute(line string) Result {
	intent := c.parser.Parse(c.context, line)
	if intent.Clarify != nil {
		return Result{Handled: false, Message: clarifyText(intent.Clarify)}
	}
	n := intent.Player
	if n == 0 {
		n = c.player
	}
	c.log.Debug("console command", "line", parser.IntentToCommandString(intent), "confidence", intent.Confidence)

	switch intent.Verb {
	case "help":
		return Result{Handled: true, Message: "Commands: " + strings.Join(c.parser.Verbs(), ", ") +
			". Prefix with p1/p2 to pick a player; durations like 500ms, 2s."}
	case "quit":
		return Result{Handled: true, Quit: true, Message: "Bye."}

	case "act":
		return c.press(n, game.PlayerInput{Act: true})
	case "eat":
		return c.press(n, game.PlayerInput{Eat: true})
	case "bait":
		return c.press(n, game.PlayerInput{Bait: true})
	case "net":
		return c.press(n, game.PlayerInput{Net: true})
	case "menu":
		return c.press(n, game.PlayerInput{Menu: true})
	case "up":
		return c.press(n, game.PlayerInput{Up: true})
	case "down":
		return c.press(n, game.PlayerInput{Down: true})
	case "escape":
		elapsed := c.step(game.FrameInput{Escape: true})
		return Result{Handled: true, Elapsed: elapsed, Message: "Closed menus."}
	case "move":
		return c.executeMove(n, intent)
	case "face":
		return c.executeFace(n, intent.Args)
	case "wait":
		return c.executeWait(intent.Quantity)
	case "reel":
		return c.executeReel(n)
	case "buy":
		return c.executeBuy(n, strings.Join(intent.Args, " "))
	case "sell":
		return c.executeSell(n)
	case "give":
		return c.executeGive(n, intent.Quantity)
	case "goto":
		return c.executeGoto(n, intent.Args)

	case "status":
		return Result{Handled: true, Message: c.Status()}
	case "index":
		return Result{Handled: true, Message: c.FishIndex()}
	case "achievements":
		return Result{Handled: true, Message: c.AchievementList()}
	case "board":
		return Result{Handled: true, Message: c.Board()}
	case "map":
		return Result{Handled: true, Message: c.LocalMap(n, 7)}
	case "time":
		return Result{Handled: true, Message: clockLine(c.g.Clock)}
	default:
		return Result{Handled: false, Message: fmt.Sprintf("No handler for %q.", intent.Verb)}
	}
}

func clarifyText(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, parser.IntentToCommandString(o))
	}
	return q.Prompt + " " + strings.Join(opts, " | ")
}

func shopNames() []string {
	var out []string
	for i, r := range game.Rods() {
		if i > 0 {
			out = append(out, r.Name)
		}
	}
	for _, n := range game.Nets() {
		out = append(out, n.Name)
	}
	for i, b := range game.Baits() {
		if i != game.NoBait {
			out = append(out, b.Name)
		}
	}
	return out
}

func (c *Console) step(in game.FrameInput) time.Duration {
	c.g.Step(c.tick, in)
	return c.tick
}

func (c *Console) idle(d time.Duration) time.Duration {
	var elapsed time.Duration
	for elapsed < d {
		elapsed += c.step(game.FrameInput{})
	}
	return elapsed
}

func frameFor(n int, in game.PlayerInput) game.FrameInput {
	var f game.FrameInput
	f.Players[n-1] = in
	return f
}

// press sends one edge for player n and reports whatever the player said.
func (c *Console) press(n int, in game.PlayerInput) Result {
	p := c.g.Player(n)
	before := p.Message
	elapsed := c.step(frameFor(n, in))
	return Result{Handled: true, Elapsed: elapsed, Message: fmt.Sprintf("P%d: %s", n, c.said(p, before))}
}

// said returns the line p spoke since before was sampled, or a state
// summary when the step was silent. A fresh message always has more time
// left than one that has been ticking.
func (c *Console) said(p *game.Player, before game.Message) string {
	if p.Message.Active() && (p.Message.Text != before.Text || p.Message.Remaining > before.Remaining) {
		return p.Message.Text
	}
	return describePlayer(c.g, p)
}
