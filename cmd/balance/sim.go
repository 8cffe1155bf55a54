package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/appengine-ltd/tidewater/internal/bot"
	"github.com/appengine-ltd/tidewater/internal/config"
	"github.com/appengine-ltd/tidewater/internal/game"
)

// SessionResult is what one simulated session produced.
type SessionResult struct {
	Seed         int64          `json:"seed"`
	Progress     game.Progress  `json:"progress"`
	Species      map[string]int `json:"species"`
	Achievements int            `json:"achievements"`
	TopScore     int            `json:"top_score"`
	RodTiers     [2]int         `json:"rod_tiers"`
	Gold         int            `json:"gold"`
}

type SpeciesCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Report aggregates every session of a run.
type Report struct {
	Sessions        int            `json:"sessions"`
	SimulatedPerRun string         `json:"simulated_per_run"`
	MeanCatches     float64        `json:"mean_catches"`
	MeanFish        float64        `json:"mean_fish"`
	MeanCrustaceans float64        `json:"mean_crustaceans"`
	MeanGoldEarned  float64        `json:"mean_gold_earned"`
	MeanSleeps      float64        `json:"mean_sleeps"`
	MeanAchieved    float64        `json:"mean_achievements"`
	MeanTopScore    float64        `json:"mean_top_score"`
	RareRate        float64        `json:"rare_rate"`
	Species         []SpeciesCount `json:"species"`
}

type runOptions struct {
	Sessions int
	Parallel int
	Duration time.Duration
	Config   config.Config
	Logger   *slog.Logger
	NewMap   func(name string) (game.TileMap, [game.PlayerCount]game.TilePos, error)
}

// runSessions simulates opts.Sessions games with seeds Config.Seed+i, at
// most opts.Parallel at a time.
func runSessions(ctx context.Context, opts runOptions) ([]SessionResult, error) {
	results := make([]SessionResult, opts.Sessions)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, opts.Parallel))
	for i := range opts.Sessions {
		seed := opts.Config.Seed + int64(i)
		eg.Go(func() error {
			res, err := runSession(ctx, opts, seed)
			if err != nil {
				return fmt.Errorf("session %d (seed %d): %w", i, seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

const cancelCheckEvery = 256

func runSession(ctx context.Context, opts runOptions, seed int64) (SessionResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m, spawns, err := opts.NewMap(opts.Config.Map)
	if err != nil {
		return SessionResult{}, err
	}
	tuning := opts.Config.Tuning()
	g, err := game.New(game.Options{Seed: seed, Tuning: &tuning, Map: m, Spawns: spawns, Logger: logger})
	if err != nil {
		return SessionResult{}, err
	}
	bots := []*bot.Bot{
		bot.New(1, m, bot.Options{Logger: logger}),
		bot.New(2, m, bot.Options{Logger: logger}),
	}

	tick := opts.Config.Tick()
	for step, elapsed := 0, time.Duration(0); elapsed < opts.Duration; step++ {
		if step%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return SessionResult{}, err
			}
		}
		g.Step(tick, bot.Frame(g, tick, bots...))
		elapsed += tick
	}

	res := SessionResult{
		Seed:     seed,
		Progress: g.Session.Progress(),
		Species:  g.Session.FishIndex(),
		RodTiers: [2]int{g.Player(1).RodTier, g.Player(2).RodTier},
		Gold:     g.Player(1).Gold + g.Player(2).Gold,
	}
	res.Achievements = len(g.Session.UnlockOrder())
	if board := g.Leaderboard(); len(board) > 0 {
		res.TopScore = board[0].Score
	}
	logger.Debug("session finished", "seed", seed, "catches", catches(res), "achievements", res.Achievements)
	return res, nil
}

func catches(r SessionResult) int {
	total := 0
	for _, n := range r.Species {
		total += n
	}
	return total
}

func aggregate(results []SessionResult, d time.Duration) Report {
	rep := Report{Sessions: len(results), SimulatedPerRun: d.String()}
	if len(results) == 0 {
		return rep
	}
	species := map[string]int{}
	var fish, rare int
	for _, r := range results {
		p := r.Progress
		rep.MeanCatches += float64(catches(r))
		rep.MeanFish += float64(p.FishCaught)
		rep.MeanCrustaceans += float64(p.CrustaceansCaught)
		rep.MeanGoldEarned += float64(p.GoldEarned)
		rep.MeanSleeps += float64(p.Sleeps)
		rep.MeanAchieved += float64(r.Achievements)
		rep.MeanTopScore += float64(r.TopScore)
		fish += p.FishCaught
		rare += p.RareCaught
		for name, n := range r.Species {
			species[name] += n
		}
	}
	n := float64(len(results))
	rep.MeanCatches /= n
	rep.MeanFish /= n
	rep.MeanCrustaceans /= n
	rep.MeanGoldEarned /= n
	rep.MeanSleeps /= n
	rep.MeanAchieved /= n
	rep.MeanTopScore /= n
	if fish > 0 {
		rep.RareRate = float64(rare) / float64(fish)
	}
	for _, name := range slices.Sorted(maps.Keys(species)) {
		rep.Species = append(rep.Species, SpeciesCount{Name: name, Count: species[name]})
	}
	slices.SortStableFunc(rep.Species, func(a, b SpeciesCount) int { return cmp.Compare(b.Count, a.Count) })
	return rep
}

func writeText(w io.Writer, rep Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "sessions\t%d\t(%s each)\n", rep.Sessions, rep.SimulatedPerRun)
	fmt.Fprintf(tw, "catches\t%.1f\n", rep.MeanCatches)
	fmt.Fprintf(tw, "fish\t%.1f\n", rep.MeanFish)
	fmt.Fprintf(tw, "crustaceans\t%.1f\n", rep.MeanCrustaceans)
	fmt.Fprintf(tw, "gold earned\t%.1f\n", rep.MeanGoldEarned)
	fmt.Fprintf(tw, "sleeps\t%.2f\n", rep.MeanSleeps)
	fmt.Fprintf(tw, "achievements\t%.2f\n", rep.MeanAchieved)
	fmt.Fprintf(tw, "top score\t%.1f\n", rep.MeanTopScore)
	fmt.Fprintf(tw, "rare rate\t%.2f%%\n", rep.RareRate*100)
	fmt.Fprintln(tw, "\nspecies\ttotal")
	for _, s := range rep.Species {
		fmt.Fprintf(tw, "%s\t%d\n", s.Name, s.Count)
	}
	return tw.Flush()
}
