package game

import (
	"cmp"
	"slices"
)

type Standing struct {
	Player int
	Score  int
	Stats  PlayerStats
}

func Score(s PlayerStats) int {
	return s.FishCaught*10 +
		s.CrustaceansCaught*8 +
		s.GoldEarned +
		s.NPCTrades*15 +
		s.Cooked*5 +
		s.Eaten*2
}

// Leaderboard ranks players by score, ties broken by player number.
func (g *Game) Leaderboard() []Standing {
	out := make([]Standing, 0, len(g.Players))
	for _, p := range g.Players {
		out = append(out, Standing{Player: p.Number, Score: Score(p.Stats), Stats: p.Stats})
	}
	slices.SortStableFunc(out, func(a, b Standing) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Player, b.Player)
	})
	return out
}
