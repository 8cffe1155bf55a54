package game

import (
	"strings"
	"testing"
)

func TestFirstCatchUnlocksOnce(t *testing.T) {
	s := NewSession()
	if got := s.evaluateAchievements(); len(got) != 0 {
		t.Fatalf("expected nothing unlocked at start, got %d", len(got))
	}
	s.recordCatch(FishItem("Bass"), false, false)
	got := s.evaluateAchievements()
	if len(got) != 1 || got[0].ID != AchFirstCatch {
		t.Fatalf("expected First Catch, got %+v", got)
	}
	if again := s.evaluateAchievements(); len(again) != 0 {
		t.Fatalf("expected unlocks to be reported once, got %+v", again)
	}
}

func TestLegendNeedsKoi(t *testing.T) {
	s := NewSession()
	s.recordCatch(FishItem("Sturgeon"), true, true)
	unlocked := map[AchievementID]bool{}
	for _, a := range s.evaluateAchievements() {
		unlocked[a.ID] = true
	}
	if !unlocked[AchRareHunter] || unlocked[AchLegend] {
		t.Fatalf("expected rare hunter without legend, got %v", unlocked)
	}
	s.recordCatch(FishItem(LegendaryKoiName), true, false)
	got := s.evaluateAchievements()
	if len(got) != 1 || got[0].ID != AchLegend {
		t.Fatalf("expected legend unlock, got %+v", got)
	}
}

func TestAchievementUnlockPostsBanner(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	for range 5 {
		g.Session.recordCatch(JunkItem(), false, false)
	}
	g.Step(tick, FrameInput{})
	if !g.Session.Unlocked(AchBootCollector) {
		t.Fatalf("expected boot collector unlocked")
	}
	if !strings.Contains(g.Banner.Text, "Boot Collector") {
		t.Fatalf("expected banner for unlock, got %q", g.Banner.Text)
	}
}

func TestLeaderboardOrder(t *testing.T) {
	g := newTestGame(t, &scriptedRoller{})
	g.Player(1).Stats = PlayerStats{FishCaught: 1}
	g.Player(2).Stats = PlayerStats{GoldEarned: 11}

	board := g.Leaderboard()
	if board[0].Player != 2 || board[0].Score != 11 || board[1].Score != 10 {
		t.Fatalf("expected P2 ahead 11-10, got %+v", board)
	}

	g.Player(2).Stats = PlayerStats{Eaten: 5}
	board = g.Leaderboard()
	if board[0].Player != 1 || board[0].Score != board[1].Score {
		t.Fatalf("expected tie broken by player number, got %+v", board)
	}
}

func TestScoreFormula(t *testing.T) {
	s := PlayerStats{FishCaught: 2, CrustaceansCaught: 1, GoldEarned: 7, NPCTrades: 1, Cooked: 3, Eaten: 4}
	if got := Score(s); got != 20+8+7+15+15+8 {
		t.Fatalf("expected 73, got %d", got)
	}
}
