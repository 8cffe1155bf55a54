package game

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Progress is the shared counter block. Every field only ever increases.
type Progress struct {
	FishCaught        int
	RareCaught        int
	NightCatches      int
	Boots             int
	CrustaceansCaught int
	Cooked            int
	Trades            int
	ChestsOpened      int
	Sleeps            int
	GoldEarned        int
	Caught            map[string]bool
}

// Session is the state both players share for the lifetime of one game: the
// catch index, the fridge and the achievement counters. It is owned by the
// simulation tick; mutation goes through the record methods only.
type Session struct {
	ID uuid.UUID

	progress  Progress
	fishIndex map[string]int
	fridge    []Item
	unlocked  map[AchievementID]bool
	order     []AchievementID
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		progress:  Progress{Caught: map[string]bool{}},
		fishIndex: map[string]int{},
		unlocked:  map[AchievementID]bool{},
	}
}

func (s *Session) recordCatch(it Item, rare, night bool) {
	s.fishIndex[it.Name]++
	s.progress.Caught[it.Name] = true
	switch it.Kind {
	case KindFish:
		s.progress.FishCaught++
		if rare {
			s.progress.RareCaught++
		}
		if night {
			s.progress.NightCatches++
		}
	case KindCrustacean:
		s.progress.CrustaceansCaught++
		if night {
			s.progress.NightCatches++
		}
	case KindJunk:
		s.progress.Boots++
	case KindTreasureChest, KindLoot:
	}
}

func (s *Session) recordGold(n int) {
	if n > 0 {
		s.progress.GoldEarned += n
	}
}

func (s *Session) recordCook()  { s.progress.Cooked++ }
func (s *Session) recordTrade() { s.progress.Trades++ }
func (s *Session) recordChest() { s.progress.ChestsOpened++ }
func (s *Session) recordSleep() { s.progress.Sleeps++ }

// deposit moves items into the fridge. The fridge never gives anything back.
func (s *Session) deposit(items []Item) {
	s.fridge = append(s.fridge, items...)
}

func (s *Session) unlock(id AchievementID) bool {
	if s.unlocked[id] {
		return false
	}
	s.unlocked[id] = true
	s.order = append(s.order, id)
	return true
}

func (s *Session) Progress() Progress {
	p := s.progress
	p.Caught = maps.Clone(s.progress.Caught)
	return p
}

func (s *Session) FishIndex() map[string]int { return maps.Clone(s.fishIndex) }
func (s *Session) Fridge() []Item            { return slices.Clone(s.fridge) }
func (s *Session) FridgeCount() int          { return len(s.fridge) }
func (s *Session) Unlocked(id AchievementID) bool {
	return s.unlocked[id]
}

// UnlockOrder lists unlocked achievements in the order they were earned.
func (s *Session) UnlockOrder() []AchievementID { return slices.Clone(s.order) }
