package game

type AchievementID string

const (
	AchFirstCatch     AchievementID = "first_catch"
	AchAngler         AchievementID = "angler"
	AchNightOwl       AchievementID = "night_owl"
	AchRareHunter     AchievementID = "rare_hunter"
	AchLegend         AchievementID = "legend"
	AchBootCollector  AchievementID = "boot_collector"
	AchWellRested     AchievementID = "well_rested"
	AchTycoon         AchievementID = "tycoon"
	AchCrabShack      AchievementID = "crab_shack"
	AchChef           AchievementID = "chef"
	AchTrader         AchievementID = "trader"
	AchTreasureHunter AchievementID = "treasure_hunter"
)

type Achievement struct {
	ID          AchievementID
	Name        string
	Description string
	Goal        int
	progress    func(Progress) int
}

// Progress clamps the current count to the goal for display.
func (a Achievement) Progress(p Progress) int {
	return min(a.Goal, a.progress(p))
}

func boolCount(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

var achievements = []Achievement{
	{ID: AchFirstCatch, Name: "First Catch", Description: "Land your first fish", Goal: 1,
		progress: func(p Progress) int { return p.FishCaught }},
	{ID: AchAngler, Name: "Angler", Description: "Catch 50 fish", Goal: 50,
		progress: func(p Progress) int { return p.FishCaught }},
	{ID: AchNightOwl, Name: "Night Owl", Description: "Catch 10 things at night", Goal: 10,
		progress: func(p Progress) int { return p.NightCatches }},
	{ID: AchRareHunter, Name: "Rare Hunter", Description: "Land a rare fish", Goal: 1,
		progress: func(p Progress) int { return p.RareCaught }},
	{ID: AchLegend, Name: "Legend", Description: "Land the " + LegendaryKoiName, Goal: 1,
		progress: func(p Progress) int { return boolCount(p.Caught[LegendaryKoiName]) }},
	{ID: AchBootCollector, Name: "Boot Collector", Description: "Reel in 5 old boots", Goal: 5,
		progress: func(p Progress) int { return p.Boots }},
	{ID: AchWellRested, Name: "Well Rested", Description: "Sleep through 3 nights", Goal: 3,
		progress: func(p Progress) int { return p.Sleeps }},
	{ID: AchTycoon, Name: "Tycoon", Description: "Earn 1000 gold", Goal: 1000,
		progress: func(p Progress) int { return p.GoldEarned }},
	{ID: AchCrabShack, Name: "Crab Shack", Description: "Net 10 crustaceans", Goal: 10,
		progress: func(p Progress) int { return p.CrustaceansCaught }},
	{ID: AchChef, Name: "Chef", Description: "Cook 10 meals", Goal: 10,
		progress: func(p Progress) int { return p.Cooked }},
	{ID: AchTrader, Name: "Trader", Description: "Trade with 5 travellers", Goal: 5,
		progress: func(p Progress) int { return p.Trades }},
	{ID: AchTreasureHunter, Name: "Treasure Hunter", Description: "Open 3 treasure chests", Goal: 3,
		progress: func(p Progress) int { return p.ChestsOpened }},
}

func Achievements() []Achievement { return append([]Achievement(nil), achievements...) }

// evaluateAchievements unlocks everything whose goal is now met and returns
// the newly unlocked entries in catalog order.
func (s *Session) evaluateAchievements() []Achievement {
	var out []Achievement
	for _, a := range achievements {
		if s.unlocked[a.ID] || a.progress(s.progress) < a.Goal {
			continue
		}
		if s.unlock(a.ID) {
			out = append(out, a)
		}
	}
	return out
}
