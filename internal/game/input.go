package game

// PlayerInput is one player's binding sampled for a single tick. DX/DY are
// held directions in {-1,0,1}; every bool is an edge (became true this tick).
type PlayerInput struct {
	DX, DY int

	Up, Down bool

	Act  bool
	Eat  bool
	Bait bool
	Net  bool
	Menu bool
}

func (in PlayerInput) wantsMove() bool {
	return in.DX != 0 || in.DY != 0
}

// FrameInput is everything the simulation consumes for one tick.
type FrameInput struct {
	Players [PlayerCount]PlayerInput

	ToggleIndex        bool
	ToggleAchievements bool
	ToggleLeaderboard  bool
	Escape             bool
}
