package gui

import (
	"github.com/appengine-ltd/tidewater/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyState is the slice of raylib input the host reads. Tests replace it.
type keyState interface {
	Down(key int32) bool
	Pressed(key int32) bool
}

type raylibKeys struct{}

func (raylibKeys) Down(key int32) bool    { return rl.IsKeyDown(key) }
func (raylibKeys) Pressed(key int32) bool { return rl.IsKeyPressed(key) }

// Binding is one player's half of the keyboard.
type Binding struct {
	Up, Down, Left, Right int32

	Act, Eat, Bait, Net, Menu int32
}

var Bindings = [game.PlayerCount]Binding{
	{
		Up: rl.KeyW, Down: rl.KeyS, Left: rl.KeyA, Right: rl.KeyD,
		Act: rl.KeyF, Eat: rl.KeyE, Bait: rl.KeyQ, Net: rl.KeyR, Menu: rl.KeyG,
	},
	{
		Up: rl.KeyUp, Down: rl.KeyDown, Left: rl.KeyLeft, Right: rl.KeyRight,
		Act: rl.KeySlash, Eat: rl.KeyPeriod, Bait: rl.KeyComma, Net: rl.KeySemicolon, Menu: rl.KeyApostrophe,
	},
}

const (
	keyIndex        = rl.KeyTab
	keyAchievements = rl.KeyF2
	keyLeaderboard  = rl.KeyF3
	keyAutopilot1   = rl.KeyF5
	keyAutopilot2   = rl.KeyF6
	keyCommandBar   = rl.KeyEnter
)

func axis(k keyState, neg, pos int32) int {
	v := 0
	if k.Down(neg) {
		v--
	}
	if k.Down(pos) {
		v++
	}
	return v
}

func samplePlayer(k keyState, b Binding) game.PlayerInput {
	return game.PlayerInput{
		DX:   axis(k, b.Left, b.Right),
		DY:   axis(k, b.Up, b.Down),
		Up:   k.Pressed(b.Up),
		Down: k.Pressed(b.Down),
		Act:  k.Pressed(b.Act),
		Eat:  k.Pressed(b.Eat),
		Bait: k.Pressed(b.Bait),
		Net:  k.Pressed(b.Net),
		Menu: k.Pressed(b.Menu),
	}
}

// sampleFrame reads both bindings and the shared panel keys once per tick.
func sampleFrame(k keyState) game.FrameInput {
	var in game.FrameInput
	for i, b := range Bindings {
		in.Players[i] = samplePlayer(k, b)
	}
	in.ToggleIndex = k.Pressed(keyIndex)
	in.ToggleAchievements = k.Pressed(keyAchievements)
	in.ToggleLeaderboard = k.Pressed(keyLeaderboard)
	in.Escape = k.Pressed(rl.KeyEscape)
	return in
}
