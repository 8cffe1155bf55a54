package game

import (
	"testing"

	"pgregory.net/rapid"
)

func TestNewRollerRepeatsForSameSeed(t *testing.T) {
	a, b := NewRoller(12345), NewRoller(12345)
	for i := range 32 {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("expected identical draws for one seed, draw %d: %d != %d", i, x, y)
		}
	}
	if seedWord(99, "a") == seedWord(99, "b") {
		t.Fatalf("expected salts to split the seed into different words")
	}
}

func TestRandomBetweenStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := NewRoller(rapid.Int64().Draw(t, "seed"))
		lo := rapid.Float64Range(-100, 100).Draw(t, "lo")
		span := rapid.Float64Range(0, 50).Draw(t, "span")
		got := randomBetween(r, lo, lo+span)
		if got < lo || got > lo+span {
			t.Fatalf("expected %v in [%v, %v]", got, lo, lo+span)
		}
	})
	if got := randomBetween(NewRoller(1), 3, 1); got != 3 {
		t.Fatalf("expected an inverted range to return lo, got %v", got)
	}
}
