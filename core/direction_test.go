package core_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/core"
)

// TestDirectionDelta verifies each direction's unit coordinate offset.
func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir    core.Direction
		dx, dy int
	}{
		{core.Up, 0, -1},
		{core.Down, 0, 1},
		{core.Left, -1, 0},
		{core.Right, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("%v.Delta() = (%d,%d); want (%d,%d)", tc.dir, dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

// TestDirectionOpposite checks that Opposite is an involution pairing
// Up↔Down and Left↔Right.
func TestDirectionOpposite(t *testing.T) {
	pairs := map[core.Direction]core.Direction{
		core.Up:    core.Down,
		core.Down:  core.Up,
		core.Left:  core.Right,
		core.Right: core.Left,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v; want %v", d, got, want)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v; want %v", d, got, d)
		}
	}
}

// TestDirectionsOrder pins the canonical iteration order every traversal
// depends on for determinism.
func TestDirectionsOrder(t *testing.T) {
	want := [4]core.Direction{core.Up, core.Down, core.Left, core.Right}
	if core.Directions != want {
		t.Errorf("Directions = %v; want %v", core.Directions, want)
	}
}

// TestDirectionString covers the Stringer including an out-of-range value.
func TestDirectionString(t *testing.T) {
	if got := core.Up.String(); got != "Up" {
		t.Errorf("Up.String() = %q; want %q", got, "Up")
	}
	if got := core.Direction(42).String(); got != "Unknown" {
		t.Errorf("Direction(42).String() = %q; want %q", got, "Unknown")
	}
}
