package entity

import (
	"testing"

	"snake-arcade/game/types"
)

func TestSpawnLaysBodyBehindHead(t *testing.T) {
	s := Spawn(types.Point{X: 2, Y: 2}, 3, types.Right)

	want := []types.Point{{X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}
	got := s.Body()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Head() != want[0] {
		t.Errorf("Head() = %v", s.Head())
	}
	if s.Direction() != types.Right {
		t.Errorf("Direction() = %s", s.Direction())
	}
}

func TestNextHeadDoesNotMove(t *testing.T) {
	s := Spawn(types.Point{X: 4, Y: 4}, 2, types.Right)
	before := s.Body()

	tests := []struct {
		name      string
		requested types.Direction
		want      types.Point
	}{
		{"none keeps heading", types.None, types.Point{X: 6, Y: 4}},
		{"reversal keeps heading", types.Left, types.Point{X: 6, Y: 4}},
		{"turn up", types.Up, types.Point{X: 5, Y: 3}},
		{"turn down", types.Down, types.Point{X: 5, Y: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.NextHead(tt.requested); got != tt.want {
				t.Errorf("NextHead(%s) = %v, want %v", tt.requested, got, tt.want)
			}
		})
	}

	after := s.Body()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("NextHead mutated the body: %v -> %v", before, after)
		}
	}
	if s.Direction() != types.Right {
		t.Errorf("NextHead changed direction to %s", s.Direction())
	}
}

func TestMoveForwardSlides(t *testing.T) {
	s := Spawn(types.Point{X: 2, Y: 2}, 2, types.Right)

	s.MoveForward(types.None)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Head() != (types.Point{X: 4, Y: 2}) {
		t.Errorf("Head() = %v", s.Head())
	}
	if s.Overlaps(types.Point{X: 2, Y: 2}) {
		t.Error("old tail still occupied after slide")
	}
}

func TestMoveForwardRejectsReversal(t *testing.T) {
	s := Spawn(types.Point{X: 2, Y: 2}, 2, types.Right)

	s.MoveForward(types.Left)

	if s.Direction() != types.Right {
		t.Errorf("Direction() = %s, want right", s.Direction())
	}
	if s.Head() != (types.Point{X: 4, Y: 2}) {
		t.Errorf("Head() = %v, want (4,2)", s.Head())
	}
}

func TestMoveForwardTurns(t *testing.T) {
	s := Spawn(types.Point{X: 2, Y: 2}, 2, types.Right)

	s.MoveForward(types.Down)

	if s.Direction() != types.Down {
		t.Errorf("Direction() = %s, want down", s.Direction())
	}
	if s.Head() != (types.Point{X: 3, Y: 3}) {
		t.Errorf("Head() = %v, want (3,3)", s.Head())
	}
}

func TestRestoreTailGrowsOnNextMove(t *testing.T) {
	s := Spawn(types.Point{X: 2, Y: 2}, 2, types.Right)

	s.RestoreTail()
	if !s.Growing() {
		t.Fatal("Growing() = false after RestoreTail")
	}
	if s.Len() != 2 {
		t.Fatalf("RestoreTail changed length immediately: %d", s.Len())
	}

	s.MoveForward(types.None)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d after growing move, want 3", s.Len())
	}
	if !s.Overlaps(types.Point{X: 2, Y: 2}) {
		t.Error("tail was dropped on a growing move")
	}
	if s.Growing() {
		t.Error("growth flag not cleared")
	}

	s.MoveForward(types.None)
	if s.Len() != 3 {
		t.Errorf("Len() = %d after the following move, want 3", s.Len())
	}
}

func TestBodyIsACopy(t *testing.T) {
	s := Spawn(types.Point{X: 2, Y: 2}, 2, types.Right)
	b := s.Body()
	b[0] = types.Point{X: 99, Y: 99}
	if s.Head() == b[0] {
		t.Error("Body() exposes internal storage")
	}
}
