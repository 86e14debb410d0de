package types

import "testing"

func TestOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
		{None, None},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%s.Opposite() = %s, want %s", tt.d, got, tt.want)
		}
		if tt.d != None && tt.d.Opposite().Opposite() != tt.d {
			t.Errorf("%s: opposite is not an involution", tt.d)
		}
	}
}

func TestTurnsComposeToIdentity(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if got := d.TurnLeft().TurnRight(); got != d {
			t.Errorf("%s: left then right = %s", d, got)
		}
		if got := d.TurnRight().TurnRight(); got != d.Opposite() {
			t.Errorf("%s: two right turns = %s, want %s", d, got, d.Opposite())
		}
	}
}

func TestToPoint(t *testing.T) {
	origin := Point{X: 5, Y: 5}
	if got := origin.Add(Up.ToPoint()); got != (Point{X: 5, Y: 4}) {
		t.Errorf("up from (5,5) = %v", got)
	}
	if got := origin.Add(Right.ToPoint()); got != (Point{X: 6, Y: 5}) {
		t.Errorf("right from (5,5) = %v", got)
	}
	if got := None.ToPoint(); got != (Point{}) {
		t.Errorf("None.ToPoint() = %v", got)
	}
}

func TestGridBorder(t *testing.T) {
	g := Grid{Width: 30, Height: 20}
	tests := []struct {
		p        Point
		interior bool
	}{
		{Point{0, 5}, false},
		{Point{29, 5}, false},
		{Point{5, 0}, false},
		{Point{5, 19}, false},
		{Point{-1, 5}, false},
		{Point{1, 1}, true},
		{Point{28, 18}, true},
		{Point{15, 10}, true},
	}
	for _, tt := range tests {
		if got := g.IsInterior(tt.p); got != tt.interior {
			t.Errorf("IsInterior(%v) = %v, want %v", tt.p, got, tt.interior)
		}
		if g.IsWall(tt.p) == tt.interior {
			t.Errorf("IsWall(%v) disagrees with IsInterior", tt.p)
		}
	}
	if got := g.InteriorCells(); got != 28*18 {
		t.Errorf("InteriorCells() = %d", got)
	}
	if got := (Grid{Width: 2, Height: 9}).InteriorCells(); got != 0 {
		t.Errorf("degenerate InteriorCells() = %d", got)
	}
}

func TestKeyDirection(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if got := KeyFor(d).Direction(); got != d {
			t.Errorf("KeyFor(%s).Direction() = %s", d, got)
		}
	}
	if KeyPause.Direction() != None || KeyOther.Direction() != None {
		t.Error("non-directional keys must map to None")
	}
}
