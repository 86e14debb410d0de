package types

// Direction is a cardinal heading. None means no direction was requested.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint returns the unit step for d. Up decreases Y.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reversal of d. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// TurnLeft returns the heading after a 90 degree counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the heading after a 90 degree clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// MarshalText encodes d by name so snapshots read well as JSON.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Key is a discrete input event delivered by a host.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
)

// Direction maps a directional key to its heading, anything else to None.
func (k Key) Direction() Direction {
	switch k {
	case KeyUp:
		return Up
	case KeyDown:
		return Down
	case KeyLeft:
		return Left
	case KeyRight:
		return Right
	default:
		return None
	}
}

// KeyFor returns the key that requests heading d.
func KeyFor(d Direction) Key {
	switch d {
	case Up:
		return KeyUp
	case Down:
		return KeyDown
	case Left:
		return KeyLeft
	case Right:
		return KeyRight
	default:
		return KeyOther
	}
}
