package entity

import (
	"snake-arcade/game/types"
)

// Snake is an ordered body, head first, moving one cell per tick.
type Snake struct {
	body      []types.Point
	direction types.Direction
	// grow keeps the tail in place on the next MoveForward.
	grow bool
}

// NewSnake builds a snake from an explicit body (head first).
func NewSnake(body []types.Point, direction types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		body:      b,
		direction: direction,
	}
}

// Spawn lays out a snake of the given length whose tail sits at start and whose
// head points along direction.
func Spawn(start types.Point, length int, direction types.Direction) *Snake {
	step := direction.ToPoint()
	body := make([]types.Point, length)
	for i := 0; i < length; i++ {
		offset := length - 1 - i
		body[i] = types.Point{X: start.X + step.X*offset, Y: start.Y + step.Y*offset}
	}
	return &Snake{
		body:      body,
		direction: direction,
	}
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []types.Point {
	b := make([]types.Point, len(s.body))
	copy(b, s.body)
	return b
}

// Growing reports whether the next move keeps the tail.
func (s *Snake) Growing() bool {
	return s.grow
}

// heading resolves a requested direction against the current one. None and
// reversals fall back to the current heading.
func (s *Snake) heading(requested types.Direction) types.Direction {
	if requested == types.None || requested == s.direction.Opposite() {
		return s.direction
	}
	return requested
}

// NextHead returns where the head would be after one step. It does not move.
func (s *Snake) NextHead(requested types.Direction) types.Point {
	return s.Head().Add(s.heading(requested).ToPoint())
}

// Overlaps reports whether p is any body cell, tail included.
func (s *Snake) Overlaps(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

// MoveForward advances the head one cell, turning first if requested is
// accepted. The tail is dropped unless growth is pending.
func (s *Snake) MoveForward(requested types.Direction) {
	s.direction = s.heading(requested)
	newHead := s.Head().Add(s.direction.ToPoint())

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead

	if s.grow {
		s.grow = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// RestoreTail makes the next move grow the snake by one cell.
func (s *Snake) RestoreTail() {
	s.grow = true
}
