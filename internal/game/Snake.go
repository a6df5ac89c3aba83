package game

import "github.com/Mshel/ouroboros/internal/grid"

// Snake is an ordered body with the head at index 0.
type Snake struct {
	Body             []grid.Cell
	CurrentDirection grid.Direction
	// pendingGrowth is the number of upcoming ticks that keep the tail.
	pendingGrowth int
}

func NewSnake(head grid.Cell) *Snake {
	return &Snake{
		Body: []grid.Cell{head},
	}
}

func (s *Snake) Head() grid.Cell {
	return s.Body[0]
}

func (s *Snake) Tail() grid.Cell {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Growing reports whether the tail stays put on the next move.
func (s *Snake) Growing() bool {
	return s.pendingGrowth > 0
}

// Heading is the direction of the last move, taken from the neck to the
// head. It is zero for a snake that is only a head.
func (s *Snake) Heading() grid.Direction {
	if s.Len() < 2 {
		return grid.Direction{}
	}
	if dir, ok := grid.DirectionBetween(s.Body[1], s.Body[0]); ok {
		return dir
	}
	return grid.Direction{}
}

// UpdateDirection applies player input. Reversing onto the neck is ignored
// once the snake is longer than its head. The check is against the last
// move, not the last request, so several inputs inside one tick cannot
// add up to a reversal.
func (s *Snake) UpdateDirection(newDir grid.Direction) {
	if !newDir.IsUnit() {
		return
	}
	if heading := s.Heading(); !heading.IsZero() && newDir == heading.Opposite() {
		return
	}
	s.CurrentDirection = newDir
}

// Occupies reports whether c is part of the body after the next move, so
// the tail tip does not count unless the snake is growing.
func (s *Snake) Occupies(c grid.Cell) bool {
	segments := s.Body
	if !s.Growing() {
		segments = segments[:len(segments)-1]
	}
	for _, segment := range segments {
		if segment == c {
			return true
		}
	}
	return false
}

// Move pushes newHead and drops the tail unless growth is pending. grow adds
// to the pending growth first.
func (s *Snake) Move(newHead grid.Cell, grow int) {
	s.pendingGrowth += grow
	s.Body = append([]grid.Cell{newHead}, s.Body...)
	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// HitsItself reports whether the head overlaps another segment.
func (s *Snake) HitsItself() bool {
	head := s.Head()
	for _, segment := range s.Body[1:] {
		if segment == head {
			return true
		}
	}
	return false
}

// BodyCopy returns a copy that is safe to hand to another goroutine.
func (s *Snake) BodyCopy() []grid.Cell {
	body := make([]grid.Cell, len(s.Body))
	copy(body, s.Body)
	return body
}
