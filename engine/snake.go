package engine

import "fmt"

// MaxSnakeLength caps growth; longer growth requests are ignored
const MaxSnakeLength = 101

// Snake is a fixed-capacity segment sequence with the head at index 0
type Snake struct {
	segments [MaxSnakeLength]Segment
	length   int
}

// NewSnake creates a one-segment snake at head
func NewSnake(head Point) *Snake {
	s := &Snake{}
	s.Reset(head)
	return s
}

// Reset shrinks the snake back to a lone head at p
func (s *Snake) Reset(p Point) {
	s.segments[0] = Segment{Point: p, Head: true}
	s.length = 1
}

func (s *Snake) Len() int {
	return s.length
}

func (s *Snake) Head() Point {
	return s.segments[0].Point
}

// Segments returns the live segments, head first.
// The slice aliases the snake and is only valid until the next mutation.
func (s *Snake) Segments() []Segment {
	return s.segments[:s.length]
}

// Move advances the head one cell and shifts every trailing segment into
// the position of the segment ahead of it
func (s *Snake) Move(dir Direction) {
	prev := s.segments[0].Point
	s.segments[0].Point = prev.Step(dir, 1)

	for i := 1; i < s.length; i++ {
		s.segments[i].Point, prev = prev, s.segments[i].Point
	}
}

// Grow appends a tail segment one cell behind the current tail, opposite to dir.
// Returns false without touching the snake when already at MaxSnakeLength.
func (s *Snake) Grow(dir Direction) bool {
	if s.length >= MaxSnakeLength {
		return false
	}

	tail := s.segments[s.length-1].Point
	s.segments[s.length] = Segment{Point: tail.Step(dir, -1)}
	s.length++
	return true
}

// Chop keeps segments [0, idx)
func (s *Snake) Chop(idx int) {
	if idx < 1 || idx > s.length {
		panic(fmt.Sprintf("engine: chop index %d not in [1,%d]", idx, s.length))
	}
	s.length = idx
}

// SelfCollision reports the truncation index of a collision after a move in dir.
// A reversal against prev hits the neck (index 1); otherwise the first body
// segment sharing the head's cell is returned.
func (s *Snake) SelfCollision(dir, prev Direction) (int, bool) {
	if s.length == 1 {
		return 0, false
	}

	if dir != DirIdle && dir == prev.Opposite() {
		return 1, true
	}

	head := s.segments[0].Point
	for i := 1; i < s.length; i++ {
		if s.segments[i].Point == head {
			return i, true
		}
	}
	return 0, false
}
