package entity

import "retro-snake/game/types"

const minSegmentsCap = 8

// Segments is a ring buffer of grid cells ordered head first.
// PushFront and PopBack are O(1); the buffer doubles when full.
type Segments struct {
	buf  []types.Point
	head int
	n    int
}

// NewSegments returns a buffer holding cells in the given order.
func NewSegments(cells []types.Point) *Segments {
	s := &Segments{}
	s.Reset(cells)
	return s
}

// Reset replaces the contents with cells, keeping the backing array when it fits.
func (s *Segments) Reset(cells []types.Point) {
	if len(s.buf) < len(cells) || len(s.buf) == 0 {
		size := minSegmentsCap
		for size < len(cells) {
			size *= 2
		}
		s.buf = make([]types.Point, size)
	}
	copy(s.buf, cells)
	s.head = 0
	s.n = len(cells)
}

func (s *Segments) Len() int {
	return s.n
}

// At returns the i-th cell, 0 being the head.
func (s *Segments) At(i int) types.Point {
	if i < 0 || i >= s.n {
		panic("entity: segment index out of range")
	}
	return s.buf[(s.head+i)%len(s.buf)]
}

func (s *Segments) PushFront(p types.Point) {
	if s.n == len(s.buf) {
		s.grow()
	}
	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = p
	s.n++
}

// PopBack removes and returns the tail cell.
func (s *Segments) PopBack() types.Point {
	if s.n == 0 {
		panic("entity: pop from empty segments")
	}
	i := (s.head + s.n - 1) % len(s.buf)
	p := s.buf[i]
	s.n--
	return p
}

// Contains scans the cells from index `from` onwards for p.
func (s *Segments) Contains(p types.Point, from int) bool {
	for i := from; i < s.n; i++ {
		if s.At(i) == p {
			return true
		}
	}
	return false
}

// Slice copies the cells into a new slice, head first.
func (s *Segments) Slice() []types.Point {
	out := make([]types.Point, s.n)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

func (s *Segments) grow() {
	size := len(s.buf) * 2
	if size < minSegmentsCap {
		size = minSegmentsCap
	}
	buf := make([]types.Point, size)
	for i := 0; i < s.n; i++ {
		buf[i] = s.At(i)
	}
	s.buf = buf
	s.head = 0
}
