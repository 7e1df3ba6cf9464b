package state

import (
	"log"

	"PaintBoard/internal/shape"
)

// Session tracks the one shape being drawn between pointer-down and
// pointer-up. The zero value is idle.
type Session struct {
	current *shape.Shape
}

// Drawing reports whether a gesture is active.
func (s *Session) Drawing() bool { return s.current != nil }

// Current returns the in-progress shape, or nil when idle.
func (s *Session) Current() *shape.Shape { return s.current }

// Begin starts a new shape at p using a copy of sel. A second Begin without
// an intervening End is ignored.
func (s *Session) Begin(p shape.Point, sel Selection) error {
	if s.current != nil {
		log.Printf("[SESSION] pointer down at %v while drawing %s, ignored", p, s.current.ID)
		return nil
	}
	sh, err := shape.New(sel.Tool, p, sel.Style())
	if err != nil {
		return err
	}
	stampNew(sh)
	s.current = sh
	return nil
}

// Move extends the in-progress shape. It reports false when idle.
func (s *Session) Move(p shape.Point) bool {
	if s.current == nil {
		return false
	}
	s.current.Extend(p)
	return true
}

// End applies the release point and hands the shape over to the caller,
// returning the session to idle. It returns nil when idle.
func (s *Session) End(p shape.Point) *shape.Shape {
	if s.current == nil {
		return nil
	}
	sh := s.current
	sh.Extend(p)
	s.current = nil
	return sh
}
