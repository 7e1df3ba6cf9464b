// Package state owns the drawing: the gesture session, the history of
// finalized shapes, and the Board that ties them to host events.
package state

import (
	"fmt"
	"log"

	"PaintBoard/internal/shape"
)

// Board is the drawing surface engine. All methods must be called from the
// host's single event goroutine.
type Board struct {
	session Session
	history History
	clock   clock

	// OnChange is called after every mutation so the host can repaint.
	OnChange func()
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

// PointerDown starts a shape for sel.Tool at p. An unrecognised tool is
// reported as a *shape.ConfigurationError and leaves the board idle.
func (b *Board) PointerDown(p shape.Point, sel Selection) error {
	if err := b.session.Begin(p, sel); err != nil {
		return fmt.Errorf("pointer down at %v: %w", p, err)
	}
	b.changed()
	return nil
}

// PointerMove extends the shape in progress. It is a no-op when idle.
func (b *Board) PointerMove(p shape.Point) {
	if b.session.Move(p) {
		b.changed()
	}
}

// PointerUp finalizes the shape in progress at p and appends it to the
// history. It is a no-op when idle.
func (b *Board) PointerUp(p shape.Point) {
	s := b.session.End(p)
	if s == nil {
		return
	}
	b.clock.stampFinal(s)
	b.history.Append(s)
	log.Printf("[BOARD] %s %s finalized in %v (seq %d, %d shapes)", s.Kind, s.ID, s.Bounds(), s.Seq, b.history.Len())
	b.changed()
}

// Undo removes the most recent finalized shape, if any.
func (b *Board) Undo() {
	s := b.history.Undo()
	if s == nil {
		return
	}
	log.Printf("[BOARD] undo %s %s", s.Kind, s.ID)
	b.changed()
}

// Clear drops every finalized shape. Clearing an empty board is a no-op.
func (b *Board) Clear() {
	n := b.history.Clear()
	if n == 0 {
		return
	}
	log.Printf("[BOARD] cleared %d shapes", n)
	b.changed()
}

// Render repaints the whole drawing onto dst, the shape in progress last.
func (b *Board) Render(dst shape.Surface) {
	b.history.RenderAll(dst, b.session.Current())
}

// Shapes returns copies of the finalized shapes in render order.
func (b *Board) Shapes() []*shape.Shape { return b.history.Shapes() }

// InProgress returns the shape being drawn, or nil when idle.
func (b *Board) InProgress() *shape.Shape { return b.session.Current() }

// Drawing reports whether a gesture is active.
func (b *Board) Drawing() bool { return b.session.Drawing() }
