package state

import (
	"sync/atomic"

	"github.com/google/uuid"

	"PaintBoard/internal/shape"
)

// clock stamps shapes with an identity as they are created and finalized.
type clock struct {
	seq uint64
}

func (c *clock) next() uint64 {
	return atomic.AddUint64(&c.seq, 1)
}

// stampNew gives a freshly created shape its ID.
func stampNew(s *shape.Shape) {
	s.ID = uuid.NewString()
}

// stampFinal records the order in which s entered the history.
func (c *clock) stampFinal(s *shape.Shape) {
	s.Seq = c.next()
}
