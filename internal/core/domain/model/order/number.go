package order

import (
	"fmt"
	"sync/atomic"
)

// NumberSequence hands out order numbers: unique, monotonically increasing,
// never reused. A single sequence is constructed at startup and injected
// wherever orders are created; it is not a package-level global.
//
// The sequence is safe for concurrent use.
type NumberSequence struct {
	counter atomic.Uint64
}

// NewNumberSequence creates a sequence starting at ORD-0001.
func NewNumberSequence() *NumberSequence {
	return &NumberSequence{}
}

// Next returns the next order number, formatted as "ORD-0001".
// The width grows past four digits when needed.
func (s *NumberSequence) Next() string {
	return fmt.Sprintf("ORD-%04d", s.counter.Add(1))
}
