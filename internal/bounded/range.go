package bounded

import "github.com/vipcxj/typekit/internal/safeop"

// Range is a set of integers that can be tested for membership.
type Range[T safeop.Integer] interface {
	Contains(v T) bool
	IsNotEmpty() bool
}

var (
	_ Range[int]   = Interval[int]{}
	_ Range[int]   = Filter{}
	_ Range[uint8] = Interval[uint8]{}
)

func (r Interval[T]) IsNotEmpty() bool { return r.IsValid() }
