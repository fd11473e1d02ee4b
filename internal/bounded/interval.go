package bounded

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vipcxj/typekit/internal/safeop"
	"github.com/vipcxj/typekit/internal/strto"
)

var ErrEmptyInterval = errors.New("empty interval")

// Interval is a set of consecutive integers of type T. Either end may be
// open, closed or unbounded.
type Interval[T safeop.Integer] struct {
	Min          T
	MinInclude   bool
	Max          T
	MaxInclude   bool
	MinUnbounded bool // true means the left end is -inf
	MaxUnbounded bool // true means the right end is +inf
}

// ParseInterval parses value and returns an Interval.
//
// Supported formats:
//   - N
//   - =N
//   - >N, >=N, <N, <=N
//   - (min,max), (min,max], [min,max), [min,max]
//   - ( ,max), (min, ), ( ,max] etc.
//
// Spaces are ignored. An unbounded side must use '(' or ')'. Numbers accept
// the prefixes of strto base 0, so 0x10 and 010 are 16 and 8. An empty value
// is the unbounded interval when emptyAsUnbounded is set, and an error
// otherwise.
func ParseInterval[T safeop.Integer](value string, emptyAsUnbounded bool) (Interval[T], error) {
	s := strings.TrimSpace(value)
	if s == "" {
		if emptyAsUnbounded {
			return NewUnboundedInterval[T](), nil
		}
		return Interval[T]{}, fmt.Errorf("%w: empty range", ErrInvalid)
	}

	num := func(tok string) (T, error) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return 0, fmt.Errorf("%w: empty integer", ErrInvalid)
		}
		return strto.Parse[T](tok).Value()
	}

	type prefix struct {
		op    string
		build func(T) Interval[T]
	}
	for _, p := range []prefix{
		{"=", NewSingleValueInterval[T]},
		{">=", NewGreaterOrEqualInterval[T]},
		{">", NewGreaterThanInterval[T]},
		{"<=", NewLessOrEqualInterval[T]},
		{"<", NewLessThanInterval[T]},
	} {
		if !strings.HasPrefix(s, p.op) {
			continue
		}
		n, err := num(s[len(p.op):])
		if err != nil {
			return Interval[T]{}, fmt.Errorf("invalid %sN: %w", p.op, err)
		}
		return p.build(n), nil
	}

	if len(s) >= 2 && (s[0] == '(' || s[0] == '[') && (s[len(s)-1] == ')' || s[len(s)-1] == ']') {
		r := NewUnboundedInterval[T]()
		leftInclusive := s[0] == '['
		rightInclusive := s[len(s)-1] == ']'
		left, right, ok := strings.Cut(s[1:len(s)-1], ",")
		if !ok {
			return Interval[T]{}, fmt.Errorf("%w: interval syntax %q", ErrInvalid, value)
		}
		if left = strings.TrimSpace(left); left == "" {
			if leftInclusive {
				return Interval[T]{}, fmt.Errorf("%w: infinite side must be open on left: %s", ErrInvalid, value)
			}
		} else {
			n, err := num(left)
			if err != nil {
				return Interval[T]{}, fmt.Errorf("invalid left integer: %w", err)
			}
			r.Min, r.MinInclude, r.MinUnbounded = n, leftInclusive, false
		}
		if right = strings.TrimSpace(right); right == "" {
			if rightInclusive {
				return Interval[T]{}, fmt.Errorf("%w: infinite side must be open on right: %s", ErrInvalid, value)
			}
		} else {
			n, err := num(right)
			if err != nil {
				return Interval[T]{}, fmt.Errorf("invalid right integer: %w", err)
			}
			r.Max, r.MaxInclude, r.MaxUnbounded = n, rightInclusive, false
		}
		if !r.MinUnbounded && !r.MaxUnbounded {
			if r.Min > r.Max {
				return Interval[T]{}, fmt.Errorf("%w: min > max", ErrEmptyInterval)
			}
			if r.Min == r.Max && (!r.MinInclude || !r.MaxInclude) {
				return Interval[T]{}, fmt.Errorf("%w: equal bounds but not both inclusive", ErrEmptyInterval)
			}
		}
		return r, nil
	}

	if n, err := num(s); err == nil {
		return NewSingleValueInterval(n), nil
	}
	return Interval[T]{}, fmt.Errorf("%w: unrecognized range format: %s", ErrInvalid, value)
}

func NewUnboundedInterval[T safeop.Integer]() Interval[T] {
	return Interval[T]{MinUnbounded: true, MaxUnbounded: true}
}

func NewSingleValueInterval[T safeop.Integer](n T) Interval[T] {
	return Interval[T]{Min: n, MinInclude: true, Max: n, MaxInclude: true}
}

func NewGreaterThanInterval[T safeop.Integer](n T) Interval[T] {
	return Interval[T]{Min: n, MaxUnbounded: true}
}

func NewGreaterOrEqualInterval[T safeop.Integer](n T) Interval[T] {
	return Interval[T]{Min: n, MinInclude: true, MaxUnbounded: true}
}

func NewLessThanInterval[T safeop.Integer](n T) Interval[T] {
	return Interval[T]{MinUnbounded: true, Max: n}
}

func NewLessOrEqualInterval[T safeop.Integer](n T) Interval[T] {
	return Interval[T]{MinUnbounded: true, Max: n, MaxInclude: true}
}

func NewInclusiveInterval[T safeop.Integer](lo, hi T) Interval[T] {
	return Interval[T]{Min: lo, MinInclude: true, Max: hi, MaxInclude: true}
}

func NewExclusiveInterval[T safeop.Integer](lo, hi T) Interval[T] {
	return Interval[T]{Min: lo, Max: hi}
}

// IsValid returns whether the interval is a non-empty, well formed set.
//
// An unbounded side must be open. With both sides bounded, Min may not exceed
// Max, equal bounds need both ends inclusive, and (N,N+1) is empty.
func (r Interval[T]) IsValid() bool {
	if r.MinUnbounded && r.MinInclude {
		return false
	}
	if r.MaxUnbounded && r.MaxInclude {
		return false
	}
	if !r.MinUnbounded && !r.MaxUnbounded {
		switch {
		case r.Min > r.Max:
			return false
		case r.Min == r.Max:
			return r.MinInclude && r.MaxInclude
		case r.Max-r.Min == 1:
			return r.MinInclude || r.MaxInclude
		}
	}
	return true
}

// Contains checks whether n lies in the interval. An invalid interval
// contains nothing.
func (r Interval[T]) Contains(n T) bool {
	if !r.IsValid() {
		return false
	}
	if !r.MinUnbounded {
		if r.MinInclude && n < r.Min || !r.MinInclude && n <= r.Min {
			return false
		}
	}
	if !r.MaxUnbounded {
		if r.MaxInclude && n > r.Max || !r.MaxInclude && n >= r.Max {
			return false
		}
	}
	return true
}

// Lowest returns the smallest member and whether the interval has one.
func (r Interval[T]) Lowest() (T, bool) {
	if r.MinUnbounded {
		return 0, false
	}
	if r.MinInclude {
		return r.Min, true
	}
	return r.Min + 1, true
}

// Highest returns the largest member and whether the interval has one.
func (r Interval[T]) Highest() (T, bool) {
	if r.MaxUnbounded {
		return 0, false
	}
	if r.MaxInclude {
		return r.Max, true
	}
	return r.Max - 1, true
}

// HasIntersect reports whether some integer lies in both intervals.
func (r Interval[T]) HasIntersect(other Interval[T]) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	if !r.MaxUnbounded && !other.MinUnbounded {
		rMax, _ := r.Highest()
		otherMin, _ := other.Lowest()
		if rMax < otherMin {
			return false
		}
	}
	if !r.MinUnbounded && !other.MaxUnbounded {
		rMin, _ := r.Lowest()
		otherMax, _ := other.Highest()
		if rMin > otherMax {
			return false
		}
	}
	return true
}

// Intersect returns the common part of two intervals. The result is invalid
// when they do not intersect.
func (r Interval[T]) Intersect(other Interval[T]) Interval[T] {
	out := Interval[T]{}
	switch {
	case r.MinUnbounded && other.MinUnbounded:
		out.MinUnbounded = true
	case r.MinUnbounded:
		out.Min, out.MinInclude = other.Min, other.MinInclude
	case other.MinUnbounded:
		out.Min, out.MinInclude = r.Min, r.MinInclude
	case r.Min > other.Min:
		out.Min, out.MinInclude = r.Min, r.MinInclude
	case r.Min < other.Min:
		out.Min, out.MinInclude = other.Min, other.MinInclude
	default:
		out.Min, out.MinInclude = r.Min, r.MinInclude && other.MinInclude
	}
	switch {
	case r.MaxUnbounded && other.MaxUnbounded:
		out.MaxUnbounded = true
	case r.MaxUnbounded:
		out.Max, out.MaxInclude = other.Max, other.MaxInclude
	case other.MaxUnbounded:
		out.Max, out.MaxInclude = r.Max, r.MaxInclude
	case r.Max < other.Max:
		out.Max, out.MaxInclude = r.Max, r.MaxInclude
	case r.Max > other.Max:
		out.Max, out.MaxInclude = other.Max, other.MaxInclude
	default:
		out.Max, out.MaxInclude = r.Max, r.MaxInclude && other.MaxInclude
	}
	return out
}

// Subtract returns the parts of r not covered by other: r itself when they do
// not intersect, nothing when other covers r, and up to two pieces otherwise.
func (r Interval[T]) Subtract(other Interval[T]) []Interval[T] {
	if !r.HasIntersect(other) {
		return []Interval[T]{r}
	}
	var results []Interval[T]
	if !other.MinUnbounded {
		rMin, bounded := r.Lowest()
		otherMin, _ := other.Lowest()
		if !bounded || rMin < otherMin {
			left := Interval[T]{
				Min:          r.Min,
				MinInclude:   r.MinInclude,
				MinUnbounded: r.MinUnbounded,
				Max:          other.Min,
				MaxInclude:   !other.MinInclude,
			}
			if left.IsValid() {
				results = append(results, left)
			}
		}
	}
	if !other.MaxUnbounded {
		rMax, bounded := r.Highest()
		otherMax, _ := other.Highest()
		if !bounded || rMax > otherMax {
			right := Interval[T]{
				Min:          other.Max,
				MinInclude:   !other.MaxInclude,
				Max:          r.Max,
				MaxInclude:   r.MaxInclude,
				MaxUnbounded: r.MaxUnbounded,
			}
			if right.IsValid() {
				results = append(results, right)
			}
		}
	}
	return results
}

// Closed rewrites the interval with inclusive bounded ends, describing the
// same set of integers.
func (r Interval[T]) Closed() Interval[T] {
	lowest, ok1 := r.Lowest()
	highest, ok2 := r.Highest()
	switch {
	case ok1 && ok2:
		return NewInclusiveInterval(lowest, highest)
	case ok1:
		return NewGreaterOrEqualInterval(lowest)
	case ok2:
		return NewLessOrEqualInterval(highest)
	}
	return NewUnboundedInterval[T]()
}

func (r Interval[T]) IsSingleValue() bool {
	return !r.MinUnbounded && !r.MaxUnbounded && r.Min == r.Max && r.MinInclude && r.MaxInclude
}

func (r Interval[T]) SingleValue() (T, bool) {
	if r.IsSingleValue() {
		return r.Min, true
	}
	return 0, false
}

func (r Interval[T]) IsLowerBounded() bool { return !r.MinUnbounded }
func (r Interval[T]) IsUpperBounded() bool { return !r.MaxUnbounded }
func (r Interval[T]) IsUnbounded() bool    { return r.MinUnbounded && r.MaxUnbounded }

// Check returns nil if n lies in the interval, and ErrUnderflow or
// ErrOverflow naming the side it falls out of otherwise.
func (r Interval[T]) Check(n T) error {
	if !r.IsValid() {
		return fmt.Errorf("%w: %s", ErrEmptyInterval, r)
	}
	if r.Contains(n) {
		return nil
	}
	if lo, ok := r.Lowest(); ok && n < lo {
		return fmt.Errorf("%w: %d is not in %s", ErrUnderflow, n, r)
	}
	return fmt.Errorf("%w: %d is not in %s", ErrOverflow, n, r)
}

// format renders the interval. With showInfty, unbounded sides read -∞ and ∞;
// without it they are left empty so ParseInterval can read the result back.
func (r Interval[T]) format(showInfty bool) string {
	if r.IsSingleValue() {
		return fmt.Sprint(r.Min)
	}
	if r.MinUnbounded && !r.MaxUnbounded {
		if r.MaxInclude {
			return fmt.Sprintf("<=%d", r.Max)
		}
		return fmt.Sprintf("<%d", r.Max)
	}
	if r.MaxUnbounded && !r.MinUnbounded {
		if r.MinInclude {
			return fmt.Sprintf(">=%d", r.Min)
		}
		return fmt.Sprintf(">%d", r.Min)
	}
	leftB, rightB := "(", ")"
	if r.MinInclude {
		leftB = "["
	}
	if r.MaxInclude {
		rightB = "]"
	}
	var leftStr, rightStr string
	if r.MinUnbounded {
		if showInfty {
			leftStr = "-∞"
		}
	} else {
		leftStr = fmt.Sprint(r.Min)
	}
	if r.MaxUnbounded {
		if showInfty {
			rightStr = "∞"
		}
	} else {
		rightStr = fmt.Sprint(r.Max)
	}
	return leftB + leftStr + "," + rightStr + rightB
}

func (r Interval[T]) String() string {
	return r.format(true)
}

// ToParseableString returns a form ParseInterval reads back.
func (r Interval[T]) ToParseableString() string {
	return r.format(false)
}
