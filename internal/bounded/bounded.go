// Package bounded provides integers whose value is confined to a range fixed
// by their type, and runtime intervals over integers.
package bounded

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vipcxj/typekit/internal/safeop"
	"github.com/vipcxj/typekit/internal/strto"
)

var (
	ErrBoundedInteger = errors.New("bounded integer")
	ErrUnderflow      = fmt.Errorf("%w underflow", ErrBoundedInteger)
	ErrOverflow       = fmt.Errorf("%w overflow", ErrBoundedInteger)
	ErrInvalid        = fmt.Errorf("%w invalid value", ErrBoundedInteger)
)

// Bounds fixes the inclusive range of an Integer. Implementations are empty
// structs, so the bounds type also serves as a tag: two Integer types with the
// same range but different bounds types do not mix.
type Bounds[T safeop.Integer] interface {
	Min() T
	Max() T
}

// Full is the bounds type spanning every value of T.
type Full[T safeop.Integer] struct{}

func (Full[T]) Min() T { return safeop.MinOf[T]() }
func (Full[T]) Max() T { return safeop.MaxOf[T]() }

// Integer is a T whose value always lies within the bounds of B. Its zero
// value holds zero, which is only meaningful when zero is within the bounds;
// use New, MinValue or MaxValue to obtain a value.
type Integer[T safeop.Integer, B Bounds[T]] struct {
	v T
}

// New returns an Integer holding u, or ErrUnderflow or ErrOverflow if u is
// outside the bounds. u may be of any integer type.
func New[T safeop.Integer, B Bounds[T], U safeop.Integer](u U) (Integer[T, B], error) {
	var b B
	if safeop.Lt(u, b.Min()) {
		return Integer[T, B]{}, fmt.Errorf("%w: %d is less than %d", ErrUnderflow, u, b.Min())
	}
	if safeop.Gt(u, b.Max()) {
		return Integer[T, B]{}, fmt.Errorf("%w: %d is greater than %d", ErrOverflow, u, b.Max())
	}
	return Integer[T, B]{v: T(u)}, nil
}

// MustNew is New for values known to be in range. It panics otherwise.
func MustNew[T safeop.Integer, B Bounds[T], U safeop.Integer](u U) Integer[T, B] {
	i, err := New[T, B](u)
	if err != nil {
		panic(err)
	}
	return i
}

func MinValue[T safeop.Integer, B Bounds[T]]() Integer[T, B] {
	var b B
	return Integer[T, B]{v: b.Min()}
}

func MaxValue[T safeop.Integer, B Bounds[T]]() Integer[T, B] {
	var b B
	return Integer[T, B]{v: b.Max()}
}

// Parse converts the whole of s, apart from a trailing delimiter section, to
// an Integer. Conversion failures map to ErrInvalid, ErrUnderflow and
// ErrOverflow, each also wrapping the strto error.
func Parse[T safeop.Integer, B Bounds[T]](s string, opts ...strto.Option) (Integer[T, B], error) {
	i, _, err := ParseAt[T, B](s, 0, opts...)
	return i, err
}

// ParseAt converts s starting at byte offset pos and also returns the offset
// of the first byte after the number.
func ParseAt[T safeop.Integer, B Bounds[T]](s string, pos int, opts ...strto.Option) (Integer[T, B], int, error) {
	if pos < 0 || pos > len(s) {
		return Integer[T, B]{}, pos, fmt.Errorf("%w: position %d out of range for %q", ErrInvalid, pos, s)
	}
	var b B
	r := strto.ParseBounded(s[pos:], b.Min(), b.Max(), opts...)
	next := pos + r.Consumed()
	switch r.Status() {
	case strto.StatusOk:
		return Integer[T, B]{v: r.MustValue()}, next, nil
	case strto.StatusUnderflow:
		return Integer[T, B]{}, next, fmt.Errorf("%w: %w", ErrUnderflow, r.Err())
	case strto.StatusOverflow:
		return Integer[T, B]{}, next, fmt.Errorf("%w: %w", ErrOverflow, r.Err())
	default:
		return Integer[T, B]{}, next, fmt.Errorf("%w: %w", ErrInvalid, r.Err())
	}
}

func (i Integer[T, B]) Value() T { return i.v }

func (Integer[T, B]) Min() T {
	var b B
	return b.Min()
}

func (Integer[T, B]) Max() T {
	var b B
	return b.Max()
}

// Set replaces the value, leaving it unchanged on error.
func (i *Integer[T, B]) Set(v T) error {
	n, err := New[T, B](v)
	if err != nil {
		return err
	}
	*i = n
	return nil
}

// SetString replaces the value with the conversion of s, leaving it unchanged
// on error.
func (i *Integer[T, B]) SetString(s string, opts ...strto.Option) error {
	n, err := Parse[T, B](s, opts...)
	if err != nil {
		return err
	}
	*i = n
	return nil
}

func (i *Integer[T, B]) Swap(other *Integer[T, B]) {
	i.v, other.v = other.v, i.v
}

func (i Integer[T, B]) Compare(other Integer[T, B]) int {
	switch {
	case i.v < other.v:
		return -1
	case i.v > other.v:
		return 1
	}
	return 0
}

func (i Integer[T, B]) String() string {
	if safeop.IsSigned[T]() {
		return strconv.FormatInt(int64(i.v), 10)
	}
	return strconv.FormatUint(uint64(i.v), 10)
}

func (i Integer[T, B]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Integer[T, B]) UnmarshalText(text []byte) error {
	return i.SetString(string(text), strto.WithBase(10))
}

// Interval returns the closed interval spanned by the bounds of B.
func (Integer[T, B]) Interval() Interval[T] {
	var b B
	return NewInclusiveInterval(b.Min(), b.Max())
}
