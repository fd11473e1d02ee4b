// Package strto converts strings to integers strictly.
//
// A conversion reads optional leading white space, an optional sign and the
// longest run of digits valid in the base. It succeeds only if the digits are
// followed by the end of the string or by one of the caller's delimiter
// characters, and if the value fits both the target type and the caller's
// bounds. Every outcome reports which part of the input was left unparsed, so
// callers can continue scanning after a delimiter.
package strto

import (
	"fmt"
	"math"
	"strings"

	"github.com/vipcxj/typekit/internal/safeop"
)

type Integer = safeop.Integer

type options struct {
	base   int
	delims string
}

type Option func(*options)

// WithBase selects the numeric base, 2 through 36. Base 0, the default, reads
// a 0x or 0X prefix as hexadecimal, a leading 0 as octal and anything else as
// decimal. Base 16 also accepts the 0x prefix.
func WithBase(base int) Option {
	return func(o *options) { o.base = base }
}

// WithDelimiters sets the characters that may end a number. Each byte of
// delims is one delimiter.
func WithDelimiters(delims string) Option {
	return func(o *options) { o.delims = delims }
}

// Result is the outcome of a conversion.
type Result[T Integer] struct {
	status Status
	value  T
	input  string
	offset int
}

func (r Result[T]) Ok() bool         { return r.status == StatusOk }
func (r Result[T]) Status() Status   { return r.status }
func (r Result[T]) Invalid() bool    { return r.status == StatusInvalid }
func (r Result[T]) Underflow() bool  { return r.status == StatusUnderflow }
func (r Result[T]) Overflow() bool   { return r.status == StatusOverflow }
func (r Result[T]) Input() string    { return r.input }
func (r Result[T]) Unparsed() string { return r.input[r.offset:] }
func (r Result[T]) Consumed() int    { return r.offset }

// Value returns the converted value, or an error wrapping ErrNoValue and the
// status error when the conversion failed.
func (r Result[T]) Value() (T, error) {
	if r.status != StatusOk {
		return 0, fmt.Errorf("%w: %w", ErrNoValue, r.Err())
	}
	return r.value, nil
}

// MustValue is Value for callers that already checked Ok. It panics when the
// conversion failed.
func (r Result[T]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Err returns nil for a successful conversion, and otherwise one of
// ErrInvalid, ErrUnderflow or ErrOverflow wrapped with the position.
func (r Result[T]) Err() error {
	if r.status == StatusOk {
		return nil
	}
	return fmt.Errorf("%w: %q at offset %d", r.status.err(), r.input, r.offset)
}

func (r Result[T]) String() string {
	if r.status == StatusOk {
		return fmt.Sprintf("ok(%d)", r.value)
	}
	return fmt.Sprintf("%s(unparsed %q)", r.status, r.Unparsed())
}

// Parse converts s to T accepting the whole range of T.
func Parse[T Integer](s string, opts ...Option) Result[T] {
	return ParseBounded(s, safeop.MinOf[T](), safeop.MaxOf[T](), opts...)
}

// ParseBounded converts s to T and requires lo <= value <= hi. A value below
// lo is an underflow and a value above hi an overflow, exactly like values
// outside the range of T.
func ParseBounded[T Integer](s string, lo, hi T, opts ...Option) Result[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	fail := func(st Status, offset int) Result[T] {
		return Result[T]{status: st, input: s, offset: offset}
	}

	if s == "" {
		return fail(StatusInvalid, 0)
	}
	start := skipSpace(s)
	if !safeop.IsSigned[T]() && start < len(s) && s[start] == '-' {
		return fail(StatusUnderflow, 0)
	}

	n, ok := scan(s, start, o.base)
	if !ok {
		return fail(StatusInvalid, 0)
	}
	if n.end < len(s) && strings.IndexByte(o.delims, s[n.end]) < 0 {
		return fail(StatusInvalid, n.end)
	}
	if n.outOfRange {
		if n.neg {
			return fail(StatusUnderflow, n.end)
		}
		return fail(StatusOverflow, n.end)
	}

	if n.neg {
		var v int64
		if n.mag == 1<<63 {
			v = math.MinInt64
		} else {
			v = -int64(n.mag)
		}
		switch {
		case safeop.Lt(v, lo):
			return fail(StatusUnderflow, n.end)
		case safeop.Gt(v, hi):
			return fail(StatusOverflow, n.end)
		}
		return Result[T]{status: StatusOk, value: T(v), input: s, offset: n.end}
	}
	switch {
	case safeop.Lt(n.mag, lo):
		return fail(StatusUnderflow, n.end)
	case safeop.Gt(n.mag, hi):
		return fail(StatusOverflow, n.end)
	}
	return Result[T]{status: StatusOk, value: T(n.mag), input: s, offset: n.end}
}

type number struct {
	mag        uint64
	neg        bool
	end        int
	outOfRange bool
}

// scan reads a sign and digits starting at i. It reports false when no digit
// was read.
func scan(s string, i, base int) (number, bool) {
	var n number
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		n.neg = s[i] == '-'
		i++
	}
	switch {
	case base == 0:
		base = 10
		if hasHexPrefix(s, i) {
			base = 16
			i += 2
		} else if i < len(s) && s[i] == '0' {
			base = 8
		}
	case base == 16:
		if hasHexPrefix(s, i) {
			i += 2
		}
	case base < 2 || base > 36:
		return n, false
	}

	first := i
	b := uint64(base)
	for ; i < len(s); i++ {
		d := digit(s[i])
		if d >= b {
			break
		}
		if n.outOfRange {
			continue
		}
		if n.mag > (math.MaxUint64-d)/b {
			n.outOfRange = true
			continue
		}
		n.mag = n.mag*b + d
	}
	if i == first {
		return n, false
	}
	if n.neg && n.mag > 1<<63 {
		n.outOfRange = true
	}
	n.end = i
	return n, true
}

func hasHexPrefix(s string, i int) bool {
	return i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') && digit(s[i+2]) < 16
}

func digit(c byte) uint64 {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0')
	case 'a' <= c && c <= 'z':
		return uint64(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return uint64(c-'A') + 10
	}
	return math.MaxUint64
}

func skipSpace(s string) int {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
			continue
		}
		break
	}
	return i
}
