package strto

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/vipcxj/typekit/internal/safeop"
)

// conversionSuite runs the per-type checks: a valid value, a non numeric
// value, one digit past each limit of T, and restricted bounds.
func conversionSuite[T Integer](t *testing.T) {
	t.Helper()
	name := fmt.Sprintf("%T", T(0))
	t.Run(name, func(t *testing.T) {
		r := Parse[T]("1")
		if !r.Ok() || r.Invalid() || r.Underflow() || r.Overflow() {
			t.Fatalf("Parse(1): %v", r)
		}
		if v, err := r.Value(); err != nil || v != 1 {
			t.Fatalf("Parse(1).Value() = %v, %v", v, err)
		}
		if r.Unparsed() != "" {
			t.Fatalf("Parse(1).Unparsed() = %q", r.Unparsed())
		}

		r = Parse[T]("z")
		if r.Ok() || !r.Invalid() || r.Unparsed() != "z" {
			t.Fatalf("Parse(z): %v", r)
		}
		if _, err := r.Value(); !errors.Is(err, ErrNoValue) || !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(z).Value() error = %v", err)
		}

		over := fmt.Sprintf("%d0", safeop.MaxOf[T]())
		r = Parse[T](over)
		if !r.Overflow() || r.Unparsed() != "" {
			t.Fatalf("Parse(%s): %v", over, r)
		}

		var under string
		if safeop.IsSigned[T]() {
			under = fmt.Sprintf("%d0", safeop.MinOf[T]())
		} else {
			under = "-1"
		}
		r = Parse[T](under)
		if !r.Underflow() {
			t.Fatalf("Parse(%s): %v", under, r)
		}
		if safeop.IsSigned[T]() && r.Unparsed() != "" {
			t.Fatalf("Parse(%s).Unparsed() = %q", under, r.Unparsed())
		}
		if !safeop.IsSigned[T]() && r.Unparsed() != "-1" {
			t.Fatalf("Parse(%s).Unparsed() = %q", under, r.Unparsed())
		}

		r = ParseBounded[T]("0", 1, safeop.MaxOf[T]())
		if !r.Underflow() {
			t.Fatalf("ParseBounded(0, min 1): %v", r)
		}
		r = ParseBounded[T]("3", 0, 2)
		if !r.Overflow() {
			t.Fatalf("ParseBounded(3, max 2): %v", r)
		}
		r = ParseBounded[T]("2", 0, 2)
		if !r.Ok() || r.MustValue() != 2 {
			t.Fatalf("ParseBounded(2, [0,2]): %v", r)
		}
	})
}

func TestConversionPerType(t *testing.T) {
	conversionSuite[int](t)
	conversionSuite[int8](t)
	conversionSuite[int16](t)
	conversionSuite[int32](t)
	conversionSuite[int64](t)
	conversionSuite[uint](t)
	conversionSuite[uint8](t)
	conversionSuite[uint16](t)
	conversionSuite[uint32](t)
	conversionSuite[uint64](t)
}

func TestBases(t *testing.T) {
	cases := []struct {
		in   string
		base int
		want int64
	}{
		{"10", 0, 10},
		{"010", 0, 8},
		{"0x10", 0, 16},
		{"0X1f", 0, 31},
		{"0", 0, 0},
		{"-0x10", 0, -16},
		{"+7", 0, 7},
		{"  42", 0, 42},
		{"\t-42", 10, -42},
		{"ff", 16, 255},
		{"0xff", 16, 255},
		{"101", 2, 5},
		{"z", 36, 35},
		{"010", 10, 10},
	}
	for _, tc := range cases {
		r := Parse[int64](tc.in, WithBase(tc.base))
		v, err := r.Value()
		if err != nil {
			t.Fatalf("Parse(%q, base %d): %v", tc.in, tc.base, err)
		}
		if v != tc.want {
			t.Fatalf("Parse(%q, base %d) = %d, want %d", tc.in, tc.base, v, tc.want)
		}
	}
}

func TestInvalidInputs(t *testing.T) {
	cases := []struct {
		in       string
		opts     []Option
		unparsed string
	}{
		{"", nil, ""},
		{"   ", nil, "   "},
		{"-", nil, "-"},
		{"12a", nil, "a"},
		{"08", nil, "8"},
		{"0x", nil, "x"},
		{"1.2", nil, ".2"},
		{"1:2", []Option{WithDelimiters(".")}, ":2"},
		{"12", []Option{WithBase(1)}, "12"},
		{"12", []Option{WithBase(37)}, "12"},
		{"99999999999999999999x", nil, "x"},
	}
	for _, tc := range cases {
		r := Parse[int64](tc.in, tc.opts...)
		if !r.Invalid() {
			t.Fatalf("Parse(%q) status = %v, want invalid", tc.in, r.Status())
		}
		if r.Unparsed() != tc.unparsed {
			t.Fatalf("Parse(%q).Unparsed() = %q, want %q", tc.in, r.Unparsed(), tc.unparsed)
		}
		if !errors.Is(r.Err(), ErrInvalid) {
			t.Fatalf("Parse(%q).Err() = %v", tc.in, r.Err())
		}
	}
}

func TestDelimiters(t *testing.T) {
	r := Parse[uint8]("192.168", WithDelimiters("."))
	if !r.Ok() || r.MustValue() != 192 || r.Unparsed() != ".168" || r.Consumed() != 3 {
		t.Fatalf("got %v consumed %d", r, r.Consumed())
	}
	r = Parse[uint8]("1:80", WithDelimiters(".:"))
	if !r.Ok() || r.MustValue() != 1 || r.Unparsed() != ":80" {
		t.Fatalf("got %v", r)
	}
	r = Parse[uint8]("256.1", WithDelimiters("."))
	if !r.Overflow() || r.Unparsed() != ".1" {
		t.Fatalf("got %v", r)
	}
}

func TestInt64Extremes(t *testing.T) {
	r := Parse[int64]("-9223372036854775808")
	if v, err := r.Value(); err != nil || v != math.MinInt64 {
		t.Fatalf("min int64: %v %v", v, err)
	}
	r = Parse[int64]("9223372036854775808")
	if !r.Overflow() {
		t.Fatalf("max int64 + 1: %v", r)
	}
	r = Parse[int64]("-9223372036854775809")
	if !r.Underflow() {
		t.Fatalf("min int64 - 1: %v", r)
	}
	u := Parse[uint64]("18446744073709551615")
	if v, err := u.Value(); err != nil || v != math.MaxUint64 {
		t.Fatalf("max uint64: %v %v", v, err)
	}
	u = Parse[uint64]("18446744073709551616")
	if !u.Overflow() {
		t.Fatalf("max uint64 + 1: %v", u)
	}
	u = Parse[uint64]("  -5")
	if !u.Underflow() || u.Unparsed() != "  -5" {
		t.Fatalf("negative unsigned: %v", u)
	}
}

func TestMustValuePanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOverflow) {
			t.Fatalf("recovered %v", r)
		}
	}()
	Parse[int8]("200").MustValue()
}

func TestStatusText(t *testing.T) {
	for _, s := range StatusValues() {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Status
		if err := back.UnmarshalText(text); err != nil || back != s {
			t.Fatalf("round trip of %v: %v %v", s, back, err)
		}
	}
	if StatusUnderflow.String() != "underflow" {
		t.Fatalf("StatusUnderflow = %q", StatusUnderflow.String())
	}
	if _, err := StatusString("sideways"); err == nil {
		t.Fatalf("unknown status should fail")
	}
}
