// Package safeop compares integers of any two integer types, including a
// signed and an unsigned one, without the wrap-around of a plain conversion.
package safeop

import "reflect"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

// Lt reports whether l < r.
func Lt[L, R Integer](l L, r R) bool {
	ln, rn := l < 0, r < 0
	switch {
	case ln && !rn:
		return true
	case !ln && rn:
		return false
	case ln && rn:
		return int64(l) < int64(r)
	default:
		return uint64(l) < uint64(r)
	}
}

// Gt reports whether l > r.
func Gt[L, R Integer](l L, r R) bool {
	return Lt(r, l)
}

// Lte reports whether l <= r.
func Lte[L, R Integer](l L, r R) bool {
	return !Lt(r, l)
}

// Gte reports whether l >= r.
func Gte[L, R Integer](l L, r R) bool {
	return !Lt(l, r)
}

func Eq[L, R Integer](l L, r R) bool {
	return !Lt(l, r) && !Lt(r, l)
}

// InRange reports whether lo <= v <= hi.
func InRange[V, B Integer](v V, lo, hi B) bool {
	return Gte(v, lo) && Lte(v, hi)
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Integer]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// MinOf returns the smallest value of T.
func MinOf[T Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	bits := reflect.TypeFor[T]().Bits()
	return T(int64(-1) << (bits - 1))
}

// MaxOf returns the largest value of T.
func MaxOf[T Integer]() T {
	if !IsSigned[T]() {
		return ^T(0)
	}
	bits := reflect.TypeFor[T]().Bits()
	return T(uint64(1)<<(bits-1) - 1)
}

// Fits reports whether v is representable in T.
func Fits[T Integer, V Integer](v V) bool {
	return InRange(v, MinOf[T](), MaxOf[T]())
}
