// Package tuple looks up the position of a type within a closed, ordered list
// of types.
package tuple

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotFound  = errors.New("type is not in the list")
	ErrAmbiguous = errors.New("type appears more than once in the list")
)

// Count returns how many times t appears in types.
func Count(t reflect.Type, types []reflect.Type) int {
	n := 0
	for _, x := range types {
		if x == t {
			n++
		}
	}
	return n
}

// Contains reports whether t appears in types at least once.
func Contains(t reflect.Type, types []reflect.Type) bool {
	return Count(t, types) > 0
}

// IndexOf returns the position of t in types. The type must appear exactly
// once.
func IndexOf(t reflect.Type, types []reflect.Type) (int, error) {
	idx := -1
	for i, x := range types {
		if x != t {
			continue
		}
		if idx >= 0 {
			return -1, fmt.Errorf("%w: %v", ErrAmbiguous, t)
		}
		idx = i
	}
	if idx < 0 {
		return -1, fmt.Errorf("%w: %v", ErrNotFound, t)
	}
	return idx, nil
}

func IndexOfType[T any](types []reflect.Type) (int, error) {
	return IndexOf(reflect.TypeFor[T](), types)
}

func ContainsType[T any](types []reflect.Type) bool {
	return Contains(reflect.TypeFor[T](), types)
}

// Types returns the reflect types of a list of values, with nil values
// reported as nil.
func Types(values ...any) []reflect.Type {
	out := make([]reflect.Type, len(values))
	for i, v := range values {
		out[i] = reflect.TypeOf(v)
	}
	return out
}
