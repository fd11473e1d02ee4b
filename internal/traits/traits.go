// Package traits answers capability questions about Go types at run time:
// whether values of a type may be copied, moved, assigned or default
// constructed, and whether those operations can fail. A type opts out of a
// capability by embedding one of the marker types below.
package traits

import "reflect"

// NonCopyable is implemented by types that must not be copied.
type NonCopyable interface {
	NonCopyable()
}

// NonMovable is implemented by types that must not be moved.
type NonMovable interface {
	NonMovable()
}

// NonDefaultConstructible is implemented by types whose zero value is not a
// usable value.
type NonDefaultConstructible interface {
	NonDefaultConstructible()
}

// NoCopy disables copy construction and copy assignment when embedded.
type NoCopy struct{}

func (NoCopy) NonCopyable() {}

// NoMove disables move construction and move assignment when embedded.
type NoMove struct{}

func (NoMove) NonMovable() {}

// NoDefault marks the zero value of the embedding type as unusable.
type NoDefault struct{}

func (NoDefault) NonDefaultConstructible() {}

// Trait is a predicate over a type.
type Trait func(t reflect.Type) bool

var (
	nonCopyableType             = reflect.TypeFor[NonCopyable]()
	nonMovableType              = reflect.TypeFor[NonMovable]()
	nonDefaultConstructibleType = reflect.TypeFor[NonDefaultConstructible]()
	errorType                   = reflect.TypeFor[error]()
)

// implements checks the method set of *t, which includes the value methods.
func implements(t reflect.Type, iface reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return t.Implements(iface)
	}
	return reflect.PointerTo(t).Implements(iface)
}

// hook reports whether *t has a method with the given name whose last result
// is an error. Such methods stand in for user-written constructors and
// assignment operators that may fail.
func hook(t reflect.Type, name string) bool {
	if t.Kind() != reflect.Interface {
		t = reflect.PointerTo(t)
	}
	m, ok := t.MethodByName(name)
	if !ok {
		return false
	}
	n := m.Type.NumOut()
	return n > 0 && m.Type.Out(n-1) == errorType
}

func CopyConstructible(t reflect.Type) bool {
	return !implements(t, nonCopyableType)
}

func CopyAssignable(t reflect.Type) bool {
	return !implements(t, nonCopyableType)
}

// MoveConstructible is false only for types embedding NoMove. A type without
// a Move method is moved by copying it.
func MoveConstructible(t reflect.Type) bool {
	return !implements(t, nonMovableType)
}

func MoveAssignable(t reflect.Type) bool {
	return !implements(t, nonMovableType)
}

// NothrowMoveConstructible reports whether moving a value of t can never
// return an error.
func NothrowMoveConstructible(t reflect.Type) bool {
	if !MoveConstructible(t) {
		return false
	}
	if hook(t, "Move") {
		return false
	}
	return !hook(t, "Clone")
}

// NothrowMoveAssignable reports whether move assignment into a value of t can
// never return an error.
func NothrowMoveAssignable(t reflect.Type) bool {
	if !MoveAssignable(t) {
		return false
	}
	return !hook(t, "MoveAssign") && !hook(t, "Move") && !hook(t, "Assign") && !hook(t, "Clone")
}

func DefaultConstructible(t reflect.Type) bool {
	return !implements(t, nonDefaultConstructibleType)
}

// Result is the outcome of a conjunction over a list of types. When Value is
// false, Index and Failed identify the first type that did not satisfy the
// trait.
type Result struct {
	Value  bool
	Index  int
	Failed reflect.Type
}

// Conjunction is the logical AND of values. It is true for an empty list.
func Conjunction(values ...bool) bool {
	for _, v := range values {
		if !v {
			return false
		}
	}
	return true
}

// ConjunctionOf applies trait to each of types in order and stops at the first
// failure.
func ConjunctionOf(trait Trait, types ...reflect.Type) Result {
	for i, t := range types {
		if !trait(t) {
			return Result{Value: false, Index: i, Failed: t}
		}
	}
	return Result{Value: true, Index: -1}
}

// All combines several traits into one that holds when every trait holds.
func All(traits ...Trait) Trait {
	return func(t reflect.Type) bool {
		for _, trait := range traits {
			if !trait(t) {
				return false
			}
		}
		return true
	}
}
