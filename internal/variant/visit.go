package variant

import (
	"fmt"
	"reflect"
	"slices"
)

// Visitor is called with the active value of a variant.
type Visitor[R any] func(value any) (R, error)

// Case is a single-type branch of a visitor.
type Case[R any] struct {
	typ reflect.Type
	fn  func(value any) (R, error)
}

// Type returns the parameter type the case accepts.
func (c Case[R]) Type() reflect.Type { return c.typ }

// On makes a case from a function of one alternative type.
func On[T, R any](f func(T) R) Case[R] {
	return OnErr(func(v T) (R, error) { return f(v), nil })
}

// OnErr is On for functions that may fail.
func OnErr[T, R any](f func(T) (R, error)) Case[R] {
	return Case[R]{
		typ: reflect.TypeFor[T](),
		fn: func(value any) (R, error) {
			v, _ := value.(T)
			return f(v)
		},
	}
}

// Overload combines cases into one visitor. A value goes to the case whose
// type is exactly the value's dynamic type; failing that, to the first case
// whose type the value is assignable to, such as an interface it implements.
// Values no case accepts yield ErrNoOverload.
func Overload[R any](cases ...Case[R]) Visitor[R] {
	cs := slices.Clone(cases)
	return func(value any) (R, error) {
		t := reflect.TypeOf(value)
		for _, c := range cs {
			if c.typ == t {
				return c.fn(value)
			}
		}
		for _, c := range cs {
			if (t == nil && c.typ.Kind() == reflect.Interface) || (t != nil && t.AssignableTo(c.typ)) {
				return c.fn(value)
			}
		}
		var zero R
		return zero, fmt.Errorf("%w: %v", ErrNoOverload, t)
	}
}

// Visit calls visitor with a copy of the active value of v. A nil or
// valueless v yields ErrBadAccess and the visitor is not called.
func Visit[R any, L List](v *Variant[L], visitor Visitor[R]) (R, error) {
	if v == nil || v.tag == 0 {
		var zero R
		return zero, ErrBadAccess
	}
	return visitor(v.cell.get())
}

// VisitMove hands the active value of v to visitor and leaves v valueless.
// The value is not destroyed; ownership passes to the visitor. A nil or
// valueless v yields ErrBadAccess.
func VisitMove[R any, L List](v *Variant[L], visitor Visitor[R]) (R, error) {
	if v == nil || v.tag == 0 {
		var zero R
		return zero, ErrBadAccess
	}
	_, c := v.release()
	return visitor(c.get())
}

// Match calls the case at the active index of v. cases must hold one case per
// alternative, in declaration order, each accepting exactly that
// alternative's type; otherwise Match panics with an *AlternativeError. A nil
// or valueless v yields ErrBadAccess.
func Match[R any, L List](v *Variant[L], cases ...Case[R]) (R, error) {
	metaOf[L]().checkCases(len(cases), func(i int) reflect.Type { return cases[i].typ }, "Match")
	if v == nil || v.tag == 0 {
		var zero R
		return zero, ErrBadAccess
	}
	return cases[v.tag-1].fn(v.cell.get())
}

// MatchMove is Match with the ownership transfer of VisitMove.
func MatchMove[R any, L List](v *Variant[L], cases ...Case[R]) (R, error) {
	metaOf[L]().checkCases(len(cases), func(i int) reflect.Type { return cases[i].typ }, "MatchMove")
	if v == nil || v.tag == 0 {
		var zero R
		return zero, ErrBadAccess
	}
	tag, c := v.release()
	return cases[tag-1].fn(c.get())
}
