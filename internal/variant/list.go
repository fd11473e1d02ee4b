package variant

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/vipcxj/typekit/internal/traits"
	"github.com/vipcxj/typekit/internal/tuple"
)

// List is a closed, ordered set of alternative types. It is implemented only
// by the Of1 ... Of6 types of this package.
type List interface {
	types() []reflect.Type
	defaultCell() cell
}

type Of1[A any] struct{}

func (Of1[A]) types() []reflect.Type { return []reflect.Type{reflect.TypeFor[A]()} }
func (Of1[A]) defaultCell() cell     { return &slot[A]{} }

type Of2[A, B any] struct{}

func (Of2[A, B]) types() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}
func (Of2[A, B]) defaultCell() cell { return &slot[A]{} }

type Of3[A, B, C any] struct{}

func (Of3[A, B, C]) types() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
}
func (Of3[A, B, C]) defaultCell() cell { return &slot[A]{} }

type Of4[A, B, C, D any] struct{}

func (Of4[A, B, C, D]) types() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D]()}
}
func (Of4[A, B, C, D]) defaultCell() cell { return &slot[A]{} }

type Of5[A, B, C, D, E any] struct{}

func (Of5[A, B, C, D, E]) types() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](),
		reflect.TypeFor[D](), reflect.TypeFor[E](),
	}
}
func (Of5[A, B, C, D, E]) defaultCell() cell { return &slot[A]{} }

type Of6[A, B, C, D, E, F any] struct{}

func (Of6[A, B, C, D, E, F]) types() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](),
		reflect.TypeFor[D](), reflect.TypeFor[E](), reflect.TypeFor[F](),
	}
}
func (Of6[A, B, C, D, E, F]) defaultCell() cell { return &slot[A]{} }

// Capabilities describes which value operations a variant over a given list
// supports. Each flag is the conjunction of the matching trait over every
// alternative, except DefaultConstructible which depends on the first
// alternative only.
type Capabilities struct {
	CopyConstructible        bool
	CopyAssignable           bool
	MoveConstructible        bool
	MoveAssignable           bool
	NothrowMoveConstructible bool
	NothrowMoveAssignable    bool
	DefaultConstructible     bool
}

type meta struct {
	types     []reflect.Type
	caps      Capabilities
	monostate int
	// first alternative failing copy and move, for error messages
	noCopy reflect.Type
	noMove reflect.Type
}

var metas sync.Map // reflect.Type -> *meta

func metaOf[L List]() *meta {
	key := reflect.TypeFor[L]()
	if m, ok := metas.Load(key); ok {
		return m.(*meta)
	}
	var l L
	m := newMeta(l.types())
	actual, _ := metas.LoadOrStore(key, m)
	return actual.(*meta)
}

func newMeta(types []reflect.Type) *meta {
	for _, t := range types {
		if t == nil {
			panic("variant: nil alternative type")
		}
		if t.Kind() == reflect.Array {
			panic(fmt.Sprintf("variant: array alternative %v is not allowed", t))
		}
	}
	copyCtor := traits.ConjunctionOf(traits.CopyConstructible, types...)
	moveCtor := traits.ConjunctionOf(traits.MoveConstructible, types...)
	m := &meta{
		types: types,
		caps: Capabilities{
			CopyConstructible:        copyCtor.Value,
			CopyAssignable:           traits.ConjunctionOf(traits.CopyAssignable, types...).Value,
			MoveConstructible:        moveCtor.Value,
			MoveAssignable:           traits.ConjunctionOf(traits.MoveAssignable, types...).Value,
			NothrowMoveConstructible: traits.ConjunctionOf(traits.NothrowMoveConstructible, types...).Value,
			NothrowMoveAssignable: traits.ConjunctionOf(
				traits.All(traits.NothrowMoveConstructible, traits.NothrowMoveAssignable), types...).Value,
			DefaultConstructible: traits.DefaultConstructible(types[0]),
		},
		monostate: -1,
		noCopy:    copyCtor.Failed,
		noMove:    moveCtor.Failed,
	}
	if i, err := tuple.IndexOf(monostateType, types); err == nil {
		m.monostate = i
	}
	return m
}

// CapabilitiesOf returns the capabilities of Variant[L].
func CapabilitiesOf[L List]() Capabilities {
	return metaOf[L]().caps
}

// Alternatives returns the alternative types of L in declaration order.
func Alternatives[L List]() []reflect.Type {
	m := metaOf[L]()
	out := make([]reflect.Type, len(m.types))
	copy(out, m.types)
	return out
}

// Size returns the number of alternatives in L.
func Size[L List]() int {
	return len(metaOf[L]().types)
}

func (m *meta) indexOf(t reflect.Type, op string) int {
	i, err := tuple.IndexOf(t, m.types)
	if err != nil {
		panic(&AlternativeError{Op: op, Type: t, Index: NPos, Err: err})
	}
	return i
}

func (m *meta) checkIndex(index int, t reflect.Type, op string) {
	if index < 0 || index >= len(m.types) {
		panic(&AlternativeError{Op: op, Type: t, Index: index, Err: ErrIndexOutOfRange})
	}
	if m.types[index] != t {
		panic(&AlternativeError{Op: op, Type: t, Index: index, Err: ErrTypeMismatch})
	}
}

func (m *meta) checkCases(n int, typeAt func(int) reflect.Type, op string) {
	if n != len(m.types) {
		panic(&AlternativeError{Op: op, Index: n, Err: ErrArity})
	}
	for i, t := range m.types {
		if got := typeAt(i); got != t {
			panic(&AlternativeError{Op: op, Type: got, Index: i, Err: ErrTypeMismatch})
		}
	}
}
