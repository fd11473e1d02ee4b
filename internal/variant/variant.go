// Package variant implements a tagged union over a closed list of alternative
// types.
//
// A Variant[L] holds exactly one value whose type is one of the alternatives
// of L, or nothing at all. The empty state is called valueless: it is the
// zero value of Variant, and it is what a variant becomes when replacing its
// value fails halfway, after the old value was already destroyed. Every
// operation that can fail returns an error and leaves the variant in a state
// that reports the truth: a variant never claims to hold a value it does not
// have.
//
// Alternatives customise copying, moving, assignment and destruction through
// the Cloner, Mover, Assigner, MoveAssigner and Destroyer interfaces, and
// opt out of copying, moving or default construction by embedding
// traits.NoCopy, traits.NoMove or traits.NoDefault. Errors returned by those
// hooks reach the caller unchanged.
//
// Variant values must not be copied with plain assignment once they hold a
// value; use Clone or Move. A Variant is not safe for concurrent use.
package variant

import (
	"fmt"
	"reflect"
)

// NPos is the index reported by a valueless variant.
const NPos = -1

// Monostate is an alternative that carries no data. A variant whose list
// includes Monostate supports HasValue.
type Monostate struct{}

var monostateType = reflect.TypeFor[Monostate]()

// Variant is a tagged union over the alternatives of L.
type Variant[L List] struct {
	// tag is the active index plus one; zero means valueless.
	tag  int
	cell cell
}

// New returns a variant holding u. U must be exactly one of the alternatives
// of L; otherwise New panics with an *AlternativeError.
func New[L List, U any](u U) Variant[L] {
	i := metaOf[L]().indexOf(reflect.TypeFor[U](), "New")
	return Variant[L]{tag: i + 1, cell: &slot[U]{v: u}}
}

// Default returns a variant holding the zero value of the first alternative.
func Default[L List]() (Variant[L], error) {
	m := metaOf[L]()
	if !m.caps.DefaultConstructible {
		return Variant[L]{}, fmt.Errorf("%w: %v", ErrNotDefaultConstructible, m.types[0])
	}
	var l L
	return Variant[L]{tag: 1, cell: l.defaultCell()}, nil
}

// Index returns the position of the active alternative, or NPos.
func (v *Variant[L]) Index() int {
	return v.tag - 1
}

// ValuelessByException reports whether v holds no value.
func (v *Variant[L]) ValuelessByException() bool {
	return v.tag == 0
}

// HasValue reports whether the active alternative is anything other than
// Monostate. A valueless variant reports true. It panics if L does not list
// Monostate.
func (v *Variant[L]) HasValue() bool {
	m := metaOf[L]()
	if m.monostate < 0 {
		panic(&AlternativeError{Op: "HasValue", Type: monostateType, Index: NPos, Err: ErrNoMonostate})
	}
	return v.tag != m.monostate+1
}

// Clone returns a copy of v. A valueless v yields a valueless copy. If the
// active alternative fails to copy, the error is returned together with a
// valueless variant.
func (v *Variant[L]) Clone() (Variant[L], error) {
	m := metaOf[L]()
	if !m.caps.CopyConstructible {
		return Variant[L]{}, fmt.Errorf("%w: %v", ErrNotCopyable, m.noCopy)
	}
	if v.tag == 0 {
		return Variant[L]{}, nil
	}
	c, err := v.cell.copyConstruct()
	if err != nil {
		return Variant[L]{}, err
	}
	return Variant[L]{tag: v.tag, cell: c}, nil
}

// Move transfers the value of v into a new variant. v becomes valueless
// before the transfer is attempted, and its old object is destroyed
// afterwards whether or not the transfer succeeded. Alternatives without a
// Mover are copied.
func (v *Variant[L]) Move() (Variant[L], error) {
	m := metaOf[L]()
	if !m.caps.MoveConstructible {
		return Variant[L]{}, fmt.Errorf("%w: %v", ErrNotMovable, m.noMove)
	}
	if v.tag == 0 {
		return Variant[L]{}, nil
	}
	tag, c := v.release()
	nc, err := c.moveConstruct()
	c.destroy()
	if err != nil {
		return Variant[L]{}, err
	}
	return Variant[L]{tag: tag, cell: nc}, nil
}

// Assign copies other into v.
//
// When both hold the same alternative, the alternative's own copy assignment
// runs in place. When they differ, v's value is destroyed first and a copy
// of other's value is constructed; if that copy fails v is left valueless. A
// valueless other makes v valueless.
func (v *Variant[L]) Assign(other *Variant[L]) error {
	m := metaOf[L]()
	if !m.caps.CopyConstructible || !m.caps.CopyAssignable {
		return fmt.Errorf("%w: %v", ErrNotCopyable, m.noCopy)
	}
	switch {
	case v == other:
		return nil
	case v.tag == 0 && other.tag == 0:
		return nil
	case other.tag == 0:
		v.Destroy()
		return nil
	case v.tag == other.tag:
		return other.cell.copyAssign(v.cell)
	}
	v.Destroy()
	c, err := other.cell.copyConstruct()
	if err != nil {
		return err
	}
	v.tag, v.cell = other.tag, c
	return nil
}

// MoveAssign moves other into v and leaves other valueless.
//
// The case structure matches Assign, using move assignment for the same
// alternative and move construction otherwise. other's old object is
// destroyed once its value has been taken.
func (v *Variant[L]) MoveAssign(other *Variant[L]) error {
	m := metaOf[L]()
	if !m.caps.MoveConstructible || !m.caps.MoveAssignable {
		return fmt.Errorf("%w: %v", ErrNotMovable, m.noMove)
	}
	switch {
	case v == other:
		return nil
	case v.tag == 0 && other.tag == 0:
		return nil
	case other.tag == 0:
		v.Destroy()
		return nil
	case v.tag == other.tag:
		_, c := other.release()
		err := c.moveAssign(v.cell)
		c.destroy()
		return err
	}
	v.Destroy()
	tag, c := other.release()
	nc, err := c.moveConstruct()
	c.destroy()
	if err != nil {
		return err
	}
	v.tag, v.cell = tag, nc
	return nil
}

func (v *Variant[L]) assignFrom(src any) error     { return v.Assign(src.(*Variant[L])) }
func (v *Variant[L]) moveAssignFrom(src any) error { return v.MoveAssign(src.(*Variant[L])) }

// Destroy ends the lifetime of the active value and leaves v valueless.
// Calling it on a valueless variant does nothing.
func (v *Variant[L]) Destroy() {
	if v.tag == 0 {
		return
	}
	_, c := v.release()
	c.destroy()
}

// release detaches the active cell and marks v valueless.
func (v *Variant[L]) release() (int, cell) {
	tag, c := v.tag, v.cell
	v.tag, v.cell = 0, nil
	return tag, c
}

func (v *Variant[L]) String() string {
	if v.tag == 0 {
		return "variant(valueless)"
	}
	return fmt.Sprintf("variant<%d>(%v)", v.tag-1, v.cell.get())
}

// Emplace destroys the value of v, if any, and stores the result of construct
// as alternative index. If construct fails v stays valueless and the error is
// returned as is. T must be the alternative at index; otherwise Emplace
// panics with an *AlternativeError.
func Emplace[T any, L List](v *Variant[L], index int, construct func() (T, error)) (*T, error) {
	metaOf[L]().checkIndex(index, reflect.TypeFor[T](), "Emplace")
	v.Destroy()
	val, err := construct()
	if err != nil {
		return nil, err
	}
	s := &slot[T]{v: val}
	v.tag, v.cell = index+1, s
	return &s.v, nil
}

// EmplaceValue is Emplace with a value that is already constructed.
func EmplaceValue[T any, L List](v *Variant[L], index int, value T) *T {
	p, _ := Emplace(v, index, func() (T, error) { return value, nil })
	return p
}

// HoldsAlternative reports whether the active alternative of v is T. It
// panics if T is not in L or appears in L more than once.
func HoldsAlternative[T any, L List](v *Variant[L]) bool {
	i := metaOf[L]().indexOf(reflect.TypeFor[T](), "HoldsAlternative")
	return v.tag == i+1
}

// GetIf returns a pointer to the value of v if alternative index is active,
// and nil otherwise, including when v is nil or valueless.
func GetIf[T any, L List](v *Variant[L], index int) *T {
	metaOf[L]().checkIndex(index, reflect.TypeFor[T](), "GetIf")
	if v == nil || v.tag != index+1 {
		return nil
	}
	return v.cell.ptr().(*T)
}

// Get returns a copy of the value at index, or ErrBadAccess if that
// alternative is not active.
func Get[T any, L List](v *Variant[L], index int) (T, error) {
	if p := GetIf[T](v, index); p != nil {
		return *p, nil
	}
	active := NPos
	if v != nil {
		active = v.Index()
	}
	var zero T
	return zero, fmt.Errorf("%w: alternative %d is not active (index %d)", ErrBadAccess, index, active)
}
