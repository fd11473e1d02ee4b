package traits

import "reflect"

// Control says whether an operation is available on a composite of types.
type Control int

const (
	Enabled Control = iota
	Disabled
)

func (c Control) String() string {
	if c == Enabled {
		return "enabled"
	}
	return "disabled"
}

// CopyControl is Enabled when every type is both copy constructible and copy
// assignable.
func CopyControl(types ...reflect.Type) Control {
	if ConjunctionOf(All(CopyConstructible, CopyAssignable), types...).Value {
		return Enabled
	}
	return Disabled
}

// MoveControl is Enabled when every type is both move constructible and move
// assignable.
func MoveControl(types ...reflect.Type) Control {
	if ConjunctionOf(All(MoveConstructible, MoveAssignable), types...).Value {
		return Enabled
	}
	return Disabled
}
