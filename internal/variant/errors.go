package variant

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrBadAccess is returned when a valueless variant is visited or read.
	ErrBadAccess = errors.New("bad variant access")

	ErrNotCopyable             = errors.New("variant is not copyable")
	ErrNotMovable              = errors.New("variant is not movable")
	ErrNotDefaultConstructible = errors.New("first alternative is not default constructible")
	ErrNoOverload              = errors.New("no overload accepts the value")

	ErrIndexOutOfRange = errors.New("alternative index out of range")
	ErrTypeMismatch    = errors.New("type does not match the alternative")
	ErrArity           = errors.New("one case per alternative is required")
	ErrNoMonostate     = errors.New("alternatives do not include Monostate")
)

// AlternativeError describes a misuse of the variant API that names a type
// or index the alternative list does not allow. It is raised with panic, the
// same way an out of range slice index is.
type AlternativeError struct {
	Op    string
	Type  reflect.Type
	Index int
	Err   error
}

func (e *AlternativeError) Error() string {
	switch {
	case e.Type != nil && e.Index != NPos:
		return fmt.Sprintf("variant.%s: %v at index %d: %v", e.Op, e.Type, e.Index, e.Err)
	case e.Type != nil:
		return fmt.Sprintf("variant.%s: %v: %v", e.Op, e.Type, e.Err)
	default:
		return fmt.Sprintf("variant.%s: %d: %v", e.Op, e.Index, e.Err)
	}
}

func (e *AlternativeError) Unwrap() error { return e.Err }
