//go:generate go run github.com/dmarkham/enumer -type=Status -trimprefix=Status -transform=snake -text
package strto

import "errors"

// Status is the outcome of a conversion.
type Status int

const (
	StatusOk Status = iota
	StatusInvalid
	StatusUnderflow
	StatusOverflow
)

var (
	ErrInvalid   = errors.New("invalid integer")
	ErrUnderflow = errors.New("integer underflow")
	ErrOverflow  = errors.New("integer overflow")
	ErrNoValue   = errors.New("conversion produced no value")
)

func (s Status) err() error {
	switch s {
	case StatusInvalid:
		return ErrInvalid
	case StatusUnderflow:
		return ErrUnderflow
	case StatusOverflow:
		return ErrOverflow
	}
	return nil
}
