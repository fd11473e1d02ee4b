package netx

import (
	"fmt"

	"github.com/vipcxj/typekit/internal/bounded"
)

// AddressBounds is the inclusive slice of the IPv4 space an Address may hold,
// in host order.
type AddressBounds = bounded.Bounds[uint32]

// AnyAddress admits every IPv4 address.
type AnyAddress = bounded.Full[uint32]

// MulticastRange admits 224.0.0.0 through 239.255.255.255.
type MulticastRange struct{}

func (MulticastRange) Min() uint32 { return 0xe0000000 }
func (MulticastRange) Max() uint32 { return 0xefffffff }

type (
	IPv4      = Address[AnyAddress]
	Multicast = Address[MulticastRange]
)

// Address is an IPv4 address that always lies within B. The zero value is
// the lowest address of B.
type Address[B AddressBounds] struct {
	// offset from B's minimum, so the zero value stays in range
	off uint32
}

// FromUint32 returns the address with host order value v, or ErrOutOfRange.
func FromUint32[B AddressBounds](v uint32) (Address[B], error) {
	var b B
	if v < b.Min() || v > b.Max() {
		return Address[B]{}, fmt.Errorf("%w: %s is not within %s-%s",
			ErrOutOfRange, ArrayFromUint32(v), ArrayFromUint32(b.Min()), ArrayFromUint32(b.Max()))
	}
	return Address[B]{off: v - b.Min()}, nil
}

func NewAddress[B AddressBounds](a Array) (Address[B], error) {
	return FromUint32[B](a.Uint32())
}

// ParseAddress reads a dotted quad and checks it against B.
func ParseAddress[B AddressBounds](s string) (Address[B], error) {
	a, err := ParseArray(s)
	if err != nil {
		return Address[B]{}, err
	}
	return NewAddress[B](a)
}

func ParseIPv4(s string) (IPv4, error) {
	return ParseAddress[AnyAddress](s)
}

func ParseMulticast(s string) (Multicast, error) {
	return ParseAddress[MulticastRange](s)
}

// Convert re-checks an address of one range against another.
func Convert[B, O AddressBounds](a Address[O]) (Address[B], error) {
	return FromUint32[B](a.Uint32())
}

func (a Address[B]) Uint32() uint32 {
	var b B
	return b.Min() + a.off
}

func (a Address[B]) Array() Array { return ArrayFromUint32(a.Uint32()) }

// Octet returns octet i, 0 being the most significant. It panics if i is not
// between 0 and 3.
func (a Address[B]) Octet(i int) byte { return a.Array()[i] }

// Constrained reports whether B excludes part of the address space.
func (Address[B]) Constrained() bool {
	var b B
	return b.Min() != 0 || b.Max() != 0xffffffff
}

func (a Address[B]) String() string { return a.Array().String() }

func (a Address[B]) Compare(other Address[B]) int {
	switch {
	case a.off < other.off:
		return -1
	case a.off > other.off:
		return 1
	}
	return 0
}

func (a Address[B]) Less(other Address[B]) bool { return a.off < other.off }

func (a *Address[B]) Swap(other *Address[B]) {
	a.off, other.off = other.off, a.off
}

func (a Address[B]) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses text as a dotted quad, leaving a unchanged on error.
func (a *Address[B]) UnmarshalText(text []byte) error {
	v, err := ParseAddress[B](string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
