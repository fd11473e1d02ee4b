// Package netx holds IPv4 value types: raw address octets, addresses confined
// to a range of the address space, ports and integers kept in network byte
// order.
package netx

import (
	"errors"
	"fmt"

	"github.com/vipcxj/typekit/internal/strto"
)

var (
	ErrInvalidAddress = errors.New("invalid ipv4 address")
	ErrOutOfRange     = errors.New("ipv4 address out of range")
)

// Array is an IPv4 address as four octets, most significant first.
type Array [4]byte

func ArrayFromUint32(v uint32) Array {
	return Array{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

var octetNames = [4]string{"first", "second", "third", "last"}

// ParseArray reads a dotted quad such as "192.168.0.1". Each octet is a
// decimal number between 0 and 255. The last octet may be followed by a colon
// and anything after it, so "10.0.0.1:8080" yields 10.0.0.1.
func ParseArray(s string) (Array, error) {
	var a Array
	pos := 0
	for i := range a {
		delims := "."
		if i == len(a)-1 {
			delims = ":"
		}
		r := strto.Parse[uint8](s[pos:], strto.WithBase(10), strto.WithDelimiters(delims))
		if !r.Ok() {
			return Array{}, fmt.Errorf("%w: %s octet is %s in %q", ErrInvalidAddress, octetNames[i], r.Status(), s)
		}
		a[i] = r.MustValue()
		pos += r.Consumed()
		if i < len(a)-1 {
			if pos >= len(s) {
				return Array{}, fmt.Errorf("%w: missing %s octet in %q", ErrInvalidAddress, octetNames[i+1], s)
			}
			pos++
		}
	}
	return a, nil
}

func (a Array) Uint32() uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}

func (a Array) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}
