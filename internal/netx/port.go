package netx

import (
	"fmt"
	"strings"

	"github.com/vipcxj/typekit/internal/bounded"
	"github.com/vipcxj/typekit/internal/safeop"
	"github.com/vipcxj/typekit/internal/strto"
)

// PortBounds tags Port so that it does not mix with other uint16 integers.
type PortBounds struct{}

func (PortBounds) Min() uint16 { return 0 }
func (PortBounds) Max() uint16 { return 65535 }

type Port = bounded.Integer[uint16, PortBounds]

func NewPort[U safeop.Integer](u U) (Port, error) {
	return bounded.New[uint16, PortBounds](u)
}

// ParsePort reads a decimal port number.
func ParsePort(s string) (Port, error) {
	return bounded.Parse[uint16, PortBounds](s, strto.WithBase(10))
}

// ParseEndpoint splits "a.b.c.d:port" into its address and port.
func ParseEndpoint(s string) (IPv4, Port, error) {
	addr, err := ParseIPv4(s)
	if err != nil {
		return IPv4{}, Port{}, err
	}
	_, rest, ok := strings.Cut(s, ":")
	if !ok {
		return IPv4{}, Port{}, fmt.Errorf("%w: no port in %q", ErrInvalidAddress, s)
	}
	p, err := ParsePort(rest)
	if err != nil {
		return IPv4{}, Port{}, fmt.Errorf("port of %q: %w", s, err)
	}
	return addr, p, nil
}
