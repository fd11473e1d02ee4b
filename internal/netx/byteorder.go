package netx

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// NetworkOrder stores an unsigned integer with its bytes in network order,
// ready to be copied into a packet. The zero value holds zero.
type NetworkOrder[T uint16 | uint32 | uint64] struct {
	raw T
}

var bigEndianHost = binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234

func ToNetwork[T uint16 | uint32 | uint64](v T) NetworkOrder[T] {
	return NetworkOrder[T]{raw: swapBytes(v)}
}

// FromBytes reads a value from the first Size bytes of b.
func FromBytes[T uint16 | uint32 | uint64](b []byte) (NetworkOrder[T], error) {
	var n NetworkOrder[T]
	if len(b) < n.Size() {
		return n, fmt.Errorf("need %d bytes, got %d", n.Size(), len(b))
	}
	var v T
	switch p := any(&v).(type) {
	case *uint16:
		*p = binary.BigEndian.Uint16(b)
	case *uint32:
		*p = binary.BigEndian.Uint32(b)
	case *uint64:
		*p = binary.BigEndian.Uint64(b)
	}
	n.Set(v)
	return n, nil
}

func swapBytes[T uint16 | uint32 | uint64](v T) T {
	if bigEndianHost {
		return v
	}
	switch x := any(v).(type) {
	case uint16:
		return T(bits.ReverseBytes16(x))
	case uint32:
		return T(bits.ReverseBytes32(x))
	default:
		return T(bits.ReverseBytes64(x.(uint64)))
	}
}

// Host returns the value in host byte order.
func (n NetworkOrder[T]) Host() T { return swapBytes(n.raw) }

// Raw returns the stored representation, whose in-memory bytes are in
// network order.
func (n NetworkOrder[T]) Raw() T { return n.raw }

func (n *NetworkOrder[T]) Set(v T) { n.raw = swapBytes(v) }

func (n NetworkOrder[T]) Size() int { return binary.Size(n.raw) }

// Bytes returns the value big-endian.
func (n NetworkOrder[T]) Bytes() []byte {
	switch v := any(n.Host()).(type) {
	case uint16:
		return binary.BigEndian.AppendUint16(nil, v)
	case uint32:
		return binary.BigEndian.AppendUint32(nil, v)
	default:
		return binary.BigEndian.AppendUint64(nil, v.(uint64))
	}
}

// Compare orders by host value.
func (n NetworkOrder[T]) Compare(other NetworkOrder[T]) int {
	a, b := n.Host(), other.Host()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (n *NetworkOrder[T]) Swap(other *NetworkOrder[T]) {
	n.raw, other.raw = other.raw, n.raw
}

func (n NetworkOrder[T]) String() string {
	return fmt.Sprint(n.Host())
}
