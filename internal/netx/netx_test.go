package netx

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vipcxj/typekit/internal/bounded"
)

func TestParseArray(t *testing.T) {
	cases := []struct {
		in   string
		want Array
		err  string
	}{
		{in: "192.168.0.1", want: Array{192, 168, 0, 1}},
		{in: "0.0.0.0", want: Array{}},
		{in: "255.255.255.255", want: Array{255, 255, 255, 255}},
		{in: "10.0.0.1:8080", want: Array{10, 0, 0, 1}},
		{in: "", err: "first octet"},
		{in: "256.0.0.1", err: "first octet is overflow"},
		{in: "1.x.0.1", err: "second octet is invalid"},
		{in: "1.2.3", err: "missing last octet"},
		{in: "1.2", err: "missing third octet"},
		{in: "1.2.3.4.5", err: "last octet is invalid"},
		{in: "1.2.3.-4", err: "last octet is underflow"},
		{in: "1;2.3.4", err: "first octet is invalid"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseArray(tc.in)
			if tc.err != "" {
				require.ErrorIs(t, err, ErrInvalidAddress)
				require.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.want, ArrayFromUint32(got.Uint32()))
		})
	}
}

func TestArrayUint32(t *testing.T) {
	a := Array{0xc0, 0xa8, 0x01, 0x02}
	require.Equal(t, uint32(0xc0a80102), a.Uint32())
	require.Equal(t, a, ArrayFromUint32(0xc0a80102))
	require.Equal(t, "192.168.1.2", a.String())
}

func TestAddressRange(t *testing.T) {
	m, err := ParseMulticast("239.1.2.3")
	require.NoError(t, err)
	require.Equal(t, "239.1.2.3", m.String())
	require.Equal(t, byte(239), m.Octet(0))
	require.Equal(t, byte(3), m.Octet(3))
	require.True(t, m.Constrained())

	_, err = ParseMulticast("192.168.0.1")
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = ParseMulticast("240.0.0.0")
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = FromUint32[MulticastRange](0xdfffffff)
	require.ErrorIs(t, err, ErrOutOfRange)

	lo, err := FromUint32[MulticastRange](0xe0000000)
	require.NoError(t, err)
	var zero Multicast
	require.Equal(t, lo, zero, "zero value is the lowest multicast address")
	require.Equal(t, "224.0.0.0", zero.String())

	var ip IPv4
	require.False(t, ip.Constrained())
	require.Equal(t, "0.0.0.0", ip.String())
}

func TestConvert(t *testing.T) {
	ip, err := ParseIPv4("224.0.0.251")
	require.NoError(t, err)
	m, err := Convert[MulticastRange](ip)
	require.NoError(t, err)
	require.Equal(t, ip.Uint32(), m.Uint32())

	back, err := Convert[AnyAddress](m)
	require.NoError(t, err)
	require.Equal(t, ip, back)

	ip, err = ParseIPv4("8.8.8.8")
	require.NoError(t, err)
	_, err = Convert[MulticastRange](ip)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestAddressOrdering(t *testing.T) {
	a, _ := ParseIPv4("10.0.0.1")
	b, _ := ParseIPv4("10.0.0.2")
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))

	a.Swap(&b)
	require.Equal(t, "10.0.0.2", a.String())
	require.Equal(t, "10.0.0.1", b.String())
}

func TestAddressText(t *testing.T) {
	type group struct {
		Addr Multicast `json:"addr"`
		Port Port      `json:"port"`
	}
	var g group
	require.NoError(t, json.Unmarshal([]byte(`{"addr":"239.255.0.1","port":"5353"}`), &g))
	require.Equal(t, "239.255.0.1", g.Addr.String())
	require.Equal(t, uint16(5353), g.Port.Value())

	data, err := json.Marshal(g)
	require.NoError(t, err)
	require.JSONEq(t, `{"addr":"239.255.0.1","port":"5353"}`, string(data))

	err = json.Unmarshal([]byte(`{"addr":"10.0.0.1"}`), &g)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, "239.255.0.1", g.Addr.String(), "failed decode keeps the old value")
}

func TestPort(t *testing.T) {
	p, err := ParsePort("443")
	require.NoError(t, err)
	require.Equal(t, uint16(443), p.Value())

	_, err = ParsePort("65536")
	require.ErrorIs(t, err, bounded.ErrOverflow)
	_, err = ParsePort("-1")
	require.ErrorIs(t, err, bounded.ErrUnderflow)
	_, err = ParsePort("http")
	require.ErrorIs(t, err, bounded.ErrInvalid)

	p, err = NewPort(int64(8080))
	require.NoError(t, err)
	require.Equal(t, "8080", p.String())
	_, err = NewPort(70000)
	require.ErrorIs(t, err, bounded.ErrOverflow)
}

func TestParseEndpoint(t *testing.T) {
	addr, port, err := ParseEndpoint("127.0.0.1:9000")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", addr.String())
	require.Equal(t, uint16(9000), port.Value())

	_, _, err = ParseEndpoint("127.0.0.1")
	require.ErrorIs(t, err, ErrInvalidAddress)
	_, _, err = ParseEndpoint("127.0.0.1:99999")
	require.True(t, errors.Is(err, bounded.ErrOverflow), err)
	_, _, err = ParseEndpoint("127.0.0:1")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNetworkOrder(t *testing.T) {
	n16 := ToNetwork(uint16(0x1234))
	require.Equal(t, uint16(0x1234), n16.Host())
	require.Equal(t, []byte{0x12, 0x34}, n16.Bytes())
	require.Equal(t, 2, n16.Size())

	n32 := ToNetwork(uint32(0xc0a80001))
	require.Equal(t, []byte{0xc0, 0xa8, 0x00, 0x01}, n32.Bytes())
	require.Equal(t, 4, n32.Size())
	require.Equal(t, "3232235521", n32.String())

	n64 := ToNetwork(uint64(1))
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, n64.Bytes())
	require.Equal(t, 8, n64.Size())

	back, err := FromBytes[uint32](n32.Bytes())
	require.NoError(t, err)
	require.Equal(t, n32, back)
	_, err = FromBytes[uint64]([]byte{1, 2})
	require.Error(t, err)

	a, b := ToNetwork(uint16(1)), ToNetwork(uint16(256))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	a.Swap(&b)
	require.Equal(t, uint16(256), a.Host())

	var z NetworkOrder[uint32]
	require.Zero(t, z.Host())
	z.Set(7)
	require.Equal(t, uint32(7), z.Host())
}
