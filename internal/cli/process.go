package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/vipcxj/typekit/internal/bounded"
	"github.com/vipcxj/typekit/internal/netx"
	"github.com/vipcxj/typekit/internal/safeop"
	"github.com/vipcxj/typekit/internal/strto"
)

// IntegerTypes lists the names accepted by ParseIntegers.
var IntegerTypes = []string{"int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64"}

func strtoOptions(opts Options) []strto.Option {
	return []strto.Option{strto.WithBase(opts.Base), strto.WithDelimiters(opts.Delims)}
}

func integerResult[T safeop.Integer](input, typ string, r strto.Result[T]) Result {
	if strings.TrimSpace(input) == "" {
		return Empty()
	}
	if !r.Ok() {
		return Failed(Failure{
			Input:    input,
			Status:   r.Status().String(),
			Unparsed: r.Unparsed(),
			Message:  r.Err().Error(),
		})
	}
	v := r.MustValue()
	text := strconv.FormatUint(uint64(v), 10)
	if safeop.IsSigned[T]() {
		text = strconv.FormatInt(int64(v), 10)
	}
	return Integer(IntegerValue{Input: input, Type: typ, Value: text, Unparsed: r.Unparsed()})
}

func parseAs[T safeop.Integer](inputs []string, typ string, opts Options) []Result {
	results := make([]Result, len(inputs))
	for i, in := range inputs {
		results[i] = integerResult(in, typ, strto.Parse[T](in, strtoOptions(opts)...))
	}
	return results
}

// ParseIntegers converts every input to the integer type named typ.
func ParseIntegers(inputs []string, typ string, opts Options) ([]Result, error) {
	switch typ {
	case "int":
		return parseAs[int](inputs, typ, opts), nil
	case "int8":
		return parseAs[int8](inputs, typ, opts), nil
	case "int16":
		return parseAs[int16](inputs, typ, opts), nil
	case "int32":
		return parseAs[int32](inputs, typ, opts), nil
	case "int64":
		return parseAs[int64](inputs, typ, opts), nil
	case "uint":
		return parseAs[uint](inputs, typ, opts), nil
	case "uint8":
		return parseAs[uint8](inputs, typ, opts), nil
	case "uint16":
		return parseAs[uint16](inputs, typ, opts), nil
	case "uint32":
		return parseAs[uint32](inputs, typ, opts), nil
	case "uint64":
		return parseAs[uint64](inputs, typ, opts), nil
	}
	return nil, fmt.Errorf("unknown integer type %q, expected one of %s", typ, strings.Join(IntegerTypes, ", "))
}

// ParseInRange converts every input to an int64 that must lie in the
// interval described by rng, in the syntax of bounded.ParseInterval.
func ParseInRange(inputs []string, rng string, opts Options) ([]Result, error) {
	interval, err := bounded.ParseInterval[int64](rng, true)
	if err != nil {
		return nil, fmt.Errorf("range %q: %w", rng, err)
	}
	if !interval.IsValid() {
		return nil, fmt.Errorf("range %q: %w", rng, bounded.ErrEmptyInterval)
	}
	lo, ok := interval.Lowest()
	if !ok {
		lo = safeop.MinOf[int64]()
	}
	hi, ok := interval.Highest()
	if !ok {
		hi = safeop.MaxOf[int64]()
	}
	results := make([]Result, len(inputs))
	for i, in := range inputs {
		r := strto.ParseBounded(in, lo, hi, strtoOptions(opts)...)
		results[i] = integerResult(in, "int64 "+interval.String(), r)
	}
	return results, nil
}

// ParseAddresses reads dotted quads, requiring multicast addresses when
// multicast is set.
func ParseAddresses(inputs []string, multicast bool) []Result {
	results := make([]Result, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in) == "" {
			results[i] = Empty()
			continue
		}
		ip, err := netx.ParseIPv4(in)
		if err != nil {
			results[i] = failedErr(in, err)
			continue
		}
		_, merr := netx.Convert[netx.MulticastRange](ip)
		if multicast && merr != nil {
			results[i] = failedErr(in, merr)
			continue
		}
		results[i] = Address(AddressValue{
			Input:     in,
			Address:   ip.String(),
			Uint32:    ip.Uint32(),
			Multicast: merr == nil,
			Network:   hex.EncodeToString(netx.ToNetwork(ip.Uint32()).Bytes()),
		})
	}
	return results
}

// ParsePorts reads port numbers or address:port endpoints.
func ParsePorts(inputs []string) []Result {
	results := make([]Result, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in) == "" {
			results[i] = Empty()
			continue
		}
		var (
			host string
			port netx.Port
			err  error
		)
		if strings.Contains(in, ":") {
			var addr netx.IPv4
			addr, port, err = netx.ParseEndpoint(in)
			host = addr.String()
		} else {
			port, err = netx.ParsePort(in)
		}
		if err != nil {
			results[i] = failedErr(in, err)
			continue
		}
		results[i] = PortResult(PortValue{
			Input:   in,
			Host:    host,
			Port:    port.Value(),
			Network: hex.EncodeToString(netx.ToNetwork(port.Value()).Bytes()),
		})
	}
	return results
}

// ParseFilters reads filter expressions and tests each number in tests
// against every filter.
func ParseFilters(inputs []string, tests []int) []Result {
	results := make([]Result, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in) == "" {
			results[i] = Empty()
			continue
		}
		f, err := bounded.ParseFilter(in)
		if err != nil {
			results[i] = failedErr(in, err)
			continue
		}
		v := FilterValue{Input: in, Normalized: f.String(), AllNatural: f.IsAllNatural()}
		for _, n := range tests {
			if f.Test(n) {
				v.Accepted = append(v.Accepted, n)
			} else {
				v.Rejected = append(v.Rejected, n)
			}
		}
		results[i] = Filter(v)
	}
	return results
}
