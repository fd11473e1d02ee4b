package cli

import (
	"fmt"
	"strconv"

	"github.com/vipcxj/typekit/internal/variant"
)

// IntegerValue is a successful integer conversion. Value is decimal text so
// that 64-bit values survive JSON.
type IntegerValue struct {
	Input    string `json:"input" yaml:"input"`
	Type     string `json:"type" yaml:"type"`
	Value    string `json:"value" yaml:"value"`
	Unparsed string `json:"unparsed,omitempty" yaml:"unparsed,omitempty"`
}

type AddressValue struct {
	Input     string `json:"input" yaml:"input"`
	Address   string `json:"address" yaml:"address"`
	Uint32    uint32 `json:"uint32" yaml:"uint32"`
	Multicast bool   `json:"multicast" yaml:"multicast"`
	// Network is the address in network byte order, hex encoded.
	Network string `json:"network" yaml:"network"`
}

type PortValue struct {
	Input   string `json:"input" yaml:"input"`
	Host    string `json:"host,omitempty" yaml:"host,omitempty"`
	Port    uint16 `json:"port" yaml:"port"`
	Network string `json:"network" yaml:"network"`
}

type FilterValue struct {
	Input      string `json:"input" yaml:"input"`
	Normalized string `json:"normalized" yaml:"normalized"`
	AllNatural bool   `json:"all_natural" yaml:"all_natural"`
	Accepted   []int  `json:"accepted,omitempty" yaml:"accepted,omitempty"`
	Rejected   []int  `json:"rejected,omitempty" yaml:"rejected,omitempty"`
}

// Failure is an input that could not be converted. Status is the strto
// status when the conversion itself failed and "error" otherwise.
type Failure struct {
	Input    string `json:"input" yaml:"input"`
	Status   string `json:"status" yaml:"status"`
	Unparsed string `json:"unparsed,omitempty" yaml:"unparsed,omitempty"`
	Message  string `json:"message" yaml:"message"`
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Status, f.Message)
}

// Outcomes lists the alternatives of a Result. Monostate stands for an empty
// input.
type Outcomes = variant.Of6[variant.Monostate, IntegerValue, AddressValue, PortValue, FilterValue, Failure]

// Result is the outcome of processing one input.
type Result = variant.Variant[Outcomes]

const (
	idxEmpty = iota
	idxInteger
	idxAddress
	idxPort
	idxFilter
	idxFailure
)

func Empty() Result                 { return variant.New[Outcomes](variant.Monostate{}) }
func Integer(v IntegerValue) Result { return variant.New[Outcomes](v) }
func Address(v AddressValue) Result { return variant.New[Outcomes](v) }
func PortResult(v PortValue) Result { return variant.New[Outcomes](v) }
func Filter(v FilterValue) Result   { return variant.New[Outcomes](v) }
func Failed(f Failure) Result       { return variant.New[Outcomes](f) }

func failedErr(input string, err error) Result {
	return Failed(Failure{Input: input, Status: "error", Message: err.Error()})
}

// IsFailure reports whether r holds a Failure.
func IsFailure(r *Result) bool {
	return variant.HoldsAlternative[Failure](r)
}

// FailureOf returns the failure held by r, if any.
func FailureOf(r *Result) (Failure, bool) {
	if f := variant.GetIf[Failure](r, idxFailure); f != nil {
		return *f, true
	}
	return Failure{}, false
}

var kindOf = variant.Overload(
	variant.On(func(variant.Monostate) string { return "empty" }),
	variant.On(func(IntegerValue) string { return "integer" }),
	variant.On(func(AddressValue) string { return "address" }),
	variant.On(func(PortValue) string { return "port" }),
	variant.On(func(FilterValue) string { return "filter" }),
	variant.On(func(Failure) string { return "failure" }),
)

// Kind names the active alternative of r.
func Kind(r *Result) string {
	k, err := variant.Visit(r, kindOf)
	if err != nil {
		return "valueless"
	}
	return k
}

// Text renders r as a single line.
func Text(r *Result) (string, error) {
	return variant.Match(r,
		variant.On(func(variant.Monostate) string { return "" }),
		variant.On(func(v IntegerValue) string { return v.Value }),
		variant.On(func(v AddressValue) string { return v.Address }),
		variant.On(func(v PortValue) string { return strconv.Itoa(int(v.Port)) }),
		variant.On(func(v FilterValue) string { return v.Normalized }),
		variant.On(func(f Failure) string { return f.String() }),
	)
}

// record is the serialized form of a Result: its kind plus exactly one
// populated payload.
type record struct {
	Kind    string        `json:"kind" yaml:"kind"`
	Integer *IntegerValue `json:"integer,omitempty" yaml:"integer,omitempty"`
	Address *AddressValue `json:"address,omitempty" yaml:"address,omitempty"`
	Port    *PortValue    `json:"port,omitempty" yaml:"port,omitempty"`
	Filter  *FilterValue  `json:"filter,omitempty" yaml:"filter,omitempty"`
	Failure *Failure      `json:"failure,omitempty" yaml:"failure,omitempty"`
}

func toRecord(r *Result) (record, error) {
	return variant.Match(r,
		variant.On(func(variant.Monostate) record { return record{Kind: "empty"} }),
		variant.On(func(v IntegerValue) record { return record{Kind: "integer", Integer: &v} }),
		variant.On(func(v AddressValue) record { return record{Kind: "address", Address: &v} }),
		variant.On(func(v PortValue) record { return record{Kind: "port", Port: &v} }),
		variant.On(func(v FilterValue) record { return record{Kind: "filter", Filter: &v} }),
		variant.On(func(f Failure) record { return record{Kind: "failure", Failure: &f} }),
	)
}
