package bounded

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/vipcxj/typekit/internal/strto"
)

type percent struct{}

func (percent) Min() uint8 { return 0 }
func (percent) Max() uint8 { return 100 }

type celsius struct{}

func (celsius) Min() int16 { return -273 }
func (celsius) Max() int16 { return 5000 }

type Percent = Integer[uint8, percent]
type Celsius = Integer[int16, celsius]

func TestNew(t *testing.T) {
	cases := []struct {
		name string
		in   int64
		err  error
	}{
		{"zero", 0, nil},
		{"max", 100, nil},
		{"above", 101, ErrOverflow},
		{"negative", -1, ErrUnderflow},
		{"far_above", 1 << 40, ErrOverflow},
	}
	for _, tc := range cases {
		p, err := New[uint8, percent](tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("%s: New(%d) error = %v, want %v", tc.name, tc.in, err, tc.err)
		}
		if err == nil && int64(p.Value()) != tc.in {
			t.Fatalf("%s: New(%d) = %d", tc.name, tc.in, p.Value())
		}
		if err != nil && !errors.Is(err, ErrBoundedInteger) {
			t.Fatalf("%s: %v does not wrap ErrBoundedInteger", tc.name, err)
		}
	}

	if _, err := New[int16, celsius](uint64(1 << 63)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("huge unsigned input: %v", err)
	}
	if _, err := New[int16, celsius](-274); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("below absolute zero: %v", err)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNew(200) did not panic")
		}
	}()
	MustNew[uint8, percent](200)
}

func TestBoundsAndLimits(t *testing.T) {
	var p Percent
	if p.Min() != 0 || p.Max() != 100 {
		t.Fatalf("Percent bounds = [%d,%d]", p.Min(), p.Max())
	}
	if got := MinValue[int16, celsius]().Value(); got != -273 {
		t.Fatalf("MinValue = %d", got)
	}
	if got := MaxValue[int16, celsius]().Value(); got != 5000 {
		t.Fatalf("MaxValue = %d", got)
	}
	if got := MaxValue[int8, Full[int8]]().Value(); got != 127 {
		t.Fatalf("Full[int8] max = %d", got)
	}
	if got := p.Interval(); got != NewInclusiveInterval[uint8](0, 100) {
		t.Fatalf("Interval() = %s", got)
	}
}

func TestSetKeepsValueOnError(t *testing.T) {
	p := MustNew[uint8, percent](42)
	if err := p.Set(101); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Set(101) = %v", err)
	}
	if p.Value() != 42 {
		t.Fatalf("value changed to %d after failed Set", p.Value())
	}
	if err := p.SetString("oops"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("SetString(oops) = %v", err)
	}
	if err := p.SetString("0x20"); err != nil || p.Value() != 32 {
		t.Fatalf("SetString(0x20) = %v, value %d", err, p.Value())
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want int16
		err  error
	}{
		{"25", 25, nil},
		{"  -273", -273, nil},
		{"-274", 0, ErrUnderflow},
		{"5001", 0, ErrOverflow},
		{"99999", 0, ErrOverflow},
		{"12abc", 0, ErrInvalid},
		{"", 0, ErrInvalid},
	}
	for _, tc := range cases {
		c, err := Parse[int16, celsius](tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("Parse(%q) error = %v, want %v", tc.in, err, tc.err)
		}
		if err == nil && c.Value() != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.in, c.Value(), tc.want)
		}
	}

	_, err := Parse[int16, celsius]("-274")
	if !errors.Is(err, strto.ErrUnderflow) {
		t.Fatalf("range error does not wrap the conversion error: %v", err)
	}
}

func TestParseAt(t *testing.T) {
	s := "10,20,300"
	var got []uint8
	pos := 0
	for {
		p, next, err := ParseAt[uint8, percent](s, pos, strto.WithDelimiters(","))
		if err != nil {
			if !errors.Is(err, ErrOverflow) || next != len(s) {
				t.Fatalf("ParseAt(%q, %d) = %v, next %d", s, pos, err, next)
			}
			break
		}
		got = append(got, p.Value())
		pos = next + 1
	}
	if len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Fatalf("parsed %v", got)
	}

	if _, _, err := ParseAt[uint8, percent](s, 42); !errors.Is(err, ErrInvalid) {
		t.Fatalf("position past the end: %v", err)
	}
}

func TestSwapAndCompare(t *testing.T) {
	a := MustNew[int16, celsius](-10)
	b := MustNew[int16, celsius](30)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("Compare is not ordered")
	}
	a.Swap(&b)
	if a.Value() != 30 || b.Value() != -10 {
		t.Fatalf("Swap gave %s and %s", a, b)
	}
}

func TestTextMarshaling(t *testing.T) {
	type reading struct {
		Load Percent `json:"load"`
		Temp Celsius `json:"temp"`
	}
	data, err := json.Marshal(reading{Load: MustNew[uint8, percent](75), Temp: MustNew[int16, celsius](-40)})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"load":"75","temp":"-40"}` {
		t.Fatalf("json = %s", data)
	}

	var r reading
	if err := json.Unmarshal([]byte(`{"load":"100","temp":"21"}`), &r); err != nil {
		t.Fatal(err)
	}
	if r.Load.Value() != 100 || r.Temp.Value() != 21 {
		t.Fatalf("decoded %+v", r)
	}
	if err := json.Unmarshal([]byte(`{"load":"101"}`), &r); !errors.Is(err, ErrOverflow) {
		t.Fatalf("decoding 101 percent: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"load":"010"}`), &r); err != nil || r.Load.Value() != 10 {
		t.Fatalf("text form is decimal: %v, %d", err, r.Load.Value())
	}
}
