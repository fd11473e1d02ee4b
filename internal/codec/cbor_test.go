package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vipcxj/typekit/internal/netx"
)

type sample struct {
	Kind  string `json:"kind"`
	Value int64  `json:"value"`
}

func TestMarshalRoundtrip(t *testing.T) {
	in := sample{Kind: "integer", Value: -42}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: got %+v, want %+v", out, in)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	m := map[string]int{"zeta": 1, "alpha": 2, "mid": 3}
	first, err := Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Marshal(m)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding violated: %x != %x", first, again)
		}
	}
	diag, err := Diagnose(first)
	if err != nil {
		t.Fatal(err)
	}
	mid, zeta, alpha := strings.Index(diag, "mid"), strings.Index(diag, "zeta"), strings.Index(diag, "alpha")
	if mid < 0 || mid > zeta || zeta > alpha {
		t.Fatalf("keys not in canonical order: %s", diag)
	}
}

func TestTextMarshalerAsString(t *testing.T) {
	addr, err := netx.ParseIPv4("10.1.2.3")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Marshal(addr)
	if err != nil {
		t.Fatal(err)
	}
	diag, err := Diagnose(data)
	if err != nil {
		t.Fatal(err)
	}
	if diag != `"10.1.2.3"` {
		t.Fatalf("address encoded as %s", diag)
	}

	var back netx.IPv4
	if err := Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != addr {
		t.Fatalf("decoded %s, want %s", back, addr)
	}
}

func TestMarshalHex(t *testing.T) {
	got, err := MarshalHex(uint16(500))
	if err != nil {
		t.Fatal(err)
	}
	if got != "1901f4" {
		t.Fatalf("MarshalHex(500) = %s", got)
	}
}

func TestAnyMapsDecodeWithStringKeys(t *testing.T) {
	data, err := Marshal(sample{Kind: "port", Value: 80})
	if err != nil {
		t.Fatal(err)
	}
	var v any
	if err := Unmarshal(data, &v); err != nil {
		t.Fatal(err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("decoded %T", v)
	}
	if m["kind"] != "port" {
		t.Fatalf("kind = %v", m["kind"])
	}
}
