package tuple

import (
	"errors"
	"reflect"
	"testing"
)

func TestIndexOf(t *testing.T) {
	types := Types(int(0), "", 1.5, int8(0), "")
	cases := []struct {
		name    string
		typ     reflect.Type
		want    int
		wantErr error
	}{
		{"first", reflect.TypeFor[int](), 0, nil},
		{"middle", reflect.TypeFor[float64](), 2, nil},
		{"last_unique", reflect.TypeFor[int8](), 3, nil},
		{"ambiguous", reflect.TypeFor[string](), -1, ErrAmbiguous},
		{"missing", reflect.TypeFor[uint](), -1, ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IndexOf(tc.typ, types)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("IndexOf(%v) error = %v, want %v", tc.typ, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("IndexOf(%v) = %d, want %d", tc.typ, got, tc.want)
			}
		})
	}
}

func TestContainsAndCount(t *testing.T) {
	types := Types(int(0), "", "")
	if !ContainsType[int](types) {
		t.Fatalf("int should be contained")
	}
	if ContainsType[bool](types) {
		t.Fatalf("bool should not be contained")
	}
	if n := Count(reflect.TypeFor[string](), types); n != 2 {
		t.Fatalf("Count(string) = %d, want 2", n)
	}
	if i, err := IndexOfType[int](types); err != nil || i != 0 {
		t.Fatalf("IndexOfType[int] = %d, %v", i, err)
	}
}
