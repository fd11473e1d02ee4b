package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMultiValues(t *testing.T) {
	cases := []struct {
		name    string
		formats []string
		raw     []string
		want    []string
		wantErr bool
	}{
		{"nil", []string{"comma"}, nil, nil, false},
		{"no format", nil, []string{"1,2", "3"}, []string{"1,2", "3"}, false},
		{"comma", []string{"comma"}, []string{"1, 2,,3", "4"}, []string{"1", "2", "3", "4"}, false},
		{"comma and space", []string{"comma", "space"}, []string{"1 2,3"}, []string{"1", "2", "3"}, false},
		{"newline", []string{"newline"}, []string{"1\r\n2\n3"}, []string{"1", "2", "3"}, false},
		{"json array", []string{"json"}, []string{`["a","b"]`, `"c"`, " "}, []string{"a", "b", "c"}, false},
		{"json invalid", []string{"json"}, []string{"[1"}, nil, true},
		{"json mixed", []string{"json", "comma"}, []string{"1"}, nil, true},
		{"unknown", []string{"tab"}, []string{"1"}, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMultiValues(tc.formats, tc.raw)
			if (err != nil) != tc.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tc.wantErr)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("values mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOutputMultiValues(t *testing.T) {
	cases := []struct {
		formats []string
		values  []string
		want    string
	}{
		{nil, []string{"1", "2"}, "1,2"},
		{[]string{"space"}, []string{"1", "2"}, "1 2"},
		{[]string{"newline", "space"}, []string{"1", "2"}, "1\n2"},
		{[]string{"space", "comma"}, []string{"1", "2"}, "1,2"},
		{[]string{"json"}, []string{"1", "2"}, `["1","2"]`},
		{[]string{"json"}, nil, `[]`},
		{[]string{"comma"}, nil, ""},
	}
	for _, tc := range cases {
		got, err := OutputMultiValues(tc.formats, tc.values)
		if err != nil {
			t.Fatalf("OutputMultiValues(%v, %v): %v", tc.formats, tc.values, err)
		}
		if got != tc.want {
			t.Fatalf("OutputMultiValues(%v, %v) = %q, want %q", tc.formats, tc.values, got, tc.want)
		}
	}
	if _, err := OutputMultiValues([]string{"json", "space"}, nil); err == nil {
		t.Fatal("json mixed with space accepted")
	}
}
