package bounded

import (
	"strings"
	"testing"
)

func TestParseFilter_ValidAndString(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantStr      string
		wantNotEmpty bool
		wantAll      bool
		testTrue     []int
		testFalse    []int
	}{
		{"empty", "", "", false, false, nil, []int{0, 1}},
		{"all", "all", "all", true, true, []int{0, 50, 100}, []int{-1}},
		{"single", "3", "3", true, false, []int{3}, []int{-1, 2, 4}},
		{"inclusive", "1-3", "1-3", true, false, []int{1, 2, 3}, []int{-1, 0, 4}},
		{"unbounded", "-5-", "all", true, true, []int{0, 5, 1000}, []int{-1}},
		{"rightOpen", "5-", "5-", true, false, []int{5, 1000}, []int{-1, 4}},
		{"leftOpen", "-4", "0-4", true, false, []int{0, 1, 2, 3, 4}, []int{-1, 5, 6}},
		{"multiple_singles", "1_3_5", "1_3_5", true, false, []int{1, 3, 5}, []int{-1, 0, 2, 4, 6}},
		{"multiple_ranges", "1-2_4-5", "1-2_4-5", true, false, []int{1, 2, 4, 5}, []int{-1, 0, 3, 6}},
		{"adjacent_singles_merge", "1_2", "1-2", true, false, []int{1, 2}, []int{-1, 0, 3}},
		{"gap_ranges_no_merge", "1-3_5-7", "1-3_5-7", true, false, []int{1, 2, 3, 5, 6, 7}, []int{-1, 0, 4, 8}},
		{"adjacent_ranges_merge", "1-3_4-6", "1-6", true, false, []int{1, 2, 3, 4, 5, 6}, []int{-1, 0, 7}},
		{"adjacent_range_and_single_merge", "1-3_4", "1-4", true, false, []int{1, 2, 3, 4}, []int{-1, 0, 5}},
		{"with_unbounded", " -3_5- ", "0-3_5-", true, false, []int{0, 1, 2, 3, 5, 10, 100}, []int{-1, 4}},
		{"covering_all", "-3_4-", "all", true, true, []int{0, 3, 4, 99}, []int{-1}},
		{"compound_valid", "1_3-5_7-7", "1_3-5_7", true, false, []int{1, 3, 4, 5, 7}, []int{-1, 0, 2, 6, 8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := ParseFilter(tc.in)
			if err != nil {
				t.Fatalf("unexpected error parsing %q: %v", tc.in, err)
			}
			if got := f.String(); got != tc.wantStr {
				t.Fatalf("String(): got %q want %q (input %q)", got, tc.wantStr, tc.in)
			}
			if ne := f.IsNotEmpty(); ne != tc.wantNotEmpty {
				t.Fatalf("IsNotEmpty(): got %v want %v (input %q)", ne, tc.wantNotEmpty, tc.in)
			}
			if all := f.IsAllNatural(); all != tc.wantAll {
				t.Fatalf("IsAllNatural(): got %v want %v (input %q)", all, tc.wantAll, tc.in)
			}
			for _, v := range tc.testTrue {
				if !f.Test(v) {
					t.Fatalf("Test(%d) = false, want true (input %q)", v, tc.in)
				}
			}
			for _, v := range tc.testFalse {
				if f.Test(v) {
					t.Fatalf("Test(%d) = true, want false (input %q)", v, tc.in)
				}
			}
		})
	}
}

func TestParseFilter_Errors(t *testing.T) {
	errCases := []struct {
		in  string
		sub string
	}{
		{"_", "empty token"},
		{"1__2", "empty token"},
		{"1--2", "invalid token"},
		{"3_1-4", "non-decreasing"},
		{"1_2_1", "non-decreasing"},
		{"-5_3", "non-decreasing"},
		{"5-3", "min > max"},
		{"a-b", "not natural number"},
		{"2-b", "not natural number"},
		{"a-3", "not natural number"},
		{"--", "invalid token"},
		{"-x-", "not natural number"},
		{"x", "not natural number"},
		{"99999999999999999999", "not natural number"},
		{"1-2-3", "invalid token"},
		{"-1-3", "invalid token"},
		{"2--", "invalid token"},
	}

	for _, tc := range errCases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseFilter(tc.in)
			if err == nil {
				t.Fatalf("expected error parsing %q, got nil", tc.in)
			}
			if !strings.Contains(err.Error(), tc.sub) {
				t.Fatalf("error for %q does not contain %q: %v", tc.in, tc.sub, err)
			}
		})
	}
}

func TestFilter_NormalizeIgnoresNegatives(t *testing.T) {
	f := Filter{Ranges: []Interval[int]{
		NewLessThanInterval(0),
		NewInclusiveInterval(-10, 2),
		NewExclusiveInterval(5, 6),
		NewGreaterThanInterval(8),
	}}
	if got := f.String(); got != "0-2_9-" {
		t.Fatalf("String() = %q, want %q", got, "0-2_9-")
	}
	if f.IsAllNatural() {
		t.Fatalf("IsAllNatural() = true for %s", f)
	}
	if f.Test(5) || !f.Test(9) {
		t.Fatalf("Test gave wrong answers for %s", f)
	}
}

func TestRange_Interface(t *testing.T) {
	f, err := ParseFilter("2-4")
	if err != nil {
		t.Fatal(err)
	}
	ranges := []Range[int]{f, NewInclusiveInterval(2, 4)}
	for _, r := range ranges {
		if !r.IsNotEmpty() || !r.Contains(3) || r.Contains(5) {
			t.Fatalf("%T misbehaves as a Range", r)
		}
	}
}
