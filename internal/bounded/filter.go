package bounded

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vipcxj/typekit/internal/strto"
)

// Filter accepts a natural number when any of its intervals contains it. An
// empty filter accepts nothing.
type Filter struct {
	Ranges []Interval[int]
}

// ParseFilter reads a filter expression.
//
// Syntax (tokens are separated by underscore '_' characters):
//
//	"all"    -> every natural number
//	"N"      -> a single natural number
//	"N-M"    -> closed interval [N, M]
//	"N-"     -> >= N
//	"-M"     -> <= M
//
// Numbers must be non-decreasing from left to right, so "1_3-5_7-7" is valid
// while "3_1-4" is not.
func ParseFilter(v string) (Filter, error) {
	var f Filter
	v = strings.TrimSpace(v)
	if v == "" {
		return f, nil
	}
	if v == "all" {
		return NewAllFilter(), nil
	}

	prev := 0
	order := func(ns ...int) error {
		for _, n := range ns {
			if n < prev {
				return fmt.Errorf("numbers must be non-decreasing: %d < %d", n, prev)
			}
			prev = n
		}
		return nil
	}
	for i, tok := range strings.Split(v, "_") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Filter{}, fmt.Errorf("empty token at position %d", i)
		}

		if strings.Count(tok, "-") > 1 {
			if tok != "--" && strings.HasPrefix(tok, "-") && strings.HasSuffix(tok, "-") {
				if _, err := parseNatural(tok[1 : len(tok)-1]); err != nil {
					return Filter{}, fmt.Errorf("invalid token %q: %w", tok, err)
				}
				return NewAllFilter(), nil
			}
			return Filter{}, fmt.Errorf("invalid token %q", tok)
		}

		left, right, isRange := strings.Cut(tok, "-")
		if !isRange {
			n, err := parseNatural(tok)
			if err != nil {
				return Filter{}, fmt.Errorf("invalid token %q: %w", tok, err)
			}
			if err := order(n); err != nil {
				return Filter{}, err
			}
			f.Ranges = append(f.Ranges, NewSingleValueInterval(n))
			continue
		}

		switch {
		case left == "" && right == "":
			return Filter{}, fmt.Errorf("invalid token %q", tok)
		case left != "" && right != "":
			n1, err := parseNatural(left)
			if err != nil {
				return Filter{}, fmt.Errorf("invalid left bound in %q: %w", tok, err)
			}
			n2, err := parseNatural(right)
			if err != nil {
				return Filter{}, fmt.Errorf("invalid right bound in %q: %w", tok, err)
			}
			if n1 > n2 {
				return Filter{}, fmt.Errorf("invalid range %q: min > max", tok)
			}
			if err := order(n1, n2); err != nil {
				return Filter{}, err
			}
			f.Ranges = append(f.Ranges, NewInclusiveInterval(n1, n2))
		case left != "":
			n, err := parseNatural(left)
			if err != nil {
				return Filter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			if err := order(n); err != nil {
				return Filter{}, err
			}
			f.Ranges = append(f.Ranges, NewGreaterOrEqualInterval(n))
		default:
			n, err := parseNatural(right)
			if err != nil {
				return Filter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			if err := order(n); err != nil {
				return Filter{}, err
			}
			f.Ranges = append(f.Ranges, NewLessOrEqualInterval(n))
		}
	}
	return f, nil
}

func NewAllFilter() Filter {
	return Filter{Ranges: []Interval[int]{NewGreaterOrEqualInterval(0)}}
}

func parseNatural(s string) (int, error) {
	r := strto.ParseBounded(s, 0, int(^uint(0)>>1), strto.WithBase(10))
	if !r.Ok() || strings.TrimSpace(s) != s {
		return 0, fmt.Errorf("not natural number: %q", s)
	}
	return r.MustValue(), nil
}

// Test reports whether n is accepted by the filter.
func (f Filter) Test(n int) bool {
	if n < 0 {
		return false
	}
	for _, r := range f.Ranges {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

// Contains is Test, so a Filter can be used as a Range.
func (f Filter) Contains(n int) bool { return f.Test(n) }

// IsNotEmpty reports whether at least one natural number passes.
func (f Filter) IsNotEmpty() bool {
	naturals := NewGreaterOrEqualInterval(0)
	for _, r := range f.Ranges {
		if r.HasIntersect(naturals) {
			return true
		}
	}
	return false
}

// IsAllNatural reports whether every natural number passes.
func (f Filter) IsAllNatural() bool {
	left := []Interval[int]{NewGreaterOrEqualInterval(0)}
	for _, r := range f.Ranges {
		var next []Interval[int]
		for _, l := range left {
			for _, piece := range l.Subtract(r) {
				if piece.IsValid() {
					next = append(next, piece)
				}
			}
		}
		if len(next) == 0 {
			return true
		}
		left = next
	}
	return false
}

// Normalize returns the accepted naturals as sorted, disjoint, non-adjacent
// closed intervals, the last of which may be unbounded above.
func (f Filter) Normalize() []Interval[int] {
	type span struct {
		min, max int
		maxUn    bool
	}
	var spans []span
	for _, r := range f.Ranges {
		n := r.Closed()
		if n.MinUnbounded || n.Min < 0 {
			n.MinUnbounded, n.MinInclude, n.Min = false, true, 0
		}
		if !n.IsValid() || (!n.MaxUnbounded && n.Max < 0) {
			continue
		}
		spans = append(spans, span{min: n.Min, max: n.Max, maxUn: n.MaxUnbounded})
	}
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool {
		a, b := spans[i], spans[j]
		if a.min != b.min {
			return a.min < b.min
		}
		if a.maxUn != b.maxUn {
			return b.maxUn
		}
		return a.max < b.max
	})

	merged := spans[:1]
	for _, cur := range spans[1:] {
		last := &merged[len(merged)-1]
		if last.maxUn {
			break
		}
		if last.max+1 >= cur.min {
			if cur.maxUn {
				last.maxUn = true
			} else if cur.max > last.max {
				last.max = cur.max
			}
			continue
		}
		merged = append(merged, cur)
	}

	out := make([]Interval[int], 0, len(merged))
	for _, m := range merged {
		switch {
		case m.maxUn:
			out = append(out, NewGreaterOrEqualInterval(m.min))
		case m.min == m.max:
			out = append(out, NewSingleValueInterval(m.min))
		default:
			out = append(out, NewInclusiveInterval(m.min, m.max))
		}
	}
	return out
}

// String normalizes the filter and renders it in the syntax ParseFilter reads.
func (f Filter) String() string {
	norm := f.Normalize()
	if len(norm) == 0 {
		return ""
	}
	if len(norm) == 1 && norm[0].MaxUnbounded && norm[0].Min == 0 {
		return "all"
	}
	parts := make([]string, 0, len(norm))
	for _, r := range norm {
		switch {
		case !r.IsUpperBounded():
			parts = append(parts, fmt.Sprintf("%d-", r.Min))
		case r.Min == r.Max:
			parts = append(parts, strconv.Itoa(r.Min))
		default:
			parts = append(parts, fmt.Sprintf("%d-%d", r.Min, r.Max))
		}
	}
	return strings.Join(parts, "_")
}
