package termgrid

// Span selects a half-open [start, end) slice of one grid dimension.
// Negative bounds count from the end (-1 is the last index) and resolved
// bounds are clamped to the dimension, so a Span never causes an error.
// The zero Span selects the whole dimension.
type Span struct {
	start, end       int
	hasStart, hasEnd bool
}

// Range selects [start, end).
func Range(start, end int) Span {
	return Span{start: start, end: end, hasStart: true, hasEnd: true}
}

// From selects [start, dimension).
func From(start int) Span {
	return Span{start: start, hasStart: true}
}

// To selects [0, end).
func To(end int) Span {
	return Span{end: end, hasEnd: true}
}

// All selects the whole dimension.
func All() Span {
	return Span{}
}

// bounds resolves the span against a dimension of length n, wrapping
// negative bounds once and clamping the result into [0, n]. The returned
// pair always satisfies 0 <= lo <= hi <= n.
func (s Span) bounds(n int) (lo, hi int) {
	lo = 0
	if s.hasStart {
		lo = s.start
		if lo < 0 {
			lo += n
		}
		lo = clamp(lo, 0, n)
	}

	hi = n
	if s.hasEnd {
		hi = s.end
		if hi < 0 {
			hi += n
		}
		hi = clamp(hi, 0, n)
	}

	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// wrapIndex resolves an integer index against a dimension of length n,
// wrapping a negative index once. Reports false when the index stays
// outside [0, n) after wrapping.
func wrapIndex(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// clamp limits val to [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
