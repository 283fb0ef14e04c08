package pagination

import (
	"math"
	"strings"
)

// Inputs are never rejected. Every numeric input is coerced:
//   - negative values become their absolute value
//   - strings are read up to the first non-digit ("12abc" -> 12, "abc" -> 0)
//   - values that do not fit an int saturate at math.MaxInt
//
// A page past the last page is kept as given. Range then ends at the last
// page, Offset keeps growing (saturating at math.MaxInt) and CountBeginning
// exceeds CountEnd, so callers can detect an out-of-range page.

// CoerceInt returns the absolute value of n, saturating at math.MaxInt.
func CoerceInt(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	if n < 0 {
		return -n
	}
	return n
}

// ParseLenientInt reads a leading integer from s. Leading whitespace and a
// single sign are accepted; parsing stops at the first non-digit. Strings
// without a leading integer parse as 0. Overflow saturates.
func ParseLenientInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			if negative {
				return math.MinInt
			}
			return math.MaxInt
		}
		n = n*10 + d
	}

	if negative {
		return -n
	}
	return n
}
