package vm

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders d with the language's Number-to-String rules:
// the shortest digits that round-trip, plain notation for decimal
// exponents in [-6, 21), and exponent notation ("1e+21", "1.5e-7")
// outside it. Both zeros render as "0".
func FormatNumber(d float64) string {
	switch {
	case math.IsNaN(d):
		return "NaN"
	case d == 0:
		return "0"
	case math.IsInf(d, 1):
		return "Infinity"
	case math.IsInf(d, -1):
		return "-Infinity"
	case d < 0:
		return "-" + FormatNumber(-d)
	}

	digits, n := shortestDigits(d)
	k := len(digits)

	var b strings.Builder
	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		e := n - 1
		if e >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(e))
	}
	return b.String()
}

// shortestDigits returns the shortest round-trip decimal digits of a
// positive finite d and the exponent n such that d = 0.digits × 10^n.
func shortestDigits(d float64) (string, int) {
	s := strconv.FormatFloat(d, 'e', -1, 64)
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		panic("shortestDigits: no exponent in " + s)
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		panic("shortestDigits: bad exponent in " + s)
	}
	return strings.Replace(mant, ".", "", 1), e + 1
}
