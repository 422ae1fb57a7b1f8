package controls

import (
	"strconv"
	"strings"
)

// FormatFixed formats v with exactly decimals fractional digits.
//
// Rounding works on the shortest decimal representation of the float32,
// so 1.005 becomes "1.01" rather than the "1.00" a binary rounding of
// 1.00499999 would give. Ties round away from zero.
//
// A result that rounds to zero never carries a minus sign, so -0.4 with no
// decimals is "0". JavaScript's toFixed prints "-0" there; the status line
// deliberately does not.
func FormatFixed(v float32, decimals int) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	digits := []byte(intPart + frac)
	point := len(intPart)

	keep := point + decimals
	if len(digits) < keep {
		digits = append(digits, strings.Repeat("0", keep-len(digits))...)
	}
	roundUp := len(digits) > keep && digits[keep] >= '5'
	digits = digits[:keep]

	if roundUp {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] == '9' {
				digits[i] = '0'
				continue
			}
			digits[i]++
			break
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
			point++
		}
	}

	var b strings.Builder
	if neg && strings.Trim(string(digits), "0") != "" {
		b.WriteByte('-')
	}
	b.Write(digits[:point])
	if decimals > 0 {
		b.WriteByte('.')
		b.Write(digits[point:])
	}
	return b.String()
}
