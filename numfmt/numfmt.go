// Package numfmt implements the external double→string contract the node
// model's NumericLiteral printing rule defers to: given a finite
// float64, produce the shortest decimal string that round-trips back to
// the same value and that a JavaScript engine's Number-to-String
// algorithm (ECMA-262 §9.8.1) would also produce.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Format renders v as a shortest-roundtrip, ECMAScript-compatible numeric
// literal. v must be finite; non-finite values are not a numfmt concern —
// the ast package rejects them at NumericLiteral construction time
// (ast.ErrPayloadOutOfRange) rather than asking numfmt to render them.
func Format(v float64) string {
	if v == 0 {
		if math.Signbit(v) {
			return "0" // JS has no negative-zero literal; -0 prints as "0"
		}
		return "0"
	}

	// strconv's 'g' verb with precision -1 already implements Go's
	// shortest-roundtrip algorithm (Ryu-derived), which agrees with
	// ECMA-262's Number::toString for the decimal digit sequence it
	// picks; only the exponent notation threshold and exponent padding
	// differ from JS, so those are normalized below rather than hand-rolling
	// digit generation.
	s := strconv.FormatFloat(v, 'g', -1, 64)
	return toJSNotation(s, v)
}

// toJSNotation rewrites Go's 'g'-verb output into the notation ECMA-262
// would choose for the same digit sequence: JS switches to exponential
// form outside [1e-6, 1e21), uses a lowercase "e" with an explicit sign,
// and never pads the exponent with leading zeros.
func toJSNotation(s string, v float64) string {
	mantissa, exp, hasExp := splitExponent(s)
	if !hasExp {
		abs := math.Abs(v)
		if abs != 0 && abs < 1e-6 {
			return toExponential(s)
		}
		return s
	}

	// Go's shortest 'g' form already switches to exponential below 1e-4
	// and from 1e6 up; inside [1e-6, 1e21) JS keeps fixed notation.
	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	// Outside that range, normalize the exponent text to JS's unpadded,
	// explicit-sign form.
	return mantissa + "e" + signedExp(exp)
}

func splitExponent(s string) (mantissa string, exp int, ok bool) {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 {
		idx = strings.IndexByte(s, 'E')
	}
	if idx < 0 {
		return s, 0, false
	}
	mantissa = s[:idx]
	n, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return s, 0, false
	}
	return mantissa, n, true
}

func toExponential(s string) string {
	mantissa, exp, ok := splitExponent(s)
	if ok {
		return mantissa + "e" + signedExp(exp)
	}
	// s has no exponent yet but the magnitude requires one (v < 1e-6):
	// re-derive it via strconv's 'e' verb, then strip trailing
	// mantissa zeros the way Go's shortest-form 'g' output would have.
	return shortestExponential(s)
}

func shortestExponential(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	digits := strings.Replace(s, ".", "", 1)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		dot = len(s)
	}
	digits = strings.TrimLeft(digits, "0")
	leadingZeros := len(strings.Replace(s, ".", "", 1)) - len(digits)
	if digits == "" {
		return "0"
	}
	exp := dot - 1 - leadingZeros
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		digits = "0"
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	b.WriteString(signedExp(exp))
	return b.String()
}

func signedExp(exp int) string {
	if exp >= 0 {
		return "+" + strconv.Itoa(exp)
	}
	return strconv.Itoa(exp)
}
