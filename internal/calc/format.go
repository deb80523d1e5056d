package calc

import (
	"math"
	"strconv"
	"strings"
)

// groupSize is the number of integer digits between separators.
const groupSize = 4

// FormatNumber renders a result for display. Values within 1e-12 of an
// integer print as that integer; others are rounded to 12 significant
// digits with trailing zeros removed. Integer digits are grouped in fours.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NumberString(v)
	}
	if r := math.Round(v); math.Abs(v-r) < 1e-12 {
		if r == 0 {
			r = 0 // drop the sign of -0
		}
		return groupDigits(NumberString(r))
	}
	return groupDigits(toPrecision(v))
}

// precision is the number of significant digits kept by FormatNumber.
const precision = 12

// toPrecision rounds v to precision significant digits. Exponent notation
// is used only when the rounded exponent is below -6 or at least precision.
func toPrecision(v float64) string {
	s := strconv.FormatFloat(v, 'e', precision-1, 64)
	i := strings.IndexByte(s, 'e')
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return NumberString(v)
	}
	if exp < -6 || exp >= precision {
		mantissa := strings.TrimRight(strings.TrimRight(s[:i], "0"), ".")
		return trimExponent(mantissa + s[i:])
	}
	rounded, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NumberString(v)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// NumberString converts v to the plain text placed back in the buffer:
// positional notation for 1e-6 <= |v| < 1e21, exponent notation otherwise.
func NumberString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	if a := math.Abs(v); a >= 1e21 || a < 1e-6 {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent rewrites "1.5e-07" as "1.5e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

// groupDigits inserts separators into the integer part of a number string.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	end := strings.IndexAny(s, ".e")
	if end < 0 {
		end = len(s)
	}
	return sign + groupRun(s[:end]) + s[end:]
}

// groupRun groups a run of digits from the right.
func groupRun(digits string) string {
	if len(digits) <= groupSize {
		return digits
	}
	var b strings.Builder
	head := len(digits) % groupSize
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += groupSize {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+groupSize])
	}
	return b.String()
}

// Display is the cosmetic rendering of an expression buffer.
type Display struct {
	Body    string
	Closers string // One ")" per unmatched "(".
	Active  bool   // Closers were added by evaluation rather than pending.
}

func (d Display) String() string {
	return d.Body + d.Closers
}

var displayGlyphs = map[rune]string{
	'*': "×",
	'/': "÷",
	'-': "−",
}

// FormatExpressionForDisplay groups digits, swaps operators for display
// glyphs and shows one closer per unmatched parenthesis.
func FormatExpressionForDisplay(buf string, st EditState) Display {
	rs := []rune(buf)
	var b strings.Builder
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case isDigitRune(r):
			j := i
			for j < len(rs) && isDigitRune(rs[j]) {
				j++
			}
			b.WriteString(groupRun(string(rs[i:j])))
			if j < len(rs) && rs[j] == '.' {
				// Fraction digits are never grouped.
				k := j + 1
				for k < len(rs) && isDigitRune(rs[k]) {
					k++
				}
				b.WriteString(string(rs[j:k]))
				j = k
			}
			i = j
		case isIdentStart(r):
			j := i
			for j < len(rs) && isIdentRune(rs[j]) {
				j++
			}
			name := string(rs[i:j])
			if name == "pi" {
				name = "π"
			}
			b.WriteString(name)
			i = j
		default:
			if g, ok := displayGlyphs[r]; ok {
				b.WriteString(g)
			} else {
				b.WriteRune(r)
			}
			i++
		}
	}
	return Display{
		Body:    b.String(),
		Closers: strings.Repeat(")", st.UnmatchedParens),
		Active:  st.AutoCloseArmed,
	}
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}
