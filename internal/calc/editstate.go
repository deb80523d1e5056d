package calc

import "strings"

// EditState is derived from the buffer contents.
type EditState struct {
	LastTokenWasOperator bool
	UnmatchedParens      int  // count('(') - count(')'), never negative.
	AutoCloseArmed       bool // Evaluation just closed the pending parens.
}

// stateOf recomputes the derived state for buf.
func stateOf(buf string) EditState {
	return EditState{
		LastTokenWasOperator: endsWithOperator(buf),
		UnmatchedParens:      unmatchedParens(buf),
	}
}

func unmatchedParens(s string) int {
	n := strings.Count(s, "(") - strings.Count(s, ")")
	if n < 0 {
		return 0
	}
	return n
}

// operators lists the binary operator tokens, including display glyphs.
var operators = []string{"+", "-", "*", "/", "^", "×", "÷", "−"}

func isOperator(tok string) bool {
	for _, op := range operators {
		if tok == op {
			return true
		}
	}
	return false
}

func endsWithOperator(s string) bool {
	return trailingOperator(s) != ""
}

func trailingOperator(s string) string {
	for _, op := range operators {
		if strings.HasSuffix(s, op) {
			return op
		}
	}
	return ""
}

func isDigitToken(tok string) bool {
	return len(tok) == 1 && tok[0] >= '0' && tok[0] <= '9'
}

// keepsPlaceholder reports whether tok continues a lone "0" rather than
// replacing it.
func keepsPlaceholder(tok string) bool {
	return isOperator(tok) || isDigitToken(tok) || tok == "." || tok == ")" || tok == "!" || tok == ","
}

// trailingNumber returns the run of digits and points at the end of s.
func trailingNumber(s string) string {
	i := len(s)
	for i > 0 && (isDigitRune(rune(s[i-1])) || s[i-1] == '.') {
		i--
	}
	return s[i:]
}

// lastTokenStart returns the rune index where the final token of rs begins:
// a name with its "(", a number, or a single rune.
func lastTokenStart(rs []rune) int {
	n := len(rs)
	if n == 0 {
		return 0
	}
	end := n
	if rs[end-1] == '(' {
		end--
	}
	i := end
	for i > 0 && isIdentRune(rs[i-1]) {
		i--
	}
	// Leading digits are an implicit product: "2sin(" loses only "sin(".
	for i < end && !isIdentStart(rs[i]) {
		i++
	}
	if i < end {
		return i
	}
	if end < n {
		return n - 1
	}
	j := n
	for j > 0 && isNumberRune(rs[j-1]) {
		j--
	}
	if j < n {
		return j
	}
	return n - 1
}

func isNumberRune(r rune) bool {
	return isDigitRune(r) || r == '.'
}
