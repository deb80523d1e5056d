package calc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule is one cosmetic rewrite applied before evaluation.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Rules run in order. The log rewrite must precede glyph substitution.
var Rules = []Rule{
	{Name: "log", Apply: rewriteLog},
	{Name: "glyphs", Apply: replaceGlyphs},
	{Name: "grouping", Apply: stripGrouping},
	{Name: "factorial", Apply: expandFactorial},
}

// Normalize applies every rule to expr.
func Normalize(expr string) string {
	for _, r := range Rules {
		expr = r.Apply(expr)
	}
	return expr
}

// rewriteLog turns log(x) and log10(x) into (ln(x)/ln(10)), and the two
// argument form log(x, b) into logb(x,b). Nested calls are rewritten.
func rewriteLog(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i := 0; i < len(rs); {
		if !isIdentStart(rs[i]) {
			b.WriteRune(rs[i])
			i++
			continue
		}
		j := i
		for j < len(rs) && isIdentRune(rs[j]) {
			j++
		}
		name := string(rs[i:j])
		if (name == "log" || name == "log10") && j < len(rs) && rs[j] == '(' {
			if end := matchParen(rs, j); end >= 0 {
				arg, base := splitTopLevelComma(string(rs[j+1 : end]))
				if base == "" || name == "log10" {
					b.WriteString("(ln(" + rewriteLog(arg) + ")/ln(10))")
				} else {
					b.WriteString("logb(" + rewriteLog(arg) + "," + rewriteLog(base) + ")")
				}
				i = end + 1
				continue
			}
		}
		b.WriteString(name)
		i = j
	}
	return b.String()
}

// matchParen returns the index of the ')' closing the '(' at open, or -1.
func matchParen(rs []rune, open int) int {
	depth := 0
	for i := open; i < len(rs); i++ {
		switch rs[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevelComma splits s at its first comma outside parentheses.
func splitTopLevelComma(s string) (string, string) {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return s[:i], strings.TrimSpace(s[i+1:])
			}
		}
	}
	return s, ""
}

var glyphReplacer = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
	"π", "pi",
)

func replaceGlyphs(s string) string {
	return glyphReplacer.Replace(s)
}

// groupedNumber matches digit runs grouped in fours: 1,2345 or 12,3456,7890.
var groupedNumber = regexp.MustCompile(`\d+(?:,\d{4})+\b`)

// stripGrouping removes separators from grouped numbers. A comma directly
// inside a call's argument list separates arguments and is kept, so
// comb(10,2000) stays a two-argument call.
func stripGrouping(s string) string {
	matches := groupedNumber.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	prev := 0
	for _, m := range matches {
		b.WriteString(s[prev:m[0]])
		num := s[m[0]:m[1]]
		if !inCallArgs(s[:m[0]]) {
			num = strings.ReplaceAll(num, ",", "")
		}
		b.WriteString(num)
		prev = m[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}

// inCallArgs reports whether the end of prefix sits inside the argument
// list of a named call such as comb( or log10(, rather than inside a bare
// group like ( or 2(.
func inCallArgs(prefix string) bool {
	depth := 0
	for i := len(prefix) - 1; i >= 0; i-- {
		switch prefix[i] {
		case ')':
			depth++
		case '(':
			if depth > 0 {
				depth--
				continue
			}
			return endsWithName(prefix[:i])
		}
	}
	return false
}

// endsWithName reports whether s ends in an identifier.
func endsWithName(s string) bool {
	named := false
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if !isIdentRune(r) {
			break
		}
		if isIdentStart(r) {
			named = true
		}
		s = s[:len(s)-size]
	}
	return named
}

var postfixFactorial = regexp.MustCompile(`(\d+(?:\.\d+)?)!`)

func expandFactorial(s string) string {
	return postfixFactorial.ReplaceAllString(s, "factorial(${1})")
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
