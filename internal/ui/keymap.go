package ui

import "strings"

// literalRunes are appended to the buffer as typed.
const literalRunes = "0123456789.+-*/^(),!×÷−π"

// shortcutTokens maps single letters to the token they insert.
var shortcutTokens = map[rune]string{
	's': "sin(",
	'c': "cos(",
	't': "tan(",
	'S': "asin(",
	'C': "acos(",
	'T': "atan(",
	'q': "sqrt(",
	'l': "log(",
	'n': "ln(",
	'x': "exp(",
	'|': "abs(",
	'k': "comb(",
	'f': "factorial(",
	'a': "Ans",
	'p': "π",
	'e': "e",
}

// tokenFor returns the buffer token for a typed rune.
func tokenFor(r rune) (string, bool) {
	if strings.ContainsRune(literalRunes, r) {
		return string(r), true
	}
	tok, ok := shortcutTokens[r]
	return tok, ok
}
