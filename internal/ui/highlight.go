package ui

import (
	"regexp"
	"strings"
)

// ExpressionHighlighter styles the main display: function names, constants
// and operators in their own colours, everything else in the display style.
type ExpressionHighlighter struct {
	Palette Palette
}

var reExprToken = regexp.MustCompile(`[A-Za-z_π][A-Za-z0-9_]*\(?|[+×÷−^!]`)

var constants = map[string]bool{"π": true, "e": true, "Ans": true}

func (h ExpressionHighlighter) Highlight(line string) string {
	var b strings.Builder
	last := 0
	for _, m := range reExprToken.FindAllStringIndex(line, -1) {
		if m[0] > last {
			b.WriteString(h.Palette.Display.Render(line[last:m[0]]))
		}
		b.WriteString(h.style(line[m[0]:m[1]]))
		last = m[1]
	}
	if last < len(line) {
		b.WriteString(h.Palette.Display.Render(line[last:]))
	}
	return b.String()
}

func (h ExpressionHighlighter) style(tok string) string {
	switch {
	case strings.HasSuffix(tok, "("):
		return h.Palette.Function.Render(tok)
	case constants[tok]:
		return h.Palette.Constant.Render(tok)
	case strings.ContainsAny(tok, "+×÷−^!"):
		return h.Palette.Operator.Render(tok)
	}
	return h.Palette.Display.Render(tok)
}
