package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/reckon/internal/calc"
	"github.com/JackWReid/reckon/internal/store"
)

// Frame is everything the renderer needs to draw one screen.
type Frame struct {
	Layout        *Layout
	Palette       Palette
	Mode          calc.AngleMode
	Theme         store.Theme
	History       []store.HistoryEntry
	HistoryOffset int
	Selected      int // -1 when the picker is hidden.
	Echo          calc.Display
	Display       calc.Display
	Error         bool
	StatusLeft    string
	StatusRight   string
}

// Renderer builds a frame buffer and writes it to the terminal in one go.
type Renderer struct {
	buf strings.Builder
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame draws the full screen.
func (r *Renderer) RenderFrame(f Frame) string {
	r.buf.Reset()
	l := f.Layout
	p := f.Palette

	// Hide cursor, clear screen, move to top-left.
	r.buf.WriteString("\x1b[?25l\x1b[2J\x1b[H")

	r.line(l, 1, r.spread(l.ColWidth, p.Title.Render("reckon"), p.Muted.Render(fmt.Sprintf("%s  %s", f.Mode, f.Theme))))

	for i := 0; i < l.HistoryRows(); i++ {
		idx := f.HistoryOffset + i
		if idx >= len(f.History) {
			break
		}
		r.line(l, l.HistoryTop()+i, r.historyEntry(l.ColWidth, p, f.History[idx], idx == f.Selected))
	}

	if echo := f.Echo.String(); echo != "" {
		text := p.Muted.Render(truncateLeft(f.Echo.Body, l.ColWidth-len(f.Echo.Closers)-2))
		text += closerStyle(p, f.Echo).Render(f.Echo.Closers) + p.Muted.Render(" =")
		r.line(l, l.EchoRow(), alignRight(text, l.ColWidth))
	}

	body := truncateLeft(f.Display.Body, l.ColWidth-len(f.Display.Closers))
	main := p.Error.Render(body)
	if !f.Error {
		main = ExpressionHighlighter{Palette: p}.Highlight(body)
	}
	main += closerStyle(p, f.Display).Render(f.Display.Closers)
	r.line(l, l.DisplayRow(), alignRight(main, l.ColWidth))

	r.renderStatusBar(l, p, f.StatusLeft, f.StatusRight)
	return r.buf.String()
}

func (r *Renderer) line(l *Layout, row int, text string) {
	if row < 1 || row > l.Height {
		return
	}
	r.buf.WriteString(fmt.Sprintf("\x1b[%d;1H", row))
	if l.LeftMargin > 0 {
		r.buf.WriteString(strings.Repeat(" ", l.LeftMargin))
	}
	r.buf.WriteString(text)
}

// historyEntry renders "expr = result", truncating the expression first.
func (r *Renderer) historyEntry(width int, p Palette, e store.HistoryEntry, selected bool) string {
	result := " = " + e.Result
	exprWidth := width - runewidth.StringWidth(result)
	if exprWidth < 1 {
		exprWidth = 1
	}
	expr := runewidth.Truncate(e.Expression, exprWidth, "…")
	if selected {
		plain := runewidth.FillRight(expr+result, width)
		return p.Selected.Render(plain)
	}
	return p.Expression.Render(expr) + p.Result.Render(result)
}

func (r *Renderer) spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderStatusBar(l *Layout, p Palette, left, right string) {
	r.buf.WriteString(fmt.Sprintf("\x1b[%d;1H", l.StatusRow()))

	totalWidth := l.Width
	rightWidth := runewidth.StringWidth(right)
	if runewidth.StringWidth(left)+rightWidth >= totalWidth {
		maxLeft := totalWidth - rightWidth - 1
		if maxLeft < 0 {
			maxLeft = 0
		}
		left = runewidth.Truncate(left, maxLeft, "")
	}
	gap := totalWidth - runewidth.StringWidth(left) - rightWidth
	if gap < 0 {
		gap = 0
	}
	r.buf.WriteString(p.Status.Render(left + strings.Repeat(" ", gap) + right))
}

func closerStyle(p Palette, d calc.Display) lipgloss.Style {
	if d.Active {
		return p.ActiveCloser
	}
	return p.Closer
}

func alignRight(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// truncateLeft drops leading runes until s fits, so the end of a long
// expression (where typing happens) stays visible.
func truncateLeft(s string, width int) string {
	if width < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	rs := []rune(s)
	w := 1 // Ellipsis.
	i := len(rs)
	for i > 0 && w+runewidth.RuneWidth(rs[i-1]) <= width {
		w += runewidth.RuneWidth(rs[i-1])
		i--
	}
	return "…" + string(rs[i:])
}
