package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/JackWReid/reckon/internal/calc"
	"github.com/JackWReid/reckon/internal/store"
)

func testFrame() Frame {
	return Frame{
		Layout:  NewLayout(80, 12),
		Palette: PaletteFor(store.ThemeLight),
		Mode:    calc.Degrees,
		Theme:   store.ThemeLight,
		History: []store.HistoryEntry{
			{Expression: "sin(30)", Result: "0.5"},
			{Expression: "12345+1", Result: "1,2346"},
		},
		Selected:    -1,
		Echo:        calc.Display{Body: "sin(30", Closers: ")", Active: true},
		Display:     calc.Display{Body: "0.5"},
		StatusLeft:  " " + keyHint,
		StatusRight: "Ans 0.5  DEG ",
	}
}

func TestRenderFrameContainsText(t *testing.T) {
	frame := NewRenderer().RenderFrame(testFrame())

	for _, want := range []string{"reckon", "DEG", "light", "sin(30)", "= 0.5", "12345+1", "= 1,2346", "Ans 0.5", "h history"} {
		assert.Contains(t, frame, want)
	}
}

func TestRenderFrameRows(t *testing.T) {
	f := testFrame()
	frame := NewRenderer().RenderFrame(f)
	for _, row := range []string{"\x1b[1;1H", "\x1b[2;1H", "\x1b[3;1H", "\x1b[10;1H", "\x1b[11;1H", "\x1b[12;1H"} {
		assert.Contains(t, frame, row)
	}
	// Only two entries, so the fourth history row is never drawn.
	assert.NotContains(t, frame, "\x1b[4;1H", "empty history rows are not drawn")
}

func TestRenderFrameNoEcho(t *testing.T) {
	f := testFrame()
	f.Echo = calc.Display{}
	frame := NewRenderer().RenderFrame(f)
	assert.NotContains(t, frame, "\x1b[10;1H", "echo row is skipped when there is no echo")
}

func TestRenderFrameHistoryOffset(t *testing.T) {
	f := testFrame()
	f.HistoryOffset = 1
	frame := NewRenderer().RenderFrame(f)
	assert.NotContains(t, frame, "sin(30) = 0.5", "scrolled-off entry is not drawn")
	assert.Contains(t, frame, "12345+1")
}

func TestRenderFrameSelectedEntry(t *testing.T) {
	f := testFrame()
	f.Selected = 0
	frame := NewRenderer().RenderFrame(f)
	assert.Contains(t, frame, "sin(30) = 0.5", "selected entry is drawn as one run")
}

func TestHistoryEntryTruncation(t *testing.T) {
	r := NewRenderer()
	p := PaletteFor(store.ThemeDark)
	e := store.HistoryEntry{Expression: strings.Repeat("1+", 40) + "1", Result: "41"}
	got := r.historyEntry(20, p, e, true)
	assert.Equal(t, 20, lipgloss.Width(got), "%q", got)
	assert.True(t, strings.HasSuffix(strings.TrimRight(got, " "), "… = 41"), "expression is cut before the result: %q", got)
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"12345", 10, "12345"},
		{"12345", 5, "12345"},
		{"12345", 4, "…345"},
		{"1×2×3", 3, "…×3"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateLeft(tt.in, tt.width), "truncateLeft(%q, %d)", tt.in, tt.width)
	}
}

func TestAlignRight(t *testing.T) {
	assert.Equal(t, "    42", alignRight("42", 6))
	assert.Equal(t, "toolong", alignRight("toolong", 3), "alignRight never cuts")
}

func TestStatusBarTruncatesLeft(t *testing.T) {
	r := NewRenderer()
	l := NewLayout(20, 5)
	r.renderStatusBar(l, PaletteFor(store.ThemeLight), " "+strings.Repeat("x", 40), "RAD ")
	out := r.buf.String()
	assert.Contains(t, out, "RAD", "right side survives truncation")
	assert.Equal(t, 14, strings.Count(out, "x"), "left side is cut to fit: %q", out)
}

func TestPaletteFallback(t *testing.T) {
	got := PaletteFor(store.Theme("sepia")).Display.Render("x")
	want := PaletteFor(store.ThemeLight).Display.Render("x")
	assert.Equal(t, want, got, "unknown theme falls back to light")
}
