package ui

// ColumnWidth is the widest the calculator column grows.
const ColumnWidth = 48

// Screen rows outside the history pane: header, separator, echo, display
// and status bar.
const chromeRows = 5

// Layout places the calculator column on the terminal.
type Layout struct {
	Width      int // Terminal width
	Height     int // Terminal height
	ColWidth   int // Calculator column width (capped at ColumnWidth)
	LeftMargin int // Left margin for centring
}

func NewLayout(termWidth, termHeight int) *Layout {
	l := &Layout{Width: termWidth, Height: termHeight}
	l.recalc()
	return l
}

func (l *Layout) recalc() {
	if l.Width >= ColumnWidth {
		l.ColWidth = ColumnWidth
		l.LeftMargin = (l.Width - ColumnWidth) / 2
	} else {
		l.ColWidth = l.Width
		l.LeftMargin = 0
	}
}

// Resize updates the layout for new terminal dimensions.
func (l *Layout) Resize(termWidth, termHeight int) {
	l.Width = termWidth
	l.Height = termHeight
	l.recalc()
}

// HistoryRows is the number of history entries visible at once.
func (l *Layout) HistoryRows() int {
	if n := l.Height - chromeRows; n > 0 {
		return n
	}
	return 0
}

// HistoryTop is the 1-based screen row of the first history entry.
func (l *Layout) HistoryTop() int { return 2 }

// EchoRow, DisplayRow and StatusRow are 1-based screen rows.
func (l *Layout) EchoRow() int    { return l.Height - 2 }
func (l *Layout) DisplayRow() int { return l.Height - 1 }
func (l *Layout) StatusRow() int  { return l.Height }

// HistoryIndexAt maps a screen row to a history index, or -1 when the row
// is outside the pane.
func (l *Layout) HistoryIndexAt(row, offset int) int {
	rel := row - l.HistoryTop()
	if rel < 0 || rel >= l.HistoryRows() {
		return -1
	}
	return offset + rel
}

// EnsureVisible adjusts offset so history entry idx is on screen.
func (l *Layout) EnsureVisible(idx int, offset *int) {
	vis := l.HistoryRows()
	if vis <= 0 {
		return
	}
	if idx < *offset {
		*offset = idx
	}
	if idx >= *offset+vis {
		*offset = idx - vis + 1
	}
}

// ClampOffset keeps offset within [0, total-visible].
func (l *Layout) ClampOffset(total int, offset *int) {
	last := total - l.HistoryRows()
	if last < 0 {
		last = 0
	}
	if *offset > last {
		*offset = last
	}
	if *offset < 0 {
		*offset = 0
	}
}
