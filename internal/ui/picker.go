package ui

// HistoryPicker manages the history selection state.
type HistoryPicker struct {
	Active   bool
	Selected int
}

// Show activates the picker on the newest entry.
func (p *HistoryPicker) Show() {
	p.Active = true
	p.Selected = 0
}

// Hide deactivates the picker.
func (p *HistoryPicker) Hide() {
	p.Active = false
}

// MoveUp moves the selection towards newer entries, clamping at 0.
func (p *HistoryPicker) MoveUp(n int) {
	p.Selected -= n
	if p.Selected < 0 {
		p.Selected = 0
	}
}

// MoveDown moves the selection towards older entries, clamping at max-1.
func (p *HistoryPicker) MoveDown(n, max int) {
	p.Selected += n
	if p.Selected > max-1 {
		p.Selected = max - 1
	}
	if p.Selected < 0 {
		p.Selected = 0
	}
}
