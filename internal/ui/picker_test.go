package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickerShowHide(t *testing.T) {
	p := &HistoryPicker{Selected: 4}
	p.Show()
	assert.True(t, p.Active)
	assert.Equal(t, 0, p.Selected)

	p.Hide()
	assert.False(t, p.Active)
}

func TestPickerMove(t *testing.T) {
	p := &HistoryPicker{Active: true}
	p.MoveDown(1, 3)
	assert.Equal(t, 1, p.Selected)
	p.MoveDown(10, 3)
	assert.Equal(t, 2, p.Selected, "clamped to the last entry")
	p.MoveUp(1)
	assert.Equal(t, 1, p.Selected)
	p.MoveUp(5)
	assert.Equal(t, 0, p.Selected, "clamped to the first entry")
	p.MoveDown(1, 0)
	assert.Equal(t, 0, p.Selected, "empty list pins Selected at 0")
}
