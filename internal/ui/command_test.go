package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JackWReid/reckon/internal/calc"
	"github.com/JackWReid/reckon/internal/store"
	"github.com/JackWReid/reckon/internal/terminal"
)

func TestCommandQuit(t *testing.T) {
	for _, cmd := range []string{"q", "quit", "  q  "} {
		a, _ := newTestApp()
		a.executeCommand(cmd)
		assert.True(t, a.quit, ":%s should quit", cmd)
	}
}

func TestCommandAngleMode(t *testing.T) {
	a, _ := newTestApp()
	a.executeCommand("deg")
	assert.Equal(t, calc.Degrees, a.editor.AngleMode())
	a.executeCommand("rad")
	assert.Equal(t, calc.Radians, a.editor.AngleMode())
}

func TestCommandTheme(t *testing.T) {
	a, prefs := newTestApp()
	a.executeCommand("theme dark")
	assert.Equal(t, store.ThemeDark, a.Theme())
	assert.Equal(t, store.ThemeDark, prefs.LoadTheme(), ":theme dark persists")

	a.executeCommand("theme purple")
	assert.Equal(t, store.ThemeDark, a.Theme(), "unknown theme leaves the theme alone")
	assert.NotEmpty(t, a.statusBar.StatusMessage, "unknown theme shows an error")
}

func TestCommandHistoryClear(t *testing.T) {
	a, prefs := newTestApp()
	typeKeys(a, "1+2=")
	a.executeCommand("history clear")
	assert.Empty(t, a.editor.History())
	assert.Empty(t, prefs.LoadHistory())
}

func TestCommandEvaluatesText(t *testing.T) {
	tests := []struct {
		cmd  string
		want string
	}{
		{"2+3", "5"},
		{"= 10/4", "2.5"},
		{"log(1000)", "3"},
		{"comb(10,2)", "45"},
	}
	for _, tt := range tests {
		a, _ := newTestApp()
		a.executeCommand(tt.cmd)
		assert.Equal(t, tt.want, a.editor.Display().Body, ":%s", tt.cmd)
	}
}

func TestCommandEvaluationError(t *testing.T) {
	a, _ := newTestApp()
	a.executeCommand("sqr(4)")
	require.True(t, a.editor.ShowingError(), "unknown function shows an error")
	left := a.statusBar.FormatLeft(a.editor.Status())
	assert.NotEqual(t, "", left)
	assert.NotEqual(t, " "+keyHint, left, "status carries the error")
}

func TestPromptTyping(t *testing.T) {
	a, _ := newTestApp()
	typeKeys(a, ":")
	require.Equal(t, PromptCommand, a.statusBar.Prompt, ": opens the prompt")

	typeKeys(a, "dex")
	a.handleInput(keyEvent(terminal.KeyBackspace))
	a.handleInput(keyEvent(terminal.KeyBackspace))
	typeKeys(a, "eg")
	assert.Equal(t, " :deg", a.statusBar.FormatLeft(""))

	a.handleInput(keyEvent(terminal.KeyEnter))
	assert.Equal(t, PromptNone, a.statusBar.Prompt, "Enter closes the prompt")
	assert.Equal(t, calc.Degrees, a.editor.AngleMode(), "prompt command ran")
	assert.Equal(t, "", a.editor.Buffer(), "prompt keys stay out of the buffer")
}

func TestPromptCancel(t *testing.T) {
	a, _ := newTestApp()
	typeKeys(a, ":q")
	a.handleInput(keyEvent(terminal.KeyEscape))
	assert.False(t, a.quit, "Escape cancels without running")
	assert.Equal(t, PromptNone, a.statusBar.Prompt)
}
