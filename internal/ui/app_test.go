package ui

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JackWReid/reckon/internal/calc"
	"github.com/JackWReid/reckon/internal/store"
	"github.com/JackWReid/reckon/internal/terminal"
)

// fakeScreen replays a fixed list of events and records every frame.
type fakeScreen struct {
	events  []terminal.Event
	frames  []string
	resized chan os.Signal
}

func newFakeScreen(events ...terminal.Event) *fakeScreen {
	return &fakeScreen{events: events, resized: make(chan os.Signal, 1)}
}

func (s *fakeScreen) ReadEvent() (terminal.Event, error) {
	if len(s.events) == 0 {
		return terminal.Event{}, errors.New("no more events")
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func (s *fakeScreen) Size() (int, int)          { return 60, 20 }
func (s *fakeScreen) Resize() bool              { return false }
func (s *fakeScreen) Resized() <-chan os.Signal { return s.resized }

func (s *fakeScreen) Write(frame string) error {
	s.frames = append(s.frames, frame)
	return nil
}

func keyEvent(kt terminal.KeyType) terminal.Event {
	return terminal.Event{Key: terminal.Key{Type: kt}}
}

func runeEvents(s string) []terminal.Event {
	var evs []terminal.Event
	for _, r := range s {
		evs = append(evs, terminal.Event{Key: terminal.Key{Type: terminal.KeyRune, Rune: r}})
	}
	return evs
}

// newTestApp creates an App over an in-memory store.
func newTestApp() (*App, *store.Prefs) {
	prefs := store.NewPrefs(store.NewMemoryKV())
	a := NewApp(calc.NewEditor(nil, prefs), prefs)
	a.screen = newFakeScreen()
	a.layout.Resize(60, 20)
	return a, prefs
}

func typeKeys(a *App, s string) {
	for _, ev := range runeEvents(s) {
		a.handleInput(ev)
	}
}

func TestTypingBuildsBuffer(t *testing.T) {
	a, _ := newTestApp()
	typeKeys(a, "12+3")
	assert.Equal(t, "12+3", a.editor.Buffer())
}

func TestShortcutTokens(t *testing.T) {
	tests := []struct {
		keys string
		want string
	}{
		{"s", "sin("},
		{"S", "asin("},
		{"q9", "sqrt(9"},
		{"2p", "2π"},
		{"a*2", "Ans*2"},
		{"|", "abs("},
		{"f5", "factorial(5"},
		{"z", ""},
	}
	for _, tt := range tests {
		a, _ := newTestApp()
		typeKeys(a, tt.keys)
		assert.Equal(t, tt.want, a.editor.Buffer(), "keys %q", tt.keys)
	}
}

func TestEnterEvaluates(t *testing.T) {
	a, prefs := newTestApp()
	typeKeys(a, "2^10")
	a.handleInput(keyEvent(terminal.KeyEnter))

	assert.Equal(t, "1024", a.editor.Buffer())
	h := prefs.LoadHistory()
	require.Len(t, h, 1)
	assert.Equal(t, "1024", h[0].Result)
}

func TestEqualsEvaluatesInDegrees(t *testing.T) {
	a, _ := newTestApp()
	typeKeys(a, "ds30=")
	require.Equal(t, calc.Degrees, a.editor.AngleMode(), "d toggles degree mode")
	assert.Equal(t, "0.5", a.editor.Display().Body)
}

func TestIncompleteExpressionStatus(t *testing.T) {
	a, _ := newTestApp()
	typeKeys(a, "3+=")
	assert.Equal(t, " "+calc.StatusIncomplete, a.statusBar.FormatLeft(a.editor.Status()))
	assert.Equal(t, "3+", a.editor.Buffer(), "buffer is untouched")
}

func TestClearKeys(t *testing.T) {
	for _, kt := range []terminal.KeyType{terminal.KeyEscape, terminal.KeyCtrlL} {
		a, _ := newTestApp()
		typeKeys(a, "42")
		a.handleInput(keyEvent(kt))
		assert.Equal(t, "", a.editor.Buffer(), "key %d", kt)
	}
}

func TestBackspaceAndUndo(t *testing.T) {
	a, _ := newTestApp()
	typeKeys(a, "123")
	a.handleInput(keyEvent(terminal.KeyBackspace))
	require.Equal(t, "12", a.editor.Buffer())
	assert.Contains(t, a.frame().StatusRight, "undo  RAD")

	a.handleInput(keyEvent(terminal.KeyCtrlZ))
	assert.Equal(t, "123", a.editor.Buffer())
	assert.Contains(t, a.frame().StatusRight, "undo/redo  RAD")

	a.handleInput(keyEvent(terminal.KeyCtrlY))
	assert.Equal(t, "12", a.editor.Buffer())
}

func TestCtrlWDeletesToken(t *testing.T) {
	a, _ := newTestApp()
	typeKeys(a, "2+s")
	a.handleInput(keyEvent(terminal.KeyCtrlW))
	assert.Equal(t, "2+", a.editor.Buffer())
}

func TestThemeTogglePersists(t *testing.T) {
	a, prefs := newTestApp()
	typeKeys(a, "m")
	assert.Equal(t, store.ThemeDark, a.Theme())
	assert.Equal(t, store.ThemeDark, prefs.LoadTheme(), "theme toggle is persisted")
}

func TestCtrlCQuits(t *testing.T) {
	a, _ := newTestApp()
	a.handleInput(keyEvent(terminal.KeyCtrlC))
	assert.True(t, a.quit)
}

func TestHistoryPickerRecall(t *testing.T) {
	a, _ := newTestApp()
	for _, expr := range []string{"1+1", "2*3"} {
		typeKeys(a, expr+"=")
	}
	a.handleInput(keyEvent(terminal.KeyCtrlL))

	typeKeys(a, "h")
	require.True(t, a.picker.Active, "h opens the history picker")
	a.handleInput(keyEvent(terminal.KeyDown))
	a.handleInput(keyEvent(terminal.KeyEnter))

	assert.False(t, a.picker.Active, "Enter closes the picker")
	assert.Equal(t, "1+1", a.editor.Buffer())
}

func TestHistoryPickerEmpty(t *testing.T) {
	a, _ := newTestApp()
	typeKeys(a, "h")
	assert.False(t, a.picker.Active, "picker stays closed with no history")
	assert.NotEmpty(t, a.statusBar.StatusMessage)
}

func TestHistoryPickerKeysDoNotEdit(t *testing.T) {
	a, _ := newTestApp()
	typeKeys(a, "7=")
	typeKeys(a, "h")
	typeKeys(a, "jk5")
	assert.Equal(t, "7", a.editor.Buffer(), "picker keys stay out of the buffer")

	a.handleInput(keyEvent(terminal.KeyEscape))
	assert.False(t, a.picker.Active, "Escape closes the picker")
}

func TestMouseClickRecallsHistory(t *testing.T) {
	a, _ := newTestApp()
	typeKeys(a, "4+4=")
	typeKeys(a, "9-1=")

	// Row 3 is the second visible entry: the older "4+4".
	a.handleInput(terminal.Event{IsMouse: true, Mouse: terminal.Mouse{Button: terminal.MouseLeft, Row: 3, Col: 10, Press: true}})
	assert.Equal(t, "4+4", a.editor.Buffer())

	// Clicks outside the pane are ignored.
	a.handleInput(terminal.Event{IsMouse: true, Mouse: terminal.Mouse{Button: terminal.MouseLeft, Row: 19, Col: 10, Press: true}})
	assert.Equal(t, "4+4", a.editor.Buffer())
}

func TestMouseWheelScrollsHistory(t *testing.T) {
	a, _ := newTestApp()
	a.layout.Resize(60, 8) // Three history rows.
	for i := 0; i < 6; i++ {
		typeKeys(a, "1+1=")
	}
	wheel := func(b terminal.MouseButton) {
		a.handleInput(terminal.Event{IsMouse: true, Mouse: terminal.Mouse{Button: b, Press: true}})
	}

	wheel(terminal.MouseWheelDown)
	assert.Equal(t, 1, a.historyOffset)
	for i := 0; i < 10; i++ {
		wheel(terminal.MouseWheelDown)
	}
	assert.Equal(t, 3, a.historyOffset, "offset clamps at the last page")
	wheel(terminal.MouseWheelUp)
	assert.Equal(t, 2, a.historyOffset)
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	prefs := store.NewPrefs(store.NewMemoryKV())
	a := NewApp(calc.NewEditor(nil, prefs), prefs)

	events := append(runeEvents("6*7"), keyEvent(terminal.KeyEnter), keyEvent(terminal.KeyCtrlC))
	s := newFakeScreen(events...)
	require.NoError(t, a.Run(s))

	// Initial frame plus one per handled event except the quitting one.
	require.Len(t, s.frames, 1+len(events)-1)
	assert.Contains(t, s.frames[len(s.frames)-1], "42")
}

func TestRunReturnsReadError(t *testing.T) {
	a, _ := newTestApp()
	assert.Error(t, a.Run(newFakeScreen()))
}

func TestRunHandlesResize(t *testing.T) {
	a, _ := newTestApp()
	s := newFakeScreen(keyEvent(terminal.KeyCtrlC))
	s.resized <- os.Interrupt
	require.NoError(t, a.Run(s))
	assert.Len(t, s.frames, 2, "initial and resize frames")
}
