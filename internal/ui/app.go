// Package ui is the interactive terminal front end for the calculator.
package ui

import (
	"os"
	"strings"

	"github.com/JackWReid/reckon/internal/calc"
	"github.com/JackWReid/reckon/internal/logging"
	"github.com/JackWReid/reckon/internal/store"
	"github.com/JackWReid/reckon/internal/terminal"
)

var log = logging.GetLogger("reckon.ui")

// Screen is the terminal surface the App draws on and reads from.
type Screen interface {
	ReadEvent() (terminal.Event, error)
	Size() (int, int)
	Resize() bool
	Resized() <-chan os.Signal
	Write(frame string) error
}

// ThemeStore persists the theme preference.
type ThemeStore interface {
	LoadTheme() store.Theme
	SaveTheme(store.Theme) error
}

// App is the top-level interactive state.
type App struct {
	editor *calc.Editor
	themes ThemeStore
	theme  store.Theme

	layout    *Layout
	renderer  *Renderer
	statusBar *StatusBar
	picker    *HistoryPicker
	screen    Screen

	historyOffset int
	quit          bool
}

// NewApp wraps an editor. The theme is loaded from themes when it is non-nil.
func NewApp(editor *calc.Editor, themes ThemeStore) *App {
	a := &App{
		editor:    editor,
		themes:    themes,
		theme:     store.ThemeLight,
		layout:    NewLayout(ColumnWidth, 24),
		renderer:  NewRenderer(),
		statusBar: NewStatusBar(),
		picker:    &HistoryPicker{},
	}
	if themes != nil {
		a.theme = themes.LoadTheme()
	}
	return a
}

// SetTheme overrides the theme for this session without persisting it.
func (a *App) SetTheme(t store.Theme) { a.theme = t }

// Theme returns the active theme.
func (a *App) Theme() store.Theme { return a.theme }

// Run draws and handles input until the user quits.
func (a *App) Run(s Screen) error {
	a.screen = s
	w, h := s.Size()
	a.layout.Resize(w, h)

	if err := a.render(); err != nil {
		return err
	}

	for !a.quit {
		// Check for resize signal (non-blocking).
		select {
		case <-s.Resized():
			s.Resize()
			w, h := s.Size()
			a.layout.Resize(w, h)
			if err := a.render(); err != nil {
				return err
			}
			continue
		default:
		}

		event, err := s.ReadEvent()
		if err != nil {
			return err
		}

		a.handleInput(event)
		if !a.quit {
			if err := a.render(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *App) handleInput(event terminal.Event) {
	a.statusBar.ClearMessage()

	if event.IsMouse {
		a.handleMouse(event.Mouse)
		return
	}

	key := event.Key
	if a.statusBar.Prompt != PromptNone {
		a.handlePromptKey(key)
		return
	}
	if a.picker.Active {
		a.handlePickerKey(key)
		return
	}
	a.handleKey(key)
}

func (a *App) handleKey(key terminal.Key) {
	switch key.Type {
	case terminal.KeyRune:
		a.handleRune(key.Rune)
	case terminal.KeyEnter:
		a.evaluate()
	case terminal.KeyBackspace, terminal.KeyDelete:
		a.editor.Backspace()
	case terminal.KeyCtrlW:
		a.editor.DeleteToken()
	case terminal.KeyEscape, terminal.KeyCtrlL:
		a.editor.Clear()
	case terminal.KeyCtrlZ:
		a.editor.Undo()
	case terminal.KeyCtrlY, terminal.KeyCtrlR:
		a.editor.Redo()
	case terminal.KeyUp:
		a.showHistory()
	case terminal.KeyPgUp:
		a.scrollHistory(-a.layout.HistoryRows())
	case terminal.KeyPgDn:
		a.scrollHistory(a.layout.HistoryRows())
	case terminal.KeyCtrlC:
		a.quit = true
	}
}

func (a *App) handleRune(r rune) {
	switch r {
	case '=':
		a.evaluate()
		return
	case 'd':
		a.statusBar.SetMessage("Angle mode: " + a.editor.ToggleAngleMode().String())
		return
	case 'm':
		a.setTheme(a.theme.Toggle())
		return
	case 'h':
		a.showHistory()
		return
	case ':':
		a.statusBar.StartPrompt(PromptCommand)
		return
	}
	if tok, ok := tokenFor(r); ok {
		a.editor.Append(tok)
	}
}

func (a *App) evaluate() {
	if _, err := a.editor.Evaluate(); err != nil {
		log.Debugf("evaluate: %s", err)
		return
	}
	a.historyOffset = 0
}

func (a *App) setTheme(t store.Theme) {
	a.theme = t
	if a.themes != nil {
		if err := a.themes.SaveTheme(t); err != nil {
			log.Warningf("%s", err)
			a.statusBar.SetMessage("Could not save theme: " + err.Error())
			return
		}
	}
	a.statusBar.SetMessage("Theme: " + string(t))
}

func (a *App) showHistory() {
	if len(a.editor.History()) == 0 {
		a.statusBar.SetMessage("No history yet")
		return
	}
	a.picker.Show()
	a.layout.EnsureVisible(a.picker.Selected, &a.historyOffset)
}

func (a *App) scrollHistory(n int) {
	a.historyOffset += n
	a.layout.ClampOffset(len(a.editor.History()), &a.historyOffset)
}

func (a *App) handlePickerKey(key terminal.Key) {
	history := a.editor.History()
	switch key.Type {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		a.picker.Hide()
	case terminal.KeyUp:
		a.picker.MoveUp(1)
	case terminal.KeyDown:
		a.picker.MoveDown(1, len(history))
	case terminal.KeyPgUp:
		a.picker.MoveUp(a.layout.HistoryRows())
	case terminal.KeyPgDn:
		a.picker.MoveDown(a.layout.HistoryRows(), len(history))
	case terminal.KeyRune:
		switch key.Rune {
		case 'k':
			a.picker.MoveUp(1)
		case 'j':
			a.picker.MoveDown(1, len(history))
		case 'h', 'q':
			a.picker.Hide()
		}
	case terminal.KeyEnter:
		a.recall(a.picker.Selected)
		a.picker.Hide()
	}
	a.layout.EnsureVisible(a.picker.Selected, &a.historyOffset)
}

func (a *App) recall(idx int) {
	history := a.editor.History()
	if idx < 0 || idx >= len(history) {
		return
	}
	a.editor.Recall(history[idx].Expression)
}

func (a *App) handleMouse(m terminal.Mouse) {
	if a.statusBar.Prompt != PromptNone {
		return
	}
	switch m.Button {
	case terminal.MouseWheelUp:
		a.scrollHistory(-1)
	case terminal.MouseWheelDown:
		a.scrollHistory(1)
	case terminal.MouseLeft:
		if !m.Press {
			return
		}
		if idx := a.layout.HistoryIndexAt(m.Row, a.historyOffset); idx >= 0 {
			a.recall(idx)
			a.picker.Hide()
		}
	}
}

func (a *App) handlePromptKey(key terminal.Key) {
	text, done, _ := a.statusBar.HandlePromptKey(key)
	if done {
		a.executeCommand(text)
	}
}

func (a *App) executeCommand(cmd string) {
	cmd = strings.TrimSpace(cmd)

	switch {
	case cmd == "":
		return

	case cmd == "q" || cmd == "quit":
		a.quit = true

	case cmd == "deg":
		a.editor.SetAngleMode(calc.Degrees)
		a.statusBar.SetMessage("Angle mode: DEG")

	case cmd == "rad":
		a.editor.SetAngleMode(calc.Radians)
		a.statusBar.SetMessage("Angle mode: RAD")

	case cmd == "theme":
		a.statusBar.SetMessage("Theme: " + string(a.theme))

	case strings.HasPrefix(cmd, "theme "):
		t, err := store.ParseTheme(cmd[len("theme "):])
		if err != nil {
			a.statusBar.SetMessage(err.Error())
			return
		}
		a.setTheme(t)

	case cmd == "history clear":
		if err := a.editor.ClearHistory(); err != nil {
			log.Warningf("%s", err)
			a.statusBar.SetMessage("Could not clear history: " + err.Error())
			return
		}
		a.historyOffset = 0
		a.statusBar.SetMessage("History cleared")

	default:
		expr := strings.TrimSpace(strings.TrimPrefix(cmd, "="))
		if _, err := a.editor.EvaluateText(expr); err != nil {
			log.Debugf("evaluate %q: %s", expr, err)
			return
		}
		a.historyOffset = 0
	}
}

func (a *App) frame() Frame {
	selected := -1
	if a.picker.Active {
		selected = a.picker.Selected
	}
	history := a.editor.History()
	a.layout.ClampOffset(len(history), &a.historyOffset)
	return Frame{
		Layout:        a.layout,
		Palette:       PaletteFor(a.theme),
		Mode:          a.editor.AngleMode(),
		Theme:         a.theme,
		History:       history,
		HistoryOffset: a.historyOffset,
		Selected:      selected,
		Echo:          a.editor.Echo(),
		Display:       a.editor.Display(),
		Error:         a.editor.ShowingError(),
		StatusLeft:    a.statusBar.FormatLeft(a.editor.Status()),
		StatusRight:   a.statusBar.FormatRight(a.editor, len(history), a.picker.Active),
	}
}

func (a *App) render() error {
	return a.screen.Write(a.renderer.RenderFrame(a.frame()))
}
