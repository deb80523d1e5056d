package ui

import (
	"fmt"

	"github.com/JackWReid/reckon/internal/calc"
	"github.com/JackWReid/reckon/internal/terminal"
)

// PromptType indicates what kind of prompt is active.
type PromptType int

const (
	PromptNone    PromptType = iota
	PromptCommand            // ":" command input
)

const keyHint = "h history  : command  ^C quit"

// StatusBar generates status bar text and handles prompt state.
type StatusBar struct {
	Prompt        PromptType
	PromptText    string
	StatusMessage string // Temporary message, e.g. the result of a command.
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// FormatLeft returns the left-aligned portion of the status bar. The
// editor's own status is shown when no prompt or message takes precedence.
func (s *StatusBar) FormatLeft(editorStatus string) string {
	if s.Prompt == PromptCommand {
		return " :" + s.PromptText
	}
	if s.StatusMessage != "" {
		return " " + s.StatusMessage
	}
	if editorStatus != "" {
		return " " + editorStatus
	}
	return " " + keyHint
}

// FormatRight returns the right-aligned portion of the status bar: Ans,
// which of undo and redo are available, and the angle mode.
func (s *StatusBar) FormatRight(e *calc.Editor, historyLen int, picking bool) string {
	if s.Prompt != PromptNone {
		return ""
	}
	if picking {
		return fmt.Sprintf("%d entries  HISTORY ", historyLen)
	}
	return fmt.Sprintf("Ans %s  %s%s ", calc.FormatNumber(e.Ans()), undoMarker(e.CanUndo(), e.CanRedo()), e.AngleMode())
}

func undoMarker(canUndo, canRedo bool) string {
	switch {
	case canUndo && canRedo:
		return "undo/redo  "
	case canUndo:
		return "undo  "
	case canRedo:
		return "redo  "
	}
	return ""
}

// StartPrompt begins a prompt of the given type.
func (s *StatusBar) StartPrompt(pt PromptType) {
	s.Prompt = pt
	s.PromptText = ""
}

// ClearPrompt resets the prompt state.
func (s *StatusBar) ClearPrompt() {
	s.Prompt = PromptNone
	s.PromptText = ""
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.StatusMessage = msg
}

// ClearMessage clears the temporary status message.
func (s *StatusBar) ClearMessage() {
	s.StatusMessage = ""
}

// HandlePromptKey processes a keypress during an active prompt.
// Returns (input string, done bool, cancelled bool).
func (s *StatusBar) HandlePromptKey(key terminal.Key) (string, bool, bool) {
	switch key.Type {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		s.ClearPrompt()
		return "", false, true
	case terminal.KeyEnter:
		text := s.PromptText
		s.ClearPrompt()
		return text, true, false
	case terminal.KeyBackspace:
		if s.PromptText == "" {
			s.ClearPrompt()
			return "", false, true
		}
		runes := []rune(s.PromptText)
		s.PromptText = string(runes[:len(runes)-1])
	case terminal.KeyRune:
		s.PromptText += string(key.Rune)
	}
	return "", false, false
}
