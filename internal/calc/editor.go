// Package calc implements the calculator's expression buffer editor.
package calc

import (
	"errors"
	"strings"
	"time"

	"github.com/JackWReid/reckon/internal/logging"
	"github.com/JackWReid/reckon/internal/mathexpr"
	"github.com/JackWReid/reckon/internal/store"
)

var log = logging.GetLogger("reckon.calc")

// Status messages shown after an edit.
const (
	StatusIncomplete = "Incomplete expression"
	ErrorIndicator   = "Error"
)

// Evaluator computes the value of normalized expression text.
type Evaluator interface {
	Evaluate(expr string, scope mathexpr.Scope) (float64, error)
}

// HistoryStore persists evaluation history, newest first.
type HistoryStore interface {
	LoadHistory() []store.HistoryEntry
	SaveHistory([]store.HistoryEntry) error
}

// Result describes a successful evaluation.
type Result struct {
	Expression string // Human readable input, including auto-closed parens.
	Value      float64
	Formatted  string
	AutoClosed int
}

// Editor owns one calculator session: the expression buffer, its derived
// state, the last answer and the angle mode.
type Editor struct {
	eval      Evaluator
	history   HistoryStore
	suggester *Suggester
	undo      *UndoStack
	now       func() time.Time

	buf     string
	state   EditState
	ans     float64
	mode    AngleMode
	status  string
	showErr bool
	echo    Display
	fresh   string // Formatted result while the buffer still holds it.
	entries []store.HistoryEntry
}

// NewEditor creates an editor. A nil evaluator uses mathexpr.Engine; a nil
// history store keeps history in memory only.
func NewEditor(eval Evaluator, history HistoryStore) *Editor {
	if eval == nil {
		eval = mathexpr.Engine{}
	}
	e := &Editor{
		eval:      eval,
		history:   history,
		suggester: NewSuggester(BuildScope(Radians, 0).Names()),
		undo:      NewUndoStack(),
		now:       time.Now,
	}
	if history != nil {
		e.entries = history.LoadHistory()
	}
	return e
}

// Buffer returns the raw expression text.
func (e *Editor) Buffer() string { return e.buf }

// State returns the derived edit state.
func (e *Editor) State() EditState { return e.state }

// Ans returns the last successful result.
func (e *Editor) Ans() float64 { return e.ans }

// Status returns the transient status message.
func (e *Editor) Status() string { return e.status }

// ShowingError reports whether the last evaluation failed.
func (e *Editor) ShowingError() bool { return e.showErr }

// Echo returns the display form of the last evaluated expression.
func (e *Editor) Echo() Display { return e.echo }

// AngleMode returns the current angle mode.
func (e *Editor) AngleMode() AngleMode { return e.mode }

// SetAngleMode changes how trigonometric functions treat angles.
func (e *Editor) SetAngleMode(m AngleMode) { e.mode = m }

// ToggleAngleMode flips between degrees and radians.
func (e *Editor) ToggleAngleMode() AngleMode {
	e.mode = e.mode.Toggle()
	return e.mode
}

// History returns a copy of the recorded history, newest first.
func (e *Editor) History() []store.HistoryEntry {
	return append([]store.HistoryEntry(nil), e.entries...)
}

// Display returns what the main display shows: the error indicator after
// a failed evaluation, otherwise the formatted buffer.
func (e *Editor) Display() Display {
	if e.showErr {
		return Display{Body: ErrorIndicator}
	}
	if e.fresh != "" {
		return Display{Body: e.fresh}
	}
	if e.buf == "" {
		return Display{Body: "0"}
	}
	return FormatExpressionForDisplay(e.buf, e.state)
}

// Append adds a token to the buffer.
func (e *Editor) Append(tok string) {
	if tok == "" {
		return
	}
	e.status = ""
	e.showErr = false
	before := e.buf

	if e.buf == "0" && !keepsPlaceholder(tok) {
		e.buf = ""
	}
	switch {
	case isOperator(tok):
		if e.state.LastTokenWasOperator {
			e.buf = strings.TrimSuffix(e.buf, trailingOperator(e.buf))
		}
	case isDigitToken(tok):
		if run := trailingNumber(e.buf); run != "" && strings.Trim(run, "0") == "" {
			e.buf = e.buf[:len(e.buf)-len(run)]
		}
	}
	e.buf += tok
	e.commit(before)
}

// Backspace removes the last character of the buffer.
func (e *Editor) Backspace() {
	e.status = ""
	e.showErr = false
	if e.buf == "" {
		return
	}
	before := e.buf
	rs := []rune(e.buf)
	e.buf = string(rs[:len(rs)-1])
	e.commit(before)
}

// DeleteToken removes the last token: a whole function name with its
// "(", a whole number, or one character.
func (e *Editor) DeleteToken() {
	e.status = ""
	e.showErr = false
	if e.buf == "" {
		return
	}
	before := e.buf
	rs := []rune(e.buf)
	e.buf = string(rs[:lastTokenStart(rs)])
	e.commit(before)
}

// Clear empties the buffer and resets all transient state.
func (e *Editor) Clear() {
	before := e.buf
	e.buf = ""
	e.status = ""
	e.showErr = false
	e.echo = Display{}
	e.commit(before)
}

// Recall replaces the buffer with expr, typically from history.
func (e *Editor) Recall(expr string) {
	e.status = ""
	e.showErr = false
	before := e.buf
	e.buf = expr
	e.commit(before)
}

// Undo restores the buffer as it was before the last change.
func (e *Editor) Undo() bool {
	prev, ok := e.undo.Undo(e.buf)
	if !ok {
		e.status = "Nothing to undo"
		return false
	}
	e.replace(prev)
	return true
}

// Redo re-applies the last undone change.
func (e *Editor) Redo() bool {
	next, ok := e.undo.Redo(e.buf)
	if !ok {
		e.status = "Nothing to redo"
		return false
	}
	e.replace(next)
	return true
}

// CanUndo reports whether Undo has a snapshot to restore.
func (e *Editor) CanUndo() bool { return e.undo.CanUndo() }

// CanRedo reports whether Redo has an undone change to re-apply.
func (e *Editor) CanRedo() bool { return e.undo.CanRedo() }

func (e *Editor) replace(buf string) {
	e.buf = buf
	e.fresh = ""
	e.state = stateOf(buf)
	e.status = ""
	e.showErr = false
}

// commit records an undo snapshot when the buffer changed and recomputes
// the derived state.
func (e *Editor) commit(before string) {
	if e.buf != before {
		e.undo.Push(before)
	}
	e.fresh = ""
	e.state = stateOf(e.buf)
}

// Evaluate evaluates the current buffer.
func (e *Editor) Evaluate() (Result, error) {
	return e.evaluate(e.buf)
}

// EvaluateText evaluates raw text instead of the buffer. On success the
// buffer is replaced by the result, as with Evaluate.
func (e *Editor) EvaluateText(text string) (Result, error) {
	return e.evaluate(text)
}

func (e *Editor) evaluate(text string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" || endsWithOperator(text) || strings.HasSuffix(text, ".") {
		e.status = StatusIncomplete
		return Result{}, ErrIncompleteExpression
	}

	open := unmatchedParens(text)
	closed := text + strings.Repeat(")", open)
	e.echo = FormatExpressionForDisplay(text, EditState{UnmatchedParens: open, AutoCloseArmed: open > 0})

	normalized := Normalize(closed)
	log.Debugf("evaluating %q as %q (%s)", closed, normalized, e.mode)
	before := e.buf

	v, err := e.eval.Evaluate(normalized, BuildScope(e.mode, e.ans))
	if err != nil {
		ee := &EvaluationError{Expression: closed, Err: err}
		var ue *mathexpr.UndefinedError
		if errors.As(err, &ue) {
			ee.Suggestion = e.suggester.Suggest(ue.Name)
		}
		log.Infof("%s", ee)
		e.buf = ""
		e.commit(before)
		e.showErr = true
		e.status = ErrorIndicator + ": " + ee.Brief()
		return Result{}, ee
	}

	res := Result{
		Expression: closed,
		Value:      v,
		Formatted:  FormatNumber(v),
		AutoClosed: open,
	}
	e.ans = v
	e.record(res)
	e.buf = NumberString(v)
	e.commit(before)
	e.fresh = res.Formatted
	e.state.AutoCloseArmed = open > 0
	e.status = ""
	e.showErr = false
	return res, nil
}

// record prepends a history entry and persists the capped list.
func (e *Editor) record(res Result) {
	entry := store.HistoryEntry{
		Expression: res.Expression,
		Result:     res.Formatted,
		Timestamp:  e.now().UnixMilli(),
	}
	e.entries = append([]store.HistoryEntry{entry}, e.entries...)
	if len(e.entries) > store.MaxHistory {
		e.entries = e.entries[:store.MaxHistory]
	}
	if e.history == nil {
		return
	}
	if err := e.history.SaveHistory(e.entries); err != nil {
		log.Warningf("%s", err)
	}
}

// ClearHistory forgets every recorded evaluation.
func (e *Editor) ClearHistory() error {
	e.entries = nil
	if e.history == nil {
		return nil
	}
	return e.history.SaveHistory(nil)
}
