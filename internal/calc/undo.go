package calc

// undoLimit bounds the number of snapshots kept.
const undoLimit = 100

// UndoStack keeps buffer snapshots for undo and redo.
type UndoStack struct {
	ops     []string
	redoOps []string
}

func NewUndoStack() *UndoStack {
	return &UndoStack{}
}

// Push records the buffer as it was before an edit and clears redo.
func (u *UndoStack) Push(before string) {
	u.redoOps = nil
	u.ops = append(u.ops, before)
	if len(u.ops) > undoLimit {
		u.ops = u.ops[len(u.ops)-undoLimit:]
	}
}

// Undo pops the last snapshot, remembering current for redo.
func (u *UndoStack) Undo(current string) (string, bool) {
	if len(u.ops) == 0 {
		return "", false
	}
	prev := u.ops[len(u.ops)-1]
	u.ops = u.ops[:len(u.ops)-1]
	u.redoOps = append(u.redoOps, current)
	return prev, true
}

// Redo re-applies the last undone snapshot.
func (u *UndoStack) Redo(current string) (string, bool) {
	if len(u.redoOps) == 0 {
		return "", false
	}
	next := u.redoOps[len(u.redoOps)-1]
	u.redoOps = u.redoOps[:len(u.redoOps)-1]
	u.ops = append(u.ops, current)
	return next, true
}

func (u *UndoStack) CanUndo() bool { return len(u.ops) > 0 }
func (u *UndoStack) CanRedo() bool { return len(u.redoOps) > 0 }
