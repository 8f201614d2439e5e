package widgets

// DefaultUndoLimit is the number of actions an editbox remembers by default.
const DefaultUndoLimit = 100

// UndoActionType says whether an action inserted or deleted text.
type UndoActionType int

const (
	UndoInsert UndoActionType = iota
	UndoDelete
)

// String returns the action type name.
func (t UndoActionType) String() string {
	if t == UndoDelete {
		return "Delete"
	}
	return "Insert"
}

// UndoAction is one recorded edit.
type UndoAction struct {
	Type  UndoActionType
	Start int    // Rune index the edit happened at
	Text  string // Inserted or deleted text
	Caret int    // Caret position before the edit
}

// runeLen returns the length of the action's text in runes.
func (a UndoAction) runeLen() int {
	return len([]rune(a.Text))
}

// UndoHandler is a linear edit history with a cursor. Actions before the
// cursor can be undone, actions after it redone. Adding an action drops the
// redo tail.
type UndoHandler struct {
	actions []UndoAction
	pos     int // Number of applied actions
	limit   int // Maximum retained actions (0 = unlimited)
}

// NewUndoHandler creates an empty history keeping at most limit actions.
// A limit of 0 or less keeps everything.
func NewUndoHandler(limit int) *UndoHandler {
	return &UndoHandler{limit: max(limit, 0)}
}

// Add records an applied action.
func (u *UndoHandler) Add(a UndoAction) {
	if a.Text == "" {
		return
	}
	if u.pos < len(u.actions) {
		u.actions = u.actions[:u.pos]
	}
	u.actions = append(u.actions, a)
	u.pos = len(u.actions)
	u.trim()
}

func (u *UndoHandler) trim() {
	if u.limit == 0 || len(u.actions) <= u.limit {
		return
	}
	drop := len(u.actions) - u.limit
	u.actions = append(u.actions[:0], u.actions[drop:]...)
	u.pos = max(u.pos-drop, 0)
}

// CanUndo reports whether there is an action to undo.
func (u *UndoHandler) CanUndo() bool { return u.pos > 0 }

// CanRedo reports whether there is an undone action to redo.
func (u *UndoHandler) CanRedo() bool { return u.pos < len(u.actions) }

// Undo steps back and returns the action to revert.
func (u *UndoHandler) Undo() (UndoAction, bool) {
	if !u.CanUndo() {
		return UndoAction{}, false
	}
	u.pos--
	return u.actions[u.pos], true
}

// Redo steps forward and returns the action to re-apply.
func (u *UndoHandler) Redo() (UndoAction, bool) {
	if !u.CanRedo() {
		return UndoAction{}, false
	}
	a := u.actions[u.pos]
	u.pos++
	return a, true
}

// Clear forgets the whole history.
func (u *UndoHandler) Clear() {
	u.actions = nil
	u.pos = 0
}

// Len returns the number of recorded actions, undone ones included.
func (u *UndoHandler) Len() int { return len(u.actions) }

// Limit returns the history limit (0 = unlimited).
func (u *UndoHandler) Limit() int { return u.limit }

// SetLimit changes the history limit, dropping the oldest actions when the
// history is already longer.
func (u *UndoHandler) SetLimit(limit int) {
	u.limit = max(limit, 0)
	u.trim()
}
