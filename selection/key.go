package selection

// Key is a keystroke delivered to a cursor.
type Key struct {
	// Name is the key name, "up", "pgdown", "tab", "f2" and the like,
	// or empty for printable text.
	Name string
	// Text is the printable text of the keystroke, if any.
	Text  string
	Ctrl  bool
	Shift bool
}

// Printable is true when the key types text.
func (key Key) Printable() bool {
	return key.Text != "" && !key.Ctrl
}

// Result tells the owner of a cursor what a handler did.
type Result struct {
	// Handled is true when the cursor acted on the event.
	Handled bool
	// PreventDefault is true when the event's default action should not run.
	PreventDefault bool
	// StopPropagation is true when enclosing handlers should not see the event.
	StopPropagation bool
	// Refocus is true when focus should return to the grid container.
	Refocus bool
}

func handled(moved bool) Result {
	return Result{
		Handled:         true,
		PreventDefault:  moved,
		StopPropagation: true,
	}
}
