package keyboard

// EventKind tags a KeyEvent as a press or a release.
type EventKind uint8

const (
	Pressed EventKind = iota
	Released
)

// KeyEvent is a single press or release transition for one key.
type KeyEvent struct {
	Kind EventKind
	Key  Key
}

// PressedKey returns the event's key and true when the event is a
// press.
func (e KeyEvent) PressedKey() (Key, bool) {
	return e.Key, e.Kind == Pressed
}

// ReleasedKey returns the event's key and true when the event is a
// release.
func (e KeyEvent) ReleasedKey() (Key, bool) {
	return e.Key, e.Kind == Released
}

func (e KeyEvent) String() string {
	if e.Kind == Pressed {
		return "Pressed(" + e.Key.String() + ")"
	}
	return "Released(" + e.Key.String() + ")"
}
