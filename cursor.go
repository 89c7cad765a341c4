package vtcore

import (
	"github.com/kestrel-term/vtcore/action"
	"github.com/kestrel-term/vtcore/style"
)

// Cursor tracks position and rendering style (0-based coordinates).
type Cursor struct {
	Row, Col    int
	Shape       action.CursorShape
	Blink       bool
	Visible     bool
	PendingWrap bool // set after printing into the last column, cleared on any motion
}

// NewCursor returns a cursor at (0, 0), visible, with a steady block.
func NewCursor() *Cursor {
	return &Cursor{Shape: action.CursorShapeBlock, Blink: false, Visible: true}
}

// SavedCursor captures everything DECSC/DECRC and alt-screen entry/exit
// round-trip: position, the pending attribute template, origin mode, and
// charset state.
type SavedCursor struct {
	Row, Col    int
	Template    style.Style
	OriginMode  bool
	CharsetSlot action.CharsetSlot
	Charsets    [4]action.CharsetSet
}
