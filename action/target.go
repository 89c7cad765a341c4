package action

import (
	"github.com/kestrel-term/vtcore/mode"
	"github.com/kestrel-term/vtcore/style"
)

// Target is the contract a terminal implementation exposes to Dispatcher.
// It plays the role the spec calls "Terminal": everything the dispatcher
// needs to mutate is reachable either as a direct method call (for screen
// operations with real side-effect logic: wrapping, scrolling, margins)
// or as a handle to an owned sub-component (Modes, KittyKeyboard, Palette)
// that Dispatcher manipulates directly, the same way the spec describes
// the Terminal "owning" its mode registry, kitty stack, and palette.
type Target interface {
	// Print and PrintRepeat are the only screen writes that intern a style,
	// so they are the only ones that can fail with style-set exhaustion.
	Print(r rune) error
	PrintRepeat(n int) error

	Backspace()
	CarriageReturn()
	LineFeed()
	Index()
	ReverseIndex()

	CursorUp(n int)
	CursorDown(n int)
	CursorLeft(n int)
	CursorRight(n int)
	SetCursorPos(row, col int) // row, col are 0-based; see Action.Row/Col
	SetCursorCol(col int)
	SetCursorRow(row int)
	MoveCursorColRelative(delta int)
	MoveCursorRowRelative(delta int)
	SetCursorShape(shape CursorShape, blink bool)

	EraseDisplay(m EraseDisplayMode, selective bool)
	EraseLine(m EraseLineMode, selective bool)
	AtPendingWrap() bool
	DeleteChars(n int)
	EraseChars(n int)
	InsertLines(n int)
	InsertBlanks(n int)
	DeleteLines(n int)
	ScrollUp(n int)
	ScrollDown(n int)

	HorizontalTab(count int) (advanced bool)
	HorizontalTabBack(count int) (advanced bool)
	TabClear(scope TabClearScope)
	TabSet()
	TabReset()

	SetTopAndBottomMargin(top, bottom int)
	SetLeftAndRightMargin(left, right int)
	ResetLeftRightMargin()
	HomeCursor()

	SaveCursor()
	RestoreCursor()

	InvokeCharset(slot CharsetSlot, locking bool)
	ConfigureCharset(slot CharsetSlot, set CharsetSet)

	SetAttribute(attr AttrKind, color style.Color)
	SetProtectedMode(kind ProtectedMode)

	Decaln()
	FullReset() error

	EnterAltScreen(kind ScreenModeKind) error
	LeaveAltScreen(kind ScreenModeKind)
	Deccolm(wide bool) error

	SetMouseEvent(kind MouseEventKind)
	SetMouseFormat(kind MouseFormatKind)
	SetMouseShiftCapture(v bool)
	SetMouseShape(shape string)

	SetModifyKeyFormat(otherKeysNumeric bool)
	SetActiveStatusDisplay(n int)

	MarkPromptStart(shellRedraws bool)
	MarkPromptContinuation()
	MarkPromptEnd()
	MarkEndOfInput()
	MarkEndOfCommand(exitCode int)

	StartHyperlink(uri, id string) error
	EndHyperlink()

	Modes() *mode.Registry
	KittyKeyboard() *mode.KittyKeyboardStack
	Palette() *style.Palette
}
