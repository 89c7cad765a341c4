// Package action defines the action taxonomy the dispatcher consumes
// (the tagged variant an external parser would produce) and Dispatcher,
// the pure function that applies one Action to a Target.
package action

import (
	"github.com/kestrel-term/vtcore/mode"
	"github.com/kestrel-term/vtcore/style"
)

// Kind tags which variant an Action holds. Dispatcher.Dispatch switches
// exhaustively over Kind; adding a Kind here without a matching case in
// that switch is caught by TestDispatchHandlesEveryKind.
type Kind uint8

const (
	Print Kind = iota
	PrintRepeat

	Backspace
	CarriageReturn
	LineFeed
	Index
	ReverseIndex
	NextLine

	CursorUp
	CursorDown
	CursorLeft
	CursorRight
	CursorPos
	CursorCol
	CursorRow
	CursorColRelative
	CursorRowRelative
	CursorStyleSet

	EraseDisplay
	EraseLine

	DeleteChars
	EraseChars
	InsertLines
	InsertBlanks
	DeleteLines
	ScrollUp
	ScrollDown

	HorizontalTab
	HorizontalTabBack
	TabClearCurrent
	TabClearAll
	TabSet
	TabReset

	SetMode
	ResetMode
	SaveMode
	RestoreMode

	TopAndBottomMargin
	LeftAndRightMargin
	AmbiguousCSIs

	SaveCursor
	RestoreCursor

	InvokeCharset
	ConfigureCharset

	SetAttribute

	SetProtectedMode
	MouseShiftCapture

	KittyPush
	KittyPop
	KittySet
	KittySetOr
	KittySetNot

	ModifyKeyFormat
	ActiveStatusDisplay

	Decaln
	FullReset

	SwitchScreenMode
	Deccolm

	PromptStart
	PromptContinuation
	PromptEnd
	EndOfInput
	EndOfCommand

	StartHyperlink
	EndHyperlink

	MouseShape

	OSCColor

	// No-op families: accepted so the stream stays parseable, never
	// surfaced as InvalidAction, never produces a response.
	DCS
	APC
	Bell
	Enquiry
	RequestMode
	SizeReport
	XTVersion
	DeviceAttributes
	DeviceStatus
	KittyKeyboardQuery
	KittyColorReport
	WindowTitleQuery
	ReportPWD
	ShowDesktopNotification
	ProgressReport
	ClipboardContents
	TitlePush
	TitlePop

	kindCount // sentinel; keep last
)

// EraseDisplayMode selects which region of the screen erase_display clears.
type EraseDisplayMode uint8

const (
	EraseBelow EraseDisplayMode = iota
	EraseAbove
	EraseComplete
	EraseScrollback
	EraseScrollComplete
)

// EraseLineMode selects which part of the current line erase_line clears.
type EraseLineMode uint8

const (
	EraseLineRight EraseLineMode = iota
	EraseLineLeft
	EraseLineComplete
	EraseLineRightUnlessPendingWrap
)

// CursorShape is the rendered cursor shape (DECSCUSR).
type CursorShape uint8

const (
	CursorShapeBlock CursorShape = iota
	CursorShapeUnderline
	CursorShapeBar
)

// ProtectedMode is the DECSCA protected-cell flavor.
type ProtectedMode uint8

const (
	ProtectedOff ProtectedMode = iota
	ProtectedISO
	ProtectedDEC
)

// CharsetSlot designates one of the four G0-G3 charset banks.
type CharsetSlot uint8

const (
	G0 CharsetSlot = iota
	G1
	G2
	G3
)

// CharsetSet is the character set designated into a slot.
type CharsetSet uint8

const (
	CharsetASCII CharsetSet = iota
	CharsetLineDrawing
	CharsetUK
)

// TabClearScope selects which tab stops tab_clear removes.
type TabClearScope uint8

const (
	TabClearCurrentColumn TabClearScope = iota
	TabClearAllColumns
)

// MouseEventKind is the mouse-tracking granularity a mouse_event_* mode
// selects.
type MouseEventKind uint8

const (
	MouseEventNone MouseEventKind = iota
	MouseEventX10
	MouseEventNormal
	MouseEventButton
	MouseEventAny
)

// MouseFormatKind is the mouse-report encoding a mouse_format_* mode
// selects.
type MouseFormatKind uint8

const (
	MouseFormatX10 MouseFormatKind = iota
	MouseFormatUTF8
	MouseFormatSGR
	MouseFormatURXVT
	MouseFormatSGRPixels
)

// ScreenModeKind distinguishes the three alternate-screen variants
// (CSI ?47, ?1047, ?1049), which differ only in whether they also save
// the cursor and clear the new screen on entry.
type ScreenModeKind uint8

const (
	ScreenModeAltLegacy ScreenModeKind = iota
	ScreenModeAlt
	ScreenModeAltSaveCursorClear
)

// AttrKind tags an SGR attribute's variant.
type AttrKind uint8

const (
	AttrReset AttrKind = iota
	AttrBold
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrDoubleUnderline
	AttrCurlyUnderline
	AttrDottedUnderline
	AttrDashedUnderline
	AttrBlinkSlow
	AttrBlinkFast
	AttrInverse
	AttrInvisible
	AttrStrikethrough
	AttrOverline
	AttrCancelBold
	AttrCancelBoldFaint
	AttrCancelItalic
	AttrCancelUnderline
	AttrCancelBlink
	AttrCancelInverse
	AttrCancelInvisible
	AttrCancelStrikethrough
	AttrCancelOverline
	AttrForeground
	AttrBackground
	AttrUnderlineColor
	AttrUnknown
)

// ColorTargetKind selects which OSC color slot a Request names.
type ColorTargetKind uint8

const (
	ColorTargetPalette ColorTargetKind = iota
	ColorTargetDynamic
	ColorTargetSpecial
)

// ColorTarget names one OSC color slot.
type ColorTarget struct {
	Kind  ColorTargetKind
	Index int // palette index, valid when Kind == ColorTargetPalette
}

// ColorRequestKind tags an OSC color Request's variant.
type ColorRequestKind uint8

const (
	ColorRequestSet ColorRequestKind = iota
	ColorRequestReset
	ColorRequestResetPalette
	ColorRequestQuery
	ColorRequestResetSpecial
)

// ColorRequest is one element of an OSC 4/104/dynamic-color action.
type ColorRequest struct {
	Kind   ColorRequestKind
	Target ColorTarget
	Color  style.Color // valid when Kind == ColorRequestSet
}

// Action is the tagged variant the dispatcher consumes: Kind selects
// which of the fields below are meaningful. This inlines every variant's
// payload onto one struct (the "sum of records" the design favors) rather
// than routing through a parallel type-level map, so adding a field never
// requires touching unrelated call sites.
type Action struct {
	Kind Kind

	Rune  rune // Print
	Count int  // print_repeat, cursor motion, tab, line/char editing counts

	// Row, Col are 0-based for CursorPos, CursorCol and CursorRow: the
	// external parser is responsible for translating VT's 1-based CUP/HVP
	// parameters into a 0-based Action before Dispatch ever sees it, the
	// same way it already resolves escape bytes into a Kind.
	// Target.SetCursorPos mirrors this convention. For CursorColRelative and
	// CursorRowRelative they carry signed deltas instead.
	Row, Col int // cursor_pos, cursor_col/row(_relative)

	EraseDisplay EraseDisplayMode
	EraseLine    EraseLineMode
	Selective    bool // erase selective flag

	CursorShape CursorShape
	CursorBlink bool

	Mode mode.Mode // set_mode/reset_mode/save_mode/restore_mode

	Top, Bottom, Left, Right int // margins

	CharsetSlot CharsetSlot
	CharsetSet  CharsetSet
	Locking     bool // invoke_charset: locking vs single-shift

	Attr      AttrKind
	AttrColor style.Color

	Protected ProtectedMode

	MouseCapture bool // mouse_shift_capture

	KittyFlags mode.KittyFlags
	PopCount   int // kitty_pop

	OtherKeysNumeric bool // modify_key_format

	StatusDisplay int // active_status_display payload

	ScreenMode ScreenModeKind
	Enabled    bool // switch_screen_mode: true=enter, false=leave
	Deccolm132 bool // deccolm: true=132 columns, false=80

	ShellRedrawsPrompt bool // prompt_start
	ExitCode           int  // end_of_command

	URI string // start_hyperlink
	ID  string // start_hyperlink

	MouseShape string

	ColorOp       int // OSC Operation discriminator, ignored by this dispatcher
	ColorRequests []ColorRequest

	RawData []byte // dcs/apc/... no-op payloads, retained for symmetry only
}
