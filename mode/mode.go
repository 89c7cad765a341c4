// Package mode implements the terminal's mode bits: a dense registry with
// a per-mode save/restore stack (DECSET/DECRST plus the save-mode variants),
// and the small LIFO flag-set stack the kitty keyboard protocol uses.
package mode

// Mode enumerates every terminal mode the dispatcher can set, reset, save,
// or restore. Most modes carry no side effect beyond flipping their bit;
// the ones that do are documented where the dispatcher applies them.
type Mode uint8

const (
	Origin Mode = iota
	EnableLeftRightMargin
	AltScreenLegacy               // CSI ?47
	AltScreen                     // CSI ?1047
	AltScreenSaveCursorClearEnter // CSI ?1049
	SaveCursorPrivate             // CSI ?1048
	Column132                     // DECCOLM, CSI ?3
	MouseEventX10
	MouseEventNormal
	MouseEventButton
	MouseEventAny
	MouseFormatUTF8
	MouseFormatSGR
	MouseFormatURXVT
	MouseFormatSGRPixels
	MouseShiftCapture
	Autorepeat
	ReverseColors
	EnableMode3
	SynchronizedOutput
	LineFeedNewLine
	InBandSizeReports
	FocusEvent
	CursorKeys
	Insert
	LineWrap
	ShowCursor
	BlinkingCursor
	BracketedPaste

	count // sentinel; keep last
)

// String names a Mode for diagnostics and test failure messages.
func (m Mode) String() string {
	switch m {
	case Origin:
		return "origin"
	case EnableLeftRightMargin:
		return "enable_left_and_right_margin"
	case AltScreenLegacy:
		return "alt_screen_legacy"
	case AltScreen:
		return "alt_screen"
	case AltScreenSaveCursorClearEnter:
		return "alt_screen_save_cursor_clear_enter"
	case SaveCursorPrivate:
		return "save_cursor"
	case Column132:
		return "132_column"
	case MouseEventX10:
		return "mouse_event_x10"
	case MouseEventNormal:
		return "mouse_event_normal"
	case MouseEventButton:
		return "mouse_event_button"
	case MouseEventAny:
		return "mouse_event_any"
	case MouseFormatUTF8:
		return "mouse_format_utf8"
	case MouseFormatSGR:
		return "mouse_format_sgr"
	case MouseFormatURXVT:
		return "mouse_format_urxvt"
	case MouseFormatSGRPixels:
		return "mouse_format_sgr_pixels"
	case MouseShiftCapture:
		return "mouse_shift_capture"
	case Autorepeat:
		return "autorepeat"
	case ReverseColors:
		return "reverse_colors"
	case EnableMode3:
		return "enable_mode_3"
	case SynchronizedOutput:
		return "synchronized_output"
	case LineFeedNewLine:
		return "linefeed"
	case InBandSizeReports:
		return "in_band_size_reports"
	case FocusEvent:
		return "focus_event"
	case CursorKeys:
		return "cursor_keys"
	case Insert:
		return "insert"
	case LineWrap:
		return "line_wrap"
	case ShowCursor:
		return "show_cursor"
	case BlinkingCursor:
		return "blinking_cursor"
	case BracketedPaste:
		return "bracketed_paste"
	default:
		return "unknown_mode"
	}
}
