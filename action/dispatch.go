package action

import (
	"errors"
	"fmt"

	"github.com/kestrel-term/vtcore/mode"
)

// ErrInvalidAction is wrapped into the error Dispatch returns for an Action
// whose Kind the dispatcher does not recognize. Every Kind this package
// defines is handled (TestDispatchHandlesEveryKind runs each one through
// Dispatch to check that),
// so this only fires for a zero-value or corrupted Action crossing a package
// boundary the type system can't see.
var ErrInvalidAction = errors.New("action: invalid action kind")

// Dispatcher applies Actions to a Target. It holds no state of its own: all
// mutable terminal state lives behind Target, so a Dispatcher is reused
// across every Action a session processes.
type Dispatcher struct{}

// NewDispatcher returns a ready-to-use Dispatcher.
func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// Dispatch applies a to t. Attribute-application and hyperlink-start errors
// are swallowed (an erroneous SGR produces no observable state change and
// the stream continues); print, resize, and alt-screen errors are returned
// to the caller since they signal a real inconsistency (style-set
// exhaustion, a screen too small) that should stop the stream.
func (d *Dispatcher) Dispatch(t Target, a Action) error {
	switch a.Kind {
	case Print:
		return t.Print(a.Rune)
	case PrintRepeat:
		return t.PrintRepeat(count1(a.Count))

	case Backspace:
		t.Backspace()
	case CarriageReturn:
		t.CarriageReturn()
	case LineFeed, NextLine:
		t.LineFeed()
		if a.Kind == NextLine {
			t.CarriageReturn()
		}
	case Index:
		t.Index()
	case ReverseIndex:
		t.ReverseIndex()

	case CursorUp:
		t.CursorUp(count1(a.Count))
	case CursorDown:
		t.CursorDown(count1(a.Count))
	case CursorLeft:
		t.CursorLeft(count1(a.Count))
	case CursorRight:
		t.CursorRight(count1(a.Count))
	case CursorPos:
		t.SetCursorPos(a.Row, a.Col)
	case CursorCol:
		t.SetCursorCol(a.Col)
	case CursorRow:
		t.SetCursorRow(a.Row)
	case CursorColRelative:
		t.MoveCursorColRelative(a.Col)
	case CursorRowRelative:
		t.MoveCursorRowRelative(a.Row)
	case CursorStyleSet:
		t.SetCursorShape(a.CursorShape, a.CursorBlink)

	case EraseDisplay:
		t.EraseDisplay(a.EraseDisplay, a.Selective)
	case EraseLine:
		if a.EraseLine == EraseLineRightUnlessPendingWrap && t.AtPendingWrap() {
			// A pending autowrap means the last printed cell is logically
			// part of the next line already; erasing "from here right"
			// would clear a line the cursor hasn't actually reached yet.
			break
		}
		t.EraseLine(a.EraseLine, a.Selective)

	case DeleteChars:
		t.DeleteChars(count1(a.Count))
	case EraseChars:
		t.EraseChars(count1(a.Count))
	case InsertLines:
		t.InsertLines(count1(a.Count))
	case InsertBlanks:
		t.InsertBlanks(count1(a.Count))
	case DeleteLines:
		t.DeleteLines(count1(a.Count))
	case ScrollUp:
		t.ScrollUp(count1(a.Count))
	case ScrollDown:
		t.ScrollDown(count1(a.Count))

	case HorizontalTab:
		n := count1(a.Count)
		for i := 0; i < n; i++ {
			if !t.HorizontalTab(1) {
				break
			}
		}
	case HorizontalTabBack:
		n := count1(a.Count)
		for i := 0; i < n; i++ {
			if !t.HorizontalTabBack(1) {
				break
			}
		}
	case TabClearCurrent:
		t.TabClear(TabClearCurrentColumn)
	case TabClearAll:
		t.TabClear(TabClearAllColumns)
	case TabSet:
		t.TabSet()
	case TabReset:
		t.TabReset()

	case SetMode:
		return d.applyMode(t, a.Mode, true)
	case ResetMode:
		return d.applyMode(t, a.Mode, false)
	case SaveMode:
		t.Modes().Save(a.Mode)
	case RestoreMode:
		v := t.Modes().Restore(a.Mode)
		return d.runModeSideEffect(t, a.Mode, v)

	case TopAndBottomMargin:
		t.SetTopAndBottomMargin(a.Top, a.Bottom)
	case LeftAndRightMargin:
		t.SetLeftAndRightMargin(a.Left, a.Right)
	case AmbiguousCSIs:
		if t.Modes().Get(mode.EnableLeftRightMargin) {
			t.SetLeftAndRightMargin(a.Left, a.Right)
		} else {
			t.SaveCursor()
		}

	case SaveCursor:
		t.SaveCursor()
	case RestoreCursor:
		t.RestoreCursor()

	case InvokeCharset:
		t.InvokeCharset(a.CharsetSlot, a.Locking)
	case ConfigureCharset:
		t.ConfigureCharset(a.CharsetSlot, a.CharsetSet)

	case SetAttribute:
		t.SetAttribute(a.Attr, a.AttrColor)

	case SetProtectedMode:
		t.SetProtectedMode(a.Protected)
	case MouseShiftCapture:
		t.SetMouseShiftCapture(a.MouseCapture)

	case KittyPush:
		t.KittyKeyboard().Push(a.KittyFlags)
	case KittyPop:
		t.KittyKeyboard().Pop(countOrDefault(a.PopCount, 1))
	case KittySet:
		t.KittyKeyboard().Apply(mode.KittySet, a.KittyFlags)
	case KittySetOr:
		t.KittyKeyboard().Apply(mode.KittyOr, a.KittyFlags)
	case KittySetNot:
		t.KittyKeyboard().Apply(mode.KittyNot, a.KittyFlags)

	case ModifyKeyFormat:
		t.SetModifyKeyFormat(a.OtherKeysNumeric)
	case ActiveStatusDisplay:
		t.SetActiveStatusDisplay(a.StatusDisplay)

	case Decaln:
		t.Decaln()
	case FullReset:
		return t.FullReset()

	case SwitchScreenMode:
		if a.Enabled {
			return t.EnterAltScreen(a.ScreenMode)
		}
		t.LeaveAltScreen(a.ScreenMode)
	case Deccolm:
		return t.Deccolm(a.Deccolm132)

	case PromptStart:
		t.MarkPromptStart(a.ShellRedrawsPrompt)
	case PromptContinuation:
		t.MarkPromptContinuation()
	case PromptEnd:
		t.MarkPromptEnd()
	case EndOfInput:
		t.MarkEndOfInput()
	case EndOfCommand:
		t.MarkEndOfCommand(a.ExitCode)

	case StartHyperlink:
		_ = t.StartHyperlink(a.URI, a.ID)
	case EndHyperlink:
		t.EndHyperlink()

	case MouseShape:
		t.SetMouseShape(a.MouseShape)

	case OSCColor:
		d.applyColorRequests(t, a.ColorRequests)

	case DCS, APC, Bell, Enquiry, RequestMode, SizeReport, XTVersion,
		DeviceAttributes, DeviceStatus, KittyKeyboardQuery, KittyColorReport,
		WindowTitleQuery, ReportPWD, ShowDesktopNotification, ProgressReport,
		ClipboardContents, TitlePush, TitlePop:
		// Accepted no-ops: the spec reserves these Kinds so an external
		// parser has somewhere to route them, but this dispatcher has no
		// observable response channel wired to them.

	default:
		return fmt.Errorf("%w: %d", ErrInvalidAction, a.Kind)
	}
	return nil
}

func count1(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func countOrDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// applyMode writes m's bit and runs whatever side effect the spec attaches
// to that mode's transition, per the set_mode/reset_mode side-effect table.
func (d *Dispatcher) applyMode(t Target, m mode.Mode, v bool) error {
	t.Modes().Set(m, v)
	return d.runModeSideEffect(t, m, v)
}

// runModeSideEffect applies the follow-up state change a mode's new value
// requires. It is shared between set/reset and restore, since restoring a
// mode to a value must reapply the same side effect a direct set to that
// value would have.
func (d *Dispatcher) runModeSideEffect(t Target, m mode.Mode, v bool) error {
	switch m {
	case mode.Origin:
		t.HomeCursor()
	case mode.EnableLeftRightMargin:
		if !v {
			t.ResetLeftRightMargin()
		}
	case mode.AltScreenLegacy:
		if v {
			return t.EnterAltScreen(ScreenModeAltLegacy)
		}
		t.LeaveAltScreen(ScreenModeAltLegacy)
	case mode.AltScreen:
		if v {
			return t.EnterAltScreen(ScreenModeAlt)
		}
		t.LeaveAltScreen(ScreenModeAlt)
	case mode.AltScreenSaveCursorClearEnter:
		if v {
			return t.EnterAltScreen(ScreenModeAltSaveCursorClear)
		}
		t.LeaveAltScreen(ScreenModeAltSaveCursorClear)
	case mode.SaveCursorPrivate:
		if v {
			t.SaveCursor()
		} else {
			t.RestoreCursor()
		}
	case mode.Column132:
		return t.Deccolm(v)
	case mode.MouseEventX10:
		if v {
			t.SetMouseEvent(MouseEventX10)
		} else {
			t.SetMouseEvent(MouseEventNone)
		}
	case mode.MouseEventNormal:
		if v {
			t.SetMouseEvent(MouseEventNormal)
		} else {
			t.SetMouseEvent(MouseEventNone)
		}
	case mode.MouseEventButton:
		if v {
			t.SetMouseEvent(MouseEventButton)
		} else {
			t.SetMouseEvent(MouseEventNone)
		}
	case mode.MouseEventAny:
		if v {
			t.SetMouseEvent(MouseEventAny)
		} else {
			t.SetMouseEvent(MouseEventNone)
		}
	case mode.MouseFormatUTF8:
		if v {
			t.SetMouseFormat(MouseFormatUTF8)
		} else {
			t.SetMouseFormat(MouseFormatX10)
		}
	case mode.MouseFormatSGR:
		if v {
			t.SetMouseFormat(MouseFormatSGR)
		} else {
			t.SetMouseFormat(MouseFormatX10)
		}
	case mode.MouseFormatURXVT:
		if v {
			t.SetMouseFormat(MouseFormatURXVT)
		} else {
			t.SetMouseFormat(MouseFormatX10)
		}
	case mode.MouseFormatSGRPixels:
		if v {
			t.SetMouseFormat(MouseFormatSGRPixels)
		} else {
			t.SetMouseFormat(MouseFormatX10)
		}
	case mode.MouseShiftCapture:
		t.SetMouseShiftCapture(v)
	}
	return nil
}

// applyColorRequests implements the OSC 4/104/dynamic-color contract:
// each request either overrides a palette slot (masking it), rolls a slot
// back to default (unmasking it), rolls back every masked slot, or is a
// query this dispatcher has no response channel for and so ignores.
func (d *Dispatcher) applyColorRequests(t Target, reqs []ColorRequest) {
	p := t.Palette()
	for _, r := range reqs {
		switch r.Kind {
		case ColorRequestSet:
			if r.Target.Kind == ColorTargetPalette && r.Target.Index >= 0 && r.Target.Index < 256 {
				p.Set(r.Target.Index, colorToRGB(r.Color))
			}
		case ColorRequestReset:
			if r.Target.Kind == ColorTargetPalette && r.Target.Index >= 0 && r.Target.Index < 256 {
				p.Reset(r.Target.Index)
			}
		case ColorRequestResetPalette:
			p.ResetAll()
		case ColorRequestQuery, ColorRequestResetSpecial:
			// No response channel wired; the caller that wants OSC
			// query replies observes Palette() directly instead.
		}
	}
}
