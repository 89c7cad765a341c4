package vtcore

import (
	"testing"

	"github.com/kestrel-term/vtcore/action"
	"github.com/kestrel-term/vtcore/mode"
	"github.com/kestrel-term/vtcore/style"
)

func TestNewDefaults(t *testing.T) {
	term := New()
	if term.Rows() != DefaultRows || term.Cols() != DefaultCols {
		t.Fatalf("dims = %d,%d, want %d,%d", term.Rows(), term.Cols(), DefaultRows, DefaultCols)
	}
	if !term.CursorVisible() {
		t.Error("expected cursor visible by default")
	}
	if term.IsAlternateScreen() {
		t.Error("expected primary screen active by default")
	}
}

func TestNewWithSize(t *testing.T) {
	term := New(WithSize(10, 40))
	if term.Rows() != 10 || term.Cols() != 40 {
		t.Fatalf("dims = %d,%d, want 10,40", term.Rows(), term.Cols())
	}
}

func TestPrintAdvancesCursor(t *testing.T) {
	term := New(WithSize(5, 5))
	term.Print('a')
	row, col := term.CursorPos()
	if row != 0 || col != 1 {
		t.Fatalf("cursor = %d,%d, want 0,1", row, col)
	}
	cell, ok := term.Cell(0, 0)
	if !ok || cell.Char != 'a' {
		t.Fatalf("cell(0,0) = %+v, want 'a'", cell)
	}
}

func TestPrintWrapsAtMargin(t *testing.T) {
	term := New(WithSize(3, 3))
	term.Print('a')
	term.Print('b')
	term.Print('c')
	if !term.AtPendingWrap() {
		t.Fatal("expected pending wrap after filling the last column")
	}
	term.Print('d')
	row, col := term.CursorPos()
	if row != 1 || col != 1 {
		t.Fatalf("cursor after wrap-print = %d,%d, want 1,1", row, col)
	}
	cell, _ := term.Cell(1, 0)
	if cell.Char != 'd' {
		t.Fatalf("cell(1,0) = %q, want 'd'", cell.Char)
	}
}

func TestPrintRepeatsLastRune(t *testing.T) {
	term := New(WithSize(5, 5))
	term.Print('x')
	term.PrintRepeat(3)
	for col := 1; col <= 3; col++ {
		cell, _ := term.Cell(0, col)
		if cell.Char != 'x' {
			t.Fatalf("cell(0,%d) = %q, want 'x'", col, cell.Char)
		}
	}
}

func TestLineFeedScrollsAtBottomMargin(t *testing.T) {
	term := New(WithSize(2, 3))
	term.Print('a')
	term.LineFeed()
	term.CarriageReturn()
	term.Print('b')
	term.LineFeed()
	// Printing 'b' on the last row and linefeeding again scrolls the
	// buffer up by one: 'b' moves from row 1 to row 0, and row 1 is blank.
	cell, _ := term.Cell(0, 0)
	if cell.Char != 'b' {
		t.Fatalf("cell(0,0) = %q, want 'b' after scroll", cell.Char)
	}
	cell1, _ := term.Cell(1, 0)
	if cell1.Char != ' ' {
		t.Fatalf("cell(1,0) = %q, want blank after scroll", cell1.Char)
	}
}

func TestSetCursorPosOriginMode(t *testing.T) {
	term := New(WithSize(10, 10))
	term.SetTopAndBottomMargin(2, 8)
	term.Modes().Set(mode.Origin, true)
	term.SetCursorPos(0, 0)
	row, col := term.CursorPos()
	if row != 2 || col != 0 {
		t.Fatalf("origin-relative cursor = %d,%d, want 2,0", row, col)
	}
}

func TestSaveRestoreCursor(t *testing.T) {
	term := New(WithSize(10, 10))
	term.SetCursorPos(3, 4)
	term.SaveCursor()
	term.SetCursorPos(0, 0)
	term.RestoreCursor()
	row, col := term.CursorPos()
	if row != 3 || col != 4 {
		t.Fatalf("restored cursor = %d,%d, want 3,4", row, col)
	}
}

func TestEnterLeaveAltScreenSavesCursor(t *testing.T) {
	term := New(WithSize(10, 10))
	term.SetCursorPos(5, 5)
	if err := term.EnterAltScreen(action.ScreenModeAltSaveCursorClear); err != nil {
		t.Fatalf("EnterAltScreen: %v", err)
	}
	if !term.IsAlternateScreen() {
		t.Fatal("expected alternate screen active")
	}
	row, col := term.CursorPos()
	if row != 0 || col != 0 {
		t.Fatalf("cursor after alt-screen entry = %d,%d, want 0,0", row, col)
	}

	term.LeaveAltScreen(action.ScreenModeAltSaveCursorClear)
	if term.IsAlternateScreen() {
		t.Fatal("expected primary screen restored")
	}
	row, col = term.CursorPos()
	if row != 5 || col != 5 {
		t.Fatalf("cursor after alt-screen exit = %d,%d, want 5,5", row, col)
	}
}

func TestDecalnFillsScreen(t *testing.T) {
	term := New(WithSize(3, 3))
	term.Decaln()
	cell, _ := term.Cell(1, 1)
	if cell.Char != 'E' {
		t.Fatalf("cell(1,1) = %q, want 'E'", cell.Char)
	}
	row, col := term.CursorPos()
	if row != 0 || col != 0 {
		t.Fatalf("cursor after DECALN = %d,%d, want 0,0", row, col)
	}
}

func TestDeccolmResizes(t *testing.T) {
	term := New(WithSize(24, 80))
	if err := term.Deccolm(true); err != nil {
		t.Fatalf("Deccolm: %v", err)
	}
	if term.Cols() != 132 {
		t.Fatalf("cols = %d, want 132", term.Cols())
	}
	if err := term.Deccolm(false); err != nil {
		t.Fatalf("Deccolm: %v", err)
	}
	if term.Cols() != 80 {
		t.Fatalf("cols = %d, want 80", term.Cols())
	}
}

func TestFullResetClearsState(t *testing.T) {
	term := New(WithSize(5, 5))
	term.Print('x')
	term.SetAttribute(action.AttrBold, style.Color{})
	term.SetTitle("hello")
	if err := term.FullReset(); err != nil {
		t.Fatalf("FullReset: %v", err)
	}
	if term.Title() != "" {
		t.Fatalf("title = %q, want cleared by FullReset", term.Title())
	}
	cell, _ := term.Cell(0, 0)
	if cell.Char != ' ' {
		t.Fatalf("cell(0,0) after FullReset = %q, want space", cell.Char)
	}
	row, col := term.CursorPos()
	if row != 0 || col != 0 {
		t.Fatalf("cursor after FullReset = %d,%d, want 0,0", row, col)
	}
}

func TestSetAttributeDeduplicatesStyles(t *testing.T) {
	term := New(WithSize(5, 5))
	term.SetAttribute(action.AttrBold, style.Color{})
	term.Print('a')
	term.Print('b')
	cellA, _ := term.Cell(0, 0)
	cellB, _ := term.Cell(0, 1)
	if cellA.Style != cellB.Style {
		t.Fatalf("expected identical styles to dedupe to the same id, got %d and %d", cellA.Style, cellB.Style)
	}
	resolved := term.CellStyle(cellA.Style)
	if !resolved.HasFlag(style.FlagBold) {
		t.Fatal("expected resolved style to carry bold flag")
	}
}

func TestLineDrawingCharsetTranslatesOnPrint(t *testing.T) {
	term := New(WithSize(5, 5))
	term.ConfigureCharset(action.G0, action.CharsetLineDrawing)
	term.Print('q')
	cell, _ := term.Cell(0, 0)
	if cell.Char != '─' {
		t.Fatalf("cell(0,0) = %q, want box-drawing horizontal", cell.Char)
	}
}

func TestSingleShiftAppliesToOneRune(t *testing.T) {
	term := New(WithSize(5, 5))
	term.ConfigureCharset(action.G2, action.CharsetLineDrawing)
	term.InvokeCharset(action.G2, false) // single shift
	term.Print('x')
	term.Print('x')
	first, _ := term.Cell(0, 0)
	second, _ := term.Cell(0, 1)
	if first.Char != '│' {
		t.Fatalf("cell(0,0) = %q, want box-drawing vertical", first.Char)
	}
	if second.Char != 'x' {
		t.Fatalf("cell(0,1) = %q, want plain 'x' after single shift expires", second.Char)
	}
}

func TestSelectiveEraseSkipsProtectedCells(t *testing.T) {
	term := New(WithSize(5, 10))
	term.Print('a')
	term.SetProtectedMode(action.ProtectedDEC)
	term.Print('b')
	term.SetProtectedMode(action.ProtectedOff)
	term.Print('c')

	term.SetCursorPos(0, 0)
	term.EraseLine(action.EraseLineComplete, true)
	if got := term.LineContent(0); got != " b" {
		t.Fatalf("LineContent after selective erase = %q, want %q", got, " b")
	}

	term.EraseLine(action.EraseLineComplete, false)
	if got := term.LineContent(0); got != "" {
		t.Fatalf("LineContent after plain erase = %q, want empty", got)
	}
}

func TestWideRuneWritesSpacerWithOwnStyleRef(t *testing.T) {
	term := New(WithSize(5, 10))
	term.SetAttribute(action.AttrBold, style.Color{})
	term.Print('中')
	wide, _ := term.Cell(0, 0)
	spacer, _ := term.Cell(0, 1)
	if !wide.IsWide() || !spacer.IsWideSpacer() {
		t.Fatalf("expected wide+spacer pair, got %+v / %+v", wide, spacer)
	}
	_, col := term.CursorPos()
	if col != 2 {
		t.Fatalf("cursor col after wide rune = %d, want 2", col)
	}
	// Erasing the line must drop both references cleanly.
	term.EraseLine(action.EraseLineComplete, false)
	if got := term.styles.RefCount(wide.Style); got != 0 {
		t.Fatalf("refcount after erasing wide pair = %d, want 0", got)
	}
}

func TestPrintSurfacesStyleSetExhaustion(t *testing.T) {
	term := New(WithSize(5, 10), WithStyleCapacity(1))
	term.SetAttribute(action.AttrBold, style.Color{})
	if err := term.Print('a'); err != nil {
		t.Fatalf("first styled print: %v", err)
	}
	term.SetAttribute(action.AttrItalic, style.Color{})
	if err := term.Print('b'); err != style.ErrOutOfSpace {
		t.Fatalf("second distinct style err = %v, want ErrOutOfSpace", err)
	}
}

func TestDecalnResetsMargins(t *testing.T) {
	term := New(WithSize(10, 10))
	term.SetTopAndBottomMargin(2, 8)
	term.Decaln()
	top, bottom := term.ScrollRegion()
	if top != 0 || bottom != 10 {
		t.Fatalf("scroll region after DECALN = %d,%d, want 0,10", top, bottom)
	}
}

func TestTabResetRestoresDefaultStops(t *testing.T) {
	term := New(WithSize(5, 20))
	term.SetCursorPos(0, 5)
	term.TabSet()
	term.TabReset()
	term.SetCursorPos(0, 0)
	term.HorizontalTab(1)
	_, col := term.CursorPos()
	if col != 8 {
		t.Fatalf("cursor after tab = %d, want 8 (custom stop discarded)", col)
	}
}

func TestAutoResizeGrowsInsteadOfWrapping(t *testing.T) {
	term := New(WithSize(2, 3), WithAutoResize())
	for _, r := range "abcde" {
		if err := term.Print(r); err != nil {
			t.Fatalf("Print(%q): %v", r, err)
		}
	}
	if got := term.LineContent(0); got != "abcde" {
		t.Fatalf("LineContent = %q, want %q (row grown, not wrapped)", got, "abcde")
	}
	row, _ := term.CursorPos()
	if row != 0 {
		t.Fatalf("cursor row = %d, want 0", row)
	}

	term.LineFeed()
	term.LineFeed() // at the bottom: growth mode appends a row
	if term.Rows() != 3 {
		t.Fatalf("rows = %d, want 3 after growth", term.Rows())
	}
	if got := term.LineContent(0); got != "abcde" {
		t.Fatalf("LineContent after growth = %q, want content retained", got)
	}
}

func TestHyperlinkStartEnd(t *testing.T) {
	term := New(WithSize(5, 5))
	if err := term.StartHyperlink("https://example.com", "id1"); err != nil {
		t.Fatalf("StartHyperlink: %v", err)
	}
	term.Print('a')
	cell, _ := term.Cell(0, 0)
	if cell.Hyperlink == nil || cell.Hyperlink.URI != "https://example.com" {
		t.Fatalf("cell hyperlink = %+v, want URI set", cell.Hyperlink)
	}
	term.EndHyperlink()
	term.Print('b')
	cell2, _ := term.Cell(0, 1)
	if cell2.Hyperlink != nil {
		t.Fatalf("expected no hyperlink after EndHyperlink, got %+v", cell2.Hyperlink)
	}
}

func TestSemanticPromptMarks(t *testing.T) {
	term := New(WithSize(5, 5))
	term.MarkPromptStart(false)
	term.MarkPromptEnd()
	term.MarkEndOfInput()
	term.MarkEndOfCommand(0)
	marks := term.PromptMarks()
	if len(marks) != 4 {
		t.Fatalf("mark count = %d, want 4", len(marks))
	}
	if marks[3].Phase != PromptPhaseEndOfCommand || marks[3].ExitCode != 0 {
		t.Fatalf("last mark = %+v, want end-of-command with exit code 0", marks[3])
	}
}

func TestMarkPromptStartRecordsShellRedrawsPrompt(t *testing.T) {
	term := New(WithSize(5, 5))
	term.MarkPromptStart(true)
	if !term.ShellRedrawsPrompt() {
		t.Fatal("expected shell_redraws_prompt latched true")
	}
	term.MarkPromptStart(false)
	if term.ShellRedrawsPrompt() {
		t.Fatal("expected shell_redraws_prompt latched false on next prompt_start")
	}
}

func TestTitlePushPop(t *testing.T) {
	term := New(WithSize(5, 5))
	term.SetTitle("first")
	term.PushTitle()
	term.SetTitle("second")
	term.PopTitle()
	if term.Title() != "first" {
		t.Fatalf("title after pop = %q, want %q", term.Title(), "first")
	}
}

func TestDispatcherEndToEndScenario(t *testing.T) {
	term := New(WithSize(5, 10))
	d := action.NewDispatcher()

	actions := []action.Action{
		{Kind: action.CursorPos, Row: 0, Col: 0},
		{Kind: action.Print, Rune: 'h'},
		{Kind: action.Print, Rune: 'i'},
		{Kind: action.SetAttribute, Attr: action.AttrBold},
		{Kind: action.Print, Rune: '!'},
		{Kind: action.SetAttribute, Attr: action.AttrReset},
		{Kind: action.CarriageReturn},
		{Kind: action.LineFeed},
	}
	for _, a := range actions {
		if err := d.Dispatch(term, a); err != nil {
			t.Fatalf("Dispatch(%v): %v", a.Kind, err)
		}
	}

	if got := term.LineContent(0); got != "hi!" {
		t.Fatalf("LineContent(0) = %q, want %q", got, "hi!")
	}
	row, col := term.CursorPos()
	if row != 1 || col != 0 {
		t.Fatalf("cursor after scenario = %d,%d, want 1,0", row, col)
	}

	boldCell, _ := term.Cell(0, 2)
	resolved := term.CellStyle(boldCell.Style)
	if !resolved.HasFlag(style.FlagBold) {
		t.Fatal("expected '!' cell to carry the bold style")
	}
}

func dispatchAll(t *testing.T, term *Terminal, actions []action.Action) {
	t.Helper()
	d := action.NewDispatcher()
	for _, a := range actions {
		if err := d.Dispatch(term, a); err != nil {
			t.Fatalf("Dispatch(%v): %v", a.Kind, err)
		}
	}
}

func printActions(s string) []action.Action {
	actions := make([]action.Action, 0, len(s))
	for _, r := range s {
		actions = append(actions, action.Action{Kind: action.Print, Rune: r})
	}
	return actions
}

// Scenario: writing text then erasing from mid-line to the right leaves
// only the prefix.
func TestScenarioEraseToEndOfLine(t *testing.T) {
	term := New(WithSize(10, 20))
	dispatchAll(t, term, printActions("Hello World"))
	dispatchAll(t, term, []action.Action{
		{Kind: action.CursorPos, Row: 0, Col: 5},
		{Kind: action.EraseLine, EraseLine: action.EraseLineRight},
	})
	if got := term.LineContent(0); got != "Hello" {
		t.Fatalf("LineContent = %q, want %q", got, "Hello")
	}
}

// Scenario: a tab lands on the next default stop.
func TestScenarioTabStop(t *testing.T) {
	term := New(WithSize(10, 80))
	dispatchAll(t, term, []action.Action{
		{Kind: action.Print, Rune: 'A'},
		{Kind: action.HorizontalTab, Count: 1},
		{Kind: action.Print, Rune: 'B'},
	})
	if got := term.LineContent(0); got != "A       B" {
		t.Fatalf("LineContent = %q, want %q", got, "A       B")
	}
	_, col := term.CursorPos()
	if col != 9 {
		t.Fatalf("cursor col = %d, want 9", col)
	}
}

// Scenario: DECSTBM narrows the scroll region without touching the
// horizontal margins.
func TestScenarioScrollRegionSet(t *testing.T) {
	term := New(WithSize(24, 80))
	dispatchAll(t, term, []action.Action{
		{Kind: action.TopAndBottomMargin, Top: 4, Bottom: 20},
	})
	top, bottom := term.ScrollRegion()
	if top != 4 || bottom != 20 {
		t.Fatalf("scroll region = %d,%d, want 4,20", top, bottom)
	}
	left, right := term.LeftRightMargin()
	if left != 0 || right != 79 {
		t.Fatalf("margins = %d,%d, want 0,79", left, right)
	}
}

// Scenario: RIS undoes cursor motion, a narrowed scroll region, and a
// disabled wraparound in one stroke.
func TestScenarioFullResetRestoresDefaults(t *testing.T) {
	term := New(WithSize(24, 80))
	actions := printActions("Hello")
	actions = append(actions,
		action.Action{Kind: action.CursorPos, Row: 9, Col: 19},
		action.Action{Kind: action.TopAndBottomMargin, Top: 4, Bottom: 20},
		action.Action{Kind: action.ResetMode, Mode: mode.LineWrap},
	)
	dispatchAll(t, term, actions)
	if term.Modes().Get(mode.LineWrap) {
		t.Fatal("expected wraparound off before reset")
	}

	dispatchAll(t, term, []action.Action{{Kind: action.FullReset}})
	row, col := term.CursorPos()
	if row != 0 || col != 0 {
		t.Fatalf("cursor after RIS = %d,%d, want 0,0", row, col)
	}
	top, bottom := term.ScrollRegion()
	if top != 0 || bottom != 24 {
		t.Fatalf("scroll region after RIS = %d,%d, want 0,24", top, bottom)
	}
	if !term.Modes().Get(mode.LineWrap) {
		t.Fatal("expected wraparound restored by RIS")
	}
}

// Property: any mix of relative motions keeps the cursor on-screen, even
// with extreme counts.
func TestCursorStaysInBounds(t *testing.T) {
	term := New(WithSize(24, 80))
	moves := []action.Action{
		{Kind: action.CursorDown, Count: 1 << 30},
		{Kind: action.CursorRight, Count: 1 << 30},
		{Kind: action.CursorRowRelative, Row: int(^uint(0) >> 1)},
		{Kind: action.CursorColRelative, Col: int(^uint(0) >> 1)},
		{Kind: action.CursorUp, Count: 1 << 30},
		{Kind: action.CursorColRelative, Col: -(1 << 62)},
	}
	dispatchAll(t, term, moves)
	row, col := term.CursorPos()
	if row < 0 || row >= 24 || col < 0 || col >= 80 {
		t.Fatalf("cursor escaped bounds: %d,%d", row, col)
	}
}

// Scenario: DECSLRM narrows the margins, then scroll_up moves only the
// cells between them; columns outside stay put.
func TestScenarioMarginBoundedScroll(t *testing.T) {
	term := New(WithSize(3, 10))
	dispatchAll(t, term, printActions("ABCDEFGHIJ"))
	dispatchAll(t, term, []action.Action{{Kind: action.CursorPos, Row: 1, Col: 0}})
	dispatchAll(t, term, printActions("abcdefghij"))

	dispatchAll(t, term, []action.Action{
		{Kind: action.SetMode, Mode: mode.EnableLeftRightMargin},
		{Kind: action.LeftAndRightMargin, Left: 2, Right: 7},
		{Kind: action.ScrollUp, Count: 1},
	})

	if got := term.LineContent(0); got != "ABcdefghIJ" {
		t.Fatalf("row 0 = %q, want %q", got, "ABcdefghIJ")
	}
	if got := term.LineContent(1); got != "ab      ij" {
		t.Fatalf("row 1 = %q, want %q", got, "ab      ij")
	}
}

// Scenario: delete_chars and insert_blanks shift only within the DECSLRM
// margins.
func TestScenarioMarginBoundedInsertDelete(t *testing.T) {
	term := New(WithSize(3, 10))
	dispatchAll(t, term, printActions("0123456789"))
	dispatchAll(t, term, []action.Action{
		{Kind: action.SetMode, Mode: mode.EnableLeftRightMargin},
		{Kind: action.LeftAndRightMargin, Left: 2, Right: 7},
		{Kind: action.CursorPos, Row: 0, Col: 3},
		{Kind: action.DeleteChars, Count: 2},
	})
	if got := term.LineContent(0); got != "012567  89" {
		t.Fatalf("after delete_chars = %q, want %q", got, "012567  89")
	}

	dispatchAll(t, term, []action.Action{
		{Kind: action.InsertBlanks, Count: 1},
	})
	if got := term.LineContent(0); got != "012 567 89" {
		t.Fatalf("after insert_blanks = %q, want %q", got, "012 567 89")
	}
}

// Scenario: erase_chars stops at the right margin.
func TestScenarioEraseCharsStopsAtRightMargin(t *testing.T) {
	term := New(WithSize(3, 10))
	dispatchAll(t, term, printActions("0123456789"))
	dispatchAll(t, term, []action.Action{
		{Kind: action.SetMode, Mode: mode.EnableLeftRightMargin},
		{Kind: action.LeftAndRightMargin, Left: 2, Right: 7},
		{Kind: action.CursorPos, Row: 0, Col: 5},
		{Kind: action.EraseChars, Count: 4},
	})
	if got := term.LineContent(0); got != "01234   89" {
		t.Fatalf("after erase_chars = %q, want %q", got, "01234   89")
	}
}

// Scenario: insert_lines/delete_lines respect the margins both ways: the
// shift happens only between them, and a cursor outside them is a no-op.
func TestScenarioMarginBoundedLineEditing(t *testing.T) {
	term := New(WithSize(3, 10))
	dispatchAll(t, term, printActions("ABCDEFGHIJ"))
	dispatchAll(t, term, []action.Action{{Kind: action.CursorPos, Row: 1, Col: 0}})
	dispatchAll(t, term, printActions("abcdefghij"))

	dispatchAll(t, term, []action.Action{
		{Kind: action.SetMode, Mode: mode.EnableLeftRightMargin},
		{Kind: action.LeftAndRightMargin, Left: 2, Right: 7},
		{Kind: action.CursorPos, Row: 0, Col: 3},
		{Kind: action.InsertLines, Count: 1},
	})
	if got := term.LineContent(0); got != "AB      IJ" {
		t.Fatalf("row 0 after insert_lines = %q, want %q", got, "AB      IJ")
	}
	if got := term.LineContent(1); got != "abCDEFGHij" {
		t.Fatalf("row 1 after insert_lines = %q, want %q", got, "abCDEFGHij")
	}

	dispatchAll(t, term, []action.Action{
		{Kind: action.DeleteLines, Count: 1},
	})
	if got := term.LineContent(0); got != "ABCDEFGHIJ" {
		t.Fatalf("row 0 after delete_lines = %q, want %q", got, "ABCDEFGHIJ")
	}

	// A cursor left of the margin makes line editing a no-op.
	dispatchAll(t, term, []action.Action{
		{Kind: action.CursorPos, Row: 0, Col: 0},
		{Kind: action.DeleteLines, Count: 1},
	})
	if got := term.LineContent(0); got != "ABCDEFGHIJ" {
		t.Fatalf("row 0 after out-of-margin delete_lines = %q, want unchanged", got)
	}
}

func TestDispatcherAmbiguousCSIsRespectsMarginMode(t *testing.T) {
	term := New(WithSize(10, 20))
	d := action.NewDispatcher()

	term.SetCursorPos(3, 3)
	if err := d.Dispatch(term, action.Action{Kind: action.AmbiguousCSIs, Left: 1, Right: 10}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	left, right := term.LeftRightMargin()
	if left != 0 || right != 19 {
		t.Fatalf("margins changed unexpectedly to %d,%d", left, right)
	}

	if err := d.Dispatch(term, action.Action{Kind: action.SetMode, Mode: mode.EnableLeftRightMargin}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if err := d.Dispatch(term, action.Action{Kind: action.AmbiguousCSIs, Left: 1, Right: 10}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	left, right = term.LeftRightMargin()
	if left != 1 || right != 10 {
		t.Fatalf("margins = %d,%d, want 1,10", left, right)
	}
}
