package vtcore

import (
	"fmt"
	"math"
	"sync"

	"github.com/kestrel-term/vtcore/action"
	"github.com/kestrel-term/vtcore/mode"
	"github.com/kestrel-term/vtcore/style"
)

// Ensure Terminal implements action.Target.
var _ action.Target = (*Terminal)(nil)

const (
	// DefaultRows is the terminal height used when WithSize is not given.
	DefaultRows = 24
	// DefaultCols is the terminal width used when WithSize is not given.
	DefaultCols = 80
	// defaultStyleCapacity is the style.Set capacity used when
	// WithStyleCapacity is not given: comfortably more than a single
	// 24x80 screen's worth of distinct styles.
	defaultStyleCapacity = 4096
)

// Terminal emulates a VT-compatible terminal's state: dual primary/
// alternate buffers, cursor, scrolling region (including the left/right
// margins DECSLRM adds on top of the classic top/bottom region), charset
// banks, modes, kitty keyboard flags, a ref-counted style set, and a
// customizable 256-color palette. It implements action.Target, so a
// Dispatcher can apply a stream of Actions directly to it. Most exported
// methods take an internal lock, but the registry, kitty stack, and palette
// returned by Modes, KittyKeyboard, and Palette are mutated without it, so
// one Terminal must not be dispatched onto from several goroutines at once.
type Terminal struct {
	mu sync.RWMutex

	rows, cols int

	primaryBuffer, alternateBuffer, activeBuffer *Buffer

	cursor      *Cursor
	savedCursor *SavedCursor

	template style.Style // attribute template applied to the next printed cell

	charsets          [4]action.CharsetSet
	activeCharsetSlot action.CharsetSlot
	singleShift       *action.CharsetSlot

	scrollTop, scrollBottom int
	marginLeft, marginRight int

	modes *mode.Registry
	kitty *mode.KittyKeyboardStack

	protected action.ProtectedMode

	title      string
	titleStack []string

	styles   *style.Set
	styleBuf []byte
	palette  *style.Palette

	currentHyperlink *Hyperlink

	otherKeysNumeric bool
	statusDisplay    int

	mouseEvent        action.MouseEventKind
	mouseFormat       action.MouseFormatKind
	mouseShiftCapture bool
	// mouseShiftCaptureSet distinguishes an explicit false from the
	// never-touched initial state.
	mouseShiftCaptureSet bool
	mouseShape           string

	shellRedrawsPrompt bool

	promptMarks []PromptMark

	autoResize bool

	responseProvider  ResponseProvider
	bellProvider      BellProvider
	titleProvider     TitleProvider
	apcProvider       APCProvider
	pmProvider        PMProvider
	sosProvider       SOSProvider
	clipboardProvider ClipboardProvider
	scrollbackStorage ScrollbackProvider
	recordingProvider RecordingProvider

	styleCapacity int
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithSize sets the terminal dimensions. Values <= 0 fall back to the
// defaults (24x80).
func WithSize(rows, cols int) Option {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	return func(t *Terminal) {
		t.rows = rows
		t.cols = cols
	}
}

// WithStyleCapacity sets the number of distinct styles the terminal's
// style.Set can hold simultaneously. Values <= 0 fall back to
// defaultStyleCapacity.
func WithStyleCapacity(capacity int) Option {
	return func(t *Terminal) {
		if capacity > 0 {
			t.styleCapacity = capacity
		}
	}
}

// WithResponse sets the writer for terminal responses.
func WithResponse(p ResponseProvider) Option {
	return func(t *Terminal) { t.responseProvider = p }
}

// WithBell sets the handler for bell events.
func WithBell(p BellProvider) Option {
	return func(t *Terminal) { t.bellProvider = p }
}

// WithTitle sets the handler for window title changes.
func WithTitle(p TitleProvider) Option {
	return func(t *Terminal) { t.titleProvider = p }
}

// WithAPC sets the handler for Application Program Command sequences.
func WithAPC(p APCProvider) Option {
	return func(t *Terminal) { t.apcProvider = p }
}

// WithPM sets the handler for Privacy Message sequences.
func WithPM(p PMProvider) Option {
	return func(t *Terminal) { t.pmProvider = p }
}

// WithSOS sets the handler for Start of String sequences.
func WithSOS(p SOSProvider) Option {
	return func(t *Terminal) { t.sosProvider = p }
}

// WithClipboard sets the handler for clipboard read/write (OSC 52).
func WithClipboard(p ClipboardProvider) Option {
	return func(t *Terminal) { t.clipboardProvider = p }
}

// WithScrollback sets the storage lines scrolled off the top are pushed to.
func WithScrollback(storage ScrollbackProvider) Option {
	return func(t *Terminal) { t.scrollbackStorage = storage }
}

// WithRecording sets the handler for capturing raw input bytes.
func WithRecording(p RecordingProvider) Option {
	return func(t *Terminal) { t.recordingProvider = p }
}

// WithAutoResize enables growth mode: GrowRows/GrowCols expand the active
// buffer instead of scrolling or wrapping when content would overflow it.
func WithAutoResize() Option {
	return func(t *Terminal) { t.autoResize = true }
}

// New constructs a Terminal. Buffers, style set, and palette are built
// after every Option has run, so WithSize and WithStyleCapacity determine
// their dimensions.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		rows:              DefaultRows,
		cols:              DefaultCols,
		bellProvider:      NoopBell{},
		titleProvider:     NoopTitle{},
		apcProvider:       NoopAPC{},
		pmProvider:        NoopPM{},
		sosProvider:       NoopSOS{},
		clipboardProvider: NoopClipboard{},
		recordingProvider: NoopRecording{},
		styleCapacity:     defaultStyleCapacity,
	}
	for _, opt := range opts {
		opt(t)
	}

	layout := style.NewLayout(t.styleCapacity)
	t.styleBuf = make([]byte, layout.BufSize)
	styles, err := style.New(t.styleBuf, layout, style.Config{})
	if err != nil {
		panic(fmt.Sprintf("vtcore: failed to construct style set: %v", err))
	}
	t.styles = styles
	t.palette = style.NewPalette(defaultPaletteColors())

	if t.scrollbackStorage == nil {
		t.scrollbackStorage = NoopScrollback{}
	}
	t.primaryBuffer = NewBufferWithStorage(t.rows, t.cols, t.styles, t.scrollbackStorage)
	t.alternateBuffer = NewBuffer(t.rows, t.cols, t.styles)
	t.activeBuffer = t.primaryBuffer

	t.cursor = NewCursor()
	t.scrollTop = 0
	t.scrollBottom = t.rows
	t.marginLeft = 0
	t.marginRight = t.cols - 1

	t.modes = mode.NewRegistry()
	t.modes.Set(mode.LineWrap, true)
	t.modes.Set(mode.ShowCursor, true)
	t.kitty = mode.NewKittyKeyboardStack()

	t.charsets = [4]action.CharsetSet{action.CharsetASCII, action.CharsetASCII, action.CharsetASCII, action.CharsetASCII}

	return t
}

// Rows returns the terminal height in character rows.
func (t *Terminal) Rows() int { t.mu.RLock(); defer t.mu.RUnlock(); return t.rows }

// Cols returns the terminal width in character columns.
func (t *Terminal) Cols() int { t.mu.RLock(); defer t.mu.RUnlock(); return t.cols }

// Cell returns a copy of the active buffer's cell at (row, col).
func (t *Terminal) Cell(row, col int) (Cell, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c := t.activeBuffer.Cell(row, col)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// CellStyle resolves a cell's style.Id into the concrete Style it names.
func (t *Terminal) CellStyle(id style.Id) style.Style {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.styles.Get(id)
}

// CursorPos returns the cursor's 0-based row and column.
func (t *Terminal) CursorPos() (row, col int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.Row, t.cursor.Col
}

// CursorVisible reports whether the cursor should be rendered.
func (t *Terminal) CursorVisible() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.modes.Get(mode.ShowCursor)
}

// IsAlternateScreen reports whether the alternate buffer is active.
func (t *Terminal) IsAlternateScreen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.activeBuffer == t.alternateBuffer
}

// ScrollRegion returns the current top/bottom scroll margin.
func (t *Terminal) ScrollRegion() (top, bottom int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scrollTop, t.scrollBottom
}

// LeftRightMargin returns the current left/right scroll margin.
func (t *Terminal) LeftRightMargin() (left, right int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.marginLeft, t.marginRight
}

// Title returns the current window title.
func (t *Terminal) Title() string { t.mu.RLock(); defer t.mu.RUnlock(); return t.title }

// LineContent returns the active buffer's row as text.
func (t *Terminal) LineContent(row int) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.activeBuffer.LineContent(row)
}

// String renders every row of the active buffer, newline-joined.
func (t *Terminal) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s := ""
	for row := 0; row < t.activeBuffer.Rows(); row++ {
		if row > 0 {
			s += "\n"
		}
		s += t.activeBuffer.LineContent(row)
	}
	return s
}

// Modes returns the mode registry Dispatcher mutates directly.
func (t *Terminal) Modes() *mode.Registry { return t.modes }

// KittyKeyboard returns the kitty-keyboard flag stack Dispatcher mutates
// directly.
func (t *Terminal) KittyKeyboard() *mode.KittyKeyboardStack { return t.kitty }

// Palette returns the 256-slot color table Dispatcher mutates directly for
// OSC 4/104 and related requests.
func (t *Terminal) Palette() *style.Palette { return t.palette }

// WriteResponse forwards bytes to the response provider, for glue code
// that answers host queries (the dispatcher itself never responds).
func (t *Terminal) WriteResponse(data []byte) {
	if t.responseProvider == nil {
		return
	}
	_, _ = t.responseProvider.Write(data)
}

// --- Printing ---

// charsetForNextRune resolves the charset bank the next printed rune is
// decoded through: a pending single shift consumes itself, otherwise the
// locking-shifted active slot applies.
func (t *Terminal) charsetForNextRune() action.CharsetSet {
	slot := t.activeCharsetSlot
	if t.singleShift != nil {
		slot = *t.singleShift
		t.singleShift = nil
	}
	return t.charsets[slot]
}

// translateCharset maps r through the given charset bank. The DEC special
// graphics set covers the box-drawing range; the UK set differs from ASCII
// only in the pound sign.
func translateCharset(r rune, set action.CharsetSet) rune {
	switch set {
	case action.CharsetLineDrawing:
		return translateLineDrawing(r)
	case action.CharsetUK:
		if r == '#' {
			return '£'
		}
	}
	return r
}

// translateLineDrawing translates characters for the DEC line drawing
// charset.
func translateLineDrawing(r rune) rune {
	switch r {
	case 'j':
		return '┘'
	case 'k':
		return '┐'
	case 'l':
		return '┌'
	case 'm':
		return '└'
	case 'n':
		return '┼'
	case 'q':
		return '─'
	case 't':
		return '├'
	case 'u':
		return '┤'
	case 'v':
		return '┴'
	case 'w':
		return '┬'
	case 'x':
		return '│'
	default:
		return r
	}
}

// Print writes r at the cursor, advancing it (wrapping at the right margin
// when LineWrap is set). Zero-width runes are ignored; wide runes occupy
// two columns and write a spacer cell behind them. The only error is
// style-set exhaustion, which leaves the screen untouched.
func (t *Terminal) Print(r rune) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.printInternal(r)
}

func (t *Terminal) printInternal(r rune) error {
	r = translateCharset(r, t.charsetForNextRune())

	w := runeWidth(r)
	if w == 0 {
		return nil
	}

	// Intern the style first, so exhaustion fails before any wrap, scroll,
	// or growth touches the screen.
	id, err := t.styles.Add(t.template)
	if err != nil {
		return err
	}

	if t.cursor.PendingWrap {
		if t.autoResize && t.marginRight == t.cols-1 {
			// Growth mode widens the row instead of wrapping.
			t.cursor.PendingWrap = false
			t.cursor.Col = t.marginRight + 1
			t.growColsInternal(t.cursor.Col + w)
		} else {
			t.wrapLineInternal()
		}
	}
	if t.autoResize && t.marginRight == t.cols-1 && t.cursor.Col+w > t.cols {
		t.growColsInternal(t.cursor.Col + w)
	}
	if w == 2 && t.cursor.Col+1 > t.marginRight {
		// A wide rune doesn't fit in the last column: wrap it whole, or
		// drop it when wrapping is off.
		if !t.modes.Get(mode.LineWrap) {
			t.styles.Release(id)
			return nil
		}
		t.wrapLineInternal()
	}

	if t.modes.Get(mode.Insert) {
		t.activeBuffer.InsertBlanks(t.cursor.Row, t.cursor.Col, w, t.marginLeft, t.marginRight)
	}

	flags := CellFlags(0)
	if t.protected != action.ProtectedOff {
		flags |= CellFlagProtected
	}

	row, col := t.cursor.Row, t.cursor.Col
	t.activeBuffer.SetCell(row, col, Cell{Char: r, Style: id, Flags: flags, Hyperlink: t.currentHyperlink})
	if w == 2 && col+1 <= t.marginRight {
		// The spacer holds its own reference: releasing either half later
		// must not strand or over-free the shared style.
		spacerID, err := t.styles.Add(t.template)
		if err != nil {
			spacerID = style.Default
		}
		t.activeBuffer.SetCell(row, col+1, Cell{Char: 0, Style: spacerID, Flags: flags | CellFlagWideCharSpacer, Hyperlink: t.currentHyperlink})
		t.activeBuffer.Cell(row, col).SetFlag(CellFlagWideChar)
	}

	if col+w > t.marginRight {
		t.cursor.Col = t.marginRight
		if t.modes.Get(mode.LineWrap) {
			t.cursor.PendingWrap = true
		}
		return nil
	}
	t.cursor.Col = col + w
	return nil
}

// PrintRepeat prints n more copies of the rune Print last wrote (REP,
// CSI b). The rune is read back from the grid at the cursor's preceding
// cell (or the cursor's own cell while a wrap is pending), so after cursor
// motion it repeats whatever that cell holds, and at the left edge it
// prints nothing. Dispatcher has already resolved n to a positive count.
func (t *Terminal) PrintRepeat(n int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, col := t.cursor.Row, t.cursor.Col
	prevCol := col - 1
	if t.cursor.PendingWrap {
		// The cursor still sits on the cell it just printed into.
		prevCol = col
	}
	if prevCol < 0 {
		return nil
	}
	cell := t.activeBuffer.Cell(row, prevCol)
	if cell != nil && cell.IsWideSpacer() && prevCol > 0 {
		cell = t.activeBuffer.Cell(row, prevCol-1)
	}
	if cell == nil || cell.Char == 0 {
		return nil
	}
	r := cell.Char
	for i := 0; i < n; i++ {
		if err := t.printInternal(r); err != nil {
			return err
		}
	}
	return nil
}

// growColsInternal widens the cursor's row to at least minCols and keeps
// the terminal's column count and right margin in step with the buffer.
func (t *Terminal) growColsInternal(minCols int) {
	t.activeBuffer.GrowCols(t.cursor.Row, minCols)
	if t.activeBuffer.Cols() > t.cols {
		t.cols = t.activeBuffer.Cols()
		t.marginRight = t.cols - 1
	}
}

func (t *Terminal) wrapLineInternal() {
	t.activeBuffer.SetWrapped(t.cursor.Row, true)
	t.cursor.PendingWrap = false
	t.lineFeedInternal()
	t.cursor.Col = t.marginLeft
}

// --- C0 controls ---

func (t *Terminal) Backspace() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor.Col > t.marginLeft {
		t.cursor.Col--
	}
	t.cursor.PendingWrap = false
}

func (t *Terminal) CarriageReturn() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Col = t.marginLeft
	t.cursor.PendingWrap = false
}

func (t *Terminal) lineFeedInternal() {
	if t.cursor.Row == t.scrollBottom-1 {
		if t.autoResize && t.scrollTop == 0 && t.scrollBottom == t.rows {
			// Growth mode appends a row instead of scrolling content away.
			t.activeBuffer.GrowRows(1)
			t.rows++
			t.scrollBottom++
			t.cursor.Row++
			return
		}
		t.activeBuffer.ScrollUp(t.scrollTop, t.scrollBottom, t.marginLeft, t.marginRight, 1)
		return
	}
	if t.cursor.Row < t.rows-1 {
		t.cursor.Row++
	}
}

func (t *Terminal) LineFeed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.PendingWrap = false
	t.lineFeedInternal()
}

func (t *Terminal) Index() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.PendingWrap = false
	t.lineFeedInternal()
}

func (t *Terminal) ReverseIndex() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.PendingWrap = false
	if t.cursor.Row == t.scrollTop {
		t.activeBuffer.ScrollDown(t.scrollTop, t.scrollBottom, t.marginLeft, t.marginRight, 1)
		return
	}
	if t.cursor.Row > 0 {
		t.cursor.Row--
	}
}

// --- Cursor motion ---

func (t *Terminal) rowBounds() (min, max int) {
	if t.modes.Get(mode.Origin) {
		return t.scrollTop, t.scrollBottom - 1
	}
	return 0, t.rows - 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// satAdd is saturating addition: overflow clamps to the extreme value
// instead of wrapping, so a hostile relative-motion count can never land
// the cursor back inside the screen on the wrong side.
func satAdd(a, b int) int {
	s := a + b
	if b > 0 && s < a {
		return math.MaxInt
	}
	if b < 0 && s > a {
		return math.MinInt
	}
	return s
}

func (t *Terminal) CursorUp(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	lo, hi := t.rowBounds()
	t.cursor.Row = clampInt(t.cursor.Row-n, lo, hi)
	t.cursor.PendingWrap = false
}

func (t *Terminal) CursorDown(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	lo, hi := t.rowBounds()
	t.cursor.Row = clampInt(t.cursor.Row+n, lo, hi)
	t.cursor.PendingWrap = false
}

func (t *Terminal) CursorLeft(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Col = clampInt(t.cursor.Col-n, 0, t.cols-1)
	t.cursor.PendingWrap = false
}

func (t *Terminal) CursorRight(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Col = clampInt(t.cursor.Col+n, 0, t.cols-1)
	t.cursor.PendingWrap = false
}

func (t *Terminal) SetCursorPos(row, col int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rowOffset, colOffset := 0, 0
	rowMax, colMax := t.rows-1, t.cols-1
	if t.modes.Get(mode.Origin) {
		rowOffset, colOffset = t.scrollTop, t.marginLeft
		rowMax, colMax = t.scrollBottom-1, t.marginRight
	}
	t.cursor.Row = clampInt(rowOffset+row, 0, rowMax)
	t.cursor.Col = clampInt(colOffset+col, 0, colMax)
	t.cursor.PendingWrap = false
}

func (t *Terminal) SetCursorCol(col int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Col = clampInt(col, 0, t.cols-1)
	t.cursor.PendingWrap = false
}

func (t *Terminal) SetCursorRow(row int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	lo, hi := t.rowBounds()
	t.cursor.Row = clampInt(row, lo, hi)
	t.cursor.PendingWrap = false
}

func (t *Terminal) MoveCursorColRelative(delta int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Col = clampInt(satAdd(t.cursor.Col, delta), 0, t.cols-1)
	t.cursor.PendingWrap = false
}

func (t *Terminal) MoveCursorRowRelative(delta int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	lo, hi := t.rowBounds()
	t.cursor.Row = clampInt(satAdd(t.cursor.Row, delta), lo, hi)
	t.cursor.PendingWrap = false
}

func (t *Terminal) SetCursorShape(shape action.CursorShape, blink bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor.Shape = shape
	t.cursor.Blink = blink
	t.modes.Set(mode.BlinkingCursor, blink)
}

func (t *Terminal) AtPendingWrap() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.PendingWrap
}

// --- Erase / edit ---

func (t *Terminal) EraseDisplay(m action.EraseDisplayMode, selective bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	clearRange := t.activeBuffer.ClearRowRange
	clearRow := t.activeBuffer.ClearRow
	clearAll := t.activeBuffer.ClearAll
	if selective {
		clearRange = t.activeBuffer.ClearRowRangeSelective
		clearRow = t.activeBuffer.ClearRowSelective
		clearAll = t.activeBuffer.ClearAllSelective
	}
	switch m {
	case action.EraseBelow:
		clearRange(t.cursor.Row, t.cursor.Col, t.cols)
		for row := t.cursor.Row + 1; row < t.rows; row++ {
			clearRow(row)
		}
	case action.EraseAbove:
		clearRange(t.cursor.Row, 0, t.cursor.Col+1)
		for row := 0; row < t.cursor.Row; row++ {
			clearRow(row)
		}
	case action.EraseComplete:
		clearAll()
	case action.EraseScrollback:
		t.activeBuffer.ClearScrollback()
	case action.EraseScrollComplete:
		clearAll()
		t.activeBuffer.ClearScrollback()
	}
}

func (t *Terminal) EraseLine(m action.EraseLineMode, selective bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	clearRange := t.activeBuffer.ClearRowRange
	if selective {
		clearRange = t.activeBuffer.ClearRowRangeSelective
	}
	switch m {
	case action.EraseLineRight, action.EraseLineRightUnlessPendingWrap:
		clearRange(t.cursor.Row, t.cursor.Col, t.cols)
	case action.EraseLineLeft:
		clearRange(t.cursor.Row, 0, t.cursor.Col+1)
	case action.EraseLineComplete:
		clearRange(t.cursor.Row, 0, t.cols)
	}
}

func (t *Terminal) DeleteChars(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeBuffer.DeleteChars(t.cursor.Row, t.cursor.Col, n, t.marginLeft, t.marginRight)
}

func (t *Terminal) EraseChars(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	end := t.cursor.Col + n
	if end > t.marginRight+1 {
		end = t.marginRight + 1
	}
	t.activeBuffer.ClearRowRange(t.cursor.Row, t.cursor.Col, end)
}

// cursorInMargins reports whether the cursor sits inside the horizontal
// margins; line editing is a no-op outside them.
func (t *Terminal) cursorInMargins() bool {
	return t.cursor.Col >= t.marginLeft && t.cursor.Col <= t.marginRight
}

func (t *Terminal) InsertLines(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor.Row < t.scrollTop || t.cursor.Row >= t.scrollBottom || !t.cursorInMargins() {
		return
	}
	t.activeBuffer.InsertLines(t.cursor.Row, n, t.scrollBottom, t.marginLeft, t.marginRight)
}

func (t *Terminal) InsertBlanks(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeBuffer.InsertBlanks(t.cursor.Row, t.cursor.Col, n, t.marginLeft, t.marginRight)
}

func (t *Terminal) DeleteLines(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor.Row < t.scrollTop || t.cursor.Row >= t.scrollBottom || !t.cursorInMargins() {
		return
	}
	t.activeBuffer.DeleteLines(t.cursor.Row, n, t.scrollBottom, t.marginLeft, t.marginRight)
}

func (t *Terminal) ScrollUp(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeBuffer.ScrollUp(t.scrollTop, t.scrollBottom, t.marginLeft, t.marginRight, n)
}

func (t *Terminal) ScrollDown(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeBuffer.ScrollDown(t.scrollTop, t.scrollBottom, t.marginLeft, t.marginRight, n)
}

// --- Tabs ---

func (t *Terminal) HorizontalTab(count int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	next := t.activeBuffer.NextTabStop(t.cursor.Col)
	if next <= t.cursor.Col {
		return false
	}
	t.cursor.Col = next
	return true
}

func (t *Terminal) HorizontalTabBack(count int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.activeBuffer.PrevTabStop(t.cursor.Col)
	if prev >= t.cursor.Col {
		return false
	}
	t.cursor.Col = prev
	return true
}

func (t *Terminal) TabClear(scope action.TabClearScope) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch scope {
	case action.TabClearCurrentColumn:
		t.activeBuffer.ClearTabStop(t.cursor.Col)
	case action.TabClearAllColumns:
		t.activeBuffer.ClearAllTabStops()
	}
}

func (t *Terminal) TabSet() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeBuffer.SetTabStop(t.cursor.Col)
}

func (t *Terminal) TabReset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeBuffer.ResetTabStops()
}

// --- Margins ---

func (t *Terminal) SetTopAndBottomMargin(top, bottom int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if bottom <= 0 || bottom > t.rows {
		bottom = t.rows
	}
	if top < 0 {
		top = 0
	}
	if top >= bottom {
		top, bottom = 0, t.rows
	}
	t.scrollTop, t.scrollBottom = top, bottom
	t.homeCursorInternal()
}

func (t *Terminal) SetLeftAndRightMargin(left, right int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if right <= 0 || right > t.cols-1 {
		right = t.cols - 1
	}
	if left < 0 {
		left = 0
	}
	if left >= right {
		left, right = 0, t.cols-1
	}
	t.marginLeft, t.marginRight = left, right
	t.homeCursorInternal()
}

func (t *Terminal) ResetLeftRightMargin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.marginLeft, t.marginRight = 0, t.cols-1
}

func (t *Terminal) homeCursorInternal() {
	if t.modes.Get(mode.Origin) {
		t.cursor.Row, t.cursor.Col = t.scrollTop, t.marginLeft
	} else {
		t.cursor.Row, t.cursor.Col = 0, 0
	}
	t.cursor.PendingWrap = false
}

// HomeCursor moves the cursor to the screen (or, under origin mode, margin)
// origin.
func (t *Terminal) HomeCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.homeCursorInternal()
}

// --- Save/restore cursor ---

func (t *Terminal) snapshotCursor() *SavedCursor {
	return &SavedCursor{
		Row:         t.cursor.Row,
		Col:         t.cursor.Col,
		Template:    t.template,
		OriginMode:  t.modes.Get(mode.Origin),
		CharsetSlot: t.activeCharsetSlot,
		Charsets:    t.charsets,
	}
}

func (t *Terminal) SaveCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.savedCursor = t.snapshotCursor()
}

func (t *Terminal) RestoreCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.savedCursor == nil {
		return
	}
	s := t.savedCursor
	t.cursor.Row, t.cursor.Col = s.Row, s.Col
	t.cursor.PendingWrap = false
	t.template = s.Template
	t.modes.Set(mode.Origin, s.OriginMode)
	t.activeCharsetSlot = s.CharsetSlot
	t.charsets = s.Charsets
}

// --- Charsets ---

func (t *Terminal) InvokeCharset(slot action.CharsetSlot, locking bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if locking {
		t.activeCharsetSlot = slot
		t.singleShift = nil
		return
	}
	s := slot
	t.singleShift = &s
}

func (t *Terminal) ConfigureCharset(slot action.CharsetSlot, set action.CharsetSet) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.charsets[slot] = set
}

// --- SGR / protected mode ---

func (t *Terminal) applyColorAttr(kind action.AttrKind, color style.Color) {
	switch kind {
	case action.AttrForeground:
		t.template.Fg = color
	case action.AttrBackground:
		t.template.Bg = color
	case action.AttrUnderlineColor:
		t.template.Underline = color
	}
}

func (t *Terminal) SetAttribute(attr action.AttrKind, color style.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch attr {
	case action.AttrReset:
		t.template = style.Style{}
	case action.AttrBold:
		t.template = t.template.WithFlag(style.FlagBold)
	case action.AttrFaint:
		t.template = t.template.WithFlag(style.FlagFaint)
	case action.AttrItalic:
		t.template = t.template.WithFlag(style.FlagItalic)
	case action.AttrUnderline:
		t.template = t.template.WithUnderlineStyle(style.UnderlineSingle)
	case action.AttrDoubleUnderline:
		t.template = t.template.WithUnderlineStyle(style.UnderlineDouble)
	case action.AttrCurlyUnderline:
		t.template = t.template.WithUnderlineStyle(style.UnderlineCurly)
	case action.AttrDottedUnderline:
		t.template = t.template.WithUnderlineStyle(style.UnderlineDotted)
	case action.AttrDashedUnderline:
		t.template = t.template.WithUnderlineStyle(style.UnderlineDashed)
	case action.AttrBlinkSlow, action.AttrBlinkFast:
		t.template = t.template.WithFlag(style.FlagBlink)
	case action.AttrInverse:
		t.template = t.template.WithFlag(style.FlagInverse)
	case action.AttrInvisible:
		t.template = t.template.WithFlag(style.FlagInvisible)
	case action.AttrStrikethrough:
		t.template = t.template.WithFlag(style.FlagStrikethrough)
	case action.AttrOverline:
		t.template = t.template.WithFlag(style.FlagOverline)
	case action.AttrCancelBold:
		t.template = t.template.WithoutFlag(style.FlagBold)
	case action.AttrCancelBoldFaint:
		t.template = t.template.WithoutFlag(style.FlagBold).WithoutFlag(style.FlagFaint)
	case action.AttrCancelItalic:
		t.template = t.template.WithoutFlag(style.FlagItalic)
	case action.AttrCancelUnderline:
		t.template = t.template.WithUnderlineStyle(style.UnderlineNone)
	case action.AttrCancelBlink:
		t.template = t.template.WithoutFlag(style.FlagBlink)
	case action.AttrCancelInverse:
		t.template = t.template.WithoutFlag(style.FlagInverse)
	case action.AttrCancelInvisible:
		t.template = t.template.WithoutFlag(style.FlagInvisible)
	case action.AttrCancelStrikethrough:
		t.template = t.template.WithoutFlag(style.FlagStrikethrough)
	case action.AttrCancelOverline:
		t.template = t.template.WithoutFlag(style.FlagOverline)
	case action.AttrForeground, action.AttrBackground, action.AttrUnderlineColor:
		t.applyColorAttr(attr, color)
	case action.AttrUnknown:
		// Silently ignored, per spec: an unrecognized SGR parameter must
		// not change any observable state.
	}
}

func (t *Terminal) SetProtectedMode(kind action.ProtectedMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.protected = kind
}

// --- Mouse / keyboard protocol ---

func (t *Terminal) SetMouseShiftCapture(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mouseShiftCapture = v
	t.mouseShiftCaptureSet = true
}

// MouseShiftCapture reports the shift-capture flag and whether it was ever
// explicitly set (it starts out unset and only returns to that state on a
// full reset).
func (t *Terminal) MouseShiftCapture() (enabled, set bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mouseShiftCapture, t.mouseShiftCaptureSet
}

func (t *Terminal) SetMouseEvent(kind action.MouseEventKind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mouseEvent = kind
}

func (t *Terminal) SetMouseFormat(kind action.MouseFormatKind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mouseFormat = kind
}

func (t *Terminal) SetMouseShape(shape string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mouseShape = shape
}

func (t *Terminal) SetModifyKeyFormat(otherKeysNumeric bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.otherKeysNumeric = otherKeysNumeric
}

func (t *Terminal) SetActiveStatusDisplay(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statusDisplay = n
}

// --- Whole-screen operations ---

func (t *Terminal) Decaln() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activeBuffer.FillWithE()
	t.scrollTop, t.scrollBottom = 0, t.rows
	t.marginLeft, t.marginRight = 0, t.cols-1
	t.cursor.Row, t.cursor.Col = 0, 0
	t.cursor.PendingWrap = false
}

// FullReset (RIS) restores every piece of state New would have produced,
// except for provider wiring, style-set capacity, lines already held by the
// scrollback provider, and the current dimensions (a DECCOLM or growth-mode
// size change is kept).
func (t *Terminal) FullReset() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.palette.ResetAll()

	t.primaryBuffer.ClearAll()
	t.alternateBuffer.ClearAll()
	t.activeBuffer = t.primaryBuffer

	t.cursor = NewCursor()
	t.savedCursor = nil
	t.template = style.Style{}

	t.charsets = [4]action.CharsetSet{action.CharsetASCII, action.CharsetASCII, action.CharsetASCII, action.CharsetASCII}
	t.activeCharsetSlot = action.G0
	t.singleShift = nil

	t.scrollTop, t.scrollBottom = 0, t.rows
	t.marginLeft, t.marginRight = 0, t.cols-1

	t.modes = mode.NewRegistry()
	t.modes.Set(mode.LineWrap, true)
	t.modes.Set(mode.ShowCursor, true)
	t.kitty = mode.NewKittyKeyboardStack()

	t.protected = action.ProtectedOff
	t.title = ""
	t.titleStack = nil
	t.currentHyperlink = nil
	t.otherKeysNumeric = false
	t.statusDisplay = 0
	t.mouseEvent = action.MouseEventNone
	t.mouseFormat = action.MouseFormatX10
	t.mouseShiftCapture = false
	t.mouseShiftCaptureSet = false
	t.mouseShape = ""
	t.shellRedrawsPrompt = false
	t.promptMarks = nil

	return nil
}

func (t *Terminal) EnterAltScreen(kind action.ScreenModeKind) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.activeBuffer == t.alternateBuffer {
		return nil
	}
	if kind == action.ScreenModeAltSaveCursorClear {
		t.savedCursor = t.snapshotCursor()
	}
	t.activeBuffer = t.alternateBuffer
	if kind != action.ScreenModeAltLegacy {
		t.activeBuffer.ClearAll()
	}
	t.cursor.Row, t.cursor.Col = 0, 0
	t.cursor.PendingWrap = false
	return nil
}

func (t *Terminal) LeaveAltScreen(kind action.ScreenModeKind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.activeBuffer != t.alternateBuffer {
		return
	}
	t.activeBuffer = t.primaryBuffer
	if kind == action.ScreenModeAltSaveCursorClear && t.savedCursor != nil {
		s := t.savedCursor
		t.cursor.Row, t.cursor.Col = s.Row, s.Col
	}
	t.cursor.PendingWrap = false
}

func (t *Terminal) Deccolm(wide bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	cols := DefaultCols
	if wide {
		cols = 132
	}
	t.cols = cols
	t.primaryBuffer.Resize(t.primaryBuffer.Rows(), cols)
	t.alternateBuffer.Resize(t.alternateBuffer.Rows(), cols)
	t.scrollTop, t.scrollBottom = 0, t.rows
	t.marginLeft, t.marginRight = 0, cols-1
	t.cursor.Row, t.cursor.Col = 0, 0
	t.cursor.PendingWrap = false
	t.activeBuffer.ClearAll()
	return nil
}

// Resize changes the terminal's dimensions, applying to both buffers.
func (t *Terminal) Resize(rows, cols int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rows <= 0 || cols <= 0 {
		return
	}
	t.primaryBuffer.Resize(rows, cols)
	t.alternateBuffer.Resize(rows, cols)
	t.rows, t.cols = rows, cols
	if t.scrollBottom > rows {
		t.scrollBottom = rows
	}
	if t.marginRight > cols-1 {
		t.marginRight = cols - 1
	}
	t.cursor.Row = clampInt(t.cursor.Row, 0, rows-1)
	t.cursor.Col = clampInt(t.cursor.Col, 0, cols-1)
}

// --- Ambient provider passthroughs ---
//
// These forward side-channel events to the configured providers. The
// parser glue calls them for the sequences the dispatcher treats as
// no-ops; none of them mutate screen state.

// Bell notifies the bell provider (BEL).
func (t *Terminal) Bell() {
	t.bellProvider.Ring()
}

// ReceiveAPC hands an Application Program Command payload to its provider.
func (t *Terminal) ReceiveAPC(data []byte) {
	t.apcProvider.Receive(data)
}

// ReceivePM hands a Privacy Message payload to its provider.
func (t *Terminal) ReceivePM(data []byte) {
	t.pmProvider.Receive(data)
}

// ReceiveSOS hands a Start of String payload to its provider.
func (t *Terminal) ReceiveSOS(data []byte) {
	t.sosProvider.Receive(data)
}

// ClipboardWrite stores data into the named clipboard (OSC 52).
func (t *Terminal) ClipboardWrite(clipboard byte, data []byte) {
	t.clipboardProvider.Write(clipboard, data)
}

// ClipboardRead returns the named clipboard's content (OSC 52 query).
func (t *Terminal) ClipboardRead(clipboard byte) string {
	return t.clipboardProvider.Read(clipboard)
}

// RecordInput captures raw pre-parse bytes for session replay.
func (t *Terminal) RecordInput(data []byte) {
	t.recordingProvider.Record(data)
}

// --- Title ---

func (t *Terminal) SetTitle(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.title = title
	t.titleProvider.SetTitle(title)
}

func (t *Terminal) PushTitle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.titleStack = append(t.titleStack, t.title)
	t.titleProvider.PushTitle()
}

func (t *Terminal) PopTitle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.titleStack) == 0 {
		return
	}
	t.title = t.titleStack[len(t.titleStack)-1]
	t.titleStack = t.titleStack[:len(t.titleStack)-1]
	t.titleProvider.PopTitle()
}
