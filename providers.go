package vtcore

import "io"

// Providers are the terminal's ambient hooks: optional interfaces the
// embedding program supplies for side channels the screen model itself
// does not interpret: the bell, window-title plumbing, string-command
// payloads, the clipboard, scrollback storage, and raw-input recording.
// Every provider has a Noop default so a bare New() is fully functional.

// ResponseProvider receives bytes the embedding layer wants sent back to
// the host program (cursor-position reports and the like). The dispatcher
// itself never writes to it; it exists for the glue code that does.
type ResponseProvider = io.Writer

// NoopResponse discards response bytes.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (int, error) { return len(p), nil }

// BellProvider is notified on BEL.
type BellProvider interface {
	Ring()
}

// NoopBell ignores the bell.
type NoopBell struct{}

func (NoopBell) Ring() {}

// TitleProvider mirrors window-title changes (OSC 0/1/2) and the
// title stack (XTWINOPS push/pop) out to a window manager.
type TitleProvider interface {
	SetTitle(title string)
	PushTitle()
	PopTitle()
}

// NoopTitle ignores title changes.
type NoopTitle struct{}

func (NoopTitle) SetTitle(title string) {}
func (NoopTitle) PushTitle()            {}
func (NoopTitle) PopTitle()             {}

// APCProvider receives Application Program Command payloads verbatim.
type APCProvider interface {
	Receive(data []byte)
}

// NoopAPC discards APC payloads.
type NoopAPC struct{}

func (NoopAPC) Receive(data []byte) {}

// PMProvider receives Privacy Message payloads verbatim.
type PMProvider interface {
	Receive(data []byte)
}

// NoopPM discards PM payloads.
type NoopPM struct{}

func (NoopPM) Receive(data []byte) {}

// SOSProvider receives Start of String payloads verbatim.
type SOSProvider interface {
	Receive(data []byte)
}

// NoopSOS discards SOS payloads.
type NoopSOS struct{}

func (NoopSOS) Receive(data []byte) {}

// ClipboardProvider backs OSC 52. The clipboard selector byte is 'c' for
// the system clipboard, 'p' for the primary selection.
type ClipboardProvider interface {
	Read(clipboard byte) string
	Write(clipboard byte, data []byte)
}

// NoopClipboard reads empty and discards writes.
type NoopClipboard struct{}

func (NoopClipboard) Read(clipboard byte) string        { return "" }
func (NoopClipboard) Write(clipboard byte, data []byte) {}

// ScrollbackProvider stores rows that scroll off the true top of the
// primary buffer. A pushed line carries live style references (see
// Buffer.ScrollUp); an implementation that drops old lines without
// keeping them must release those references itself.
type ScrollbackProvider interface {
	// Push appends a line, trimming the oldest beyond MaxLines.
	Push(line []Cell)
	Len() int
	// Line returns the line at index (0 is oldest), or nil out of range.
	Line(index int) []Cell
	Clear()
	SetMaxLines(max int)
	MaxLines() int
}

// NoopScrollback retains nothing. It is the default for the primary
// buffer and always used for the alternate buffer, which has no
// scrollback by definition.
type NoopScrollback struct{}

func (NoopScrollback) Push(line []Cell)      {}
func (NoopScrollback) Len() int              { return 0 }
func (NoopScrollback) Line(index int) []Cell { return nil }
func (NoopScrollback) Clear()                {}
func (NoopScrollback) SetMaxLines(max int)   {}
func (NoopScrollback) MaxLines() int         { return 0 }

// RecordingProvider captures the raw byte stream ahead of parsing, for
// session replay.
type RecordingProvider interface {
	Record(data []byte)
	Data() []byte
	Clear()
}

// NoopRecording records nothing.
type NoopRecording struct{}

func (NoopRecording) Record([]byte) {}
func (NoopRecording) Data() []byte  { return nil }
func (NoopRecording) Clear()        {}

var (
	_ ResponseProvider   = NoopResponse{}
	_ BellProvider       = NoopBell{}
	_ TitleProvider      = NoopTitle{}
	_ APCProvider        = NoopAPC{}
	_ PMProvider         = NoopPM{}
	_ SOSProvider        = NoopSOS{}
	_ ClipboardProvider  = NoopClipboard{}
	_ ScrollbackProvider = NoopScrollback{}
	_ RecordingProvider  = NoopRecording{}
)
