package style

import (
	"fmt"
	"strings"
)

// SGRString renders s as a self-contained sequence of SGR escapes, suitable
// for rewriting buffered output. It always begins with a full reset, then
// emits one escape per attribute in a fixed order (bold, faint, italic,
// blink, inverse, invisible, strikethrough, overline, underline, fg, bg,
// underline color), never combining attributes into one sequence, because
// some terminals mis-parse combined forms that mix ';' and ':' separators.
func (s Style) SGRString() string {
	var b strings.Builder
	b.WriteString("\x1b[0m")

	writeIf := func(cond bool, code int) {
		if cond {
			fmt.Fprintf(&b, "\x1b[%dm", code)
		}
	}
	writeIf(s.HasFlag(FlagBold), 1)
	writeIf(s.HasFlag(FlagFaint), 2)
	writeIf(s.HasFlag(FlagItalic), 3)
	writeIf(s.HasFlag(FlagBlink), 5)
	writeIf(s.HasFlag(FlagInverse), 7)
	writeIf(s.HasFlag(FlagInvisible), 8)
	writeIf(s.HasFlag(FlagStrikethrough), 9)
	writeIf(s.HasFlag(FlagOverline), 53)

	switch u := s.UnderlineStyle(); u {
	case UnderlineNone:
	case UnderlineSingle:
		b.WriteString("\x1b[4m")
	default:
		fmt.Fprintf(&b, "\x1b[4:%dm", u)
	}

	writeColor(&b, 38, s.Fg)
	writeColor(&b, 48, s.Bg)
	writeColor(&b, 58, s.Underline)

	return b.String()
}

// writeColor emits the SGR sequence for one color slot using prefix
// (38=fg, 48=bg, 58=underline color). The primary separator is ';'; RGB and
// palette sub-parameters use ';' too; only the underline-style sub-code
// above uses ':'.
func writeColor(b *strings.Builder, prefix int, c Color) {
	switch c.Kind {
	case ColorNone:
	case ColorPalette:
		fmt.Fprintf(b, "\x1b[%d;5;%dm", prefix, c.Palette)
	case ColorRGB:
		fmt.Fprintf(b, "\x1b[%d;2;%d;%d;%dm", prefix, c.R, c.G, c.B)
	}
}
