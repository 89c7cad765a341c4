// Package style implements the compact, ref-counted cell style model: a
// small value type carrying foreground/background/underline colors and SGR
// flags, a packed 128-bit representation used for content-addressed
// hashing, and a fixed-capacity hash set ([Set]) that deduplicates styles
// across a screen's worth of cells and hands back a stable 16-bit [Id].
package style

import "encoding/binary"

// ColorKind tags which variant a Color holds.
type ColorKind uint8

const (
	ColorNone ColorKind = iota
	ColorPalette
	ColorRGB
)

// Color is a tagged union over {none, palette index, 24-bit RGB}.
type Color struct {
	Kind    ColorKind
	Palette uint8 // valid when Kind == ColorPalette
	R, G, B uint8 // valid when Kind == ColorRGB
}

// RGB builds a true-color Color.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// PaletteColor builds a palette-indexed Color.
func PaletteColor(index uint8) Color { return Color{Kind: ColorPalette, Palette: index} }

// UnderlineStyle is the sub-variant of the underline SGR flag.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Flag bits occupy the low byte of Style.Flags; the underline sub-variant
// occupies the next 3 bits. Bits above that are reserved and must stay zero
// so the packed representation hashes deterministically.
const (
	FlagBold uint16 = 1 << iota
	FlagItalic
	FlagFaint
	FlagBlink
	FlagInverse
	FlagInvisible
	FlagStrikethrough
	FlagOverline
)

const (
	underlineShift = 8
	underlineMask  = 0x7
)

// Style is the visual attributes of a single cell: three colors plus the
// packed flag/underline word. The zero Style is the default style, whose
// identifier is always [style.Default] and which the Set never ref-counts.
type Style struct {
	Fg, Bg, Underline Color
	Flags             uint16
}

// HasFlag reports whether every bit in f is set.
func (s Style) HasFlag(f uint16) bool { return s.Flags&f == f }

// WithFlag returns a copy of s with f set.
func (s Style) WithFlag(f uint16) Style { s.Flags |= f; return s }

// WithoutFlag returns a copy of s with f cleared.
func (s Style) WithoutFlag(f uint16) Style { s.Flags &^= f; return s }

// UnderlineStyle extracts the 3-bit underline sub-variant.
func (s Style) UnderlineStyle() UnderlineStyle {
	return UnderlineStyle((s.Flags >> underlineShift) & underlineMask)
}

// WithUnderlineStyle returns a copy of s with the underline sub-variant set.
// UnderlineNone also implicitly clears any previously set style.
func (s Style) WithUnderlineStyle(u UnderlineStyle) Style {
	s.Flags &^= underlineMask << underlineShift
	s.Flags |= uint16(u&underlineMask) << underlineShift
	return s
}

// IsDefault reports whether s is the all-zero default style.
func (s Style) IsDefault() bool { return s == Style{} }

// packedSize is the fixed, padding-free byte width of Pack's output: three
// 1-byte color tags, one reserved tag byte, three 3-byte color payloads,
// a 2-byte flags word, and one reserved zero byte. 4 + 9 + 2 + 1 = 16.
const packedSize = 16

func init() {
	var z Style
	if len(z.Pack()) != packedSize {
		panic("style: packed representation is not 16 bytes")
	}
}

// Pack produces the fixed, padding-free 128-bit representation used for
// hashing. Byte layout:
//
//	[0] fg tag   [1] bg tag   [2] underline tag   [3] reserved (0)
//	[4:7]  fg payload (index in byte 4, or R,G,B)
//	[7:10] bg payload
//	[10:13] underline payload
//	[13:15] flags (little-endian)
//	[15] reserved (0)
//
// Every color arm occupies the same 3-byte width (palette uses only the
// first byte of it) so two structurally distinct styles never collide on
// byte layout, and Pack never depends on Go's struct field order or
// padding: it is built by explicit writes, not by reinterpreting Style.
func (s Style) Pack() [packedSize]byte {
	var buf [packedSize]byte
	buf[0] = byte(s.Fg.Kind)
	buf[1] = byte(s.Bg.Kind)
	buf[2] = byte(s.Underline.Kind)
	// buf[3] stays zero (reserved).
	packColor(buf[4:7], s.Fg)
	packColor(buf[7:10], s.Bg)
	packColor(buf[10:13], s.Underline)
	binary.LittleEndian.PutUint16(buf[13:15], s.Flags)
	// buf[15] stays zero (reserved).
	return buf
}

func packColor(dst []byte, c Color) {
	switch c.Kind {
	case ColorPalette:
		dst[0] = c.Palette
	case ColorRGB:
		dst[0], dst[1], dst[2] = c.R, c.G, c.B
	}
}
