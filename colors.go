package vtcore

import "github.com/kestrel-term/vtcore/style"

// defaultPaletteColors builds the 256-entry default palette every new
// Terminal's style.Palette starts from: 16 named ANSI colors, a 6x6x6 color
// cube, and a 24-step grayscale ramp, same layout as xterm's default table.
func defaultPaletteColors() [256]style.RGBColor {
	var p [256]style.RGBColor

	p[0] = style.RGBColor{R: 0, G: 0, B: 0}
	p[1] = style.RGBColor{R: 205, G: 49, B: 49}
	p[2] = style.RGBColor{R: 13, G: 188, B: 121}
	p[3] = style.RGBColor{R: 229, G: 229, B: 16}
	p[4] = style.RGBColor{R: 36, G: 114, B: 200}
	p[5] = style.RGBColor{R: 188, G: 63, B: 188}
	p[6] = style.RGBColor{R: 17, G: 168, B: 205}
	p[7] = style.RGBColor{R: 229, G: 229, B: 229}
	p[8] = style.RGBColor{R: 102, G: 102, B: 102}
	p[9] = style.RGBColor{R: 241, G: 76, B: 76}
	p[10] = style.RGBColor{R: 35, G: 209, B: 139}
	p[11] = style.RGBColor{R: 245, G: 245, B: 67}
	p[12] = style.RGBColor{R: 59, G: 142, B: 234}
	p[13] = style.RGBColor{R: 214, G: 112, B: 214}
	p[14] = style.RGBColor{R: 41, G: 184, B: 219}
	p[15] = style.RGBColor{R: 255, G: 255, B: 255}

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = style.RGBColor{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51)}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p[232+j] = style.RGBColor{R: gray, G: gray, B: gray}
	}

	return p
}

// defaultForeground and defaultBackground are the colors a cell with no
// palette override resolves to; they are not part of the 256-slot palette
// itself, matching the spec's three-way color model (none/palette/rgb).
var (
	defaultForeground = style.RGBColor{R: 229, G: 229, B: 229}
	defaultBackground = style.RGBColor{R: 0, G: 0, B: 0}
)

// ResolveColor turns a cell's style.Color into a concrete RGB triple using
// t's current palette for palette-indexed colors, and the terminal defaults
// for an unset color.
func (t *Terminal) ResolveColor(c style.Color, foreground bool) style.RGBColor {
	switch c.Kind {
	case style.ColorRGB:
		return style.RGBColor{R: c.R, G: c.G, B: c.B}
	case style.ColorPalette:
		return t.palette.Get(int(c.Palette))
	default:
		if foreground {
			return defaultForeground
		}
		return defaultBackground
	}
}
