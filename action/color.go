package action

import "github.com/kestrel-term/vtcore/style"

// colorToRGB extracts the concrete RGB triple an OSC 4/104 palette write
// carries. OSC color-set requests always arrive as explicit RGB (parsed
// from "rgb:RR/GG/BB" or a named X11 color); a palette-indexed Color here
// would mean "set this slot to itself", which resolves to black rather than
// looping back through the palette.
func colorToRGB(c style.Color) style.RGBColor {
	if c.Kind == style.ColorRGB {
		return style.RGBColor{R: c.R, G: c.G, B: c.B}
	}
	return style.RGBColor{}
}
