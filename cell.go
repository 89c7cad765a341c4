package vtcore

import "github.com/kestrel-term/vtcore/style"

// CellFlags is a bitmask of per-cell rendering attributes that don't belong
// in the ref-counted style (wide-character layout and dirty tracking are
// properties of a cell's position, not its visual attributes, so they live
// outside style.Style and are never hashed or deduplicated).
type CellFlags uint16

const (
	CellFlagWideChar CellFlags = 1 << iota
	CellFlagWideCharSpacer
	CellFlagDirty
	CellFlagProtected // survives selective erase (DECSCA)
)

// Cell stores one grid position: a character, a reference to its
// deduplicated style, and position-local flags. Wide characters (CJK,
// emoji) occupy two columns; the second is a spacer cell carrying
// CellFlagWideCharSpacer and no character of its own.
type Cell struct {
	Char      rune
	Style     style.Id
	Flags     CellFlags
	Hyperlink *Hyperlink
}

// Hyperlink associates a cell with a clickable link (OSC 8).
type Hyperlink struct {
	ID  string
	URI string
}

// NewCell returns a cell initialized to a space with the default style.
func NewCell() Cell {
	return Cell{Char: ' ', Style: style.Default}
}

// HasFlag reports whether every bit in f is set.
func (c *Cell) HasFlag(f CellFlags) bool { return c.Flags&f == f }

// SetFlag sets f without affecting other flags.
func (c *Cell) SetFlag(f CellFlags) { c.Flags |= f }

// ClearFlag clears f without affecting other flags.
func (c *Cell) ClearFlag(f CellFlags) { c.Flags &^= f }

// IsDirty reports whether the cell was modified since the last ClearDirty.
func (c *Cell) IsDirty() bool { return c.HasFlag(CellFlagDirty) }

// MarkDirty marks the cell modified.
func (c *Cell) MarkDirty() { c.SetFlag(CellFlagDirty) }

// ClearDirty resets the dirty flag.
func (c *Cell) ClearDirty() { c.ClearFlag(CellFlagDirty) }

// IsWide reports whether the cell holds the first column of a wide rune.
func (c *Cell) IsWide() bool { return c.HasFlag(CellFlagWideChar) }

// IsWideSpacer reports whether the cell is the trailing half of a wide rune.
func (c *Cell) IsWideSpacer() bool { return c.HasFlag(CellFlagWideCharSpacer) }
