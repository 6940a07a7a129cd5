package lattice

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell represents a single character cell in the output grid.
//
// Beyond the character and its styling, a cell records which node and
// stacking layer wrote it and at what depth. Overlapping writes are
// resolved by depth: see Buffer.SetCell. Wide characters (CJK, emoji)
// occupy multiple cells; the first cell holds the rune, subsequent cells
// are marked as continuations.
type Cell struct {
	Rune  rune   // The character (0 for continuation cells)
	Style Style  // Visual styling
	Width uint8  // Display width (1 or 2; 0 for continuation)
	Layer int    // Owning stacking layer
	Node  NodeID // Owning node (0 for empty cells)
	Depth int    // z depth used to resolve overlapping writes
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(RuneWidth(r)),
	}
}

// NewCellWithWidth creates a new Cell with an explicit width.
// Use this for continuation cells (width 0) or when width is already known.
func NewCellWithWidth(r rune, style Style, width uint8) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: width,
	}
}

// IsContinuation returns true if this cell is a continuation of a wide
// character. Continuation cells have Width == 0 and are placed after the
// primary cell.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells paint identically. Ownership metadata
// (node, layer, depth) is excluded so the downstream diff only reflects
// visible changes.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equal(other.Style) && c.Width == other.Width
}

// IsEmpty returns true if this cell represents an empty/blank cell.
func (c Cell) IsEmpty() bool {
	if c.Rune == 0 {
		return true
	}
	if c.Rune == ' ' {
		return c.Style.Equal(NewStyle())
	}
	return false
}

// RuneWidth returns the display width of a rune in terminal cells:
// 1 for most characters, 2 for wide characters (CJK, most emoji).
func RuneWidth(r rune) int {
	if r < 32 {
		// Control characters still need a cell to represent them.
		return 1
	}
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of a string in terminal cells,
// counting grapheme clusters rather than runes so combining sequences and
// multi-rune emoji measure correctly.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}
