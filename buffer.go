package lattice

import "strings"

// Buffer is a double-buffered 2D grid of cells shared by every node in a
// render pass. Writes go to the back buffer; the downstream flush stage
// calls Diff and Swap.
//
// Overlapping writes within one layer are resolved by depth: a write at
// lower depth than the existing occupant of a coordinate is dropped, and
// ties go to the most recent write, so later paint order wins at equal
// depth. This is consistent with the stacking algorithm's document-order
// tie-break.
type Buffer struct {
	front  []Cell // Currently displayed state
	back   []Cell // State being built
	width  int
	height int
}

// CellChange represents a single cell that differs between front and back
// buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a new double-buffered grid of the specified dimensions.
// Both buffers are initialized with spaces and default styling.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	size := width * height
	front := make([]Cell, size)
	back := make([]Cell, size)

	defaultCell := NewCell(' ', NewStyle())
	for i := range front {
		front[i] = defaultCell
		back[i] = defaultCell
	}

	return &Buffer{
		front:  front,
		back:   back,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions (width, height).
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y) from the back buffer.
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.back[idx]
}

// SetCell writes a cell at position (x, y) in the back buffer.
//
// Within a layer, the write lands only when its depth is greater than or
// equal to the existing occupant's depth; otherwise it is dropped. A
// write from a different layer always lands, since paint order already
// sequences layers. Out-of-bounds writes are silently ignored. Wide characters get a continuation cell at
// x+1 carrying the same ownership; partially overwritten wide characters
// are cleared so no orphan continuation survives.
func (b *Buffer) SetCell(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	if c.Rune != 0 && c.Width == 0 {
		c.Width = uint8(RuneWidth(c.Rune))
	}
	existing := b.back[idx]
	if c.Layer == existing.Layer && c.Depth < existing.Depth {
		return
	}

	// Clean up any wide character this write tears apart.
	if existing.IsContinuation() {
		b.clearWideCharAt(x, y)
	}
	if existing.Width == 2 && x+1 < b.width {
		b.rawSet(x+1, y, NewCell(' ', NewStyle()))
	}

	if c.Width == 2 {
		if x+1 >= b.width {
			// A wide char can't fit in the last column; place a space.
			c.Rune = ' '
			c.Width = 1
			b.rawSet(x, y, c)
			return
		}
		next := b.back[b.idx(x+1, y)]
		// The continuation must pass the same depth gate as the primary;
		// a blocked second column degrades the char, as at the edge.
		if c.Layer == next.Layer && c.Depth < next.Depth {
			c.Rune = ' '
			c.Width = 1
			b.rawSet(x, y, c)
			return
		}
		if next.Width == 2 || next.IsContinuation() {
			b.clearWideCharAt(x+1, y)
		}
	}

	b.rawSet(x, y, c)

	if c.Width == 2 {
		cont := c
		cont.Rune = 0
		cont.Width = 0
		b.rawSet(x+1, y, cont)
	}
}

// rawSet stores a cell without depth resolution. Used for the secondary
// writes of an already-accepted cell (continuations, wide-char cleanup).
func (b *Buffer) rawSet(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	b.back[idx] = c
}

// clearWideCharAt clears a wide character that includes position (x, y).
func (b *Buffer) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)
	defaultCell := NewCell(' ', NewStyle())

	if cell.IsContinuation() {
		if x > 0 {
			b.rawSet(x-1, y, defaultCell)
		}
		b.rawSet(x, y, defaultCell)
	} else if cell.Width == 2 {
		b.rawSet(x, y, defaultCell)
		if x+1 < b.width {
			b.rawSet(x+1, y, defaultCell)
		}
	}
}

// SetRune writes a rune at position (x, y) with the given style at depth
// zero and no owner.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	b.SetCell(x, y, NewCell(r, style))
}

// SetString writes a string starting at position (x, y) with the given
// style. Returns the total display width consumed (handles wide
// characters). Stops at the buffer edge without wrapping.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	proto := NewCell(' ', style)
	return b.SetText(x, y, s, proto, b.Rect())
}

// SetText writes a string using proto for style, ownership, and depth,
// clipped to clip. Returns the total display width rendered.
func (b *Buffer) SetText(x, y int, s string, proto Cell, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	totalWidth := 0
	curX := x

	for _, r := range s {
		width := RuneWidth(r)

		// Skip if entirely before the clip region.
		if curX+width <= clip.X {
			curX += width
			continue
		}
		if curX >= clip.Right() {
			break
		}

		if curX >= clip.X {
			if width == 2 && curX+1 >= clip.Right() {
				// Wide char doesn't fit; leave the cell untouched.
				curX += width
				continue
			}
			c := proto
			c.Rune = r
			c.Width = uint8(width)
			b.SetCell(curX, y, c)
			totalWidth += width
		}
		curX += width
	}

	return totalWidth
}

// Fill fills a rectangle with the given rune and style at depth zero.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	proto := NewCell(r, style)
	b.FillCell(rect, proto)
}

// FillCell fills a rectangle with copies of proto, preserving its
// ownership and depth. Handles wide fill runes.
func (b *Buffer) FillCell(rect Rect, proto Cell) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}
	if proto.Rune == 0 {
		proto.Rune = ' '
	}
	proto.Width = uint8(RuneWidth(proto.Rune))

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if proto.Width == 2 && x+1 >= rect.Right() {
				c := proto
				c.Rune = ' '
				c.Width = 1
				b.SetCell(x, y, c)
				x++
			} else {
				b.SetCell(x, y, proto)
				x += int(proto.Width)
			}
		}
	}
}

// FillGradient fills a rectangle with a gradient background.
func (b *Buffer) FillGradient(rect Rect, g Gradient, proto Cell) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}
	if proto.Rune == 0 {
		proto.Rune = ' '
	}

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			var t float64
			if g.Direction == GradientVertical {
				t = float64(y-rect.Y) / float64(max(1, rect.Height-1))
			} else {
				t = float64(x-rect.X) / float64(max(1, rect.Width-1))
			}
			c := proto
			c.Style.Bg = g.At(t)
			b.SetCell(x, y, c)
		}
	}
}

// Clear clears the entire back buffer to spaces with default style,
// resetting ownership and depth.
func (b *Buffer) Clear() {
	defaultCell := NewCell(' ', NewStyle())
	for i := range b.back {
		b.back[i] = defaultCell
	}
}

// ClearRect clears a rectangular region to spaces with default style.
// Clearing ignores depth: it resets the region for the next pass.
func (b *Buffer) ClearRect(rect Rect) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	defaultCell := NewCell(' ', NewStyle())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			cell := b.Cell(x, y)
			if cell.IsContinuation() && x == rect.X && x > 0 {
				b.rawSet(x-1, y, defaultCell)
			}
			if cell.Width == 2 && x+1 == rect.Right() && x+1 < b.width {
				b.rawSet(x+1, y, defaultCell)
			}
			b.rawSet(x, y, defaultCell)
		}
	}
}

// Diff returns all cells that changed between front and back buffers.
// Cells are returned in row-major order (top-to-bottom, left-to-right)
// which optimizes terminal output by minimizing cursor moves.
func (b *Buffer) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			if !b.back[idx].Equal(b.front[idx]) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b.back[idx]})
			}
		}
	}
	return changes
}

// Swap copies the back buffer to the front buffer.
// Call this after flushing changes to the output device.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Line returns one row of the back buffer as a string with trailing
// spaces removed. Continuation cells are skipped. This is the
// line-oriented view consumed by the diffing flush stage.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var line strings.Builder
	for x := 0; x < b.width; x++ {
		cell := b.back[y*b.width+x]
		if cell.IsContinuation() {
			continue
		}
		if cell.Rune == 0 {
			line.WriteRune(' ')
		} else {
			line.WriteRune(cell.Rune)
		}
	}
	return strings.TrimRight(line.String(), " ")
}

// String renders the back buffer to a string for debugging.
// Each row is separated by a newline.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.back[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the back buffer content with trailing spaces
// removed from each line.
func (b *Buffer) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.WriteString(b.Line(y))
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// Resize changes the buffer dimensions, preserving content where possible.
// Content in the overlapping region is preserved; new areas are cleared.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}

	newSize := width * height
	newFront := make([]Cell, newSize)
	newBack := make([]Cell, newSize)

	defaultCell := NewCell(' ', NewStyle())
	for i := range newFront {
		newFront[i] = defaultCell
		newBack[i] = defaultCell
	}

	copyWidth := min(width, b.width)
	copyHeight := min(height, b.height)
	for y := 0; y < copyHeight; y++ {
		for x := 0; x < copyWidth; x++ {
			oldIdx := y*b.width + x
			newIdx := y*width + x
			newFront[newIdx] = b.front[oldIdx]
			newBack[newIdx] = b.back[oldIdx]
		}
	}

	b.front = newFront
	b.back = newBack
	b.width = width
	b.height = height
}
