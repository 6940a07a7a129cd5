package lattice

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{
			TopLeft:     '┌',
			Top:         '─',
			TopRight:    '┐',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '└',
			Bottom:      '─',
			BottomRight: '┘',
		}
	case BorderDouble:
		return BorderChars{
			TopLeft:     '╔',
			Top:         '═',
			TopRight:    '╗',
			Left:        '║',
			Right:       '║',
			BottomLeft:  '╚',
			Bottom:      '═',
			BottomRight: '╝',
		}
	case BorderRounded:
		return BorderChars{
			TopLeft:     '╭',
			Top:         '─',
			TopRight:    '╮',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '╰',
			Bottom:      '─',
			BottomRight: '╯',
		}
	case BorderThick:
		return BorderChars{
			TopLeft:     '┏',
			Top:         '━',
			TopRight:    '┓',
			Left:        '┃',
			Right:       '┃',
			BottomLeft:  '┗',
			Bottom:      '━',
			BottomRight: '┛',
		}
	default:
		// BorderNone or unknown - return spaces
		return BorderChars{
			TopLeft:     ' ',
			Top:         ' ',
			TopRight:    ' ',
			Left:        ' ',
			Right:       ' ',
			BottomLeft:  ' ',
			Bottom:      ' ',
			BottomRight: ' ',
		}
	}
}

// DrawBox draws a box border on the buffer at the specified rectangle.
// The box is drawn using the specified border style and style (colors/attributes).
// If the rectangle is smaller than 2x2, the function does nothing.
func DrawBox(buf *Buffer, rect Rect, border BorderStyle, style Style) {
	proto := NewCell(' ', style)
	DrawBoxCell(buf, rect, border, proto, buf.Rect())
}

// DrawBoxCell draws a box border using proto for style, ownership, and
// depth, with every cell clipped to clip. This is the variant the paint
// stage uses so border cells participate in depth resolution.
func DrawBoxCell(buf *Buffer, rect Rect, border BorderStyle, proto Cell, clip Rect) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	if border == BorderNone {
		return
	}

	chars := border.Chars()
	clip = clip.Intersect(buf.Rect())
	if clip.IsEmpty() {
		return
	}

	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	set := func(x, y int, r rune) {
		if !clip.Contains(x, y) {
			return
		}
		c := proto
		c.Rune = r
		c.Width = 1
		buf.SetCell(x, y, c)
	}

	// Corners
	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	// Top and bottom edges
	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}

	// Left and right edges
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}

// DrawBoxGradient draws a box border with a gradient applied around the
// perimeter. The gradient runs Start→End over the first half of the
// perimeter and End→Start over the second, so there is no color
// discontinuity where the perimeter wraps.
func DrawBoxGradient(buf *Buffer, rect Rect, border BorderStyle, g Gradient, baseStyle Style) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	if border == BorderNone {
		return
	}

	chars := border.Chars()

	clipped := rect.Intersect(buf.Rect())
	if clipped.IsEmpty() || clipped.Width < 2 || clipped.Height < 2 {
		return
	}

	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1
	width := float64(rect.Width)
	height := float64(rect.Height)
	perimeter := 2*width + 2*height - 4

	// Position along the perimeter, clockwise from the top-left, mirrored
	// at the halfway point.
	perimeterT := func(x, y int) float64 {
		var pos float64
		switch {
		case y == top:
			pos = float64(x - left)
		case x == right:
			pos = width - 1 + float64(y-top)
		case y == bottom:
			pos = width - 1 + height - 1 + float64(right-x)
		default:
			pos = width - 1 + height - 1 + width - 1 + float64(bottom-y)
		}
		t := pos / perimeter
		if t <= 0.5 {
			return 2 * t
		}
		return 2 * (1 - t)
	}

	set := func(x, y int, r rune) {
		style := baseStyle
		style.Fg = g.At(perimeterT(x, y))
		buf.SetRune(x, y, r, style)
	}

	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}
