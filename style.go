package lattice

// Attr is a bitfield of text attributes, so styles compare and store as a
// single byte.
type Attr uint8

const (
	AttrNone Attr = 0

	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

// Style is the visual styling of one cell: foreground, background, and
// attribute bits. The zero value paints with the terminal defaults.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the default style.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy with the foreground color replaced.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the background color replaced.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// The attribute setters each return a copy with one bit added, so styles
// build up by chaining.

func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Blink is passed through to the output stage even though few terminals
// honor it.
func (s Style) Blink() Style {
	s.Attrs |= AttrBlink
	return s
}

func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

func (s Style) Strikethrough() Style {
	s.Attrs |= AttrStrikethrough
	return s
}

// Equal reports whether both styles paint identically.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// HasAttr reports whether every attribute in a is set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
