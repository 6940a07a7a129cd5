package layout

// Unbounded marks a constraint axis with no limit. Scrollable content uses
// it to let children grow past the visible window.
const Unbounded = -1

// Constraints bound one layout computation. They propagate strictly
// downward: a child's resolved size must not exceed MaxWidth/MaxHeight when
// those are bounded. Available dimensions are the space the parent offers;
// either may be Unbounded.
type Constraints struct {
	MaxWidth        int
	MaxHeight       int
	AvailableWidth  int
	AvailableHeight int

	// Viewport holds the root grid dimensions for resolving vw/vh units.
	Viewport Size
}

// Tight returns Constraints that both offer and cap the given dimensions.
func Tight(width, height int, viewport Size) Constraints {
	return Constraints{
		MaxWidth:        width,
		MaxHeight:       height,
		AvailableWidth:  width,
		AvailableHeight: height,
		Viewport:        viewport,
	}
}

// BoundWidth clamps w to MaxWidth when that axis is bounded.
func (c Constraints) BoundWidth(w int) int {
	if c.MaxWidth != Unbounded && w > c.MaxWidth {
		return c.MaxWidth
	}
	return w
}

// BoundHeight clamps h to MaxHeight when that axis is bounded.
func (c Constraints) BoundHeight(h int) int {
	if c.MaxHeight != Unbounded && h > c.MaxHeight {
		return c.MaxHeight
	}
	return h
}

// ForContent derives the constraints passed to children occupying a content
// box of the given size. An Unbounded input dimension stays unbounded.
func (c Constraints) ForContent(width, height int) Constraints {
	child := Constraints{
		MaxWidth:        width,
		MaxHeight:       height,
		AvailableWidth:  width,
		AvailableHeight: height,
		Viewport:        c.Viewport,
	}
	return child
}

// WithUnboundedHeight returns a copy that allows children to grow without a
// vertical limit. Scroll containers lay out their content this way.
func (c Constraints) WithUnboundedHeight() Constraints {
	c.MaxHeight = Unbounded
	c.AvailableHeight = Unbounded
	return c
}

// WithUnboundedWidth returns a copy that allows children to grow without a
// horizontal limit.
func (c Constraints) WithUnboundedWidth() Constraints {
	c.MaxWidth = Unbounded
	c.AvailableWidth = Unbounded
	return c
}
