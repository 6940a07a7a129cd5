package lattice

import "strconv"

// Option configures a Node at construction time.
type Option func(*Node)

// --- Dimension options ---

// WithWidth sets a fixed width in terminal cells.
func WithWidth(cells int) Option {
	return func(n *Node) {
		n.SetProp("width", cells)
	}
}

// WithWidthPercent sets width as a percentage of the parent's available
// width.
func WithWidthPercent(percent float64) Option {
	return func(n *Node) {
		n.SetProp("width", formatPercent(percent))
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) Option {
	return func(n *Node) {
		n.SetProp("height", cells)
	}
}

// WithHeightPercent sets height as a percentage of the parent's available
// height.
func WithHeightPercent(percent float64) Option {
	return func(n *Node) {
		n.SetProp("height", formatPercent(percent))
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) Option {
	return func(n *Node) {
		n.SetProp("width", width)
		n.SetProp("height", height)
	}
}

// WithMaxHeight sets the maximum height in terminal cells.
func WithMaxHeight(cells int) Option {
	return func(n *Node) {
		n.SetProp("maxHeight", cells)
	}
}

// WithMaxWidth sets the maximum width in terminal cells.
func WithMaxWidth(cells int) Option {
	return func(n *Node) {
		n.SetProp("maxWidth", cells)
	}
}

// --- Layout options ---

// WithDisplay selects the layout algorithm for this node's children.
func WithDisplay(d Display) Option {
	return func(n *Node) {
		switch d {
		case DisplayFlex:
			n.SetProp("display", "flex")
		case DisplayGrid:
			n.SetProp("display", "grid")
		default:
			n.SetProp("display", "block")
		}
	}
}

// WithDirection sets the flex main axis direction.
func WithDirection(d Direction) Option {
	return func(n *Node) {
		switch d {
		case RowReverse:
			n.SetProp("flexDirection", "row-reverse")
		case Column:
			n.SetProp("flexDirection", "column")
		case ColumnReverse:
			n.SetProp("flexDirection", "column-reverse")
		default:
			n.SetProp("flexDirection", "row")
		}
	}
}

// WithGrow sets the flex grow factor.
func WithGrow(grow float64) Option {
	return func(n *Node) {
		n.SetProp("flexGrow", grow)
	}
}

// WithGap sets both row and column gaps.
func WithGap(gap int) Option {
	return func(n *Node) {
		n.SetProp("gap", gap)
	}
}

// WithMargin sets equal margin on all sides.
func WithMargin(cells int) Option {
	return func(n *Node) {
		n.SetProp("margin", cells)
	}
}

// WithPadding sets equal padding on all sides.
func WithPadding(cells int) Option {
	return func(n *Node) {
		n.SetProp("padding", cells)
	}
}

// WithPosition sets the position mode (stacking participation).
func WithPosition(p Position) Option {
	return func(n *Node) {
		switch p {
		case PositionRelative:
			n.SetProp("position", "relative")
		case PositionAbsolute:
			n.SetProp("position", "absolute")
		case PositionFixed:
			n.SetProp("position", "fixed")
		case PositionSticky:
			n.SetProp("position", "sticky")
		default:
			n.SetProp("position", "static")
		}
	}
}

// WithZIndex sets the stacking depth.
func WithZIndex(z int) Option {
	return func(n *Node) {
		n.SetProp("zIndex", z)
	}
}

// WithProps merges a raw style map into the node's props.
func WithProps(p Props) Option {
	return func(n *Node) {
		for k, v := range p {
			n.SetProp(k, v)
		}
	}
}

// --- Visual options ---

// WithBorder sets the border style drawn inside the node's bounds.
func WithBorder(border BorderStyle) Option {
	return func(n *Node) {
		n.border = border
	}
}

// WithBorderColor sets the style used for border characters.
func WithBorderColor(style Style) Option {
	return func(n *Node) {
		n.borderStyle = style
	}
}

// WithBackground fills the node's bounds with the given style.
func WithBackground(style Style) Option {
	return func(n *Node) {
		n.background = &style
	}
}

// WithGradient fills the node's background with a gradient.
func WithGradient(g Gradient) Option {
	return func(n *Node) {
		n.gradient = &g
	}
}

// WithTextStyle sets the style applied to the node's text content.
func WithTextStyle(style Style) Option {
	return func(n *Node) {
		n.textStyle = style
	}
}

// WithTextAlign sets horizontal text alignment within the content area.
func WithTextAlign(align TextAlign) Option {
	return func(n *Node) {
		n.textAlign = align
	}
}

// --- Scroll options ---

// WithScrollStep sets how many rows one arrow-key or wheel step scrolls.
func WithScrollStep(step int) Option {
	return func(n *Node) {
		if n.scroll != nil && step > 0 {
			n.scroll.step = step
		}
	}
}

// WithAutoScroll pins the scrollbox to the bottom when content grows
// while the view is already at (or within one row of) the bottom.
func WithAutoScroll() Option {
	return func(n *Node) {
		if n.scroll != nil {
			n.scroll.autoScroll = true
		}
	}
}

// WithHorizontalScroll additionally enables horizontal scrolling.
func WithHorizontalScroll() Option {
	return func(n *Node) {
		if n.scroll != nil {
			n.scroll.horizontal = true
		}
	}
}

// WithScrollbarStyle sets the track and thumb styles for the scrollbar.
func WithScrollbarStyle(track, thumb Style) Option {
	return func(n *Node) {
		if n.scroll != nil {
			n.scroll.trackStyle = track
			n.scroll.thumbStyle = thumb
		}
	}
}

// WithOnScroll registers a callback fired when the scroll position
// actually changes.
func WithOnScroll(fn func(top, left int)) Option {
	return func(n *Node) {
		if n.scroll != nil {
			n.scroll.onScroll = fn
		}
	}
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
