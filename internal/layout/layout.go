package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box—the space allocated by the parent after
	// applying this node's margin. Use for hit testing and bounds.
	Rect Rect

	// ContentRect is Rect minus padding—the area where children are placed.
	// Use for rendering content and positioning children.
	ContentRect Rect
}

// ChildLayout pairs a child with its computed border box. Positions are
// relative to the parent's content-box origin (0, 0); Calculate translates
// them to absolute coordinates before storing each child's Layout.
type ChildLayout struct {
	Node Layoutable
	Rect Rect
}

// Dimensions describes a node's outer and inner size. ContentWidth and
// ContentHeight exclude border and padding and feed overflow/scroll
// calculations.
type Dimensions struct {
	Width         int
	Height        int
	ContentWidth  int
	ContentHeight int
}
