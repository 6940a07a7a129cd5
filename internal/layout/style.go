package layout

// Display selects the layout algorithm used for a node's children.
type Display uint8

const (
	DisplayBlock Display = iota // Children stacked vertically with margin collapsing
	DisplayFlex                 // Flexbox main/cross axis layout
	DisplayGrid                 // Grid track layout
)

// Position specifies how a node participates in positioning and stacking.
// No inset properties are defined for this grid model, so position does not
// move a node out of flow; it controls stacking-context creation and paint
// grouping only.
type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky
)

// IsPositioned returns true for any position mode other than static.
func (p Position) IsPositioned() bool {
	return p != PositionStatic
}

// Direction specifies the main axis for laying out flex children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	RowReverse                     // Children laid out right-to-left
	Column                         // Children laid out top-to-bottom
	ColumnReverse                  // Children laid out bottom-to-top
)

// IsRow returns true for the horizontal main-axis directions.
func (d Direction) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse returns true for the reverse variants.
func (d Direction) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// Wrap specifies whether flex children wrap onto multiple lines.
type Wrap uint8

const (
	NoWrap      Wrap = iota // Single line, children may shrink
	WrapLines               // Children wrap onto new lines
	WrapReverse             // Wrap with reversed line stacking order
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Half-size space at edges, full between
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// AlignContent specifies how wrapped flex lines are distributed on the
// cross axis.
type AlignContent uint8

const (
	ContentStart AlignContent = iota
	ContentEnd
	ContentCenter
	ContentStretch
	ContentSpaceBetween
	ContentSpaceAround
)

// AutoFlow specifies how auto-placed grid items fill the track grid.
type AutoFlow uint8

const (
	FlowRow         AutoFlow = iota // Fill row by row
	FlowColumn                      // Fill column by column
	FlowRowDense                    // Row-major, backfilling earlier holes
	FlowColumnDense                 // Column-major, backfilling earlier holes
)

// IsDense returns true for the dense packing variants.
func (f AutoFlow) IsDense() bool {
	return f == FlowRowDense || f == FlowColumnDense
}

// IsColumn returns true for the column-major variants.
func (f AutoFlow) IsColumn() bool {
	return f == FlowColumn || f == FlowColumnDense
}

// Style contains all layout properties for a node.
type Style struct {
	// Algorithm selection and stacking
	Display  Display
	Position Position
	ZIndex   int

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	Wrap           Wrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignContent
	RowGap         int // Space between lines / grid rows
	ColumnGap      int // Space between items / grid columns

	// Flex item properties
	FlexGrow   float64
	FlexShrink float64 // Default 1
	FlexBasis  Value   // Main-axis base size; Auto = use measured size
	Order      int     // Lower orders lay out first; ties keep document order
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Grid container properties
	TemplateColumns GridTemplate
	TemplateRows    GridTemplate
	AutoFlow        AutoFlow

	// Grid item properties
	GridColumn GridPlacement
	GridRow    GridPlacement

	// Spacing
	Padding Edges
	Margin  Edges

	// Overflow: a scrollable axis lifts the corresponding constraint for
	// children, letting content grow past the visible window.
	ScrollX bool
	ScrollY bool
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Display:    DisplayBlock,
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1.0,
		FlexBasis:  Auto(),
	}
}

// MainGap returns the gap applied along the given main axis.
func (s Style) MainGap(d Direction) int {
	if d.IsRow() {
		return s.ColumnGap
	}
	return s.RowGap
}

// CrossGap returns the gap applied between flex lines for the given
// main axis.
func (s Style) CrossGap(d Direction) int {
	if d.IsRow() {
		return s.RowGap
	}
	return s.ColumnGap
}
