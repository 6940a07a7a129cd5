// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package lattice

import "github.com/lattice-tui/lattice/internal/layout"

// Display selects the layout algorithm for a node's children.
type Display = layout.Display

const (
	DisplayBlock = layout.DisplayBlock
	DisplayFlex  = layout.DisplayFlex
	DisplayGrid  = layout.DisplayGrid
)

// Position specifies how a node participates in stacking.
type Position = layout.Position

const (
	PositionStatic   = layout.PositionStatic
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
	PositionFixed    = layout.PositionFixed
	PositionSticky   = layout.PositionSticky
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// Wrap specifies whether flex children wrap onto multiple lines.
type Wrap = layout.Wrap

const (
	NoWrap      = layout.NoWrap
	WrapLines   = layout.WrapLines
	WrapReverse = layout.WrapReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// AlignContent specifies how wrapped flex lines are distributed.
type AlignContent = layout.AlignContent

const (
	ContentStart        = layout.ContentStart
	ContentEnd          = layout.ContentEnd
	ContentCenter       = layout.ContentCenter
	ContentStretch      = layout.ContentStretch
	ContentSpaceBetween = layout.ContentSpaceBetween
	ContentSpaceAround  = layout.ContentSpaceAround
)

// AutoFlow specifies grid auto-placement order.
type AutoFlow = layout.AutoFlow

const (
	FlowRow         = layout.FlowRow
	FlowColumn      = layout.FlowColumn
	FlowRowDense    = layout.FlowRowDense
	FlowColumnDense = layout.FlowColumnDense
)

// Value represents a dimension value (fixed, percent, viewport, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
	UnitVW      = layout.UnitVW
	UnitVH      = layout.UnitVH
)

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// LayoutResult holds the computed layout for a node.
type LayoutResult = layout.Layout

// ChildLayout pairs a child with its computed bounding box.
type ChildLayout = layout.ChildLayout

// Dimensions describes a node's outer and content size.
type Dimensions = layout.Dimensions

// Constraints bound one layout computation.
type Constraints = layout.Constraints

// Unbounded marks a constraint axis with no limit.
const Unbounded = layout.Unbounded

// Layoutable is the interface nodes implement for layout calculation.
type Layoutable = layout.Layoutable

// GridTemplate describes the tracks of one grid axis.
type GridTemplate = layout.GridTemplate

// GridPlacement specifies where a grid item sits along one axis.
type GridPlacement = layout.GridPlacement

// LayoutError carries the classification of a caught layout failure.
type LayoutError = layout.LayoutError

// ErrorKind classifies a failure observed during a render pass.
type ErrorKind = layout.ErrorKind

const (
	ErrLayoutCalculation = layout.ErrLayoutCalculation
	ErrMalformedStyle    = layout.ErrMalformedStyle
	ErrScrollTarget      = layout.ErrScrollTarget
)

// ErrorHook receives classified layout errors.
type ErrorHook = layout.ErrorHook

// Fixed creates a Value with a fixed character count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// DefaultLayoutStyle returns a LayoutStyle with default values.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Calculate performs layout on the given tree.
func Calculate(root Layoutable, c Constraints) {
	layout.Calculate(root, c)
}

// CalculateWithHook is Calculate with an error classification hook.
func CalculateWithHook(root Layoutable, c Constraints, hook ErrorHook) {
	layout.CalculateWithHook(root, c, hook)
}

// ParseGridTemplate parses a grid template token string.
func ParseGridTemplate(s string) (GridTemplate, bool) {
	return layout.ParseTemplate(s)
}

// FrTemplate builds a template of purely fractional tracks from weights.
func FrTemplate(weights ...float64) GridTemplate {
	return layout.FrTemplate(weights...)
}
