package lattice

import (
	"sync/atomic"

	"github.com/lattice-tui/lattice/internal/layout"
)

// NodeID uniquely identifies a node within a process. Cells record the id
// of the node that painted them.
type NodeID uint64

var nodeIDCounter atomic.Uint64

func nextNodeID() NodeID {
	return NodeID(nodeIDCounter.Add(1))
}

// NodeKind is the closed set of node variants. Rendering behavior is
// dispatched on the kind; there are no downcasts to specialized
// interfaces.
type NodeKind uint8

const (
	KindBox NodeKind = iota
	KindText
	KindScrollBox
	KindSelect
	KindInput
	KindTabSelect
)

// String returns the kind's tag, used in layout error reports.
func (k NodeKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindText:
		return "text"
	case KindScrollBox:
		return "scrollbox"
	case KindSelect:
		return "select"
	case KindInput:
		return "input"
	case KindTabSelect:
		return "tabselect"
	default:
		return "unknown"
	}
}

// Interactive reports whether this kind of node accepts focus and input.
func (k NodeKind) Interactive() bool {
	switch k {
	case KindSelect, KindInput, KindTabSelect:
		return true
	default:
		return false
	}
}

// TextAlign specifies how text is aligned within its content area.
type TextAlign int

const (
	// TextAlignLeft aligns text to the left edge (default).
	TextAlignLeft TextAlign = iota
	// TextAlignCenter centers text horizontally.
	TextAlignCenter
	// TextAlignRight aligns text to the right edge.
	TextAlignRight
)

// Node is one element of the render tree. The hosting framework creates
// and mutates nodes between passes; the layout engine writes bounds back
// into them during a pass.
type Node struct {
	id   NodeID
	kind NodeKind

	// Tree structure (single source of truth)
	children []*Node
	parent   *Node

	// Style: props are the cascaded input map, computed the resolved
	// form. computed is rebuilt lazily when props change.
	props    Props
	computed Computed
	resolved bool

	// Layout state
	layout layout.Layout
	dirty  bool

	// Visual properties
	border      BorderStyle
	borderStyle Style
	background  *Style    // nil = transparent
	gradient    *Gradient // optional gradient background

	// Text properties
	text      string
	textStyle Style
	textAlign TextAlign

	// Scroll state, non-nil only for KindScrollBox.
	scroll *ScrollState
}

// Compile-time check that Node implements Layoutable.
var _ Layoutable = (*Node)(nil)

// NewNode creates a node of the given kind with the given options.
func NewNode(kind NodeKind, opts ...Option) *Node {
	n := &Node{
		id:    nextNodeID(),
		kind:  kind,
		props: Props{},
		dirty: true,
	}
	if kind == KindScrollBox {
		n.scroll = newScrollState()
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Box creates a plain container node.
func Box(opts ...Option) *Node {
	return NewNode(KindBox, opts...)
}

// Text creates a text leaf node.
func Text(text string, opts ...Option) *Node {
	n := NewNode(KindText, opts...)
	n.text = text
	return n
}

// ScrollBox creates a vertically scrollable container node.
func ScrollBox(opts ...Option) *Node {
	return NewNode(KindScrollBox, opts...)
}

// ID returns the node's stable identifier.
func (n *Node) ID() NodeID {
	return n.id
}

// NodeKind returns the node's variant tag.
func (n *Node) NodeKind() NodeKind {
	return n.kind
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in document order. The slice is
// the node's own; callers must not mutate it.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild appends a child to this node, detaching it from any previous
// parent first.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	n.MarkDirty()
}

// InsertChild inserts a child at the given index, clamped to the valid
// range.
func (n *Node) InsertChild(index int, child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	if index < 0 {
		index = 0
	}
	if index > len(n.children) {
		index = len(n.children)
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.MarkDirty()
}

// RemoveChild detaches a child from this node. No-op if the node is not a
// child.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return
		}
	}
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = n.children[:0]
	n.MarkDirty()
}

// Walk visits this node and all descendants depth-first in document
// order. Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// SetText replaces the node's text content.
func (n *Node) SetText(text string) {
	if n.text == text {
		return
	}
	n.text = text
	n.MarkDirty()
}

// GetText returns the node's text content.
func (n *Node) GetText() string {
	return n.text
}

// SetProps replaces the node's style map and invalidates the computed
// style.
func (n *Node) SetProps(p Props) {
	n.props = p
	n.resolved = false
	n.MarkDirty()
}

// SetProp sets one style property and invalidates the computed style.
func (n *Node) SetProp(key string, value any) {
	if n.props == nil {
		n.props = Props{}
	}
	n.props[key] = value
	n.resolved = false
	n.MarkDirty()
}

// Computed returns the node's resolved style, rebuilding it if props have
// changed since the last resolution.
func (n *Node) Computed() Computed {
	if !n.resolved {
		n.computed = Resolve(n.props, nil)
		n.resolved = true
	}
	return n.computed
}

// Bounds returns the node's border box as computed by the last layout
// pass, in absolute buffer coordinates.
func (n *Node) Bounds() Rect {
	return n.layout.Rect
}

// ContentBounds returns the node's content box (bounds minus padding and
// border).
func (n *Node) ContentBounds() Rect {
	return n.layout.ContentRect
}

// MarkDirty marks this node and all ancestors as needing layout. The
// renderer skips the layout pass entirely when the root is clean, so
// dirtiness must propagate upward.
func (n *Node) MarkDirty() {
	for p := n; p != nil; p = p.parent {
		if p.dirty {
			return
		}
		p.dirty = true
	}
}

// --- Layoutable implementation ---

// Kind returns the node's variant tag for layout error reports.
func (n *Node) Kind() string {
	return n.kind.String()
}

// LayoutStyle returns the resolved layout style. A visible border
// consumes one cell of padding on each side.
func (n *Node) LayoutStyle() LayoutStyle {
	style := n.Computed().Style
	if n.border != BorderNone {
		style.Padding.Top++
		style.Padding.Right++
		style.Padding.Bottom++
		style.Padding.Left++
	}
	if n.kind == KindScrollBox {
		style.ScrollY = true
		if n.scroll != nil && n.scroll.horizontal {
			style.ScrollX = true
		}
	}
	return style
}

// LayoutChildren returns the children to be laid out.
func (n *Node) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

// SetLayout stores the computed layout.
func (n *Node) SetLayout(l LayoutResult) {
	n.layout = l
}

// GetLayout returns the last computed layout.
func (n *Node) GetLayout() LayoutResult {
	return n.layout
}

// IsDirty returns whether this node needs layout recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// SetDirty marks this node as needing recalculation or not.
func (n *Node) SetDirty(dirty bool) {
	n.dirty = dirty
}

// IntrinsicSize returns the natural content-based dimensions.
func (n *Node) IntrinsicSize() (width, height int) {
	style := n.Computed().Style

	// A scrollbox has no intrinsic size along its scroll axes: it takes
	// whatever space the layout grants and scrolls the rest.
	if n.kind == KindScrollBox {
		return 0, 0
	}

	if n.text != "" {
		width = StringWidth(n.text) + style.Padding.Horizontal()
		height = 1 + style.Padding.Vertical()
	} else {
		width, height = n.childIntrinsicSize(style)
	}

	if n.border != BorderNone {
		width += 2
		height += 2
	}
	return width, height
}

// childIntrinsicSize aggregates children's intrinsic sizes along the
// node's layout axes.
func (n *Node) childIntrinsicSize(style LayoutStyle) (width, height int) {
	if len(n.children) == 0 {
		return style.Padding.Horizontal(), style.Padding.Vertical()
	}

	horizontal := style.Display == DisplayFlex && style.Direction.IsRow()
	for i, child := range n.children {
		cw, ch := child.IntrinsicSize()
		cs := child.Computed().Style
		cw += cs.Margin.Horizontal()
		ch += cs.Margin.Vertical()
		if horizontal {
			width += cw
			if i > 0 {
				width += style.ColumnGap
			}
			height = max(height, ch)
		} else {
			height += ch
			if i > 0 {
				height += style.RowGap
			}
			width = max(width, cw)
		}
	}
	width += style.Padding.Horizontal()
	height += style.Padding.Vertical()
	return width, height
}
