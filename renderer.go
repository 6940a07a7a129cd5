package lattice

import (
	"github.com/lattice-tui/lattice/internal/debug"
	"github.com/lattice-tui/lattice/internal/layout"
)

// paintFrame carries the painting context for one node: cell ownership,
// the active clip rectangle, and the offset applied when a scroll region
// translates content coordinates onto the screen.
type paintFrame struct {
	layer int
	depth int
	owner NodeID

	offsetX int
	offsetY int
	clip    Rect

	viewports *ViewportManager
}

// cell builds a Cell stamped with the frame's ownership metadata.
func (f paintFrame) cell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(RuneWidth(r)),
		Layer: f.layer,
		Node:  f.owner,
		Depth: f.depth,
	}
}

// Renderer orchestrates one render pass: layout, stacking order, then
// painting each node into the cell buffer under the active clip. The
// renderer owns its stacking and viewport managers, so their lifetime is
// the renderer's; rendering an unrelated tree through the same renderer
// resets them.
type Renderer struct {
	stacking  *StackingManager
	viewports *ViewportManager
	hook      ErrorHook

	lastRoot NodeID
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithErrorHook installs a hook receiving classified layout errors. A
// failing node's subtree is omitted from the pass; the pass completes.
func WithErrorHook(hook ErrorHook) RendererOption {
	return func(r *Renderer) {
		r.hook = hook
	}
}

// NewRenderer creates a renderer with fresh managers.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		stacking:  NewStackingManager(),
		viewports: NewViewportManager(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays out root to fill the buffer and paints the tree into it.
//
// Layout runs once per frame: a clean root (no node marked dirty since
// the last pass) skips straight to painting, which makes the cached
// bounds the single source of truth within a frame. Scroll position
// changes do not dirty layout; they only change what paint makes
// visible.
func (r *Renderer) Render(root *Node, buf *Buffer) {
	if root == nil || buf == nil {
		return
	}

	// Switching trees invalidates everything keyed by node identity.
	if r.lastRoot != root.ID() {
		r.stacking.Reset()
		r.viewports.Reset()
		r.lastRoot = root.ID()
	}

	w, h := buf.Size()
	if root.IsDirty() {
		c := layout.Tight(w, h, layout.Size{Width: w, Height: h})
		layout.CalculateWithHook(root, c, r.hook)
		// Stacking depends on the tree shape, which only changes along
		// with layout.
		r.stacking.Reset()
	}

	buf.Clear()
	r.viewports.Reset()
	rootVp := r.viewports.Create(root, buf.Rect())

	ctx := r.stacking.Context(root)
	items := r.stacking.paintList(ctx)
	debug.Log("render pass: %d nodes in paint order", len(items))

	for _, item := range items {
		f := paintFrame{
			layer:     item.layer,
			depth:     item.depth,
			clip:      rootVp.ClippingArea(),
			viewports: r.viewports,
		}
		item.node.paint(buf, f)
	}
}

// --- Node paint dispatch ---

// paint renders a single node into the buffer. Painting is dispatched on
// the node kind; only a scrollbox descends into its subtree, because the
// global paint order already linearizes every other node.
func (n *Node) paint(buf *Buffer, f paintFrame) {
	f.owner = n.id

	switch n.kind {
	case KindScrollBox:
		n.paintScrollBox(buf, f)
	case KindText:
		bounds := n.Bounds().Translate(f.offsetX, f.offsetY)
		n.paintChrome(buf, f, bounds)
		n.paintText(buf, f)
	default:
		// Box and the interactive kinds share box painting; interactive
		// styling beyond this is the hosting framework's concern.
		bounds := n.Bounds().Translate(f.offsetX, f.offsetY)
		n.paintChrome(buf, f, bounds)
		if n.text != "" {
			n.paintText(buf, f)
		}
	}
}

// paintChrome fills the node's background and draws its border.
func (n *Node) paintChrome(buf *Buffer, f paintFrame, bounds Rect) {
	area := bounds.Intersect(f.clip)

	if n.gradient != nil {
		proto := f.cell(' ', NewStyle())
		buf.FillGradient(area, *n.gradient, proto)
	} else if n.background != nil {
		proto := f.cell(' ', *n.background)
		buf.FillCell(area, proto)
	}

	if n.border != BorderNone {
		proto := f.cell(' ', n.borderStyle)
		DrawBoxCell(buf, bounds, n.border, proto, f.clip)
	}
}

// paintText writes the node's text into its content area, honoring the
// horizontal alignment.
func (n *Node) paintText(buf *Buffer, f paintFrame) {
	if n.text == "" {
		return
	}
	content := n.ContentBounds().Translate(f.offsetX, f.offsetY)
	if content.IsEmpty() {
		return
	}

	width := StringWidth(n.text)
	x := content.X
	switch n.textAlign {
	case TextAlignCenter:
		x = content.X + max(0, (content.Width-width)/2)
	case TextAlignRight:
		x = content.X + max(0, content.Width-width)
	}

	proto := f.cell(' ', n.textStyle)
	clip := content.Intersect(f.clip)
	buf.SetText(x, content.Y, n.text, proto, clip)
}
