package lattice

// Viewport tracks the clip rectangle of one scrollable region. The
// clipping area is the region's bounds shifted by the negative scroll
// offset, intersected with the parent viewport's clipping area; it is
// always a valid (possibly empty) rectangle.
type Viewport struct {
	node    *Node
	bounds  Rect
	scrollX int
	scrollY int
	clip    Rect

	parent   *Viewport
	children []*Viewport
}

// Bounds returns the viewport's unclipped bounds.
func (v *Viewport) Bounds() Rect {
	return v.bounds
}

// ClippingArea returns the current clip rectangle.
func (v *Viewport) ClippingArea() Rect {
	return v.clip
}

// Clip intersects a candidate region with the viewport's clipping area.
// The second return is false when the region is fully outside the
// viewport (the caller should skip painting it).
func (v *Viewport) Clip(region Rect) (Rect, bool) {
	clipped := region.Intersect(v.clip)
	if clipped.IsEmpty() {
		return Rect{}, false
	}
	return clipped, true
}

// SetScroll updates the viewport's scroll offset, recomputes the
// clipping area, and cascades the recomputation to all child viewports.
func (v *Viewport) SetScroll(x, y int) {
	v.scrollX = x
	v.scrollY = y
	v.recompute()
}

// SetBounds moves the viewport and recomputes clipping.
func (v *Viewport) SetBounds(bounds Rect) {
	v.bounds = bounds
	v.recompute()
}

func (v *Viewport) recompute() {
	area := v.bounds.Translate(-v.scrollX, -v.scrollY)
	if v.parent != nil {
		area = area.Intersect(v.parent.clip)
	}
	v.clip = area
	for _, child := range v.children {
		child.recompute()
	}
}

// ViewportManager tracks viewports by node identity for one render pass.
// Like the stacking manager it has an explicit lifetime: Reset between
// unrelated trees, or entries for discarded nodes accumulate.
type ViewportManager struct {
	viewports map[NodeID]*Viewport
}

// NewViewportManager creates an empty manager.
func NewViewportManager() *ViewportManager {
	return &ViewportManager{
		viewports: make(map[NodeID]*Viewport),
	}
}

// Reset drops all tracked viewports.
func (m *ViewportManager) Reset() {
	m.viewports = make(map[NodeID]*Viewport)
}

// Create registers a viewport for a node, linking it to the viewport of
// the nearest ancestor that has one. Re-creating an existing viewport
// updates its bounds in place so child links survive.
func (m *ViewportManager) Create(node *Node, bounds Rect) *Viewport {
	if v, ok := m.viewports[node.ID()]; ok {
		v.SetBounds(bounds)
		return v
	}

	v := &Viewport{
		node:   node,
		bounds: bounds,
	}
	for p := node.Parent(); p != nil; p = p.Parent() {
		if parent, ok := m.viewports[p.ID()]; ok {
			v.parent = parent
			parent.children = append(parent.children, v)
			break
		}
	}
	v.recompute()
	m.viewports[node.ID()] = v
	return v
}

// Of returns the viewport registered for a node.
func (m *ViewportManager) Of(node *Node) (*Viewport, bool) {
	v, ok := m.viewports[node.ID()]
	return v, ok
}

// Enclosing returns the viewport of the nearest ancestor (or the node
// itself) that has one.
func (m *ViewportManager) Enclosing(node *Node) (*Viewport, bool) {
	for n := node; n != nil; n = n.Parent() {
		if v, ok := m.viewports[n.ID()]; ok {
			return v, true
		}
	}
	return nil, false
}

// Remove drops a node's viewport, detaching it from its parent and
// reattaching its children to the grandparent.
func (m *ViewportManager) Remove(node *Node) {
	v, ok := m.viewports[node.ID()]
	if !ok {
		return
	}
	delete(m.viewports, node.ID())

	if v.parent != nil {
		siblings := v.parent.children
		for i, c := range siblings {
			if c == v {
				v.parent.children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	for _, child := range v.children {
		child.parent = v.parent
		if v.parent != nil {
			v.parent.children = append(v.parent.children, child)
		}
		child.recompute()
	}
	v.children = nil
}
