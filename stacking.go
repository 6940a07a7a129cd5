package lattice

import "sort"

// StackingContext is an isolated depth-ordering scope: a root node plus
// the descendants that paint inside it. Descendants that start their own
// context appear as child contexts instead of members.
type StackingContext struct {
	Root *Node
	Z    int

	parent        *StackingContext
	childContexts []*StackingContext
	members       []stackEntry
}

// stackEntry is one direct member of a context, captured with the style
// facts the ordering algorithm needs.
type stackEntry struct {
	node       *Node
	positioned bool
	z          int
}

// StackingManager builds and caches stacking contexts for one render
// pass. It is an explicit per-pass object: call Reset between unrelated
// trees, or entries keyed by discarded nodes accumulate.
type StackingManager struct {
	contexts map[NodeID]*StackingContext
}

// NewStackingManager creates an empty manager.
func NewStackingManager() *StackingManager {
	return &StackingManager{
		contexts: make(map[NodeID]*StackingContext),
	}
}

// Reset drops all cached contexts. Must be called when switching to an
// unrelated node tree and between passes whose tree structure changed.
func (m *StackingManager) Reset() {
	m.contexts = make(map[NodeID]*StackingContext)
}

// Context returns the stacking context rooted at node, building the
// context tree for node's subtree on first access.
func (m *StackingManager) Context(node *Node) *StackingContext {
	if ctx, ok := m.contexts[node.ID()]; ok {
		return ctx
	}

	ctx := &StackingContext{
		Root: node,
		Z:    node.Computed().ZIndex,
	}
	m.contexts[node.ID()] = ctx
	// A scrollbox root paints its subtree through its viewport, same as a
	// scrollbox member: its children must not join the global order.
	if node.NodeKind() != KindScrollBox {
		for _, child := range node.Children() {
			m.collect(ctx, child)
		}
	}
	return ctx
}

// collect walks a subtree, assigning each node either to the current
// context's member list or to a new child context.
func (m *StackingManager) collect(ctx *StackingContext, node *Node) {
	style := node.Computed()

	if createsContext(node) {
		child := &StackingContext{
			Root:   node,
			Z:      style.ZIndex,
			parent: ctx,
		}
		ctx.childContexts = append(ctx.childContexts, child)
		m.contexts[node.ID()] = child
		if node.NodeKind() != KindScrollBox {
			for _, c := range node.Children() {
				m.collect(child, c)
			}
		}
		return
	}

	ctx.members = append(ctx.members, stackEntry{
		node:       node,
		positioned: style.Position.IsPositioned(),
		z:          style.ZIndex,
	})

	// A scrollbox paints its own subtree through its viewport, so its
	// descendants never enter the global order.
	if node.NodeKind() == KindScrollBox {
		return
	}
	for _, c := range node.Children() {
		m.collect(ctx, c)
	}
}

// createsContext reports whether a node starts a new stacking context:
// positioned nodes with non-zero z-index, fixed/sticky nodes regardless
// of z-index, and flex/grid containers with non-zero z-index. The tree
// root always gets a context, handled directly in Context.
func createsContext(node *Node) bool {
	style := node.Computed()
	if style.Position == PositionFixed || style.Position == PositionSticky {
		return true
	}
	if style.ZIndex == 0 {
		return false
	}
	if style.Position.IsPositioned() {
		return true
	}
	return style.Display == DisplayFlex || style.Display == DisplayGrid
}

// stackItem is one node of the linearized paint order, stamped with the
// layer id of its owning context and the depth its cells are written at.
type stackItem struct {
	node  *Node
	layer int
	depth int
}

// RenderingOrder linearizes a context into paint order:
//
//  1. the context root itself (its background and border)
//  2. child contexts with negative z-index, ascending
//  3. non-positioned members in document order
//  4. child contexts with z-index zero, in document order
//  5. positioned members with z-index zero, in document order
//  6. child contexts with positive z-index, ascending
//  7. positioned members with positive z-index, ascending
//
// Sorts are stable, so document order breaks every tie. Child contexts
// are expanded recursively in place.
func (m *StackingManager) RenderingOrder(ctx *StackingContext) []*Node {
	items := m.paintList(ctx)
	order := make([]*Node, len(items))
	for i, item := range items {
		order[i] = item.node
	}
	return order
}

// paintList is RenderingOrder with ownership metadata: each context gets
// a fresh layer id in paint sequence, and each node carries the depth
// its cells are written at (the member's own z-index within its
// context's layer).
func (m *StackingManager) paintList(ctx *StackingContext) []stackItem {
	var items []stackItem
	layerSeq := 0
	m.appendItems(&items, ctx, &layerSeq)
	return items
}

func (m *StackingManager) appendItems(items *[]stackItem, ctx *StackingContext, layerSeq *int) {
	layer := *layerSeq
	*layerSeq++

	*items = append(*items, stackItem{node: ctx.Root, layer: layer, depth: ctx.Z})

	var negative, zero, positive []*StackingContext
	for _, c := range ctx.childContexts {
		switch {
		case c.Z < 0:
			negative = append(negative, c)
		case c.Z == 0:
			zero = append(zero, c)
		default:
			positive = append(positive, c)
		}
	}
	sort.SliceStable(negative, func(i, j int) bool { return negative[i].Z < negative[j].Z })
	sort.SliceStable(positive, func(i, j int) bool { return positive[i].Z < positive[j].Z })

	for _, c := range negative {
		m.appendItems(items, c, layerSeq)
	}

	for _, e := range ctx.members {
		if !e.positioned {
			*items = append(*items, stackItem{node: e.node, layer: layer, depth: e.z})
		}
	}

	for _, c := range zero {
		m.appendItems(items, c, layerSeq)
	}

	for _, e := range ctx.members {
		if e.positioned && e.z == 0 {
			*items = append(*items, stackItem{node: e.node, layer: layer, depth: 0})
		}
	}

	for _, c := range positive {
		m.appendItems(items, c, layerSeq)
	}

	var posMembers []stackEntry
	for _, e := range ctx.members {
		if e.positioned && e.z > 0 {
			posMembers = append(posMembers, e)
		}
	}
	sort.SliceStable(posMembers, func(i, j int) bool { return posMembers[i].z < posMembers[j].z })
	for _, e := range posMembers {
		*items = append(*items, stackItem{node: e.node, layer: layer, depth: e.z})
	}
}
