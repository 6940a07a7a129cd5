package layout

import "fmt"

// Calculate performs layout on the given tree, storing an absolute Layout
// on every node it reaches. The root is sized by its own style against the
// available space; children are laid out by the algorithm selected by each
// parent's display mode.
func Calculate(root Layoutable, c Constraints) {
	CalculateWithHook(root, c, nil)
}

// CalculateWithHook is Calculate with an error classification hook.
// A node whose measurement or placement panics is reported through the hook
// and contributes no layout; its subtree is omitted from the pass. The pass
// itself always completes.
func CalculateWithHook(root Layoutable, c Constraints, hook ErrorHook) {
	style := root.LayoutStyle()

	intrinsicW, intrinsicH, ok := safeIntrinsicSize(root, c, hook)
	if !ok {
		return
	}

	fallbackW := c.AvailableWidth
	if fallbackW == Unbounded {
		fallbackW = intrinsicW
	}
	fallbackH := c.AvailableHeight
	if fallbackH == Unbounded {
		fallbackH = intrinsicH
	}

	w := style.Width.Resolve(c.AvailableWidth, c.Viewport, fallbackW)
	h := style.Height.Resolve(c.AvailableHeight, c.Viewport, fallbackH)
	w, h = clampSize(style, c, w, h)

	rect := NewRect(0, 0, w, h)
	root.SetLayout(Layout{
		Rect:        rect,
		ContentRect: rect.Inset(style.Padding),
	})
	layoutSubtree(root, c, hook)
	root.SetDirty(false)
}

// layoutSubtree lays out node's children inside its content rect and
// recurses. The node's own Layout must already be stored.
func layoutSubtree(node Layoutable, c Constraints, hook ErrorHook) {
	children := node.LayoutChildren()
	if len(children) == 0 {
		node.SetDirty(false)
		return
	}

	style := node.LayoutStyle()
	content := node.GetLayout().ContentRect

	cc := c.ForContent(content.Width, content.Height)
	if style.ScrollY {
		cc = cc.WithUnboundedHeight()
	}
	if style.ScrollX {
		cc = cc.WithUnboundedWidth()
	}

	layouts := LayoutChildrenOf(node, cc, hook)

	for _, cl := range layouts {
		childStyle := cl.Node.LayoutStyle()
		abs := cl.Rect.Translate(content.X, content.Y)
		cl.Node.SetLayout(Layout{
			Rect:        abs,
			ContentRect: abs.Inset(childStyle.Padding),
		})
		layoutChildSubtree(cl.Node, cc, hook)
	}
	node.SetDirty(false)
}

// layoutChildSubtree recurses into one child, isolating panics so a failing
// subtree never aborts its siblings.
func layoutChildSubtree(child Layoutable, cc Constraints, hook ErrorHook) {
	defer func() {
		if r := recover(); r != nil {
			hook.report(ErrLayoutCalculation, child.Kind(), child.GetLayout().Rect, cc, fmt.Errorf("layout panic: %v", r))
		}
	}()
	layoutSubtree(child, cc, hook)
}

// LayoutChildrenOf computes child boxes for one node, dispatched by its
// display mode. Positions in the result are relative to the node's
// content-box origin. Children that fail to measure are absent from the
// result.
func LayoutChildrenOf(node Layoutable, cc Constraints, hook ErrorHook) []ChildLayout {
	style := node.LayoutStyle()
	switch style.Display {
	case DisplayFlex:
		return flexLayout(node, style, cc, hook)
	case DisplayGrid:
		return gridLayout(node, style, cc, hook)
	default:
		return blockLayout(node, style, cc, hook)
	}
}

// childBox is the per-child working state shared by the three algorithms.
type childBox struct {
	node   Layoutable
	style  Style
	width  int // border-box width
	height int // border-box height
}

// resolveChildren measures every child and resolves its initial border-box
// size. Children whose measurement panics are reported and omitted.
// fillWidth makes auto-width children span the available width (block
// behavior); flex and grid size auto children to content instead.
func resolveChildren(children []Layoutable, cc Constraints, fillWidth bool, hook ErrorHook) []childBox {
	boxes := make([]childBox, 0, len(children))
	for _, child := range children {
		intrinsicW, intrinsicH, ok := safeIntrinsicSize(child, cc, hook)
		if !ok {
			continue
		}
		style := child.LayoutStyle()

		fallbackW := intrinsicW
		if fillWidth && style.Width.IsAuto() && cc.AvailableWidth != Unbounded {
			fallbackW = cc.AvailableWidth - style.Margin.Horizontal()
			if fallbackW < intrinsicW {
				fallbackW = intrinsicW
			}
		}

		w := style.Width.Resolve(cc.AvailableWidth, cc.Viewport, fallbackW)
		h := style.Height.Resolve(cc.AvailableHeight, cc.Viewport, intrinsicH)
		w, h = clampSize(style, cc, w, h)

		boxes = append(boxes, childBox{node: child, style: style, width: w, height: h})
	}
	return boxes
}

// safeIntrinsicSize measures a node, recovering panics into a classified
// report. ok is false when measurement failed.
func safeIntrinsicSize(node Layoutable, c Constraints, hook ErrorHook) (w, h int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			hook.report(ErrLayoutCalculation, node.Kind(), Rect{}, c, fmt.Errorf("measure panic: %v", r))
			w, h, ok = 0, 0, false
		}
	}()
	w, h = node.IntrinsicSize()
	return w, h, true
}

// clampSize applies min/max style bounds then the downward constraints.
func clampSize(style Style, c Constraints, w, h int) (int, int) {
	minW := style.MinWidth.Resolve(c.AvailableWidth, c.Viewport, 0)
	minH := style.MinHeight.Resolve(c.AvailableHeight, c.Viewport, 0)
	if w < minW {
		w = minW
	}
	if h < minH {
		h = minH
	}
	if !style.MaxWidth.IsAuto() {
		if maxW := style.MaxWidth.Resolve(c.AvailableWidth, c.Viewport, w); w > maxW {
			w = maxW
		}
	}
	if !style.MaxHeight.IsAuto() {
		if maxH := style.MaxHeight.Resolve(c.AvailableHeight, c.Viewport, h); h > maxH {
			h = maxH
		}
	}
	w = c.BoundWidth(w)
	h = c.BoundHeight(h)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}
