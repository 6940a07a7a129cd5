package layout

// blockLayout stacks children vertically in document order.
//
// Adjacent vertical margins collapse: the gap between two consecutive
// children is max(prev.Margin.Bottom, next.Margin.Top), not their sum.
// Auto-width children fill the available width. A child that fails to
// measure is skipped without aborting the pass.
func blockLayout(node Layoutable, style Style, cc Constraints, hook ErrorHook) []ChildLayout {
	boxes := resolveChildren(node.LayoutChildren(), cc, true, hook)
	if len(boxes) == 0 {
		return nil
	}

	layouts := make([]ChildLayout, 0, len(boxes))
	y := 0
	prevBottomMargin := 0

	for i, box := range boxes {
		if i == 0 {
			y += box.style.Margin.Top
		} else {
			y += max(prevBottomMargin, box.style.Margin.Top)
		}

		rect := NewRect(box.style.Margin.Left, y, box.width, box.height)
		layouts = append(layouts, ChildLayout{Node: box.node, Rect: rect})

		y += box.height
		prevBottomMargin = box.style.Margin.Bottom
	}

	return layouts
}
