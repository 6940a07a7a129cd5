package layout

import "sort"

// flexItem carries the per-item working state of one flex pass.
// Main/cross sizes are border-box; outer sizes add the item's margins.
type flexItem struct {
	childBox
	baseMain  int // measured main size before grow/shrink (wrap decisions)
	main      int
	cross     int
	mainPos   int // outer box start along the main axis
	crossPos  int // outer box start along the cross axis, relative to line
	grow      float64
	shrink    float64
	alignSelf Align
}

func (it *flexItem) mainMargins(isRow bool) (start, end int) {
	if isRow {
		return it.style.Margin.Left, it.style.Margin.Right
	}
	return it.style.Margin.Top, it.style.Margin.Bottom
}

func (it *flexItem) crossMargins(isRow bool) (start, end int) {
	if isRow {
		return it.style.Margin.Top, it.style.Margin.Bottom
	}
	return it.style.Margin.Left, it.style.Margin.Right
}

func (it *flexItem) outerMain(isRow bool) int {
	s, e := it.mainMargins(isRow)
	return s + it.main + e
}

func (it *flexItem) outerCross(isRow bool) int {
	s, e := it.crossMargins(isRow)
	return s + it.cross + e
}

// flexLine is one row (or column) of items after wrapping.
type flexLine struct {
	items    []*flexItem
	cross    int // line cross size
	crossPos int
}

// flexLayout lays out children along a main axis with an optional wrap,
// then aligns them on the cross axis.
//
// Wrapping decisions use the original measured main sizes; grow/shrink runs
// only in non-wrapping containers. Items sort by their order property with
// document order breaking ties; reverse directions reverse the sorted list.
func flexLayout(node Layoutable, style Style, cc Constraints, hook ErrorHook) []ChildLayout {
	isRow := style.Direction.IsRow()
	mainGap := style.MainGap(style.Direction)
	crossGap := style.CrossGap(style.Direction)

	availMain, availCross := cc.AvailableWidth, cc.AvailableHeight
	if !isRow {
		availMain, availCross = availCross, availMain
	}

	items := gatherFlexItems(node, cc, isRow, hook)
	if len(items) == 0 {
		return nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].style.Order < items[j].style.Order
	})
	if style.Direction.IsReverse() {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}

	lines := packFlexLines(items, style.Wrap, availMain, mainGap, isRow)

	if style.Wrap == NoWrap && availMain != Unbounded {
		resolveFlexibleSizes(lines[0], availMain, mainGap, isRow)
	}

	for _, line := range lines {
		positionMainAxis(line, style.JustifyContent, availMain, mainGap, isRow)
	}

	stackFlexLines(lines, style, availCross, crossGap, isRow)

	layouts := make([]ChildLayout, 0, len(items))
	for _, line := range lines {
		for _, it := range line.items {
			mainStart, _ := it.mainMargins(isRow)
			crossStart, _ := it.crossMargins(isRow)
			main := it.mainPos + mainStart
			cross := line.crossPos + it.crossPos + crossStart

			var rect Rect
			if isRow {
				rect = NewRect(main, cross, it.main, it.cross)
			} else {
				rect = NewRect(cross, main, it.cross, it.main)
			}
			layouts = append(layouts, ChildLayout{Node: it.node, Rect: rect})
		}
	}
	return layouts
}

// gatherFlexItems measures children and resolves their base main size,
// applying flex-basis when set.
func gatherFlexItems(node Layoutable, cc Constraints, isRow bool, hook ErrorHook) []*flexItem {
	boxes := resolveChildren(node.LayoutChildren(), cc, false, hook)
	items := make([]*flexItem, 0, len(boxes))

	availMain := cc.AvailableWidth
	if !isRow {
		availMain = cc.AvailableHeight
	}

	for i := range boxes {
		box := boxes[i]
		it := &flexItem{
			childBox: box,
			grow:     box.style.FlexGrow,
			shrink:   box.style.FlexShrink,
		}
		if isRow {
			it.main, it.cross = box.width, box.height
		} else {
			it.main, it.cross = box.height, box.width
		}
		if !box.style.FlexBasis.IsAuto() {
			it.main = box.style.FlexBasis.Resolve(availMain, cc.Viewport, it.main)
		}
		if it.main < 0 {
			it.main = 0
		}
		it.baseMain = it.main

		it.alignSelf = AlignStretch
		if box.style.AlignSelf != nil {
			it.alignSelf = *box.style.AlignSelf
		} else {
			it.alignSelf = node.LayoutStyle().AlignItems
		}
		items = append(items, it)
	}
	return items
}

// packFlexLines greedily packs items into lines. Packing uses the original
// measured main size of each item, so wrapping decisions precede any
// grow/shrink distribution.
func packFlexLines(items []*flexItem, wrap Wrap, availMain, gap int, isRow bool) []*flexLine {
	if wrap == NoWrap || availMain == Unbounded {
		return []*flexLine{{items: items}}
	}

	var lines []*flexLine
	current := &flexLine{}
	used := 0
	for _, it := range items {
		s, e := it.mainMargins(isRow)
		outer := s + it.baseMain + e
		need := outer
		if len(current.items) > 0 {
			need += gap
		}
		if len(current.items) > 0 && used+need > availMain {
			lines = append(lines, current)
			current = &flexLine{}
			used = 0
			need = outer
		}
		current.items = append(current.items, it)
		used += need
	}
	if len(current.items) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// resolveFlexibleSizes distributes free space in a non-wrapping line.
// Positive free space goes to items proportionally to flex-grow; negative
// free space shrinks items proportionally to flex-shrink × size, clamping
// every item to a minimum main size of 1.
func resolveFlexibleSizes(line *flexLine, availMain, gap int, isRow bool) {
	used := 0
	for i, it := range line.items {
		used += it.outerMain(isRow)
		if i > 0 {
			used += gap
		}
	}
	free := availMain - used

	switch {
	case free > 0:
		var totalGrow float64
		for _, it := range line.items {
			totalGrow += it.grow
		}
		if totalGrow <= 0 {
			return
		}
		distributed := 0
		var lastFlexible *flexItem
		for _, it := range line.items {
			if it.grow <= 0 {
				continue
			}
			extra := int(float64(free) * it.grow / totalGrow)
			it.main += extra
			distributed += extra
			lastFlexible = it
		}
		// Rounding remainder goes to the last flexible item so the line
		// fills the container exactly.
		if lastFlexible != nil && distributed < free {
			lastFlexible.main += free - distributed
		}

	case free < 0:
		overflow := -free
		var totalWeight float64
		for _, it := range line.items {
			totalWeight += it.shrink * float64(it.main)
		}
		if totalWeight <= 0 {
			return
		}
		for _, it := range line.items {
			weight := it.shrink * float64(it.main)
			reduce := int(float64(overflow) * weight / totalWeight)
			it.main -= reduce
			if it.main < 1 {
				it.main = 1
			}
		}
	}
}

// positionMainAxis places a line's items along the main axis according to
// the justify mode. Free space at this point reflects the final item sizes.
func positionMainAxis(line *flexLine, justify Justify, availMain, gap int, isRow bool) {
	n := len(line.items)
	if n == 0 {
		return
	}

	used := 0
	for i, it := range line.items {
		used += it.outerMain(isRow)
		if i > 0 {
			used += gap
		}
	}

	free := 0
	if availMain != Unbounded {
		free = availMain - used
	}
	if free < 0 {
		free = 0
	}

	lead, between := 0, gap
	switch justify {
	case JustifyStart:
	case JustifyEnd:
		lead = free
	case JustifyCenter:
		lead = free / 2
	case JustifySpaceBetween:
		if n > 1 {
			between = gap + free/(n-1)
		}
	case JustifySpaceAround:
		lead = free / (2 * n)
		if n > 1 {
			between = gap + (free-2*lead)/(n-1)
		}
	case JustifySpaceEvenly:
		lead = free / (n + 1)
		between = gap + lead
	}

	pos := lead
	for _, it := range line.items {
		it.mainPos = pos
		pos += it.outerMain(isRow) + between
	}
}

// stackFlexLines sizes each line's cross extent, aligns items within their
// line, and stacks the lines along the cross axis per align-content.
// Wrap-reverse reverses line stacking order.
func stackFlexLines(lines []*flexLine, style Style, availCross, crossGap int, isRow bool) {
	for _, line := range lines {
		for _, it := range line.items {
			if oc := it.outerCross(isRow); oc > line.cross {
				line.cross = oc
			}
		}
	}

	// A single non-wrapped line fills the container's cross axis so
	// stretch has something to stretch into.
	if len(lines) == 1 && style.Wrap == NoWrap && availCross != Unbounded {
		if availCross > lines[0].cross {
			lines[0].cross = availCross
		}
	}

	totalCross := 0
	for i, line := range lines {
		totalCross += line.cross
		if i > 0 {
			totalCross += crossGap
		}
	}

	freeCross := 0
	if availCross != Unbounded {
		freeCross = availCross - totalCross
	}
	if freeCross < 0 {
		freeCross = 0
	}

	n := len(lines)
	lead, between := 0, crossGap
	switch style.AlignContent {
	case ContentStart:
	case ContentEnd:
		lead = freeCross
	case ContentCenter:
		lead = freeCross / 2
	case ContentStretch:
		if freeCross > 0 {
			extra := freeCross / n
			for _, line := range lines {
				line.cross += extra
			}
		}
	case ContentSpaceBetween:
		if n > 1 {
			between = crossGap + freeCross/(n-1)
		}
	case ContentSpaceAround:
		lead = freeCross / (2 * n)
		if n > 1 {
			between = crossGap + (freeCross-2*lead)/(n-1)
		}
	}

	ordered := lines
	if style.Wrap == WrapReverse {
		ordered = make([]*flexLine, n)
		for i, line := range lines {
			ordered[n-1-i] = line
		}
	}

	pos := lead
	for _, line := range ordered {
		line.crossPos = pos
		pos += line.cross + between
	}

	for _, line := range lines {
		alignItemsInLine(line, isRow)
	}
}

// alignItemsInLine positions each item on the cross axis within its line.
// Stretch overwrites the item's cross size to the line's cross size unless
// the item set an explicit cross dimension.
func alignItemsInLine(line *flexLine, isRow bool) {
	for _, it := range line.items {
		s, e := it.crossMargins(isRow)
		inner := line.cross - s - e
		if inner < 0 {
			inner = 0
		}

		switch it.alignSelf {
		case AlignStart:
			it.crossPos = 0
		case AlignEnd:
			it.crossPos = line.cross - it.cross - s - e
		case AlignCenter:
			it.crossPos = (line.cross - it.cross - s - e) / 2
		case AlignStretch:
			explicit := it.style.Height
			if !isRow {
				explicit = it.style.Width
			}
			if explicit.IsAuto() {
				it.cross = inner
			}
			it.crossPos = 0
		}
		if it.crossPos < 0 {
			it.crossPos = 0
		}
	}
}
