package layout

import (
	"strconv"
	"strings"
)

// TrackKind distinguishes grid track sizing modes.
type TrackKind uint8

const (
	TrackFr    TrackKind = iota // Fractional share of remaining space
	TrackFixed                  // Absolute terminal cells
)

// GridTrack is one track of a grid template.
type GridTrack struct {
	Kind   TrackKind
	Amount float64 // cells for TrackFixed, weight for TrackFr
}

// GridTemplate describes the tracks of one grid axis, with optional named
// lines. Line numbers are 1-based; a template with N tracks has N+1 lines.
type GridTemplate struct {
	Tracks []GridTrack
	Names  map[string][]int
}

// IsZero returns true for an unset template.
func (t GridTemplate) IsZero() bool {
	return len(t.Tracks) == 0
}

// Line resolves a named line to its 1-based number. Returns 0 when the name
// is unknown.
func (t GridTemplate) Line(name string) int {
	if lines := t.Names[name]; len(lines) > 0 {
		return lines[0]
	}
	return 0
}

// FrTemplate builds a template of purely fractional tracks from weights.
func FrTemplate(weights ...float64) GridTemplate {
	tracks := make([]GridTrack, len(weights))
	for i, w := range weights {
		tracks[i] = GridTrack{Kind: TrackFr, Amount: w}
	}
	return GridTemplate{Tracks: tracks}
}

// ParseTemplate parses a template token string mixing fixed sizes, "Nfr"
// fractional units, "auto" (treated as 1fr), and "[name]" line labels.
// ok is false when any token is unparseable; callers fall back to
// equal-weight auto tracks in that case.
func ParseTemplate(s string) (GridTemplate, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return GridTemplate{}, false
	}

	t := GridTemplate{}
	addName := func(name string) {
		if t.Names == nil {
			t.Names = make(map[string][]int)
		}
		t.Names[name] = append(t.Names[name], len(t.Tracks)+1)
	}

	for _, tok := range fields {
		switch {
		case strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]"):
			name := strings.TrimSpace(tok[1 : len(tok)-1])
			if name == "" {
				return GridTemplate{}, false
			}
			addName(name)
		case tok == "auto":
			t.Tracks = append(t.Tracks, GridTrack{Kind: TrackFr, Amount: 1})
		case strings.HasSuffix(tok, "fr"):
			w, err := strconv.ParseFloat(strings.TrimSuffix(tok, "fr"), 64)
			if err != nil || w < 0 {
				return GridTemplate{}, false
			}
			t.Tracks = append(t.Tracks, GridTrack{Kind: TrackFr, Amount: w})
		default:
			n, err := strconv.ParseFloat(tok, 64)
			if err != nil || n < 0 {
				return GridTemplate{}, false
			}
			t.Tracks = append(t.Tracks, GridTrack{Kind: TrackFixed, Amount: n})
		}
	}
	if len(t.Tracks) == 0 {
		return GridTemplate{}, false
	}
	return t, true
}

// GridPlacement specifies where a grid item sits along one axis.
// The zero value is fully automatic placement.
type GridPlacement struct {
	Start     int // 1-based line number; 0 = auto
	End       int // 1-based line number; 0 = auto
	Span      int // explicit span; 0 = derive from Start/End or default 1
	StartName string
	EndName   string
}

// IsAuto returns true when the placement leaves the start position to the
// auto-placement cursor.
func (p GridPlacement) IsAuto() bool {
	return p.Start == 0 && p.StartName == ""
}

// ParsePlacement parses a gridColumn/gridRow value: a numeric index, a
// "start / end" range, "span N", or named-line references. Unparseable
// input yields automatic placement.
func ParsePlacement(s string) GridPlacement {
	parts := strings.Split(s, "/")
	var p GridPlacement

	parseSide := func(side string, start bool) {
		side = strings.TrimSpace(side)
		if side == "" || side == "auto" {
			return
		}
		if rest, found := strings.CutPrefix(side, "span "); found {
			if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil && n > 0 {
				p.Span = n
			}
			return
		}
		if n, err := strconv.Atoi(side); err == nil {
			if start {
				p.Start = n
			} else {
				p.End = n
			}
			return
		}
		if start {
			p.StartName = side
		} else {
			p.EndName = side
		}
	}

	parseSide(parts[0], true)
	if len(parts) > 1 {
		parseSide(parts[1], false)
	}
	return p
}

// ParseArea parses a gridArea shorthand: "rowStart / colStart / rowEnd /
// colEnd", with trailing parts optional.
func ParseArea(s string) (row, col GridPlacement) {
	parts := strings.Split(s, "/")
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	row = ParsePlacement(get(0) + " / " + get(2))
	col = ParsePlacement(get(1) + " / " + get(3))
	return row, col
}

// gridItem is the working state for one grid child.
type gridItem struct {
	childBox
	row, col         int // 0-based track indexes after placement
	rowSpan, colSpan int
	placed           bool
	fixedCol         bool // explicit column, row still auto
	fixedRow         bool // explicit row, column still auto
}

// gridLayout places children into grid tracks.
//
// Track sizes come from the templates: fixed tracks take their size, fr
// tracks split the space remaining after fixed tracks and inter-track gaps
// proportionally to their weights. Items with explicit placements go first;
// the rest auto-place per the flow mode, with dense re-packing filling the
// first non-overlapping cell instead of always advancing.
func gridLayout(node Layoutable, style Style, cc Constraints, hook ErrorHook) []ChildLayout {
	boxes := resolveChildren(node.LayoutChildren(), cc, false, hook)
	if len(boxes) == 0 {
		return nil
	}

	colTemplate := style.TemplateColumns
	rowTemplate := style.TemplateRows

	items := make([]*gridItem, len(boxes))
	for i := range boxes {
		items[i] = &gridItem{childBox: boxes[i]}
	}

	colCount := placeGridItems(items, colTemplate, rowTemplate, style.AutoFlow)

	rowCount := 0
	for _, it := range items {
		if it.row+it.rowSpan > rowCount {
			rowCount = it.row + it.rowSpan
		}
	}

	colWidths := sizeTracks(colTemplate, colCount, cc.AvailableWidth, style.ColumnGap)
	rowHeights := sizeRowTracks(rowTemplate, rowCount, cc.AvailableHeight, style.RowGap, items)

	layouts := make([]ChildLayout, 0, len(items))
	for _, it := range items {
		x := trackOffset(colWidths, it.col, style.ColumnGap)
		y := trackOffset(rowHeights, it.row, style.RowGap)
		w := trackSpanSize(colWidths, it.col, it.colSpan, style.ColumnGap)
		h := trackSpanSize(rowHeights, it.row, it.rowSpan, style.RowGap)

		rect := NewRect(x+it.style.Margin.Left, y+it.style.Margin.Top,
			max(0, w-it.style.Margin.Horizontal()), max(0, h-it.style.Margin.Vertical()))
		layouts = append(layouts, ChildLayout{Node: it.node, Rect: rect})
	}
	return layouts
}

// placeGridItems resolves explicit placements, then auto-places the rest.
// Returns the final column count.
func placeGridItems(items []*gridItem, colTemplate, rowTemplate GridTemplate, flow AutoFlow) int {
	colCount := len(colTemplate.Tracks)
	if colCount == 0 {
		colCount = 1
	}

	occupied := make(map[[2]int]bool)
	mark := func(it *gridItem) {
		for r := it.row; r < it.row+it.rowSpan; r++ {
			for c := it.col; c < it.col+it.colSpan; c++ {
				occupied[[2]int{r, c}] = true
			}
		}
	}
	fits := func(row, col, rowSpan, colSpan int) bool {
		if col+colSpan > colCount {
			return false
		}
		for r := row; r < row+rowSpan; r++ {
			for c := col; c < col+colSpan; c++ {
				if occupied[[2]int{r, c}] {
					return false
				}
			}
		}
		return true
	}

	// First pass: items with an explicit start on either axis.
	for _, it := range items {
		colStart, colSpan := resolveAxis(it.style.GridColumn, colTemplate)
		rowStart, rowSpan := resolveAxis(it.style.GridRow, rowTemplate)
		it.colSpan, it.rowSpan = colSpan, rowSpan
		if colStart > 0 && colStart+colSpan-1 > colCount {
			colCount = colStart + colSpan - 1
		}
		if colStart > 0 && rowStart > 0 {
			it.col, it.row = colStart-1, rowStart-1
			it.placed = true
			mark(it)
		} else if colStart > 0 {
			it.col = colStart - 1
			it.fixedCol = true
		} else if rowStart > 0 {
			it.row = rowStart - 1
			it.fixedRow = true
		}
	}

	// Second pass: auto-placement. Sparse flow advances a cursor; dense
	// flow rescans from the origin for every item.
	cursorRow, cursorCol := 0, 0
	for _, it := range items {
		if it.placed {
			continue
		}
		row, col := cursorRow, cursorCol
		if flow.IsDense() {
			row, col = 0, 0
		}

		// An item fixed on one axis keeps that coordinate and scans only
		// the free axis for the first open slot.
		if it.fixedCol {
			col = it.col
			row = 0
			for !fits(row, col, it.rowSpan, it.colSpan) {
				row++
			}
			it.row = row
			it.placed = true
			mark(it)
			continue
		}
		if it.fixedRow {
			row = it.row
			col = 0
			for !fits(row, col, it.rowSpan, it.colSpan) {
				col++
				if col+it.colSpan > colCount {
					colCount = col + it.colSpan
				}
			}
			it.col = col
			it.placed = true
			mark(it)
			continue
		}

		// A span wider than the current grid can never fit; admit it by
		// growing the implicit column count, as explicit placements do.
		if it.colSpan > colCount {
			colCount = it.colSpan
		}

		for {
			if fits(row, col, it.rowSpan, it.colSpan) {
				break
			}
			if flow.IsColumn() {
				row++
				// Column-major wraps within the explicit row count when
				// one exists, otherwise grows downward per column.
				rowLimit := len(rowTemplate.Tracks)
				if rowLimit > 0 && row+it.rowSpan > rowLimit {
					row = 0
					col++
					if col+it.colSpan > colCount {
						colCount = col + it.colSpan
					}
				}
				if rowLimit == 0 && row > len(items) {
					row = 0
					col++
					if col+it.colSpan > colCount {
						colCount = col + it.colSpan
					}
				}
			} else {
				col++
				if col+it.colSpan > colCount {
					col = 0
					row++
				}
			}
		}

		it.row, it.col = row, col
		it.placed = true
		mark(it)

		if !flow.IsDense() {
			cursorRow, cursorCol = row, col
		}
	}
	return colCount
}

// resolveAxis turns one placement into a 1-based start line and a span.
func resolveAxis(p GridPlacement, t GridTemplate) (start, span int) {
	start = p.Start
	if start == 0 && p.StartName != "" {
		start = t.Line(p.StartName)
	}
	end := p.End
	if end == 0 && p.EndName != "" {
		end = t.Line(p.EndName)
	}

	span = 1
	if p.Span > 0 {
		span = p.Span
	} else if start > 0 && end > start {
		span = end - start
	} else if start == 0 && end > 1 {
		// Only the end line given: back up by the span.
		start = end - 1
	}
	return start, span
}

// sizeTracks computes cell sizes for one axis. Fixed tracks take
// their size; fr tracks share available space minus fixed tracks and gaps,
// proportionally to weight. An unbounded axis gives fr tracks zero size.
func sizeTracks(t GridTemplate, count, available, gap int) []int {
	tracks := make([]GridTrack, count)
	for i := range tracks {
		if i < len(t.Tracks) {
			tracks[i] = t.Tracks[i]
		} else {
			tracks[i] = GridTrack{Kind: TrackFr, Amount: 1}
		}
	}

	sizes := make([]int, count)
	fixedSum := 0
	var totalFr float64
	for i, tr := range tracks {
		if tr.Kind == TrackFixed {
			sizes[i] = int(tr.Amount)
			fixedSum += sizes[i]
		} else {
			totalFr += tr.Amount
		}
	}

	if available == Unbounded || totalFr == 0 {
		return sizes
	}

	remaining := available - fixedSum - gap*(count-1)
	if remaining < 0 {
		remaining = 0
	}

	distributed := 0
	lastFr := -1
	for i, tr := range tracks {
		if tr.Kind != TrackFr {
			continue
		}
		sizes[i] = int(float64(remaining) * tr.Amount / totalFr)
		distributed += sizes[i]
		lastFr = i
	}
	if lastFr >= 0 && distributed < remaining {
		sizes[lastFr] += remaining - distributed
	}
	return sizes
}

// sizeRowTracks sizes the row axis. Templated rows behave like columns;
// implicit rows (or an unbounded height) size to the tallest item occupying
// them, splitting multi-row items evenly across their span.
func sizeRowTracks(t GridTemplate, count, available, gap int, items []*gridItem) []int {
	if !t.IsZero() && available != Unbounded {
		return sizeTracks(t, count, available, gap)
	}

	sizes := make([]int, count)
	for i := range sizes {
		if i < len(t.Tracks) && t.Tracks[i].Kind == TrackFixed {
			sizes[i] = int(t.Tracks[i].Amount)
		}
	}
	for _, it := range items {
		per := it.height / it.rowSpan
		if it.height%it.rowSpan != 0 {
			per++
		}
		for r := it.row; r < it.row+it.rowSpan && r < count; r++ {
			if per > sizes[r] {
				sizes[r] = per
			}
		}
	}
	return sizes
}

// trackOffset returns the position of the given track's leading edge.
func trackOffset(sizes []int, index, gap int) int {
	pos := 0
	for i := 0; i < index && i < len(sizes); i++ {
		pos += sizes[i] + gap
	}
	return pos
}

// trackSpanSize returns the extent of span consecutive tracks, including
// the gaps between them but not around them.
func trackSpanSize(sizes []int, index, span, gap int) int {
	size := 0
	for i := index; i < index+span && i < len(sizes); i++ {
		size += sizes[i]
	}
	if span > 1 {
		size += gap * (span - 1)
	}
	return size
}
