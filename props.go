package lattice

import (
	"strconv"
	"strings"

	"github.com/lattice-tui/lattice/internal/layout"
)

// Props is a string-keyed style map in the cascaded form produced by the
// hosting framework. Values are loosely typed: numbers arrive as int or
// float64, dimensions and grid templates as strings, fr-weight templates
// as []float64.
//
// Recognized keys: display, flexDirection, flexWrap, justifyContent,
// alignItems, alignContent, alignSelf, flex, flexGrow, flexShrink,
// flexBasis, order, gap, rowGap, columnGap, gridTemplateColumns,
// gridTemplateRows, gridAutoFlow, gridColumn, gridRow, gridArea,
// position, zIndex, width, height, minWidth, minHeight, maxWidth,
// maxHeight, margin, marginTop/Right/Bottom/Left, padding,
// paddingTop/Right/Bottom/Left.
type Props map[string]any

// Computed is the resolved, queryable form of a node's style. All
// malformed input has been normalized away, so accessors never fail.
type Computed struct {
	layout.Style
}

// Resolve merges defaults under inline (inline wins per key) and resolves
// the merged map into a Computed style. Resolution is pure and total:
// unrecognized keys are ignored and malformed values normalize to the
// deterministic defaults (unknown display is block, bad z-index is 0,
// unparseable grid templates become equal-weight auto tracks, bad wrap is
// nowrap, bad justify is flex-start).
func Resolve(inline, defaults Props) Computed {
	merged := make(Props, len(inline)+len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range inline {
		merged[k] = v
	}

	s := layout.DefaultStyle()

	if v, ok := merged["display"]; ok {
		s.Display = parseDisplay(v)
	}
	if v, ok := merged["position"]; ok {
		s.Position = parsePosition(v)
	}
	if v, ok := merged["zIndex"]; ok {
		s.ZIndex = propInt(v, 0)
	}

	if v, ok := merged["width"]; ok {
		s.Width = parseValue(v)
	}
	if v, ok := merged["height"]; ok {
		s.Height = parseValue(v)
	}
	if v, ok := merged["minWidth"]; ok {
		s.MinWidth = parseValue(v)
	}
	if v, ok := merged["minHeight"]; ok {
		s.MinHeight = parseValue(v)
	}
	if v, ok := merged["maxWidth"]; ok {
		s.MaxWidth = parseValue(v)
	}
	if v, ok := merged["maxHeight"]; ok {
		s.MaxHeight = parseValue(v)
	}

	if v, ok := merged["flexDirection"]; ok {
		s.Direction = parseDirection(v)
	}
	if v, ok := merged["flexWrap"]; ok {
		s.Wrap = parseWrap(v)
	}
	if v, ok := merged["justifyContent"]; ok {
		s.JustifyContent = parseJustify(v)
	}
	if v, ok := merged["alignItems"]; ok {
		s.AlignItems = parseAlign(v, layout.AlignStretch)
	}
	if v, ok := merged["alignContent"]; ok {
		s.AlignContent = parseAlignContent(v)
	}
	if v, ok := merged["alignSelf"]; ok {
		a := parseAlign(v, layout.AlignStretch)
		s.AlignSelf = &a
	}

	// "flex: N" is shorthand for flexGrow; explicit keys win.
	if v, ok := merged["flex"]; ok {
		s.FlexGrow = propFloat(v, 0)
	}
	if v, ok := merged["flexGrow"]; ok {
		s.FlexGrow = propFloat(v, 0)
	}
	if v, ok := merged["flexShrink"]; ok {
		s.FlexShrink = propFloat(v, 1)
	}
	if v, ok := merged["flexBasis"]; ok {
		s.FlexBasis = parseValue(v)
	}
	if v, ok := merged["order"]; ok {
		s.Order = propInt(v, 0)
	}

	if v, ok := merged["gap"]; ok {
		gap := propInt(v, 0)
		s.RowGap = gap
		s.ColumnGap = gap
	}
	if v, ok := merged["rowGap"]; ok {
		s.RowGap = propInt(v, s.RowGap)
	}
	if v, ok := merged["columnGap"]; ok {
		s.ColumnGap = propInt(v, s.ColumnGap)
	}

	if v, ok := merged["gridTemplateColumns"]; ok {
		s.TemplateColumns = parseTemplate(v)
	}
	if v, ok := merged["gridTemplateRows"]; ok {
		s.TemplateRows = parseTemplate(v)
	}
	if v, ok := merged["gridAutoFlow"]; ok {
		s.AutoFlow = parseAutoFlow(v)
	}
	if v, ok := merged["gridColumn"]; ok {
		if str, ok := v.(string); ok {
			s.GridColumn = layout.ParsePlacement(str)
		} else if n := propInt(v, 0); n > 0 {
			s.GridColumn = layout.GridPlacement{Start: n}
		}
	}
	if v, ok := merged["gridRow"]; ok {
		if str, ok := v.(string); ok {
			s.GridRow = layout.ParsePlacement(str)
		} else if n := propInt(v, 0); n > 0 {
			s.GridRow = layout.GridPlacement{Start: n}
		}
	}
	// gridArea is the row/column shorthand; the split placements lose to
	// explicit gridRow/gridColumn keys.
	if v, ok := merged["gridArea"]; ok {
		if str, ok := v.(string); ok {
			row, col := layout.ParseArea(str)
			if _, explicit := merged["gridRow"]; !explicit {
				s.GridRow = row
			}
			if _, explicit := merged["gridColumn"]; !explicit {
				s.GridColumn = col
			}
		}
	}

	s.Margin = parseEdges(merged, "margin")
	s.Padding = parseEdges(merged, "padding")

	return Computed{Style: s}
}

func parseDisplay(v any) layout.Display {
	switch v {
	case "flex":
		return layout.DisplayFlex
	case "grid":
		return layout.DisplayGrid
	default:
		return layout.DisplayBlock
	}
}

func parsePosition(v any) layout.Position {
	switch v {
	case "relative":
		return layout.PositionRelative
	case "absolute":
		return layout.PositionAbsolute
	case "fixed":
		return layout.PositionFixed
	case "sticky":
		return layout.PositionSticky
	default:
		return layout.PositionStatic
	}
}

func parseDirection(v any) layout.Direction {
	switch v {
	case "row-reverse":
		return layout.RowReverse
	case "column":
		return layout.Column
	case "column-reverse":
		return layout.ColumnReverse
	default:
		return layout.Row
	}
}

func parseWrap(v any) layout.Wrap {
	switch v {
	case "wrap":
		return layout.WrapLines
	case "wrap-reverse":
		return layout.WrapReverse
	default:
		return layout.NoWrap
	}
}

func parseJustify(v any) layout.Justify {
	switch v {
	case "flex-end", "end":
		return layout.JustifyEnd
	case "center":
		return layout.JustifyCenter
	case "space-between":
		return layout.JustifySpaceBetween
	case "space-around":
		return layout.JustifySpaceAround
	case "space-evenly":
		return layout.JustifySpaceEvenly
	default:
		return layout.JustifyStart
	}
}

func parseAlign(v any, fallback layout.Align) layout.Align {
	switch v {
	case "flex-start", "start":
		return layout.AlignStart
	case "flex-end", "end":
		return layout.AlignEnd
	case "center":
		return layout.AlignCenter
	case "stretch":
		return layout.AlignStretch
	default:
		return fallback
	}
}

func parseAlignContent(v any) layout.AlignContent {
	switch v {
	case "flex-end", "end":
		return layout.ContentEnd
	case "center":
		return layout.ContentCenter
	case "stretch":
		return layout.ContentStretch
	case "space-between":
		return layout.ContentSpaceBetween
	case "space-around":
		return layout.ContentSpaceAround
	default:
		return layout.ContentStart
	}
}

func parseAutoFlow(v any) layout.AutoFlow {
	switch v {
	case "column":
		return layout.FlowColumn
	case "row dense":
		return layout.FlowRowDense
	case "column dense":
		return layout.FlowColumnDense
	default:
		return layout.FlowRow
	}
}

// parseTemplate accepts either a []float64 of fr weights or a token
// string. Anything unparseable yields the zero template, which the grid
// algorithm treats as equal-weight auto tracks.
func parseTemplate(v any) layout.GridTemplate {
	switch t := v.(type) {
	case []float64:
		return layout.FrTemplate(t...)
	case []int:
		weights := make([]float64, len(t))
		for i, w := range t {
			weights[i] = float64(w)
		}
		return layout.FrTemplate(weights...)
	case string:
		tmpl, ok := layout.ParseTemplate(t)
		if !ok {
			return layout.GridTemplate{}
		}
		return tmpl
	default:
		return layout.GridTemplate{}
	}
}

// parseValue resolves a dimension prop: numbers are fixed cell counts,
// strings may carry "%", "vw", or "vh" suffixes. Anything else is auto.
func parseValue(v any) layout.Value {
	switch t := v.(type) {
	case int:
		return layout.Fixed(t)
	case float64:
		return layout.Fixed(int(t))
	case string:
		str := strings.TrimSpace(t)
		if str == "" || str == "auto" {
			return layout.Auto()
		}
		if strings.HasSuffix(str, "%") {
			if n, err := strconv.ParseFloat(strings.TrimSuffix(str, "%"), 64); err == nil {
				return layout.Percent(n)
			}
			return layout.Auto()
		}
		if strings.HasSuffix(str, "vw") {
			if n, err := strconv.ParseFloat(strings.TrimSuffix(str, "vw"), 64); err == nil {
				return layout.ViewportWidth(n)
			}
			return layout.Auto()
		}
		if strings.HasSuffix(str, "vh") {
			if n, err := strconv.ParseFloat(strings.TrimSuffix(str, "vh"), 64); err == nil {
				return layout.ViewportHeight(n)
			}
			return layout.Auto()
		}
		if n, err := strconv.Atoi(str); err == nil {
			return layout.Fixed(n)
		}
		return layout.Auto()
	default:
		return layout.Auto()
	}
}

// parseEdges resolves the shorthand key plus its Top/Right/Bottom/Left
// variants into an Edges record.
func parseEdges(p Props, key string) layout.Edges {
	e := layout.Edges{}
	if v, ok := p[key]; ok {
		e = layout.EdgeAll(propInt(v, 0))
	}
	if v, ok := p[key+"Top"]; ok {
		e.Top = propInt(v, e.Top)
	}
	if v, ok := p[key+"Right"]; ok {
		e.Right = propInt(v, e.Right)
	}
	if v, ok := p[key+"Bottom"]; ok {
		e.Bottom = propInt(v, e.Bottom)
	}
	if v, ok := p[key+"Left"]; ok {
		e.Left = propInt(v, e.Left)
	}
	return e
}

func propInt(v any, fallback int) int {
	switch t := v.(type) {
	case int:
		return t
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return fallback
}

func propFloat(v any, fallback float64) float64 {
	switch t := v.(type) {
	case int:
		return float64(t)
	case float64:
		return t
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return n
		}
	}
	return fallback
}
