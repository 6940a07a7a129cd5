package lattice

import (
	"testing"

	"github.com/lattice-tui/lattice/internal/layout"
)

func TestResolve_InlineWinsOverDefaults(t *testing.T) {
	inline := Props{"width": 30, "zIndex": 2}
	defaults := Props{"width": 10, "height": 5}

	c := Resolve(inline, defaults)

	if c.Width != Fixed(30) {
		t.Errorf("Width = %+v, want %+v", c.Width, Fixed(30))
	}
	if c.Height != Fixed(5) {
		t.Errorf("Height = %+v, want %+v", c.Height, Fixed(5))
	}
	if c.ZIndex != 2 {
		t.Errorf("ZIndex = %d, want 2", c.ZIndex)
	}
}

func TestResolve_MalformedValues(t *testing.T) {
	c := Resolve(Props{
		"display":        "banner",
		"position":       42,
		"zIndex":         "not a number",
		"flexWrap":       "diagonal",
		"justifyContent": []int{1},
		"width":          "12purple",
		"flexShrink":     "x",
	}, nil)

	if c.Display != DisplayBlock {
		t.Errorf("Display = %v, want block", c.Display)
	}
	if c.Position != PositionStatic {
		t.Errorf("Position = %v, want static", c.Position)
	}
	if c.ZIndex != 0 {
		t.Errorf("ZIndex = %d, want 0", c.ZIndex)
	}
	if c.Wrap != NoWrap {
		t.Errorf("Wrap = %v, want nowrap", c.Wrap)
	}
	if c.JustifyContent != JustifyStart {
		t.Errorf("JustifyContent = %v, want flex-start", c.JustifyContent)
	}
	if c.Width != Auto() {
		t.Errorf("Width = %+v, want auto", c.Width)
	}
	if c.FlexShrink != 1 {
		t.Errorf("FlexShrink = %v, want 1", c.FlexShrink)
	}
}

func TestResolve_DimensionUnits(t *testing.T) {
	tests := map[string]struct {
		value any
		want  Value
	}{
		"int cells":       {12, Fixed(12)},
		"float cells":     {12.0, Fixed(12)},
		"numeric string":  {"12", Fixed(12)},
		"percent":         {"50%", Percent(50)},
		"viewport width":  {"80vw", layout.ViewportWidth(80)},
		"viewport height": {"25vh", layout.ViewportHeight(25)},
		"auto":            {"auto", Auto()},
		"garbage":         {"wide", Auto()},
		"bad percent":     {"x%", Auto()},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := Resolve(Props{"width": tc.value}, nil)
			if c.Width != tc.want {
				t.Errorf("Width = %+v, want %+v", c.Width, tc.want)
			}
		})
	}
}

func TestResolve_GapShorthand(t *testing.T) {
	c := Resolve(Props{"gap": 4, "rowGap": 1}, nil)
	if c.RowGap != 1 {
		t.Errorf("RowGap = %d, want 1", c.RowGap)
	}
	if c.ColumnGap != 4 {
		t.Errorf("ColumnGap = %d, want 4", c.ColumnGap)
	}
}

func TestResolve_EdgeShorthand(t *testing.T) {
	c := Resolve(Props{"margin": 2, "marginLeft": 5, "paddingTop": 1}, nil)

	want := Edges{Top: 2, Right: 2, Bottom: 2, Left: 5}
	if c.Margin != want {
		t.Errorf("Margin = %+v, want %+v", c.Margin, want)
	}
	if c.Padding != (Edges{Top: 1}) {
		t.Errorf("Padding = %+v, want top 1 only", c.Padding)
	}
}

func TestResolve_GridTemplate(t *testing.T) {
	c := Resolve(Props{"gridTemplateColumns": []float64{1, 2, 1}}, nil)
	if got := len(c.TemplateColumns.Tracks); got != 3 {
		t.Fatalf("len(TemplateColumns.Tracks) = %d, want 3", got)
	}

	// An unparseable template string normalizes to the zero template,
	// which the grid sizer treats as equal-weight auto tracks.
	c = Resolve(Props{"gridTemplateColumns": "1fr nonsense -3"}, nil)
	if !c.TemplateColumns.IsZero() {
		t.Errorf("TemplateColumns = %+v, want zero template", c.TemplateColumns)
	}
}

func TestResolve_GridAreaLosesToExplicitPlacement(t *testing.T) {
	c := Resolve(Props{
		"gridArea": "1 / 2 / 3 / 4",
		"gridRow":  "5",
	}, nil)

	if c.GridRow.Start != 5 {
		t.Errorf("GridRow.Start = %d, want 5", c.GridRow.Start)
	}
	if c.GridColumn.Start != 2 || c.GridColumn.End != 4 {
		t.Errorf("GridColumn = %+v, want start 2 end 4", c.GridColumn)
	}
}

func TestResolve_FlexShorthand(t *testing.T) {
	c := Resolve(Props{"flex": 3}, nil)
	if c.FlexGrow != 3 {
		t.Errorf("FlexGrow = %v, want 3", c.FlexGrow)
	}

	c = Resolve(Props{"flex": 3, "flexGrow": 1}, nil)
	if c.FlexGrow != 1 {
		t.Errorf("FlexGrow = %v, want explicit flexGrow to win", c.FlexGrow)
	}
}
