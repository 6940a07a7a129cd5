package layout

import "testing"

func blockParent(w, h int) *testNode {
	style := DefaultStyle()
	style.Width = Fixed(w)
	style.Height = Fixed(h)
	node := newTestNode(style)
	return node
}

func blockChild(h int) *testNode {
	style := DefaultStyle()
	style.Height = Fixed(h)
	return newTestNode(style)
}

func TestBlock_StacksChildrenVertically(t *testing.T) {
	parent := blockParent(100, 50)
	c1 := blockChild(10)
	c2 := blockChild(20)
	c3 := blockChild(5)
	parent.AddChild(c1, c2, c3)

	Calculate(parent, tight(200, 200))

	if c1.layout.Rect.Y != 0 {
		t.Errorf("c1.Y = %d, want 0", c1.layout.Rect.Y)
	}
	if c2.layout.Rect.Y != 10 {
		t.Errorf("c2.Y = %d, want 10", c2.layout.Rect.Y)
	}
	if c3.layout.Rect.Y != 30 {
		t.Errorf("c3.Y = %d, want 30", c3.layout.Rect.Y)
	}
}

func TestBlock_AutoWidthFillsAvailable(t *testing.T) {
	parent := blockParent(100, 50)
	child := blockChild(10)
	parent.AddChild(child)

	Calculate(parent, tight(200, 200))

	if child.layout.Rect.Width != 100 {
		t.Errorf("child width = %d, want 100 (fill available)", child.layout.Rect.Width)
	}
}

func TestBlock_ExplicitWidthIsKept(t *testing.T) {
	parent := blockParent(100, 50)
	child := blockChild(10)
	child.style.Width = Fixed(40)
	parent.AddChild(child)

	Calculate(parent, tight(200, 200))

	if child.layout.Rect.Width != 40 {
		t.Errorf("child width = %d, want 40", child.layout.Rect.Width)
	}
}

func TestBlock_MarginCollapsing(t *testing.T) {
	type tc struct {
		prevBottom int
		nextTop    int
		wantGap    int
	}

	tests := map[string]tc{
		"larger top margin wins":    {prevBottom: 2, nextTop: 3, wantGap: 3},
		"larger bottom margin wins": {prevBottom: 5, nextTop: 1, wantGap: 5},
		"equal margins collapse":    {prevBottom: 4, nextTop: 4, wantGap: 4},
		"zero margins":              {prevBottom: 0, nextTop: 0, wantGap: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := blockParent(100, 100)
			c1 := blockChild(10)
			c1.style.Margin.Bottom = tt.prevBottom
			c2 := blockChild(10)
			c2.style.Margin.Top = tt.nextTop
			parent.AddChild(c1, c2)

			Calculate(parent, tight(200, 200))

			gap := c2.layout.Rect.Y - c1.layout.Rect.Bottom()
			if gap != tt.wantGap {
				t.Errorf("gap = %d, want %d (max, not sum)", gap, tt.wantGap)
			}
		})
	}
}

func TestBlock_FirstChildTopMargin(t *testing.T) {
	parent := blockParent(100, 50)
	child := blockChild(10)
	child.style.Margin.Top = 3
	parent.AddChild(child)

	Calculate(parent, tight(200, 200))

	if child.layout.Rect.Y != 3 {
		t.Errorf("child.Y = %d, want 3", child.layout.Rect.Y)
	}
}

func TestBlock_LeftMarginOffsetsChild(t *testing.T) {
	parent := blockParent(100, 50)
	child := blockChild(10)
	child.style.Margin.Left = 4
	parent.AddChild(child)

	Calculate(parent, tight(200, 200))

	if child.layout.Rect.X != 4 {
		t.Errorf("child.X = %d, want 4", child.layout.Rect.X)
	}
	if child.layout.Rect.Width != 96 {
		t.Errorf("child width = %d, want 96 (available minus margins)", child.layout.Rect.Width)
	}
}
