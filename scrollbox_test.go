package lattice

import (
	"fmt"
	"testing"
)

// lineBox builds a scrollbox with numbered single-row text children.
func lineBox(count int, opts ...Option) *Node {
	sb := ScrollBox(opts...)
	for i := 1; i <= count; i++ {
		sb.AddChild(Text(fmt.Sprintf("Line %d", i)))
	}
	return sb
}

func TestScrollBox_VisibleWindow(t *testing.T) {
	sb := lineBox(20)
	buf := NewBuffer(20, 5)
	r := NewRenderer()

	r.Render(sb, buf)
	if got := buf.Line(0); got != "Line 1             █" {
		t.Errorf("Line(0) = %q, want %q", got, "Line 1             █")
	}
	if got := buf.Line(4); got != "Line 5             ▼" {
		t.Errorf("Line(4) = %q, want bottom indicator after %q", got, "Line 5")
	}
	if sb.CanScrollUp() {
		t.Error("CanScrollUp() = true at top")
	}
	if !sb.CanScrollDown() {
		t.Error("CanScrollDown() = false with 15 rows below")
	}

	sb.ScrollTo(10, 0)
	r.Render(sb, buf)

	want := "Line 11            ▲\n" +
		"Line 12            │\n" +
		"Line 13            │\n" +
		"Line 14            █\n" +
		"Line 15            ▼"
	if got := buf.StringTrimmed(); got != want {
		t.Errorf("StringTrimmed() =\n%s\nwant\n%s", got, want)
	}
	if !sb.CanScrollUp() || !sb.CanScrollDown() {
		t.Error("both indicators should be active mid-scroll")
	}
}

func TestScrollBox_ContentFits(t *testing.T) {
	sb := lineBox(3)
	buf := NewBuffer(20, 5)
	NewRenderer().Render(sb, buf)

	if sb.CanScrollVertically() {
		t.Error("CanScrollVertically() = true for short content")
	}
	if got := buf.Cell(19, 0).Rune; got != ' ' {
		t.Errorf("Cell(19, 0).Rune = %q, want no scrollbar", got)
	}
	if got := buf.Line(0); got != "Line 1" {
		t.Errorf("Line(0) = %q, want %q", got, "Line 1")
	}
}

func TestScrollBox_ClampAndNotify(t *testing.T) {
	var calls []int
	sb := lineBox(20, WithOnScroll(func(top, left int) {
		calls = append(calls, top)
	}))
	buf := NewBuffer(20, 5)
	NewRenderer().Render(sb, buf)

	sb.ScrollTo(100, 0)
	if got := sb.ScrollTop(); got != 15 {
		t.Errorf("ScrollTop() = %d, want clamped 15", got)
	}

	// Same clamped position again: no movement, no notification.
	sb.ScrollTo(200, 0)
	sb.ScrollTo(-5, 0)
	sb.ScrollTo(0, 0)

	if got := sb.ScrollTop(); got != 0 {
		t.Errorf("ScrollTop() = %d, want 0", got)
	}
	want := []int{15, 0}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("onScroll calls = %v, want %v", calls, want)
	}
}

func TestScrollBox_ScrollToNode(t *testing.T) {
	sb := lineBox(20)
	buf := NewBuffer(20, 5)
	NewRenderer().Render(sb, buf)

	children := sb.Children()

	// Below the window: align its bottom with the viewport bottom.
	sb.ScrollToNode(children[14])
	if got := sb.ScrollTop(); got != 10 {
		t.Errorf("ScrollTop() = %d, want 10", got)
	}

	// Above the window: align its top.
	sb.ScrollToNode(children[4])
	if got := sb.ScrollTop(); got != 4 {
		t.Errorf("ScrollTop() = %d, want 4", got)
	}

	// Already visible: no movement.
	sb.ScrollToNode(children[6])
	if got := sb.ScrollTop(); got != 4 {
		t.Errorf("ScrollTop() = %d, want unchanged 4", got)
	}

	// Not a descendant: no movement.
	sb.ScrollToNode(Text("stranger"))
	if got := sb.ScrollTop(); got != 4 {
		t.Errorf("ScrollTop() = %d, want unchanged 4", got)
	}
}

func TestScrollBox_HandleKey(t *testing.T) {
	sb := lineBox(20)
	buf := NewBuffer(20, 5)
	NewRenderer().Render(sb, buf)

	steps := []struct {
		key     Key
		consume bool
		wantTop int
	}{
		{KeyDown, true, 1},
		{KeyPageDown, true, 5},
		{KeyEnd, true, 15},
		{KeyPageUp, true, 11},
		{KeyHome, true, 0},
		{KeyUp, true, 0},
		{KeyLeft, false, 0},
		{KeyEnter, false, 0},
	}
	for _, step := range steps {
		if got := sb.HandleKey(KeyEvent{Key: step.key}); got != step.consume {
			t.Errorf("HandleKey(%v) = %v, want %v", step.key, got, step.consume)
		}
		if got := sb.ScrollTop(); got != step.wantTop {
			t.Errorf("ScrollTop() after %v = %d, want %d", step.key, got, step.wantTop)
		}
	}

	if Box().HandleKey(KeyEvent{Key: KeyDown}) {
		t.Error("HandleKey() = true for a non-scrolling node")
	}
}

func TestScrollBox_HandleMouseWheel(t *testing.T) {
	sb := lineBox(20, WithScrollStep(3))
	buf := NewBuffer(20, 5)
	NewRenderer().Render(sb, buf)

	if !sb.HandleMouse(MouseEvent{X: 5, Y: 2, Button: MouseWheelDown}) {
		t.Error("wheel over the box not consumed")
	}
	if got := sb.ScrollTop(); got != 3 {
		t.Errorf("ScrollTop() = %d, want 3", got)
	}

	// Wheel outside the box is ignored.
	if sb.HandleMouse(MouseEvent{X: 50, Y: 50, Button: MouseWheelUp}) {
		t.Error("wheel outside the box consumed")
	}
	if got := sb.ScrollTop(); got != 3 {
		t.Errorf("ScrollTop() = %d, want unchanged 3", got)
	}
}

func TestScrollBox_ThumbDrag(t *testing.T) {
	sb := lineBox(20)
	buf := NewBuffer(20, 5)
	r := NewRenderer()
	r.Render(sb, buf)

	// Thumb sits at the top of the track (x 19, y 0, height 1).
	if !sb.HandleMouse(MouseEvent{X: 19, Y: 0, Button: MouseLeft, Action: MousePress}) {
		t.Fatal("press on thumb not consumed")
	}

	// Dragging to the bottom of the track maps to the max offset.
	sb.HandleMouse(MouseEvent{X: 19, Y: 4, Action: MouseMotion})
	if got := sb.ScrollTop(); got != 15 {
		t.Errorf("ScrollTop() = %d, want 15", got)
	}

	sb.HandleMouse(MouseEvent{X: 19, Y: 2, Action: MouseMotion})
	if got := sb.ScrollTop(); got != 8 {
		t.Errorf("ScrollTop() = %d, want 8", got)
	}

	if !sb.HandleMouse(MouseEvent{Action: MouseRelease}) {
		t.Error("release while dragging not consumed")
	}
	if sb.HandleMouse(MouseEvent{X: 19, Y: 3, Action: MouseMotion}) {
		t.Error("motion after release consumed")
	}
}

func TestScrollBox_TrackClickPages(t *testing.T) {
	sb := lineBox(40)
	buf := NewBuffer(20, 5)
	r := NewRenderer()
	r.Render(sb, buf)

	// Click the track below the thumb: one viewport down.
	if !sb.HandleMouse(MouseEvent{X: 19, Y: 4, Button: MouseLeft, Action: MousePress}) {
		t.Fatal("track click not consumed")
	}
	if got := sb.ScrollTop(); got != 5 {
		t.Errorf("ScrollTop() = %d, want 5", got)
	}
}

func TestScrollBox_AutoScrollRePins(t *testing.T) {
	sb := lineBox(5, WithAutoScroll())
	buf := NewBuffer(20, 5)
	r := NewRenderer()
	r.Render(sb, buf)

	if got := sb.ScrollTop(); got != 0 {
		t.Fatalf("ScrollTop() = %d, want 0 while content fits", got)
	}

	for i := 6; i <= 10; i++ {
		sb.AddChild(Text(fmt.Sprintf("Line %d", i)))
	}
	r.Render(sb, buf)

	// The view was at the bottom and content grew, so it re-pins.
	if got := sb.ScrollTop(); got != 5 {
		t.Errorf("ScrollTop() = %d, want re-pinned 5", got)
	}
	if got := buf.Line(0); got != "Line 6             ▲" {
		t.Errorf("Line(0) = %q, want %q", got, "Line 6             ▲")
	}
}

func TestScrollBox_AutoScrollRespectsUserPosition(t *testing.T) {
	sb := lineBox(20, WithAutoScroll())
	buf := NewBuffer(20, 5)
	r := NewRenderer()
	r.Render(sb, buf)

	// Pin to bottom, then scroll away; growth must not yank the view back
	// while the user is reading history.
	sb.ScrollTo(15, 0)
	sb.ScrollTo(3, 0)

	sb.AddChild(Text("Line 21"))
	r.Render(sb, buf)

	if got := sb.ScrollTop(); got != 3 {
		t.Errorf("ScrollTop() = %d, want 3", got)
	}
}

func TestScrollBox_NestedScrollRegions(t *testing.T) {
	outer := ScrollBox()
	inner := lineBox(10)
	inner.SetProp("height", 3)
	outer.AddChild(Text("before"))
	outer.AddChild(inner)

	buf := NewBuffer(20, 6)
	r := NewRenderer()
	r.Render(outer, buf)

	if got := buf.Line(0); got != "before" {
		t.Errorf("Line(0) = %q, want %q", got, "before")
	}
	// The inner scrollbox paints its own window below, with its own
	// scrollbar in its rightmost column.
	if got := buf.Line(1); got != "Line 1             █" {
		t.Errorf("Line(1) = %q, want %q", got, "Line 1             █")
	}
	if got := buf.Line(3); got != "Line 3             ▼" {
		t.Errorf("Line(3) = %q, want %q", got, "Line 3             ▼")
	}
	if !inner.CanScrollDown() {
		t.Error("inner CanScrollDown() = false")
	}
}

func TestScrollBox_NestedGeometryUnderOuterScroll(t *testing.T) {
	outer := ScrollBox()
	for i := 1; i <= 10; i++ {
		outer.AddChild(Text(fmt.Sprintf("Row %d", i)))
	}
	inner := ScrollBox()
	inner.SetProp("height", 3)
	inner.AddChild(Text("A"))
	inner.AddChild(Text("B"))
	outer.AddChild(inner)

	buf := NewBuffer(20, 6)
	r := NewRenderer()
	r.Render(outer, buf)

	outer.ScrollTo(7, 0)
	r.Render(outer, buf)

	// The inner box holds two rows in a three-row window: scrolling the
	// outer box must not inflate its content height.
	if inner.CanScrollVertically() {
		t.Error("inner CanScrollVertically() = true, content fits its window")
	}
	if inner.CanScrollDown() {
		t.Error("inner CanScrollDown() = true, content fits its window")
	}
	if got := buf.Cell(0, 2).Rune; got != 'R' {
		t.Errorf("Cell(0, 2).Rune = %q, want last outer row", got)
	}
	if got := buf.Cell(0, 3).Rune; got != 'A' {
		t.Errorf("Cell(0, 3).Rune = %q, want 'A'", got)
	}
	if got := buf.Cell(0, 4).Rune; got != 'B' {
		t.Errorf("Cell(0, 4).Rune = %q, want 'B'", got)
	}
}
