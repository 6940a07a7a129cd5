package layout

import "testing"

// testNode is a minimal Layoutable implementation for testing the layout
// algorithms. It provides the same tree structure and dirty tracking the
// real node type uses.
type testNode struct {
	style      Style
	children   []*testNode
	layout     Layout
	dirty      bool
	parent     *testNode
	intrinsicW int
	intrinsicH int
	panicky    bool // panic in IntrinsicSize to exercise error isolation
}

// newTestNode creates a new testNode with the given style.
func newTestNode(style Style) *testNode {
	return &testNode{
		style: style,
		dirty: true,
	}
}

// Implement Layoutable interface

func (n *testNode) Kind() string       { return "test" }
func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

func (n *testNode) SetLayout(l Layout) { n.layout = l }
func (n *testNode) GetLayout() Layout  { return n.layout }
func (n *testNode) IsDirty() bool      { return n.dirty }
func (n *testNode) SetDirty(d bool)    { n.dirty = d }

func (n *testNode) IntrinsicSize() (width, height int) {
	if n.panicky {
		panic("intrinsic size failure")
	}
	return n.intrinsicW, n.intrinsicH
}

// Additional methods for testing

// AddChild appends children and marks this node dirty.
func (n *testNode) AddChild(children ...*testNode) {
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
	}
	n.markDirty()
}

// markDirty marks this node and all ancestors as needing recalculation.
func (n *testNode) markDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// tight is shorthand for the constraints most tests use.
func tight(w, h int) Constraints {
	return Tight(w, h, Size{Width: w, Height: h})
}

func TestTestNode_ImplementsLayoutable(t *testing.T) {
	var _ Layoutable = (*testNode)(nil)
}

func TestTestNode_MarkDirty_PropagatesUp(t *testing.T) {
	root := newTestNode(DefaultStyle())
	middle := newTestNode(DefaultStyle())
	leaf := newTestNode(DefaultStyle())
	root.AddChild(middle)
	middle.AddChild(leaf)

	root.dirty = false
	middle.dirty = false
	leaf.dirty = false

	leaf.markDirty()

	if !leaf.IsDirty() {
		t.Error("leaf should be dirty")
	}
	if !middle.IsDirty() {
		t.Error("middle should be dirty (propagated from leaf)")
	}
	if !root.IsDirty() {
		t.Error("root should be dirty (propagated from leaf)")
	}
}

func TestDefaultStyle(t *testing.T) {
	style := DefaultStyle()

	if !style.Width.IsAuto() {
		t.Error("DefaultStyle Width should be Auto")
	}
	if !style.Height.IsAuto() {
		t.Error("DefaultStyle Height should be Auto")
	}
	if style.Direction != Row {
		t.Errorf("DefaultStyle Direction = %v, want Row", style.Direction)
	}
	if style.AlignItems != AlignStretch {
		t.Errorf("DefaultStyle AlignItems = %v, want AlignStretch", style.AlignItems)
	}
	if style.FlexShrink != 1.0 {
		t.Errorf("DefaultStyle FlexShrink = %v, want 1.0", style.FlexShrink)
	}
	if style.AlignSelf != nil {
		t.Errorf("DefaultStyle AlignSelf should be nil, got %v", style.AlignSelf)
	}
}
