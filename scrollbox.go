package lattice

import (
	"math"

	"github.com/lattice-tui/lattice/internal/debug"
)

// ScrollState holds the scroll position and geometry of one scrollbox.
// Scroll offsets are clamped into [0, max(0, content − viewport)] on
// every write; out-of-range requests are corrected silently.
type ScrollState struct {
	top  int
	left int

	contentWidth   int
	contentHeight  int
	viewportWidth  int
	viewportHeight int

	step       int
	autoScroll bool
	horizontal bool

	// Scrollbar interaction state, refreshed during paint.
	dragging   bool
	dragGrab   int // rows between the pointer and the thumb top at grab
	barRect    Rect
	thumbRect  Rect
	trackStyle Style
	thumbStyle Style

	onScroll func(top, left int)
}

func newScrollState() *ScrollState {
	return &ScrollState{
		step:       1,
		trackStyle: NewStyle().Foreground(BrightBlack),
		thumbStyle: NewStyle().Foreground(White),
	}
}

// maxTop returns the largest valid vertical scroll offset.
func (s *ScrollState) maxTop() int {
	return max(0, s.contentHeight-s.viewportHeight)
}

// maxLeft returns the largest valid horizontal scroll offset.
func (s *ScrollState) maxLeft() int {
	return max(0, s.contentWidth-s.viewportWidth)
}

// ScrollTop returns the current vertical scroll offset.
func (n *Node) ScrollTop() int {
	if n.scroll == nil {
		return 0
	}
	return n.scroll.top
}

// ScrollLeft returns the current horizontal scroll offset.
func (n *Node) ScrollLeft() int {
	if n.scroll == nil {
		return 0
	}
	return n.scroll.left
}

// ScrollTo sets the scroll position, clamped to the valid range. The
// change notification fires only when the clamped value actually moved,
// so setting the same position twice is idempotent.
func (n *Node) ScrollTo(top, left int) {
	s := n.scroll
	if s == nil {
		return
	}
	top = clamp(top, 0, s.maxTop())
	left = clamp(left, 0, s.maxLeft())
	if top == s.top && left == s.left {
		return
	}
	s.top = top
	s.left = left
	if s.onScroll != nil {
		s.onScroll(s.top, s.left)
	}
}

// ScrollBy adjusts the scroll position by a delta, clamped.
func (n *Node) ScrollBy(deltaY, deltaX int) {
	if n.scroll == nil {
		return
	}
	n.ScrollTo(n.scroll.top+deltaY, n.scroll.left+deltaX)
}

// ScrollToNode scrolls the minimum amount that brings target fully into
// view: if target is above the visible window its top is aligned, if
// below its bottom is aligned. No-op when target is already visible or
// is not a descendant of this scrollbox.
func (n *Node) ScrollToNode(target *Node) {
	s := n.scroll
	if s == nil || target == nil {
		return
	}
	inside := false
	for p := target.Parent(); p != nil; p = p.Parent() {
		if p == n {
			inside = true
			break
		}
	}
	if !inside {
		return
	}

	// Children are laid out in unscrolled coordinates anchored at the
	// content box, so the offset within content space is a plain delta.
	offset := target.Bounds().Y - n.ContentBounds().Y
	height := target.Bounds().Height

	switch {
	case offset < s.top:
		n.ScrollTo(offset, s.left)
	case offset+height > s.top+s.viewportHeight:
		n.ScrollTo(offset+height-s.viewportHeight, s.left)
	}
}

// CanScrollUp reports whether content extends above the visible window.
func (n *Node) CanScrollUp() bool {
	return n.scroll != nil && n.scroll.top > 0
}

// CanScrollDown reports whether content extends below the visible window.
func (n *Node) CanScrollDown() bool {
	return n.scroll != nil && n.scroll.top < n.scroll.maxTop()
}

// CanScrollVertically reports whether the content is taller than the
// visible window at all.
func (n *Node) CanScrollVertically() bool {
	return n.scroll != nil && n.scroll.contentHeight > n.scroll.viewportHeight
}

// CanScrollHorizontally reports whether the content is wider than the
// visible window.
func (n *Node) CanScrollHorizontally() bool {
	return n.scroll != nil && n.scroll.contentWidth > n.scroll.viewportWidth
}

// HandleKey processes a keyboard event against the scrollbox. Returns
// true when the event was consumed.
func (n *Node) HandleKey(ev KeyEvent) bool {
	s := n.scroll
	if s == nil {
		return false
	}

	page := max(1, s.viewportHeight-1)
	switch ev.Key {
	case KeyUp:
		n.ScrollBy(-s.step, 0)
	case KeyDown:
		n.ScrollBy(s.step, 0)
	case KeyLeft:
		if !s.horizontal {
			return false
		}
		n.ScrollBy(0, -s.step)
	case KeyRight:
		if !s.horizontal {
			return false
		}
		n.ScrollBy(0, s.step)
	case KeyPageUp:
		n.ScrollBy(-page, 0)
	case KeyPageDown:
		n.ScrollBy(page, 0)
	case KeyHome:
		n.ScrollTo(0, s.left)
	case KeyEnd:
		n.ScrollTo(s.maxTop(), s.left)
	default:
		return false
	}
	return true
}

// HandleMouse processes a pointer event against the scrollbox: wheel
// scrolling anywhere over the box, clicks on the scrollbar track page by
// one viewport, and dragging the thumb maps the pointer's track-relative
// position proportionally to a scroll offset. Returns true when the
// event was consumed.
func (n *Node) HandleMouse(ev MouseEvent) bool {
	s := n.scroll
	if s == nil {
		return false
	}

	switch ev.Button {
	case MouseWheelUp:
		if n.Bounds().Contains(ev.X, ev.Y) {
			n.ScrollBy(-s.step, 0)
			return true
		}
		return false
	case MouseWheelDown:
		if n.Bounds().Contains(ev.X, ev.Y) {
			n.ScrollBy(s.step, 0)
			return true
		}
		return false
	}

	switch ev.Action {
	case MousePress:
		if ev.Button != MouseLeft {
			return false
		}
		if s.thumbRect.Contains(ev.X, ev.Y) {
			s.dragging = true
			s.dragGrab = ev.Y - s.thumbRect.Y
			return true
		}
		if s.barRect.Contains(ev.X, ev.Y) {
			// Clicking the track above or below the thumb pages by one
			// viewport.
			if ev.Y < s.thumbRect.Y {
				n.ScrollBy(-s.viewportHeight, 0)
			} else {
				n.ScrollBy(s.viewportHeight, 0)
			}
			return true
		}
		return false

	case MouseMotion:
		if !s.dragging {
			return false
		}
		trackRange := s.barRect.Height - s.thumbRect.Height
		if trackRange <= 0 {
			return true
		}
		pos := ev.Y - s.barRect.Y - s.dragGrab
		top := int(math.Round(float64(pos) / float64(trackRange) * float64(s.maxTop())))
		n.ScrollTo(top, s.left)
		return true

	case MouseRelease:
		if s.dragging {
			s.dragging = false
			return true
		}
		return false
	}
	return false
}

// syncScroll refreshes the state's geometry after a layout pass.
// content is the scrollbox's content window in unscrolled coordinates.
// When auto-scroll is enabled and the view was at (or within one row of)
// the bottom before content grew, the view re-pins to the new bottom.
func (n *Node) syncScroll(content Rect) {
	s := n.scroll
	if s == nil {
		return
	}

	wasAtBottom := s.top >= s.maxTop()-1

	contentWidth, contentHeight := 0, 0
	for _, child := range n.Children() {
		cb := child.Bounds()
		cs := child.Computed().Style
		contentWidth = max(contentWidth, cb.Right()+cs.Margin.Right-content.X)
		contentHeight = max(contentHeight, cb.Bottom()+cs.Margin.Bottom-content.Y)
	}

	grew := contentHeight > s.contentHeight
	s.viewportWidth = content.Width
	s.viewportHeight = content.Height
	s.contentWidth = contentWidth
	s.contentHeight = contentHeight

	if s.autoScroll && grew && wasAtBottom {
		s.top = s.maxTop()
		debug.Log("scrollbox %d re-pinned to bottom (content %d viewport %d)",
			n.ID(), s.contentHeight, s.viewportHeight)
	}

	// Content may have shrunk; correct silently.
	s.top = clamp(s.top, 0, s.maxTop())
	s.left = clamp(s.left, 0, s.maxLeft())
}

// paintScrollBox paints the scrollbox and its subtree: background and
// border, then each visible child clipped to the viewport, then the
// scrollbar and indicators. The scrollbox is responsible for descending
// into its children's children, since ordinary nodes only paint
// themselves when hosted inside a scroll region.
func (n *Node) paintScrollBox(buf *Buffer, f paintFrame) {
	s := n.scroll
	if s == nil {
		return
	}

	bounds := n.Bounds().Translate(f.offsetX, f.offsetY)
	content := n.ContentBounds().Translate(f.offsetX, f.offsetY)

	n.paintChrome(buf, f, bounds)
	// Children are measured in untranslated layout coordinates; the
	// translated rect is for clipping and painting only.
	n.syncScroll(n.ContentBounds())

	vp := f.viewports.Create(n, content)
	clip, ok := vp.Clip(f.clip)
	if !ok {
		return
	}

	childFrame := f
	childFrame.offsetX -= s.left
	childFrame.offsetY -= s.top
	childFrame.clip = clip
	for _, child := range n.Children() {
		n.paintScrollDescendant(buf, childFrame, child)
	}

	n.paintScrollbar(buf, f, content, clip)
}

// paintScrollDescendant paints one node of the scroll subtree and
// recurses. Subtrees fully outside the visible window are skipped; a
// nested scrollbox paints its own subtree.
func (n *Node) paintScrollDescendant(buf *Buffer, f paintFrame, node *Node) {
	screen := node.Bounds().Translate(f.offsetX, f.offsetY)
	if !screen.Intersects(f.clip) {
		return
	}
	node.paint(buf, f)
	if node.NodeKind() == KindScrollBox {
		return
	}
	for _, child := range node.Children() {
		n.paintScrollDescendant(buf, f, child)
	}
}

// paintScrollbar draws the vertical scrollbar and the ▲/▼ indicators in
// the rightmost content column. Nothing is drawn when the content fits.
func (n *Node) paintScrollbar(buf *Buffer, f paintFrame, content, clip Rect) {
	s := n.scroll
	if !n.CanScrollVertically() || content.Width < 1 || content.Height < 1 {
		s.barRect = Rect{}
		s.thumbRect = Rect{}
		return
	}

	x := content.Right() - 1
	s.barRect = NewRect(x, content.Y, 1, content.Height)

	thumbH := int(math.Round(float64(s.viewportHeight) * float64(s.viewportHeight) / float64(s.contentHeight)))
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > content.Height {
		thumbH = content.Height
	}

	thumbY := content.Y
	if maxScroll := s.maxTop(); maxScroll > 0 {
		span := content.Height - thumbH
		thumbY = content.Y + int(math.Round(float64(s.top)/float64(maxScroll)*float64(span)))
	}
	s.thumbRect = NewRect(x, thumbY, 1, thumbH)

	proto := f.cell(' ', s.trackStyle)
	for y := content.Y; y < content.Bottom(); y++ {
		if !clip.Contains(x, y) {
			continue
		}
		c := proto
		if y >= thumbY && y < thumbY+thumbH {
			c.Rune = '█'
			c.Style = s.thumbStyle
		} else {
			c.Rune = '│'
		}
		c.Width = 1
		buf.SetCell(x, y, c)
	}

	if n.CanScrollUp() && clip.Contains(x, content.Y) {
		c := f.cell('▲', s.trackStyle)
		buf.SetCell(x, content.Y, c)
	}
	if n.CanScrollDown() && clip.Contains(x, content.Bottom()-1) {
		c := f.cell('▼', s.trackStyle)
		buf.SetCell(x, content.Bottom()-1, c)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
