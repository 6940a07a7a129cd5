package layout

import "fmt"

// ErrorKind classifies a failure observed during a render pass.
type ErrorKind uint8

const (
	// ErrLayoutCalculation marks a node whose measurement or placement
	// panicked. The node's subtree is omitted from the pass.
	ErrLayoutCalculation ErrorKind = iota
	// ErrMalformedStyle marks style input that was normalized to a default
	// (unparseable grid templates, out-of-range values). Never fatal.
	ErrMalformedStyle
	// ErrScrollTarget marks a scroll request outside the valid range.
	// Always corrected silently by clamping.
	ErrScrollTarget
)

// String returns the taxonomy name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrLayoutCalculation:
		return "layout-calculation"
	case ErrMalformedStyle:
		return "malformed-style"
	case ErrScrollTarget:
		return "scroll-target"
	default:
		return "unknown"
	}
}

// LayoutError carries the classification of a caught per-node failure:
// the node's kind tag, the position being attempted, and the constraints
// in effect when it failed.
type LayoutError struct {
	Kind        ErrorKind
	NodeKind    string
	Rect        Rect
	Constraints Constraints
	Err         error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s error laying out %s at %+v: %v", e.Kind, e.NodeKind, e.Rect, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// ErrorHook receives classified layout errors. A nil hook discards them.
// The hook must not retain the error's Constraints past the render pass.
type ErrorHook func(*LayoutError)

func (h ErrorHook) report(kind ErrorKind, nodeKind string, rect Rect, c Constraints, err error) {
	if h == nil {
		return
	}
	h(&LayoutError{Kind: kind, NodeKind: nodeKind, Rect: rect, Constraints: c, Err: err})
}
