// Package lattice lays out a tree of UI nodes onto a fixed-size grid of
// monospace character cells and composites them in correct paint order.
//
// The core pieces are:
//
//   - a layout engine (internal/layout, re-exported here) that turns a node
//     tree plus resolved styles into per-node bounding boxes using block,
//     flexbox, and grid algorithms;
//   - a stacking-context manager that linearizes the tree, honoring z-index
//     depth layering, into a global paint order;
//   - viewports that clip nested scrollable regions;
//   - a scroll container combining scroll state, auto-scroll heuristics,
//     and scrollbar hit-testing;
//   - a depth-resolving cell buffer whose diff feeds a downstream flush
//     stage.
//
// The package does not decide when to render and does not own terminal
// I/O; a host framework mutates the node tree between passes and flushes
// the buffer diff to the output device.
package lattice
