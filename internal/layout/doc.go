// Package layout implements a pure-Go layout engine for character grids.
//
// It computes bounding boxes for a tree of nodes using block, flexbox, or
// grid algorithms selected by each node's display mode. It supports margin
// collapsing, row/column directions with reverse variants, wrapping, justify
// and align modes, fr-unit grid tracks with named lines, padding, margin,
// min/max constraints, percentage and viewport-relative dimensions, and
// intrinsic sizing. Types are re-exported through the root lattice package
// for public consumption.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// computes absolute [Rect] positions for each node. A failing child is
// omitted from the pass and reported through the configured [ErrorHook]
// rather than aborting the whole tree.
package layout
