// Package onebit is the editing core of a pixel-art editor for monochrome
// (1-bit) displays.
//
// Onebit owns the data model and the algorithms: a bounded boolean pixel
// [Grid], brush and shape rasterization, an undo/redo [History], the
// pointer-gesture [Session] state machine, and the [Composition] layer
// layout engine. It knows nothing about windows, widgets, file trees, or
// persistence. Surrounding UI code calls in with grid-space coordinates
// and plain data, and gets updated grids and layer lists back.
//
// # Quick start
//
// An [Editor] ties a grid, gesture handling, and history together:
//
//	ed := onebit.NewEditor(onebit.NewGrid(128, 64))
//	ed.SetTool(onebit.ToolPencil)
//	ed.PointerDown(onebit.Pt(10, 10))
//	ed.PointerMove(onebit.Pt(20, 14))
//	ed.PointerUp()
//	ed.Undo()
//
// The lower-level pieces compose directly if you need finer control: a
// [Session] turns one mouse-down-to-mouse-up gesture into one logical edit,
// and [History] stores up to 50 grid snapshots with standard linear-undo
// semantics.
//
// # Grids
//
// A [Grid] is a plain width×height matrix of booleans, true = ink
// (foreground). It serializes directly to JSON, which is the project
// import/export contract. All coordinate access is clamped: reads outside
// the grid return false, writes outside it are no-ops. Nothing in this
// package panics on out-of-range coordinates.
//
// # Compositions
//
// A [Composition] places sprites, referenced by id and resolved through a
// [SpriteSource], as z-ordered layers on a larger canvas. The layout
// engine provides grid-snapped dragging clamped to canvas bounds, z-order
// swaps, topmost-first hit testing, and collision-aware auto-placement on
// an 8-pixel lattice for duplicated layers.
//
// # Rendering and export
//
// [GridImage] and [DrawComposition] turn grids and compositions into
// [Ebitengine] images for the reference front-end in examples/. [Pack]
// produces the device framebuffer layout (1 bit per pixel, MSB first),
// and [WritePNG] saves snapshots.
//
// [Ebitengine]: https://ebitengine.org
package onebit
