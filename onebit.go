package onebit

// Point is an integer grid-space coordinate. The origin is the top-left
// cell, with Y increasing downward.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle of grid cells. X, Y is the top-left
// corner; W and H are in cells and never negative for rectangles built by
// this package.
type Rect struct {
	X, Y, W, H int
}

// RectFromCorners returns the bounding box of two points, inclusive of
// both. The corners may be given in any order.
func RectFromCorners(a, b Point) Rect {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Tool identifies a drawing tool. Freehand tools (pencil, eraser)
// accumulate as the pointer moves; shape tools preview against the
// pre-gesture grid and commit on release.
type Tool uint8

const (
	ToolPencil     Tool = iota // freehand, stamps the ink color
	ToolEraser                 // freehand, always stamps background
	ToolFill                   // 4-connected flood fill from the clicked cell
	ToolLine                   // Bresenham line from anchor to pointer
	ToolRect                   // rectangle outline
	ToolRectFill               // filled rectangle
	ToolCircle                 // circle outline, anchor is the center
	ToolCircleFill             // filled circle
	ToolInvert                 // flips every cell in the dragged box
)

// String returns the tool name as shown in tool palettes.
func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolEraser:
		return "eraser"
	case ToolFill:
		return "fill"
	case ToolLine:
		return "line"
	case ToolRect:
		return "rect"
	case ToolRectFill:
		return "rect-fill"
	case ToolCircle:
		return "circle"
	case ToolCircleFill:
		return "circle-fill"
	case ToolInvert:
		return "invert"
	default:
		return "unknown"
	}
}
