package model

import "math"

// BBox represents a bounding box in page coordinates.
//
// The coordinate space has its origin at the top-left of the page with Y
// increasing downward, matching the order in which text is read. This differs
// from the raw PDF convention (origin bottom-left); sources are expected to
// convert before handing fragments to this module.
type BBox struct {
	X      float64 `json:"x"` // Left
	Y      float64 `json:"y"` // Top
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

// NewBBox creates a bounding box from a top-left corner and dimensions.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromCorners creates a bounding box from (x0,y0)-(x1,y1) corner form,
// the form in which span sources typically report fragment positions.
func NewBBoxFromCorners(x0, y0, x1, y1 float64) BBox {
	return BBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// CenterY returns the vertical center, used for line grouping.
func (b BBox) CenterY() float64 {
	return b.Y + b.Height/2
}

// Union returns the minimal bounding box enclosing both boxes.
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Area returns the area of the bounding box.
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// IsValid reports whether the box has non-negative, finite dimensions.
// Sources report degenerate boxes for some fragments (rotated text, broken
// extractors); those are skipped and tallied rather than processed.
func (b BBox) IsValid() bool {
	if math.IsNaN(b.X) || math.IsNaN(b.Y) || math.IsNaN(b.Width) || math.IsNaN(b.Height) {
		return false
	}
	if math.IsInf(b.X, 0) || math.IsInf(b.Y, 0) || math.IsInf(b.Width, 0) || math.IsInf(b.Height, 0) {
		return false
	}
	return b.Width >= 0 && b.Height >= 0
}
