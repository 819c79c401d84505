package engine

import (
	"math"

	"github.com/edgedraw/edgedraw/internal/document"
)

const (
	// HandleSize is the side of the square hotspot around each handle.
	HandleSize = 8
	// RotationHandleOffset is how far the rotation handle sits above the top edge.
	RotationHandleOffset = 20
)

// Handle identifies a resize or rotation hotspot on an element.
type Handle string

const (
	HandleNone      Handle = ""
	HandleNorth     Handle = "n"
	HandleSouth     Handle = "s"
	HandleWest      Handle = "w"
	HandleEast      Handle = "e"
	HandleNorthWest Handle = "nw"
	HandleNorthEast Handle = "ne"
	HandleSouthWest Handle = "sw"
	HandleSouthEast Handle = "se"
	HandleRotate    Handle = "rotate"
)

// HandlePosition is the document-space center of one handle.
type HandlePosition struct {
	Handle Handle  `json:"handle"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// RotatePoint rotates p about center by degrees, in the same direction the
// renderer rotates elements. Rotating by -degrees undoes it.
func RotatePoint(p, center document.Point, degrees float64) document.Point {
	x, y := RotateAbout(center.X, center.Y, degrees).TransformPoint(p.X, p.Y)
	return document.Point{X: x, Y: y}
}

// ElementBounds returns the unrotated bounding box of el.
func ElementBounds(el *document.Element) Rect {
	return Rect{X: el.X, Y: el.Y, Width: el.Width, Height: el.Height}
}

// ElementTransform returns the local-to-document transform the renderer
// applies to el: translate to (X, Y), then rotate about the box center.
// Pencil points are already absolute, so only the rotation applies.
func ElementTransform(el *document.Element) Matrix2D {
	if el.Kind == document.KindPencil {
		c := el.Center()
		return FromTransform(0, 0, el.Angle, c.X, c.Y)
	}
	return FromTransform(el.X, el.Y, el.Angle, el.Width/2, el.Height/2)
}

// PointInElement reports whether p falls inside el's rotated bounds. The
// point is taken into the element's frame by the inverse rotation and tested
// against the axis-aligned box.
func PointInElement(p document.Point, el *document.Element) bool {
	c := el.Center()
	x, y := RotateAbout(c.X, c.Y, el.Angle).Invert().TransformPoint(p.X, p.Y)
	return ElementBounds(el).Contains(x, y)
}

// ElementAtPosition returns the topmost element containing p, or nil.
// Later elements are drawn on top, so the scan runs back to front. The
// returned pointer aliases els.
func ElementAtPosition(p document.Point, els []document.Element) *document.Element {
	for i := len(els) - 1; i >= 0; i-- {
		if PointInElement(p, &els[i]) {
			return &els[i]
		}
	}
	return nil
}

// HandlePositions returns the rotated handle centers of el, or nil for kinds
// without handles. The order is the hit-test priority.
func HandlePositions(el *document.Element) []HandlePosition {
	if !el.HasHandles() {
		return nil
	}
	x, y, w, h := el.X, el.Y, el.Width, el.Height
	handles := []HandlePosition{
		{HandleNorthWest, x, y},
		{HandleNorthEast, x + w, y},
		{HandleSouthWest, x, y + h},
		{HandleSouthEast, x + w, y + h},
		{HandleNorth, x + w/2, y},
		{HandleSouth, x + w/2, y + h},
		{HandleWest, x, y + h/2},
		{HandleEast, x + w, y + h/2},
		{HandleRotate, x + w/2, y - RotationHandleOffset},
	}
	m := RotateAbout(x+w/2, y+h/2, el.Angle)
	for i := range handles {
		handles[i].X, handles[i].Y = m.TransformPoint(handles[i].X, handles[i].Y)
	}
	return handles
}

// ResizeHandleAt returns the handle of el whose hotspot contains p.
func ResizeHandleAt(p document.Point, el *document.Element) Handle {
	const half = HandleSize / 2
	for _, h := range HandlePositions(el) {
		if p.X >= h.X-half && p.X <= h.X+half && p.Y >= h.Y-half && p.Y <= h.Y+half {
			return h.Handle
		}
	}
	return HandleNone
}

// BoundingBox returns the axis-aligned union of the unrotated bounds of els.
// It reports false for an empty slice.
func BoundingBox(els []document.Element) (Rect, bool) {
	if len(els) == 0 {
		return Rect{}, false
	}
	box := ElementBounds(&els[0])
	for i := 1; i < len(els); i++ {
		box = box.Union(ElementBounds(&els[i]))
	}
	return box, true
}

// ElementInsideBox reports whether el's bounds lie entirely within box.
func ElementInsideBox(el *document.Element, box Rect) bool {
	return box.ContainsRect(ElementBounds(el))
}

// ApplyResize applies a handle drag of (dx, dy) to a box-like element and
// renormalizes it so width and height stay non-negative. Other kinds are
// left untouched.
func ApplyResize(el *document.Element, h Handle, dx, dy float64) {
	if !el.IsNormalizable() {
		return
	}
	switch h {
	case HandleNorthWest:
		el.X += dx
		el.Y += dy
		el.Width -= dx
		el.Height -= dy
	case HandleNorthEast:
		el.Y += dy
		el.Width += dx
		el.Height -= dy
	case HandleSouthWest:
		el.X += dx
		el.Width -= dx
		el.Height += dy
	case HandleSouthEast:
		el.Width += dx
		el.Height += dy
	case HandleNorth:
		el.Y += dy
		el.Height -= dy
	case HandleSouth:
		el.Height += dy
	case HandleWest:
		el.X += dx
		el.Width -= dx
	case HandleEast:
		el.Width += dx
	}
	if el.Width < 0 {
		el.X += el.Width
		el.Width = -el.Width
	}
	if el.Height < 0 {
		el.Y += el.Height
		el.Height = -el.Height
	}
}

// DrawBox computes the box of a rectangle or ellipse dragged from start to
// cur. mirror grows the box symmetrically about start; square forces equal
// sides using the larger magnitude, keeping each axis's direction (an axis
// with no movement borrows the other's).
func DrawBox(start, cur document.Point, mirror, square bool) Rect {
	x1, y1 := start.X, start.Y
	x2, y2 := cur.X, cur.Y
	if mirror {
		dx, dy := cur.X-start.X, cur.Y-start.Y
		x1, y1 = start.X-dx, start.Y-dy
		x2, y2 = start.X+dx, start.Y+dy
	}
	if square {
		size := max(math.Abs(x2-x1), math.Abs(y2-y1))
		sx, sy := sign(x2-x1), sign(y2-y1)
		if sx == 0 {
			sx = sy
		}
		if sy == 0 {
			sy = sx
		}
		x2 = x1 + size*sx
		y2 = y1 + size*sy
	}
	return RectFromPoints(document.Point{X: x1, Y: y1}, document.Point{X: x2, Y: y2})
}

// RotationAngle returns the absolute angle, in degrees, that points an
// element's rotation handle from center toward p. Zero means the handle is
// straight above the center.
func RotationAngle(center, p document.Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)*180/math.Pi + 90
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
