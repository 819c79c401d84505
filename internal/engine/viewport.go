package engine

import "github.com/edgedraw/edgedraw/internal/document"

// Viewport is the zoom and pan applied when mapping screen pixels to
// document space. It never changes element geometry.
type Viewport struct {
	Zoom float64        `json:"zoom"`
	Pan  document.Point `json:"pan"`

	minZoom float64
	maxZoom float64
}

// NewViewport returns an unpanned viewport at 100% zoom.
func NewViewport(minZoom, maxZoom float64) Viewport {
	if minZoom <= 0 {
		minZoom = 0.1
	}
	if maxZoom < minZoom {
		maxZoom = minZoom
	}
	return Viewport{Zoom: 1, minZoom: minZoom, maxZoom: maxZoom}
}

// ToDocument converts a screen position relative to the drawing surface
// into document coordinates.
func (v *Viewport) ToDocument(screen document.Point) document.Point {
	return document.Point{
		X: (screen.X - v.Pan.X) / v.Zoom,
		Y: (screen.Y - v.Pan.Y) / v.Zoom,
	}
}

// ToScreen is the inverse of ToDocument.
func (v *Viewport) ToScreen(p document.Point) document.Point {
	return document.Point{
		X: p.X*v.Zoom + v.Pan.X,
		Y: p.Y*v.Zoom + v.Pan.Y,
	}
}

// SetZoom sets the zoom factor clamped to the viewport's bounds.
func (v *Viewport) SetZoom(zoom float64) {
	v.Zoom = min(max(zoom, v.minZoom), v.maxZoom)
}

// PanBy shifts the pan offset by raw screen pixels, independent of zoom.
func (v *Viewport) PanBy(dx, dy float64) {
	v.Pan.X += dx
	v.Pan.Y += dy
}
