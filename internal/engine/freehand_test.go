package engine

import (
	"testing"

	"honnef.co/go/curve"

	"github.com/edgedraw/edgedraw/internal/document"
)

func TestFreehandOutlineEmpty(t *testing.T) {
	if got := FreehandOutline(nil, 2); got != nil {
		t.Errorf("empty stroke outline = %v", got)
	}
	if got := OutlinePath(nil); got != nil {
		t.Errorf("empty outline path = %v", got)
	}
}

func TestFreehandOutlineSinglePointIsDot(t *testing.T) {
	c := document.Point{X: 10, Y: 10}
	outline := FreehandOutline([]document.Point{c, c}, 2)
	if len(outline) == 0 {
		t.Fatal("single point has no outline")
	}
	// size is twice the stroke width; at resting pressure the radius is half
	// of it.
	box := outline.BoundingBox()
	assertNear(t, "x0", 8, box.X0)
	assertNear(t, "y0", 8, box.Y0)
	assertNear(t, "x1", 12, box.X1)
	assertNear(t, "y1", 12, box.Y1)
}

func TestFreehandOutlineDeterministic(t *testing.T) {
	pts := []document.Point{{X: 0, Y: 0}, {X: 5, Y: 2}, {X: 12, Y: 3}, {X: 30, Y: 10}, {X: 31, Y: 40}}
	a := FreehandOutline(pts, 2)
	b := FreehandOutline(pts, 2)
	diff(t, a, b)
	if len(a) < 3 || a[0].Kind != curve.MoveToKind || a[len(a)-1].Kind != curve.ClosePathKind {
		t.Errorf("outline is not a single closed subpath: %v", a)
	}
}

func TestFreehandOutlineEnclosesStroke(t *testing.T) {
	pts := []document.Point{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0}}
	outline := FreehandOutline(pts, 4)

	// size 8: the radius never exceeds 0.8 of it, and simplification may
	// stray by at most 0.2.
	box := outline.BoundingBox()
	if box.Y0 < -6.6 || box.Y1 > 6.6 {
		t.Errorf("outline %v is wider than the stroke", box)
	}
	if box.Y0 >= 0 || box.Y1 <= 0 {
		t.Errorf("outline %v does not surround the centerline", box)
	}
	if box.X0 >= 0 || box.X1 <= 100 {
		t.Errorf("outline %v has no caps past the ends", box)
	}
	for _, p := range []curve.Point{curve.Pt(0, 0.5), curve.Pt(50, -0.5), curve.Pt(100, 0.5)} {
		if outline.Winding(p) == 0 {
			t.Errorf("point %v beside the centerline is outside the outline", p)
		}
	}
}

func TestFreehandOutlineThinsWithSpeed(t *testing.T) {
	slow := []curve.Point{curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(2, 0), curve.Pt(3, 0)}
	fast := []curve.Point{curve.Pt(0, 0), curve.Pt(8, 0), curve.Pt(16, 0), curve.Pt(24, 0)}
	slowR, fastR := pressureRadii(slow, 8), pressureRadii(fast, 8)
	assertNear(t, "resting radius", 4, slowR[0])
	if slowR[3] <= slowR[0] {
		t.Errorf("slow stroke radius %v did not grow from %v", slowR[3], slowR[0])
	}
	if fastR[3] >= fastR[0] {
		t.Errorf("fast stroke radius %v did not thin from %v", fastR[3], fastR[0])
	}
}

func TestOutlinePath(t *testing.T) {
	var outline curve.BezPath
	outline.MoveTo(curve.Pt(0, 0))
	outline.LineTo(curve.Pt(10, 0))
	outline.QuadTo(curve.Pt(10, 10), curve.Pt(5, 5))
	outline.CubicTo(curve.Pt(4, 4), curve.Pt(2, 2), curve.Pt(1, 1))
	outline.ClosePath()
	diff(t, []PathCommand{
		{"M", 0.0, 0.0},
		{"L", 10.0, 0.0},
		{"Q", 10.0, 10.0, 5.0, 5.0},
		{"C", 4.0, 4.0, 2.0, 2.0, 1.0, 1.0},
		{"Z"},
	}, OutlinePath(outline))
}
