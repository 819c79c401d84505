package engine

import (
	"testing"
)

func TestMatrixInvert(t *testing.T) {
	m := FromTransform(40, 25, 30, 50, 10)
	diff(t, Identity(), m.Multiply(m.Invert()), approx)
	diff(t, Identity(), Matrix2D{}.Invert())
}

func TestFromTransformMatchesComposition(t *testing.T) {
	x, y, deg, ax, ay := 40.0, 25.0, 30.0, 50.0, 10.0
	want := Translate(x, y).
		Multiply(Translate(ax, ay)).
		Multiply(RotateDegrees(deg)).
		Multiply(Translate(-ax, -ay))
	diff(t, want, FromTransform(x, y, deg, ax, ay), approx)

	diff(t, Translate(7, 9), FromTransform(7, 9, 0, 3, 4), approx)
}

func TestTransformRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 20}
	got := RotateAbout(50, 10, 90).TransformRect(r)
	diff(t, Rect{X: 40, Y: -40, Width: 20, Height: 100}, got, approx)
}
