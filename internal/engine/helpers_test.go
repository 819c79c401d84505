package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/edgedraw/edgedraw/internal/config"
	"github.com/edgedraw/edgedraw/internal/document"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, name string, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:           "debug",
		HistoryLimit:       50,
		MinZoom:            0.1,
		MaxZoom:            3,
		ZoomStep:           0.1,
		DuplicateOffset:    10,
		DefaultStroke:      "#000000",
		DefaultFill:        document.TransparentFill,
		DefaultFillStyle:   string(document.FillHachure),
		DefaultStrokeWidth: 2,
		DefaultRoughness:   1,
	}
}

// charMeasurer sizes text at half an em per character so expectations are
// exact.
type charMeasurer struct{}

func (charMeasurer) MeasureText(text string, fontSize float64) (float64, float64) {
	lines := strings.Split(text, "\n")
	var w float64
	for _, l := range lines {
		w = max(w, float64(len(l))*fontSize/2)
	}
	return w, fontSize * float64(len(lines))
}

func newTestStore(els ...document.Element) *Store {
	s := NewStore(testConfig(), charMeasurer{}, nil)
	if len(els) > 0 {
		s.LoadElements(els)
	}
	return s
}

func rect(x, y, w, h float64) document.Element {
	el := document.MustNewElement(document.KindRectangle, document.Point{X: x, Y: y}, document.Properties{Stroke: "#000000"})
	el.Width, el.Height = w, h
	return el
}

func textAt(x, y float64) document.Element {
	return document.MustNewElement(document.KindText, document.Point{X: x, Y: y}, document.Properties{Stroke: "#000000"})
}

func bounds(el document.Element) Rect { return ElementBounds(&el) }

func ids(els []document.Element) []string {
	out := make([]string, len(els))
	for i, el := range els {
		out[i] = el.ID
	}
	return out
}
