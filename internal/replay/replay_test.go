package replay

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edgedraw/edgedraw/internal/config"
	"github.com/edgedraw/edgedraw/internal/document"
	"github.com/edgedraw/edgedraw/internal/engine"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(&config.Config{
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
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

type box struct{ X, Y, W, H float64 }

func boxes(els []document.Element) []box {
	out := make([]box, len(els))
	for i, el := range els {
		out[i] = box{el.X, el.Y, el.Width, el.Height}
	}
	return out
}

func TestRunScript(t *testing.T) {
	const script = `
# two rectangles, then duplicate the second and align everything left
{"type": "tool", "tool": "rectangle"}
{"type": "down", "x": 10, "y": 10}
{"type": "move", "x": 110, "y": 60}
{"type": "up"}
{"type": "down", "x": 200, "y": 100}
{"type": "move", "x": 240, "y": 120}
{"type": "up"}
{"type": "duplicate"}
{"type": "tool", "tool": "select"}
{"type": "down", "x": 0, "y": 0}
{"type": "move", "x": 300, "y": 300}
{"type": "up"}
{"type": "align", "align": "left"}
`
	eng := newEngine(t)
	n, err := Run(eng, strings.NewReader(script), nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 13 {
		t.Errorf("applied %d events, want 13", n)
	}

	want := []box{
		{10, 10, 100, 50},
		{10, 100, 40, 20},
		{10, 110, 40, 20},
	}
	if d := cmp.Diff(want, boxes(eng.Store().Elements())); d != "" {
		t.Error(d)
	}

	// Each draw, the duplicate and the alignment are one step each; the
	// rubber band is none.
	for i := 0; i < 3; i++ {
		eng.Undo()
	}
	if d := cmp.Diff([]box{{10, 10, 100, 50}}, boxes(eng.Store().Elements())); d != "" {
		t.Error(d)
	}
}

func TestRunStopsAtBadLine(t *testing.T) {
	eng := newEngine(t)
	_, err := Run(eng, strings.NewReader("{\"type\": \"undo\"}\n{\"type\": \"teleport\"}\n"), nil)
	if !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("err = %v, want ErrUnknownEvent", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the line", err)
	}

	if _, err := Run(eng, strings.NewReader(`{"type": "tool", "tool": "lasso"}`), nil); !errors.Is(err, engine.ErrUnknownTool) {
		t.Errorf("err = %v, want ErrUnknownTool", err)
	}
	if _, err := Run(eng, strings.NewReader(`{"type": "forward", "id": "not-an-id"}`), nil); err == nil {
		t.Error("malformed element id accepted")
	}
	if _, err := Run(eng, strings.NewReader(`{not json`), nil); err == nil {
		t.Error("malformed line accepted")
	}
}

func TestApplyProperties(t *testing.T) {
	eng := newEngine(t)
	eng.LoadSampleDocument()
	id := eng.HitTest(100, 100)
	eng.Store().SetSelection([]string{id})

	if err := Apply(eng, Event{Type: "props", Props: []byte(`{"fill": "#123456"}`)}); err != nil {
		t.Fatal(err)
	}
	el, _ := eng.Store().Element(id)
	if el.Fill != "#123456" {
		t.Errorf("fill = %q", el.Fill)
	}
	if !eng.Store().CanUndo() {
		t.Error("property event is not undoable")
	}
}
