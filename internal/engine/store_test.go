package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/edgedraw/edgedraw/internal/document"
)

func TestSetSelectionDropsUnknownAndDuplicateIDs(t *testing.T) {
	a, b := rect(0, 0, 10, 10), rect(20, 0, 10, 10)
	s := newTestStore(a, b)

	s.SetSelection([]string{b.ID, "el_missing", b.ID, a.ID})
	diff(t, []string{b.ID, a.ID}, s.SelectedIDs())

	s.ToggleSelection(b.ID)
	diff(t, []string{a.ID}, s.SelectedIDs())
	s.ToggleSelection(b.ID)
	diff(t, []string{a.ID, b.ID}, s.SelectedIDs())

	s.SetElements([]document.Element{b})
	diff(t, []string{b.ID}, s.SelectedIDs())
}

func TestUpdateElementByID(t *testing.T) {
	a, b := rect(0, 0, 10, 10), rect(20, 0, 10, 10)
	s := newTestStore(a, b)

	if !s.UpdateElementByID(b.ID, func(el *document.Element) { el.Stroke = "#ff0000" }) {
		t.Fatal("existing id not updated")
	}
	if s.UpdateElementByID("el_missing", func(el *document.Element) { t.Error("called for a missing id") }) {
		t.Error("missing id reported updated")
	}
	got := s.Elements()
	if got[0].Stroke != "#000000" || got[1].Stroke != "#ff0000" {
		t.Errorf("strokes = %q, %q", got[0].Stroke, got[1].Stroke)
	}
}

func TestElementsReturnsCopies(t *testing.T) {
	s := newTestStore(rect(0, 0, 10, 10))
	els := s.Elements()
	els[0].X = 500
	if el := s.Elements()[0]; el.X != 0 {
		t.Errorf("store element moved to %v through a returned copy", el.X)
	}
}

func TestDeleteSelectedThenUndo(t *testing.T) {
	a, b := rect(0, 0, 10, 10), rect(20, 0, 10, 10)
	s := newTestStore(a, b)

	s.SetSelection([]string{a.ID})
	s.DeleteSelected()
	diff(t, []string{b.ID}, ids(s.Elements()))
	if len(s.SelectedIDs()) != 0 {
		t.Errorf("selection after delete = %v", s.SelectedIDs())
	}

	s.Undo()
	diff(t, []string{a.ID, b.ID}, ids(s.Elements()))
	if len(s.SelectedIDs()) != 0 {
		t.Errorf("selection after undo = %v", s.SelectedIDs())
	}

	s.Redo()
	diff(t, []string{b.ID}, ids(s.Elements()))
}

func TestDeleteWithEmptySelectionIsNoOp(t *testing.T) {
	s := newTestStore(rect(0, 0, 10, 10))
	s.DeleteSelected()
	if s.Len() != 1 || s.CanUndo() {
		t.Errorf("len = %d, canUndo = %v", s.Len(), s.CanUndo())
	}
}

func TestDuplicateSelected(t *testing.T) {
	a := rect(10, 20, 30, 40)
	s := newTestStore(a)
	s.SetSelection([]string{a.ID})
	s.DuplicateSelected()

	els := s.Elements()
	if len(els) != 2 {
		t.Fatalf("len = %d, want 2", len(els))
	}
	clone := els[1]
	if clone.ID == a.ID {
		t.Error("clone kept the original id")
	}
	diff(t, Rect{X: 20, Y: 30, Width: 30, Height: 40}, bounds(clone))
	diff(t, a, clone, cmpopts.IgnoreFields(document.Element{}, "ID", "Seed", "X", "Y"))
	diff(t, []string{clone.ID}, s.SelectedIDs())
	if !s.CanUndo() {
		t.Error("duplicate is not undoable")
	}
}

func TestDuplicatePencilMovesPoints(t *testing.T) {
	p := document.MustNewElement(document.KindPencil, document.Point{X: 0, Y: 0}, document.Properties{})
	p.Points = append(p.Points, document.Point{X: 10, Y: 10})
	p.FitToPoints()
	s := newTestStore(p)
	s.SetSelection([]string{p.ID})
	s.DuplicateSelected()

	diff(t, []document.Point{{X: 10, Y: 10}, {X: 20, Y: 20}}, s.Elements()[1].Points)
	diff(t, []document.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, s.Elements()[0].Points)
}

func TestAlignSelected(t *testing.T) {
	a := rect(10, 10, 50, 20)
	b := rect(100, 60, 20, 40)
	tests := []struct {
		align        document.Alignment
		wantA, wantB document.Point
	}{
		{document.AlignLeft, document.Point{X: 10, Y: 10}, document.Point{X: 10, Y: 60}},
		{document.AlignRight, document.Point{X: 70, Y: 10}, document.Point{X: 100, Y: 60}},
		{document.AlignCenterHorizontal, document.Point{X: 40, Y: 10}, document.Point{X: 55, Y: 60}},
		{document.AlignTop, document.Point{X: 10, Y: 10}, document.Point{X: 100, Y: 10}},
		{document.AlignBottom, document.Point{X: 10, Y: 80}, document.Point{X: 100, Y: 60}},
		{document.AlignCenterVertical, document.Point{X: 10, Y: 45}, document.Point{X: 100, Y: 35}},
	}
	for _, tt := range tests {
		t.Run(string(tt.align), func(t *testing.T) {
			s := newTestStore(a, b)
			s.SetSelection([]string{a.ID, b.ID})
			s.AlignSelected(tt.align)
			els := s.Elements()
			diff(t, tt.wantA, document.Point{X: els[0].X, Y: els[0].Y})
			diff(t, tt.wantB, document.Point{X: els[1].X, Y: els[1].Y})
			if !s.CanUndo() {
				t.Error("align is not undoable")
			}
		})
	}
}

func TestAlignUnknownIsNoOp(t *testing.T) {
	a, b := rect(10, 10, 50, 20), rect(100, 60, 20, 40)
	s := newTestStore(a, b)
	s.SetSelection([]string{a.ID, b.ID})
	s.AlignSelected("diagonal")
	diff(t, []document.Element{a, b}, s.Elements())
	if s.CanUndo() {
		t.Error("unknown alignment committed a snapshot")
	}
}

func TestZOrder(t *testing.T) {
	a, b, c := rect(0, 0, 1, 1), rect(0, 0, 1, 1), rect(0, 0, 1, 1)
	s := newTestStore(a, b, c)

	s.BringForward(a.ID)
	diff(t, []string{b.ID, c.ID, a.ID}, ids(s.Elements()))

	s.SendBackward(a.ID)
	diff(t, []string{a.ID, b.ID, c.ID}, ids(s.Elements()))

	past, _ := s.HistoryDepth()
	s.BringForward("el_missing")
	if p, _ := s.HistoryDepth(); p != past {
		t.Errorf("unknown id changed history depth %d -> %d", past, p)
	}

	s.Undo()
	diff(t, []string{b.ID, c.ID, a.ID}, ids(s.Elements()))
}

func TestUpdateSelectedProperties(t *testing.T) {
	r := rect(0, 0, 10, 10)
	txt := textAt(50, 50)
	s := newTestStore(r, txt)
	s.SetSelection([]string{r.ID, txt.ID})

	fill := "#00ff00"
	size := 40.0
	s.UpdateSelectedProperties(document.Patch{Fill: &fill, FontSize: &size})

	got := s.Elements()
	if got[0].Fill != fill {
		t.Errorf("rectangle fill = %q", got[0].Fill)
	}
	if got[1].Fill != document.TransparentFill {
		t.Errorf("text fill = %q", got[1].Fill)
	}
	// "Text" at 40px is four half-em glyphs.
	diff(t, Rect{X: 50, Y: 50, Width: 80, Height: 40}, bounds(got[1]))
	if s.CanUndo() {
		t.Error("property edit committed a snapshot by itself")
	}
}

func TestSetTextRelayouts(t *testing.T) {
	txt := textAt(0, 0)
	s := newTestStore(txt)
	s.SetText(txt.ID, "Hello\nworld!")
	el, _ := s.Element(txt.ID)
	diff(t, Rect{Width: 72, Height: 48}, bounds(el))
}

func TestSetToolClearsSelection(t *testing.T) {
	a := rect(0, 0, 10, 10)
	s := newTestStore(a)
	s.SetSelection([]string{a.ID})

	if err := s.SetTool(ToolEllipse); err != nil {
		t.Fatal(err)
	}
	if s.Tool() != ToolEllipse || len(s.SelectedIDs()) != 0 {
		t.Errorf("tool = %q, selection = %v", s.Tool(), s.SelectedIDs())
	}

	if err := s.SetTool("lasso"); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("err = %v, want ErrUnknownTool", err)
	}
	if s.Tool() != ToolEllipse {
		t.Errorf("bad tool changed the tool to %q", s.Tool())
	}
}

func TestZoomSteps(t *testing.T) {
	s := newTestStore()
	s.ZoomIn()
	assertNear(t, "zoom in", 1.1, s.Viewport().Zoom)
	s.ZoomOut()
	s.ZoomOut()
	assertNear(t, "zoom out", 0.9, s.Viewport().Zoom)
	for i := 0; i < 50; i++ {
		s.ZoomIn()
	}
	assertNear(t, "clamped", 3, s.Viewport().Zoom)
	s.ResetZoom()
	assertNear(t, "reset", 1, s.Viewport().Zoom)
}

func TestHistoryIsBounded(t *testing.T) {
	a, b := rect(0, 0, 1, 1), rect(0, 0, 1, 1)
	s := newTestStore(a, b)
	for i := 0; i < 60; i++ {
		s.BringForward(s.Elements()[0].ID)
	}
	past, future := s.HistoryDepth()
	if past != 50 || future != 0 {
		t.Errorf("depth = %d/%d, want 50/0", past, future)
	}
}

func TestLoadElementsResetsHistory(t *testing.T) {
	a := rect(0, 0, 1, 1)
	s := newTestStore(a)
	s.BringForward(a.ID)
	s.LoadElements(document.NewSampleDrawing())
	if s.CanUndo() || s.CanRedo() {
		t.Error("history survived a load")
	}
}
