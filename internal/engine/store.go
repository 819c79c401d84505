package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/edgedraw/edgedraw/internal/config"
	"github.com/edgedraw/edgedraw/internal/document"
	"github.com/edgedraw/edgedraw/internal/history"
	"github.com/edgedraw/edgedraw/internal/typeid"
)

// ErrUnknownTool is returned when selecting a tool the engine does not know.
var ErrUnknownTool = errors.New("unknown tool")

// Tool is the active toolbar tool. Every drawing tool shares its name with
// the element kind it creates.
type Tool string

const (
	ToolSelect    Tool = "select"
	ToolRectangle Tool = Tool(document.KindRectangle)
	ToolEllipse   Tool = Tool(document.KindEllipse)
	ToolLine      Tool = Tool(document.KindLine)
	ToolArrow     Tool = Tool(document.KindArrow)
	ToolPencil    Tool = Tool(document.KindPencil)
	ToolText      Tool = Tool(document.KindText)
)

// Kind returns the element kind a drawing tool creates. It reports false for
// the selection tool and unknown tools.
func (t Tool) Kind() (document.Kind, bool) {
	k := document.Kind(t)
	return k, k.Valid()
}

func (t Tool) Valid() bool {
	_, ok := t.Kind()
	return t == ToolSelect || ok
}

// Mode is the interaction currently in progress. Exactly one is active.
type Mode string

const (
	ModeIdle      Mode = "idle"
	ModeDrawing   Mode = "drawing"
	ModeMoving    Mode = "moving"
	ModeResizing  Mode = "resizing"
	ModeRotating  Mode = "rotating"
	ModeWriting   Mode = "writing"
	ModeSelecting Mode = "selecting"
	ModePanning   Mode = "panning"
)

// Store owns the live element list, the selection, the active tool and mode,
// the viewport, and the undo history of one editing session. It is not safe
// for concurrent use; every call is expected to come from the event loop.
type Store struct {
	elements  []document.Element
	selection []string
	tool      Tool
	mode      Mode
	viewport  Viewport
	history   *history.History[[]document.Element]

	measurer        TextMeasurer
	defaults        document.Properties
	duplicateOffset float64
	zoomStep        float64

	log *slog.Logger
}

// NewStore creates an empty document. measurer may be nil, in which case
// text bounds are left as set.
func NewStore(cfg *config.Config, measurer TextMeasurer, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		tool:     ToolSelect,
		mode:     ModeIdle,
		viewport: NewViewport(cfg.MinZoom, cfg.MaxZoom),
		history:  history.New[[]document.Element](nil, cfg.HistoryLimit, document.CloneElements),
		measurer: measurer,
		defaults: document.Properties{
			Stroke:      cfg.DefaultStroke,
			Fill:        cfg.DefaultFill,
			FillStyle:   document.FillStyle(cfg.DefaultFillStyle),
			StrokeWidth: cfg.DefaultStrokeWidth,
			Roughness:   cfg.DefaultRoughness,
		},
		duplicateOffset: cfg.DuplicateOffset,
		zoomStep:        cfg.ZoomStep,
		log:             log,
	}
}

// --- Elements ---

// Elements returns a copy of the element list in z-order (last is on top).
func (s *Store) Elements() []document.Element {
	return document.CloneElements(s.elements)
}

// Element returns a copy of the element with the given id.
func (s *Store) Element(id string) (document.Element, bool) {
	i := s.index(id)
	if i < 0 {
		return document.Element{}, false
	}
	return s.elements[i].Clone(), true
}

func (s *Store) Len() int { return len(s.elements) }

// Defaults returns the properties given to newly drawn elements.
func (s *Store) Defaults() document.Properties { return s.defaults }

// SetElements replaces the live element list without touching history.
// Selected ids that no longer exist are dropped.
func (s *Store) SetElements(els []document.Element) {
	s.elements = document.CloneElements(els)
	s.pruneSelection()
}

// LoadElements starts a fresh session on els: history is reset so the
// loaded list is the oldest undoable state.
func (s *Store) LoadElements(els []document.Element) {
	s.elements = document.CloneElements(els)
	s.selection = nil
	s.mode = ModeIdle
	s.history.Reset(s.elements)
}

// AddElement appends el on top of the z-order.
func (s *Store) AddElement(el document.Element) {
	s.elements = append(s.elements, el.Clone())
}

// UpdateElementByID edits exactly one element in place. It reports false,
// and does nothing, when no element has the id.
func (s *Store) UpdateElementByID(id string, fn func(el *document.Element)) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	fn(&s.elements[i])
	return true
}

// UpdateSelectedProperties applies patch to every selected element. Fields
// that do not apply to an element's kind are ignored. Text elements whose
// content or font changed are re-measured.
func (s *Store) UpdateSelectedProperties(patch document.Patch) {
	if patch.IsEmpty() {
		return
	}
	for _, id := range s.selection {
		s.UpdateElementByID(id, func(el *document.Element) {
			if patch.Apply(el) {
				s.relayout(el)
			}
		})
	}
}

// SetText replaces the content of a text element and re-measures it.
func (s *Store) SetText(id, text string) {
	s.UpdateElementByID(id, func(el *document.Element) {
		if !el.HasText() || el.Text == text {
			return
		}
		el.Text = text
		s.relayout(el)
	})
}

func (s *Store) relayout(el *document.Element) {
	if s.measurer == nil || !el.HasText() {
		return
	}
	el.Width, el.Height = s.measurer.MeasureText(el.Text, el.FontSize)
}

// BringForward moves the element to the top of the z-order and commits a
// snapshot. Unknown ids are ignored.
func (s *Store) BringForward(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	el := s.elements[i]
	s.elements = append(slices.Delete(s.elements, i, i+1), el)
	s.Snapshot()
}

// SendBackward moves the element to the bottom of the z-order and commits a
// snapshot. Unknown ids are ignored.
func (s *Store) SendBackward(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	el := s.elements[i]
	s.elements = slices.Insert(slices.Delete(s.elements, i, i+1), 0, el)
	s.Snapshot()
}

// DeleteSelected removes every selected element, clears the selection and
// commits a snapshot.
func (s *Store) DeleteSelected() {
	if len(s.selection) == 0 {
		return
	}
	s.elements = slices.DeleteFunc(s.elements, func(el document.Element) bool {
		return slices.Contains(s.selection, el.ID)
	})
	s.log.Debug("deleted elements", "count", len(s.selection))
	s.selection = nil
	s.Snapshot()
}

// DuplicateSelected clones the selected elements with new ids and seeds,
// offset by the configured distance, selects the clones and commits a
// snapshot.
func (s *Store) DuplicateSelected() {
	if len(s.selection) == 0 {
		return
	}
	clones := make([]document.Element, 0, len(s.selection))
	for _, id := range s.selection {
		i := s.index(id)
		if i < 0 {
			continue
		}
		c := s.elements[i].Clone()
		c.ID = typeid.NewElementID()
		c.Seed = document.NewSeed()
		c.Translate(s.duplicateOffset, s.duplicateOffset)
		clones = append(clones, c)
	}
	if len(clones) == 0 {
		return
	}

	s.elements = append(s.elements, clones...)
	s.selection = make([]string, len(clones))
	for i, c := range clones {
		s.selection[i] = c.ID
	}
	s.Snapshot()
}

// AlignSelected lines the selected elements up against the bounding box of
// the selection and commits a snapshot.
func (s *Store) AlignSelected(alignment document.Alignment) {
	box, ok := BoundingBox(s.Selected())
	if !ok {
		return
	}

	var align func(el *document.Element)
	switch alignment {
	case document.AlignLeft:
		align = func(el *document.Element) { el.Translate(box.X-el.X, 0) }
	case document.AlignRight:
		align = func(el *document.Element) { el.Translate(box.X+box.Width-el.Width-el.X, 0) }
	case document.AlignCenterHorizontal:
		align = func(el *document.Element) { el.Translate(box.Center().X-el.Center().X, 0) }
	case document.AlignTop:
		align = func(el *document.Element) { el.Translate(0, box.Y-el.Y) }
	case document.AlignBottom:
		align = func(el *document.Element) { el.Translate(0, box.Y+box.Height-el.Height-el.Y) }
	case document.AlignCenterVertical:
		align = func(el *document.Element) { el.Translate(0, box.Center().Y-el.Center().Y) }
	default:
		s.log.Warn("ignoring unknown alignment", "alignment", alignment)
		return
	}

	for _, id := range s.selection {
		s.UpdateElementByID(id, align)
	}
	s.Snapshot()
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.elements, func(el document.Element) bool { return el.ID == id })
}

// --- Selection ---

// SelectedIDs returns the selected ids in selection order.
func (s *Store) SelectedIDs() []string {
	return slices.Clone(s.selection)
}

// Selected returns copies of the selected elements in selection order.
func (s *Store) Selected() []document.Element {
	out := make([]document.Element, 0, len(s.selection))
	for _, id := range s.selection {
		if el, ok := s.Element(id); ok {
			out = append(out, el)
		}
	}
	return out
}

func (s *Store) IsSelected(id string) bool {
	return slices.Contains(s.selection, id)
}

// SetSelection replaces the selection. Duplicates and ids of elements that
// are not in the document are dropped.
func (s *Store) SetSelection(ids []string) {
	sel := make([]string, 0, len(ids))
	for _, id := range ids {
		if s.index(id) >= 0 && !slices.Contains(sel, id) {
			sel = append(sel, id)
		}
	}
	s.selection = sel
}

// ToggleSelection adds id to the selection, or removes it if present.
func (s *Store) ToggleSelection(id string) {
	if i := slices.Index(s.selection, id); i >= 0 {
		s.selection = slices.Delete(s.selection, i, i+1)
		return
	}
	if s.index(id) >= 0 {
		s.selection = append(s.selection, id)
	}
}

func (s *Store) ClearSelection() {
	s.selection = nil
}

func (s *Store) pruneSelection() {
	s.selection = slices.DeleteFunc(s.selection, func(id string) bool { return s.index(id) < 0 })
}

// --- Tool & mode ---

func (s *Store) Tool() Tool { return s.tool }

// SetTool switches the active tool and clears the selection.
func (s *Store) SetTool(t Tool) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTool, t)
	}
	s.tool = t
	s.selection = nil
	return nil
}

func (s *Store) Mode() Mode { return s.mode }

func (s *Store) setMode(m Mode) {
	if s.mode != m {
		s.log.Debug("mode change", "from", s.mode, "to", m)
	}
	s.mode = m
}

// --- Viewport ---

func (s *Store) Viewport() Viewport { return s.viewport }

func (s *Store) SetZoom(zoom float64) { s.viewport.SetZoom(zoom) }
func (s *Store) ZoomIn()              { s.viewport.SetZoom(s.viewport.Zoom + s.zoomStep) }
func (s *Store) ZoomOut()             { s.viewport.SetZoom(s.viewport.Zoom - s.zoomStep) }
func (s *Store) ResetZoom()           { s.viewport.SetZoom(1) }
func (s *Store) PanBy(dx, dy float64) { s.viewport.PanBy(dx, dy) }

// ToDocument converts surface-relative screen coordinates to document space.
func (s *Store) ToDocument(screen document.Point) document.Point {
	return s.viewport.ToDocument(screen)
}

// --- History ---

// Snapshot records the live element list as one undoable step and discards
// any redo entries.
func (s *Store) Snapshot() {
	s.history.Commit(s.elements)
	s.log.Debug("snapshot", "elements", len(s.elements), "past", s.history.PastLen())
}

// Undo restores the previous snapshot and clears the selection.
func (s *Store) Undo() {
	els, ok := s.history.Undo()
	if !ok {
		return
	}
	s.elements = els
	s.selection = nil
}

// Redo restores the next snapshot and clears the selection.
func (s *Store) Redo() {
	els, ok := s.history.Redo()
	if !ok {
		return
	}
	s.elements = els
	s.selection = nil
}

func (s *Store) CanUndo() bool { return s.history.CanUndo() }
func (s *Store) CanRedo() bool { return s.history.CanRedo() }

// HistoryDepth returns the number of undoable and redoable steps.
func (s *Store) HistoryDepth() (past, future int) {
	return s.history.PastLen(), s.history.FutureLen()
}
