package engine

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/edgedraw/edgedraw/internal/config"
	"github.com/edgedraw/edgedraw/internal/document"
	"github.com/edgedraw/edgedraw/internal/typeid"
)

// Engine is the drawing engine for one editing session. It owns the document
// store and the interaction state machine, takes commands from the frontend
// and answers queries as JSON.
type Engine struct {
	session string
	store   *Store
	input   *Interaction
	log     *slog.Logger
}

// New creates an engine with an empty document.
func New(cfg *config.Config, log *slog.Logger) (*Engine, error) {
	if log == nil {
		log = slog.Default()
	}
	measurer, err := NewGoFontMeasurer()
	if err != nil {
		return nil, fmt.Errorf("text metrics: %w", err)
	}

	session := typeid.NewSessionID()
	log = log.With("session", session)
	store := NewStore(cfg, measurer, log)

	return &Engine{
		session: session,
		store:   store,
		input:   NewInteraction(store, log),
		log:     log,
	}, nil
}

func (e *Engine) Session() string           { return e.session }
func (e *Engine) Store() *Store             { return e.store }
func (e *Engine) Interaction() *Interaction { return e.input }

// --- Commands (frontend → engine) ---

// LoadSampleDocument replaces the document with the built-in sample drawing.
func (e *Engine) LoadSampleDocument() {
	e.store.LoadElements(document.NewSampleDrawing())
	e.log.Info("loaded sample document", "elements", e.store.Len())
}

func (e *Engine) PointerDown(ev PointerEvent) { e.input.PointerDown(ev) }
func (e *Engine) PointerMove(ev PointerEvent) { e.input.PointerMove(ev) }
func (e *Engine) PointerUp()                  { e.input.PointerUp() }
func (e *Engine) PointerLeave()               { e.input.PointerLeave() }
func (e *Engine) DoubleClick(ev PointerEvent) { e.input.DoubleClick(ev) }
func (e *Engine) KeyDown(k Key)               { e.input.KeyDown(k) }
func (e *Engine) KeyUp(k Key)                 { e.input.KeyUp(k) }
func (e *Engine) SetText(text string)         { e.input.SetText(text) }
func (e *Engine) EndWriting()                 { e.input.EndWriting() }

// SetTool switches the active tool by name.
func (e *Engine) SetTool(name string) error {
	return e.input.SetTool(Tool(name))
}

func (e *Engine) SetZoom(zoom float64) { e.store.SetZoom(zoom) }
func (e *Engine) ZoomIn()              { e.store.ZoomIn() }
func (e *Engine) ZoomOut()             { e.store.ZoomOut() }
func (e *Engine) ResetZoom()           { e.store.ResetZoom() }

func (e *Engine) Undo()              { e.store.Undo() }
func (e *Engine) Redo()              { e.store.Redo() }
func (e *Engine) DeleteSelected()    { e.store.DeleteSelected() }
func (e *Engine) DuplicateSelected() { e.store.DuplicateSelected() }

// AlignSelected aligns the selection by alignment name.
func (e *Engine) AlignSelected(alignment string) {
	e.store.AlignSelected(document.Alignment(alignment))
}

func (e *Engine) BringForward(id string) { e.store.BringForward(id) }
func (e *Engine) SendBackward(id string) { e.store.SendBackward(id) }

// UpdateSelectedProperties applies a JSON property patch to the selection.
func (e *Engine) UpdateSelectedProperties(patchJSON string) error {
	var patch document.Patch
	if err := json.Unmarshal([]byte(patchJSON), &patch); err != nil {
		return fmt.Errorf("decode property patch: %w", err)
	}
	e.store.UpdateSelectedProperties(patch)
	return nil
}

// CommitProperties records property edits made since the last snapshot as
// one undoable step, e.g. when a slider drag ends.
func (e *Engine) CommitProperties() { e.store.Snapshot() }

// --- Queries (frontend ← engine) ---

// Render returns the current view as JSON.
func (e *Engine) Render() string {
	result, err := ViewToJSON(CompileView(e.store, e.input))
	if err != nil {
		e.log.Error("encode view", "error", err)
	}
	return result
}

// HitTest returns the id of the topmost element at document coordinates
// (x, y), or an empty string.
func (e *Engine) HitTest(x, y float64) string {
	if el := ElementAtPosition(document.Point{X: x, Y: y}, e.store.elements); el != nil {
		return el.ID
	}
	return ""
}

// GetSelectionBounds returns the bounding box of the current selection as JSON.
func (e *Engine) GetSelectionBounds() string {
	box, _ := BoundingBox(e.store.Selected())
	return RectToJSON(box)
}

// GetDocument returns the element list as a JSON array, empty rather than
// null when there are no elements.
func (e *Engine) GetDocument() string {
	els := e.store.elements
	if els == nil {
		els = []document.Element{}
	}
	return e.encodeList("document", els)
}

// GetSelection returns the selected ids as a JSON array.
func (e *Engine) GetSelection() string {
	ids := e.store.SelectedIDs()
	if ids == nil {
		ids = []string{}
	}
	return e.encodeList("selection", ids)
}

func (e *Engine) encodeList(what string, v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		e.log.Error("encode "+what, "error", err)
		return "[]"
	}
	return string(data)
}

func (e *Engine) GetMode() string { return string(e.store.Mode()) }
func (e *Engine) GetTool() string { return string(e.store.Tool()) }
func (e *Engine) GetZoom() float64 {
	return e.store.viewport.Zoom
}
