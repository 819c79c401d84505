package engine

import (
	"fmt"
	"log/slog"

	"github.com/edgedraw/edgedraw/internal/document"
)

// Key is a keyboard key the interaction layer tracks while held.
type Key string

const (
	KeySpace Key = "space" // pan while held
	KeyShift Key = "shift" // toggle selection, equal sides while drawing
	KeyAlt   Key = "alt"   // draw from the center
)

// Button is a pointer button, numbered as in DOM mouse events.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// PointerEvent is a pointer position in screen pixels relative to the
// drawing surface, with the modifier keys reported by the event itself.
type PointerEvent struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Button Button  `json:"button"`
	Shift  bool    `json:"shift"`
	Alt    bool    `json:"alt"`
}

func (ev PointerEvent) screen() document.Point { return document.Point{X: ev.X, Y: ev.Y} }

// Interaction turns pointer and key events into document mutations. It
// reads the tool, mode and selection from the store and writes through the
// store's mutation primitives; each completed gesture commits exactly one
// snapshot.
type Interaction struct {
	store *Store
	log   *slog.Logger

	// Transient gesture state, reset on pointer up.
	started    bool
	start      document.Point // document space
	lastScreen document.Point
	handle     Handle
	target     string
	box        Rect
	hasBox     bool

	spaceHeld bool
	shiftHeld bool
	altHeld   bool
}

// NewInteraction creates the state machine for store.
func NewInteraction(store *Store, log *slog.Logger) *Interaction {
	if log == nil {
		log = slog.Default()
	}
	return &Interaction{store: store, log: log}
}

// KeyDown records a held modifier.
func (in *Interaction) KeyDown(k Key) { in.setKey(k, true) }

// KeyUp releases a held modifier.
func (in *Interaction) KeyUp(k Key) { in.setKey(k, false) }

func (in *Interaction) setKey(k Key, down bool) {
	switch k {
	case KeySpace:
		in.spaceHeld = down
	case KeyShift:
		in.shiftHeld = down
	case KeyAlt:
		in.altHeld = down
	}
}

// PanKeyHeld reports whether the pan key is held, for cursor feedback.
func (in *Interaction) PanKeyHeld() bool { return in.spaceHeld }

// Handle returns the handle being dragged, if any.
func (in *Interaction) Handle() Handle { return in.handle }

// SelectionBox returns the rubber band while a selection drag is active.
func (in *Interaction) SelectionBox() (Rect, bool) {
	if in.store.Mode() != ModeSelecting || !in.hasBox {
		return Rect{}, false
	}
	return in.box, true
}

// SetTool completes any gesture or text edit in progress and switches tools.
func (in *Interaction) SetTool(t Tool) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTool, t)
	}
	switch in.store.Mode() {
	case ModeIdle:
	case ModeWriting:
		in.EndWriting()
	default:
		in.PointerUp()
	}
	return in.store.SetTool(t)
}

// PointerDown starts a gesture.
func (in *Interaction) PointerDown(ev PointerEvent) {
	if in.store.Mode() == ModeWriting {
		in.EndWriting()
		return
	}
	// A press without a release for the last one finishes that gesture
	// first, so each gesture keeps its own snapshot.
	if in.store.Mode() != ModeIdle {
		in.PointerUp()
	}

	p := in.store.ToDocument(ev.screen())
	in.started = true
	in.start = p
	in.lastScreen = ev.screen()

	if in.spaceHeld || ev.Button == ButtonMiddle {
		in.store.setMode(ModePanning)
		return
	}

	if kind, ok := in.store.Tool().Kind(); ok {
		in.beginDraw(p, kind)
		return
	}
	in.beginSelect(p, ev.Shift || in.shiftHeld)
}

func (in *Interaction) beginSelect(p document.Point, shift bool) {
	// The handles of a lone selection sit on or outside its edges, so they
	// are tested before looking for an element under the pointer.
	if sel := in.store.selection; len(sel) == 1 {
		if i := in.store.index(sel[0]); i >= 0 {
			if h := ResizeHandleAt(p, &in.store.elements[i]); h != HandleNone {
				in.beginTransform(sel[0], h)
				return
			}
		}
	}

	hit := ElementAtPosition(p, in.store.elements)
	if hit == nil {
		in.store.ClearSelection()
		in.hasBox = false
		in.store.setMode(ModeSelecting)
		return
	}

	id := hit.ID
	h := ResizeHandleAt(p, hit)
	switch {
	case shift:
		in.store.ToggleSelection(id)
	case !in.store.IsSelected(id):
		in.store.SetSelection([]string{id})
	}

	if h != HandleNone {
		in.beginTransform(id, h)
		return
	}
	in.target = id
	in.store.setMode(ModeMoving)
}

func (in *Interaction) beginTransform(id string, h Handle) {
	in.target = id
	in.handle = h
	if h == HandleRotate {
		in.store.setMode(ModeRotating)
	} else {
		in.store.setMode(ModeResizing)
	}
	in.log.Debug("transform begin", "element", id, "handle", h)
}

func (in *Interaction) beginDraw(p document.Point, kind document.Kind) {
	el := document.MustNewElement(kind, p, in.store.Defaults())
	in.store.relayout(&el)
	in.store.AddElement(el)
	in.store.SetSelection([]string{el.ID})
	in.target = el.ID
	if kind == document.KindText {
		in.store.setMode(ModeWriting)
	} else {
		in.store.setMode(ModeDrawing)
	}
	in.log.Debug("draw begin", "element", el.ID, "kind", kind)
}

// PointerMove advances the active gesture. It is ignored while idle.
func (in *Interaction) PointerMove(ev PointerEvent) {
	mode := in.store.Mode()
	if mode == ModeIdle || !in.started {
		return
	}
	screen := ev.screen()
	p := in.store.ToDocument(screen)
	defer func() { in.lastScreen = screen }()

	switch mode {
	case ModePanning:
		in.store.PanBy(screen.X-in.lastScreen.X, screen.Y-in.lastScreen.Y)

	case ModeSelecting:
		in.box = RectFromPoints(in.start, p)
		in.hasBox = true

	case ModeDrawing:
		mirror := ev.Alt || in.altHeld
		square := ev.Shift || in.shiftHeld
		in.store.UpdateElementByID(in.target, func(el *document.Element) {
			in.drawTo(el, p, mirror, square)
		})

	case ModeMoving:
		dx, dy := p.X-in.start.X, p.Y-in.start.Y
		for _, id := range in.store.selection {
			in.store.UpdateElementByID(id, func(el *document.Element) { el.Translate(dx, dy) })
		}
		in.start = p

	case ModeResizing:
		if len(in.store.selection) > 1 {
			return
		}
		dx, dy := p.X-in.start.X, p.Y-in.start.Y
		in.store.UpdateElementByID(in.target, func(el *document.Element) {
			ApplyResize(el, in.handle, dx, dy)
		})
		in.start = p

	case ModeRotating:
		if len(in.store.selection) > 1 {
			return
		}
		in.store.UpdateElementByID(in.target, func(el *document.Element) {
			el.Angle = RotationAngle(el.Center(), p)
		})
	}
}

func (in *Interaction) drawTo(el *document.Element, p document.Point, mirror, square bool) {
	switch el.Kind {
	case document.KindPencil:
		el.Points = append(el.Points, p)
		el.FitToPoints()
	case document.KindLine, document.KindArrow:
		box := RectFromPoints(in.start, p)
		el.X, el.Y, el.Width, el.Height = box.X, box.Y, box.Width, box.Height
		el.Points = []document.Point{
			{X: in.start.X - box.X, Y: in.start.Y - box.Y},
			{X: p.X - box.X, Y: p.Y - box.Y},
		}
	case document.KindRectangle, document.KindEllipse:
		box := DrawBox(in.start, p, mirror, square)
		el.X, el.Y, el.Width, el.Height = box.X, box.Y, box.Width, box.Height
	}
}

// PointerUp completes the active gesture. Selection drags commit their
// membership without a snapshot; drawing, moving, resizing and rotating
// commit one snapshot; panning commits nothing. A text element that was just
// placed stays in writing mode.
func (in *Interaction) PointerUp() {
	mode := in.store.Mode()
	switch mode {
	case ModeWriting:
		in.started = false
		return
	case ModeSelecting:
		if in.hasBox {
			var ids []string
			for i := range in.store.elements {
				if ElementInsideBox(&in.store.elements[i], in.box) {
					ids = append(ids, in.store.elements[i].ID)
				}
			}
			in.store.SetSelection(ids)
		}
	case ModeDrawing, ModeMoving, ModeResizing, ModeRotating:
		in.store.Snapshot()
	}
	if mode != ModeIdle {
		in.log.Debug("gesture end", "mode", mode, "selected", len(in.store.selection))
	}
	in.reset()
	in.store.setMode(ModeIdle)
}

// PointerLeave is a pointer up outside the surface; it completes the gesture
// so the machine never stays stuck mid-drag.
func (in *Interaction) PointerLeave() { in.PointerUp() }

// DoubleClick on a text element while idle starts editing it.
func (in *Interaction) DoubleClick(ev PointerEvent) {
	if in.store.Mode() != ModeIdle {
		return
	}
	p := in.store.ToDocument(ev.screen())
	hit := ElementAtPosition(p, in.store.elements)
	if hit == nil || hit.Kind != document.KindText {
		return
	}
	in.target = hit.ID
	in.store.SetSelection([]string{hit.ID})
	in.store.setMode(ModeWriting)
}

// SetText updates the content of the element being edited. No snapshot is
// taken per keystroke; EndWriting commits the edit as a whole.
func (in *Interaction) SetText(text string) {
	if in.store.Mode() != ModeWriting {
		return
	}
	in.store.SetText(in.writingTarget(), text)
}

// EndWriting leaves text editing: it commits one snapshot, returns to idle
// and clears the selection.
func (in *Interaction) EndWriting() {
	if in.store.Mode() != ModeWriting {
		return
	}
	in.store.Snapshot()
	in.store.setMode(ModeIdle)
	in.store.ClearSelection()
	in.reset()
}

// WritingElement returns the id of the text element being edited.
func (in *Interaction) WritingElement() (string, bool) {
	if in.store.Mode() != ModeWriting {
		return "", false
	}
	id := in.writingTarget()
	return id, id != ""
}

func (in *Interaction) writingTarget() string {
	if in.target != "" {
		return in.target
	}
	if len(in.store.selection) > 0 {
		return in.store.selection[0]
	}
	return ""
}

func (in *Interaction) reset() {
	in.started = false
	in.start = document.Point{}
	in.handle = HandleNone
	in.box = Rect{}
	in.hasBox = false
	// The target of a text edit outlives the pointer up that placed it.
	if in.store.Mode() != ModeWriting {
		in.target = ""
	}
}
