package engine

import (
	"encoding/json"

	"github.com/edgedraw/edgedraw/internal/document"
)

// ElementView is one element as the renderer receives it: the element
// itself, its local-to-document transform, and for pencil strokes the
// filled outline path.
type ElementView struct {
	document.Element
	Transform []float64     `json:"transform"`         // [a, b, c, d, e, f] affine matrix
	Bounds    Rect          `json:"bounds"`            // rotated, axis-aligned
	Outline   []PathCommand `json:"outline,omitempty"` // pencil only
}

// View is everything the renderer and the panels read after each event.
// Elements are in painter's order (back to front).
type View struct {
	Elements        []ElementView    `json:"elements"`
	Selection       []string         `json:"selection"`
	SelectionBounds *Rect            `json:"selectionBounds,omitempty"`
	Handles         []HandlePosition `json:"handles,omitempty"`
	SelectionBox    *Rect            `json:"selectionBox,omitempty"`
	Writing         string           `json:"writing,omitempty"`
	Mode            Mode             `json:"mode"`
	Tool            Tool             `json:"tool"`
	Viewport        Viewport         `json:"viewport"`
	PanKeyHeld      bool             `json:"panKeyHeld"`
	CanUndo         bool             `json:"canUndo"`
	CanRedo         bool             `json:"canRedo"`
}

// CompileView builds the render-ready view of the store and the gesture in
// progress.
func CompileView(s *Store, in *Interaction) View {
	v := View{
		Elements:   make([]ElementView, 0, len(s.elements)),
		Selection:  s.SelectedIDs(),
		Mode:       s.Mode(),
		Tool:       s.Tool(),
		Viewport:   s.Viewport(),
		PanKeyHeld: in.PanKeyHeld(),
		CanUndo:    s.CanUndo(),
		CanRedo:    s.CanRedo(),
	}

	for i := range s.elements {
		v.Elements = append(v.Elements, compileElement(&s.elements[i]))
	}

	selected := s.Selected()
	if box, ok := BoundingBox(selected); ok {
		v.SelectionBounds = &box
	}
	// Handles are drawn for a lone selection only; a multi-selection shows
	// its union box instead.
	if len(selected) == 1 && s.Mode() != ModeWriting {
		v.Handles = HandlePositions(&selected[0])
	}

	if box, ok := in.SelectionBox(); ok {
		v.SelectionBox = &box
	}
	if id, ok := in.WritingElement(); ok {
		v.Writing = id
	}
	return v
}

func compileElement(el *document.Element) ElementView {
	m := ElementTransform(el)
	ev := ElementView{
		Element:   el.Clone(),
		Transform: m.ToSlice(),
	}
	// Pencil points are absolute, so its transform maps document bounds;
	// every other kind maps its local box.
	if el.Kind == document.KindPencil {
		ev.Bounds = m.TransformRect(ElementBounds(el))
		ev.Outline = OutlinePath(FreehandOutline(el.Points, el.StrokeWidth))
	} else {
		ev.Bounds = m.TransformRect(Rect{Width: el.Width, Height: el.Height})
	}
	return ev
}

// ViewToJSON serializes a view to JSON.
func ViewToJSON(v View) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}", err
	}
	return string(data), nil
}

// RectToJSON serializes a Rect to JSON.
func RectToJSON(r Rect) string {
	data, _ := json.Marshal(r)
	return string(data)
}
