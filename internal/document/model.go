package document

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindLine      Kind = "line"
	KindArrow     Kind = "arrow"
	KindPencil    Kind = "pencil"
	KindText      Kind = "text"
)

// Kinds lists every element kind in toolbar order.
var Kinds = []Kind{KindRectangle, KindEllipse, KindLine, KindArrow, KindPencil, KindText}

// Valid reports whether k names a known element kind.
func (k Kind) Valid() bool {
	switch k {
	case KindRectangle, KindEllipse, KindLine, KindArrow, KindPencil, KindText:
		return true
	}
	return false
}

type FillStyle string

const (
	FillHachure    FillStyle = "hachure"
	FillSolid      FillStyle = "solid"
	FillZigzag     FillStyle = "zigzag"
	FillCrossHatch FillStyle = "cross-hatch"
	FillDots       FillStyle = "dots"
	FillDashed     FillStyle = "dashed"
	FillZigzagLine FillStyle = "zigzag-line"
)

type StrokeStyle string

const (
	StrokeSolid  StrokeStyle = "solid"
	StrokeDashed StrokeStyle = "dashed"
	StrokeDotted StrokeStyle = "dotted"
)

type Arrowhead string

const (
	ArrowheadArrow    Arrowhead = "arrow"
	ArrowheadTriangle Arrowhead = "triangle"
	ArrowheadBar      Arrowhead = "bar"
)

type Alignment string

const (
	AlignLeft             Alignment = "left"
	AlignRight            Alignment = "right"
	AlignCenterHorizontal Alignment = "center-horizontal"
	AlignTop              Alignment = "top"
	AlignBottom           Alignment = "bottom"
	AlignCenterVertical   Alignment = "center-vertical"
)

// TransparentFill is the fill used by kinds that never paint an interior.
const TransparentFill = "transparent"

// Element is one drawable shape. Kind decides which of the optional fields
// carry meaning; use the Has* methods instead of inspecting fields directly.
//
// X and Y are the top-left of the unrotated bounding box and Angle is in
// degrees about its center. Points are relative to (X, Y) for lines and
// arrows and absolute for pencil strokes.
type Element struct {
	ID     string  `json:"id"`
	Kind   Kind    `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Angle  float64 `json:"angle"`
	Seed   int     `json:"seed"`

	Stroke      string    `json:"stroke"`
	Fill        string    `json:"fill,omitempty"`
	FillStyle   FillStyle `json:"fillStyle,omitempty"`
	StrokeWidth float64   `json:"strokeWidth"`
	Roughness   float64   `json:"roughness"`

	Points      []Point     `json:"points,omitempty"`
	StrokeStyle StrokeStyle `json:"strokeStyle,omitempty"`
	Arrowhead   Arrowhead   `json:"arrowhead,omitempty"`

	Text       string  `json:"text,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`
}

func (e *Element) HasFill() bool { return e.Kind == KindRectangle || e.Kind == KindEllipse }

func (e *Element) HasRoughness() bool { return e.HasFill() || e.HasStrokeStyle() }

func (e *Element) HasStrokeWidth() bool { return e.Kind != KindText }

func (e *Element) HasStrokeStyle() bool { return e.Kind == KindLine || e.Kind == KindArrow }

func (e *Element) HasArrowhead() bool { return e.Kind == KindArrow }

func (e *Element) HasText() bool { return e.Kind == KindText }

// HasHandles reports whether the element shows resize and rotation handles.
func (e *Element) HasHandles() bool { return e.Kind != KindPencil && e.Kind != KindText }

// IsNormalizable reports whether edge and corner drags reshape the element.
// Only box-like kinds qualify; their width and height are kept non-negative
// by flipping the origin when a drag crosses the opposite edge.
func (e *Element) IsNormalizable() bool { return e.Kind == KindRectangle || e.Kind == KindEllipse }

// Center returns the center of the unrotated bounding box.
func (e *Element) Center() Point {
	return Point{X: e.X + e.Width/2, Y: e.Y + e.Height/2}
}

// Translate moves the element by (dx, dy). Pencil points are absolute and
// move with it.
func (e *Element) Translate(dx, dy float64) {
	e.X += dx
	e.Y += dy
	if e.Kind == KindPencil {
		for i := range e.Points {
			e.Points[i].X += dx
			e.Points[i].Y += dy
		}
	}
}

// FitToPoints recomputes the bounding box of a pencil stroke from its points.
func (e *Element) FitToPoints() {
	if len(e.Points) == 0 {
		return
	}
	minX, minY := e.Points[0].X, e.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range e.Points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	e.X, e.Y = minX, minY
	e.Width, e.Height = maxX-minX, maxY-minY
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() Element {
	c := *e
	if e.Points != nil {
		c.Points = make([]Point, len(e.Points))
		copy(c.Points, e.Points)
	}
	return c
}

// CloneElements deep-copies a list of elements, preserving order.
func CloneElements(els []Element) []Element {
	if els == nil {
		return nil
	}
	out := make([]Element, len(els))
	for i := range els {
		out[i] = els[i].Clone()
	}
	return out
}
