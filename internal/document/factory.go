package document

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/edgedraw/edgedraw/internal/typeid"
)

// ErrUnknownKind is returned when an element of an unrecognized kind is requested.
var ErrUnknownKind = errors.New("unknown element kind")

const (
	DefaultText       = "Text"
	DefaultFontSize   = 24
	DefaultFontFamily = "Inter"
	DefaultTextWidth  = 100
)

// Properties are the style fields the toolbar applies to new elements.
type Properties struct {
	Stroke      string    `json:"stroke"`
	Fill        string    `json:"fill"`
	FillStyle   FillStyle `json:"fillStyle"`
	StrokeWidth float64   `json:"strokeWidth"`
	Roughness   float64   `json:"roughness"`
}

// NewSeed returns a render seed for the sketch-style renderer.
func NewSeed() int {
	return rand.IntN(10000)
}

// NewElement creates an element of the given kind anchored at p with zero
// size, a fresh id and seed, and angle zero.
func NewElement(kind Kind, p Point, props Properties) (Element, error) {
	el := Element{
		ID:          typeid.NewElementID(),
		Kind:        kind,
		X:           p.X,
		Y:           p.Y,
		Seed:        NewSeed(),
		Stroke:      props.Stroke,
		Fill:        props.Fill,
		FillStyle:   props.FillStyle,
		StrokeWidth: props.StrokeWidth,
		Roughness:   props.Roughness,
	}

	switch kind {
	case KindRectangle, KindEllipse:
	case KindLine, KindArrow:
		el.Fill = ""
		el.FillStyle = ""
		el.Points = []Point{{}, {}}
		el.StrokeStyle = StrokeSolid
		if kind == KindArrow {
			el.Arrowhead = ArrowheadArrow
		}
	case KindPencil:
		el.Points = []Point{p}
		el.Fill = TransparentFill
		el.FillStyle = FillSolid
		el.Roughness = 0
	case KindText:
		el.Text = DefaultText
		el.FontSize = DefaultFontSize
		el.FontFamily = DefaultFontFamily
		el.Width = DefaultTextWidth
		el.Height = DefaultFontSize
		el.Fill = TransparentFill
		el.FillStyle = FillSolid
		el.Roughness = 0
		el.StrokeWidth = 0
	default:
		return Element{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return el, nil
}

// MustNewElement is like NewElement but panics on an unknown kind. Callers
// pass kinds from a validated tool, so a failure is a programming error.
func MustNewElement(kind Kind, p Point, props Properties) Element {
	el, err := NewElement(kind, p, props)
	if err != nil {
		panic(err)
	}
	return el
}
