package engine

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextMeasurer sizes text content so a text element's bounds follow what it
// displays. Height is one font size per line.
type TextMeasurer interface {
	MeasureText(text string, fontSize float64) (width, height float64)
}

// GoFontMeasurer measures text with the Go Regular face. The renderer may
// use a different family, so widths are an approximation good enough for
// hit testing and selection boxes.
type GoFontMeasurer struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewGoFontMeasurer parses the embedded Go Regular font.
func NewGoFontMeasurer() (*GoFontMeasurer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	return &GoFontMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// MeasureText returns the width of the widest line and the height of all
// lines. Empty text keeps half an em of width so it stays clickable.
func (m *GoFontMeasurer) MeasureText(text string, fontSize float64) (float64, float64) {
	if fontSize <= 0 {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	height := fontSize * float64(len(lines))

	face, err := m.face(fontSize)
	if err != nil {
		return fontSize / 2, height
	}

	var width float64
	for _, line := range lines {
		width = max(width, fixedToFloat(font.MeasureString(face, line)))
	}
	if width == 0 {
		width = fontSize / 2
	}
	return width, height
}

func (m *GoFontMeasurer) face(size float64) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face at %gpx: %w", size, err)
	}
	m.faces[size] = face
	return face, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
