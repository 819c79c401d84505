package document

import "github.com/edgedraw/edgedraw/internal/typeid"

// NewSampleDrawing returns a small drawing with one element of every kind.
func NewSampleDrawing() []Element {
	return []Element{
		{
			ID:          typeid.NewElementID(),
			Kind:        KindRectangle,
			X:           80,
			Y:           80,
			Width:       200,
			Height:      120,
			Seed:        NewSeed(),
			Stroke:      "#000000",
			Fill:        "#3b82f6",
			FillStyle:   FillHachure,
			StrokeWidth: 2,
			Roughness:   1,
		},
		{
			ID:          typeid.NewElementID(),
			Kind:        KindEllipse,
			X:           340,
			Y:           90,
			Width:       160,
			Height:      100,
			Angle:       15,
			Seed:        NewSeed(),
			Stroke:      "#ef4444",
			Fill:        TransparentFill,
			FillStyle:   FillCrossHatch,
			StrokeWidth: 2,
			Roughness:   1.5,
		},
		{
			ID:          typeid.NewElementID(),
			Kind:        KindArrow,
			X:           280,
			Y:           140,
			Width:       60,
			Height:      0,
			Seed:        NewSeed(),
			Stroke:      "#000000",
			StrokeWidth: 2,
			Roughness:   1,
			Points:      []Point{{X: 0, Y: 0}, {X: 60, Y: 0}},
			StrokeStyle: StrokeSolid,
			Arrowhead:   ArrowheadTriangle,
		},
		{
			ID:          typeid.NewElementID(),
			Kind:        KindLine,
			X:           80,
			Y:           240,
			Width:       420,
			Height:      0,
			Seed:        NewSeed(),
			Stroke:      "#64748b",
			StrokeWidth: 1,
			Roughness:   1,
			Points:      []Point{{X: 0, Y: 0}, {X: 420, Y: 0}},
			StrokeStyle: StrokeDashed,
		},
		{
			ID:          typeid.NewElementID(),
			Kind:        KindPencil,
			X:           100,
			Y:           280,
			Width:       120,
			Height:      30,
			Seed:        NewSeed(),
			Stroke:      "#22c55e",
			Fill:        TransparentFill,
			FillStyle:   FillSolid,
			StrokeWidth: 3,
			Points: []Point{
				{X: 100, Y: 300}, {X: 130, Y: 280}, {X: 160, Y: 310},
				{X: 190, Y: 285}, {X: 220, Y: 305},
			},
		},
		{
			ID:         typeid.NewElementID(),
			Kind:       KindText,
			X:          300,
			Y:          280,
			Width:      DefaultTextWidth,
			Height:     DefaultFontSize,
			Seed:       NewSeed(),
			Stroke:     "#000000",
			Fill:       TransparentFill,
			FillStyle:  FillSolid,
			Text:       DefaultText,
			FontSize:   DefaultFontSize,
			FontFamily: DefaultFontFamily,
		},
	}
}
