package document

// Patch is a partial property update. Nil fields are left untouched and
// fields that do not apply to an element's kind are ignored.
type Patch struct {
	Stroke      *string      `json:"stroke,omitempty"`
	Fill        *string      `json:"fill,omitempty"`
	FillStyle   *FillStyle   `json:"fillStyle,omitempty"`
	StrokeWidth *float64     `json:"strokeWidth,omitempty"`
	Roughness   *float64     `json:"roughness,omitempty"`
	StrokeStyle *StrokeStyle `json:"strokeStyle,omitempty"`
	Arrowhead   *Arrowhead   `json:"arrowhead,omitempty"`
	Text        *string      `json:"text,omitempty"`
	FontSize    *float64     `json:"fontSize,omitempty"`
	FontFamily  *string      `json:"fontFamily,omitempty"`
	Angle       *float64     `json:"angle,omitempty"`
}

// Apply writes the patch onto el. It reports whether a field affecting text
// layout changed, in which case the caller should re-measure the element.
func (p *Patch) Apply(el *Element) (relayout bool) {
	if p.Stroke != nil {
		el.Stroke = *p.Stroke
	}
	if p.Angle != nil {
		el.Angle = *p.Angle
	}
	if el.HasFill() {
		if p.Fill != nil {
			el.Fill = *p.Fill
		}
		if p.FillStyle != nil {
			el.FillStyle = *p.FillStyle
		}
	}
	if el.HasStrokeWidth() && p.StrokeWidth != nil {
		el.StrokeWidth = *p.StrokeWidth
	}
	if el.HasRoughness() && p.Roughness != nil {
		el.Roughness = *p.Roughness
	}
	if el.HasStrokeStyle() && p.StrokeStyle != nil {
		el.StrokeStyle = *p.StrokeStyle
	}
	if el.HasArrowhead() && p.Arrowhead != nil {
		el.Arrowhead = *p.Arrowhead
	}
	if el.HasText() {
		if p.Text != nil && *p.Text != el.Text {
			el.Text = *p.Text
			relayout = true
		}
		if p.FontSize != nil && *p.FontSize != el.FontSize {
			el.FontSize = *p.FontSize
			relayout = true
		}
		if p.FontFamily != nil && *p.FontFamily != el.FontFamily {
			el.FontFamily = *p.FontFamily
			relayout = true
		}
	}
	return relayout
}

// IsEmpty reports whether the patch sets no fields.
func (p *Patch) IsEmpty() bool {
	return p.Stroke == nil && p.Fill == nil && p.FillStyle == nil &&
		p.StrokeWidth == nil && p.Roughness == nil && p.StrokeStyle == nil &&
		p.Arrowhead == nil && p.Text == nil && p.FontSize == nil &&
		p.FontFamily == nil && p.Angle == nil
}
