package canvas

// Fill fills the current path with the fill style under the given rule.
func (c *Context) Fill(rule FillRule) {
	c.fillInternal(c.path, rule)
}

// FillPath fills an arbitrary path source with the fill style.
func (c *Context) FillPath(src PathSource, rule FillRule) {
	c.fillInternal(src, rule)
}

// Stroke strokes the current path with the stroke style.
func (c *Context) Stroke() {
	c.strokeInternal(c.path)
}

// StrokePath strokes an arbitrary path source with the stroke style.
func (c *Context) StrokePath(src PathSource) {
	c.strokeInternal(src)
}

// Clip intersects the clip region with the current path under the given
// rule. The clip stays in effect until the enclosing state is restored.
func (c *Context) Clip(rule FillRule) {
	c.clipInternal(c.path, rule)
}

// ClipPath intersects the clip region with an arbitrary path source.
func (c *Context) ClipPath(src PathSource, rule FillRule) {
	c.clipInternal(src, rule)
}

// FillWithRule fills the current path under a fill-rule keyword:
// "evenodd" selects the even-odd rule, anything else the nonzero rule.
func (c *Context) FillWithRule(rule string) {
	c.fillInternal(c.path, ParseFillRule(rule))
}

// ClipWithRule intersects the clip region under a fill-rule keyword.
func (c *Context) ClipWithRule(rule string) {
	c.clipInternal(c.path, ParseFillRule(rule))
}

// IsPointInPathWithRule reports containment of the canvas-space point
// under a fill-rule keyword.
func (c *Context) IsPointInPathWithRule(x, y float64, rule string) bool {
	return c.IsPointInPath(x, y, ParseFillRule(rule))
}

func (c *Context) fillInternal(src PathSource, rule FillRule) {
	if !c.ensureSurface() {
		return
	}
	s := c.state()
	if !s.FillBrush.Visible() {
		return
	}
	path := freezeSource(src)
	if path.IsEmpty() {
		return
	}

	p := c.syncPainter()
	c.paintShadow(p, s, func(brush Brush, blur float64) {
		p.FillPath(FillOp{
			Path:   path,
			Rule:   rule,
			Brush:  brush,
			Alpha:  1,
			Op:     s.CompositeOp,
			Filter: s.Filter,
			Blur:   blur,
		})
	})
	p.FillPath(FillOp{
		Path:   path,
		Rule:   rule,
		Brush:  s.FillBrush,
		Alpha:  s.GlobalAlpha,
		Op:     s.CompositeOp,
		Filter: s.Filter,
	})
}

func (c *Context) strokeInternal(src PathSource) {
	if !c.ensureSurface() {
		return
	}
	s := c.state()
	if !s.StrokeBrush.Visible() {
		return
	}
	path := freezeSource(src)
	if path.IsEmpty() {
		return
	}

	line := func(op *StrokeOp) {
		op.LineWidth = s.LineWidth
		op.Cap = s.LineCap
		op.Join = s.LineJoin
		op.MiterLimit = s.MiterLimit
		op.Dash = s.dash()
	}

	p := c.syncPainter()
	c.paintShadow(p, s, func(brush Brush, blur float64) {
		op := StrokeOp{
			Path:   path,
			Brush:  brush,
			Alpha:  1,
			Op:     s.CompositeOp,
			Filter: s.Filter,
			Blur:   blur,
		}
		line(&op)
		p.StrokePath(op)
	})
	op := StrokeOp{
		Path:   path,
		Brush:  s.StrokeBrush,
		Alpha:  s.GlobalAlpha,
		Op:     s.CompositeOp,
		Filter: s.Filter,
	}
	line(&op)
	p.StrokePath(op)
}

func (c *Context) clipInternal(src PathSource, rule FillRule) {
	if !c.ensureSurface() {
		return
	}
	s := c.state()
	s.Clips = append(s.Clips, clipEntry{
		Path:      freezeSource(src),
		Rule:      rule,
		Transform: s.Transform,
	})
}

// paintShadow runs the shadow pass: when the state casts a shadow, it
// invokes paint once with the shadow brush and blur, inside a painter
// save/restore with the transform shifted by the shadow offset. The main
// pass never sees the mutation.
func (c *Context) paintShadow(p Painter, s *State, paint func(brush Brush, blur float64)) {
	if s.ShadowBlur == 0 && s.ShadowOffsetX == 0 && s.ShadowOffsetY == 0 {
		return
	}
	// A fully replacing operator overwrites the shadow anyway.
	if s.CompositeOp == CompositeCopy {
		return
	}

	alpha := s.GlobalAlpha * s.ShadowColor.A
	// Quirk kept from the observed pipeline: a flat fill color with
	// nonzero alpha overrides the shadow color's own alpha.
	if flat, ok := asSolidColor(s.FillBrush); ok && flat.A > 0 {
		alpha = flat.A * s.GlobalAlpha
	}
	if alpha == 0 {
		return
	}

	p.Save()
	p.SetTransform(s.Transform.Translated(s.ShadowOffsetX, s.ShadowOffsetY))
	paint(SolidBrush{Color: s.ShadowColor.WithAlpha(alpha)}, s.ShadowBlur)
	p.Restore()
	p.SetTransform(s.Transform)
}

// FillRect fills the axis-aligned rectangle with the fill style, as if by
// filling a rectangle path. Non-finite arguments do nothing.
func (c *Context) FillRect(x, y, w, h float64) {
	if !allFinite(x, y, w, h) {
		return
	}
	c.fillInternal(RectPath(x, y, w, h), FillRuleEvenOdd)
}

// StrokeRect strokes the outline of the axis-aligned rectangle with the
// stroke style.
func (c *Context) StrokeRect(x, y, w, h float64) {
	if !allFinite(x, y, w, h) {
		return
	}
	c.strokeInternal(RectPath(x, y, w, h))
}

// ClearRect resets the rectangle, mapped through the current transform, to
// the surface background: transparent black, or opaque black for an
// alpha-disabled context. Clip, global alpha and the compositing operator
// are ignored.
func (c *Context) ClearRect(x, y, w, h float64) {
	if !allFinite(x, y, w, h) {
		return
	}
	if !c.ensureSurface() {
		return
	}
	p := c.syncPainter()
	p.ClearRect(R(x, y, w, h).Normalized())
}

func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if !isFinite(v) {
			return false
		}
	}
	return true
}
