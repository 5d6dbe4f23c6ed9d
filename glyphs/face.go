// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyphs

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// The bottom row is reserved for descenders.
const (
	ascent  = Height - 1
	descent = 1
)

// Face is a font.Face backed by the Proportional table.
//
// Every glyph advances by its column count plus one blank column, the same
// spacing Width reports.
type Face struct {
	masks [len(Proportional)]*image.Alpha
}

// NewFace returns a Face with every glyph mask prepared.
func NewFace() *Face {
	f := &Face{}
	for i, g := range Proportional {
		m := image.NewAlpha(image.Rect(0, 0, len(g), Height))
		for x, col := range g {
			col = Flip(col)
			for y := 0; y < Height; y++ {
				if col&(1<<uint(y)) != 0 {
					m.Pix[y*m.Stride+x] = 0xff
				}
			}
		}
		f.masks[i] = m
	}
	return f
}

// Close implements font.Face.
func (f *Face) Close() error {
	return nil
}

// Glyph implements font.Face.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	m := f.mask(r)
	if m == nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Floor()
	y := dot.Y.Floor() - ascent
	dr := image.Rect(x, y, x+m.Rect.Dx(), y+Height)
	return dr, m, image.Point{}, fixed.I(m.Rect.Dx() + 1), true
}

// GlyphBounds implements font.Face.
func (f *Face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	m := f.mask(r)
	if m == nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	w := m.Rect.Dx()
	b := fixed.Rectangle26_6{
		Min: fixed.P(0, -ascent),
		Max: fixed.P(w, descent),
	}
	return b, fixed.I(w + 1), true
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	m := f.mask(r)
	if m == nil {
		return 0, false
	}
	return fixed.I(m.Rect.Dx() + 1), true
}

// Kern implements font.Face. The font has no kerning pairs.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// Metrics implements font.Face.
func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:     fixed.I(Height),
		Ascent:     fixed.I(ascent),
		Descent:    fixed.I(descent),
		XHeight:    fixed.I(5),
		CapHeight:  fixed.I(ascent),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

func (f *Face) mask(r rune) *image.Alpha {
	if r == DegreeSign {
		r = Degree
	}
	if r < First || r > Degree {
		return nil
	}
	return f.masks[r-First]
}

var _ font.Face = &Face{}
