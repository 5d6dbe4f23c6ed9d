// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"github.com/GermanBionicSystems/i2cdisplays/glyphs"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Text renders s at the cursor with the proportional font and advances the
// cursor.
//
// Each glyph is followed by one blank column. When a column would land past
// the right edge, the text wraps to the next 8 pixel line at x=0; when there
// is no room for another line, the rest of s is dropped. Glyph pixels are
// only ever turned on. Runes without a glyph are skipped.
func (f *Frame) Text(s string) {
	w, h := f.img.Rect.Max.X, f.img.Rect.Max.Y
	x, y := f.x, f.y
	for _, r := range s {
		g, ok := glyphs.Lookup(r)
		if !ok {
			f.ignored++
			continue
		}
		for i := 0; i <= len(g); i++ {
			if i < len(g) {
				f.column(x, y, glyphs.Flip(g[i]))
			}
			if x++; x > w-1 {
				if y+glyphs.Height >= h {
					f.x, f.y = w-1, y
					return
				}
				x = 0
				y += glyphs.Height
			}
		}
	}
	f.x, f.y = x, y
}

// column ORs the 8 bits of col into the pixels (x, y) to (x, y+7).
func (f *Frame) column(x, y int, col byte) {
	for k := 0; k < glyphs.Height; k++ {
		if col&(1<<uint(k)) != 0 && f.in(x, y+k) {
			f.plot(x, y+k, image1bit.On)
		}
	}
}
