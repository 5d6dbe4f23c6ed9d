// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import "periph.io/x/devices/v3/ssd1306/image1bit"

// Line draws a line from (x0, y0) towards (x1, y1).
//
// The line is scanned left to right one column at a time using a floating
// point slope; the end column itself is not drawn. A thickness above 1
// repeats the scan shifted down by one row per pass, so steep lines look
// thinner than shallow ones. A vertical line repeats the scan shifted right
// instead. Points falling outside the frame are skipped.
func (f *Frame) Line(x0, y0, x1, y1, thick int, c image1bit.Bit) {
	if thick < 1 {
		thick = 1
	}
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for j := 0; j < thick; j++ {
			for y := y0; y < y1; y++ {
				if f.in(x0+j, y) {
					f.plot(x0+j, y, c)
				}
			}
		}
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	m := float64(y1-y0) / float64(x1-x0)
	for j := 0; j < thick; j++ {
		for x := x0; x < x1; x++ {
			y := y0 + int(m*float64(x-x0)) + j
			if f.in(x, y) {
				f.plot(x, y, c)
			}
		}
	}
}

// Circle draws a circle of radius r centered on (x, y).
//
// The outline is sampled from a 180 entry table rather than computed, so
// large circles show facets. With fill, each sampled row is also drawn from
// the center column to the outline; this leaves gaps near the horizontal
// diameter on larger radii.
func (f *Frame) Circle(x, y, r int, c image1bit.Bit, fill bool) {
	for i := range sinTable {
		a := x - int(float64(r)*sinTable[i])
		b := y - int(float64(r)*cosTable[i])
		if !f.in(a, b) {
			continue
		}
		f.plot(a, b, c)
		if !fill {
			continue
		}
		if a > x {
			for j := x; j < a; j++ {
				if f.in(j, b) {
					f.plot(j, b, c)
				}
			}
		} else {
			// At least one pixel, even when a == x.
			for j, end := a+1, max(x, a+1); j <= end; j++ {
				if f.in(j, b) {
					f.plot(j, b, c)
				}
			}
		}
	}
}

// Rect draws a w by h rectangle with its top left corner at (x, y).
//
// The call is ignored if (x, y) is outside the frame; the size is truncated
// to the frame edges. Without fill, the whole area is set then the inside is
// cleared, so any content below the rectangle is erased, not preserved.
func (f *Frame) Rect(x, y, w, h int, fill bool) {
	if !f.in(x, y) {
		f.ignored++
		return
	}
	if fw := f.img.Rect.Max.X; x+w > fw {
		w = fw - x
	}
	if fh := f.img.Rect.Max.Y; y+h > fh {
		h = fh - y
	}
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			inside := i > x && i < x+w-1 && j > y && j < y+h-1
			f.plot(i, j, image1bit.Bit(fill || !inside))
		}
	}
}
