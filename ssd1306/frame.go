// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"
	"image"
	"image/color"

	"github.com/GermanBionicSystems/i2cdisplays/glyphs"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Frame is an in-memory SSD1306 frame buffer with a text cursor.
//
// The memory layout is the controller's GDDRAM layout: horizontal bands
// (pages) of 8 pixels high, one byte per column per page, bit 0 being the top
// pixel of the band. The pixel (x, y) lives in byte (y>>3)*W+x at bit y&7.
//
// None of the methods touch the bus. Coordinates outside the frame are
// silently ignored; Ignored reports how many calls were dropped that way.
type Frame struct {
	img     *image1bit.VerticalLSB
	x, y    int
	ignored int
}

// NewFrame returns a cleared frame of w by h pixels.
//
// h must be a multiple of 8.
func NewFrame(w, h int) (*Frame, error) {
	if w <= 0 {
		return nil, fmt.Errorf("ssd1306: invalid width %d", w)
	}
	if h <= 0 || h&7 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid height %d", h)
	}
	return &Frame{
		img: &image1bit.VerticalLSB{
			Pix:    make([]byte, w*(h/8)),
			Stride: w,
			Rect:   image.Rect(0, 0, w, h),
		},
	}, nil
}

// ColorModel implements image.Image.
func (f *Frame) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements image.Image. Min is always {0, 0}.
func (f *Frame) Bounds() image.Rectangle {
	return f.img.Rect
}

// At implements image.Image.
func (f *Frame) At(x, y int) color.Color {
	return f.Bit(x, y)
}

// Set implements draw.Image. It converts c with image1bit.BitModel.
func (f *Frame) Set(x, y int, c color.Color) {
	b, _ := image1bit.BitModel.Convert(c).(image1bit.Bit)
	f.Plot(x, y, b)
}

// Image returns the frame as an image1bit.VerticalLSB sharing the same
// memory.
func (f *Frame) Image() *image1bit.VerticalLSB {
	return f.img
}

// Pix returns the live frame buffer, W*H/8 bytes.
func (f *Frame) Pix() []byte {
	return f.img.Pix
}

// Cursor returns the position where the next Text call starts.
func (f *Frame) Cursor() image.Point {
	return image.Point{X: f.x, Y: f.y}
}

// Ignored returns the number of calls that were dropped because of an
// argument outside the frame or an unknown character.
func (f *Frame) Ignored() int {
	return f.ignored
}

// Clear turns every pixel off. The cursor is left untouched.
func (f *Frame) Clear() {
	clear(f.img.Pix)
}

// Home moves the cursor to the top left corner.
func (f *Frame) Home() {
	f.Move(0, 0)
}

// Move sets the cursor. The call is ignored if (x, y) is outside the frame.
func (f *Frame) Move(x, y int) {
	if !f.in(x, y) {
		f.ignored++
		return
	}
	f.x = x
	f.y = y
}

// Plot turns the pixel at (x, y) on or off. The call is ignored if (x, y) is
// outside the frame.
func (f *Frame) Plot(x, y int, c image1bit.Bit) {
	if !f.in(x, y) {
		f.ignored++
		return
	}
	f.plot(x, y, c)
}

// Bit returns the state of the pixel at (x, y), Off outside the frame.
func (f *Frame) Bit(x, y int) image1bit.Bit {
	if !f.in(x, y) {
		return image1bit.Off
	}
	return f.img.Pix[f.index(x, y)]&(1<<uint(y&7)) != 0
}

// LengthOfString returns the width in pixels of s once rendered by Text, or
// -1 for an empty string.
func (f *Frame) LengthOfString(s string) int {
	return glyphs.Width(s)
}

func (f *Frame) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.img.Rect.Max.X && y < f.img.Rect.Max.Y
}

// index returns the byte holding the pixel; callers check bounds.
func (f *Frame) index(x, y int) int {
	return (y>>3)*f.img.Stride + x
}

func (f *Frame) plot(x, y int, c image1bit.Bit) {
	i := f.index(x, y)
	if c {
		f.img.Pix[i] |= 1 << uint(y&7)
	} else {
		f.img.Pix[i] &^= 1 << uint(y&7)
	}
}
