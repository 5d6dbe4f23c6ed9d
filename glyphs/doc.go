// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package glyphs holds the static character tables shared by the display
// drivers: a proportional 8 pixel high font covering ASCII 32 to 127 and the
// seven-segment patterns for hexadecimal digits.
//
// Proportional glyphs are stored column by column. Each byte is one column
// with the most significant bit being the top row, which is the opposite of
// the SSD1306 page layout; use Flip before writing a column to a page.
//
// Face exposes the proportional table as a golang.org/x/image/font.Face so it
// can be used with font.Drawer on any draw.Image.
package glyphs
