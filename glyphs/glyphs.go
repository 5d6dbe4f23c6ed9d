// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyphs

import "math/bits"

const (
	// First is the code point of Proportional[0].
	First = 32
	// Degree is the code point used for the degree sign; it replaces DEL.
	Degree = 127
	// DegreeSign is the Unicode degree sign, mapped onto Degree.
	DegreeSign = '°'
	// Height is the height in pixels of every proportional glyph.
	Height = 8
)

// Proportional is the variable width pixel font, indexed by code point minus
// First. Columns run left to right, bit 7 is the top row.
var Proportional = [96][]byte{
	{0x00, 0x00},                   // space
	{0xfa},                         // !
	{0xe0, 0xc0, 0x00, 0xe0, 0xc0}, // "
	{0x24, 0x7e, 0x24, 0x7e, 0x24}, // #
	{0x24, 0xd4, 0x56, 0x48},       // $
	{0xc6, 0xc8, 0x10, 0x26, 0xc6}, // %
	{0x6c, 0x92, 0x6a, 0x04, 0x0a}, // &
	{0xc0},                         // '
	{0x7c, 0x82},                   // (
	{0x82, 0x7c},                   // )
	{0x10, 0x7c, 0x38, 0x7c, 0x10}, // *
	{0x10, 0x10, 0x7c, 0x10, 0x10}, // +
	{0x06, 0x07},                   // ,
	{0x10, 0x10, 0x10, 0x10, 0x10}, // -
	{0x06, 0x06},                   // .
	{0x04, 0x08, 0x10, 0x20, 0x40}, // /
	{0x7c, 0x8a, 0x92, 0xa2, 0x7c}, // 0
	{0x42, 0xfe, 0x02},             // 1
	{0x46, 0x8a, 0x92, 0x92, 0x62}, // 2
	{0x44, 0x92, 0x92, 0x92, 0x6c}, // 3
	{0x18, 0x28, 0x48, 0xfe, 0x08}, // 4
	{0xf4, 0x92, 0x92, 0x92, 0x8c}, // 5
	{0x3c, 0x52, 0x92, 0x92, 0x8c}, // 6
	{0x80, 0x8e, 0x90, 0xa0, 0xc0}, // 7
	{0x6c, 0x92, 0x92, 0x92, 0x6c}, // 8
	{0x60, 0x92, 0x92, 0x94, 0x78}, // 9
	{0x36, 0x36},                   // :
	{0x36, 0x37},                   // ;
	{0x10, 0x28, 0x44, 0x82},       // <
	{0x24, 0x24, 0x24, 0x24, 0x24}, // =
	{0x82, 0x44, 0x28, 0x10},       // >
	{0x60, 0x80, 0x9a, 0x90, 0x60}, // ?
	{0x7c, 0x82, 0xba, 0xaa, 0x78}, // @
	{0x7e, 0x90, 0x90, 0x90, 0x7e}, // A
	{0xfe, 0x92, 0x92, 0x92, 0x6c}, // B
	{0x7c, 0x82, 0x82, 0x82, 0x44}, // C
	{0xfe, 0x82, 0x82, 0x82, 0x7c}, // D
	{0xfe, 0x92, 0x92, 0x92, 0x82}, // E
	{0xfe, 0x90, 0x90, 0x90, 0x80}, // F
	{0x7c, 0x82, 0x92, 0x92, 0x5c}, // G
	{0xfe, 0x10, 0x10, 0x10, 0xfe}, // H
	{0x82, 0xfe, 0x82},             // I
	{0x0c, 0x02, 0x02, 0x02, 0xfc}, // J
	{0xfe, 0x10, 0x28, 0x44, 0x82}, // K
	{0xfe, 0x02, 0x02, 0x02, 0x02}, // L
	{0xfe, 0x40, 0x20, 0x40, 0xfe}, // M
	{0xfe, 0x40, 0x20, 0x10, 0xfe}, // N
	{0x7c, 0x82, 0x82, 0x82, 0x7c}, // O
	{0xfe, 0x90, 0x90, 0x90, 0x60}, // P
	{0x7c, 0x82, 0x92, 0x8c, 0x7a}, // Q
	{0xfe, 0x90, 0x90, 0x98, 0x66}, // R
	{0x64, 0x92, 0x92, 0x92, 0x4c}, // S
	{0x80, 0x80, 0xfe, 0x80, 0x80}, // T
	{0xfc, 0x02, 0x02, 0x02, 0xfc}, // U
	{0xf8, 0x04, 0x02, 0x04, 0xf8}, // V
	{0xfc, 0x02, 0x3c, 0x02, 0xfc}, // W
	{0xc6, 0x28, 0x10, 0x28, 0xc6}, // X
	{0xe0, 0x10, 0x0e, 0x10, 0xe0}, // Y
	{0x86, 0x8a, 0x92, 0xa2, 0xc2}, // Z
	{0xfe, 0x82, 0x82},             // [
	{0x40, 0x20, 0x10, 0x08, 0x04}, // \
	{0x82, 0x82, 0xfe},             // ]
	{0x20, 0x40, 0x80, 0x40, 0x20}, // ^
	{0x02, 0x02, 0x02, 0x02, 0x02}, // _
	{0xc0, 0xe0},                   // `
	{0x04, 0x2a, 0x2a, 0x2a, 0x1e}, // a
	{0xfe, 0x22, 0x22, 0x22, 0x1c}, // b
	{0x1c, 0x22, 0x22, 0x22},       // c
	{0x1c, 0x22, 0x22, 0x22, 0xfc}, // d
	{0x1c, 0x2a, 0x2a, 0x2a, 0x10}, // e
	{0x10, 0x7e, 0x90, 0x90, 0x80}, // f
	{0x18, 0x25, 0x25, 0x25, 0x3e}, // g
	{0xfe, 0x20, 0x20, 0x20, 0x1e}, // h
	{0xbe, 0x02},                   // i
	{0x02, 0x01, 0x01, 0x21, 0xbe}, // j
	{0xfe, 0x08, 0x14, 0x22},       // k
	{0xfe, 0x02},                   // l
	{0x3e, 0x20, 0x18, 0x20, 0x1e}, // m
	{0x3e, 0x20, 0x20, 0x20, 0x1e}, // n
	{0x1c, 0x22, 0x22, 0x22, 0x1c}, // o
	{0x3f, 0x22, 0x22, 0x22, 0x1c}, // p
	{0x1c, 0x22, 0x22, 0x22, 0x3f}, // q
	{0x22, 0x1e, 0x22, 0x20, 0x10}, // r
	{0x12, 0x2a, 0x2a, 0x2a, 0x04}, // s
	{0x20, 0x7c, 0x22, 0x22, 0x04}, // t
	{0x3c, 0x02, 0x02, 0x3e},       // u
	{0x38, 0x04, 0x02, 0x04, 0x38}, // v
	{0x3c, 0x06, 0x0c, 0x06, 0x3c}, // w
	{0x22, 0x14, 0x08, 0x14, 0x22}, // x
	{0x39, 0x05, 0x06, 0x3c},       // y
	{0x26, 0x2a, 0x2a, 0x32},       // z
	{0x10, 0x7c, 0x82, 0x82},       // {
	{0xee},                         // |
	{0x82, 0x82, 0x7c, 0x10},       // }
	{0x40, 0x80, 0x40, 0x80},       // ~
	{0x60, 0x90, 0x90, 0x60},       // degree sign, in place of DEL
}

// Lookup returns the proportional glyph columns for r.
//
// The returned slice is shared; do not modify it.
func Lookup(r rune) ([]byte, bool) {
	if r == DegreeSign {
		r = Degree
	}
	if r < First || r > Degree {
		return nil, false
	}
	return Proportional[r-First], true
}

// Flip reverses the bit order of a glyph column so bit 0 becomes the top
// row, matching the controller's page layout.
func Flip(b byte) byte {
	return bits.Reverse8(b)
}

// Width returns the width in pixels of s rendered with the proportional font,
// including one blank column after every glyph.
//
// Runes without a glyph take no space. An empty string returns -1.
func Width(s string) int {
	if len(s) == 0 {
		return -1
	}
	n := 0
	for _, r := range s {
		if g, ok := Lookup(r); ok {
			n += len(g) + 1
		}
	}
	return n
}
