// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyphs

// Seven-segment bit assignment. Bit 7 is the decimal point.
//
//	   A
//	  ---
//	F| G |B
//	  ---
//	E|   |C
//	  ---
//	   D
const (
	SegA byte = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	SegDP
)

// Indexes into Segments past the hexadecimal digits.
const (
	SegmentMinus  = 0x10
	SegmentDegree = 0x11
)

// Segments holds the patterns for 0-9, a-f, minus and degree, in that order.
var Segments = [18]byte{
	0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07, 0x7F, 0x6F, // 0-9
	0x5F, 0x7C, 0x58, 0x5E, 0x7B, 0x71, // a-f
	0x40, // -
	0x63, // degree
}

// Segment returns the seven-segment pattern for r.
//
// Letters are case insensitive. A space is a valid, blank pattern.
func Segment(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return Segments[r-'0'], true
	case r >= 'a' && r <= 'f':
		return Segments[r-'a'+10], true
	case r >= 'A' && r <= 'F':
		return Segments[r-'A'+10], true
	case r == '-':
		return Segments[SegmentMinus], true
	case r == DegreeSign:
		return Segments[SegmentDegree], true
	case r == ' ':
		return 0, true
	}
	return 0, false
}
