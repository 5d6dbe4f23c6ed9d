// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package termbus

import (
	"fmt"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/i2cdisplays/glyphs"
)

// digitOffset is the display RAM byte of each digit, left to right.
var digitOffset = [4]int{0, 2, 6, 8}

// segmentArt is the 5x5 cell rendering of one digit. Column 4 holds the
// point.
var segmentArt = [5][5]byte{
	{0, glyphs.SegA, glyphs.SegA, 0, 0},
	{glyphs.SegF, 0, 0, glyphs.SegB, 0},
	{0, glyphs.SegG, glyphs.SegG, 0, 0},
	{glyphs.SegE, 0, 0, glyphs.SegC, 0},
	{0, glyphs.SegD, glyphs.SegD, 0, glyphs.SegDP},
}

// blinkRates names the blink field of the display setup command.
var blinkRates = [4]string{"", "2Hz", "1Hz", "0.5Hz"}

// segmentTx decodes one HT16K33 write: either a single command byte or the
// 16 bytes of display RAM starting at address 0.
func (b *Bus) segmentTx(w []byte) error {
	switch {
	case len(w) == 1:
		switch cmd := w[0]; cmd & 0xF0 {
		case 0x20:
			b.oscillator = cmd&1 != 0
		case 0x80:
			b.segOn = cmd&1 != 0
			b.blink = cmd >> 1 & 3
		case 0xE0:
			b.brightness = cmd & 0x0F
		default:
			return fmt.Errorf("termbus: segment: unsupported command 0x%02X", cmd)
		}
		return nil
	case len(w) == 1+len(b.digits) && w[0] == 0:
		copy(b.digits[:], w[1:])
		return b.paintSegments()
	default:
		return fmt.Errorf("termbus: segment: unsupported write of %d bytes", len(w))
	}
}

func (b *Bus) segmentOnColor() color.NRGBA {
	return color.NRGBA{byte(0x40 + 0xBF*int(b.brightness)/15), 0, 0, 0xFF}
}

func (b *Bus) paintSegments() error {
	on := b.segmentOnColor()
	visible := b.oscillator && b.segOn
	cell := func(lit bool) {
		c := segmentOffColor
		if lit && visible {
			c = on
		}
		_, _ = io.WriteString(&b.buf, b.palette.Block(c))
	}
	b.buf.Reset()
	for row := range segmentArt {
		_, _ = b.buf.WriteString("\r\033[0m")
		for i, off := range digitOffset {
			if i == 2 {
				cell(b.digits[4]&0x02 != 0 && (row == 1 || row == 3))
			}
			for _, seg := range segmentArt[row] {
				cell(seg != 0 && b.digits[off]&seg != 0)
			}
		}
		_, _ = b.buf.WriteString("\033[0m")
		if row == 0 && visible && b.blink != 0 {
			_, _ = b.buf.WriteString(" blink " + blinkRates[b.blink])
		}
		_ = b.buf.WriteByte('\n')
	}
	_, err := b.buf.WriteTo(b.w)
	return err
}
