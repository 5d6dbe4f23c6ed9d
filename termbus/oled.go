// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package termbus

import (
	"errors"
	"fmt"
	"io"
)

const (
	oledCmd  = 0x00
	oledData = 0x40

	oledNormal     = 0xA6
	oledInverse    = 0xA7
	oledDisplayOff = 0xAE
	oledDisplayOn  = 0xAF
)

// oledTx decodes one SSD1306 write: a control byte followed by either a
// command with its arguments or a full frame.
func (b *Bus) oledTx(w []byte) error {
	if len(w) < 2 {
		return errors.New("termbus: oled: short write")
	}
	switch w[0] {
	case oledCmd:
		switch w[1] {
		case oledNormal, oledInverse:
			b.inverted = w[1] == oledInverse
		case oledDisplayOff, oledDisplayOn:
			b.oledOn = w[1] == oledDisplayOn
		default:
			// Timing and addressing setup have no visible effect.
			return nil
		}
		if !b.framed {
			return nil
		}
		return b.paintOLED()
	case oledData:
		if len(w)-1 != len(b.oled.Pix) {
			return fmt.Errorf("termbus: oled: expected %d bytes of pixels, got %d", len(b.oled.Pix), len(w)-1)
		}
		copy(b.oled.Pix, w[1:])
		b.framed = true
		return b.paintOLED()
	default:
		return fmt.Errorf("termbus: oled: invalid control byte 0x%02X", w[0])
	}
}

// lit returns if the OLED pixel at (x, y) emits light.
func (b *Bus) lit(x, y int) bool {
	if !b.oledOn {
		return false
	}
	on := b.oled.Pix[(y>>3)*b.oled.Stride+x]&(1<<uint(y&7)) != 0
	return on != b.inverted
}

func (b *Bus) paintOLED() error {
	// This code is designed to minimize the amount of memory allocated per call.
	b.buf.Reset()
	r := b.oled.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		_, _ = b.buf.WriteString("\r\033[0m")
		for x := r.Min.X; x < r.Max.X; x++ {
			c := oledOffColor
			if b.lit(x, y) {
				c = oledOnColor
			}
			_, _ = io.WriteString(&b.buf, b.palette.Block(c))
		}
		_, _ = b.buf.WriteString("\033[0m\n")
	}
	_, err := b.buf.WriteTo(b.w)
	return err
}
