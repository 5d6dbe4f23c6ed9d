// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// The ht16k33 package drives a four digit seven-segment display module
// built around a Holtek HT16K33 LED controller, as found on the common
// 0.56" "backpack" boards. Digits are composed in memory and sent to the
// controller in a single write.
//
// # Datasheet
//
// https://www.holtek.com/documents/10179/116711/HT16K33v120.pdf
package ht16k33

import (
	"fmt"

	"github.com/GermanBionicSystems/i2cdisplays/glyphs"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	_OSCILLATOR_ON   byte = 0x21
	_BLINK_CMD       byte = 0x80
	_BLINK_DISPLAYON byte = 0x01
	_BRIGHTNESS_CMD  byte = 0xE0

	colonOffset = 4
	colonOn     = 0x02
)

// MaxBrightness is the brightest of the 16 dimming steps.
const MaxBrightness = 15

// DecimalPoint is OR'd onto a digit pattern to turn its point on.
const DecimalPoint = glyphs.SegDP

// Digits is the number of digits on the display.
const Digits = 4

// Supported blink rates.
const (
	BlinkOff    physic.Frequency = 0
	BlinkHalfHz physic.Frequency = 500 * physic.MilliHertz
	BlinkOneHz  physic.Frequency = physic.Hertz
	BlinkTwoHz  physic.Frequency = 2 * physic.Hertz
)

// digitOffset maps a digit position, left to right, to its byte in the
// display RAM. Offset 4 drives the colon.
var digitOffset = [Digits]int{0, 2, 6, 8}

// Opts defines the options for the device.
type Opts struct {
	// The I2C address of the module, 0x70 to 0x77 depending on the jumpers.
	Addr uint16
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{Addr: 0x70}

// Dev is a handle to a HT16K33 driving a four digit display.
type Dev struct {
	c          conn.Conn
	buffer     [16]byte
	blink      physic.Frequency
	brightness int
	ignored    int
}

// NewI2C returns a Dev with the oscillator started, blinking off and full
// brightness. The digit buffer starts blank but is not sent.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	d := &Dev{c: &i2c.Dev{Bus: b, Addr: addr}}
	if err := d.sendCommand(_OSCILLATOR_ON); err != nil {
		return nil, fmt.Errorf("ht16k33: init: %w", err)
	}
	if err := d.SetBlinkRate(BlinkOff); err != nil {
		return nil, fmt.Errorf("ht16k33: init: %w", err)
	}
	if err := d.SetBrightness(MaxBrightness); err != nil {
		return nil, fmt.Errorf("ht16k33: init: %w", err)
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ht16k33.Dev{%s}", d.c)
}

// SetBlinkRate turns the display on and sets how it blinks.
//
// Only BlinkOff, BlinkHalfHz, BlinkOneHz and BlinkTwoHz are supported; other
// rates are ignored.
func (d *Dev) SetBlinkRate(rate physic.Frequency) error {
	var code byte
	switch rate {
	case BlinkOff:
		code = 0
	case BlinkTwoHz:
		code = 1
	case BlinkOneHz:
		code = 2
	case BlinkHalfHz:
		code = 3
	default:
		d.ignored++
		return nil
	}
	if err := d.sendCommand(_BLINK_CMD | _BLINK_DISPLAYON | code<<1); err != nil {
		return err
	}
	d.blink = rate
	return nil
}

// BlinkRate returns the last blink rate successfully set.
func (d *Dev) BlinkRate() physic.Frequency {
	return d.blink
}

// SetBrightness sets the dimming level, from 0 to MaxBrightness. Any other
// value selects MaxBrightness.
func (d *Dev) SetBrightness(level int) error {
	if level < 0 || level > MaxBrightness {
		level = MaxBrightness
	}
	if err := d.sendCommand(_BRIGHTNESS_CMD | byte(level)); err != nil {
		return err
	}
	d.brightness = level
	return nil
}

// Brightness returns the last dimming level successfully set.
func (d *Dev) Brightness() int {
	return d.brightness
}

// SetGlyph stores a raw segment pattern for a digit, 0 being the leftmost.
func (d *Dev) SetGlyph(pattern byte, digit int, dot bool) {
	if digit < 0 || digit >= Digits {
		d.ignored++
		return
	}
	if dot {
		pattern |= DecimalPoint
	}
	d.buffer[digitOffset[digit]] = pattern
}

// SetNumber shows the decimal value v, 0 to 9, on a digit.
func (d *Dev) SetNumber(v, digit int, dot bool) {
	if v < 0 || v > 9 {
		d.ignored++
		return
	}
	d.SetGlyph(glyphs.Segments[v], digit, dot)
}

// SetChar shows c on a digit. See glyphs.Segment for the supported runes.
func (d *Dev) SetChar(c rune, digit int, dot bool) {
	p, ok := glyphs.Segment(c)
	if !ok {
		d.ignored++
		return
	}
	d.SetGlyph(p, digit, dot)
}

// SetColon turns the center colon on or off.
func (d *Dev) SetColon(on bool) {
	if on {
		d.buffer[colonOffset] = colonOn
	} else {
		d.buffer[colonOffset] = 0
	}
}

// Print lays out s right aligned on the display, replacing its content.
//
// A '.' turns on the point of the preceding character and a ':' turns on the
// colon; neither takes a digit. When s holds more than four characters, only
// the last four are shown.
func (d *Dev) Print(s string) {
	var cells []byte
	colon := false
	for _, r := range s {
		switch r {
		case '.':
			if len(cells) > 0 {
				cells[len(cells)-1] |= DecimalPoint
			} else {
				cells = append(cells, DecimalPoint)
			}
		case ':':
			colon = true
		default:
			p, ok := glyphs.Segment(r)
			if !ok {
				d.ignored++
				continue
			}
			cells = append(cells, p)
		}
	}
	if len(cells) > Digits {
		cells = cells[len(cells)-Digits:]
	}
	d.Clear()
	for i, p := range cells {
		d.buffer[digitOffset[Digits-len(cells)+i]] = p
	}
	d.SetColon(colon)
}

// Clear blanks the digit buffer, colon included. Nothing is sent.
func (d *Dev) Clear() {
	clear(d.buffer[:])
}

// Buffer returns a copy of the display RAM content that Update sends.
func (d *Dev) Buffer() [16]byte {
	return d.buffer
}

// Ignored returns the number of calls dropped because of an invalid argument.
func (d *Dev) Ignored() int {
	return d.ignored
}

// Update sends the digit buffer to the display in a single write.
func (d *Dev) Update() error {
	var b [17]byte
	copy(b[1:], d.buffer[:])
	return d.c.Tx(b[:], nil)
}

// Halt implements conn.Resource.
//
// It turns the display off. SetBlinkRate turns it back on.
func (d *Dev) Halt() error {
	return d.sendCommand(_BLINK_CMD)
}

func (d *Dev) sendCommand(cmd byte) error {
	return d.c.Tx([]byte{cmd}, nil)
}

var _ conn.Resource = &Dev{}
