// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// https://learn.adafruit.com/monochrome-oled-breakouts

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	_CHARGEPUMP          = 0x8D
	_COLUMNADDR          = 0x21
	_COMSCANDEC          = 0xC8
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETMULTIPLEX        = 0xA8
	_SETPRECHARGE        = 0xD9
	_SETSEGMENTREMAP     = 0xA1
	_SETSTARTLINE        = 0x40
	_SETVCOMDETECT       = 0xDB
)

const (
	i2cCmd  = 0x00 // I²C transaction has stream of command bytes
	i2cData = 0x40 // I²C transaction has stream of data bytes
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W:    128,
	H:    32,
	Addr: 0x3C,
}

// Opts defines the options for the device.
type Opts struct {
	// W is the width in pixels, up to 128.
	W int
	// H is the height in pixels: 16, 32 or 64.
	H int
	// The I2C address of the display. 0x3C or 0x3D on most boards.
	Addr uint16
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306 display
// controller.
//
// The controller is fully configured, the frame is cleared and sent once
// before returning. On error, the returned Dev is nil and the display state
// is unknown; the driver has to be instantiated again.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	// Maximum clock speed is 1/2.5µs = 400KHz.
	return newDev(&i2c.Dev{Bus: b, Addr: addr}, opts)
}

// Dev is an open handle to the display controller.
//
// Drawing happens on the embedded Frame and only reaches the display on
// Render or Draw.
type Dev struct {
	*Frame

	c conn.Conn
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s, %s}", d.c, d.Bounds().Max)
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.Frame.Bounds()
}

// Draw implements display.Drawer.
//
// src is copied into the frame, replacing the pixels in r, then the whole
// frame is sent.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.Frame, r, src, sp)
	return d.Render()
}

// Write replaces the frame with pixels and sends it.
//
// The format is the one of Frame.Pix: each byte represents 8 vertical pixels
// of one column of one page.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.Pix()) {
		return 0, fmt.Errorf("ssd1306: invalid pixel stream length; expected %d bytes, got %d bytes", len(d.Pix()), len(pixels))
	}
	copy(d.Pix(), pixels)
	if err := d.Render(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Render sends the whole frame to the display in a single write.
//
// On error the frame is left as is and can be sent again.
func (d *Dev) Render() error {
	pix := d.Pix()
	b := make([]byte, 1+len(pix))
	b[0] = i2cData
	copy(b[1:], pix)
	return d.c.Tx(b, nil)
}

// Invert the display (black on white vs white on black).
//
// It takes effect immediately and does not change the frame.
func (d *Dev) Invert(blackOnWhite bool) error {
	if blackOnWhite {
		return d.sendCommand(_INVERTDISPLAY)
	}
	return d.sendCommand(_NORMALDISPLAY)
}

// Halt implements conn.Resource.
//
// It turns off the display. Render does not turn it back on; use a new Dev.
func (d *Dev) Halt() error {
	return d.sendCommand(_DISPLAYOFF)
}

func newDev(c conn.Conn, opts *Opts) (*Dev, error) {
	switch opts.H {
	case 16, 32, 64:
	default:
		return nil, fmt.Errorf("ssd1306: invalid height %d", opts.H)
	}
	if opts.W < 1 || opts.W > 128 {
		return nil, fmt.Errorf("ssd1306: invalid width %d", opts.W)
	}
	f, err := NewFrame(opts.W, opts.H)
	if err != nil {
		return nil, err
	}
	d := &Dev{Frame: f, c: c}
	for _, cmd := range getInitCmd(opts) {
		if err := d.sendCommand(cmd...); err != nil {
			return nil, fmt.Errorf("ssd1306: init: %w", err)
		}
	}
	d.Clear()
	if err := d.Render(); err != nil {
		return nil, fmt.Errorf("ssd1306: init: %w", err)
	}
	return d, nil
}

// getInitCmd returns the power up sequence, one command per write.
func getInitCmd(opts *Opts) [][]byte {
	// See page 40: sequential COM pins for 16 and 32 rows, alternative
	// otherwise.
	comPins := byte(0x12)
	if opts.H == 32 || opts.H == 16 {
		comPins = 0x02
	}
	return [][]byte{
		{_DISPLAYOFF},
		{_SETDISPLAYCLOCKDIV, 0x80}, // Power on reset value
		{_SETMULTIPLEX, byte(opts.H - 1)},
		{_SETDISPLAYOFFSET, 0x00},
		{_SETSTARTLINE},
		{_CHARGEPUMP, 0x14}, // Enable charge pump regulator; page 62
		{_MEMORYMODE, 0x00}, // Horizontal addressing
		{_SETSEGMENTREMAP},
		{_COMSCANDEC},
		{_SETCOMPINS, comPins},
		{_SETCONTRAST, 0x8F},
		{_SETPRECHARGE, 0xF1},
		{_SETVCOMDETECT, 0x40},
		{_DISPLAYALLON_RESUME},
		{_NORMALDISPLAY},
		{_DISPLAYON},
		{_COLUMNADDR, 0, byte(opts.W - 1)},
		{_PAGEADDR, 0, byte(opts.H/8 - 1)},
	}
}

func (d *Dev) sendCommand(c ...byte) error {
	return d.c.Tx(append([]byte{i2cCmd}, c...), nil)
}

var _ display.Drawer = &Dev{}
