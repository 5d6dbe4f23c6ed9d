// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termbus implements an I²C bus that emulates the displays of this
// module on a terminal (stdout) using ANSI color codes.
//
// It decodes the SSD1306 OLED and HT16K33 seven-segment wire traffic and
// repaints the display after each data write. Useful while you are waiting
// for your displays to come by mail.
package termbus

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts represents the options available for the emulated bus.
type Opts struct {
	// OLED is the address of the emulated SSD1306, 0x3C by default.
	OLED uint16
	// Segment is the address of the emulated HT16K33, 0x70 by default.
	Segment uint16
	// W and H are the OLED size in pixels, 128x32 by default.
	W, H int
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// Out defaults to a color capable stdout.
	Out io.Writer

	_ struct{}
}

var (
	oledOnColor     = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	oledOffColor    = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
	segmentOffColor = color.NRGBA{0x30, 0x30, 0x30, 0xFF}
)

// Bus is an emulated I²C bus with an OLED and a seven-segment display
// attached.
type Bus struct {
	mu      sync.Mutex
	w       io.Writer
	palette ansi256.Palette
	buf     bytes.Buffer

	oledAddr uint16
	oled     *image1bit.VerticalLSB
	framed   bool
	inverted bool
	oledOn   bool

	segAddr    uint16
	digits     [16]byte
	oscillator bool
	segOn      bool
	blink      byte
	brightness byte
}

// New returns a Bus that paints at the console.
func New(opts *Opts) *Bus {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Out
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	b := &Bus{
		w:          w,
		palette:    *p,
		oledAddr:   opts.OLED,
		segAddr:    opts.Segment,
		brightness: 15,
	}
	if b.oledAddr == 0 {
		b.oledAddr = 0x3C
	}
	if b.segAddr == 0 {
		b.segAddr = 0x70
	}
	width, height := opts.W, opts.H
	if width == 0 {
		width = 128
	}
	if height == 0 {
		height = 32
	}
	b.oled = image1bit.NewVerticalLSB(image.Rect(0, 0, width, height))
	return b
}

func (b *Bus) String() string {
	return "termbus"
}

// Tx implements i2c.Bus.
//
// Only writes to the two emulated addresses are accepted.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(r) != 0 {
		return errors.New("termbus: reads are not supported")
	}
	switch addr {
	case b.oledAddr:
		return b.oledTx(w)
	case b.segAddr:
		return b.segmentTx(w)
	default:
		return fmt.Errorf("termbus: no device at address 0x%02X", addr)
	}
}

// SetSpeed implements i2c.Bus.
//
// The emulated bus has no clock; any speed is accepted.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	return nil
}

// Close implements i2c.BusCloser.
//
// It resets the terminal colors.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, "\n\033[0m")
	return err
}

var _ i2c.BusCloser = &Bus{}
