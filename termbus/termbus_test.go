// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package termbus

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/i2cdisplays/ht16k33"
	"github.com/GermanBionicSystems/i2cdisplays/ssd1306"
	"github.com/maruel/ansi256"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func newTestBus(w, h int) (*Bus, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(&Opts{W: w, H: h, Out: out}), out
}

func count(out *bytes.Buffer, c color.NRGBA) int {
	return strings.Count(out.String(), ansi256.Default.Block(c))
}

func TestTx_invalid(t *testing.T) {
	b, out := newTestBus(16, 16)
	if err := b.Tx(0x42, []byte{0}, nil); err == nil {
		t.Fatal("expected failure on unknown address")
	}
	if err := b.Tx(0x3C, []byte{0x00}, make([]byte, 1)); err == nil {
		t.Fatal("expected failure on read")
	}
	if err := b.Tx(0x3C, []byte{0x40, 1, 2}, nil); err == nil {
		t.Fatal("expected failure on short frame")
	}
	if err := b.Tx(0x3C, []byte{0x80, 0xAF}, nil); err == nil {
		t.Fatal("expected failure on invalid control byte")
	}
	if err := b.Tx(0x70, []byte{0x00, 1, 2}, nil); err == nil {
		t.Fatal("expected failure on partial digit write")
	}
	if err := b.Tx(0x70, []byte{0x42}, nil); err == nil {
		t.Fatal("expected failure on unknown command")
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestOLED(t *testing.T) {
	b, out := newTestBus(16, 16)
	dev, err := ssd1306.NewI2C(b, &ssd1306.Opts{W: 16, H: 16})
	if err != nil {
		t.Fatal(err)
	}
	if got := count(out, oledOffColor); got != 16*16 {
		t.Fatalf("blank frame: %d dark pixels; want 256", got)
	}
	if !b.oledOn || b.inverted {
		t.Fatalf("on=%t inverted=%t", b.oledOn, b.inverted)
	}

	out.Reset()
	dev.Rect(0, 0, 4, 4, true)
	dev.Plot(15, 15, image1bit.On)
	if err := dev.Render(); err != nil {
		t.Fatal(err)
	}
	if got := count(out, oledOnColor); got != 17 {
		t.Fatalf("%d lit pixels; want 17", got)
	}
	if got := strings.Count(out.String(), "\n"); got != 16 {
		t.Fatalf("%d lines; want 16", got)
	}

	out.Reset()
	if err := dev.Invert(true); err != nil {
		t.Fatal(err)
	}
	if got := count(out, oledOnColor); got != 256-17 {
		t.Fatalf("inverted: %d lit pixels; want %d", got, 256-17)
	}

	out.Reset()
	if err := dev.Halt(); err != nil {
		t.Fatal(err)
	}
	if got := count(out, oledOnColor); got != 0 {
		t.Fatalf("halted: %d lit pixels", got)
	}
}

func TestSegment(t *testing.T) {
	b, out := newTestBus(0, 0)
	dev, err := ht16k33.NewI2C(b, &ht16k33.DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Fatal("commands should not paint")
	}
	if !b.oscillator || !b.segOn || b.blink != 0 || b.brightness != 15 {
		t.Fatalf("osc=%t on=%t blink=%d brightness=%d", b.oscillator, b.segOn, b.blink, b.brightness)
	}

	red := color.NRGBA{0xFF, 0, 0, 0xFF}
	dev.Print("8")
	if err := dev.Update(); err != nil {
		t.Fatal(err)
	}
	if got := count(out, red); got != 10 {
		t.Fatalf("%d lit cells; want 10", got)
	}
	if got := strings.Count(out.String(), "\n"); got != 5 {
		t.Fatalf("%d lines; want 5", got)
	}

	out.Reset()
	dev.Print("1.:")
	if err := dev.Update(); err != nil {
		t.Fatal(err)
	}
	// B, C, the point and both colon dots.
	if got := count(out, red); got != 5 {
		t.Fatalf("%d lit cells; want 5", got)
	}

	if err := dev.SetBlinkRate(ht16k33.BlinkTwoHz); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetBrightness(3); err != nil {
		t.Fatal(err)
	}
	if b.blink != 1 || b.brightness != 3 {
		t.Fatalf("blink=%d brightness=%d", b.blink, b.brightness)
	}
	if strings.Contains(out.String(), "blink") {
		t.Fatalf("steady display painted a blink rate: %q", out.String())
	}
	out.Reset()
	if err := dev.Update(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[0m blink 2Hz\n") {
		t.Fatalf("blink rate not painted: %q", out.String())
	}
	if got := strings.Count(out.String(), "\n"); got != 5 {
		t.Fatalf("%d lines; want 5", got)
	}
	if err := dev.Halt(); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := dev.Update(); err != nil {
		t.Fatal(err)
	}
	if got := count(out, b.segmentOnColor()); got != 0 {
		t.Fatalf("halted: %d lit cells", got)
	}
}

func TestClose(t *testing.T) {
	b, out := newTestBus(0, 0)
	if err := b.SetSpeed(0); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "\033[0m") {
		t.Fatalf("unexpected output %q", out.String())
	}
	if b.String() != "termbus" {
		t.Fatal(b.String())
	}
}
