// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GermanBionicSystems/i2cdisplays/ht16k33"
	"github.com/GermanBionicSystems/i2cdisplays/ssd1306"
	"github.com/GermanBionicSystems/i2cdisplays/termbus"
	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestBCD(t *testing.T) {
	for _, tc := range []struct {
		v    int
		want uint16
	}{
		{0, 0},
		{7, 0x7},
		{42, 0x42},
		{100, 0x100},
		{9999, 0x9999},
	} {
		if got := bcd(tc.v); got != tc.want {
			t.Errorf("bcd(%d) = 0x%x; want 0x%x", tc.v, got, tc.want)
		}
	}
}

func newDigits(t *testing.T) *ht16k33.Dev {
	t.Helper()
	d, err := ht16k33.NewI2C(&i2ctest.Record{}, &ht16k33.DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSetBCD(t *testing.T) {
	d := newDigits(t)
	setBCD(d, 1234, 0)
	want := [16]byte{0: 0x06, 2: 0x5B, 6: 0x4F, 8: 0x66}
	if diff := cmp.Diff(want, d.Buffer()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	d.Clear()
	setBCD(d, 57, 1)
	want = [16]byte{2: 0x3F, 6: 0x6D, 8: 0x07}
	if diff := cmp.Diff(want, d.Buffer()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestPacketCounter(t *testing.T) {
	p := packetCounter{limit: 9999}
	for _, tc := range []struct {
		total uint64
		want  int
	}{
		{1000, 0},
		{1500, 500},
		{10999, 9999},
		{11000, 0},
		{11001, 1},
		// Counter reset by the kernel.
		{3, 0},
	} {
		if got := p.sample(tc.total); got != tc.want {
			t.Errorf("sample(%d) = %d; want %d", tc.total, got, tc.want)
		}
	}
}

func TestTemperature(t *testing.T) {
	for _, tc := range []struct {
		c    float64
		want string
	}{
		{21.54, "21.5°"},
		{0, "0.0°"},
		{-5, "-5.0°"},
		{-12.4, "-12°"},
		{104.2, "104°"},
	} {
		temp := physic.ZeroCelsius + physic.Temperature(tc.c*float64(physic.Kelvin))
		if got := temperature(temp); got != tc.want {
			t.Errorf("temperature(%.2f) = %q; want %q", tc.c, got, tc.want)
		}
	}
}

func TestEvery(t *testing.T) {
	n := 0
	err := every(context.Background(), time.Millisecond, func() error {
		if n++; n == 3 {
			return errDone
		}
		return nil
	})
	if err != nil || n != 3 {
		t.Fatalf("err=%v n=%d", err, n)
	}
	n = 0
	err = every(context.Background(), time.Millisecond, func() error {
		n++
		return fmt.Errorf("countdown: %w", errDone)
	})
	if err != nil || n != 1 {
		t.Fatalf("wrapped errDone: err=%v n=%d", err, n)
	}
	errFail := errors.New("fail")
	if err := every(context.Background(), time.Millisecond, func() error { return errFail }); err != errFail {
		t.Fatalf("err=%v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n = 0
	if err := every(ctx, time.Hour, func() error { n++; return nil }); err != nil || n != 1 {
		t.Fatalf("err=%v n=%d", err, n)
	}
}

func TestBoxOrigin(t *testing.T) {
	for _, h := range []int{16, 32, 64} {
		rng := rand.New(rand.NewPCG(1, 2))
		b := image.Rect(0, 0, 128, h)
		minX, maxX, minY, maxY := 1000, -1000, 1000, -1000
		for i := 0; i < 2000; i++ {
			x, y := boxOrigin(b, rng)
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
		if minX != -10 || maxX != 137 {
			t.Errorf("h=%d: x in [%d, %d]; want [-10, 137]", h, minX, maxX)
		}
		if minY != -10 || maxY != h-11 {
			t.Errorf("h=%d: y in [%d, %d]; want [-10, %d]", h, minY, maxY, h-11)
		}
	}
}

func TestRandomBox(t *testing.T) {
	for _, h := range []int{16, 32, 64} {
		f, err := ssd1306.NewFrame(128, h)
		if err != nil {
			t.Fatal(err)
		}
		rng := rand.New(rand.NewPCG(1, 2))
		lit := false
		for i := 0; i < 2000; i++ {
			randomBox(f, rng)
			if bytes.Count(f.Pix(), []byte{0}) != len(f.Pix()) {
				lit = true
			}
		}
		if len(f.Pix()) != 128*h/8 {
			t.Fatalf("h=%d: frame resized", h)
		}
		if !lit {
			t.Errorf("h=%d: no box ever lit a pixel", h)
		}
		if f.Ignored() >= 2000 {
			t.Errorf("h=%d: Ignored() = %d; every box was dropped", h, f.Ignored())
		}
	}
}

func TestSysinfoDraw(t *testing.T) {
	f, err := ssd1306.NewFrame(128, 64)
	if err != nil {
		t.Fatal(err)
	}
	s := sysinfo{cpu: 12.7, logical: 8, physical: 4, mem: 33.3, boot: time.Unix(0, 0), in: 42}
	s.draw(f)
	x := (128 - f.LengthOfString(sysinfoHead)) / 2
	for i := 0; i < x; i++ {
		if f.Bit(i, 1) {
			t.Fatalf("(%d,1) set left of the centered heading", i)
		}
	}
	if f.Ignored() != 0 {
		t.Fatalf("Ignored() = %d", f.Ignored())
	}
	// The battery line is last drawn on row 56.
	if f.Cursor().Y != 56 {
		t.Fatalf("Cursor() = %v", f.Cursor())
	}
	noBattery := bytes.Clone(f.Pix())

	s.battery, s.hasBattery = 87, true
	s.draw(f)
	if f.Ignored() != 0 {
		t.Fatalf("Ignored() = %d", f.Ignored())
	}
	if f.Cursor().Y != 56 {
		t.Fatalf("Cursor() = %v", f.Cursor())
	}
	if bytes.Equal(noBattery, f.Pix()) {
		t.Fatal("battery line not drawn")
	}
	// Only the last page differs.
	if !bytes.Equal(noBattery[:128*7], f.Pix()[:128*7]) {
		t.Fatal("battery line drawn outside row 56")
	}
}

func TestReadBattery(t *testing.T) {
	dir := t.TempDir()
	if _, ok := readBattery(dir); ok {
		t.Fatal("found a battery in an empty directory")
	}
	if err := os.MkdirAll(filepath.Join(dir, "AC"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "AC", "online"), []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := readBattery(dir); ok {
		t.Fatal("mains adapter reported as a battery")
	}
	if err := os.MkdirAll(filepath.Join(dir, "BAT0"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "BAT0", "capacity"), []byte("64\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if v, ok := readBattery(dir); !ok || v != 64 {
		t.Fatalf("readBattery() = %v, %t; want 64, true", v, ok)
	}
}

func TestBanner(t *testing.T) {
	b, err := newBanner(image.Rect(0, 0, 128, 32), "periph")
	if err != nil {
		t.Fatal(err)
	}
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 32))
	var frames [][]byte
	for i := 0; i < 10; i++ {
		src := b.next(8)
		for y := 0; y < 32; y++ {
			for x := 0; x < 128; x++ {
				img.Set(x, y, src.At(x, y))
			}
		}
		frames = append(frames, bytes.Clone(img.Pix))
	}
	// The border is always drawn.
	if img.At(0, 0) != image1bit.On {
		t.Fatal("border not drawn")
	}
	if bytes.Equal(frames[2], frames[9]) {
		t.Fatal("banner does not scroll")
	}
}

func TestCountdownEmulated(t *testing.T) {
	out := &bytes.Buffer{}
	bus := termbus.New(&termbus.Opts{Out: out})
	digits, err := ht16k33.NewI2C(bus, &ht16k33.DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runCountdown(ctx, &displays{bus: bus, digits: digits, interval: time.Millisecond}); err != nil {
		t.Fatal(err)
	}
	want := [16]byte{0: 0x6F, 2: 0x6F, 6: 0x6F, 8: 0x6F}
	if diff := cmp.Diff(want, digits.Buffer()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if out.Len() == 0 {
		t.Fatal("nothing painted")
	}
}

func TestBoxesEmulated(t *testing.T) {
	bus := termbus.New(&termbus.Opts{W: 128, H: 64, Out: &bytes.Buffer{}})
	oled, err := ssd1306.NewI2C(bus, &ssd1306.Opts{W: 128, H: 64})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runBoxes(ctx, &displays{bus: bus, oled: oled, interval: time.Millisecond}); err != nil {
		t.Fatal(err)
	}
}
