// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/GermanBionicSystems/i2cdisplays/ssd1306"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	pshost "github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
	"golang.org/x/image/font/gofont/goregular"
)

// randomBox draws one random rectangle, partially off screen at times, or
// clears the screen once in a while.
func randomBox(f *ssd1306.Frame, rng *rand.Rand) {
	b := f.Bounds()
	r := rng.IntN(101)
	if r == 50 {
		f.Clear()
		return
	}
	x, y := boxOrigin(b, rng)
	f.Rect(x, y, 10+rng.IntN(71), 10+rng.IntN(41), r > 50)
}

// boxOrigin picks x in [-10, W+9] and y in [-10, H-11].
func boxOrigin(b image.Rectangle, rng *rand.Rand) (int, int) {
	return rng.IntN(b.Dx()+20) - 10, rng.IntN(b.Dy()) - 10
}

func runBoxes(ctx context.Context, d *displays) error {
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	return every(ctx, d.interval, func() error {
		randomBox(d.oled.Frame, rng)
		return d.oled.Render()
	})
}

// sysinfo is one sample of the system information page.
type sysinfo struct {
	cpu               float64
	logical, physical int
	mem, swap, disk   float64
	boot              time.Time
	in, out           int
	battery           float64
	hasBattery        bool
}

// sampleSysinfo gathers the current values. Metrics that cannot be read are
// left at zero.
func sampleSysinfo(in, out *packetCounter) sysinfo {
	var s sysinfo
	if v, err := cpu.Percent(0, false); err == nil && len(v) > 0 {
		s.cpu = v[0]
	}
	s.logical, _ = cpu.Counts(true)
	s.physical, _ = cpu.Counts(false)
	if m, err := mem.VirtualMemory(); err == nil && m.Total != 0 {
		s.mem = 100 * float64(m.Used) / float64(m.Total)
	}
	if m, err := mem.SwapMemory(); err == nil && m.Total != 0 {
		s.swap = 100 * float64(m.Used) / float64(m.Total)
	}
	if du, err := disk.Usage("/"); err == nil {
		s.disk = du.UsedPercent
	}
	if boot, err := pshost.BootTime(); err == nil {
		s.boot = time.Unix(int64(boot), 0)
	}
	if all, err := psnet.IOCounters(false); err == nil && len(all) > 0 {
		s.in = in.sample(all[0].PacketsRecv)
		s.out = out.sample(all[0].PacketsSent)
	} else {
		log.Printf("sysinfo: %v", err)
	}
	s.battery, s.hasBattery = readBattery(powerSupplyDir)
	return s
}

const powerSupplyDir = "/sys/class/power_supply"

// readBattery returns the charge of the first battery listed under dir, in
// percent. It reports false when there is none, as on desktops or outside
// Linux.
func readBattery(dir string) (float64, bool) {
	paths, _ := filepath.Glob(filepath.Join(dir, "BAT*", "capacity"))
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

const sysinfoHead = "**SYSTEM INFORMATION**"

// draw lays the page out on a 128x64 frame; smaller frames show the top.
func (s *sysinfo) draw(f *ssd1306.Frame) {
	at := func(x, y int, text string) {
		f.Move(x, y)
		f.Text(text)
	}
	f.Clear()
	at(max(0, (f.Bounds().Dx()-f.LengthOfString(sysinfoHead))/2), 0, sysinfoHead)
	at(1, 8, "CPU:")
	at(30, 8, fmt.Sprintf("%d%%", int(s.cpu)))
	at(58, 8, fmt.Sprintf("Cores: %d/%d", s.logical, s.physical))
	at(1, 16, "Mem:")
	at(24, 16, fmt.Sprintf("%.1f%%", s.mem))
	at(58, 16, "Swap:")
	at(90, 16, fmt.Sprintf("%.1f%%", s.swap))
	at(1, 24, "Disk:")
	at(58, 24, fmt.Sprintf("%.1f%%", s.disk))
	at(1, 32, "Booted:")
	at(58, 32, s.boot.Format("02/01 @ 15:04"))
	at(1, 40, "Pkts in:")
	at(58, 40, fmt.Sprint(s.in))
	at(1, 48, "Pkts out:")
	at(58, 48, fmt.Sprint(s.out))
	if s.hasBattery {
		at(1, 56, "Battery:")
		at(58, 56, fmt.Sprintf("%.0f%%", s.battery))
	} else {
		at(1, 56, "No battery (desktop)")
	}
}

func runSysinfo(ctx context.Context, d *displays) error {
	if err := d.oled.Invert(true); err != nil {
		return err
	}
	in := packetCounter{limit: 9999999}
	out := packetCounter{limit: 9999999}
	return every(ctx, d.interval, func() error {
		s := sampleSysinfo(&in, &out)
		s.draw(d.oled.Frame)
		return d.oled.Render()
	})
}

// banner renders text with a TrueType font, scrolling right to left.
type banner struct {
	dc   *gg.Context
	text string
	x    float64
}

func newBanner(bounds image.Rectangle, text string) (*banner, error) {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: float64(bounds.Dy()) * 0.6}))
	return &banner{dc: dc, text: text, x: float64(bounds.Dx())}, nil
}

// next draws the next frame and advances the text by step pixels.
func (b *banner) next(step float64) image.Image {
	w, h := float64(b.dc.Width()), float64(b.dc.Height())
	tw, _ := b.dc.MeasureString(b.text)
	b.dc.SetRGB(0, 0, 0)
	b.dc.Clear()
	b.dc.SetRGB(1, 1, 1)
	b.dc.DrawRectangle(0.5, 0.5, w-1, h-1)
	b.dc.Stroke()
	b.dc.DrawStringAnchored(b.text, b.x, h/2, 0, 0.35)
	if b.x -= step; b.x < -tw {
		b.x = w
	}
	return b.dc.Image()
}

func runBanner(ctx context.Context, d *displays) error {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "periph"
	}
	b, err := newBanner(d.oled.Bounds(), "Hello from "+hostname+"!")
	if err != nil {
		return err
	}
	return every(ctx, d.interval, func() error {
		return d.oled.Draw(d.oled.Bounds(), b.next(4), image.Point{})
	})
}
