// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/GermanBionicSystems/i2cdisplays/ht16k33"
	"github.com/shirou/gopsutil/v3/cpu"
	psnet "github.com/shirou/gopsutil/v3/net"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/mcp9808"
)

// bcd returns the packed binary coded decimal form of v, 0 to 9999.
func bcd(v int) uint16 {
	var r uint16
	for shift := 0; v > 0 && shift < 16; shift += 4 {
		r |= uint16(v%10) << shift
		v /= 10
	}
	return r
}

// setBCD shows the low digits of v, right aligned, starting at digit first.
func setBCD(d *ht16k33.Dev, v int, first int) {
	n := bcd(v)
	for digit := first; digit < ht16k33.Digits; digit++ {
		shift := 4 * (ht16k33.Digits - 1 - digit)
		d.SetNumber(int(n>>shift&0x0F), digit, false)
	}
}

func runCountdown(ctx context.Context, d *displays) error {
	count := 9999
	return every(ctx, d.interval, func() error {
		setBCD(d.digits, count, 0)
		if err := d.digits.Update(); err != nil {
			return err
		}
		if count--; count < 0 {
			return errDone
		}
		return nil
	})
}

func runCPU(ctx context.Context, d *displays) error {
	if err := d.digits.SetBrightness(2); err != nil {
		return err
	}
	return every(ctx, d.interval, func() error {
		v, err := cpu.Percent(0, false)
		if err != nil || len(v) == 0 {
			log.Printf("cpu: %v", err)
			return nil
		}
		setBCD(d.digits, int(v[0]), 1)
		return d.digits.Update()
	})
}

// packetCounter counts packets since its first sample, restarting from 0
// past limit.
type packetCounter struct {
	limit  uint64
	start  uint64
	inited bool
}

func (p *packetCounter) sample(total uint64) int {
	if !p.inited {
		p.start, p.inited = total, true
	}
	n := total - p.start
	if n > p.limit {
		p.start, n = total, 0
	}
	return int(n)
}

func runNetwork(ctx context.Context, d *displays) error {
	p := packetCounter{limit: 9999}
	return every(ctx, d.interval, func() error {
		all, err := psnet.IOCounters(false)
		if err != nil || len(all) == 0 {
			log.Printf("network: %v", err)
			return nil
		}
		setBCD(d.digits, p.sample(all[0].PacketsRecv), 0)
		return d.digits.Update()
	})
}

func runClock(ctx context.Context, d *displays) error {
	return every(ctx, d.interval, func() error {
		now := time.Now()
		d.digits.Print(fmt.Sprintf("%2d%02d", now.Hour(), now.Minute()))
		d.digits.SetColon(now.Second()%2 == 0)
		return d.digits.Update()
	})
}

// temperature formats t in °C for four digits.
func temperature(t physic.Temperature) string {
	c := t.Celsius()
	if c <= -10 || c >= 100 {
		return fmt.Sprintf("%.0f°", math.Max(-99, math.Min(c, 999)))
	}
	return fmt.Sprintf("%.1f°", c)
}

func runTemperature(ctx context.Context, d *displays) error {
	sensor, err := mcp9808.New(d.bus, &mcp9808.DefaultOpts)
	if err != nil {
		return fmt.Errorf("mcp9808: %w", err)
	}
	defer sensor.Halt()
	return every(ctx, d.interval, func() error {
		var e physic.Env
		if err := sensor.Sense(&e); err != nil {
			return err
		}
		d.digits.Print(temperature(e.Temperature))
		return d.digits.Update()
	})
}
