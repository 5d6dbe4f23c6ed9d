// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// i2cdisplay runs demonstration loops on a SSD1306 OLED and a HT16K33 four
// digit display sharing an I²C bus.
//
// Use -emulate to paint both displays on the terminal instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/GermanBionicSystems/i2cdisplays/ht16k33"
	"github.com/GermanBionicSystems/i2cdisplays/ssd1306"
	"github.com/GermanBionicSystems/i2cdisplays/termbus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// displays holds what a demo draws on.
type displays struct {
	bus      i2c.Bus
	oled     *ssd1306.Dev
	digits   *ht16k33.Dev
	interval time.Duration
}

type demo struct {
	help   string
	oled   bool
	digits bool
	run    func(ctx context.Context, d *displays) error
}

var demos = map[string]demo{
	"banner":      {help: "scroll TrueType text on the OLED", oled: true, run: runBanner},
	"boxes":       {help: "random rectangles on the OLED", oled: true, run: runBoxes},
	"clock":       {help: "HH:MM with a blinking colon", digits: true, run: runClock},
	"countdown":   {help: "count down from 9999 to 0", digits: true, run: runCountdown},
	"cpu":         {help: "CPU utilization in percent", digits: true, run: runCPU},
	"network":     {help: "received packets since start", digits: true, run: runNetwork},
	"sysinfo":     {help: "system information page on the OLED", oled: true, run: runSysinfo},
	"temperature": {help: "MCP9808 temperature in °C", digits: true, run: runTemperature},
}

// errDone ends a demo loop without error.
var errDone = errors.New("done")

// every calls f, then again after each interval, until ctx is done or f
// fails.
func every(ctx context.Context, interval time.Duration, f func() error) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		if err := f(); err != nil {
			if errors.Is(err, errDone) {
				return nil
			}
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func openBus(name string, emulate bool, opts *termbus.Opts) (i2c.BusCloser, error) {
	if emulate {
		opener := func() (i2c.BusCloser, error) {
			return termbus.New(opts), nil
		}
		if err := i2creg.Register("termbus", nil, -1, opener); err != nil {
			return nil, err
		}
		name = "termbus"
	} else if _, err := host.Init(); err != nil {
		return nil, err
	}
	return i2creg.Open(name)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: i2cdisplay [flags] <demo>\n\nDemos:\n")
	for _, name := range slices.Sorted(maps.Keys(demos)) {
		fmt.Fprintf(flag.CommandLine.Output(), "  %-12s %s\n", name, demos[name].help)
	}
	fmt.Fprintf(flag.CommandLine.Output(), "\nFlags:\n")
	flag.PrintDefaults()
}

func mainImpl() error {
	busName := flag.String("bus", "", "I²C bus to use")
	emulate := flag.Bool("emulate", false, "paint the displays on the terminal instead of using a bus")
	oledAddr := flag.Uint("oled", 0x3C, "SSD1306 I²C address")
	segAddr := flag.Uint("segment", 0x70, "HT16K33 I²C address")
	width := flag.Int("width", 128, "OLED width")
	height := flag.Int("height", 64, "OLED height")
	interval := flag.Duration("interval", 500*time.Millisecond, "delay between frames")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Usage = usage
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 1 {
		return errors.New("specify exactly one demo; see -help")
	}
	dm, ok := demos[flag.Arg(0)]
	if !ok {
		return fmt.Errorf("unknown demo %q", flag.Arg(0))
	}

	b, err := openBus(*busName, *emulate, &termbus.Opts{
		OLED:    uint16(*oledAddr),
		Segment: uint16(*segAddr),
		W:       *width,
		H:       *height,
	})
	if err != nil {
		return err
	}
	defer b.Close()
	log.Printf("using %s", b)

	d := &displays{bus: b, interval: *interval}
	if dm.oled {
		if d.oled, err = ssd1306.NewI2C(b, &ssd1306.Opts{W: *width, H: *height, Addr: uint16(*oledAddr)}); err != nil {
			return err
		}
		defer d.oled.Halt()
		log.Printf("%s", d.oled)
	}
	if dm.digits {
		if d.digits, err = ht16k33.NewI2C(b, &ht16k33.Opts{Addr: uint16(*segAddr)}); err != nil {
			return err
		}
		defer d.digits.Halt()
		log.Printf("%s", d.digits)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return dm.run(ctx, d)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "i2cdisplay: %s.\n", err)
		os.Exit(1)
	}
}
