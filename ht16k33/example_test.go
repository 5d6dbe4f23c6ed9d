// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ht16k33_test

import (
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/i2cdisplays/ht16k33"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := ht16k33.NewI2C(b, &ht16k33.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()

	if err := dev.SetBrightness(4); err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		now := time.Now()
		dev.Print(fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute()))
		if err := dev.Update(); err != nil {
			log.Fatal(err)
		}
		time.Sleep(time.Second)
	}
}

func ExampleDev_SetNumber() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := ht16k33.NewI2C(b, &ht16k33.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	// Show 12.5, blinking at 1Hz.
	dev.SetNumber(1, 1, false)
	dev.SetNumber(2, 2, true)
	dev.SetNumber(5, 3, false)
	if err := dev.SetBlinkRate(ht16k33.BlinkOneHz); err != nil {
		log.Fatal(err)
	}
	if err := dev.Update(); err != nil {
		log.Fatal(err)
	}
}
