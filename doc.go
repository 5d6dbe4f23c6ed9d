// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package i2cdisplays is a container for I²C display drivers.
//
// ssd1306 drives monochrome OLED panels and ht16k33 four digit
// seven-segment modules; both share the glyphs tables. termbus emulates
// both on a terminal and cmd/i2cdisplay runs demos on either.
package i2cdisplays
