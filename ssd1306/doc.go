// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a monochrome OLED display via a SSD1306 controller
// over I²C.
//
// Drawing is done on a Frame, an in-memory copy of the controller's GDDRAM:
// points, lines, circles, rectangles and proportional text. None of the
// drawing calls touch the bus. Dev.Render sends the whole frame in a single
// I²C write; there is no differential update, every render costs W*H/8+1
// bytes on the bus.
//
// Drawing calls never fail. Coordinates outside the display are silently
// dropped so callers can draw partially off screen; Frame.Ignored counts the
// dropped calls.
//
// Dev also implements display.Drawer so any image.Image can be blitted with
// Dev.Draw, converted with image1bit.BitModel.
//
// Some boards expose a RES / Reset pin. If present, it must be normally be
// High. It can be used externally to this driver, if used, the driver must
// be reinstantiated.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
