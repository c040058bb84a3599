// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcd1602 drives HD44780-compatible character LCD controllers, the
// chipset found on the common LCD1602 and LCD4002 modules.
//
// The driver is split into a transport layer and a protocol layer. A Sender
// realizes the controller's electrical handshake on a concrete bus: either a
// parallel interface built from a gpio.Group of 4 or 8 data lines plus
// discrete control pins, or a PCF8574-style I2C backpack that latches the
// same signals behind a single bus address. The Lcd facade encodes logical
// instructions into the controller's command format, mirrors the controller's
// internal address counter in software so positioning never requires a
// hardware read, and layers animation effects (typewriter, split-flap,
// display-window scrolling) on top.
//
// Lcd implements display.TextDisplay, display.DisplayBacklight and
// conn.Resource.
//
// Hardware faults and caller contract violations (out-of-range addresses,
// invalid configuration combinations) are treated as unrecoverable and panic:
// the driver assumes working wiring as a precondition, and continuing after a
// failed transfer would leave the software shadow and the controller
// disagreeing about the cursor.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package lcd1602
