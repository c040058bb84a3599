// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import "time"

// Sender realizes a Command on a physical bus. Implementations drive the
// controller's handshake (enable strobing, nibble splitting, latch cycling)
// and panic on any pin or bus fault.
type Sender interface {
	// Send performs one transfer. For Read commands the returned byte is the
	// value sampled from the controller; for writes it is zero.
	Send(c Command) byte
	// DataWidth reports the bus width the wiring imposes.
	DataWidth() DataWidth
	// SetBacklight switches the backlight on transports that control one and
	// silently no-ops elsewhere.
	SetBacklight(on bool)
	// Backlight reports the backlight state. Transports that cannot report
	// one return true.
	Backlight() bool
}

// Delayer is the blocking sleep capability the driver uses for fixed command
// delays and busy-flag poll intervals. The zero behavior callers want in
// production is real sleeping; tests substitute a no-op.
type Delayer interface {
	Delay(d time.Duration)
}

type sleepDelayer struct{}

func (sleepDelayer) Delay(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

func isBusy(s Sender) bool {
	return bitIsSet(s.Send(readBusyFlagAndAddress()), 7)
}

// waitForIdle polls the busy flag, sleeping pollInterval between polls. This
// is the driver's only spin point.
func waitForIdle(s Sender, d Delayer, pollInterval time.Duration) {
	for isBusy(s) {
		d.Delay(pollInterval)
	}
}

func delayThenSend(s Sender, d Delayer, c Command, wait time.Duration) byte {
	d.Delay(wait)
	return s.Send(c)
}

func waitThenSend(s Sender, d Delayer, c Command, pollInterval time.Duration) byte {
	waitForIdle(s, d, pollInterval)
	return s.Send(c)
}
