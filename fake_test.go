// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import (
	"testing"
	"time"
)

// fakeSender records every Command and serves scripted read results, so
// facade and animation behavior can be asserted without hardware.
type fakeSender struct {
	width DataWidth
	sent  []Command
	// busyPolls is how many busy-flag reads report busy before idle.
	busyPolls int
	// reads holds scripted results for data-register reads.
	reads []byte
	bl    bool
}

func (f *fakeSender) Send(c Command) byte {
	f.sent = append(f.sent, c)
	if c.RW != Read {
		return 0
	}
	if c.RS == RegCommand {
		if f.busyPolls > 0 {
			f.busyPolls--
			return 0x80
		}
		return 0
	}
	if len(f.reads) == 0 {
		return 0
	}
	b := f.reads[0]
	f.reads = f.reads[1:]
	return b
}

func (f *fakeSender) DataWidth() DataWidth { return f.width }

func (f *fakeSender) SetBacklight(on bool) { f.bl = on }

func (f *fakeSender) Backlight() bool { return f.bl }

// writes returns the recorded commands with busy-flag polls filtered out.
func (f *fakeSender) writes() []Command {
	var out []Command
	for _, c := range f.sent {
		if c.RW == Read && c.RS == RegCommand {
			continue
		}
		out = append(out, c)
	}
	return out
}

// dataBytes returns the payloads of the recorded data-register writes.
func (f *fakeSender) dataBytes() []byte {
	var out []byte
	for _, c := range f.sent {
		if c.RS == RegData && c.RW == Write {
			out = append(out, c.Data)
		}
	}
	return out
}

// replayDDRAM replays the recorded command stream into a DDRAM image,
// following set-address commands and the given auto-step direction.
func (f *fakeSender) replayDDRAM(dir MoveDirection) map[byte]byte {
	ram := make(map[byte]byte)
	addr := byte(0)
	for _, c := range f.sent {
		switch {
		case c.RS == RegCommand && c.RW == Write && c.Data >= 0x80:
			addr = c.Data & 0x7f
		case c.RS == RegData && c.RW == Write:
			ram[addr] = c.Data
			if dir == LeftToRight {
				addr++
			} else {
				addr--
			}
		}
	}
	return ram
}

type noDelay struct{}

func (noDelay) Delay(time.Duration) {}

func testLcd(t *testing.T, width DataWidth, cfg Config) (*Lcd, *fakeSender) {
	t.Helper()
	f := &fakeSender{width: width}
	cfg.Delayer = noDelay{}
	l := New(f, cfg)
	// Drop the init traffic so tests only see their own commands.
	f.sent = nil
	return l, f
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
