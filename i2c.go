// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// PCF8574 backpack latch layout, P0..P7:
// RS, RW, EN, backlight, DB4, DB5, DB6, DB7.
const (
	latchRS        = 0
	latchRW        = 1
	latchEN        = 2
	latchBacklight = 3
)

// DefaultI2CAddress is the address PCF8574 backpacks ship with.
const DefaultI2CAddress uint16 = 0x27

// I2CSender drives the controller through a PCF8574-style I2C backpack: an
// 8-bit latch exposing four data lines plus the control signals. Every nibble
// is clocked in by writing the latch three times, toggling the enable bit
// low, high, low.
//
// The backpack only wires DB4..DB7, so after the initialization handshake the
// transport is permanently 4-bit: the first command sent must be the 4-bit
// function-set bootstrap, and requesting an 8-bit bus ever is a protocol
// error.
type I2CSender struct {
	dev *i2c.Dev
	// booted flips after the bootstrap half-command has been clocked in.
	booted bool
	blOn   bool
}

// NewI2CSender wires an I2C backpack transport at the given address.
func NewI2CSender(bus i2c.Bus, addr uint16) *I2CSender {
	return &I2CSender{
		dev:  &i2c.Dev{Bus: bus, Addr: addr},
		blOn: true,
	}
}

// DataWidth reports Bit4: the backpack has no DB0..DB3 lines.
func (s *I2CSender) DataWidth() DataWidth {
	return Bit4
}

// Send realizes one command transfer through the latch.
func (s *I2CSender) Send(c Command) byte {
	if !s.booted {
		s.bootstrap(c)
		return 0
	}
	if c.Width == Bit4 {
		panic("lcd1602: only the first command through the backpack is 4-bit")
	}

	if c.RW == Write {
		if c.RS == RegCommand && c.Data>>4 == 0b0011 {
			panic("lcd1602: the I2C backpack cannot switch the bus to 8-bit")
		}
		seq := [6]byte{}
		s.nibbleTriple(seq[0:3], c, c.Data>>4)
		s.nibbleTriple(seq[3:6], c, c.Data&0x0f)
		s.tx(seq[:], nil)
		return 0
	}
	return s.readByte(c)
}

// bootstrap clocks in the one 4-bit half-command a freshly reset controller
// needs to enter 4-bit mode. Anything else as the first command means the
// caller skipped initialization.
func (s *I2CSender) bootstrap(c Command) {
	if c.RW != Write || c.Width != Bit4 || c.RS != RegCommand || c.Data != 0b0010 {
		panic("lcd1602: first command through the backpack must be the 4-bit function-set bootstrap")
	}
	seq := [3]byte{}
	s.nibbleTriple(seq[:], c, c.Data)
	s.tx(seq[:], nil)
	s.booted = true
}

// nibbleTriple fills dst with the disable, enable, disable latch values that
// clock one nibble into the controller.
func (s *I2CSender) nibbleTriple(dst []byte, c Command, nibble byte) {
	base := nibble << 4
	if c.RS == RegData {
		base = setBit(base, latchRS)
	}
	if c.RW == Read {
		base = setBit(base, latchRW)
	}
	if s.blOn {
		base = setBit(base, latchBacklight)
	}
	dst[0] = clearBit(base, latchEN)
	dst[1] = setBit(base, latchEN)
	dst[2] = clearBit(base, latchEN)
}

// readByte reconstructs an 8-bit read from two latched probe cycles, high
// nibble first. The data bits are written high so the PCF8574's weak pull-ups
// let the controller drive them.
func (s *I2CSender) readByte(c Command) byte {
	seq := [6]byte{}
	s.nibbleTriple(seq[0:3], c, 0x0f)
	s.nibbleTriple(seq[3:6], c, 0x0f)

	var buf [1]byte
	// Raise enable and sample the latch while the controller presents the
	// high nibble, then cycle enable and sample again for the low nibble.
	s.tx(seq[0:2], buf[:])
	hi := buf[0]
	s.tx(seq[2:5], buf[:])
	lo := buf[0]
	s.tx(seq[5:6], nil)

	return hi&0xf0 | lo>>4
}

// SetBacklight drives the latch's backlight bit. The bit also rides along on
// every subsequent transfer, so the state persists across commands.
func (s *I2CSender) SetBacklight(on bool) {
	s.blOn = on
	idle := byte(0xf0)
	idle = setBit(idle, latchRW)
	if on {
		idle = setBit(idle, latchBacklight)
	}
	s.tx([]byte{idle}, nil)
}

// Backlight reads the backlight bit back from the latch.
func (s *I2CSender) Backlight() bool {
	var buf [1]byte
	s.tx(nil, buf[:])
	return bitIsSet(buf[0], latchBacklight)
}

func (s *I2CSender) tx(w, r []byte) {
	if err := s.dev.Tx(w, r); err != nil {
		panic(fmt.Sprintf("lcd1602: i2c %s: %v", s.dev, err))
	}
}

var _ Sender = &I2CSender{}
