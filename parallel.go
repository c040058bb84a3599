// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Minimum width of the enable pulse. The controller latches the data lines on
// the falling edge.
const enablePulse = 2 * time.Microsecond

// ParallelSender drives the controller over its native parallel interface: a
// gpio.Group of 4 or 8 data lines plus discrete register-select, read/write
// and enable pins. An optional backlight pin may be supplied.
//
// In 4-bit wiring the group's lines map to DB4..DB7 and every byte travels as
// two strobed nibbles, high first. In 8-bit wiring the group maps to DB0..DB7
// and each transfer is a single strobe.
type ParallelSender struct {
	data  gpio.Group
	rs    gpio.PinOut
	rw    gpio.PinOut
	en    gpio.PinOut
	bl    gpio.PinOut
	width DataWidth
	mask  gpio.GPIOValue
	blOn  bool
}

// NewParallelSender wires a parallel transport. The data group must contain
// exactly 4 or 8 pins; any other count panics. bl may be nil when the
// backlight is hard-wired.
func NewParallelSender(data gpio.Group, rs, rw, en, bl gpio.PinOut) *ParallelSender {
	width := Bit4
	switch n := len(data.Pins()); n {
	case 4:
	case 8:
		width = Bit8
	default:
		panic(fmt.Sprintf("lcd1602: unsupported data pin count %d, need 4 or 8", n))
	}
	return &ParallelSender{
		data:  data,
		rs:    rs,
		rw:    rw,
		en:    en,
		bl:    bl,
		width: width,
		mask:  gpio.GPIOValue(1)<<len(data.Pins()) - 1,
		blOn:  true,
	}
}

// DataWidth reports the wired bus width.
func (p *ParallelSender) DataWidth() DataWidth {
	return p.width
}

// Send realizes one command transfer on the pins.
func (p *ParallelSender) Send(c Command) byte {
	p.pinOut(p.en, gpio.Low)
	p.pinOut(p.rs, gpio.Level(c.RS == RegData))
	p.pinOut(p.rw, gpio.Level(c.RW == Read))

	if c.RW == Write {
		p.write(c)
		return 0
	}
	return p.read()
}

func (p *ParallelSender) write(c Command) {
	switch p.width {
	case Bit4:
		if c.Width == Bit4 {
			if c.Data >= 1<<4 {
				panic(fmt.Sprintf("lcd1602: 4-bit payload 0x%02x wider than a nibble", c.Data))
			}
			p.strobe(c.Data)
			return
		}
		p.strobe(c.Data >> 4)
		p.strobe(c.Data & 0x0f)
	case Bit8:
		if c.Width != Bit8 {
			panic("lcd1602: 8-bit wiring carries no 4-bit command")
		}
		p.strobe(c.Data)
	}
}

func (p *ParallelSender) read() byte {
	if p.width == Bit8 {
		return byte(p.sample())
	}
	hi := byte(p.sample())
	lo := byte(p.sample())
	return hi<<4 | lo&0x0f
}

// strobe puts value on the data lines and pulses enable. The controller
// latches on the falling edge.
func (p *ParallelSender) strobe(value byte) {
	p.groupOut(gpio.GPIOValue(value))
	p.pinOut(p.en, gpio.High)
	time.Sleep(enablePulse)
	p.pinOut(p.en, gpio.Low)
}

// sample releases the data lines high so the controller can pull them, then
// latches one read cycle. The lines are quasi-bidirectional: reading a pin
// that is driven low from our side would only ever report low.
func (p *ParallelSender) sample() gpio.GPIOValue {
	p.groupOut(p.mask)
	p.pinOut(p.en, gpio.High)
	time.Sleep(enablePulse)
	v, err := p.data.Read(p.mask)
	if err != nil {
		panic(fmt.Sprintf("lcd1602: data line read: %v", err))
	}
	p.pinOut(p.en, gpio.Low)
	return v
}

// SetBacklight drives the backlight pin, or no-ops when none is wired.
func (p *ParallelSender) SetBacklight(on bool) {
	p.blOn = on
	if p.bl != nil {
		p.pinOut(p.bl, gpio.Level(on))
	}
}

// Backlight reports the last driven backlight state. Without a backlight pin
// it stays at the default, on.
func (p *ParallelSender) Backlight() bool {
	if p.bl == nil {
		return true
	}
	return p.blOn
}

func (p *ParallelSender) pinOut(pin gpio.PinOut, l gpio.Level) {
	if err := pin.Out(l); err != nil {
		panic(fmt.Sprintf("lcd1602: %s: %v", pin, err))
	}
}

func (p *ParallelSender) groupOut(v gpio.GPIOValue) {
	if err := p.data.Out(v, p.mask); err != nil {
		panic(fmt.Sprintf("lcd1602: data lines: %v", err))
	}
}

var _ Sender = &ParallelSender{}
