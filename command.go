// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import "fmt"

// MoveDirection is the direction the address counter steps after a RAM
// transfer, and the direction of an explicit cursor or display shift.
type MoveDirection int

const (
	RightToLeft MoveDirection = iota
	LeftToRight
)

// ShiftType selects whether a shift moves only the cursor or drags the
// visible display window along with it.
type ShiftType int

const (
	CursorOnly ShiftType = iota
	CursorAndDisplay
)

// DataWidth is the width of the controller's data bus. It is fixed by the
// transport wiring: a Sender reports its width and the facade follows it.
type DataWidth int

const (
	Bit4 DataWidth = iota
	Bit8
)

// LineMode selects the one-line or two-line DDRAM layout. One-line mode
// addresses a single 80 cell row, two-line mode two rows of 40 cells with the
// second row starting at DDRAM address 0x40.
type LineMode int

const (
	OneLine LineMode = iota
	TwoLine
)

// Font selects the character cell size. The controller cannot combine the
// 5x11 font with two-line mode.
type Font int

const (
	Font5x8 Font = iota
	Font5x11
)

// RAMType is the address space the controller's address counter currently
// targets.
type RAMType int

const (
	// DDRAM is the display data RAM holding the character cells.
	DDRAM RAMType = iota
	// CGRAM is the character generator RAM holding 8 user glyph slots.
	CGRAM
)

// RegisterSelect is the controller register a Command targets, reflected on
// the RS line by the transport.
type RegisterSelect int

const (
	RegCommand RegisterSelect = iota
	RegData
)

// ReadWrite is the transfer direction of a Command, reflected on the RW line
// by the transport.
type ReadWrite int

const (
	Write ReadWrite = iota
	Read
)

// Command is a single wire-level transfer: register selection, transfer
// direction, payload width and payload. It is built by the command
// constructors below and consumed immediately by a Sender. Data is only
// meaningful for writes; Width is Bit4 solely for the 4-bit initialization
// bootstrap.
type Command struct {
	RS    RegisterSelect
	RW    ReadWrite
	Width DataWidth
	Data  byte
}

func clearDisplay() Command {
	return Command{RS: RegCommand, RW: Write, Width: Bit8, Data: 0b0000_0001}
}

func returnHome() Command {
	return Command{RS: RegCommand, RW: Write, Width: Bit8, Data: 0b0000_0010}
}

func entryModeSet(dir MoveDirection, shift ShiftType) Command {
	raw := byte(0b0000_0100)
	if dir == LeftToRight {
		raw = setBit(raw, 1)
	}
	if shift == CursorAndDisplay {
		raw = setBit(raw, 0)
	}
	return Command{RS: RegCommand, RW: Write, Width: Bit8, Data: raw}
}

func displayOnOff(display, cursor, blink bool) Command {
	raw := byte(0b0000_1000)
	if display {
		raw = setBit(raw, 2)
	}
	if cursor {
		raw = setBit(raw, 1)
	}
	if blink {
		raw = setBit(raw, 0)
	}
	return Command{RS: RegCommand, RW: Write, Width: Bit8, Data: raw}
}

func cursorOrDisplayShift(shift ShiftType, dir MoveDirection) Command {
	raw := byte(0b0001_0000)
	if shift == CursorAndDisplay {
		raw = setBit(raw, 3)
	}
	if dir == LeftToRight {
		raw = setBit(raw, 2)
	}
	return Command{RS: RegCommand, RW: Write, Width: Bit8, Data: raw}
}

// halfFunctionSet is not a datasheet command: it is the single-nibble first
// transfer that drops a freshly reset controller into 4-bit mode.
func halfFunctionSet() Command {
	return Command{RS: RegCommand, RW: Write, Width: Bit4, Data: 0b0010}
}

func functionSet(width DataWidth, line LineMode, font Font) Command {
	raw := byte(0b0010_0000)
	if width == Bit8 {
		raw = setBit(raw, 4)
	}
	if line == TwoLine {
		raw = setBit(raw, 3)
	}
	if font == Font5x11 {
		raw = setBit(raw, 2)
	}
	return Command{RS: RegCommand, RW: Write, Width: Bit8, Data: raw}
}

func setCGRAMAddr(addr byte) Command {
	if addr >= 1<<6 {
		panic(fmt.Sprintf("lcd1602: CGRAM address 0x%02x out of range", addr))
	}
	return Command{RS: RegCommand, RW: Write, Width: Bit8, Data: 0b0100_0000 | addr}
}

func setDDRAMAddr(addr byte) Command {
	if addr >= 1<<7 {
		panic(fmt.Sprintf("lcd1602: DDRAM address 0x%02x out of range", addr))
	}
	return Command{RS: RegCommand, RW: Write, Width: Bit8, Data: 0b1000_0000 | addr}
}

func readBusyFlagAndAddress() Command {
	return Command{RS: RegCommand, RW: Read, Width: Bit8}
}

func writeDataToRAM(b byte) Command {
	return Command{RS: RegData, RW: Write, Width: Bit8, Data: b}
}

func readDataFromRAM() Command {
	return Command{RS: RegData, RW: Read, Width: Bit8}
}
