// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// This file adapts Lcd to the periph display interfaces. Positions on this
// surface are 1-based per display.TextDisplay; argument mistakes come back as
// errors rather than panics so conformance tooling can probe the limits.

// Clear clears the screen and homes the cursor. Per the datasheet the
// controller also resets its entry mode to increment, so a right-to-left
// direction is re-asserted to keep the shadow and the hardware in lockstep.
func (l *Lcd) Clear() error {
	l.send(clearDisplay())
	l.state.ramType = DDRAM
	l.state.setCursorPos(0, 0)
	l.state.offset = 0
	if l.state.direction == RightToLeft {
		l.sendEntryMode()
	}
	return nil
}

// Home moves the cursor to (0, 0) and scrolls the display window back to its
// unshifted position. DDRAM content is untouched.
func (l *Lcd) Home() error {
	l.send(returnHome())
	l.state.ramType = DDRAM
	l.state.setCursorPos(0, 0)
	l.state.offset = 0
	return nil
}

// Write writes raw DDRAM bytes at the cursor. Bytes pass through unmapped, so
// CGRAM glyph codes 0..7 are usable directly.
func (l *Lcd) Write(p []byte) (int, error) {
	for _, b := range p {
		l.WriteByte(b)
	}
	return len(p), nil
}

// WriteString writes text at the cursor, mapping characters outside the
// controller font's ASCII range to the solid block glyph.
func (l *Lcd) WriteString(text string) (int, error) {
	for _, r := range text {
		l.WriteChar(r)
	}
	return len(text), nil
}

// Cursor sets the cursor rendering mode. Multiple modes combine, e.g.
// Cursor(display.CursorUnderline, display.CursorBlink).
func (l *Lcd) Cursor(modes ...display.CursorMode) error {
	cursor, blink := false, false
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
		case display.CursorUnderline:
			cursor = true
		case display.CursorBlink, display.CursorBlock:
			blink = true
		default:
			return fmt.Errorf("lcd1602: unexpected cursor mode: %d", mode)
		}
	}
	l.state.cursorOn = cursor
	l.state.cursorBlink = blink
	l.sendDisplayOnOff()
	return nil
}

// Move steps the cursor one cell forward or backward.
func (l *Lcd) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		l.Shift(CursorOnly, LeftToRight)
	case display.Backward:
		l.Shift(CursorOnly, RightToLeft)
	default:
		return fmt.Errorf("lcd1602: %w", display.ErrNotImplemented)
	}
	return nil
}

// MoveTo moves the cursor to the 1-based (row, col) cell.
func (l *Lcd) MoveTo(row, col int) error {
	if row < l.MinRow() || row > l.Rows() || col < l.MinCol() || col > l.Cols() {
		return fmt.Errorf("lcd1602: MoveTo(%d,%d) out of range", row, col)
	}
	l.SetCursorPos(col-1, row-1)
	return nil
}

// MinRow returns the minimum 1-based row.
func (l *Lcd) MinRow() int {
	return 1
}

// MinCol returns the minimum 1-based column.
func (l *Lcd) MinCol() int {
	return 1
}

// Rows returns the number of display rows.
func (l *Lcd) Rows() int {
	return l.state.rowCount()
}

// Cols returns the number of addressable columns per row. On a 16 column
// module the columns beyond the glass are still writable and scroll into view
// with display shifts.
func (l *Lcd) Cols() int {
	return l.state.lineCapacity()
}

// AutoScroll couples the display window to the cursor: while enabled, every
// RAM write drags the window along, keeping the cursor at a fixed glass
// position.
func (l *Lcd) AutoScroll(enabled bool) error {
	if enabled {
		l.SetShiftType(CursorAndDisplay)
	} else {
		l.SetShiftType(CursorOnly)
	}
	return nil
}

// Display turns the display on or off. DDRAM content and the backlight are
// unaffected.
func (l *Lcd) Display(on bool) error {
	l.setDisplayOn(on)
	return nil
}

// Backlight sets the backlight: zero intensity is off, anything else on. The
// controller has no dimming.
func (l *Lcd) Backlight(intensity display.Intensity) error {
	l.SetBacklight(intensity > 0)
	return nil
}

// Halt clears the screen and turns the backlight and the display off.
func (l *Lcd) Halt() error {
	if err := l.Clear(); err != nil {
		return err
	}
	l.SetBacklight(false)
	l.setDisplayOn(false)
	return nil
}

func (l *Lcd) String() string {
	return fmt.Sprintf("lcd1602: %d x %d", l.Cols(), l.Rows())
}

var _ display.TextDisplay = &Lcd{}
var _ display.DisplayBacklight = &Lcd{}
var _ conn.Resource = &Lcd{}
