// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import "fmt"

// displayState is the software shadow of the controller's internal
// configuration and address counter. Every mutation is paired by the facade
// with the matching wire command, so software and hardware never diverge
// without an explicit resync.
type displayState struct {
	dataWidth   DataWidth
	lineMode    LineMode
	font        Font
	displayOn   bool
	cursorOn    bool
	cursorBlink bool
	direction   MoveDirection
	shiftType   ShiftType
	// col/row only track a DDRAM position; while ramType is CGRAM the
	// address counter points into glyph memory and the pair is stale.
	col     int
	row     int
	offset  int
	ramType RAMType
}

// lineCapacity is the number of addressable cells per row: a single 80 cell
// row in one-line mode, two 40 cell rows in two-line mode (the second row
// starts at DDRAM address 0x40).
func (st *displayState) lineCapacity() int {
	if st.lineMode == OneLine {
		return 80
	}
	return 40
}

func (st *displayState) rowCount() int {
	if st.lineMode == OneLine {
		return 1
	}
	return 2
}

func (st *displayState) setLineMode(line LineMode) {
	if line == TwoLine && st.font == Font5x11 {
		panic("lcd1602: two-line mode cannot be combined with the 5x11 font")
	}
	st.lineMode = line
}

func (st *displayState) setFont(font Font) {
	if font == Font5x11 && st.lineMode == TwoLine {
		panic("lcd1602: the 5x11 font cannot be combined with two-line mode")
	}
	st.font = font
}

func (st *displayState) setCursorPos(col, row int) {
	if col < 0 || col >= st.lineCapacity() || row < 0 || row >= st.rowCount() {
		panic(fmt.Sprintf("lcd1602: cursor position (%d,%d) out of range for %d x %d",
			col, row, st.lineCapacity(), st.rowCount()))
	}
	st.col, st.row = col, row
}

func (st *displayState) cursorPos() (col, row int) {
	if st.ramType != DDRAM {
		panic("lcd1602: address counter is in CGRAM, reposition with SetCursorPos first")
	}
	return st.col, st.row
}

func (st *displayState) setDisplayOffset(offset int) {
	if offset < 0 || offset >= st.lineCapacity() {
		panic(fmt.Sprintf("lcd1602: display offset %d out of range, must be below %d",
			offset, st.lineCapacity()))
	}
	st.offset = offset
}

// stepCursor advances the shadowed cursor the way the controller's address
// counter auto-steps after a RAM transfer: wrapping to the other row in
// two-line mode, wrapping within the single row in one-line mode. Cursor-only
// shifts follow the same rule.
func (st *displayState) stepCursor(dir MoveDirection) {
	capacity := st.lineCapacity()
	col, row := st.cursorPos()

	switch dir {
	case LeftToRight:
		col++
		if col == capacity {
			col = 0
			row = st.otherRow(row)
		}
	case RightToLeft:
		col--
		if col < 0 {
			col = capacity - 1
			row = st.otherRow(row)
		}
	}
	st.setCursorPos(col, row)
}

func (st *displayState) otherRow(row int) int {
	if st.lineMode == OneLine {
		return 0
	}
	return 1 - row
}

// shift mirrors an explicit cursor/display shift command: cursor-only moves
// the shadowed cursor one step, cursor-and-display moves the window offset by
// one column modulo the line capacity.
func (st *displayState) shift(shift ShiftType, dir MoveDirection) {
	if shift == CursorOnly {
		st.stepCursor(dir)
		return
	}
	capacity := st.lineCapacity()
	switch dir {
	case LeftToRight:
		st.setDisplayOffset((st.offset + 1) % capacity)
	case RightToLeft:
		st.setDisplayOffset((st.offset + capacity - 1) % capacity)
	}
}

// calcPosByOffset computes the wrapped destination of a signed (dx, dy) move
// from pos. In two-line mode a column carry past either row edge flips the
// row, like a two-digit ripple adder in base lineCapacity modulo 2 rows.
func (st *displayState) calcPosByOffset(col, row, dx, dy int) (int, int) {
	capacity := st.lineCapacity()
	if dx <= -capacity || dx >= capacity {
		panic(fmt.Sprintf("lcd1602: column offset %d out of range, magnitude must be below %d", dx, capacity))
	}
	if st.lineMode == OneLine {
		if dy != 0 {
			panic("lcd1602: row offset must be 0 in one-line mode")
		}
	} else if dy < -1 || dy > 1 {
		panic("lcd1602: row offset magnitude must be at most 1 in two-line mode")
	}

	carry := 0
	col += dx
	if col < 0 {
		col += capacity
		carry = -1
	} else if col >= capacity {
		col -= capacity
		carry = 1
	}

	rows := st.rowCount()
	row = ((row+dy+carry)%rows + rows) % rows
	return col, row
}
