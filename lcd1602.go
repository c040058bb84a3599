// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import (
	"fmt"
	"time"
)

// Commands outside the printable range the built-in font covers are rendered
// as the controller's solid block glyph.
const (
	minPrintable = 0x20
	maxPrintable = 0x7d
	blockGlyph   = 0xff
)

const defaultPollInterval = 10 * time.Microsecond

// Power-on settle delays from the datasheet's initialization flowchart. The
// busy flag is not readable until the repeated function-set handshake is
// done, so these two waits are fixed-duration.
const (
	settleAfterBoot   = 40 * time.Millisecond
	settleAfterRepeat = 40 * time.Microsecond
)

// Config holds the construction options for an Lcd. Start from
// DefaultConfig and override fields as needed; the combination is validated
// once, at construction.
type Config struct {
	Line LineMode
	Font Font

	DisplayOn   bool
	CursorOn    bool
	CursorBlink bool

	// Direction is the address counter's auto-step direction after a RAM
	// transfer. Shift selects whether explicit shift commands move only the
	// cursor or the display window too.
	Direction MoveDirection
	Shift     ShiftType

	BacklightOn bool

	// PollInterval is the sleep between busy-flag polls. Zero selects the
	// default.
	PollInterval time.Duration

	// Delayer provides the blocking sleeps. Nil selects time.Sleep.
	Delayer Delayer
}

// DefaultConfig returns the controller configuration matching a stock
// two-line LCD1602: display, cursor, blink and backlight on, left-to-right
// writing, cursor-only shifting.
func DefaultConfig() Config {
	return Config{
		Line:         TwoLine,
		Font:         Font5x8,
		DisplayOn:    true,
		CursorOn:     true,
		CursorBlink:  true,
		Direction:    LeftToRight,
		Shift:        CursorOnly,
		BacklightOn:  true,
		PollInterval: defaultPollInterval,
	}
}

// Lcd is the driver facade an application holds. It owns its Sender and its
// software shadow of the controller state exclusively; a display must not be
// driven by more than one Lcd.
type Lcd struct {
	sender       Sender
	delayer      Delayer
	state        displayState
	pollInterval time.Duration
}

// New validates cfg, runs the controller's initialization sequence over
// sender and returns a ready driver.
func New(sender Sender, cfg Config) *Lcd {
	if cfg.Line == TwoLine && cfg.Font == Font5x11 {
		panic("lcd1602: two-line mode cannot be combined with the 5x11 font")
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.Delayer == nil {
		cfg.Delayer = sleepDelayer{}
	}

	l := &Lcd{
		sender:       sender,
		delayer:      cfg.Delayer,
		pollInterval: cfg.PollInterval,
		state: displayState{
			dataWidth:   sender.DataWidth(),
			lineMode:    cfg.Line,
			font:        cfg.Font,
			displayOn:   cfg.DisplayOn,
			cursorOn:    cfg.CursorOn,
			cursorBlink: cfg.CursorBlink,
			direction:   cfg.Direction,
			shiftType:   cfg.Shift,
		},
	}
	l.init(cfg.BacklightOn)
	return l
}

// init follows the datasheet's power-on flowchart. The controller may still
// be mid reset, so the function set is repeated with fixed delays before the
// busy flag becomes trustworthy for the common tail.
func (l *Lcd) init(backlight bool) {
	st := &l.state
	switch st.dataWidth {
	case Bit4:
		delayThenSend(l.sender, l.delayer, halfFunctionSet(), settleAfterBoot)
		fs := functionSet(Bit4, st.lineMode, st.font)
		delayThenSend(l.sender, l.delayer, fs, settleAfterRepeat)
		delayThenSend(l.sender, l.delayer, fs, settleAfterRepeat)
	case Bit8:
		fs := functionSet(Bit8, st.lineMode, st.font)
		delayThenSend(l.sender, l.delayer, fs, settleAfterBoot)
		delayThenSend(l.sender, l.delayer, fs, settleAfterRepeat)
	}

	l.send(displayOnOff(st.displayOn, st.cursorOn, st.cursorBlink))
	l.send(clearDisplay())
	l.send(entryModeSet(st.direction, st.shiftType))
	l.sender.SetBacklight(backlight)
}

// send waits for the controller to go idle and performs one transfer.
func (l *Lcd) send(c Command) byte {
	return waitThenSend(l.sender, l.delayer, c, l.pollInterval)
}

func (l *Lcd) delay(d time.Duration) {
	l.delayer.Delay(d)
}

// WriteByte writes one raw byte to DDRAM at the cursor and steps the shadowed
// cursor the way the controller's address counter auto-steps. The address
// counter must currently target DDRAM.
func (l *Lcd) WriteByte(b byte) {
	if l.state.ramType != DDRAM {
		panic("lcd1602: address counter is in CGRAM, reposition with SetCursorPos first")
	}
	l.send(writeDataToRAM(b))
	l.state.stepCursor(l.state.direction)
}

// ReadByte reads one byte from RAM at the address counter. In DDRAM the
// shadowed cursor auto-steps like the hardware counter; in CGRAM the counter
// moves through glyph memory and the cursor shadow is untouched.
func (l *Lcd) ReadByte() byte {
	b := l.send(readDataFromRAM())
	if l.state.ramType == DDRAM {
		l.state.stepCursor(l.state.direction)
	}
	return b
}

// WriteChar writes one character at the cursor. Characters the controller's
// built-in font does not cover (outside ASCII 0x20..0x7D) render as the solid
// block glyph.
func (l *Lcd) WriteChar(r rune) {
	l.WriteByte(charToByte(r))
}

func charToByte(r rune) byte {
	if r >= minPrintable && r <= maxPrintable {
		return byte(r)
	}
	return blockGlyph
}

// WriteByteAt writes a raw byte at the given cell and restores the cursor,
// so the operation is position neutral for the caller.
func (l *Lcd) WriteByteAt(b byte, col, row int) {
	origCol, origRow := l.state.cursorPos()
	l.SetCursorPos(col, row)
	l.WriteByte(b)
	l.SetCursorPos(origCol, origRow)
}

// ReadByteAt reads the byte at the given cell and restores the cursor.
func (l *Lcd) ReadByteAt(col, row int) byte {
	origCol, origRow := l.state.cursorPos()
	l.SetCursorPos(col, row)
	b := l.ReadByte()
	l.SetCursorPos(origCol, origRow)
	return b
}

// WriteCharAt moves the cursor to the given cell and writes one character,
// leaving the cursor stepped past it.
func (l *Lcd) WriteCharAt(r rune, col, row int) {
	l.SetCursorPos(col, row)
	l.WriteChar(r)
}

// WriteStringAt moves the cursor to the given cell and writes text from
// there.
func (l *Lcd) WriteStringAt(text string, col, row int) {
	l.SetCursorPos(col, row)
	for _, r := range text {
		l.WriteChar(r)
	}
}

// DefineGlyph programs one of the 8 CGRAM glyph slots with an 8 row pattern,
// top row first. Only the low 5 bits of each row are displayable. The address
// counter is left in CGRAM; reposition with SetCursorPos before writing text.
//
// CGRAM patterns are always laid out top to bottom, so a right-to-left
// writing direction is flipped for the duration of the burst and restored.
func (l *Lcd) DefineGlyph(index int, pattern [8]byte) {
	if index < 0 || index > 7 {
		panic(fmt.Sprintf("lcd1602: glyph index %d out of range, CGRAM has 8 slots", index))
	}
	for _, row := range pattern {
		if row >= 1<<5 {
			panic(fmt.Sprintf("lcd1602: glyph row 0x%02x wider than 5 bits", row))
		}
	}

	flipped := l.state.direction == RightToLeft
	if flipped {
		l.SetDirection(LeftToRight)
	}

	l.SetCGRAMAddr(index << 3)
	for _, row := range pattern {
		l.send(writeDataToRAM(row))
	}

	if flipped {
		l.SetDirection(RightToLeft)
	}
}

// ReadGlyph reads back the 8 row pattern of a CGRAM glyph slot.
func (l *Lcd) ReadGlyph(index int) [8]byte {
	if index < 0 || index > 7 {
		panic(fmt.Sprintf("lcd1602: glyph index %d out of range, CGRAM has 8 slots", index))
	}
	l.SetCGRAMAddr(index << 3)
	var pattern [8]byte
	for i := range pattern {
		pattern[i] = l.ReadByte()
	}
	return pattern
}

// WriteGlyph writes CGRAM glyph number index at the cursor.
func (l *Lcd) WriteGlyph(index int) {
	if index < 0 || index > 7 {
		panic(fmt.Sprintf("lcd1602: glyph index %d out of range, CGRAM has 8 slots", index))
	}
	l.WriteByte(byte(index))
}

// WriteGlyphAt writes CGRAM glyph number index at the given cell and restores
// the cursor.
func (l *Lcd) WriteGlyphAt(index, col, row int) {
	if index < 0 || index > 7 {
		panic(fmt.Sprintf("lcd1602: glyph index %d out of range, CGRAM has 8 slots", index))
	}
	l.WriteByteAt(byte(index), col, row)
}

// SetCursorPos moves the cursor to a (column, row) DDRAM cell. It also
// retargets the address counter at DDRAM after CGRAM programming.
func (l *Lcd) SetCursorPos(col, row int) {
	l.state.ramType = DDRAM
	l.state.setCursorPos(col, row)
	// The second row starts at DDRAM address 0x40.
	l.send(setDDRAMAddr(byte(row*0x40 + col)))
}

// CursorPos reports the shadowed cursor cell.
func (l *Lcd) CursorPos() (col, row int) {
	return l.state.cursorPos()
}

// OffsetCursorPos moves the cursor by a signed (dx, dy), wrapping over the
// row edges the way the address counter does.
func (l *Lcd) OffsetCursorPos(dx, dy int) {
	col, row := l.state.cursorPos()
	l.SetCursorPos(l.state.calcPosByOffset(col, row, dx, dy))
}

// SetCGRAMAddr retargets the address counter at a CGRAM address.
func (l *Lcd) SetCGRAMAddr(addr int) {
	if addr < 0 || addr >= 1<<6 {
		panic(fmt.Sprintf("lcd1602: CGRAM address %d out of range", addr))
	}
	l.state.ramType = CGRAM
	l.send(setCGRAMAddr(byte(addr)))
}

// Shift issues one explicit shift command: cursor-only moves the cursor one
// step, cursor-and-display scrolls the visible window one column.
func (l *Lcd) Shift(shift ShiftType, dir MoveDirection) {
	l.state.shift(shift, dir)
	l.send(cursorOrDisplayShift(shift, dir))
}

// SetLine reconfigures the line layout. Two-line mode is incompatible with
// the 5x11 font.
func (l *Lcd) SetLine(line LineMode) {
	l.state.setLineMode(line)
	l.send(functionSet(l.state.dataWidth, l.state.lineMode, l.state.font))
}

// Line reports the configured line layout.
func (l *Lcd) Line() LineMode {
	return l.state.lineMode
}

// SetFont reconfigures the character cell font. The 5x11 font is incompatible
// with two-line mode.
func (l *Lcd) SetFont(font Font) {
	l.state.setFont(font)
	l.send(functionSet(l.state.dataWidth, l.state.lineMode, l.state.font))
}

// Font reports the configured font.
func (l *Lcd) Font() Font {
	return l.state.font
}

func (l *Lcd) setDisplayOn(on bool) {
	l.state.displayOn = on
	l.sendDisplayOnOff()
}

// DisplayOn reports whether the display is switched on.
func (l *Lcd) DisplayOn() bool {
	return l.state.displayOn
}

// ToggleDisplay flips the display on or off. The backlight is unaffected.
func (l *Lcd) ToggleDisplay() {
	l.setDisplayOn(!l.state.displayOn)
}

// SetCursorVisible switches the underline cursor on or off.
func (l *Lcd) SetCursorVisible(on bool) {
	l.state.cursorOn = on
	l.sendDisplayOnOff()
}

// CursorVisible reports whether the underline cursor is shown.
func (l *Lcd) CursorVisible() bool {
	return l.state.cursorOn
}

// SetCursorBlink switches cursor cell blinking on or off.
func (l *Lcd) SetCursorBlink(on bool) {
	l.state.cursorBlink = on
	l.sendDisplayOnOff()
}

// CursorBlink reports whether the cursor cell blinks.
func (l *Lcd) CursorBlink() bool {
	return l.state.cursorBlink
}

func (l *Lcd) sendDisplayOnOff() {
	l.send(displayOnOff(l.state.displayOn, l.state.cursorOn, l.state.cursorBlink))
}

// SetDirection sets the address counter's auto-step direction.
func (l *Lcd) SetDirection(dir MoveDirection) {
	l.state.direction = dir
	l.sendEntryMode()
}

// Direction reports the auto-step direction.
func (l *Lcd) Direction() MoveDirection {
	return l.state.direction
}

// SetShiftType selects whether explicit shifts move only the cursor or drag
// the display window.
func (l *Lcd) SetShiftType(shift ShiftType) {
	l.state.shiftType = shift
	l.sendEntryMode()
}

// ShiftType reports the configured shift type.
func (l *Lcd) ShiftType() ShiftType {
	return l.state.shiftType
}

func (l *Lcd) sendEntryMode() {
	l.send(entryModeSet(l.state.direction, l.state.shiftType))
}

// SetBacklight switches the backlight on transports that control one.
func (l *Lcd) SetBacklight(on bool) {
	l.sender.SetBacklight(on)
}

// BacklightOn reports the backlight state, or true on transports that cannot
// report one.
func (l *Lcd) BacklightOn() bool {
	return l.sender.Backlight()
}

// SetPollInterval changes the sleep between busy-flag polls.
func (l *Lcd) SetPollInterval(d time.Duration) {
	l.pollInterval = d
}

// PollInterval reports the sleep between busy-flag polls.
func (l *Lcd) PollInterval() time.Duration {
	return l.pollInterval
}

// LineCapacity reports the number of addressable cells per row.
func (l *Lcd) LineCapacity() int {
	return l.state.lineCapacity()
}

// DisplayOffset reports the DDRAM column mapped to the leftmost visible
// position.
func (l *Lcd) DisplayOffset() int {
	return l.state.offset
}

// RAMType reports the address space the address counter currently targets.
func (l *Lcd) RAMType() RAMType {
	return l.state.ramType
}
