// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import (
	"fmt"
	"time"
)

// FlipStyle selects how SplitFlapWrite animates its characters.
type FlipStyle int

const (
	// FlipSequential resolves one character at a time: each cell flips
	// through its whole byte range before the cursor advances to the next.
	FlipSequential FlipStyle = iota
	// FlipSimultaneous runs one shared flip scan across the whole string;
	// cells stop changing as soon as the scan passes their target character.
	FlipSimultaneous
)

// MoveStyle selects how ShiftDisplayToPos routes the display window to its
// target offset.
type MoveStyle int

const (
	// MoveForceLeft always shifts right-to-left, wrapping if needed.
	MoveForceLeft MoveStyle = iota
	// MoveForceRight always shifts left-to-right, wrapping if needed.
	MoveForceRight
	// MoveNoCrossBoundary moves straight toward the target without
	// considering the wraparound route.
	MoveNoCrossBoundary
	// MoveShortest picks whichever direction needs at most half the line
	// capacity, wrapping when that is shorter. On an exact tie it moves
	// left-to-right for targets ahead of the window and right-to-left for
	// targets behind it.
	MoveShortest
)

// TypewriterWrite writes text one character at a time, sleeping perChar
// before each one.
func (l *Lcd) TypewriterWrite(text string, perChar time.Duration) {
	for _, r := range text {
		l.delay(perChar)
		l.WriteChar(r)
	}
}

// SplitFlapWrite writes text with a mechanical split-flap effect, cycling
// each cell through the glyphs before its target character.
//
// maxFlip caps how many glyphs each cell flips through; 0 means the full run
// from space. perFlip is the delay per flip step. perChar gates entry into
// each character's flip loop and is required in FlipSequential style;
// FlipSimultaneous ignores it.
//
// Every character must be in ASCII 0x20..0x7D: the effect cycles through raw
// glyph codes and is undefined outside the controller font's ASCII range. The
// cursor is hidden during the effect and restored afterwards.
func (l *Lcd) SplitFlapWrite(text string, style FlipStyle, maxFlip int, perFlip, perChar time.Duration) {
	for _, r := range text {
		if r < minPrintable || r > maxPrintable {
			panic(fmt.Sprintf("lcd1602: split-flap character %q outside ASCII 0x20..0x7D", r))
		}
	}

	cursorHidden := false
	if l.CursorVisible() {
		l.SetCursorVisible(false)
		cursorHidden = true
	}

	switch style {
	case FlipSequential:
		l.splitFlapSequential(text, maxFlip, perFlip, perChar)
	case FlipSimultaneous:
		l.splitFlapSimultaneous(text, maxFlip, perFlip)
	}

	if cursorHidden {
		l.SetCursorVisible(true)
	}
}

func (l *Lcd) splitFlapSequential(text string, maxFlip int, perFlip, perChar time.Duration) {
	if perChar == 0 {
		panic("lcd1602: sequential split-flap needs a per-character delay")
	}
	for _, r := range text {
		target := byte(r)
		start := byte(minPrintable)
		if maxFlip > 0 && int(target)-maxFlip > minPrintable {
			start = target - byte(maxFlip)
		}

		col, row := l.CursorPos()
		l.delay(perChar)
		for b := start; b <= target; b++ {
			l.delay(perFlip)
			l.WriteByteAt(b, col, row)
		}
		l.Shift(CursorOnly, l.Direction())
	}
}

func (l *Lcd) splitFlapSimultaneous(text string, maxFlip int, perFlip time.Duration) {
	targets := []byte(text)
	minB, maxB := targets[0], targets[0]
	for _, t := range targets {
		if t < minB {
			minB = t
		}
		if t > maxB {
			maxB = t
		}
	}

	start := byte(minPrintable)
	switch {
	case maxFlip == 0:
	case int(maxB)-int(minB) > maxFlip:
		start = minB
	case int(maxB)-maxFlip < minPrintable:
	default:
		start = maxB - byte(maxFlip)
	}

	startCol, startRow := l.CursorPos()
	for b := start; b <= maxB; b++ {
		l.delay(perFlip)
		for i, target := range targets {
			// Cells whose target the scan has passed are already settled.
			if target < b {
				continue
			}
			col, row := l.state.calcPosByOffset(startCol, startRow, l.dirSign(i), 0)
			l.WriteByteAt(b, col, row)
		}
	}

	// The filtered scan leaves the last touched cell ambiguous, so the final
	// cursor cell is computed from the string length instead.
	l.SetCursorPos(l.state.calcPosByOffset(startCol, startRow, l.dirSign(len(targets)), 0))
}

func (l *Lcd) dirSign(n int) int {
	if l.Direction() == RightToLeft {
		return -n
	}
	return n
}

// ShiftDisplayToPos scrolls the display window to the target offset, one
// column per step with perStep delay between steps, producing a smooth scroll
// rather than a jump. displayOn selects whether the display stays visible
// while scrolling; the previous display state is restored afterwards. No-op
// when the window is already there.
func (l *Lcd) ShiftDisplayToPos(target int, style MoveStyle, displayOn bool, perStep time.Duration) {
	before := l.DisplayOffset()
	if before == target {
		return
	}
	capacity := l.LineCapacity()
	if target < 0 || target >= capacity {
		panic(fmt.Sprintf("lcd1602: display offset %d out of range, must be below %d", target, capacity))
	}

	wasOn := l.DisplayOn()
	l.setDisplayOn(displayOn)

	var distance int
	var dir MoveDirection
	switch style {
	case MoveForceLeft:
		dir = RightToLeft
		if target < before {
			distance = before - target
		} else {
			distance = capacity - (target - before)
		}
	case MoveForceRight:
		dir = LeftToRight
		if target > before {
			distance = target - before
		} else {
			distance = capacity - (before - target)
		}
	case MoveNoCrossBoundary:
		if target > before {
			distance, dir = target-before, LeftToRight
		} else {
			distance, dir = before-target, RightToLeft
		}
	case MoveShortest:
		if target > before {
			if target-before <= capacity/2 {
				distance, dir = target-before, LeftToRight
			} else {
				distance, dir = capacity-(target-before), RightToLeft
			}
		} else {
			if before-target <= capacity/2 {
				distance, dir = before-target, RightToLeft
			} else {
				distance, dir = capacity-(before-target), LeftToRight
			}
		}
	}

	for i := 0; i < distance; i++ {
		l.delay(perStep)
		l.Shift(CursorAndDisplay, dir)
	}

	l.setDisplayOn(wasOn)
}

// FullDisplayBlink toggles the whole display on and off 2*count times with
// the given interval between toggles. count 0 blinks forever; callers needing
// to regain control must pass a positive count.
func (l *Lcd) FullDisplayBlink(count int, interval time.Duration) {
	if count == 0 {
		for {
			l.delay(interval)
			l.ToggleDisplay()
		}
	}
	for i := 0; i < 2*count; i++ {
		l.delay(interval)
		l.ToggleDisplay()
	}
}
