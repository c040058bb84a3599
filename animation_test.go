// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type recordingDelay struct {
	ds []time.Duration
}

func (r *recordingDelay) Delay(d time.Duration) {
	r.ds = append(r.ds, d)
}

func TestTypewriterWrite(t *testing.T) {
	f := &fakeSender{width: Bit8}
	rec := &recordingDelay{}
	cfg := DefaultConfig()
	cfg.Delayer = rec
	l := New(f, cfg)
	f.sent = nil
	rec.ds = nil

	l.TypewriterWrite("Hi", 5*time.Millisecond)
	if got := f.dataBytes(); !bytes.Equal(got, []byte("Hi")) {
		t.Errorf("data bytes = %q, want \"Hi\"", got)
	}
	if len(rec.ds) != 2 || rec.ds[0] != 5*time.Millisecond {
		t.Errorf("delays = %v, want two of 5ms", rec.ds)
	}
}

func TestSplitFlapSequential(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	l.SplitFlapWrite("D", FlipSequential, 3, time.Millisecond, time.Millisecond)

	// Cursor off, the flip run 'A'..'D' in place, one cursor step, cursor
	// back on.
	if got, want := f.dataBytes(), []byte{'A', 'B', 'C', 'D'}; !bytes.Equal(got, want) {
		t.Errorf("flip run = %q, want %q", got, want)
	}
	if ram := f.replayDDRAM(LeftToRight); ram[0] != 'D' {
		t.Errorf("DDRAM[0] = 0x%02x, want 'D'", ram[0])
	}
	if col, row := l.CursorPos(); col != 1 || row != 0 {
		t.Errorf("cursor after effect = (%d,%d), want (1,0)", col, row)
	}

	w := f.writes()
	if w[0].Data != 0x0d {
		t.Errorf("first command = 0x%02x, want cursor-off 0x0d", w[0].Data)
	}
	if last := w[len(w)-1]; last.Data != 0x0f {
		t.Errorf("last command = 0x%02x, want cursor restored 0x0f", last.Data)
	}
	if !l.CursorVisible() {
		t.Error("cursor visibility not restored")
	}
}

func TestSplitFlapSequentialFullRun(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	l.SplitFlapWrite("!", FlipSequential, 0, 0, time.Millisecond)
	if got, want := f.dataBytes(), []byte{' ', '!'}; !bytes.Equal(got, want) {
		t.Errorf("flip run = %q, want %q", got, want)
	}
}

func TestSplitFlapSequentialNeedsPerChar(t *testing.T) {
	l, _ := testLcd(t, Bit8, DefaultConfig())
	mustPanic(t, "sequential flip without per-character delay", func() {
		l.SplitFlapWrite("A", FlipSequential, 0, time.Millisecond, 0)
	})
}

func TestSplitFlapSimultaneous(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	l.SplitFlapWrite("AB", FlipSimultaneous, 0, time.Millisecond, 0)

	ram := f.replayDDRAM(LeftToRight)
	if ram[0] != 'A' || ram[1] != 'B' {
		t.Errorf("DDRAM[0,1] = 0x%02x 0x%02x, want 'A' 'B'", ram[0], ram[1])
	}
	if col, row := l.CursorPos(); col != 2 || row != 0 {
		t.Errorf("cursor after effect = (%d,%d), want (2,0)", col, row)
	}
}

func TestSplitFlapSimultaneousMaxFlip(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	// One flip step for a single character starts one glyph short of the
	// target.
	l.SplitFlapWrite("B", FlipSimultaneous, 1, time.Millisecond, 0)
	if got, want := f.dataBytes(), []byte{'A', 'B'}; !bytes.Equal(got, want) {
		t.Errorf("flip run = %q, want %q", got, want)
	}
}

func TestSplitFlapRejectsUnprintable(t *testing.T) {
	l, _ := testLcd(t, Bit8, DefaultConfig())
	mustPanic(t, "character past the font's ASCII range", func() {
		l.SplitFlapWrite("~", FlipSequential, 0, 0, time.Millisecond)
	})
}

func TestShiftDisplayShortestWraps(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	l.ShiftDisplayToPos(39, MoveShortest, true, 0)
	if l.DisplayOffset() != 39 {
		t.Errorf("display offset = %d, want 39", l.DisplayOffset())
	}

	shifts := 0
	for _, c := range f.writes() {
		if c.Data == 0x18 {
			shifts++
		}
	}
	// One wrapped right-to-left shift beats 39 forward steps.
	if shifts != 1 {
		t.Errorf("sent %d display shifts, want 1", shifts)
	}
}

func TestShiftDisplayShortestTie(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	l.ShiftDisplayToPos(20, MoveShortest, true, 0)
	if l.DisplayOffset() != 20 {
		t.Errorf("display offset = %d, want 20", l.DisplayOffset())
	}
	shifts := 0
	for _, c := range f.writes() {
		if c.Data == 0x1c {
			shifts++
		}
	}
	// Both routes are 20 columns; ties ahead of the window go left-to-right.
	if shifts != 20 {
		t.Errorf("sent %d left-to-right shifts, want 20", shifts)
	}
}

func TestShiftDisplayForceLeft(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	l.ShiftDisplayToPos(1, MoveForceLeft, true, 0)
	if l.DisplayOffset() != 1 {
		t.Errorf("display offset = %d, want 1", l.DisplayOffset())
	}
	shifts := 0
	for _, c := range f.writes() {
		if c.Data == 0x18 {
			shifts++
		}
	}
	if shifts != 39 {
		t.Errorf("sent %d right-to-left shifts, want 39", shifts)
	}
}

func TestShiftDisplayNoCrossBoundary(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	l.ShiftDisplayToPos(5, MoveNoCrossBoundary, true, 0)
	if l.DisplayOffset() != 5 {
		t.Errorf("display offset = %d, want 5", l.DisplayOffset())
	}
	if got := len(f.writes()); got != 2+5 {
		t.Errorf("sent %d commands, want 2 display toggles and 5 shifts", got)
	}
}

func TestShiftDisplayBlanksAndRestores(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	l.ShiftDisplayToPos(3, MoveNoCrossBoundary, false, 0)

	w := f.writes()
	if w[0].Data != 0x0b {
		t.Errorf("first command = 0x%02x, want display-off 0x0b", w[0].Data)
	}
	if last := w[len(w)-1]; last.Data != 0x0f {
		t.Errorf("last command = 0x%02x, want display restored 0x0f", last.Data)
	}
	if !l.DisplayOn() {
		t.Error("display state not restored")
	}
}

func TestShiftDisplayNoOp(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	l.ShiftDisplayToPos(0, MoveShortest, true, 0)
	if len(f.sent) != 0 {
		t.Errorf("no-op shift sent %d commands", len(f.sent))
	}
	mustPanic(t, "offset out of range", func() {
		l.ShiftDisplayToPos(40, MoveShortest, true, 0)
	})
}

func TestFullDisplayBlink(t *testing.T) {
	l, f := testLcd(t, Bit8, DefaultConfig())
	l.FullDisplayBlink(2, 0)

	var got []byte
	for _, c := range f.writes() {
		got = append(got, c.Data)
	}
	if diff := cmp.Diff([]byte{0x0b, 0x0f, 0x0b, 0x0f}, got); diff != "" {
		t.Errorf("blink sequence mismatch (-want +got):\n%s", diff)
	}
	if !l.DisplayOn() {
		t.Error("display must end up back on")
	}
}
