// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd1602

import "fmt"

func setBit(b byte, pos uint) byte {
	if pos > 7 {
		panic(fmt.Sprintf("lcd1602: bit position %d out of range", pos))
	}
	return b | 1<<pos
}

func clearBit(b byte, pos uint) byte {
	if pos > 7 {
		panic(fmt.Sprintf("lcd1602: bit position %d out of range", pos))
	}
	return b &^ (1 << pos)
}

func bitIsSet(b byte, pos uint) bool {
	if pos > 7 {
		panic(fmt.Sprintf("lcd1602: bit position %d out of range", pos))
	}
	return b&(1<<pos) != 0
}
