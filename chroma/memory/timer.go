package memory

import "github.com/calvelli/go-chroma/chroma/addr"

// Timer is the DIV/TIMA/TMA/TAC block. The internal 16-bit counter advances
// by 4 every machine tick; TIMA increments on the falling edge of the divider
// bit selected by TAC, and overflows reload from TMA one machine cycle late.
type Timer struct {
	counter uint16
	tima    byte
	tma     byte
	tac     byte

	// reloadPending is set on the overflow cycle (TIMA reads 0x00 during
	// it); reloadedNow marks the cycle on which TMA was actually loaded,
	// which changes how TIMA/TMA writes behave.
	reloadPending bool
	reloadedNow   bool
}

// freqMask returns the divider bit whose falling edge clocks TIMA.
func (t *Timer) freqMask() uint16 {
	switch t.tac & 0x03 {
	case 0x00:
		return 1 << 9 // 4096 Hz
	case 0x01:
		return 1 << 3 // 262144 Hz
	case 0x02:
		return 1 << 5 // 65536 Hz
	default:
		return 1 << 7 // 16384 Hz
	}
}

// Tick advances the timer by one machine cycle (4 clock cycles).
func (t *Timer) Tick(ic *Interrupts) {
	mask := t.freqMask()
	prevBit := t.counter&mask != 0

	t.counter += 4

	if t.tac&0x04 == 0 {
		return
	}

	t.reloadedNow = false
	if t.reloadPending {
		t.tima = t.tma
		t.reloadPending = false
		t.reloadedNow = true
		ic.Request(addr.TimerInterrupt)
	}

	if prevBit && t.counter&mask == 0 {
		t.tima++
		if t.tima == 0 {
			t.reloadPending = true
		}
	}
}

func (t *Timer) Read(address uint16) byte {
	switch address {
	case addr.DIV:
		return byte(t.counter >> 8)
	case addr.TIMA:
		return t.tima
	case addr.TMA:
		return t.tma
	case addr.TAC:
		return 0xF8 | (t.tac & 0x07)
	}
	return 0xFF
}

func (t *Timer) Write(address uint16, value byte) {
	switch address {
	case addr.DIV:
		// Any write zeroes the full 16-bit counter.
		t.counter = 0
	case addr.TIMA:
		// The write is dropped on the cycle TMA was just loaded, and it
		// cancels a scheduled reload otherwise.
		if t.reloadedNow {
			return
		}
		t.tima = value
		t.reloadPending = false
	case addr.TMA:
		t.tma = value
		if t.reloadedNow {
			t.tima = value
		}
	case addr.TAC:
		t.tac = value & 0x07
	}
}

// SetCounter seeds the internal divider.
func (t *Timer) SetCounter(value uint16) {
	t.counter = value
}

// Counter exposes the internal divider for tests.
func (t *Timer) Counter() uint16 {
	return t.counter
}
