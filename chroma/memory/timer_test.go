package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calvelli/go-chroma/chroma/addr"
)

func TestTimer_divAdvances(t *testing.T) {
	timer := &Timer{}
	ic := NewInterrupts()

	// DIV is the high byte of the counter: 64 machine ticks per increment.
	for i := 0; i < 64; i++ {
		timer.Tick(ic)
	}
	assert.Equal(t, uint8(0x01), timer.Read(addr.DIV))
}

func TestTimer_divResetOnWrite(t *testing.T) {
	timer := &Timer{}
	timer.SetCounter(0x1234)

	timer.Write(addr.DIV, 0xAB)

	assert.Equal(t, uint8(0x00), timer.Read(addr.DIV))
	assert.Equal(t, uint16(0), timer.Counter())
}

func TestTimer_overflowReloadsFromTMA(t *testing.T) {
	timer := &Timer{}
	ic := NewInterrupts()

	// TAC 0x06: enabled, divider bit 5, so the first falling edge from a
	// zeroed counter lands on machine cycle 16 and the reload on cycle 17.
	timer.Write(addr.TAC, 0x06)
	timer.Write(addr.TIMA, 0xFF)
	timer.Write(addr.TMA, 0x23)

	for i := 0; i < 16; i++ {
		timer.Tick(ic)
	}
	// Overflow happened: TIMA reads 0 during the reload window.
	assert.Equal(t, uint8(0x00), timer.Read(addr.TIMA))
	assert.Equal(t, uint8(0xE0), ic.ReadIF())

	timer.Tick(ic)
	assert.Equal(t, uint8(0x23), timer.Read(addr.TIMA))
	assert.Equal(t, uint8(0xE0)|addr.TimerInterrupt.Mask(), ic.ReadIF())
}

func TestTimer_writesDuringReloadWindow(t *testing.T) {
	overflow := func() (*Timer, *Interrupts) {
		timer := &Timer{}
		ic := NewInterrupts()
		timer.Write(addr.TAC, 0x05) // bit 3, edge every 4 machine cycles
		timer.Write(addr.TIMA, 0xFF)
		timer.Write(addr.TMA, 0x42)
		for i := 0; i < 5; i++ {
			timer.Tick(ic)
		}
		// TMA was just loaded on this cycle.
		return timer, ic
	}

	t.Run("TIMA write is suppressed on the reload cycle", func(t *testing.T) {
		timer, _ := overflow()
		assert.Equal(t, uint8(0x42), timer.Read(addr.TIMA))
		timer.Write(addr.TIMA, 0x00)
		assert.Equal(t, uint8(0x42), timer.Read(addr.TIMA))
	})

	t.Run("TMA write on the reload cycle updates TIMA too", func(t *testing.T) {
		timer, _ := overflow()
		timer.Write(addr.TMA, 0x55)
		assert.Equal(t, uint8(0x55), timer.Read(addr.TIMA))
	})

	t.Run("TIMA write before the reload cancels it", func(t *testing.T) {
		timer := &Timer{}
		ic := NewInterrupts()
		timer.Write(addr.TAC, 0x05)
		timer.Write(addr.TIMA, 0xFF)
		timer.Write(addr.TMA, 0x42)
		for i := 0; i < 4; i++ {
			timer.Tick(ic)
		}
		// Overflow cycle: TIMA is 0, reload still pending.
		assert.Equal(t, uint8(0x00), timer.Read(addr.TIMA))
		timer.Write(addr.TIMA, 0x10)
		timer.Tick(ic)
		assert.Equal(t, uint8(0x10), timer.Read(addr.TIMA))
		assert.Equal(t, uint8(0xE0), ic.ReadIF())
	})
}

func TestTimer_disabledDoesNotCount(t *testing.T) {
	timer := &Timer{}
	ic := NewInterrupts()

	timer.Write(addr.TAC, 0x01) // fastest clock but disabled
	timer.Write(addr.TIMA, 0x00)

	for i := 0; i < 256; i++ {
		timer.Tick(ic)
	}
	assert.Equal(t, uint8(0x00), timer.Read(addr.TIMA))
}

func TestTimer_tacReadsUpperBitsSet(t *testing.T) {
	timer := &Timer{}
	timer.Write(addr.TAC, 0x05)
	assert.Equal(t, uint8(0xFD), timer.Read(addr.TAC))
}
