package cpu

import (
	"github.com/calvelli/go-chroma/chroma/addr"
	"github.com/calvelli/go-chroma/chroma/memory"
	"github.com/calvelli/go-chroma/chroma/video"
)

// State is the CPU execution state.
type State int

const (
	Running State = iota
	Halted
	Stopped
	DMAActive
)

// CPU drives the whole system: every memory access inside an instruction
// advances the peripheral clock through tick, so the PPU, timers and DMA
// engines stay in lockstep with instruction execution.
type CPU struct {
	mmu *memory.MMU

	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16

	state      State
	haltBug    bool
	imePending bool

	// deltaCycles accumulates the clock cycles of the instruction in
	// flight; Cycle returns and resets it.
	deltaCycles int

	// speedParity counts fast machine cycles in double-speed mode; the PPU
	// only advances on even ones.
	speedParity uint8
}

// New creates a CPU wired to the MMU. Without a boot ROM the register file
// gets the post-boot values; with one, execution starts from address 0.
func New(mmu *memory.MMU) *CPU {
	cpu := &CPU{mmu: mmu}
	if !mmu.BootROMEnabled() {
		cpu.a = 0x11
		cpu.f = 0xB0
		cpu.c = 0x13
		cpu.e = 0xD8
		cpu.h = 0x01
		cpu.l = 0x4D
		cpu.sp = 0xFFFE
		cpu.pc = 0x0100
	}
	return cpu
}

// State returns the execution state; an in-flight OAM DMA reports DMAActive.
func (c *CPU) State() State {
	if c.state == Running && c.mmu.OAMDMAActive() {
		return DMAActive
	}
	return c.state
}

// PC returns the program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// Cycle runs one interrupt dispatch or one instruction and returns the
// number of clock cycles consumed, always a multiple of 4. While halted it
// advances the clock by a single machine cycle; once stopped it returns 0
// and the clock stands still.
func (c *CPU) Cycle() int {
	ic := c.mmu.Interrupts

	switch c.state {
	case Stopped:
		return 0
	case Halted:
		c.tick()
		if ic.Pending() {
			c.state = Running
		}
		c.dispatchInterrupts()
		return c.takeCycles()
	}

	c.mmu.LastPC = c.pc
	opcode := c.fetchPC()
	c.execute(opcode)
	c.dispatchInterrupts()
	return c.takeCycles()
}

func (c *CPU) takeCycles() int {
	cycles := c.deltaCycles
	c.deltaCycles = 0
	return cycles
}

// tick advances the system clock by one machine cycle (4 clock cycles).
// Peripheral order within the tick is fixed and observable: PPU dots, then
// HDMA on an HBlank edge, then OAM DMA, then the timer, then a deferred EI
// commit.
func (c *CPU) tick() {
	c.deltaCycles += 4

	// In double-speed mode the PPU keeps its original rate: 4 dots per 8
	// fast clock cycles.
	if !c.mmu.DoubleSpeed() || c.speedParity%2 == 0 {
		wasHBlank := c.mmu.PPU.Mode() == video.HBlank
		c.mmu.PPU.Tick()
		c.mmu.PPU.Tick()
		c.mmu.PPU.Tick()
		c.mmu.PPU.Tick()
		if !wasHBlank && c.mmu.PPU.Mode() == video.HBlank {
			c.mmu.StepHDMA()
		}
	}
	c.speedParity++

	c.mmu.TickDMA()
	c.mmu.Timer.Tick(c.mmu.Interrupts)
	c.mmu.Serial.Tick(4)

	if c.imePending {
		c.mmu.Interrupts.IME = true
		c.imePending = false
	}
}

// fetchPC reads the byte at PC and post-increments it. The increment is
// undone exactly once after the halt bug triggered.
func (c *CPU) fetchPC() byte {
	value := c.mmu.Read(c.pc)
	c.tick()

	c.pc++
	if c.haltBug {
		c.pc--
		c.haltBug = false
	}
	return value
}

func (c *CPU) fetchWord() uint16 {
	low := c.fetchPC()
	high := c.fetchPC()
	return uint16(high)<<8 | uint16(low)
}

func (c *CPU) readByte(address uint16) byte {
	value := c.mmu.Read(address)
	c.tick()
	return value
}

func (c *CPU) writeByte(address uint16, value byte) {
	c.mmu.Write(address, value)
	c.tick()
}

// dispatchInterrupts services the highest-priority pending and enabled
// interrupt after an instruction, consuming 20 clock cycles.
func (c *CPU) dispatchInterrupts() {
	ic := c.mmu.Interrupts
	if !ic.IME || !ic.Pending() {
		return
	}

	for i := addr.VBlankInterrupt; i <= addr.JoypadInterrupt; i++ {
		if !ic.Requested(i) {
			continue
		}
		ic.Consume(i)
		ic.IME = false

		c.tick()
		c.tick()
		c.pushStack(c.pc)
		c.pc = i.Vector()
		c.tick()
		return
	}
}

func (c *CPU) execute(opcode byte) {
	opcodes[opcode](c)
}
