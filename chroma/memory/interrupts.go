package memory

import "github.com/calvelli/go-chroma/chroma/addr"

// Interrupts is the interrupt controller: the IF/IE registers plus the
// master enable flag. The upper three bits of both registers always read 1.
type Interrupts struct {
	// IME is the master enable flag; it gates dispatch, not requests.
	IME bool

	flags  byte
	enable byte
}

func NewInterrupts() *Interrupts {
	return &Interrupts{
		flags:  0xE0,
		enable: 0xE0,
	}
}

// Request sets the IF bit for the given interrupt.
func (ic *Interrupts) Request(i addr.Interrupt) {
	ic.flags |= i.Mask()
}

// Consume clears the IF bit for the given interrupt, typically right before
// jumping to its vector.
func (ic *Interrupts) Consume(i addr.Interrupt) {
	ic.flags &^= i.Mask()
}

// Pending reports whether any requested interrupt is also enabled.
func (ic *Interrupts) Pending() bool {
	return ic.flags&ic.enable&0x1F != 0
}

// Requested reports whether the given interrupt is both requested and enabled.
func (ic *Interrupts) Requested(i addr.Interrupt) bool {
	return ic.flags&ic.enable&i.Mask() != 0
}

func (ic *Interrupts) ReadIF() byte {
	return ic.flags | 0xE0
}

func (ic *Interrupts) WriteIF(value byte) {
	ic.flags = 0xE0 | (value & 0x1F)
}

func (ic *Interrupts) ReadIE() byte {
	return ic.enable | 0xE0
}

func (ic *Interrupts) WriteIE(value byte) {
	ic.enable = 0xE0 | (value & 0x1F)
}
