package audio

import "github.com/calvelli/go-chroma/chroma/addr"

// APU is a register stub: the audio unit accepts reads and writes of the
// 0xFF10-0xFF3F range so games can program it, but no sound is synthesized.
type APU struct {
	regs [addr.AudioEnd - addr.AudioStart + 1]byte
}

func New() *APU {
	return &APU{}
}

func (a *APU) ReadRegister(address uint16) byte {
	if address < addr.AudioStart || address > addr.AudioEnd {
		return 0xFF
	}
	return a.regs[address-addr.AudioStart]
}

func (a *APU) WriteRegister(address uint16, value byte) {
	if address < addr.AudioStart || address > addr.AudioEnd {
		return
	}
	a.regs[address-addr.AudioStart] = value
}
