package memory

import "github.com/calvelli/go-chroma/chroma/addr"

// HDMA is the VRAM DMA controller of the color variant: four address
// registers, a block counter and an active flag. The MMU performs the actual
// copies (general purpose at once, HBlank-paced in 16-byte blocks).
type HDMA struct {
	src1, src2 byte
	dst1, dst2 byte

	// Live cursors while an HBlank transfer is armed.
	source uint16
	dest   uint16
	blocks byte
	active bool
}

func (h *HDMA) WriteRegister(address uint16, value byte) {
	switch address {
	case addr.HDMA1:
		h.src1 = value
	case addr.HDMA2:
		h.src2 = value & 0xF0
	case addr.HDMA3:
		h.dst1 = value & 0x1F
	case addr.HDMA4:
		h.dst2 = value & 0xF0
	}
}

func (h *HDMA) ReadRegister(address uint16) byte {
	switch address {
	case addr.HDMA1:
		return h.src1
	case addr.HDMA2:
		return h.src2
	case addr.HDMA3:
		return h.dst1
	case addr.HDMA4:
		return h.dst2
	case addr.HDMA5:
		if !h.active {
			return 0x80 | ((h.blocks - 1) & 0x7F)
		}
		return (h.blocks - 1) & 0x7F
	}
	return 0xFF
}

// Source is the configured transfer source with the low four bits masked off.
func (h *HDMA) Source() uint16 {
	return (uint16(h.src1)<<8 | uint16(h.src2)) & 0xFFF0
}

// Dest is the configured VRAM destination offset (relative to 0x8000).
func (h *HDMA) Dest() uint16 {
	return (uint16(h.dst1)<<8 | uint16(h.dst2)) & 0x1FF0
}

// Arm prepares an HBlank-paced transfer of the given number of 16-byte
// blocks.
func (h *HDMA) Arm(blocks byte) {
	h.source = h.Source()
	h.dest = h.Dest()
	h.blocks = blocks
	h.active = true
}

// Cancel stops an armed transfer; the remaining length stays readable with
// bit 7 set.
func (h *HDMA) Cancel() {
	h.active = false
}

// Active reports whether an HBlank transfer is armed.
func (h *HDMA) Active() bool {
	return h.active
}
