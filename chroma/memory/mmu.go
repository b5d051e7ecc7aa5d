package memory

import (
	"fmt"
	"log/slog"

	"github.com/calvelli/go-chroma/chroma/addr"
	"github.com/calvelli/go-chroma/chroma/audio"
	"github.com/calvelli/go-chroma/chroma/serial"
	"github.com/calvelli/go-chroma/chroma/video"
)

// SerialPort is the minimal interface for a device on the link port.
// Implementations only see reads/writes of addr.SB and addr.SC.
type SerialPort interface {
	Write(address uint16, value byte)
	Read(address uint16) byte
	Tick(cycles int)
}

// MMU resolves every 16-bit address to its target. It owns the cartridge,
// PPU, timer, joypad, serial port, HDMA controller, work RAM, high RAM, the
// speed-switch register and the interrupt controller; peripherals request
// interrupts through it.
type MMU struct {
	Cart       *Cartridge
	PPU        *video.PPU
	Timer      Timer
	Joypad     *Joypad
	Serial     SerialPort
	APU        *audio.APU
	Interrupts *Interrupts
	HDMA       HDMA

	wram     [8][0x1000]byte
	wramBank int
	hram     [0x7F]byte

	key1 byte
	cgb  bool

	// OAM DMA state: one byte per machine cycle for 160 cycles.
	dmaReg    byte
	dmaActive bool
	dmaSource uint16
	dmaIndex  int

	bootROM     []byte
	bootEnabled bool

	// StrictIO turns accesses to unmapped I/O into panics tagged with the
	// address and current PC, instead of the open-bus defaults.
	StrictIO bool
	// LastPC is published by the CPU at each fetch for diagnostics.
	LastPC uint16
}

// New wires an MMU around a parsed cartridge. cgb selects the color
// variant's register file (VRAM banks, palettes, HDMA, KEY1, SVBK).
func New(cart *Cartridge, cgb bool) *MMU {
	m := &MMU{
		Cart:       cart,
		Joypad:     NewJoypad(),
		APU:        audio.New(),
		Interrupts: NewInterrupts(),
		wramBank:   1,
		cgb:        cgb,
	}
	m.PPU = video.New(cgb, m.RequestInterrupt)
	m.Serial = serial.NewLogSink(func() { m.RequestInterrupt(addr.SerialInterrupt) })
	return m
}

// CGB reports whether the color register file is active.
func (m *MMU) CGB() bool {
	return m.cgb
}

// RequestInterrupt sets the IF bit of the given interrupt.
func (m *MMU) RequestInterrupt(i addr.Interrupt) {
	m.Interrupts.Request(i)
}

// SetBootROM installs a 256-byte boot program overlaid at 0x0000-0x00FF
// until a nonzero write to 0xFF50.
func (m *MMU) SetBootROM(data []byte) {
	if len(data) < 0x100 {
		return
	}
	m.bootROM = make([]byte, 0x100)
	copy(m.bootROM, data[:0x100])
	m.bootEnabled = true
}

// BootROMEnabled reports whether the overlay is still mapped.
func (m *MMU) BootROMEnabled() bool {
	return m.bootEnabled
}

func (m *MMU) Read(address uint16) byte {
	switch {
	case address < 0x8000:
		if m.bootEnabled && address < 0x0100 {
			return m.bootROM[address]
		}
		return m.Cart.Read(address)
	case address < 0xA000:
		return m.PPU.ReadVRAM(address - 0x8000)
	case address < 0xC000:
		return m.Cart.Read(address)
	case address < 0xD000:
		return m.wram[0][address-0xC000]
	case address < 0xE000:
		return m.wram[m.wramBank][address-0xD000]
	case address < 0xFE00:
		// Echo of 0xC000-0xDDFF.
		return m.Read(address - 0x2000)
	case address <= 0xFE9F:
		return m.PPU.ReadOAM(address - 0xFE00)
	case address < 0xFF00:
		return 0xFF
	case address < 0xFF80:
		return m.readIO(address)
	case address < 0xFFFF:
		return m.hram[address-0xFF80]
	default:
		return m.Interrupts.ReadIE()
	}
}

func (m *MMU) Write(address uint16, value byte) {
	switch {
	case address < 0x8000:
		m.Cart.Write(address, value)
	case address < 0xA000:
		m.PPU.WriteVRAM(address-0x8000, value)
	case address < 0xC000:
		m.Cart.Write(address, value)
	case address < 0xD000:
		m.wram[0][address-0xC000] = value
	case address < 0xE000:
		m.wram[m.wramBank][address-0xD000] = value
	case address < 0xFE00:
		m.Write(address-0x2000, value)
	case address <= 0xFE9F:
		m.PPU.WriteOAM(address-0xFE00, value)
	case address < 0xFF00:
		// Unusable region; writes are dropped.
	case address < 0xFF80:
		m.writeIO(address, value)
	case address < 0xFFFF:
		m.hram[address-0xFF80] = value
	default:
		m.Interrupts.WriteIE(value)
	}
}

func (m *MMU) readIO(address uint16) byte {
	switch {
	case address == addr.P1:
		return m.Joypad.Read()
	case address == addr.SB || address == addr.SC:
		return m.Serial.Read(address)
	case address >= addr.DIV && address <= addr.TAC:
		return m.Timer.Read(address)
	case address == addr.IF:
		return m.Interrupts.ReadIF()
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		return m.APU.ReadRegister(address)
	case address == addr.DMA:
		return m.dmaReg
	case address >= addr.LCDC && address <= addr.WX:
		return m.PPU.ReadRegister(address)
	case address == addr.KEY1:
		if !m.cgb {
			return 0xFF
		}
		return 0x7E | (m.key1 & 0x81)
	case address == addr.VBK:
		return m.PPU.ReadRegister(address)
	case address == addr.BOOT:
		return 0xFF
	case address >= addr.HDMA1 && address <= addr.HDMA5:
		if !m.cgb {
			return 0xFF
		}
		return m.HDMA.ReadRegister(address)
	case address >= addr.BCPS && address <= addr.OCPD:
		if !m.cgb {
			return 0xFF
		}
		return m.PPU.ReadRegister(address)
	case address == addr.SVBK:
		if !m.cgb {
			return 0xFF
		}
		return 0xF8 | byte(m.wramBank)
	}
	if m.StrictIO {
		panic(fmt.Sprintf("read of unmapped I/O 0x%04X at PC 0x%04X", address, m.LastPC))
	}
	return 0xFF
}

func (m *MMU) writeIO(address uint16, value byte) {
	switch {
	case address == addr.P1:
		m.Joypad.Write(value)
	case address == addr.SB || address == addr.SC:
		m.Serial.Write(address, value)
	case address >= addr.DIV && address <= addr.TAC:
		m.Timer.Write(address, value)
	case address == addr.IF:
		m.Interrupts.WriteIF(value)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		m.APU.WriteRegister(address, value)
	case address == addr.DMA:
		m.startOAMDMA(value)
	case address >= addr.LCDC && address <= addr.WX:
		m.PPU.WriteRegister(address, value)
	case address == addr.KEY1:
		if m.cgb {
			m.key1 = (m.key1 & 0x80) | (value & 0x01)
		}
	case address == addr.VBK:
		m.PPU.WriteRegister(address, value)
	case address == addr.BOOT:
		if value != 0 {
			m.bootEnabled = false
		}
	case address >= addr.HDMA1 && address <= addr.HDMA4:
		if m.cgb {
			m.HDMA.WriteRegister(address, value)
		}
	case address == addr.HDMA5:
		if m.cgb {
			m.startVRAMDMA(value)
		}
	case address >= addr.BCPS && address <= addr.OCPD:
		if m.cgb {
			m.PPU.WriteRegister(address, value)
		}
	case address == addr.SVBK:
		if m.cgb {
			m.wramBank = int(value & 0x07)
			if m.wramBank == 0 {
				m.wramBank = 1
			}
		}
	default:
		if m.StrictIO {
			panic(fmt.Sprintf("write of unmapped I/O 0x%04X at PC 0x%04X", address, m.LastPC))
		}
	}
}

// startOAMDMA arms the 160-cycle OAM transfer from value<<8. The CPU keeps
// executing; TickDMA moves one byte per machine cycle.
func (m *MMU) startOAMDMA(value byte) {
	m.dmaReg = value
	m.dmaActive = true
	m.dmaSource = uint16(value) << 8
	m.dmaIndex = 0
}

// OAMDMAActive reports whether an OAM DMA transfer is in flight.
func (m *MMU) OAMDMAActive() bool {
	return m.dmaActive
}

// TickDMA advances an active OAM DMA by one byte.
func (m *MMU) TickDMA() {
	if !m.dmaActive {
		return
	}
	m.PPU.WriteOAM(uint16(m.dmaIndex), m.Read(m.dmaSource+uint16(m.dmaIndex)))
	m.dmaIndex++
	if m.dmaIndex >= 160 {
		m.dmaActive = false
	}
}

// startVRAMDMA handles writes to HDMA5. Bit 7 clear starts an immediate
// general-purpose DMA (or cancels an armed HBlank transfer); bit 7 set arms
// an HBlank-paced transfer.
func (m *MMU) startVRAMDMA(value byte) {
	if value&0x80 != 0 {
		m.HDMA.Arm((value & 0x7F) + 1)
		return
	}

	if m.HDMA.Active() {
		m.HDMA.Cancel()
		return
	}

	length := (uint16(value&0x7F) + 1) * 16
	src := m.HDMA.Source()
	dst := m.HDMA.Dest()

	slog.Debug("general purpose VRAM DMA",
		"src", fmt.Sprintf("0x%04X", src),
		"dst", fmt.Sprintf("0x%04X", 0x8000+dst),
		"length", length)

	for i := uint16(0); i < length; i++ {
		m.PPU.WriteVRAM((dst+i)&0x1FFF, m.Read(src+i))
	}

	// The address registers advance past the copied range.
	m.HDMA.WriteRegister(addr.HDMA1, byte((src+length)>>8))
	m.HDMA.WriteRegister(addr.HDMA2, byte(src+length))
	m.HDMA.WriteRegister(addr.HDMA3, byte((dst+length)>>8))
	m.HDMA.WriteRegister(addr.HDMA4, byte(dst+length))
	m.HDMA.blocks = 0
}

// StepHDMA transfers the next 16-byte block of an armed HBlank DMA. The CPU
// calls it on every HBlank entry.
func (m *MMU) StepHDMA() {
	if !m.HDMA.active {
		return
	}
	for i := 0; i < 16; i++ {
		m.PPU.WriteVRAM(m.HDMA.dest&0x1FFF, m.Read(m.HDMA.source))
		m.HDMA.source++
		m.HDMA.dest++
	}
	m.HDMA.blocks--
	if m.HDMA.blocks == 0 {
		m.HDMA.active = false
	}
}

// DoubleSpeed reports whether the CPU is in double-speed mode.
func (m *MMU) DoubleSpeed() bool {
	return m.key1&0x80 != 0
}

// SwitchSpeed performs the speed switch STOP triggers when KEY1 bit 0 is
// armed. It reports whether a switch happened.
func (m *MMU) SwitchSpeed() bool {
	if !m.cgb || m.key1&0x01 == 0 {
		return false
	}
	m.key1 = (m.key1 ^ 0x80) & 0x80
	return true
}
