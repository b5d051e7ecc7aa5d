package chroma

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/calvelli/go-chroma/chroma/addr"
	"github.com/calvelli/go-chroma/chroma/cpu"
	"github.com/calvelli/go-chroma/chroma/memory"
	"github.com/calvelli/go-chroma/chroma/serial"
	"github.com/calvelli/go-chroma/chroma/video"
)

// Options tune emulator construction.
type Options struct {
	// BootROM is an optional 256-byte DMG boot program. Without it the
	// emulator starts at 0x0100 with the post-boot register file.
	BootROM []byte
	// ForceDMG runs a color-compatible cartridge in monochrome mode.
	ForceDMG bool
	// StrictIO makes unmapped I/O accesses fatal instead of open-bus.
	StrictIO bool
	// SerialWriter receives every byte sent over the link port.
	SerialWriter io.Writer
}

// Emulator is the root of the core: it owns the CPU which in turn owns the
// MMU and every peripheral behind it.
type Emulator struct {
	cpu *cpu.CPU
	mmu *memory.MMU

	instructions uint64
}

// New builds an emulator around a raw cartridge image.
func New(rom []byte, opts Options) (*Emulator, error) {
	cart, err := memory.NewCartridge(rom)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	if !memory.ChecksumOK(rom) {
		slog.Warn("cartridge header checksum mismatch", "title", cart.Title)
	}

	cgb := cart.CGB() && !opts.ForceDMG
	mmu := memory.New(cart, cgb)
	mmu.StrictIO = opts.StrictIO

	if opts.SerialWriter != nil {
		mmu.Serial = serial.NewLogSink(
			func() { mmu.RequestInterrupt(addr.SerialInterrupt) },
			serial.WithWriter(opts.SerialWriter),
		)
	}
	if len(opts.BootROM) > 0 {
		mmu.SetBootROM(opts.BootROM)
	}

	slog.Info("cartridge loaded",
		"title", cart.Title,
		"type", fmt.Sprintf("0x%02X", cart.Type),
		"romBanks", cart.ROMBanks,
		"ramSize", cart.RAMSize,
		"battery", cart.HasBattery,
		"cgb", cgb)

	return &Emulator{
		cpu: cpu.New(mmu),
		mmu: mmu,
	}, nil
}

// NewWithFile builds an emulator from a ROM file on disk.
func NewWithFile(path string, opts Options) (*Emulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}
	slog.Debug("loaded ROM data", "path", path, "size", len(data))
	return New(data, opts)
}

// RunFrame drives the CPU until the PPU enters the next vertical blank. The
// host calls it once per video frame; pacing is the host's responsibility.
// With the LCD off it returns once a budget of two single-speed frames of
// cycles (one double-speed frame) is spent; with the CPU stopped it returns
// at once.
func (e *Emulator) RunFrame() {
	start := e.mmu.PPU.Frames()
	// Double-speed frames burn twice the CPU cycles per frame.
	budget := 2 * video.FrameDots

	for e.mmu.PPU.Frames() == start && budget > 0 {
		cycles := e.cpu.Cycle()
		if cycles == 0 {
			return
		}
		e.instructions++
		budget -= cycles
	}
}

// Frame returns the framebuffer of the most recently completed frame.
func (e *Emulator) Frame() *video.FrameBuffer {
	return e.mmu.PPU.Framebuffer()
}

// SetButtons replaces the joypad state with the given memory.Btn* mask;
// newly pressed buttons raise the Joypad interrupt. Call once per frame.
func (e *Emulator) SetButtons(state byte) {
	e.mmu.Joypad.SetState(state, e.mmu.Interrupts)
}

// FrameCount returns the number of completed frames.
func (e *Emulator) FrameCount() uint64 {
	return e.mmu.PPU.Frames()
}

// InstructionCount returns the number of executed CPU cycles/instructions.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructions
}

// CGB reports whether the emulator runs as the color variant.
func (e *Emulator) CGB() bool {
	return e.mmu.CGB()
}

// Stopped reports whether the CPU has hard-halted (STOP or an illegal
// opcode).
func (e *Emulator) Stopped() bool {
	return e.cpu.State() == cpu.Stopped
}

// CPU exposes the processor, mainly for tests and debugging frontends.
func (e *Emulator) CPU() *cpu.CPU {
	return e.cpu
}

// MMU exposes the memory unit, mainly for tests and debugging frontends.
func (e *Emulator) MMU() *memory.MMU {
	return e.mmu
}

// SaveRAM returns a copy of external cartridge RAM when the cartridge is
// battery-backed, for the host to persist.
func (e *Emulator) SaveRAM() []byte {
	if !e.mmu.Cart.HasBattery {
		return nil
	}
	ram := e.mmu.Cart.RAM()
	if len(ram) == 0 {
		return nil
	}
	out := make([]byte, len(ram))
	copy(out, ram)
	return out
}

// LoadRAM restores previously saved external cartridge RAM.
func (e *Emulator) LoadRAM(data []byte) {
	copy(e.mmu.Cart.RAM(), data)
}
