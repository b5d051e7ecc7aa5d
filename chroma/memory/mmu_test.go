package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvelli/go-chroma/chroma/addr"
)

func newTestMMU(t *testing.T, cgb bool) *MMU {
	t.Helper()
	cart, err := NewCartridge(buildROM(0x00, 0x00, 0x00))
	require.NoError(t, err)
	return New(cart, cgb)
}

func TestMMU_workRAMAndEcho(t *testing.T) {
	m := newTestMMU(t, false)

	m.Write(0xC123, 0xAB)
	assert.Equal(t, uint8(0xAB), m.Read(0xC123))
	assert.Equal(t, uint8(0xAB), m.Read(0xE123), "echo mirrors 0xC000")

	m.Write(0xE456, 0xCD)
	assert.Equal(t, uint8(0xCD), m.Read(0xC456))

	m.Write(0xFF80, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xFF80))
}

func TestMMU_workRAMBanking(t *testing.T) {
	m := newTestMMU(t, true)

	m.Write(0xD000, 0x11) // bank 1 (default)
	m.Write(addr.SVBK, 0x03)
	assert.Equal(t, uint8(0xF8|0x03), m.Read(addr.SVBK))

	m.Write(0xD000, 0x33)
	assert.Equal(t, uint8(0x33), m.Read(0xD000))

	m.Write(addr.SVBK, 0x01)
	assert.Equal(t, uint8(0x11), m.Read(0xD000))

	// Bank 0 coerces to 1.
	m.Write(addr.SVBK, 0x00)
	assert.Equal(t, uint8(0x11), m.Read(0xD000))
}

func TestMMU_interruptRegisters(t *testing.T) {
	m := newTestMMU(t, false)

	m.Write(addr.IF, 0x01)
	assert.Equal(t, uint8(0xE1), m.Read(addr.IF))

	m.Write(addr.IE, 0x1F)
	assert.Equal(t, uint8(0xFF), m.Read(addr.IE))
}

func TestMMU_unmappedIO(t *testing.T) {
	m := newTestMMU(t, false)

	assert.Equal(t, uint8(0xFF), m.Read(0xFF7C))
	m.Write(0xFF7C, 0x12) // ignored

	m.StrictIO = true
	assert.Panics(t, func() { m.Read(0xFF7C) })
	assert.Panics(t, func() { m.Write(0xFF7C, 0x12) })
}

func TestMMU_cgbRegistersHiddenOnDMG(t *testing.T) {
	m := newTestMMU(t, false)

	assert.Equal(t, uint8(0xFF), m.Read(addr.KEY1))
	assert.Equal(t, uint8(0xFF), m.Read(addr.SVBK))
	assert.Equal(t, uint8(0xFF), m.Read(addr.VBK))
	assert.Equal(t, uint8(0xFF), m.Read(addr.HDMA5))
}

func TestMMU_oamDMA(t *testing.T) {
	m := newTestMMU(t, false)

	for i := 0; i < 160; i++ {
		m.Write(0xC000+uint16(i), byte(i)^0x5A)
	}

	m.Write(addr.DMA, 0xC0)
	assert.True(t, m.OAMDMAActive())
	assert.Equal(t, uint8(0xC0), m.Read(addr.DMA))

	// One byte per machine cycle for 160 cycles.
	for i := 0; i < 159; i++ {
		m.TickDMA()
	}
	assert.True(t, m.OAMDMAActive())
	m.TickDMA()
	assert.False(t, m.OAMDMAActive())

	for i := 0; i < 160; i++ {
		assert.Equal(t, byte(i)^0x5A, m.PPU.ReadOAM(uint16(i)))
	}
}

func TestMMU_vramBanking(t *testing.T) {
	m := newTestMMU(t, true)

	m.Write(0x8000, 0x11)
	m.Write(addr.VBK, 0x01)
	assert.Equal(t, uint8(0xFF), m.Read(addr.VBK))

	m.Write(0x8000, 0x22)
	assert.Equal(t, uint8(0x22), m.Read(0x8000))

	m.Write(addr.VBK, 0x00)
	assert.Equal(t, uint8(0x11), m.Read(0x8000))
}

func TestMMU_generalPurposeVRAMDMA(t *testing.T) {
	m := newTestMMU(t, true)

	for i := 0; i < 32; i++ {
		m.Write(0xC100+uint16(i), byte(0x80+i))
	}

	m.Write(addr.HDMA1, 0xC1)
	m.Write(addr.HDMA2, 0x00)
	m.Write(addr.HDMA3, 0x00)
	m.Write(addr.HDMA4, 0x40)
	m.Write(addr.HDMA5, 0x01) // 2 blocks, immediate

	for i := 0; i < 32; i++ {
		assert.Equal(t, byte(0x80+i), m.Read(0x8040+uint16(i)))
	}
	assert.Equal(t, uint8(0xFF), m.Read(addr.HDMA5))
}

func TestMMU_hblankVRAMDMA(t *testing.T) {
	m := newTestMMU(t, true)

	for i := 0; i < 32; i++ {
		m.Write(0xC200+uint16(i), byte(i)+1)
	}

	m.Write(addr.HDMA1, 0xC2)
	m.Write(addr.HDMA2, 0x00)
	m.Write(addr.HDMA3, 0x00)
	m.Write(addr.HDMA4, 0x00)
	m.Write(addr.HDMA5, 0x81) // arm, 2 blocks

	assert.True(t, m.HDMA.Active())
	assert.Equal(t, uint8(0x01), m.Read(addr.HDMA5))

	m.StepHDMA()
	assert.True(t, m.HDMA.Active())
	assert.Equal(t, uint8(0x00), m.Read(addr.HDMA5))
	assert.Equal(t, uint8(0x01), m.Read(0x8000))

	m.StepHDMA()
	assert.False(t, m.HDMA.Active())
	assert.Equal(t, uint8(0xFF), m.Read(addr.HDMA5))
	assert.Equal(t, uint8(32), m.Read(0x801F))

	// Further steps are no-ops once the transfer drained.
	m.StepHDMA()
}

func TestMMU_hblankVRAMDMACancel(t *testing.T) {
	m := newTestMMU(t, true)

	m.Write(addr.HDMA5, 0x85) // arm, 6 blocks
	assert.True(t, m.HDMA.Active())

	m.Write(addr.HDMA5, 0x00) // bit 7 clear while armed cancels
	assert.False(t, m.HDMA.Active())
	assert.Equal(t, uint8(0x85), m.Read(addr.HDMA5))
}

func TestMMU_speedSwitch(t *testing.T) {
	m := newTestMMU(t, true)

	assert.False(t, m.DoubleSpeed())
	assert.False(t, m.SwitchSpeed(), "switch without arming does nothing")

	m.Write(addr.KEY1, 0x01)
	assert.Equal(t, uint8(0x7F), m.Read(addr.KEY1))

	assert.True(t, m.SwitchSpeed())
	assert.True(t, m.DoubleSpeed())
	assert.Equal(t, uint8(0xFE), m.Read(addr.KEY1))

	m.Write(addr.KEY1, 0x01)
	assert.True(t, m.SwitchSpeed())
	assert.False(t, m.DoubleSpeed())
}

func TestMMU_bootROMOverlay(t *testing.T) {
	m := newTestMMU(t, false)

	boot := make([]byte, 0x100)
	boot[0x00] = 0x31
	boot[0xFF] = 0x50
	m.SetBootROM(boot)

	assert.True(t, m.BootROMEnabled())
	assert.Equal(t, uint8(0x31), m.Read(0x0000))
	assert.Equal(t, uint8(0x50), m.Read(0x00FF))

	// 0x0100 onward always reads from the cartridge.
	assert.Equal(t, uint8(0x00), m.Read(0x0100))

	m.Write(addr.BOOT, 0x01)
	assert.False(t, m.BootROMEnabled())
	assert.Equal(t, uint8(0x00), m.Read(0x0000))
}
