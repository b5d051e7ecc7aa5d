package video

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calvelli/go-chroma/chroma/addr"
)

// irqCounter collects interrupt requests by kind.
type irqCounter struct {
	counts map[addr.Interrupt]int
}

func newIRQCounter() *irqCounter {
	return &irqCounter{counts: make(map[addr.Interrupt]int)}
}

func (c *irqCounter) request(i addr.Interrupt) {
	c.counts[i]++
}

func newTestPPU(cgb bool) (*PPU, *irqCounter) {
	irqs := newIRQCounter()
	return New(cgb, irqs.request), irqs
}

func TestPPU_modeDurations(t *testing.T) {
	p, _ := newTestPPU(false)

	durations := map[Mode]int{}
	for i := 0; i < scanlineDots; i++ {
		p.Tick()
		durations[p.mode]++
	}

	// The last HBlank dot already reports the next line's OAM scan, which
	// evens out with the 79 dots spent in this line's scan.
	assert.Equal(t, oamScanDots, durations[OAMScan])
	assert.Equal(t, drawDots, durations[DrawPixels])
	assert.Equal(t, scanlineDots-oamScanDots-drawDots, durations[HBlank])
	assert.Equal(t, uint8(1), p.LY())
}

func TestPPU_frameTiming(t *testing.T) {
	p, irqs := newTestPPU(false)

	seen := make(map[uint8]bool)
	for i := 0; i < FrameDots; i++ {
		p.Tick()
		seen[p.LY()] = true
	}

	assert.Equal(t, uint64(1), p.Frames())
	assert.Equal(t, uint8(0), p.LY())
	assert.Equal(t, 1, irqs.counts[addr.VBlankInterrupt])
	// LY walked through every scanline 0..153.
	for line := 0; line <= 153; line++ {
		assert.True(t, seen[uint8(line)], "LY %d was never reached", line)
	}
}

func TestPPU_statModeBits(t *testing.T) {
	p, _ := newTestPPU(false)

	assert.Equal(t, byte(OAMScan), p.ReadRegister(addr.STAT)&0x03)

	for p.mode == OAMScan {
		p.Tick()
	}
	assert.Equal(t, byte(DrawPixels), p.ReadRegister(addr.STAT)&0x03)

	for p.mode == DrawPixels {
		p.Tick()
	}
	assert.Equal(t, byte(HBlank), p.ReadRegister(addr.STAT)&0x03)
}

func TestPPU_lycStatFiresOnce(t *testing.T) {
	p, irqs := newTestPPU(false)

	p.WriteRegister(addr.STAT, 0x40) // LY==LYC interrupt only
	p.WriteRegister(addr.LYC, 0x10)

	for p.LY() != 0x10 {
		p.Tick()
	}
	assert.NotZero(t, p.ReadRegister(addr.STAT)&0x04, "coincidence flag set")

	// The rest of the matching scanline must not fire again.
	for i := 0; i < scanlineDots; i++ {
		p.Tick()
	}
	assert.Equal(t, 1, irqs.counts[addr.LCDStatInterrupt])
}

func TestPPU_lcdOff(t *testing.T) {
	p, _ := newTestPPU(false)

	for i := 0; i < 10*scanlineDots; i++ {
		p.Tick()
	}
	assert.NotZero(t, p.LY())

	p.WriteRegister(addr.LCDC, 0x11) // bit 7 clear
	assert.Equal(t, uint8(0), p.LY())
	assert.Equal(t, HBlank, p.Mode())

	for i := 0; i < 10*scanlineDots; i++ {
		p.Tick()
	}
	assert.Equal(t, uint8(0), p.LY(), "ticks are no-ops while the LCD is off")
	assert.Equal(t, 0, p.dots)
}

func TestPPU_backgroundTileRendering(t *testing.T) {
	p, _ := newTestPPU(false)

	// Tile 0, row 0: leftmost pixel color 1, the rest color 0.
	p.vram[0][0] = 0x80
	p.vram[0][1] = 0x00
	p.WriteRegister(addr.LCDC, 0x91)
	p.WriteRegister(addr.BGP, 0xE4) // 3,2,1,0 identity mapping

	p.ly = 0
	p.renderScanline()

	assert.Equal(t, LightGreyColor, p.framebuffer.GetPixel(0, 0))
	assert.Equal(t, WhiteColor, p.framebuffer.GetPixel(1, 0))
	// Tilemap repeats tile 0 across the whole line.
	assert.Equal(t, LightGreyColor, p.framebuffer.GetPixel(8, 0))
	assert.Equal(t, uint8(1), p.bgInfo[0])
	assert.Equal(t, uint8(0), p.bgInfo[1])
}

func TestPPU_backgroundScrolling(t *testing.T) {
	p, _ := newTestPPU(false)

	p.vram[0][0] = 0x80
	p.vram[0][1] = 0x00
	p.WriteRegister(addr.LCDC, 0x91)
	p.WriteRegister(addr.BGP, 0xE4)
	p.WriteRegister(addr.SCX, 1)

	p.ly = 0
	p.renderScanline()

	// With SCX=1 the color-1 pixel of the next tile lands on x=7.
	assert.Equal(t, WhiteColor, p.framebuffer.GetPixel(0, 0))
	assert.Equal(t, LightGreyColor, p.framebuffer.GetPixel(7, 0))
}

func TestPPU_signedTileAddressing(t *testing.T) {
	p, _ := newTestPPU(false)

	// LCDC bit 4 clear: tile 0x80 resolves to 0x9000 + (-128)*16 = 0x8800.
	p.vram[0][0x1800] = 0x80
	p.vram[0][0x0800] = 0xFF
	p.vram[0][0x0801] = 0xFF
	p.WriteRegister(addr.LCDC, 0x81)
	p.WriteRegister(addr.BGP, 0xE4)

	p.ly = 0
	p.renderScanline()

	assert.Equal(t, BlackColor, p.framebuffer.GetPixel(0, 0))
}

func TestPPU_dmgBackgroundDisabled(t *testing.T) {
	p, _ := newTestPPU(false)

	p.vram[0][0] = 0xFF
	p.vram[0][1] = 0xFF
	p.WriteRegister(addr.LCDC, 0x90) // bit 0 clear
	p.WriteRegister(addr.BGP, 0xE4)

	p.ly = 0
	p.renderScanline()

	assert.Equal(t, WhiteColor, p.framebuffer.GetPixel(0, 0))
	assert.Equal(t, uint8(0), p.bgInfo[0])
}

func TestPPU_windowLineCounter(t *testing.T) {
	p, _ := newTestPPU(false)

	p.WriteRegister(addr.LCDC, 0xB1) // LCD + BG + window enable
	p.WriteRegister(addr.BGP, 0xE4)
	p.WriteRegister(addr.WY, 0)
	p.WriteRegister(addr.WX, 7) // window starts at x=0

	p.ly = 0
	p.enterOAMScan()
	assert.True(t, p.wyCondition)

	p.renderScanline()
	assert.Equal(t, uint8(1), p.winLY)

	// A line where the window is disabled leaves winLY alone.
	p.WriteRegister(addr.LCDC, 0x91)
	p.ly = 1
	p.renderScanline()
	assert.Equal(t, uint8(1), p.winLY)
}

func TestPPU_windowNotTriggeredWithoutWY(t *testing.T) {
	p, _ := newTestPPU(false)

	p.WriteRegister(addr.LCDC, 0xB1)
	p.WriteRegister(addr.WY, 40)
	p.ly = 0
	p.enterOAMScan()
	assert.False(t, p.wyCondition)

	p.renderScanline()
	assert.Equal(t, uint8(0), p.winLY)
}

// putSprite writes one OAM entry.
func putSprite(p *PPU, index int, y, x, tile, attrs byte) {
	p.oam[index*4] = y
	p.oam[index*4+1] = x
	p.oam[index*4+2] = tile
	p.oam[index*4+3] = attrs
}

// solidTile fills a tile with the given 2-bit color index.
func solidTile(p *PPU, bank, tile int, colorIndex byte) {
	var lo, hi byte
	if colorIndex&0x01 != 0 {
		lo = 0xFF
	}
	if colorIndex&0x02 != 0 {
		hi = 0xFF
	}
	for row := 0; row < 8; row++ {
		p.vram[bank][tile*16+row*2] = lo
		p.vram[bank][tile*16+row*2+1] = hi
	}
}

func TestPPU_spritePriorityDMG(t *testing.T) {
	p, _ := newTestPPU(false)

	p.WriteRegister(addr.LCDC, 0x93) // LCD + BG + OBJ enable
	p.WriteRegister(addr.BGP, 0xE4)
	p.WriteRegister(addr.OBP0, 0xE4)

	solidTile(p, 0, 1, 1)
	solidTile(p, 0, 2, 2)

	// Sprite 0 at x=20 covers x=12..19, sprite 1 at x=16 covers x=8..15;
	// they overlap on x=12..15 and on DMG the leftmost sprite wins there.
	putSprite(p, 0, 16, 20, 1, 0x00)
	putSprite(p, 1, 16, 16, 2, 0x00)

	p.ly = 0
	p.renderScanline()

	// x=10 is covered by sprite 1 only (color 2 -> dark grey).
	assert.Equal(t, DarkGreyColor, p.framebuffer.GetPixel(10, 0))
	// x=14 overlaps both; sprite 1 has the lower X and wins.
	assert.Equal(t, DarkGreyColor, p.framebuffer.GetPixel(14, 0))
	// x=18 is covered by sprite 0 only.
	assert.Equal(t, LightGreyColor, p.framebuffer.GetPixel(18, 0))
}

func TestPPU_spritePriorityCGB(t *testing.T) {
	p, _ := newTestPPU(true)

	p.WriteRegister(addr.LCDC, 0x93)

	// Object palette 0, color 1 = red; palette 1, color 2 = blue.
	p.objPaletteRAM[2] = 0x1F // color 1 low byte, red
	p.objPaletteRAM[3] = 0x00
	p.objPaletteRAM[8+4] = 0x00 // palette 1 color 2, blue
	p.objPaletteRAM[8+5] = 0x7C

	solidTile(p, 0, 1, 1)
	solidTile(p, 0, 2, 2)

	putSprite(p, 0, 16, 20, 1, 0x00) // palette 0
	putSprite(p, 1, 16, 16, 2, 0x01) // palette 1

	p.ly = 0
	p.renderScanline()

	// The overlap goes to the lower OAM index regardless of X.
	red := RGB555ToColor(0x001F)
	blue := RGB555ToColor(0x7C00)
	assert.Equal(t, red, p.framebuffer.GetPixel(14, 0))
	assert.Equal(t, blue, p.framebuffer.GetPixel(10, 0))
}

func TestPPU_spriteLimitPerScanline(t *testing.T) {
	p, _ := newTestPPU(false)

	p.WriteRegister(addr.LCDC, 0x93)
	p.WriteRegister(addr.OBP0, 0xE4)
	solidTile(p, 0, 1, 3)

	// Eleven sprites on the line at distinct positions; the eleventh is
	// dropped in OAM order.
	for i := 0; i < 11; i++ {
		putSprite(p, i, 16, byte(8+i*12), 1, 0x00)
	}

	p.ly = 0
	p.renderScanline()

	assert.Equal(t, BlackColor, p.framebuffer.GetPixel(0, 0), "sprite 0 drawn")
	assert.Equal(t, BlackColor, p.framebuffer.GetPixel(9*12, 0), "sprite 9 drawn")
	assert.Equal(t, WhiteColor, p.framebuffer.GetPixel(10*12, 0), "sprite 10 dropped")
}

func TestPPU_spriteOffscreenX(t *testing.T) {
	p, _ := newTestPPU(false)

	p.WriteRegister(addr.LCDC, 0x93)
	p.WriteRegister(addr.OBP0, 0xE4)
	solidTile(p, 0, 1, 3)

	putSprite(p, 0, 16, 0, 1, 0x00)   // fully left of the screen
	putSprite(p, 1, 16, 168, 1, 0x00) // fully right of the screen

	p.ly = 0
	p.renderScanline()

	for x := 0; x < FramebufferWidth; x++ {
		assert.Equal(t, WhiteColor, p.framebuffer.GetPixel(x, 0))
	}
}

func TestPPU_spriteBehindBackground(t *testing.T) {
	p, _ := newTestPPU(false)

	p.WriteRegister(addr.LCDC, 0x93)
	p.WriteRegister(addr.BGP, 0xE4)
	p.WriteRegister(addr.OBP0, 0xE4)

	// Background color 1 everywhere, sprite with the behind-BG attribute.
	p.vram[0][0] = 0xFF
	solidTile(p, 0, 1, 3)
	putSprite(p, 0, 16, 8, 1, 0x80)

	p.ly = 0
	p.renderScanline()

	assert.Equal(t, LightGreyColor, p.framebuffer.GetPixel(0, 0))
}

func TestPPU_spriteFlips(t *testing.T) {
	p, _ := newTestPPU(false)

	p.WriteRegister(addr.LCDC, 0x93)
	p.WriteRegister(addr.OBP0, 0xE4)

	// Tile 1: only the leftmost pixel of row 0 set.
	p.vram[0][16] = 0x80
	putSprite(p, 0, 16, 8, 1, 0x20) // horizontal flip

	p.ly = 0
	p.renderScanline()

	assert.Equal(t, WhiteColor, p.framebuffer.GetPixel(0, 0))
	assert.Equal(t, LightGreyColor, p.framebuffer.GetPixel(7, 0))
}

func TestPPU_tallSpritesMaskTileBit(t *testing.T) {
	p, _ := newTestPPU(false)

	p.WriteRegister(addr.LCDC, 0x97) // 8x16 sprites
	p.WriteRegister(addr.OBP0, 0xE4)

	solidTile(p, 0, 2, 3)
	solidTile(p, 0, 3, 1)

	// Tile index 3 masks to 2; row 8 falls into tile 3.
	putSprite(p, 0, 16, 8, 3, 0x00)

	p.ly = 0
	p.renderScanline()
	assert.Equal(t, BlackColor, p.framebuffer.GetPixel(0, 0))

	p.ly = 8
	p.renderScanline()
	assert.Equal(t, LightGreyColor, p.framebuffer.GetPixel(0, 8))
}

func TestPPU_cgbPaletteAutoIncrement(t *testing.T) {
	p, _ := newTestPPU(true)

	p.WriteRegister(addr.BCPS, 0x80)
	p.WriteRegister(addr.BCPD, 0x11)
	p.WriteRegister(addr.BCPD, 0x22)

	assert.Equal(t, uint8(0x82), p.ReadRegister(addr.BCPS))
	assert.Equal(t, uint8(0x11), p.bgPaletteRAM[0])
	assert.Equal(t, uint8(0x22), p.bgPaletteRAM[1])

	// Without the auto-increment bit the index stays put.
	p.WriteRegister(addr.OCPS, 0x05)
	p.WriteRegister(addr.OCPD, 0x33)
	p.WriteRegister(addr.OCPD, 0x44)
	assert.Equal(t, uint8(0x05), p.ReadRegister(addr.OCPS))
	assert.Equal(t, uint8(0x44), p.objPaletteRAM[5])
}

func TestPPU_cgbPaletteIndexWraps(t *testing.T) {
	p, _ := newTestPPU(true)

	p.WriteRegister(addr.BCPS, 0x80|0x3F)
	p.WriteRegister(addr.BCPD, 0x77)
	assert.Equal(t, uint8(0x80), p.ReadRegister(addr.BCPS))
	assert.Equal(t, uint8(0x77), p.bgPaletteRAM[0x3F])
}

func TestPPU_cgbBackgroundAttributes(t *testing.T) {
	p, _ := newTestPPU(true)

	// Tile 0 row 0 in bank 1, attributes: priority + bank 1 + palette 7.
	p.vram[1][0] = 0x80
	p.vram[1][0x1800] = 0x8F
	p.WriteRegister(addr.LCDC, 0x91)

	// Palette 7, color 1 = green.
	base := 7*8 + 2
	p.bgPaletteRAM[base] = 0xE0
	p.bgPaletteRAM[base+1] = 0x03

	p.ly = 0
	p.renderScanline()

	assert.Equal(t, RGB555ToColor(0x03E0), p.framebuffer.GetPixel(0, 0))
	assert.Equal(t, uint8(0x81), p.bgInfo[0], "color index and priority bit recorded")
}

func TestRGB555ToColor(t *testing.T) {
	assert.Equal(t, Color(0xFFFFFFFF), RGB555ToColor(0x7FFF))
	assert.Equal(t, Color(0x000000FF), RGB555ToColor(0x0000))
	assert.Equal(t, Color(0xFF0000FF), RGB555ToColor(0x001F))
	assert.Equal(t, Color(0x00FF00FF), RGB555ToColor(0x03E0))
	assert.Equal(t, Color(0x0000FFFF), RGB555ToColor(0x7C00))
}
