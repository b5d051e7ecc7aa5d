package video

import (
	"sort"

	"github.com/calvelli/go-chroma/chroma/addr"
	"github.com/calvelli/go-chroma/chroma/bit"
)

// Mode is the PPU rendering stage. The values match STAT bits 1-0.
type Mode byte

const (
	HBlank     Mode = 0
	VBlank     Mode = 1
	OAMScan    Mode = 2
	DrawPixels Mode = 3
)

const (
	oamScanDots  = 80
	drawDots     = 172
	scanlineDots = 456

	linesPerFrame = 154
	vblankStart   = FramebufferHeight

	// FrameDots is the length of a full frame in dots (70224).
	FrameDots = scanlineDots * linesPerFrame
)

// LCDC bit indices.
const (
	lcdcBGEnable      = 0 // DMG: BG+window enable; CGB: BG loses priority when clear
	lcdcOBJEnable     = 1
	lcdcOBJSize       = 2
	lcdcBGTilemap     = 3
	lcdcTileData      = 4
	lcdcWindowEnable  = 5
	lcdcWindowTilemap = 6
	lcdcLCDEnable     = 7
)

// STAT bit indices.
const (
	statLYCFlag   = 2
	statHBlankIRQ = 3
	statVBlankIRQ = 4
	statOAMIRQ    = 5
	statLYCIRQ    = 6
)

// PPU is a scanline renderer stepped one dot at a time. It owns VRAM, OAM,
// the LCD register file, palette RAM and the framebuffer; interrupts are
// raised through the requester wired at construction.
type PPU struct {
	cgb        bool
	requestIRQ func(addr.Interrupt)

	vram     [2][0x2000]byte
	vramBank int
	oam      [160]byte

	mode Mode
	dots int

	lcdc byte
	stat byte
	scy  byte
	scx  byte
	ly   byte
	lyc  byte
	bgp  byte
	obp0 byte
	obp1 byte
	wy   byte
	wx   byte

	// winLY is the window-internal line counter; wyCondition latches once
	// per frame when WY==LY while the window is enabled. statOnLine keeps
	// the LY==LYC interrupt from firing twice on the same scanline.
	winLY       byte
	wyCondition bool
	statOnLine  bool

	bgPaletteRAM    [64]byte
	objPaletteRAM   [64]byte
	bgPaletteIndex  byte
	objPaletteIndex byte

	framebuffer *FrameBuffer
	// bgInfo records, per pixel, the background color index (bits 0-1) and
	// the tile attribute priority bit (bit 7) for sprite mixing.
	bgInfo [FramebufferSize]byte

	frames uint64
}

// New creates a PPU. requestIRQ receives VBlank and LCDStat interrupt
// requests as the state machine advances.
func New(cgb bool, requestIRQ func(addr.Interrupt)) *PPU {
	return &PPU{
		cgb:         cgb,
		requestIRQ:  requestIRQ,
		mode:        OAMScan,
		lcdc:        0x91,
		stat:        0x80 | byte(OAMScan),
		bgp:         0xFC,
		framebuffer: NewFrameBuffer(),
	}
}

// Framebuffer returns the buffer the PPU renders into. It is valid for
// presentation at VBlank entry.
func (p *PPU) Framebuffer() *FrameBuffer {
	return p.framebuffer
}

// Frames returns the number of completed frames (VBlank entries).
func (p *PPU) Frames() uint64 {
	return p.frames
}

// Mode returns the current rendering stage.
func (p *PPU) Mode() Mode {
	return p.mode
}

// LY returns the current scanline.
func (p *PPU) LY() byte {
	return p.ly
}

// Tick advances the state machine by one dot. While the LCD is disabled the
// PPU holds LY=0 in HBlank and ticks are no-ops.
func (p *PPU) Tick() {
	if !bit.IsSet(lcdcLCDEnable, p.lcdc) {
		return
	}

	p.dots++

	switch p.mode {
	case OAMScan:
		if p.dots >= oamScanDots {
			p.setMode(DrawPixels)
		}
	case DrawPixels:
		if p.dots >= oamScanDots+drawDots {
			p.renderScanline()
			p.setMode(HBlank)
			if bit.IsSet(statHBlankIRQ, p.stat) {
				p.requestIRQ(addr.LCDStatInterrupt)
			}
		}
	case HBlank:
		if p.dots >= scanlineDots {
			p.dots = 0
			p.ly++
			p.statOnLine = false

			if p.ly == vblankStart {
				p.setMode(VBlank)
				p.frames++
				p.requestIRQ(addr.VBlankInterrupt)
				if bit.IsSet(statVBlankIRQ, p.stat) {
					p.requestIRQ(addr.LCDStatInterrupt)
				}
			} else {
				p.enterOAMScan()
			}
		}
	case VBlank:
		if p.dots >= scanlineDots {
			p.dots = 0
			p.ly++
			p.statOnLine = false

			if p.ly >= linesPerFrame {
				p.ly = 0
				p.winLY = 0
				p.wyCondition = false
				p.enterOAMScan()
			}
		}
	}

	p.compareLYLYC()
}

func (p *PPU) enterOAMScan() {
	p.setMode(OAMScan)
	if bit.IsSet(statOAMIRQ, p.stat) {
		p.requestIRQ(addr.LCDStatInterrupt)
	}
	// The window activation condition is checked once per scanline and
	// latched for the rest of the frame.
	if !p.wyCondition && p.wy == p.ly && bit.IsSet(lcdcWindowEnable, p.lcdc) {
		p.wyCondition = true
	}
}

func (p *PPU) setMode(mode Mode) {
	p.mode = mode
	p.stat = (p.stat &^ 0x03) | byte(mode)
}

func (p *PPU) compareLYLYC() {
	if p.ly == p.lyc {
		p.stat = bit.Set(statLYCFlag, p.stat)
		if bit.IsSet(statLYCIRQ, p.stat) && !p.statOnLine {
			p.requestIRQ(addr.LCDStatInterrupt)
			p.statOnLine = true
		}
	} else {
		p.stat = bit.Reset(statLYCFlag, p.stat)
	}
}

// ReadVRAM reads through the currently selected VRAM bank. The offset is
// relative to 0x8000.
func (p *PPU) ReadVRAM(offset uint16) byte {
	return p.vram[p.vramBank][offset]
}

// WriteVRAM writes through the currently selected VRAM bank.
func (p *PPU) WriteVRAM(offset uint16, value byte) {
	p.vram[p.vramBank][offset] = value
}

// ReadOAM reads a byte of object attribute memory. The offset is relative to
// 0xFE00.
func (p *PPU) ReadOAM(offset uint16) byte {
	return p.oam[offset]
}

// WriteOAM writes a byte of object attribute memory.
func (p *PPU) WriteOAM(offset uint16, value byte) {
	p.oam[offset] = value
}

// ReadRegister reads one of the LCD registers routed here by the MMU.
func (p *PPU) ReadRegister(address uint16) byte {
	switch address {
	case addr.LCDC:
		return p.lcdc
	case addr.STAT:
		return p.stat
	case addr.SCY:
		return p.scy
	case addr.SCX:
		return p.scx
	case addr.LY:
		return p.ly
	case addr.LYC:
		return p.lyc
	case addr.BGP:
		return p.bgp
	case addr.OBP0:
		return p.obp0
	case addr.OBP1:
		return p.obp1
	case addr.WY:
		return p.wy
	case addr.WX:
		return p.wx
	case addr.VBK:
		if !p.cgb {
			return 0xFF
		}
		return 0xFE | byte(p.vramBank)
	case addr.BCPS:
		return p.bgPaletteIndex
	case addr.BCPD:
		return p.bgPaletteRAM[p.bgPaletteIndex&0x3F]
	case addr.OCPS:
		return p.objPaletteIndex
	case addr.OCPD:
		return p.objPaletteRAM[p.objPaletteIndex&0x3F]
	}
	return 0xFF
}

// WriteRegister writes one of the LCD registers routed here by the MMU.
func (p *PPU) WriteRegister(address uint16, value byte) {
	switch address {
	case addr.LCDC:
		wasEnabled := bit.IsSet(lcdcLCDEnable, p.lcdc)
		p.lcdc = value
		enabled := bit.IsSet(lcdcLCDEnable, p.lcdc)
		if wasEnabled && !enabled {
			// Turning the LCD off parks the PPU: LY=0, HBlank, dot
			// counter reset.
			p.ly = 0
			p.dots = 0
			p.setMode(HBlank)
			p.statOnLine = false
		} else if !wasEnabled && enabled {
			p.dots = 0
			p.setMode(OAMScan)
		}
	case addr.STAT:
		// Bits 2-0 are owned by the PPU, bit 7 always reads 1.
		p.stat = 0x80 | (value & 0x78) | (p.stat & 0x07)
	case addr.SCY:
		p.scy = value
	case addr.SCX:
		p.scx = value
	case addr.LYC:
		p.lyc = value
	case addr.BGP:
		p.bgp = value
	case addr.OBP0:
		p.obp0 = value
	case addr.OBP1:
		p.obp1 = value
	case addr.WY:
		p.wy = value
	case addr.WX:
		p.wx = value
	case addr.VBK:
		if p.cgb {
			p.vramBank = int(value & 0x01)
		}
	case addr.BCPS:
		p.bgPaletteIndex = value
	case addr.BCPD:
		p.bgPaletteRAM[p.bgPaletteIndex&0x3F] = value
		p.bgPaletteIndex = autoIncrement(p.bgPaletteIndex)
	case addr.OCPS:
		p.objPaletteIndex = value
	case addr.OCPD:
		p.objPaletteRAM[p.objPaletteIndex&0x3F] = value
		p.objPaletteIndex = autoIncrement(p.objPaletteIndex)
	}
}

// autoIncrement advances a palette index register when its bit 7 is set.
func autoIncrement(index byte) byte {
	if !bit.IsSet(7, index) {
		return index
	}
	return 0x80 | ((index + 1) & 0x3F)
}

func (p *PPU) renderScanline() {
	if p.cgb || bit.IsSet(lcdcBGEnable, p.lcdc) {
		p.renderBackground()
	} else {
		p.clearBackgroundLine()
	}
	if bit.IsSet(lcdcOBJEnable, p.lcdc) {
		p.renderSprites()
	}
}

// clearBackgroundLine paints the scanline with BGP color 0; on DMG a cleared
// LCDC bit 0 blanks both background and window.
func (p *PPU) clearBackgroundLine() {
	shade := p.bgp & 0x03
	color := ShadeToColor(shade)
	lineStart := int(p.ly) * FramebufferWidth
	for x := 0; x < FramebufferWidth; x++ {
		p.framebuffer.buffer[lineStart+x] = uint32(color)
		p.bgInfo[lineStart+x] = 0
	}
}

func (p *PPU) renderBackground() {
	bgTilemap := uint16(0x1800)
	if bit.IsSet(lcdcBGTilemap, p.lcdc) {
		bgTilemap = 0x1C00
	}
	winTilemap := uint16(0x1800)
	if bit.IsSet(lcdcWindowTilemap, p.lcdc) {
		winTilemap = 0x1C00
	}

	lineStart := int(p.ly) * FramebufferWidth
	windowDrawn := false

	for x := 0; x < FramebufferWidth; x++ {
		windowPixel := bit.IsSet(lcdcWindowEnable, p.lcdc) &&
			x+7 >= int(p.wx) &&
			p.wyCondition

		var px, py byte
		var tilemap uint16
		if windowPixel {
			windowDrawn = true
			px = byte(x) + 7 - p.wx
			py = p.winLY
			tilemap = winTilemap
		} else {
			px = byte(x) + p.scx
			py = p.ly + p.scy
			tilemap = bgTilemap
		}

		mapIndex := tilemap + uint16(px/8) + uint16(py/8)*32
		tileID := p.vram[0][mapIndex]
		var attrs byte
		if p.cgb {
			attrs = p.vram[1][mapIndex]
		}

		rowY := py & 7
		if p.cgb && bit.IsSet(6, attrs) {
			rowY = 7 - rowY
		}

		var rowAddr int
		if bit.IsSet(lcdcTileData, p.lcdc) {
			rowAddr = int(tileID)*16 + int(rowY)*2
		} else {
			rowAddr = 0x1000 + int(int8(tileID))*16 + int(rowY)*2
		}

		bank := 0
		if p.cgb && bit.IsSet(3, attrs) {
			bank = 1
		}
		lo := p.vram[bank][rowAddr]
		hi := p.vram[bank][rowAddr+1]

		xOff := px & 7
		if p.cgb && bit.IsSet(5, attrs) {
			xOff = 7 - xOff
		}

		colorIndex := (bit.Value(7-xOff, hi) << 1) | bit.Value(7-xOff, lo)

		var color Color
		if p.cgb {
			color = p.backgroundColor(attrs&0x07, colorIndex)
		} else {
			color = ShadeToColor((p.bgp >> (colorIndex * 2)) & 0x03)
		}

		p.framebuffer.buffer[lineStart+x] = uint32(color)
		p.bgInfo[lineStart+x] = colorIndex | (attrs & 0x80)
	}

	if windowDrawn && p.winLY < FramebufferHeight {
		p.winLY++
	}
}

// oamSprite is one OAM entry plus its index, collected during the scan phase.
type oamSprite struct {
	index int
	y     byte
	x     byte
	tile  byte
	attrs byte
}

func (p *PPU) renderSprites() {
	height := 8
	if bit.IsSet(lcdcOBJSize, p.lcdc) {
		height = 16
	}

	// Only the Y coordinate selects sprites; up to 10 per scanline, excess
	// entries are dropped in OAM order.
	sprites := make([]oamSprite, 0, 10)
	for i := 0; i < 40 && len(sprites) < 10; i++ {
		y := p.oam[i*4]
		top := int(y) - 16
		if int(p.ly) < top || int(p.ly) >= top+height {
			continue
		}
		sprites = append(sprites, oamSprite{
			index: i,
			y:     y,
			x:     p.oam[i*4+1],
			tile:  p.oam[i*4+2],
			attrs: p.oam[i*4+3],
		})
	}

	// Draw lowest priority first so the winner overwrites. DMG priority is
	// leftmost X, OAM index breaking ties; CGB priority is OAM index alone.
	sort.Slice(sprites, func(i, j int) bool {
		if p.cgb || sprites[i].x == sprites[j].x {
			return sprites[i].index > sprites[j].index
		}
		return sprites[i].x > sprites[j].x
	})

	lineStart := int(p.ly) * FramebufferWidth

	for _, s := range sprites {
		tile := int(s.tile)
		if height == 16 {
			tile &= 0xFE
		}

		rowY := int(p.ly) + 16 - int(s.y)
		if bit.IsSet(6, s.attrs) {
			rowY = height - 1 - rowY
		}
		rowAddr := tile*16 + rowY*2

		bank := 0
		if p.cgb && bit.IsSet(3, s.attrs) {
			bank = 1
		}
		lo := p.vram[bank][rowAddr]
		hi := p.vram[bank][rowAddr+1]

		for px := 0; px < 8; px++ {
			screenX := int(s.x) - 8 + px
			if screenX < 0 || screenX >= FramebufferWidth {
				continue
			}

			xOff := byte(px)
			if bit.IsSet(5, s.attrs) {
				xOff = 7 - xOff
			}

			colorIndex := (bit.Value(7-xOff, hi) << 1) | bit.Value(7-xOff, lo)
			if colorIndex == 0 {
				continue
			}

			info := p.bgInfo[lineStart+screenX]
			if p.cgb {
				draw := info&0x03 == 0 || !bit.IsSet(lcdcBGEnable, p.lcdc)
				if !draw {
					draw = !bit.IsSet(7, s.attrs) && !bit.IsSet(7, info)
				}
				if !draw {
					continue
				}
				p.framebuffer.buffer[lineStart+screenX] = uint32(p.objectColor(s.attrs&0x07, colorIndex))
			} else {
				if bit.IsSet(7, s.attrs) && info&0x03 != 0 {
					continue
				}
				palette := p.obp0
				if bit.IsSet(4, s.attrs) {
					palette = p.obp1
				}
				shade := (palette >> (colorIndex * 2)) & 0x03
				p.framebuffer.buffer[lineStart+screenX] = uint32(ShadeToColor(shade))
			}
		}
	}
}

func (p *PPU) backgroundColor(palette, colorIndex byte) Color {
	base := int(palette)*8 + int(colorIndex)*2
	raw := uint16(p.bgPaletteRAM[base]) | uint16(p.bgPaletteRAM[base+1])<<8
	return RGB555ToColor(raw)
}

func (p *PPU) objectColor(palette, colorIndex byte) Color {
	base := int(palette)*8 + int(colorIndex)*2
	raw := uint16(p.objPaletteRAM[base]) | uint16(p.objPaletteRAM[base+1])<<8
	return RGB555ToColor(raw)
}
