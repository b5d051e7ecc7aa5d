package video

// Color is a 32-bit RGBA pixel (0xRRGGBBAA).
type Color uint32

const (
	FramebufferWidth  = 160
	FramebufferHeight = 144
	FramebufferSize   = FramebufferWidth * FramebufferHeight
)

// The four DMG shades, lightest (color index 0) to darkest.
const (
	WhiteColor     Color = 0xFFFFFFFF
	LightGreyColor Color = 0x989898FF
	DarkGreyColor  Color = 0x4C4C4CFF
	BlackColor     Color = 0x000000FF
)

var dmgShades = [4]Color{WhiteColor, LightGreyColor, DarkGreyColor, BlackColor}

// ShadeToColor maps a 2-bit DMG shade to its RGBA color.
func ShadeToColor(shade byte) Color {
	return dmgShades[shade&0x03]
}

// RGB555ToColor expands a little-endian CGB palette entry (xBBBBBGG GGGRRRRR)
// to RGBA, replicating the high bits into the low ones.
func RGB555ToColor(raw uint16) Color {
	r := byte(raw & 0x1F)
	g := byte((raw >> 5) & 0x1F)
	b := byte((raw >> 10) & 0x1F)

	r = (r << 3) | (r >> 2)
	g = (g << 3) | (g >> 2)
	b = (b << 3) | (b >> 2)

	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF)
}

// FrameBuffer holds one rendered 160x144 frame.
type FrameBuffer struct {
	buffer []uint32
}

func NewFrameBuffer() *FrameBuffer {
	fb := &FrameBuffer{
		buffer: make([]uint32, FramebufferSize),
	}
	fb.Clear()
	return fb
}

func (fb *FrameBuffer) GetPixel(x, y int) Color {
	return Color(fb.buffer[y*FramebufferWidth+x])
}

func (fb *FrameBuffer) SetPixel(x, y int, color Color) {
	fb.buffer[y*FramebufferWidth+x] = uint32(color)
}

// ToSlice returns the backing pixel slice. The PPU overwrites it in place at
// the end of every draw phase; hosts that need a stable copy must make one.
func (fb *FrameBuffer) ToSlice() []uint32 {
	return fb.buffer
}

// Clear resets the framebuffer to the lightest shade, like an LCD that is off.
func (fb *FrameBuffer) Clear() {
	for i := range fb.buffer {
		fb.buffer[i] = uint32(WhiteColor)
	}
}

// ToRGBA flattens the framebuffer into RGBA bytes for texture uploads.
func (fb *FrameBuffer) ToRGBA() []byte {
	data := make([]byte, len(fb.buffer)*4)
	for i, pixel := range fb.buffer {
		data[i*4] = byte(pixel >> 24)
		data[i*4+1] = byte(pixel >> 16)
		data[i*4+2] = byte(pixel >> 8)
		data[i*4+3] = byte(pixel)
	}
	return data
}
