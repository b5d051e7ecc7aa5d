package backend

import (
	"strings"

	"github.com/calvelli/go-chroma/chroma/video"
)

// Presenter drives the emulator's frame loop against a host surface.
// Implementations own pacing, input translation and teardown; Run blocks
// until the user quits or the emulator stops, and the headless presenter
// also returns after its configured frame count.
type Presenter interface {
	Run() error
}

// Config holds presentation options shared by the backends.
type Config struct {
	Title string
	Scale int

	// Headless options.
	Frames           int
	SnapshotInterval int
	SnapshotDir      string
}

// pixelToShade buckets an RGBA pixel into the four DMG shades; CGB colors
// map by red channel intensity.
func pixelToShade(pixel uint32) int {
	switch video.Color(pixel) {
	case video.WhiteColor:
		return 3
	case video.LightGreyColor:
		return 2
	case video.DarkGreyColor:
		return 1
	case video.BlackColor:
		return 0
	}
	return int(pixel>>30) & 0x03
}

var shadeRunes = [4]rune{'█', '▓', '▒', ' '}

// renderHalfBlocks folds two pixel rows into one text row, used by the
// headless snapshot writer.
func renderHalfBlocks(frame []uint32) []string {
	lines := make([]string, 0, video.FramebufferHeight/2)
	for y := 0; y < video.FramebufferHeight; y += 2 {
		var sb strings.Builder
		for x := 0; x < video.FramebufferWidth; x++ {
			top := pixelToShade(frame[y*video.FramebufferWidth+x])
			bottom := pixelToShade(frame[(y+1)*video.FramebufferWidth+x])
			switch {
			case top == bottom:
				sb.WriteRune(shadeRunes[top])
			case top == 3:
				sb.WriteRune('▄')
			default:
				sb.WriteRune('▀')
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
