package backend

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/calvelli/go-chroma/chroma"
	"github.com/calvelli/go-chroma/chroma/memory"
	"github.com/calvelli/go-chroma/chroma/video"
)

// Ebiten presents frames in a window, uploading the RGBA framebuffer as a
// texture once per host frame and polling the keyboard into the joypad.
type Ebiten struct {
	emu *chroma.Emulator
	cfg Config
	tex *ebiten.Image
}

// errQuit unwinds ebiten.RunGame when the window should close.
var errQuit = errors.New("quit")

func NewEbiten(emu *chroma.Emulator, cfg Config) *Ebiten {
	if cfg.Scale <= 0 {
		cfg.Scale = 3
	}
	return &Ebiten{emu: emu, cfg: cfg}
}

func (e *Ebiten) Run() error {
	ebiten.SetWindowSize(video.FramebufferWidth*e.cfg.Scale, video.FramebufferHeight*e.cfg.Scale)
	ebiten.SetWindowTitle(e.cfg.Title)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// Update implements ebiten.Game; it runs exactly one emulator frame per
// host tick.
func (e *Ebiten) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || e.emu.Stopped() {
		return errQuit
	}
	e.emu.SetButtons(pollKeyboard())
	e.emu.RunFrame()
	return nil
}

func (e *Ebiten) Draw(screen *ebiten.Image) {
	if e.tex == nil {
		e.tex = ebiten.NewImage(video.FramebufferWidth, video.FramebufferHeight)
	}
	e.tex.WritePixels(e.emu.Frame().ToRGBA())

	op := &ebiten.DrawImageOptions{}
	screen.DrawImage(e.tex, op)
}

func (e *Ebiten) Layout(_, _ int) (int, int) {
	return video.FramebufferWidth, video.FramebufferHeight
}

func pollKeyboard() byte {
	var mask byte
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		mask |= memory.BtnRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		mask |= memory.BtnLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		mask |= memory.BtnUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		mask |= memory.BtnDown
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		mask |= memory.BtnA
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		mask |= memory.BtnB
	}
	if ebiten.IsKeyPressed(ebiten.KeyEnter) {
		mask |= memory.BtnStart
	}
	if ebiten.IsKeyPressed(ebiten.KeyBackspace) {
		mask |= memory.BtnSelect
	}
	return mask
}
