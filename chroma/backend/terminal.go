package backend

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/calvelli/go-chroma/chroma"
	"github.com/calvelli/go-chroma/chroma/memory"
	"github.com/calvelli/go-chroma/chroma/video"
)

// frameTime approximates the ~59.7 Hz refresh of the hardware.
const frameTime = time.Second / 60

// Terminal renders frames into a tcell screen using half-block cells and
// polls the keyboard into the joypad. ESC quits.
type Terminal struct {
	emu     *chroma.Emulator
	screen  tcell.Screen
	running bool

	// tcell delivers key presses but no reliable releases, so held keys
	// decay after a few frames.
	held map[byte]int
}

func NewTerminal(emu *chroma.Emulator, _ Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	return &Terminal{
		emu:     emu,
		screen:  screen,
		running: true,
		held:    make(map[byte]int),
	}, nil
}

func (t *Terminal) Run() error {
	defer func() {
		slog.Info("finishing terminal")
		t.screen.Fini()
	}()

	t.screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	t.screen.Clear()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- t.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for t.running {
		select {
		case <-ticker.C:
			t.emu.SetButtons(t.buttons())
			t.emu.RunFrame()
			t.render()
			t.screen.Show()
			if t.emu.Stopped() {
				t.running = false
			}
		case ev := <-events:
			t.handleEvent(ev)
		case <-signals:
			slog.Info("received signal to stop")
			t.running = false
		}
	}
	return nil
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape {
			t.running = false
			return
		}
		if btn, ok := keyToButton(ev); ok {
			// Keep the button down for a handful of frames.
			t.held[btn] = 6
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func keyToButton(ev *tcell.EventKey) (byte, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return memory.BtnUp, true
	case tcell.KeyDown:
		return memory.BtnDown, true
	case tcell.KeyLeft:
		return memory.BtnLeft, true
	case tcell.KeyRight:
		return memory.BtnRight, true
	case tcell.KeyEnter:
		return memory.BtnStart, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return memory.BtnSelect, true
	}
	switch ev.Rune() {
	case 'z', 'Z':
		return memory.BtnA, true
	case 'x', 'X':
		return memory.BtnB, true
	}
	return 0, false
}

func (t *Terminal) buttons() byte {
	var mask byte
	for btn, frames := range t.held {
		if frames <= 0 {
			delete(t.held, btn)
			continue
		}
		t.held[btn] = frames - 1
		mask |= btn
	}
	return mask
}

func (t *Terminal) render() {
	frame := t.emu.Frame().ToSlice()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for y := 0; y < video.FramebufferHeight; y += 2 {
		for x := 0; x < video.FramebufferWidth; x++ {
			top := pixelToShade(frame[y*video.FramebufferWidth+x])
			bottom := pixelToShade(frame[(y+1)*video.FramebufferWidth+x])

			var ch rune
			switch {
			case top == bottom:
				ch = shadeRunes[top]
			case top == 3:
				ch = '▄'
			default:
				ch = '▀'
			}
			t.screen.SetContent(x, y/2, ch, nil, style)
		}
	}
}
