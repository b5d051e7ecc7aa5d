package backend

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/calvelli/go-chroma/chroma"
)

// Headless runs a fixed number of frames without any display, optionally
// writing text snapshots of the framebuffer. Useful for test ROMs and CI.
type Headless struct {
	emu *chroma.Emulator
	cfg Config
}

func NewHeadless(emu *chroma.Emulator, cfg Config) *Headless {
	return &Headless{emu: emu, cfg: cfg}
}

func (h *Headless) Run() error {
	for i := 0; i < h.cfg.Frames; i++ {
		h.emu.RunFrame()

		if h.emu.Stopped() {
			slog.Info("CPU stopped, ending run", "frame", i+1)
			return nil
		}

		if h.cfg.SnapshotInterval > 0 && (i+1)%h.cfg.SnapshotInterval == 0 {
			if err := h.saveSnapshot(i + 1); err != nil {
				slog.Error("failed to save snapshot", "frame", i+1, "error", err)
			}
		}

		if (i+1)%60 == 0 {
			slog.Debug("frame progress", "completed", i+1, "total", h.cfg.Frames)
		}
	}
	slog.Info("headless run completed", "frames", h.cfg.Frames)
	return nil
}

func (h *Headless) saveSnapshot(frame int) error {
	path := filepath.Join(h.cfg.SnapshotDir, fmt.Sprintf("frame_%06d.txt", frame))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "# frame %d, %d instructions\n", frame, h.emu.InstructionCount())
	for _, line := range renderHalfBlocks(h.emu.Frame().ToSlice()) {
		fmt.Fprintln(file, line)
	}
	return nil
}
