package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/calvelli/go-chroma/chroma"
	"github.com/calvelli/go-chroma/chroma/backend"
)

func main() {
	app := cli.NewApp()
	app.Name = "chroma"
	app.Description = "A cycle-stepped emulator for the original handheld and its color successor"
	app.Usage = "chroma [options] <ROM file>"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Display backend: terminal or ebiten",
			Value: "terminal",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor for the ebiten backend",
			Value: 3,
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save a text snapshot every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory for frame snapshots",
		},
		cli.StringFlag{
			Name:  "boot-rom",
			Usage: "Path to an optional 256-byte boot ROM",
		},
		cli.BoolFlag{
			Name:  "force-dmg",
			Usage: "Run color-compatible cartridges in monochrome mode",
		},
		cli.BoolFlag{
			Name:  "serial",
			Usage: "Mirror link-port output to stdout",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("error running emulator", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
		romPath = c.Args().Get(0)
	}

	opts := chroma.Options{
		ForceDMG: c.Bool("force-dmg"),
	}
	if path := c.String("boot-rom"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading boot ROM: %w", err)
		}
		opts.BootROM = data
	}
	if c.Bool("serial") {
		opts.SerialWriter = os.Stdout
	}

	emu, err := chroma.NewWithFile(romPath, opts)
	if err != nil {
		return err
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames with a positive value")
		}

		cfg := backend.Config{
			Frames:           frames,
			SnapshotInterval: c.Int("snapshot-interval"),
			SnapshotDir:      c.String("snapshot-dir"),
		}
		if cfg.SnapshotInterval > 0 && cfg.SnapshotDir == "" {
			dir, err := os.MkdirTemp("", "chroma-snapshots-*")
			if err != nil {
				return fmt.Errorf("creating snapshot directory: %w", err)
			}
			cfg.SnapshotDir = dir
			slog.Info("saving snapshots", "dir", dir)
		}
		return backend.NewHeadless(emu, cfg).Run()
	}

	cfg := backend.Config{
		Title: "chroma",
		Scale: c.Int("scale"),
	}

	switch c.String("backend") {
	case "ebiten":
		return backend.NewEbiten(emu, cfg).Run()
	case "terminal":
		term, err := backend.NewTerminal(emu, cfg)
		if err != nil {
			return err
		}
		return term.Run()
	default:
		return fmt.Errorf("unknown backend %q", c.String("backend"))
	}
}
