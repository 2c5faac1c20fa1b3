//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"raysphere/app"
	"raysphere/hal"
	"raysphere/internal/buildinfo"
	"raysphere/internal/config"
	"raysphere/snapshot"
)

func main() {
	var (
		hcfg       hal.HeadlessConfig
		flags      config.Flags
		configPath string
		snapPath   string
		snapScale  int
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&snapPath, "snapshot", "", "Headless: write the last frame to this file (.png, .webp, .tga).")
	flag.IntVar(&snapScale, "snapshot-scale", 1, "Integer upscale factor for -snapshot.")
	flag.StringVar(&configPath, "config", "", "Path to a JSON config file.")
	flag.IntVar(&flags.Width, "width", 0, "Frame width in pixels (default 640).")
	flag.IntVar(&flags.Height, "height", 0, "Frame height in pixels (default 640).")
	flag.Float64Var(&flags.FOV, "fov", 0, "Field of view in radians (default pi/4).")
	flag.StringVar(&flags.Root, "root", "", "Near-root formula: legacy|standard.")
	flag.IntVar(&flags.Workers, "workers", 0, "Render goroutines (default NumCPU).")
	flag.IntVar(&flags.TPS, "tps", 0, "Window update rate cap (default 60).")
	flag.IntVar(&flags.Scale, "scale", 0, "Window pixels per frame pixel (default 1).")
	flag.BoolVar(&flags.HUD, "hud", false, "Show the status overlay (F1 toggles).")
	flag.Uint64Var(&flags.LogEvery, "log-every", 0, "Log frame stats every N frames.")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fatalf("%v", err)
		}
	}
	cfg.Resolve(flags)
	scene, err := cfg.Scene()
	if err != nil {
		fatalf("%v", err)
	}

	appCfg := app.Config{
		Name:     buildinfo.Name,
		Scene:    scene,
		Workers:  cfg.Workers,
		HUD:      cfg.HUD,
		LogEvery: cfg.LogEvery,
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if hcfg.Enabled {
		hcfg.Width, hcfg.Height = cfg.Width, cfg.Height
		var snapErr error
		if snapPath != "" {
			hcfg.OnExit = func(px []uint32, w, h int) error {
				res, err := snapshot.Write(snapPath, px, w, h, snapshot.Options{Scale: snapScale})
				if err != nil {
					snapErr = err
					return err
				}
				fmt.Printf("%s: wrote %s (%s, %d bytes)\n", buildinfo.Name, res.Path, res.Format, res.Bytes)
				return nil
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			// SIGINT ends an unbounded run; only a failed snapshot makes it fatal.
			if errors.Is(err, context.Canceled) && snapErr == nil {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	err = hal.RunWindow(hal.WindowConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
		TPS:    cfg.TPS,
		Title:  buildinfo.Name + " (" + buildinfo.Short() + ")",
	}, newApp)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
