package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"

	"github.com/smasonuk/wirecube"
	"github.com/smasonuk/wirecube/host/eventloop"
	"github.com/smasonuk/wirecube/host/headless"
	"github.com/smasonuk/wirecube/host/window"
)

type config struct {
	headless bool
	hz       int
	ticks    uint64
	fovDeg   float64
	zNear    float64
	zFar     float64
	logic    string
	out      string
	keys     string
	scale    int
	devMode  bool
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.headless, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.Float64Var(&cfg.fovDeg, "fov", 90, "Field of view in degrees.")
	flag.Float64Var(&cfg.zNear, "znear", 0.1, "Near plane distance.")
	flag.Float64Var(&cfg.zFar, "zfar", 1000, "Far plane distance.")
	flag.StringVar(&cfg.logic, "logic", "cube", "Frame logic: cube or arrow.")
	flag.StringVar(&cfg.out, "out", "", "Write the last headless frame to this PNG file.")
	flag.StringVar(&cfg.keys, "keys", "", "Headless key script, e.g. 0:down:ArrowUp,30:up:ArrowUp.")
	flag.IntVar(&cfg.scale, "scale", 2, "Window scale factor.")
	flag.BoolVar(&cfg.devMode, "dev", false, "Reserved development mode flag.")
	flag.Parse()

	log.SetFlags(log.Ltime)
	log.SetPrefix("wirecube: ")

	if err := run(cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	logic, err := newLogic(cfg)
	if err != nil {
		return err
	}

	if cfg.headless {
		return runHeadless(cfg, logic)
	}
	return runWindow(cfg, logic)
}

func newLogic(cfg config) (wirecube.Logic, error) {
	switch cfg.logic {
	case "cube":
		pc := wirecube.DefaultProjectionConfig()
		pc.FieldOfView = cfg.fovDeg * math.Pi / 180
		pc.ZNear = cfg.zNear
		pc.ZFar = cfg.zFar
		if err := pc.Validate(); err != nil {
			return nil, fmt.Errorf("invalid projection: %w", err)
		}
		return wirecube.NewCubeLogic(pc), nil
	case "arrow":
		return wirecube.NewArrowLogic(wirecube.CanvasWidth, wirecube.CanvasHeight), nil
	}
	return nil, fmt.Errorf("unknown logic %q", cfg.logic)
}

func runHeadless(cfg config, logic wirecube.Logic) error {
	script, err := headless.ParseScript(cfg.keys)
	if err != nil {
		return err
	}

	h := headless.NewHost()
	g, err := wirecube.New(h, wirecube.Options{DevMode: cfg.devMode, Logic: logic})
	if err != nil {
		return err
	}
	defer g.Close()
	watchLifecycle(g)
	bindControls(h.Events(), g, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g.Run()
	if err := headless.Run(ctx, h, headless.Config{Hz: cfg.hz, Ticks: cfg.ticks, Script: script}); err != nil {
		return err
	}

	if cfg.out != "" {
		canvas := g.Canvas().(*headless.Canvas)
		if err := headless.SavePNG(canvas, cfg.out); err != nil {
			return err
		}
		log.Printf("Wrote %s.", cfg.out)
	}
	return nil
}

func runWindow(cfg config, logic wirecube.Logic) error {
	h := window.NewHost("wirecube", cfg.scale)
	g, err := wirecube.New(h, wirecube.Options{DevMode: cfg.devMode, Logic: logic})
	if err != nil {
		return err
	}
	defer g.Close()
	watchLifecycle(g)
	bindControls(h.Events(), g, h.Quit)

	g.Run()
	return window.Run(h)
}

func watchLifecycle(g *wirecube.Game) {
	g.AddEventListener(wirecube.EventRunning, func(g *wirecube.Game) {
		log.Printf("Render loop %s.", g.State())
	})
}

// bindControls wires r to reset, s to stop or resume and Escape to quit.
// These listeners belong to the application, not the game, so they stay
// subscribed while the loop is stopped.
func bindControls(events *eventloop.Events, g *wirecube.Game, quit func()) {
	events.AddEventListener(wirecube.EventKeyDown, func(e *wirecube.KeyEvent) {
		switch e.Key {
		case "r":
			g.Reset()
		case "s":
			if g.IsRunning() {
				g.Stop()
			} else {
				g.Run()
			}
		case "Escape":
			if quit != nil {
				quit()
			}
		}
	})
}
