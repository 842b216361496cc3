package headless

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"
)

// Config controls Run.
type Config struct {
	Hz int
	// Ticks stops Run after this many frames. Zero runs until ctx is done.
	Ticks uint64
	// Script is dispatched before the frame of each stroke's tick.
	Script []KeyStroke
}

// Run pumps animation frames on a ticker in the calling goroutine, which
// therefore acts as the host's event loop.
func Run(ctx context.Context, h *Host, cfg Config) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.Play(cfg.Script, tick)
			h.Step()
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// Play dispatches the strokes scheduled for tick.
func (h *Host) Play(script []KeyStroke, tick uint64) {
	for _, s := range script {
		if s.Tick == tick {
			h.events.Dispatch(s.Kind, s.event())
		}
	}
}

// SavePNG writes the canvas to path.
func SavePNG(c *Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return f.Close()
}
