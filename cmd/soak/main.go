// Command soak runs the portal background headlessly and reports population
// statistics, for checking long runs without opening a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"portalfx/game"
	"portalfx/page"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	frames := flag.Uint64("frames", 3600, "number of frames to run, 0 runs until interrupted")
	interval := flag.Duration("interval", game.DefaultFrameInterval, "time between frames")
	seed := flag.Int64("seed", 1, "random seed for the first surface")
	width := flag.Float64("width", 0, "window width in logical pixels (config value when 0)")
	height := flag.Float64("height", 0, "window height in logical pixels (config value when 0)")
	dpr := flag.Float64("dpr", 1, "device pixel ratio")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config = loaded
	}
	if *width <= 0 {
		*width = float64(config.ScreenWidth)
	}
	if *height <= 0 {
		*height = float64(config.ScreenHeight)
	}

	p := page.New(config.Title, config.Surfaces)
	run := newSoakRun(p, config.DotCount, *seed, *width, *height, *dpr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var loop *game.Loop
	loop = game.NewLoop(*interval, func() {
		run.step()
		if *frames > 0 && loop.Frames()+1 >= *frames {
			loop.Stop()
		}
	})

	log.Printf("[Soak] running %d surfaces at %.0fx%.0f @%.2fx", len(run.fields), *width, *height, *dpr)
	start := time.Now()
	if err := loop.Run(ctx); err != nil {
		log.Printf("[Soak] interrupted: %v", err)
	}

	log.Printf("[Soak] %d frames in %v", loop.Frames(), time.Since(start).Round(time.Millisecond))
	for _, line := range run.report() {
		log.Printf("[Soak] %s", line)
	}
}

// soakRun drives one isolated field per page surface
type soakRun struct {
	fields     []*game.Field
	canvases   []*game.CountingCanvas
	peakComets []int
}

func newSoakRun(p *page.Page, dots int, seed int64, width, height, dpr float64) *soakRun {
	run := &soakRun{}
	for i, s := range p.Surfaces {
		f := game.Attach(p, s.Name, dots, seed+int64(i))
		_, _, w, h := s.Rect(width, height)
		f.Resize(w, h, dpr)

		run.fields = append(run.fields, f)
		run.canvases = append(run.canvases, &game.CountingCanvas{})
		run.peakComets = append(run.peakComets, 0)
	}
	return run
}

func (r *soakRun) step() {
	for i, f := range r.fields {
		f.Frame(r.canvases[i])
		r.peakComets[i] = max(r.peakComets[i], f.CometCount())
	}
}

func (r *soakRun) report() []string {
	lines := make([]string, 0, len(r.fields))
	for i, f := range r.fields {
		c := r.canvases[i]
		lines = append(lines, fmt.Sprintf("%s: dots=%d comets=%d peak=%d fills=%d strokes=%d",
			f.Name(), f.DotCount(), f.CometCount(), r.peakComets[i], c.Fills, c.Strokes))
	}
	return lines
}
