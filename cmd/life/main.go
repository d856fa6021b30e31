package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"life-canvas/internal/app"
	"life-canvas/internal/engine"
	"life-canvas/internal/render"
)

func main() {
	cfg, err := app.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	grid, err := app.InitialGrid(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var opts []engine.Option
	if cfg.Frames > 0 {
		opts = append(opts, engine.OnTick(func(s engine.Snapshot) {
			if s.Generation >= cfg.Frames {
				cancel()
			}
		}))
	}

	var surface render.Surface
	open := func(w, h int) (render.Surface, error) {
		s, err := render.Open(cfg.Surface, w, h, cfg.SurfaceOptions())
		surface = s
		return s, err
	}
	eng, err := engine.New(grid, open, opts...)
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	if cfg.Surface == "window" {
		if err := app.Run(eng, surface, "life-canvas"); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := eng.Run(ctx); err != nil {
		log.Fatal(err)
	}
	snap := eng.Snapshot()
	log.Printf("stopped at generation %d with %d alive cells", snap.Generation, snap.Population)
}
