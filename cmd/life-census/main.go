package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"life-canvas/internal/stats"
	"life-canvas/pkg/core"
)

type seedResult struct {
	seed int64
	stats.Result
	done bool
}

func main() {
	width := flag.Int("w", 64, "grid width in cells")
	height := flag.Int("h", 64, "grid height in cells")
	density := flag.Float64("density", 0.3, "alive probability of the random fill")
	seeds := flag.Int("seeds", 200, "number of seeds to run")
	start := flag.Int64("start", 1, "first seed")
	gens := flag.Int("gens", 2000, "generation limit per seed")
	window := flag.Int("window", 16, "longest oscillator period detected")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "longest-lived seeds to list")
	flag.Parse()

	if *width <= 0 || *height <= 0 || *seeds <= 0 || *workers <= 0 {
		log.Fatal("w, h, seeds and workers must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Running %d seeds on %dx%d at density %.2f (%d workers, %d generations)\n",
		*seeds, *width, *height, *density, *workers, *gens)

	results := make([]seedResult, *seeds)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(*workers)
	begin := time.Now()
	for i := range results {
		seed := *start + int64(i)
		eg.Go(func() error {
			g := core.NewGrid(*width, *height)
			core.Randomize(g, seed, *density)
			r, err := stats.Settle(ctx, g, *gens, *window)
			if err != nil {
				return err
			}
			results[i] = seedResult{seed: seed, Result: r, done: true}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Printf("census interrupted: %v", err)
	}
	elapsed := time.Since(begin)

	var finished []seedResult
	outcomes := map[string]int{}
	for _, r := range results {
		if !r.done {
			continue
		}
		finished = append(finished, r)
		outcomes[r.Outcome()]++
	}
	sort.Slice(finished, func(i, j int) bool {
		if finished[i].Generation != finished[j].Generation {
			return finished[i].Generation > finished[j].Generation
		}
		return finished[i].seed < finished[j].seed
	})

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(finished)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(finished) && i < *top; i++ {
		r := finished[i]
		fmt.Printf("%2d) seed=%d gen=%d pop=%d peak=%d %s\n",
			i+1, r.seed, r.Generation, r.Population, r.Peak, r.Outcome())
	}

	names := make([]string, 0, len(outcomes))
	for name := range outcomes {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("\nOutcomes over %d seeds:\n", len(finished))
	for _, name := range names {
		fmt.Printf("  %-16s %d\n", name, outcomes[name])
	}
}
