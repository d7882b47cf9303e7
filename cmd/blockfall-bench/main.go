// Command blockfall-bench plays many seeded games with random input as fast
// as possible and prints a markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the bench should run for.")
	games := flag.Int("games", 64, "The number of games played side by side.")
	seed := flag.Uint64("seed", 1, "Seed for piece sequences and player input.")
	randomizer := flag.String("randomizer", config.RandomizerUniform, "Piece randomizer: uniform or bag.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	var generator func(uint64) tetris.Generator
	switch *randomizer {
	case config.RandomizerUniform:
		generator = func(s uint64) tetris.Generator { return tetris.NewUniform(s) }
	case config.RandomizerBag:
		generator = func(s uint64) tetris.Generator { return tetris.NewBag(s) }
	default:
		log.Fatalf("Unknown randomizer %q", *randomizer)
	}
	if *games <= 0 {
		log.Fatalf("At least one game is required, got %d", *games)
	}

	session := uuid.NewString()
	log.Printf("Starting bench %s with %d games...\n", session, *games)

	world := NewWorld(*games, *seed, generator)
	scheduler := NewScheduler(world)

	report := &Report{
		Session:        session,
		Duration:       *duration,
		Games:          *games,
		Seed:           *seed,
		Randomizer:     *randomizer,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(Frame.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	world.Finish()
	report.Totals = *world.Totals.Get()
	report.Systems = scheduler.GetStats()

	log.Println("Bench finished.")

	fmt.Println("\n\n--- Bench Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
