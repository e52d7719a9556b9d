// Command xor-delivery demonstrates how much a closest-farm ranking reveals
// about the customer position it was computed for.
//
// # Commands
//
// demo: Rank a fixed farm set around a customer position, then recover the
// position back from nothing but the ranking.
//
//	go run ./cmd/xor-delivery demo --position=10 --count=10
//
// selfcheck: Round trip many random positions over a random farm set across
// concurrent workers. A non-zero exit means a genuine ranking failed to
// reconstruct, which would be a bug.
//
//	go run ./cmd/xor-delivery selfcheck --trials=1000 --points=2000 --seed=7
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/dalibor-matura/xor-distance-exercise/delivery"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/atomic"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "demo":
		err = runDemo(os.Args[2:])
	case "selfcheck":
		err = runSelfCheck(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`xor-delivery - closest-farm rankings and what they leak

Usage:
  xor-delivery <command> [options]

Commands:
  demo       Rank farms around a position and recover the position back
  selfcheck  Round trip random positions over a random farm set

Run 'xor-delivery <command> --help' for command-specific options.`)
}

func runDemo(args []string) error {
	flags := flag.NewFlagSet("demo", flag.ExitOnError)
	var (
		position = flags.Uint64("position", 10, "customer position to query")
		count    = flags.Int("count", 10, "how many closest farms to list")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	farms := []uint64{0, 1, 2, 4, 6, 8, 12, 18, 19, 20, 21, 22, 406, 407, 408, 409, 410, 444, 445}
	system := delivery.New(farms)

	fmt.Printf("Farms: %v\n", system.Farms())
	closest := system.ClosestFarms(*position, *count)
	fmt.Printf("Closest %d farms to position %d: %v\n", len(closest), *position, closest)

	recovered, ok, err := system.ReverseClosestFarms(closest)
	if err != nil {
		return fmt.Errorf("reversing closest farms: %w", err)
	}
	if !ok {
		return fmt.Errorf("no position reproduces the ranking %v", closest)
	}

	fmt.Printf("Recovered position from the ranking alone: %d\n", recovered)
	fmt.Printf("Closest %d farms to position %d: %v\n", len(closest), recovered, system.ClosestFarms(recovered, *count))
	return nil
}

func runSelfCheck(args []string) error {
	flags := flag.NewFlagSet("selfcheck", flag.ExitOnError)
	var (
		points  = flags.Int("points", 2000, "random farms in the set")
		trials  = flags.Int("trials", 200, "random positions to round trip")
		count   = flags.Int("count", 10, "closest farms per query")
		seed    = flags.Int64("seed", time.Now().UnixNano(), "randomness seed, printed for replay")
		workers = flags.Int("workers", runtime.NumCPU(), "concurrent trial workers")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *points < 1 || *trials < 1 {
		return fmt.Errorf("--points and --trials must be positive")
	}
	if *workers < 1 {
		*workers = 1
	}

	fmt.Printf("Round tripping %d positions over %d farms (seed %d)\n", *trials, *points, *seed)

	// One generator, drained up front; *rand.Rand is not safe for
	// concurrent use by the workers.
	rng := rand.New(rand.NewSource(*seed))
	farms := make([]uint64, *points)
	for i := range farms {
		farms[i] = rng.Uint64()
	}
	positions := make([]uint64, *trials)
	for i := range positions {
		positions[i] = rng.Uint64()
	}

	system := delivery.New(farms)
	bar := progressbar.Default(int64(*trials))

	var (
		wg     sync.WaitGroup
		passed atomic.Uint64
		failed atomic.Uint64
	)
	jobs := make(chan uint64)

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for position := range jobs {
				closest := system.ClosestFarms(position, *count)
				recovered, ok, err := system.ReverseClosestFarms(closest)
				if err == nil && ok && slices.Equal(system.ClosestFarms(recovered, *count), closest) {
					passed.Inc()
				} else {
					failed.Inc()
				}
				bar.Add(1)
			}
		}()
	}

	for _, position := range positions {
		jobs <- position
	}
	close(jobs)
	wg.Wait()

	fmt.Printf("Round trips: %d passed, %d failed\n", passed.Load(), failed.Load())
	if failed.Load() > 0 {
		return fmt.Errorf("%d of %d round trips failed (seed %d)", failed.Load(), *trials, *seed)
	}
	return nil
}
