package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/stevedwards/record-layout-benchmarks/internal/bench"
)

func timeCommand() *cli.Command {
	return &cli.Command{
		Name:   "time",
		Usage:  "Time collection construction and field summation per layout",
		Action: runTime,
	}
}

// sumSink keeps the summation loop observable so it cannot be elided.
var sumSink int64

func runTime(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	for _, n := range cfg.Sizes {
		layouts := cfg.SelectedLayouts()

		fmt.Printf("Construction: build %d records (repeats=%d)\n", n, cfg.Repeats)
		rule()
		buildResults := make([]bench.Result, len(layouts))
		for i, l := range layouts {
			buildResults[i] = bench.Measure(l.Name(), cfg.Repeats, n, func() {
				l.Build(n)
			})
		}
		printResults(buildResults)

		fmt.Printf("\nSummation: sum the value field of %d records (repeats=%d)\n", n, cfg.Repeats)
		rule()
		sumResults := make([]bench.Result, len(layouts))
		for i, l := range layouts {
			l.Build(n)
			sumResults[i] = bench.Measure(l.Name(), cfg.Repeats, n, func() {
				sumSink = l.Sum()
			})
			l.Release()
		}
		printResults(sumResults)
		fmt.Println()
	}

	return nil
}

// printResults renders one result per line with speedup relative to the
// first entry (the value-struct baseline in canonical order).
func printResults(results []bench.Result) {
	if len(results) == 0 {
		return
	}
	baseline := results[0].NsPerOp()

	for _, r := range results {
		perOp := r.NsPerOp()
		speedup := 0.0
		if perOp > 0 {
			speedup = baseline / perOp
		}
		fmt.Printf("  %-16s %26s  %9.2f ns/op  %6.2fx\n",
			r.Name, r.String(), perOp, speedup)
	}
}
