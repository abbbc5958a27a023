package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/stevedwards/record-layout-benchmarks/internal/bench"
	"github.com/stevedwards/record-layout-benchmarks/internal/layout"
	"github.com/stevedwards/record-layout-benchmarks/internal/stream"
)

func streamCommand() *cli.Command {
	return &cli.Command{
		Name:  "stream",
		Usage: "Time streamed summation over each transport",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "n",
				Usage: "Collection size (overrides config mem_size)",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Print producer progress during the run",
			},
		},
		Action: runStream,
	}
}

func runStream(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	n := cfg.MemSize
	if c.Int("n") > 0 {
		n = c.Int("n")
	}

	src := layout.NewFlatSlice()
	src.Build(n)
	want := src.Sum()

	var opts []stream.Option
	if c.Bool("progress") {
		opts = append(opts, stream.WithProgress(500*time.Millisecond, func(sent int) {
			fmt.Printf("\r  ... %d/%d records", sent, n)
		}))
	}

	transports := []struct {
		name string
		make func() (stream.Transport, error)
	}{
		{"channel", func() (stream.Transport, error) {
			return stream.NewChannel(cfg.QueueSize), nil
		}},
		{"spsc-ring", func() (stream.Transport, error) {
			return stream.NewRing(cfg.QueueSize), nil
		}},
		{"sharded-ring", func() (stream.Transport, error) {
			return stream.NewSharded(cfg.QueueSize, 1)
		}},
	}

	fmt.Printf("Streamed summation: %d records per run (repeats=%d, queue=%d)\n",
		n, cfg.Repeats, cfg.QueueSize)
	rule()

	results := make([]bench.Result, 0, len(transports)+1)

	// Direct traversal is the no-handoff baseline.
	results = append(results, bench.Measure("direct", cfg.Repeats, n, func() {
		sumSink = src.Sum()
	}))

	for _, tc := range transports {
		var runErr error
		r := bench.Measure(tc.name, cfg.Repeats, n, func() {
			tr, err := tc.make()
			if err != nil {
				runErr = err
				return
			}
			p := stream.New(tr, opts...)
			got, err := p.Sum(c.Context, src)
			if err != nil {
				runErr = err
				return
			}
			if got != want {
				runErr = fmt.Errorf("transport %s: sum %d, want %d", tc.name, got, want)
			}
		})
		if runErr != nil {
			return runErr
		}
		if c.Bool("progress") {
			fmt.Println()
		}
		results = append(results, r)
	}

	printResults(results)
	return nil
}
