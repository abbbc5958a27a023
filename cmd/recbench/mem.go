package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/stevedwards/record-layout-benchmarks/internal/mem"
)

func memCommand() *cli.Command {
	return &cli.Command{
		Name:  "mem",
		Usage: "Measure allocated and retained memory per layout",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "n",
				Usage: "Collection size (overrides config mem_size)",
			},
		},
		Action: runMem,
	}
}

func runMem(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	n := cfg.MemSize
	if c.Int("n") > 0 {
		n = c.Int("n")
	}

	fmt.Printf("Memory per layout: build %d records, GC, measure\n", n)
	rule()

	for _, l := range cfg.SelectedLayouts() {
		u := mem.Measure(func() {
			l.Build(n)
		})

		perRecord := 0.0
		if n > 0 {
			perRecord = float64(u.Retained) / float64(n)
		}

		fmt.Printf("  %-16s retained %12s  allocated %12s  objects %10d  %7.1f B/record\n",
			l.Name(),
			mem.FormatBytes(u.Retained),
			mem.FormatBytes(u.Allocated),
			u.Objects,
			perRecord)

		l.Release()
	}

	fmt.Println("\nNote: deltas are GC-bracketed snapshots and approximate; compare")
	fmt.Println("layouts against each other rather than reading them as absolutes.")
	return nil
}
