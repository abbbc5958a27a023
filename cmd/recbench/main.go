// Command recbench benchmarks in-memory representations of a fixed
// five-field record.
//
// Usage:
//
//	recbench time              construction and summation timing
//	recbench mem               allocated/retained memory per layout
//	recbench verify            cross-layout equivalence check
//	recbench stream            streamed summation over each transport
//	recbench list              show the layout roster
//
// Run parameters come from recbench.toml when present; flags override.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/stevedwards/record-layout-benchmarks/internal/config"
)

func main() {
	app := &cli.App{
		Name:  "recbench",
		Usage: "Benchmark in-memory layouts of a fixed five-field record",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultPath,
			},
			&cli.IntSliceFlag{
				Name:  "size",
				Usage: "Collection sizes to measure (overrides config)",
			},
			&cli.IntFlag{
				Name:    "repeats",
				Aliases: []string{"r"},
				Usage:   "Timed repeats per measurement (overrides config)",
			},
			&cli.StringSliceFlag{
				Name:    "layout",
				Aliases: []string{"l"},
				Usage:   "Restrict to named layouts (overrides config)",
			},
		},
		Commands: []*cli.Command{
			timeCommand(),
			memCommand(),
			verifyCommand(),
			streamCommand(),
			listCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "recbench:", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies CLI flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if sizes := c.IntSlice("size"); len(sizes) > 0 {
		cfg.Sizes = sizes
	}
	if r := c.Int("repeats"); r > 0 {
		cfg.Repeats = r
	}
	if layouts := c.StringSlice("layout"); len(layouts) > 0 {
		cfg.Layouts = layouts
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func rule() {
	fmt.Println("─────────────────────────────────────────────────────────────────")
}
