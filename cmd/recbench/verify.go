package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/stevedwards/record-layout-benchmarks/internal/layout"
)

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:   "verify",
		Usage:  "Check that every layout holds identical records",
		Action: runVerify,
	}
}

func runVerify(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	for _, n := range cfg.Sizes {
		fmt.Printf("Verifying %d records across layouts\n", n)
		rule()

		wantSum := int64(n) * int64(n-1) / 2
		layouts := cfg.SelectedLayouts()

		var wantChecksum uint64
		for i, l := range layouts {
			l.Build(n)

			if got := l.Len(); got != n {
				return fmt.Errorf("layout %s: built %d records, want %d", l.Name(), got, n)
			}
			if got := l.Sum(); got != wantSum {
				return fmt.Errorf("layout %s: sum %d, want %d", l.Name(), got, wantSum)
			}

			sum := layout.Checksum(l)
			if i == 0 {
				wantChecksum = sum
			} else if sum != wantChecksum {
				return fmt.Errorf("layout %s: checksum %016x differs from %s's %016x",
					l.Name(), sum, layouts[0].Name(), wantChecksum)
			}

			fmt.Printf("  %-16s sum=%d checksum=%016x  ok\n", l.Name(), l.Sum(), sum)
			l.Release()
		}
		fmt.Println()
	}

	return nil
}
