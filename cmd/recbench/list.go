package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/stevedwards/record-layout-benchmarks/internal/layout"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "Show the layout roster",
		Action: runList,
	}
}

// descriptions matches the registry's canonical order.
var descriptions = map[string]string{
	"value-struct":   "[]Record, structs by value (baseline)",
	"pointer-struct": "[]*Record, one heap allocation per record",
	"array":          "[][5]int64, fixed arrays by value",
	"nested-slice":   "[][]int64, one slice per record",
	"map":            "[]map[string]int64, one dict per record",
	"boxed":          "[]any, records behind interface values",
	"flat":           "single []int64 with stride 5",
	"columnar":       "five parallel []int64 columns",
}

func runList(c *cli.Context) error {
	fmt.Println("Layouts (canonical order):")
	rule()
	for _, name := range layout.Names() {
		fmt.Printf("  %-16s %s\n", name, descriptions[name])
	}
	return nil
}
