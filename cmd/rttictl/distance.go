package main

import (
	"fmt"

	"github.com/langulus/rtti/cast"
	"github.com/langulus/rtti/registry"
	"github.com/langulus/rtti/token"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "distance <from-token> <to-token>",
		Short: "Count base hops between two registered data types",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistance(args[0], args[1])
		},
	})
}

func runDistance(from, to string) error {
	db := registry.Global()
	a, err := db.GetMetaData(token.Token(from))
	if err != nil {
		return fmt.Errorf("rttictl: %s: %w", from, err)
	}
	b, err := db.GetMetaData(token.Token(to))
	if err != nil {
		return fmt.Errorf("rttictl: %s: %w", to, err)
	}
	n := cast.GetDistanceTo(a, b)
	if n == cast.Infinite {
		if jsonOut {
			return printJSON(map[string]any{"from": from, "to": to, "distance": nil})
		}
		printInfo("%s is not related to %s\n", from, to)
		return nil
	}
	if jsonOut {
		return printJSON(map[string]any{"from": from, "to": to, "distance": n})
	}
	printInfo("%s -> %s: %d base hop(s)\n", from, to, n)
	return nil
}
