package main

import (
	"fmt"

	"github.com/langulus/rtti/registry"
	"github.com/langulus/rtti/token"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "operator <spelling>",
		Short: "Resolve an operator spelling to its verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperator(args[0])
		},
	})
}

func runOperator(spelling string) error {
	v, err := registry.Global().GetOperator(token.Token(spelling))
	if err != nil {
		return fmt.Errorf("rttictl: no verb bound to operator %q", spelling)
	}
	if jsonOut {
		return printJSON(map[string]any{
			"operator": spelling,
			"verb":     v.Token,
			"reverse":  v.TokenReverse,
		})
	}
	printInfo("%q resolves to verb %s (reverse %s)\n", spelling, v.Token, v.TokenReverse)
	return nil
}
