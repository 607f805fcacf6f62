package main

import (
	"fmt"

	"github.com/langulus/rtti/registry"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "ambiguous <short-name>",
		Short: "List every descriptor sharing a last unqualified token segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAmbiguous(args[0])
		},
	})
}

func runAmbiguous(short string) error {
	matches := registry.Global().GetAmbiguousMeta(short)
	if len(matches) == 0 {
		return fmt.Errorf("rttictl: no descriptor resolves %q", short)
	}
	if jsonOut {
		tokens := make([]string, len(matches))
		for i, m := range matches {
			tokens[i] = string(m.Base().Token)
		}
		return printJSON(map[string]any{"short_name": short, "matches": tokens})
	}
	printInfo("%d descriptor(s) resolve %q:\n", len(matches), short)
	for _, m := range matches {
		printInfo("  %s (%s)\n", m.Base().Token, m.Base().Kind())
	}
	return nil
}
