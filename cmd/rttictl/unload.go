package main

import (
	"github.com/langulus/rtti/registry"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "unload <boundary>",
		Short: "Remove every descriptor registered under a library boundary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printVerbose("unloading boundary %q\n", args[0])
			registry.Global().UnloadLibrary(args[0])
			printInfo("unloaded boundary %q\n", args[0])
			return nil
		},
	})
}
