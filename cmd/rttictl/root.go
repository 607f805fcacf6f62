// Command rttictl introspects the process-global RTTI registry: look up a
// descriptor by token, list every descriptor sharing an ambiguous short
// name, resolve an operator spelling to its verb, compute the base-hop
// distance between two data types, or unload an entire library boundary.
//
// Grounded on joshuapare-hivekit's cmd/hivectl: a root command carrying
// persistent --json/--verbose flags, one file per subcommand registering
// itself from init(), and small printInfo/printJSON output helpers rather
// than a templating layer.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	jsonOut bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:     "rttictl",
	Short:   "Inspect the process-global RTTI registry",
	Long:    `rttictl looks up, lists and unloads descriptors in the RTTI registry.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

func main() {
	registerBuiltins()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printInfo(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}

func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
