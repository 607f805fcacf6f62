package main

import (
	"fmt"

	"github.com/langulus/rtti/meta"
	"github.com/langulus/rtti/registry"
	"github.com/langulus/rtti/token"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "lookup <token>",
		Short: "Look up a descriptor by token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args[0])
		},
	})
}

func runLookup(tok string) error {
	db := registry.Global()
	t := token.Token(tok)

	if d, err := db.GetMetaData(t); err == nil {
		return printDescriptor("data", d.Base(), map[string]any{
			"size":        d.Size,
			"alignment":   d.Alignment,
			"is_pod":      d.IsPOD,
			"is_abstract": d.IsAbstract,
			"is_sparse":   d.IsSparse,
			"members":     len(d.Members),
			"bases":       len(d.Bases),
		})
	}
	if tr, err := db.GetMetaTrait(t); err == nil {
		return printDescriptor("trait", tr.Base(), nil)
	}
	if v, err := db.GetMetaVerb(t); err == nil {
		return printDescriptor("verb", v.Base(), map[string]any{
			"token_reverse": v.TokenReverse,
			"precedence":    v.Precedence,
		})
	}
	if c, err := db.GetMetaConstant(t); err == nil {
		return printDescriptor("constant", c.Base(), nil)
	}
	return fmt.Errorf("rttictl: no descriptor registered under %q", tok)
}

func printDescriptor(kind string, m *meta.Meta, extra map[string]any) error {
	if jsonOut {
		out := map[string]any{
			"kind":         kind,
			"token":        m.Token,
			"library_name": m.LibraryName,
			"references":   m.References(),
		}
		for k, v := range extra {
			out[k] = v
		}
		return printJSON(out)
	}
	printInfo("%s %s (library=%s, refs=%d)\n", kind, m.Token, m.LibraryName, m.References())
	for k, v := range extra {
		printInfo("  %s: %v\n", k, v)
	}
	return nil
}
