package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fc-admin/internal/theme"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [group.shade]",
		Short: "Print one palette color or the whole table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				hex, ok := theme.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown color %q", args[0])
				}
				fmt.Fprintln(out, hex)
				return nil
			}
			flat := theme.Flatten()
			for _, k := range theme.Keys() {
				fmt.Fprintf(out, "%-20s %s\n", k, flat[k])
			}
			return nil
		},
	}
}
