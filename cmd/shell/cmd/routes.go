package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/compliance-shell/internal/router"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the shell's routes and their navigation labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tLABEL")
		for _, r := range router.Default() {
			fmt.Fprintf(w, "%s\t%s\n", r.Path, r.Label)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
