package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pfio-labs/pfio/internal/cfile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(modesCmd)
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the supported file open modes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "MODE\tACCESS")
		for _, m := range cfile.Modes() {
			fmt.Fprintf(tw, "%s\t%s\n", m, m.Describe())
		}
		return tw.Flush()
	},
}
