package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pfio-labs/pfio/internal/cdir"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var lsLong bool

func init() {
	lsCmd.Flags().BoolVarP(&lsLong, "long", "l", false, "Show mode, size and modification time")
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List directory entries in stream order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return listDir(env.fs, dir, cmd.OutOrStdout(), lsLong)
	},
}

// listDir writes one line per entry in the order the directory stream
// returns them.
func listDir(fsys afero.Fs, dir string, w io.Writer, long bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	err := cdir.With(fsys, dir, func(d *cdir.Dir) error {
		for {
			info, err := d.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			printEntry(tw, info, long)
		}
	})
	if err != nil {
		return err
	}
	return tw.Flush()
}

func printEntry(w io.Writer, info os.FileInfo, long bool) {
	name := info.Name()
	if info.IsDir() {
		name += "/"
	}
	if !long {
		fmt.Fprintln(w, name)
		return
	}
	fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", info.Mode(), info.Size(), info.ModTime().Format("2006-01-02 15:04"), name)
}
