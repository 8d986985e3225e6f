package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pfio-labs/pfio/internal/cfile"
	"github.com/spf13/cobra"
)

var (
	catMode    string
	writeMode  string
	writeNL    bool
	seekWhence int
	seekMode   string
)

func init() {
	catCmd.Flags().StringVar(&catMode, "mode", string(cfile.ModeRead), "Open mode")
	writeCmd.Flags().StringVar(&writeMode, "mode", string(cfile.ModeWrite), "Open mode")
	writeCmd.Flags().BoolVarP(&writeNL, "newline", "n", false, "Append a newline after the text")
	seekCmd.Flags().IntVar(&seekWhence, "whence", cfile.SeekSet, "0 = from start, 1 = from current, 2 = from end")
	seekCmd.Flags().StringVar(&seekMode, "mode", string(cfile.ModeRead), "Open mode")
	rootCmd.AddCommand(catCmd, writeCmd, seekCmd)
}

var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		if mode := cfile.Mode(catMode); !mode.Readable() {
			return fmt.Errorf("mode %q does not permit reads", mode)
		}
		return cfile.With(env.fs, args[0], cfile.Mode(catMode), func(f *cfile.File) error {
			n, err := io.Copy(cmd.OutOrStdout(), f)
			env.log.Debug("copied", "path", f.Name(), "bytes", n)
			return err
		})
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <file> <text>",
	Short: "Write text to a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		if mode := cfile.Mode(writeMode); !mode.Writable() {
			return fmt.Errorf("mode %q does not permit writes", mode)
		}
		perm, err := env.cfg.FilePerm()
		if err != nil {
			return err
		}

		f, err := cfile.OpenFile(env.fs, args[0], cfile.Mode(writeMode), perm)
		if err != nil {
			return err
		}
		n, err := f.Puts(args[1])
		if err == nil && writeNL {
			err = f.Putc('\n')
			n++
		}
		if err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", args[0], err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		env.log.Debug("wrote", "path", args[0], "bytes", n, "mode", writeMode)
		return nil
	},
}

var seekCmd = &cobra.Command{
	Use:   "seek <file> <offset>",
	Short: "Print the byte at an offset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		offset, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("parsing offset %q: %w", args[1], err)
		}
		return cfile.With(env.fs, args[0], cfile.Mode(seekMode), func(f *cfile.File) error {
			pos, c, err := byteAt(f, offset, seekWhence)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%q\n", pos, c)
			return nil
		})
	},
}

// byteAt seeks and reads one byte, returning the position it was read from.
func byteAt(f *cfile.File, offset int64, whence int) (int64, byte, error) {
	if _, err := f.Seek(offset, whence); err != nil {
		return 0, 0, err
	}
	pos, err := f.Tell()
	if err != nil {
		return 0, 0, err
	}
	c, err := f.Getc()
	if err != nil {
		return pos, 0, err
	}
	return pos, c, nil
}
