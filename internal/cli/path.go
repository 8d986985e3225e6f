package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pfio-labs/pfio/internal/cfile"
	"github.com/pfio-labs/pfio/internal/platform"
	"github.com/spf13/cobra"
)

var lnRemove bool

func init() {
	lnCmd.Flags().BoolVar(&lnRemove, "remove", false, "Remove the link (and any fallback sidecar) instead of creating it")
	rootCmd.AddCommand(rmCmd, mvCmd, chmodCmd, lnCmd, readlinkCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm <file>",
	Short: "Remove a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cfile.Remove(envFrom(cmd).fs, args[0])
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv <old> <new>",
	Short: "Rename a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cfile.Rename(envFrom(cmd).fs, args[0], args[1])
	},
}

var chmodCmd = &cobra.Command{
	Use:   "chmod <mode> <path>",
	Short: "Change permission bits (no-op on Windows)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := strconv.ParseUint(args[0], 8, 32)
		if err != nil {
			return fmt.Errorf("parsing mode %q: %w", args[0], err)
		}
		return platform.Chmod(envFrom(cmd).fs, args[1], os.FileMode(mode).Perm())
	},
}

var lnCmd = &cobra.Command{
	Use:   "ln <target> <link>",
	Short: "Create a symbolic link",
	Long: `Create a symbolic link. When the platform refuses (Windows without
developer mode) the target is copied and a .target sidecar records it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		if lnRemove {
			return platform.RemoveSymlink(env.fs, args[len(args)-1])
		}
		if len(args) != 2 {
			return fmt.Errorf("ln needs <target> <link>")
		}
		return platform.CreateSymlink(env.fs, args[0], args[1])
	},
}

var readlinkCmd = &cobra.Command{
	Use:   "readlink <link>",
	Short: "Print a link's target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := platform.ReadSymlinkTarget(envFrom(cmd).fs, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), target)
		return nil
	},
}
