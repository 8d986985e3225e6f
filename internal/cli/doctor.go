package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pfio-labs/pfio/internal/branding"
	"github.com/pfio-labs/pfio/internal/cfile"
	"github.com/pfio-labs/pfio/internal/platform"
	"github.com/pfio-labs/pfio/internal/winapi"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which platform calls work here",
	Long:  `Run diagnostic checks against the configuration, the filesystem and the windowing system.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Config check:")
		checkConfigFile(out, env)

		fmt.Fprintln(out, "Filesystem check:")
		tmp := os.TempDir()
		if err := checkRoundTrip(env.fs, tmp); err != nil {
			fmt.Fprintf(out, "  [FAIL] file round trip in %s: %v\n", tmp, err)
		} else {
			fmt.Fprintf(out, "  [ OK ] file round trip in %s\n", tmp)
		}
		if platform.IsSymlinkSupported(env.fs, tmp) {
			fmt.Fprintln(out, "  [ OK ] native symlinks")
		} else {
			fmt.Fprintln(out, "  [INFO] native symlinks unavailable, ln will copy")
		}

		fmt.Fprintln(out, "Windowing check:")
		if winapi.Supported() {
			fmt.Fprintln(out, "  [ OK ] user32.dll loaded")
		} else {
			fmt.Fprintln(out, "  [INFO] windowing calls not available on this platform")
		}
		return nil
	},
}

func checkConfigFile(w io.Writer, env *appEnv) {
	path := env.cfg.Path()
	if _, err := env.fs.Stat(path); err != nil {
		fmt.Fprintf(w, "  [MISS] %s does not exist (defaults in use)\n", path)
	} else {
		fmt.Fprintf(w, "  [ OK ] %s loaded\n", path)
	}
	if _, err := env.cfg.FilePerm(); err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
	}
	fmt.Fprintf(w, "  [INFO] environment overrides use the %s prefix (e.g. %s)\n",
		branding.EnvPrefix()+"_", branding.EnvVar("log_level"))
}

// checkRoundTrip writes, rewinds and reads back a temporary file in dir,
// then removes it.
func checkRoundTrip(fsys afero.Fs, dir string) error {
	const probe = "pfio doctor\n"

	f, err := cfile.Temp(fsys, dir, "pfio-doctor-*")
	if err != nil {
		return err
	}
	defer cfile.Remove(fsys, f.Name())

	if _, err := f.Puts(probe); err != nil {
		f.Close()
		return err
	}
	if err := f.Rewind(); err != nil {
		f.Close()
		return err
	}
	buf := make([]byte, len(probe))
	n, err := f.Gets(buf)
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if string(buf[:n]) != probe {
		return fmt.Errorf("read back %q, want %q", buf[:n], probe)
	}
	return nil
}
