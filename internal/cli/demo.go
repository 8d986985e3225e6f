package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pfio-labs/pfio/internal/cfile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	demoPath   string
	demoText   string
	demoBuffer int
)

func init() {
	demoCmd.Flags().StringVar(&demoPath, "path", "", "File to create (default from demo.path)")
	demoCmd.Flags().StringVar(&demoText, "text", "", "Text to write (default from demo.text)")
	demoCmd.Flags().IntVar(&demoBuffer, "buffer", 0, "Read-back buffer size in bytes (default from demo.buffer)")
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write a file, flush, rewind and read it back",
	Long: `Open a file in create-read-write mode (w+), write text, flush, rewind,
read the text back into a caller-allocated buffer and print it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		path, text, size := demoPath, demoText, demoBuffer
		if path == "" {
			path = env.cfg.DemoPath()
		}
		if !cmd.Flags().Changed("text") {
			text = env.cfg.DemoText()
		}
		if !cmd.Flags().Changed("buffer") {
			size = env.cfg.DemoBuffer()
		}

		got, err := runDemo(env.fs, env.log, path, text, size)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), got)
		return nil
	},
}

// runDemo performs the write/flush/rewind/read-back round trip and returns
// what was read. size is the capacity of the read-back buffer.
func runDemo(fsys afero.Fs, log *slog.Logger, path, text string, size int) (string, error) {
	var got string
	err := cfile.With(fsys, path, cfile.ModeReadWriteCreate, func(f *cfile.File) error {
		log.Debug("opened", "path", path, "mode", f.Mode())

		n, err := f.Puts(text)
		if err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Debug("wrote", "bytes", n)

		if err := f.Flush(); err != nil {
			return fmt.Errorf("flushing %s: %w", path, err)
		}
		if err := f.Rewind(); err != nil {
			return fmt.Errorf("rewinding %s: %w", path, err)
		}

		buf := make([]byte, max(size, 0))
		n, err = f.Gets(buf)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		got = string(buf[:n])
		log.Debug("read back", "bytes", n)
		return nil
	})
	if err != nil {
		return "", err
	}
	log.Debug("closed", "path", path)
	return got, nil
}
