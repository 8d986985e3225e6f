package cli

import (
	"fmt"

	"github.com/pfio-labs/pfio/internal/winapi"
	"github.com/spf13/cobra"
)

var (
	msgCaption string
	msgFlags   []string
)

func init() {
	msgboxCmd.Flags().StringVar(&msgCaption, "caption", "pfio", "Title bar text")
	msgboxCmd.Flags().StringSliceVar(&msgFlags, "flags", []string{"MB_OK"}, "MB_* flags, comma separated")
	rootCmd.AddCommand(msgboxCmd)
}

var msgboxCmd = &cobra.Command{
	Use:   "msgbox <text>",
	Short: "Show a native message box (Windows)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := winapi.ParseFlags(winapi.MessageBoxFlags, msgFlags)
		if err != nil {
			return err
		}
		id, err := winapi.MessageBox(0, args[0], msgCaption, flags)
		if err != nil {
			return fmt.Errorf("message box: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), winapi.ButtonName(id))
		return nil
	},
}
