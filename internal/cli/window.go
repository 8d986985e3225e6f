package cli

import (
	"errors"
	"fmt"

	"github.com/pfio-labs/pfio/internal/descriptor"
	"github.com/pfio-labs/pfio/internal/winapi"
	"github.com/spf13/cobra"
)

func init() {
	descriptorCmd.AddCommand(descriptorValidateCmd)
	rootCmd.AddCommand(windowCmd, descriptorCmd)
}

var windowCmd = &cobra.Command{
	Use:   "window <descriptor.yaml>",
	Short: "Register, create and show a window from a descriptor (Windows)",
	Long: `Load a window descriptor, register its class, create and show the
window, then block on a message box. The window is destroyed once the box
is dismissed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)

		d, err := descriptor.Load(env.fs, args[0])
		if err != nil {
			return err
		}
		inst, err := winapi.NewInstance()
		if err != nil {
			return fmt.Errorf("reading startup parameters: %w", err)
		}
		r, err := d.Resolve(inst, nil)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}

		id, err := showWindow(r)
		if err != nil {
			return err
		}
		env.log.Debug("window closed", "class", r.Class.ClassName, "button", winapi.ButtonName(id))
		fmt.Fprintln(cmd.OutOrStdout(), winapi.ButtonName(id))
		return nil
	},
}

// showWindow drives one window through its lifetime and always destroys it.
func showWindow(r *descriptor.Resolved) (id int, err error) {
	if _, err := winapi.RegisterClass(r.Class); err != nil {
		return 0, fmt.Errorf("registering class %s: %w", r.Class.ClassName, err)
	}
	hwnd, err := winapi.CreateWindow(r.Window)
	if err != nil {
		return 0, fmt.Errorf("creating window: %w", err)
	}
	defer func() {
		err = errors.Join(err, winapi.DestroyWindow(hwnd))
	}()

	winapi.ShowWindow(hwnd, r.Show)

	msg := r.Message
	if msg == nil {
		msg = &descriptor.ResolvedMessage{Text: "Close to exit.", Caption: r.Window.WindowName, Flags: winapi.MB_OK}
	}
	return winapi.MessageBox(hwnd, msg.Text, msg.Caption, msg.Flags)
}

var descriptorCmd = &cobra.Command{
	Use:   "descriptor",
	Short: "Work with window descriptor files",
}

var descriptorValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a window descriptor against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := envFrom(cmd)
		result, err := descriptor.ValidateFile(env.fs, args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "  [FAIL] %s: %s (%s)\n", issue.Path, issue.Message, issue.Keyword)
			}
			return fmt.Errorf("%s: %d issue(s)", args[0], len(result.Issues))
		}

		d, err := descriptor.Load(env.fs, args[0])
		if err != nil {
			return err
		}
		if _, err := d.Resolve(winapi.Instance{}, nil); err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return fmt.Errorf("%s: unresolvable flags", args[0])
		}
		fmt.Fprintf(out, "  [ OK ] %s\n", args[0])
		return nil
	},
}
