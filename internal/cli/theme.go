package cli

import (
	"fmt"

	"rentdesk/internal/adapter/localstore"
	"rentdesk/internal/config"

	"github.com/spf13/cobra"
)

// The theme preference is persisted independently of the session, so
// this command talks to the local state file directly and never touches
// the backend.
func newThemeCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Show or set the theme preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if opts.StatePath != "" {
				cfg.StatePath = opts.StatePath
			}
			state, err := localstore.Open(cfg.StatePath)
			if err != nil {
				return err
			}
			defer state.Close() //nolint:errcheck

			if len(args) == 1 {
				switch args[0] {
				case "dark":
					return state.SetDarkMode(true)
				case "light":
					return state.SetDarkMode(false)
				default:
					return fmt.Errorf("unknown theme %q: use dark or light", args[0])
				}
			}

			dark, err := state.DarkMode()
			if err != nil {
				return err
			}
			if dark {
				fmt.Fprintln(cmd.OutOrStdout(), "dark")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "light")
			}
			return nil
		},
	}
	return cmd
}
