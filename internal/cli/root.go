// Package cli wires the cobra command tree over the domain state store.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	APIBaseURL string
	StatePath  string
}

// NewRootCommand creates the root command for the rentdesk CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "rentdesk",
		Short:         "rentdesk - property management client",
		Long:          "A terminal client for the rentdesk property-management service:\nproperties, tenants, lease contracts and the dashboard that ties them together.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML profile file")
	cmd.PersistentFlags().StringVar(&opts.APIBaseURL, "api-url", "", "base URL of the backing service (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.StatePath, "state", "", "path of the local state file (overrides config)")

	cmd.AddCommand(newLoginCommand(opts))
	cmd.AddCommand(newRegisterCommand(opts))
	cmd.AddCommand(newLogoutCommand(opts))
	cmd.AddCommand(newDashboardCommand(opts))
	cmd.AddCommand(newSyncCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newThemeCommand(opts))
	cmd.AddCommand(newDemoCommand())

	return cmd
}
