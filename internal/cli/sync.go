package cli

import (
	"github.com/spf13/cobra"
)

func newSyncCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh property types and retry pending status writes",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(opts)
			if err != nil {
				return err
			}
			defer env.close()

			if err := env.requireSession(cmd.Context()); err != nil {
				return err
			}
			if err := env.store.SyncPropertyTypes(cmd.Context()); err != nil {
				return err
			}
			return env.store.Reconcile(cmd.Context())
		},
	}
}
