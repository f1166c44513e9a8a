package cli

import (
	"fmt"

	"rentdesk/internal/domain"

	"github.com/spf13/cobra"
)

func newLoginCommand(opts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and load the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(opts)
			if err != nil {
				return err
			}
			defer env.close()

			sess, err := env.store.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (%s)\n", sess.User.Name, sess.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCommand(opts *RootOptions) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(opts)
			if err != nil {
				return err
			}
			defer env.close()

			sess, err := env.store.Register(cmd.Context(), domain.RegisterInput{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "account created for %s\n", sess.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(opts)
			if err != nil {
				return err
			}
			defer env.close()
			return env.store.Logout(cmd.Context())
		},
	}
}
