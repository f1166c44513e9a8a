package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"rentdesk/internal/app"
	"rentdesk/internal/format"

	"github.com/spf13/cobra"
)

func newListCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List loaded entities",
	}
	cmd.AddCommand(
		newListEntityCommand(opts, "properties", "List properties", listProperties),
		newListEntityCommand(opts, "tenants", "List tenants", listTenants),
		newListEntityCommand(opts, "contracts", "List lease contracts", listContracts),
		newListEntityCommand(opts, "types", "List property types", listTypes),
		newListEntityCommand(opts, "users", "List user accounts (admin only)", listUsers),
	)
	return cmd
}

func newListEntityCommand(opts *RootOptions, use, short string, render func(io.Writer, *app.Store)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(opts)
			if err != nil {
				return err
			}
			defer env.close()

			if err := env.requireSession(cmd.Context()); err != nil {
				return err
			}
			render(cmd.OutOrStdout(), env.store)
			return nil
		},
	}
}

func listProperties(w io.Writer, store *app.Store) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tTYPE\tSTATUS\tADDRESS")
	for _, p := range store.Properties() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Title, p.Type, p.Status, p.Address)
	}
	_ = tw.Flush()
}

func listTenants(w io.Writer, store *app.Store) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tPHONE\tDOCUMENT")
	for _, t := range store.Tenants() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Name, t.Email, format.Phone(t.Phone), format.CPF(t.Document))
	}
	_ = tw.Flush()
}

func listContracts(w io.Writer, store *app.Store) {
	properties := make(map[string]string)
	for _, p := range store.Properties() {
		properties[p.ID] = p.Title
	}
	tenants := make(map[string]string)
	for _, t := range store.Tenants() {
		tenants[t.ID] = t.Name
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROPERTY\tTENANT\tSTATUS\tSTART\tEND\tRENT")
	for _, c := range store.Contracts() {
		property := properties[c.PropertyID]
		if property == "" {
			property = app.UnknownProperty
		}
		tenant := tenants[c.TenantID]
		if tenant == "" {
			tenant = app.UnknownTenant
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			property, tenant, c.Status,
			format.Date(c.StartDate), format.Date(c.EndDate), format.Currency(c.MonthlyRent))
	}
	_ = tw.Flush()
}

func listTypes(w io.Writer, store *app.Store) {
	for _, t := range store.PropertyTypes() {
		fmt.Fprintln(w, t.Name)
	}
}

func listUsers(w io.Writer, store *app.Store) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tROLE\tACTIVE")
	for _, u := range store.Users() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", u.Name, u.Email, u.Role, u.Active)
	}
	_ = tw.Flush()
}
