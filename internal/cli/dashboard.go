package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"rentdesk/internal/app"
	"rentdesk/internal/format"

	"github.com/spf13/cobra"
)

func newDashboardCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show occupancy, revenue and upcoming renewals",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(opts)
			if err != nil {
				return err
			}
			defer env.close()

			if err := env.requireSession(cmd.Context()); err != nil {
				return err
			}
			renderDashboard(cmd.OutOrStdout(), env.store, env.cfg.RenewalWindowDays)
			return nil
		},
	}
	return cmd
}

func renderDashboard(w io.Writer, store *app.Store, renewalWindowDays int) {
	breakdown := store.PropertyStatusBreakdown()
	total := breakdown.Available + breakdown.Rented + breakdown.Maintenance

	fmt.Fprintln(w, "DASHBOARD")
	fmt.Fprintf(w, "Available properties: %d of %d\n", breakdown.Available, total)
	fmt.Fprintf(w, "Occupancy rate:       %.1f%%\n", store.OccupancyRate())
	fmt.Fprintf(w, "Monthly revenue:      %s\n", format.Currency(store.MonthlyRevenue()))
	fmt.Fprintf(w, "Status breakdown:     %d rented / %d available / %d maintenance\n",
		breakdown.Rented, breakdown.Available, breakdown.Maintenance)

	if recent := store.RecentProperties(3); len(recent) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "RECENT PROPERTIES")
		for _, p := range recent {
			fmt.Fprintf(w, "  %s (%s, %s)\n", p.Title, p.Type, p.Status)
		}
	}

	fmt.Fprintln(w)
	renderRenewals(w, store.UpcomingRenewals(renewalWindowDays), renewalWindowDays)
}

func renderRenewals(w io.Writer, renewals []app.Renewal, windowDays int) {
	fmt.Fprintf(w, "UPCOMING RENEWALS (next %d days)\n", windowDays)
	if len(renewals) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROPERTY\tTENANT\tENDS\tDAYS LEFT")
	for _, r := range renewals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			r.PropertyTitle, r.TenantName, format.Date(r.Contract.EndDate), r.DaysRemaining)
	}
	_ = tw.Flush()
}
