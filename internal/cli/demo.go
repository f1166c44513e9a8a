package cli

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"rentdesk/internal/adapter/memory"
	"rentdesk/internal/adapter/rest"
	"rentdesk/internal/adapter/stubapi"
	"rentdesk/internal/app"
	"rentdesk/internal/domain"

	"github.com/spf13/cobra"
)

// newDemoCommand runs the whole stack offline: a seeded in-memory
// backend served over a loopback HTTP listener, consumed through the
// same rest gateways a real deployment uses, rendered as the dashboard.
func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run an offline demo against a seeded in-memory backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := memory.New()
			if err := memory.Seed(backend); err != nil {
				return err
			}

			ln, err := net.Listen("tcp", "127.0.0.1:0")
			if err != nil {
				return err
			}
			srv := &http.Server{Handler: stubapi.New(backend).Handler()}
			go srv.Serve(ln) //nolint:errcheck
			defer srv.Close()

			client := rest.NewClient("http://"+ln.Addr().String(), 5*time.Second, &memCredentials{})
			store := app.New(app.Gateways{
				Properties:    rest.NewPropertyGateway(client),
				Tenants:       rest.NewTenantGateway(client),
				Contracts:     rest.NewContractGateway(client),
				PropertyTypes: rest.NewPropertyTypeGateway(client),
				Users:         rest.NewUserGateway(client),
				Session:       rest.NewSessionGateway(client),
			}, app.NopNotifier{})

			if _, err := store.Login(cmd.Context(), memory.DemoEmail, memory.DemoPassword); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "demo workspace (in-memory backend)")
			fmt.Fprintln(cmd.OutOrStdout())
			renderDashboard(cmd.OutOrStdout(), store, 30)
			return nil
		},
	}
}

// memCredentials keeps the session in memory only; the demo must not
// touch the real state file.
type memCredentials struct {
	mu    sync.Mutex
	token string
	user  *domain.User
}

var _ rest.Credentials = (*memCredentials)(nil)

func (c *memCredentials) Token() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token, nil
}

func (c *memCredentials) SaveSession(token string, user *domain.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.user = user
	return nil
}

func (c *memCredentials) SavedUser() (*domain.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user, nil
}

func (c *memCredentials) ClearSession() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.user = nil
	return nil
}
