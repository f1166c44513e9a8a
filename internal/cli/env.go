package cli

import (
	"context"
	"fmt"
	"log"

	"rentdesk/internal/adapter/localstore"
	"rentdesk/internal/adapter/rest"
	"rentdesk/internal/app"
	"rentdesk/internal/config"
)

// appEnv is one command invocation's wiring: configuration, the local
// state file, and the store bound to the rest gateways.
type appEnv struct {
	cfg   *config.Config
	state *localstore.Store
	store *app.Store
}

// newEnv builds the wiring from flags and configuration.
func newEnv(opts *RootOptions) (*appEnv, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.APIBaseURL != "" {
		cfg.APIBaseURL = opts.APIBaseURL
	}
	if opts.StatePath != "" {
		cfg.StatePath = opts.StatePath
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("no API URL configured; set RENTDESK_API_URL or pass --api-url")
	}

	state, err := localstore.Open(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	client := rest.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, state)
	store := app.New(app.Gateways{
		Properties:    rest.NewPropertyGateway(client),
		Tenants:       rest.NewTenantGateway(client),
		Contracts:     rest.NewContractGateway(client),
		PropertyTypes: rest.NewPropertyTypeGateway(client),
		Users:         rest.NewUserGateway(client),
		Session:       rest.NewSessionGateway(client),
	}, logNotifier{})

	return &appEnv{cfg: cfg, state: state, store: store}, nil
}

// close releases the environment's resources.
func (e *appEnv) close() {
	if err := e.state.Close(); err != nil {
		log.Printf("close state: %v", err)
	}
}

// requireSession restores the persisted session and loads the snapshot,
// failing when the user is not signed in.
func (e *appEnv) requireSession(ctx context.Context) error {
	ok, err := e.store.RestoreSession(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("not signed in; run `rentdesk login` first")
	}
	return nil
}

// logNotifier surfaces store notifications on the terminal.
type logNotifier struct{}

func (logNotifier) Success(msg string) { log.Printf("ok: %s", msg) }
func (logNotifier) Error(msg string)   { log.Printf("error: %s", msg) }
func (logNotifier) Warning(msg string) { log.Printf("warning: %s", msg) }
