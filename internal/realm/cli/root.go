// Package cli implements the realm terminal client. Commands operate on the
// local slot store and reach the server only for login, nutrition lookups and
// document transfers.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karnadev/dragonsrealm/internal/realm/api"
	"github.com/karnadev/dragonsrealm/internal/realm/config"
	"github.com/karnadev/dragonsrealm/internal/realm/store"
)

var (
	dataPath  string
	dsn       string
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "realm",
	Short: "Dragon's Realm terminal client",
	Long: `Dragon's Realm is a personal productivity companion: a diary, a quest log,
a todo checklist, a diet tracker and a document vault, kept on your own disk
and synced with a realm server only where it has to be.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg := config.LoadConfig()
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", cfg.DataPath, "path to the local data file")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", cfg.DSN, "SQL DSN for the slot store (overrides --data)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", cfg.ServerURL, "realm server base URL")
}

// openBackend opens the slot store: a SQL backend when --dsn is given,
// otherwise the bbolt file at --data. The returned closer is never nil.
func openBackend(ctx context.Context) (store.Backend, func() error, error) {
	if dsn != "" {
		db, backend, err := store.OpenSQL(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open slot store: %w", err)
		}
		return backend, db.Close, nil
	}

	if err := os.MkdirAll(filepath.Dir(dataPath), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create data directory: %w", err)
	}
	backend, err := store.OpenBolt(dataPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open slot store: %w", err)
	}
	return backend, backend.Close, nil
}

// requireLogin fails unless a previous login set the session flag. This is a
// local gate only; the server enforces its own token checks.
func requireLogin(ctx context.Context, b store.Backend) error {
	loggedIn, ok, err := store.LoadValue[bool](ctx, b, store.SlotLoggedIn)
	if err != nil {
		return err
	}
	if !ok || !loggedIn {
		return fmt.Errorf("not logged in, run 'realm login' first")
	}
	return nil
}

// newAPIClient builds a server client carrying the saved token, if any.
func newAPIClient(ctx context.Context, b store.Backend) *api.Client {
	c := &api.Client{BaseURL: strings.TrimSpace(serverURL)}
	if token, ok, err := store.LoadValue[string](ctx, b, store.SlotToken); err == nil && ok {
		c.Token = token
	}
	return c
}
