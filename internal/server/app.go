// Package server initializes and runs the Dragon's Realm API server. It wires
// the credential verifier, the document service with its content backend, and
// the nutrition proxy, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/karnadev/dragonsrealm/internal/logging"
	"github.com/karnadev/dragonsrealm/internal/server/auth"
	"github.com/karnadev/dragonsrealm/internal/server/config"
	"github.com/karnadev/dragonsrealm/internal/server/documents"
	"github.com/karnadev/dragonsrealm/internal/server/httpapi"
	"github.com/karnadev/dragonsrealm/internal/server/nutrition"
)

// The realm admits exactly one hero. The password is "kavachkundal".
const (
	realmUserID       = 1
	realmUsername     = "karna"
	realmPasswordHash = "$2a$10$EMr8S7KjD9diH9/x6Gn.O.a53GKwh2sa3h9S3b4fzR3jgIxOTilfy"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	objects, err := newObjectStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("object store init error: %w", err)
	}

	verifier := auth.NewStaticVerifier(realmUserID, realmUsername, realmPasswordHash)
	docs := documents.NewService(documents.NewInMemoryRepository(), objects, nil)
	nutritionClient := &nutrition.Client{
		AppID:   c.NutritionAppID,
		APIKey:  c.NutritionAPIKey,
		BaseURL: c.NutritionBaseURL,
	}

	srv := httpapi.NewServer(c.EndpointAddr, logger, verifier, docs, nutritionClient,
		[]byte(c.SecretKey), c.TokenValidityDuration)

	return &App{config: c, logger: logger, server: srv}, nil
}

func newObjectStore(ctx context.Context, c *config.Config) (documents.ObjectStore, error) {
	switch c.DocumentStore {
	case "", "memory":
		return documents.NewMemoryObjectStore(), nil
	case "s3":
		return documents.NewS3ObjectStore(ctx, documents.S3Settings{
			RootUser:     c.S3AccessKey,
			RootPassword: c.S3SecretKey,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
	default:
		return nil, fmt.Errorf("unknown document store %q", c.DocumentStore)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...",
		"addr", app.config.EndpointAddr,
		"documentStore", app.config.DocumentStore,
		"tokenValidity", app.config.TokenValidityDuration.String())

	if app.config.NutritionAppID == "" || app.config.NutritionAPIKey == "" {
		app.logger.Warn(ctx, "nutrition API credentials are not set, lookups will fail")
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
