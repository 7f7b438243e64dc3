// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/skillshare-academy/skillshare/api"
	"github.com/skillshare-academy/skillshare/lib/config"
	"github.com/skillshare-academy/skillshare/session"
)

// Environment bundles what every command needs: the resolved
// configuration, the API client, the session store, and a scoped
// logger. Built once per invocation in the command's Run function.
type Environment struct {
	Config *config.Config
	Client *api.Client
	Store  *session.Store
	Logger *slog.Logger
}

// LoadEnvironment resolves configuration (explicit path beats
// SKILLSHARE_CONFIG beats defaults), builds the API client, and opens
// the session store. The store is created but not initialized; callers
// that need a session call RequireSession.
func LoadEnvironment(configPath string) (*Environment, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, Validation("%v", err)
	}

	logger := NewCommandLogger()

	client, err := api.NewClient(api.ClientConfig{
		BaseURL:    cfg.Server.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Server.RequestTimeout},
		Logger:     logger,
	})
	if err != nil {
		return nil, Internal("create API client: %w", err)
	}

	store, err := session.New(session.Config{
		Client:    client,
		TokenPath: cfg.Session.TokenPath,
		Logger:    logger,
	})
	if err != nil {
		return nil, Internal("open session store: %w", err)
	}

	return &Environment{
		Config: cfg,
		Client: client,
		Store:  store,
		Logger: logger,
	}, nil
}

// RequireSession restores the persisted session and fails with an auth
// error if none exists or the backend rejected the saved token.
func (env *Environment) RequireSession(ctx context.Context) error {
	if err := env.Store.Initialize(ctx); err != nil {
		return Internal("restore session: %w", err)
	}
	if !env.Store.Authenticated() {
		return Auth("not signed in (run 'skillshare login')")
	}
	return nil
}

// CommandContext returns a context bounded by the configured request
// timeout, with headroom for a couple of sequential requests.
func (env *Environment) CommandContext() (context.Context, context.CancelFunc) {
	timeout := env.Config.Server.RequestTimeout * 3
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
