package bootstrap

import (
	"context"
	"log/slog"

	"repair-storefront/internal/infra/sessionstore"
	"repair-storefront/internal/pkg/clock"
	"repair-storefront/internal/pkg/config"
	"repair-storefront/internal/pkg/sessiontoken"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		clock.NewRealClock,
		NewSessionTokenService,
		NewSessionStore,
	),
)

func NewSessionTokenService(cfg config.Config) *sessiontoken.Service {
	return sessiontoken.NewService(cfg.Session.Secret, cfg.Session.TTL)
}

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) *sessionstore.Store {
	store := sessionstore.New(cfg.Session.TTL, clk, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			store.StartJanitor(cfg.Session.SweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			store.Stop()
			return nil
		},
	})

	return store
}
