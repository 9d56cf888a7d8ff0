package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"castle-rentals/internal/infra/session"
	"castle-rentals/internal/pkg/clock"
	"castle-rentals/internal/pkg/config"

	"go.uber.org/fx"
)

const sweepInterval = 15 * time.Minute

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionRegistry,
	),
	fx.Invoke(startSweeper),
)

func NewSessionRegistry(cfg config.Config, clk clock.Clock) *session.Registry {
	return session.NewRegistry(cfg.Session.TTL, clk)
}

// startSweeper evicts idle visitor sessions in the background for the
// lifetime of the application.
func startSweeper(lc fx.Lifecycle, registry *session.Registry, logger *slog.Logger) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if evicted := registry.Sweep(); evicted > 0 {
							logger.Debug("evicted idle sessions", "count", evicted)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(done)
			return nil
		},
	})
}
