package main

import (
	"context"
	"time"

	"bisame/internal/domain/tokens"
)

// pruneRefreshTokensEvery removes expired and revoked refresh tokens until ctx is cancelled.
// Backends that expire entries on their own (redis) are skipped.
func (app *application) pruneRefreshTokensEvery(ctx context.Context, interval time.Duration) {
	pruner, ok := app.store.RefreshTokens.(tokens.Pruner)
	if !ok {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Run once immediately
		app.pruneRefreshTokens(ctx, pruner)

		for {
			select {
			case <-ticker.C:
				app.pruneRefreshTokens(ctx, pruner)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (app *application) pruneRefreshTokens(ctx context.Context, pruner tokens.Pruner) {
	n, err := pruner.DeleteExpired(ctx)
	if err != nil {
		app.logger.Errorw("error pruning refresh tokens", "error", err.Error())
		return
	}
	if n > 0 {
		app.logger.Infow("pruned refresh tokens", "count", n)
	}
}
