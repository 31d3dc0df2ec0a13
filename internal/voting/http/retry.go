package http

import (
	"context"
	"time"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/cenkalti/backoff/v4"
)

const readRetries = 3

// retryRead runs an idempotent read, retrying infrastructure errors with
// exponential backoff. Rejections and a finished request context stop it at
// once. Never use it for writes.
func retryRead[T any](ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 25 * time.Millisecond
	eb.MaxInterval = 250 * time.Millisecond
	eb.MaxElapsedTime = 2 * time.Second

	var out T
	err := backoff.Retry(func() error {
		v, err := op(ctx)
		if err != nil {
			if service.IsRejection(err) || ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		out = v
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(eb, readRetries), ctx))
	return out, err
}
