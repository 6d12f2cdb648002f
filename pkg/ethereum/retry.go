package ethereum

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/internal/metrics"
)

const defaultReadRetryInterval = 200 * time.Millisecond

// retryRead runs op under the read rate limit, retrying transient failures.
func retryRead[T any](ctx context.Context, g *Gateway, method string, op func() (T, error)) (T, error) {
	operation := func() (T, error) {
		if g.cfg.limiter != nil {
			if err := g.cfg.limiter.Wait(ctx); err != nil {
				var zero T
				return zero, backoff.Permanent(err)
			}
		}
		v, err := op()
		if err != nil && !isTransient(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = g.cfg.readRetryInterval
	policy.MaxInterval = g.cfg.readRetryInterval * 10

	notify := func(err error, d time.Duration) {
		g.logger.Warn("Retrying chain read",
			zap.String("method", method),
			zap.Error(err),
			zap.Duration("backoff", d))
	}

	v, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(g.cfg.readRetryMax),
		backoff.WithNotify(notify))
	if err != nil {
		metrics.ChainReads.WithLabelValues(method, "error").Inc()
		return v, err
	}
	metrics.ChainReads.WithLabelValues(method, "success").Inc()
	return v, nil
}

// isTransient reports whether a read failure may succeed on retry.
// Reverts, missing contract code and cancellation never do.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range []string{"execution reverted", "no contract code", "abi:"} {
		if strings.Contains(msg, s) {
			return false
		}
	}
	return true
}
