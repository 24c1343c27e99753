package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"jobpost-backend/internal/shared/telemetry"
)

const retryBaseDelay = 300 * time.Millisecond

type retryingClient struct {
	base       Client
	maxRetries uint64
}

// WithRetry wraps a client with bounded exponential-backoff retries on
// transient failure classes. Permanent errors pass through immediately.
func WithRetry(base Client, maxRetries int) Client {
	if base == nil {
		return nil
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return retryingClient{base: base, maxRetries: uint64(maxRetries)}
}

func (r retryingClient) ExtractPosting(ctx context.Context, postingText string) (json.RawMessage, error) {
	var out json.RawMessage
	attempt := 0

	operation := func() error {
		attempt++
		raw, err := r.base.ExtractPosting(ctx, postingText)
		if err != nil {
			if !IsTransient(err) {
				return backoff.Permanent(err)
			}
			telemetry.Info("llm.retry", map[string]any{
				"attempt": attempt,
				"error":   err.Error(),
			})
			return err
		}
		out = raw
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryBaseDelay
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return out, nil
}

// IsTransient classifies failures worth retrying: timeouts, connection-level
// errors, and 5xx provider statuses. Malformed replies are not transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "client.timeout") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}
	return false
}
