package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"jobpost-backend/internal/shared/telemetry"
)

const (
	breakerFailureThreshold = 3
	breakerCoolDown         = 30 * time.Second
)

type breakerClient struct {
	base Client
	cb   *gobreaker.CircuitBreaker
}

// WithBreaker wraps a client with a circuit breaker. After a run of
// consecutive failures the breaker opens and calls fail immediately without
// touching the network until the cool-down elapses, after which a single
// trial call is allowed through.
func WithBreaker(base Client) Client {
	if base == nil {
		return nil
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "llm",
		MaxRequests: 1,
		Timeout:     breakerCoolDown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			telemetry.Info("llm.breaker", map[string]any{
				"from": from.String(),
				"to":   to.String(),
			})
		},
	})
	return breakerClient{base: base, cb: cb}
}

func (b breakerClient) ExtractPosting(ctx context.Context, postingText string) (json.RawMessage, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.base.ExtractPosting(ctx, postingText)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, fmt.Errorf("llm circuit open: %w", err)
		}
		return nil, err
	}
	return result.(json.RawMessage), nil
}
