package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts text-generation providers for job posting extraction. The
// returned payload is the JSON object recovered from the provider's reply.
type Client interface {
	ExtractPosting(ctx context.Context, postingText string) (json.RawMessage, error)
}

// ErrNotConfigured is returned when no provider credential is available.
var ErrNotConfigured = errors.New("llm client not configured")
