package embedding

import "context"

// Disabled is a Client for deployments without an embedding credential.
// Every call fails with ErrMissingAPIKey, which callers treat as the
// degraded "no semantic results" condition.
type Disabled struct{}

func (Disabled) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return nil, ErrMissingAPIKey
}
