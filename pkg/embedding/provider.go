package embedding

import (
	"context"
	"fmt"
)

// Provider generates vector embeddings for text.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ConfigurationError signals a missing or rejected provider credential. It is
// always user-actionable and carries the credential name so the boundary can
// tell the operator exactly what to fix.
type ConfigurationError struct {
	Credential string
	Err        error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s missing or invalid: %v", e.Credential, e.Err)
	}
	return fmt.Sprintf("%s missing or invalid. Set %s in your .env or environment", e.Credential, e.Credential)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
