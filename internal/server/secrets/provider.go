// Package secrets resolves the JWT signing secret at process startup.
// The secret is fetched exactly once and kept in read-only state for the
// lifetime of the process; handlers never reload it.
package secrets

import (
	"context"
	"fmt"

	sc "github.com/taskvault/taskvault/internal/server/config"
)

// Provider supplies the signing secret. Implementations must be safe for
// a single resolution at startup; the server does not call them again.
type Provider interface {
	GetSigningSecret(ctx context.Context) (string, error)
}

// FromConfig selects a Provider based on the configured secret source.
func FromConfig(cfg *sc.Config) (Provider, error) {
	switch cfg.SecretSource {
	case sc.SecretSourceSSM:
		return NewSSMProvider(cfg)
	case sc.SecretSourceStatic:
		return NewStaticProvider(cfg.SecretKey), nil
	default:
		return nil, fmt.Errorf("unknown secret source %q", cfg.SecretSource)
	}
}
