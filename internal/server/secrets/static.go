package secrets

import (
	"context"
	"errors"
)

// StaticProvider returns a secret configured directly (flag, env, or JSON
// overlay). Intended for development and tests.
type StaticProvider struct {
	secret string
}

func NewStaticProvider(secret string) *StaticProvider {
	return &StaticProvider{secret: secret}
}

func (p *StaticProvider) GetSigningSecret(ctx context.Context) (string, error) {
	if p.secret == "" {
		return "", errors.New("static signing secret is empty")
	}
	return p.secret, nil
}
