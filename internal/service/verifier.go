package service

import (
	"context"

	"contact-service/internal/domain"
)

// TokenVerifier checks an anti-bot token with an external provider.
// A nil error with Success=false means the provider rejected the token;
// a non-nil error means the check itself could not be completed.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.VerificationResult, error)
}
