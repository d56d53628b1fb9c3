package service

import (
	"context"
	"fmt"

	"contact-service/internal/domain"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// ContactService runs a submission through validate -> verify -> record
type ContactService struct {
	verifier TokenVerifier
	metrics  *Metrics
}

// NewContactService creates the service. metrics may be nil.
func NewContactService(verifier TokenVerifier, metrics *Metrics) *ContactService {
	return &ContactService{
		verifier: verifier,
		metrics:  metrics,
	}
}

// Submit processes one submission. It never panics on bad input and always
// returns exactly one Outcome; mapping to HTTP is left to the caller.
func (s *ContactService) Submit(ctx context.Context, req *domain.ContactRequest) domain.Outcome {
	outcome := s.submit(ctx, req)
	s.metrics.ObserveOutcome(outcome.Kind)
	return outcome
}

func (s *ContactService) submit(ctx context.Context, req *domain.ContactRequest) domain.Outcome {
	if req == nil || !req.HasRequiredFields() {
		return domain.Invalid(domain.ErrMissingFields)
	}

	result, err := s.verifier.Verify(ctx, req.RecaptchaToken)
	if err != nil {
		return domain.Failed(fmt.Errorf("verify recaptcha token: %w", err))
	}
	if result == nil {
		return domain.Failed(domain.ErrVerifyBadResponse)
	}

	if !result.Success {
		return domain.Rejected(fmt.Errorf("%w: error codes %v", domain.ErrInvalidToken, result.ErrorCodes))
	}

	submissionID := uuid.NewString()

	// No storage or email delivery: the log line is the record
	log.Infow("Contact form submitted",
		"submission_id", submissionID,
		"name", req.Name,
		"email", req.Email,
		"phone", req.Phone,
		"agree", req.Agree,
	)

	return domain.Accepted(submissionID)
}
