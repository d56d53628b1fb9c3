package domain

import "errors"

var (
	// Validation errors
	ErrMissingFields = errors.New("missing required fields")

	// Verification errors
	ErrInvalidToken      = errors.New("recaptcha token rejected")
	ErrVerifyUnavailable = errors.New("recaptcha verification request failed")
	ErrVerifyBadResponse = errors.New("recaptcha verification returned an unexpected response")

	// Configuration errors
	ErrSecretNotConfigured = errors.New("RECAPTCHA_SECRET_KEY is not set")

	// Request errors
	ErrInvalidBody = errors.New("invalid request body")
)
