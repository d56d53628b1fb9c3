package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contact-service/internal/config"
	"contact-service/internal/domain"

	"github.com/gofiber/fiber/v2/log"
)

// RecaptchaVerifier verifies tokens against the reCAPTCHA siteverify endpoint
type RecaptchaVerifier struct {
	cfg     config.RecaptchaConfig
	client  *http.Client
	metrics *Metrics
}

// NewRecaptchaVerifier creates a verifier. metrics may be nil.
func NewRecaptchaVerifier(cfg config.RecaptchaConfig, metrics *Metrics) *RecaptchaVerifier {
	client := &http.Client{}
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}

	return &RecaptchaVerifier{
		cfg:     cfg,
		client:  client,
		metrics: metrics,
	}
}

// Verify posts the secret and the client token as a form and decodes the reply.
// There is no retry: one failed call is reported as an error.
func (v *RecaptchaVerifier) Verify(ctx context.Context, token string) (*domain.VerificationResult, error) {
	if v.cfg.SecretKey == "" {
		return nil, domain.ErrSecretNotConfigured
	}

	start := time.Now()
	result, err := v.siteverify(ctx, token)
	v.metrics.ObserveVerify(verifyResultLabel(result, err), time.Since(start))

	return result, err
}

func (v *RecaptchaVerifier) siteverify(ctx context.Context, token string) (*domain.VerificationResult, error) {
	data := url.Values{}
	data.Set("secret", v.cfg.SecretKey)
	data.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.VerifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVerifyUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", domain.ErrVerifyUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrVerifyBadResponse, resp.StatusCode, string(body))
	}

	var result domain.VerificationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVerifyBadResponse, err)
	}

	log.Debugw("siteverify completed",
		"success", result.Success,
		"hostname", result.Hostname,
		"error_codes", result.ErrorCodes,
	)

	return &result, nil
}

func verifyResultLabel(result *domain.VerificationResult, err error) string {
	switch {
	case err != nil:
		return "error"
	case result.Success:
		return "success"
	default:
		return "failure"
	}
}
