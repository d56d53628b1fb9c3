package domain

// ContactRequest - contact form submission
type ContactRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Phone          string `json:"phone"`
	Agree          bool   `json:"agree" validate:"required"`
	RecaptchaToken string `json:"recaptchaToken" validate:"required"`
}

// HasRequiredFields reports whether every required field is set.
// Phone is optional and not checked.
func (r *ContactRequest) HasRequiredFields() bool {
	return r.Name != "" && r.Email != "" && r.Agree && r.RecaptchaToken != ""
}

// ContactResponse - the only response shape of the contact API
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerificationResult - siteverify reply. Only Success drives the flow,
// the rest is kept for logging.
type VerificationResult struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	Score       float64  `json:"score,omitempty"`
	Action      string   `json:"action,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Client-facing messages
const (
	MessageSent          = "Message sent successfully!"
	MessageMissingFields = "Missing required fields."
	MessageInvalidToken  = "Invalid reCAPTCHA token."
	MessageInternalError = "An error occurred while processing your request."
)
