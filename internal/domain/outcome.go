package domain

// OutcomeKind - terminal state of a single submission
type OutcomeKind int

const (
	// OutcomeAccepted - fields valid and token verified
	OutcomeAccepted OutcomeKind = iota
	// OutcomeInvalid - a required field is missing
	OutcomeInvalid
	// OutcomeRejected - the provider rejected the token
	OutcomeRejected
	// OutcomeFailed - configuration, transport or decode fault
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome - result of processing a submission. Err is set for every kind
// except OutcomeAccepted and is never shown to the client.
type Outcome struct {
	Kind         OutcomeKind
	SubmissionID string
	Err          error
}

func Accepted(submissionID string) Outcome {
	return Outcome{Kind: OutcomeAccepted, SubmissionID: submissionID}
}

func Invalid(err error) Outcome {
	return Outcome{Kind: OutcomeInvalid, Err: err}
}

func Rejected(err error) Outcome {
	return Outcome{Kind: OutcomeRejected, Err: err}
}

func Failed(err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Err: err}
}
