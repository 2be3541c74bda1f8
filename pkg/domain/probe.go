package domain

import "time"

// SMTPResponse classifies the outcome of a mailbox probe.
type SMTPResponse string

const (
	// SMTPAccepted means the server accepted the recipient.
	SMTPAccepted SMTPResponse = "ACCEPTED"
	// SMTPRejected means the server permanently rejected the recipient.
	SMTPRejected SMTPResponse = "REJECTED"
	// SMTPUnknown covers temporary failures, policy blocks, catch-all domains
	// and domains without mail exchangers.
	SMTPUnknown SMTPResponse = "UNKNOWN"
	// SMTPTimeout means the dialogue did not complete in time.
	SMTPTimeout SMTPResponse = "TIMEOUT"
	// SMTPConnectionError means the server could not be reached or the
	// dialogue broke before the recipient was checked.
	SMTPConnectionError SMTPResponse = "CONNECTION_ERROR"
)

// IsFailure reports whether the response counts towards abandoning a domain.
func (r SMTPResponse) IsFailure() bool {
	return r == SMTPTimeout || r == SMTPConnectionError
}

// ProbeResult is the outcome of probing a single candidate. It lives only for
// the duration of a lookup.
type ProbeResult struct {
	Candidate Candidate
	// MXExists is false when the domain has no mail exchanger.
	MXExists bool
	// MXHost is the exchanger that was contacted.
	MXHost   string
	Response SMTPResponse
	// Code and Message hold the server reply to RCPT TO, when one was received.
	Code    int
	Message string
	// CatchAll marks a result downgraded from ACCEPTED because the domain
	// accepts any recipient.
	CatchAll bool
	// Abandoned marks a candidate that was not probed because its domain kept
	// failing.
	Abandoned bool
	Latency   time.Duration
}
