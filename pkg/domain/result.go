package domain

// Confidence ranks how likely a scored address is deliverable.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Rank returns a sortable weight, higher is better.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// ScoredResult is a ranked email address returned to the caller.
type ScoredResult struct {
	Email      string     `json:"email"`
	Domain     string     `json:"domain"`
	Confidence Confidence `json:"confidence"`
	Evidence   Evidence   `json:"evidence"`
	// Source is a human readable description of the signals behind the score.
	Source string `json:"source"`
}

// FindResult is the payload of a completed lookup.
type FindResult struct {
	Profile Profile         `json:"profile"`
	Domains []CompanyDomain `json:"domains"`
	Emails  []ScoredResult  `json:"emails"`
}
