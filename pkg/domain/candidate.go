package domain

// Evidence tells whether a format was observed or merely assumed.
type Evidence string

const (
	// EvidenceDiscovered means the format was found in search evidence.
	EvidenceDiscovered Evidence = "DISCOVERED"
	// EvidenceAssumed means the format is a fallback without evidence.
	EvidenceAssumed Evidence = "ASSUMED"
)

// FormatEvidence pairs a format with the evidence backing it.
type FormatEvidence struct {
	Format   EmailFormat `json:"format"`
	Evidence Evidence    `json:"evidence"`
}

// Candidate is a generated email address awaiting verification. Candidates are
// produced in priority order and never mutated afterwards.
type Candidate struct {
	Email    string      `json:"email"`
	Domain   string      `json:"domain"`
	Format   EmailFormat `json:"format"`
	Evidence Evidence    `json:"evidence"`
}
