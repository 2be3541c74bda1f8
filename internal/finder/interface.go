package finder

import (
	"context"

	"emailfinder/internal/format"
	"emailfinder/pkg/domain"
)

//go:generate mockgen -package mockfinder -source=interface.go -destination=mock/mockfinder.go *

// Finder looks up the likely email addresses of a person.
type Finder interface {
	Find(ctx context.Context, query domain.PersonQuery) (*domain.FindResult, error)
}

// DomainResolver maps a company to the domains in scope of a lookup.
type DomainResolver interface {
	ResolveAll(ctx context.Context, company string, extras []string) ([]domain.CompanyDomain, error)
}

// FormatInferrer infers the email formats used by a domain.
type FormatInferrer interface {
	Infer(ctx context.Context, company, domainName string) format.Inference
}

// MailboxProber verifies the candidates of one domain.
type MailboxProber interface {
	ProbeDomain(ctx context.Context, domainName string, candidates []domain.Candidate) []domain.ProbeResult
}
