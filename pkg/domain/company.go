package domain

// DomainSource tells how a company domain was obtained.
type DomainSource string

const (
	// DomainSourceDirect means "{normalized-name}.com" was verified to exist.
	DomainSourceDirect DomainSource = "DIRECT"
	// DomainSourceSearchInferred means the domain was taken from the top organic
	// search result that is not an aggregator.
	DomainSourceSearchInferred DomainSource = "SEARCH_INFERRED"
	// DomainSourceSupplied means the caller passed the domain explicitly.
	DomainSourceSupplied DomainSource = "SUPPLIED"
)

// Confidence returns the base confidence attached to a domain of this source.
func (s DomainSource) Confidence() float64 {
	switch s {
	case DomainSourceSupplied:
		return 1
	case DomainSourceDirect:
		return 0.9
	case DomainSourceSearchInferred:
		return 0.6
	default:
		return 0
	}
}

// CompanyDomain is a candidate mail domain for a company.
type CompanyDomain struct {
	Domain     string       `json:"domain"`
	Source     DomainSource `json:"source"`
	Confidence float64      `json:"confidence"`
}

// NewCompanyDomain builds a CompanyDomain with the confidence of its source.
func NewCompanyDomain(domain string, source DomainSource) CompanyDomain {
	return CompanyDomain{Domain: domain, Source: source, Confidence: source.Confidence()}
}
