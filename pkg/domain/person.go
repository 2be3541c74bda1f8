package domain

// PersonQuery is the input of a single email lookup. It is immutable for the
// duration of the request.
type PersonQuery struct {
	// FirstName is the given name of the person. Required.
	FirstName string `json:"firstName"`
	// LastName is the family name of the person. Required.
	LastName string `json:"lastName"`
	// Company is the free-form company name used for domain resolution.
	Company string `json:"company"`
	// ExtraDomains are caller supplied domains that are always searched in
	// addition to the resolved one.
	ExtraDomains []string `json:"extraDomains,omitempty"`
	// Headless controls whether a browser based search transport runs without
	// a visible window.
	Headless bool `json:"headless"`
}

// FullName returns "<first> <last>".
func (q PersonQuery) FullName() string {
	switch {
	case q.FirstName == "":
		return q.LastName
	case q.LastName == "":
		return q.FirstName
	default:
		return q.FirstName + " " + q.LastName
	}
}

// Profile summarizes who was looked up and where.
type Profile struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	// Domain is the primary domain in scope, empty when none was resolved.
	Domain string `json:"domain"`
}
