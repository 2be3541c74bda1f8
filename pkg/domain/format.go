package domain

import "time"

// EmailFormat is a company naming convention for the local part of an address.
// Every format is a pure function of the (already normalized) first and last
// name of a person.
type EmailFormat string

// Known formats. Names are given with "first" and "last" standing for the
// person's names and "f"/"l" for their initials.
const (
	FormatFirstDotLast        EmailFormat = "first.last"
	FormatFirstInitialLast    EmailFormat = "flast"
	FormatFirstLast           EmailFormat = "firstlast"
	FormatFirst               EmailFormat = "first"
	FormatFirstInitialDotLast EmailFormat = "f.last"
	FormatLastDotFirst        EmailFormat = "last.first"
	FormatFirstUnderscoreLast EmailFormat = "first_last"
	FormatFirstLastInitial    EmailFormat = "firstl"
	FormatFirstDotLastInitial EmailFormat = "first.l"
	FormatLast                EmailFormat = "last"
)

// AssumedFormats lists every known format in the fixed order used when no
// format evidence is available. The order reflects how common each convention
// is among companies.
func AssumedFormats() []EmailFormat {
	return []EmailFormat{
		FormatFirstDotLast,
		FormatFirstInitialLast,
		FormatFirstLast,
		FormatFirst,
		FormatFirstInitialDotLast,
		FormatLastDotFirst,
		FormatFirstUnderscoreLast,
		FormatFirstLastInitial,
		FormatFirstDotLastInitial,
		FormatLast,
	}
}

// ParseEmailFormat returns the format with the given name.
func ParseEmailFormat(s string) (EmailFormat, bool) {
	for _, f := range AssumedFormats() {
		if string(f) == s {
			return f, true
		}
	}

	return "", false
}

// LocalPart renders the local part of an address for the given names. The
// names must already be normalized to lowercase ASCII letters and digits.
// An empty string is returned when the format needs a name part that is empty.
func (f EmailFormat) LocalPart(first, last string) string {
	needFirst, needLast := true, true
	switch f {
	case FormatFirst:
		needLast = false
	case FormatLast:
		needFirst = false
	case FormatFirstDotLast, FormatFirstInitialLast, FormatFirstLast, FormatFirstInitialDotLast,
		FormatLastDotFirst, FormatFirstUnderscoreLast, FormatFirstLastInitial, FormatFirstDotLastInitial:
	default:
		return ""
	}
	if (needFirst && first == "") || (needLast && last == "") {
		return ""
	}

	switch f {
	case FormatFirstDotLast:
		return first + "." + last
	case FormatFirstInitialLast:
		return first[:1] + last
	case FormatFirstLast:
		return first + last
	case FormatFirst:
		return first
	case FormatFirstInitialDotLast:
		return first[:1] + "." + last
	case FormatLastDotFirst:
		return last + "." + first
	case FormatFirstUnderscoreLast:
		return first + "_" + last
	case FormatFirstLastInitial:
		return first + last[:1]
	case FormatFirstDotLastInitial:
		return first + "." + last[:1]
	case FormatLast:
		return last
	default:
		return ""
	}
}

// DomainFormat is a remembered discovery of the formats used by a domain.
type DomainFormat struct {
	Domain    string        `json:"domain"`
	Formats   []EmailFormat `json:"formats"`
	Source    string        `json:"source"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
