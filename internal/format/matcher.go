package format

import (
	"regexp"
	"strings"

	"emailfinder/pkg/domain"
	"emailfinder/pkg/websearch"
)

// LeadIQPhrase is the sentence data brokers use to describe a company format.
// Documents containing it are examined before the others.
const LeadIQPhrase = "email format typically follows the pattern of"

// Matcher recognises one email format in a document.
type Matcher struct {
	Format   domain.EmailFormat
	patterns []*regexp.Regexp
}

// NewMatcher compiles a matcher. Patterns are applied to lower-cased text in
// which braces, brackets and "first_name"/"last_name" spellings are folded
// to "firstname"/"lastname".
func NewMatcher(format domain.EmailFormat, patterns ...string) Matcher {
	m := Matcher{Format: format, patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		m.patterns = append(m.patterns, regexp.MustCompile(p))
	}

	return m
}

// Match reports whether any pattern of m is found in prepared text.
func (m Matcher) Match(text string) bool {
	for _, p := range m.patterns {
		if p.MatchString(text) {
			return true
		}
	}

	return false
}

// DefaultMatchers returns the built-in matchers in priority order. Formats
// whose templates contain other templates ("last.first@" contains "first@")
// come first.
func DefaultMatchers() []Matcher {
	return []Matcher{
		NewMatcher(domain.FormatLastDotFirst,
			`\blast(name)?\.first(name)?\b`,
			`\blast name (dot|period) first name\b`,
			`\b(doe\.john|doe\.jane|smith\.john|smith\.jane)@`,
		),
		NewMatcher(domain.FormatFirstDotLast,
			`\bfirst(name)?\.last(name)?\b`,
			`\bfirst (name )?dot last( name)?\b`,
			`\bfirst name (period|\.) last name\b`,
			`\b(john\.doe|jane\.doe|john\.smith|jane\.smith)@`,
		),
		NewMatcher(domain.FormatFirstUnderscoreLast,
			`\bfirst(name)?_last(name)?\b`,
			`\bfirst name underscore last name\b`,
			`\b(john_doe|jane_doe|john_smith|jane_smith)@`,
		),
		NewMatcher(domain.FormatFirstInitialDotLast,
			`\b(f|firstinitial|first_initial)\.last(name)?@`,
			`\bfirst initial (dot|period) last name\b`,
			`\b(j\.doe|j\.smith)@`,
		),
		NewMatcher(domain.FormatFirstDotLastInitial,
			`\bfirst(name)?\.(l|lastinitial|last_initial)@`,
			`\bfirst name (dot|period) last initial\b`,
			`\b(john\.d|jane\.d|john\.s|jane\.s)@`,
		),
		NewMatcher(domain.FormatFirstInitialLast,
			`\b(flast|flastname|firstinitiallastname|first_initiallastname)@`,
			`\bfirst initial (followed by )?last name\b`,
			`\b(jdoe|jsmith)@`,
		),
		NewMatcher(domain.FormatFirstLastInitial,
			`\b(firstl|firstnamel|firstnamelastinitial|firstlastinitial)@`,
			`\bfirst name (followed by )?last initial\b`,
			`\b(johnd|janed|johns|janes)@`,
		),
		NewMatcher(domain.FormatFirstLast,
			`\b(firstlast|firstnamelastname)@`,
			`\bfirst name followed by last name\b`,
			`\b(johndoe|janedoe|johnsmith|janesmith)@`,
		),
		NewMatcher(domain.FormatFirst,
			`\b(first|firstname)@`,
			`\bfirst name only\b`,
			`\b(john|jane)@`,
		),
		NewMatcher(domain.FormatLast,
			`\b(last|lastname)@`,
			`\blast name only\b`,
			`\b(doe|smith)@`,
		),
	}
}

var textFolder = strings.NewReplacer( //nolint: gochecknoglobals
	"{", "", "}", "", "[", "", "]", "", "<", "", ">", "",
	"first_name", "firstname", "last_name", "lastname",
	"first-name", "firstname", "last-name", "lastname",
)

// Prepare folds a document into the text matchers are applied to.
func Prepare(doc websearch.Document) string {
	text := strings.ToLower(doc.Title + "\n" + doc.Text)

	return strings.Join(strings.Fields(textFolder.Replace(text)), " ")
}

// MatchDocument returns the first format, in matcher order, found in doc.
func MatchDocument(matchers []Matcher, doc websearch.Document) (domain.EmailFormat, bool) {
	text := Prepare(doc)
	for _, m := range matchers {
		if m.Match(text) {
			return m.Format, true
		}
	}

	return "", false
}
