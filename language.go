package assetexpl

import "strings"

// Language is one of the supported content languages.
//
// The set is closed: every catalog accessor rejects a value that is not
// returned by Languages().
type Language string

const (
	Italian Language = "it"
	English Language = "en"
)

// languages in declaration order, the first one is the default.
var languages = []Language{Italian, English}

// Languages returns the supported languages in declaration order.
func Languages() []Language {
	return append([]Language(nil), languages...)
}

// ParseLanguage parses a language code. Region suffixes and case are ignored
// so that "it_IT.UTF-8" or "EN-us" are accepted.
func ParseLanguage(s string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(code, "-_."); i >= 0 {
		code = code[:i]
	}
	l := Language(code)
	if !l.Valid() {
		return "", &NotFoundError{Kind: "language", Value: s}
	}
	return l, nil
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	for _, x := range languages {
		if x == l {
			return true
		}
	}
	return false
}

func (l Language) String() string { return string(l) }
