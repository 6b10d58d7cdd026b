package sign

import (
	"fmt"
	"strings"
)

// Language describes a language a sign reading can be restricted to.
type Language struct {
	Code string
	Name string
}

var languages = []Language{
	{Code: "hit", Name: "Hittite"},
	{Code: "akk", Name: "Akkadian"},
	{Code: "sux", Name: "Sumerian"},
}

// Languages returns the supported language filters.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// ParseLanguage validates a language code and returns it in canonical
// (lower case) form. The empty string means no filter.
func ParseLanguage(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "", nil
	}
	for _, l := range languages {
		if l.Code == code {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
}
