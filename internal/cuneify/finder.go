package cuneify

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/sourcegraph/conc/iter"

	"github.com/f3rmion/cuneify/internal/sign"
	"github.com/f3rmion/cuneify/internal/translit"
)

// Mode selects how candidate searches match readings.
type Mode int

const (
	// ModeStrict matches values that are exactly the token followed by an
	// optional run of digits: "lu" finds lu and lu2 but not lugal.
	ModeStrict Mode = iota

	// ModeLoose matches, ignoring case, values that end in the token
	// followed by an optional run of digits or x: "lu" also finds alu and lux.
	ModeLoose
)

// ParseMode parses "strict" or "loose".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return ModeStrict, nil
	case "loose":
		return ModeLoose, nil
	default:
		return 0, fmt.Errorf("unknown candidate mode %q (want strict or loose)", s)
	}
}

func (m Mode) String() string {
	if m == ModeLoose {
		return "loose"
	}
	return "strict"
}

// Candidates pairs a token with every sign it could stand for.
type Candidates struct {
	Token string      `json:"token"`
	Signs []sign.Sign `json:"signs"`
}

// Finder lists all signs whose reading fits a token. Each search scans the
// whole inventory, so it is far slower than a Resolver. It is safe for
// concurrent use.
type Finder struct {
	inv  *sign.Inventory
	mode Mode
}

// NewFinder creates a finder over inv.
func NewFinder(inv *sign.Inventory, mode Mode) *Finder {
	return &Finder{inv: inv, mode: mode}
}

// Pattern returns the ASCII key tok is searched under.
func (f *Finder) Pattern(tok string) string {
	if f.mode == ModeLoose {
		return strings.ToLower(translit.Normalize(translit.Clean(tok)))
	}
	return translit.Normalize(translit.CleanPattern(tok))
}

// Find returns the distinct signs matching tok, sorted by value. A token that
// cleans to nothing matches nothing.
func (f *Finder) Find(tok string) []sign.Sign {
	pattern := f.Pattern(tok)
	if pattern == "" {
		return nil
	}

	seen := make(map[sign.Sign]struct{})
	var found []sign.Sign
	for _, e := range f.inv.Entries() {
		if !f.matches(e.ASCII, pattern) {
			continue
		}
		if _, dup := seen[e.Sign]; dup {
			continue
		}
		seen[e.Sign] = struct{}{}
		found = append(found, e.Sign)
	}

	if f.mode == ModeLoose {
		slices.SortFunc(found, compareSigns)
	} else {
		slices.SortStableFunc(found, func(a, b sign.Sign) int {
			return strings.Compare(a.Value, b.Value)
		})
	}
	return found
}

// FindAll searches every token in parallel and returns the results in
// input order. Repeated tokens are reported once, at their first position.
func (f *Finder) FindAll(tokens []string) []Candidates {
	unique := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		unique = append(unique, tok)
	}

	return iter.Map(unique, func(tok *string) Candidates {
		return Candidates{Token: *tok, Signs: f.Find(*tok)}
	})
}

func (f *Finder) matches(value, pattern string) bool {
	if f.mode == ModeLoose {
		return matchesSuffix(strings.ToLower(value), pattern, "0123456789x")
	}
	rest, ok := strings.CutPrefix(value, pattern)
	return ok && onlyRunes(rest, "0123456789")
}

// matchesSuffix reports whether pattern occurs in value with nothing but
// characters from tail after it.
func matchesSuffix(value, pattern, tail string) bool {
	for start := 0; start <= len(value)-len(pattern); {
		i := strings.Index(value[start:], pattern)
		if i < 0 {
			return false
		}
		end := start + i + len(pattern)
		if onlyRunes(value[end:], tail) {
			return true
		}
		start += i + 1
	}
	return false
}

func onlyRunes(s, allowed string) bool {
	for _, r := range s {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}

func compareSigns(a, b sign.Sign) int {
	return cmp.Or(
		strings.Compare(a.Value, b.Value),
		strings.Compare(a.Form, b.Form),
		strings.Compare(a.Glyph, b.Glyph),
		strings.Compare(a.Language, b.Language),
	)
}
