package cuneify

import (
	"fmt"
	"strings"

	"github.com/f3rmion/cuneify/internal/sign"
	"github.com/f3rmion/cuneify/internal/translit"
)

// Emit selects which field of a matched sign is written out.
type Emit int

const (
	EmitForm  Emit = iota // Sign name, e.g. "LUGAL"
	EmitGlyph             // Cuneiform character, e.g. "𒈗"
)

// ParseEmit parses "form" or "glyph".
func ParseEmit(s string) (Emit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "form":
		return EmitForm, nil
	case "glyph", "unicode":
		return EmitGlyph, nil
	default:
		return 0, fmt.Errorf("unknown emit field %q (want form or glyph)", s)
	}
}

func (e Emit) String() string {
	if e == EmitGlyph {
		return "glyph"
	}
	return "form"
}

// Match describes how a token was resolved.
type Match struct {
	Sign    sign.Sign
	Key     string    // Cleaned lookup key that hit
	Tier    sign.Tier // Inventory view that hit
	Swapped bool      // Hit only after swapping case
}

// Resolver maps tokens to single signs. It is safe for concurrent use.
type Resolver struct {
	inv  *sign.Inventory
	emit Emit
}

// NewResolver creates a resolver over inv.
func NewResolver(inv *sign.Inventory, emit Emit) *Resolver {
	return &Resolver{inv: inv, emit: emit}
}

// Match cleans tok and looks it up in the raw, ASCII and comma-free views.
// If none hits, the lookup is repeated once with the case swapped, so
// "LUGAL" finds "lugal" and the other way round.
func (r *Resolver) Match(tok string) (Match, bool) {
	key := translit.Clean(tok)
	if s, tier, ok := r.inv.Lookup(key); ok {
		return Match{Sign: s, Key: key, Tier: tier}, true
	}

	swapped := translit.SwapCase(key)
	if s, tier, ok := r.inv.Lookup(swapped); ok {
		return Match{Sign: s, Key: swapped, Tier: tier, Swapped: true}, true
	}

	return Match{}, false
}

// Resolve returns the emitted field of the sign tok stands for, or tok
// unchanged when nothing matches.
func (r *Resolver) Resolve(tok string) string {
	m, ok := r.Match(tok)
	if !ok {
		return tok
	}
	return r.field(m.Sign)
}

// ResolveLine resolves each token and writes it followed by a single space.
// Tokens without a match are appended to unresolved when it is non-nil.
func (r *Resolver) ResolveLine(tokens []string, unresolved *[]string) string {
	var b strings.Builder
	for _, tok := range tokens {
		m, ok := r.Match(tok)
		if ok {
			b.WriteString(r.field(m.Sign))
		} else {
			b.WriteString(tok)
			if unresolved != nil {
				*unresolved = append(*unresolved, tok)
			}
		}
		b.WriteByte(' ')
	}
	return b.String()
}

func (r *Resolver) field(s sign.Sign) string {
	if r.emit == EmitGlyph {
		return s.Glyph
	}
	return s.Form
}
