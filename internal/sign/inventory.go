package sign

import (
	"fmt"
	"strings"

	"github.com/f3rmion/cuneify/internal/translit"
)

// Tier identifies one of the lookup views of an inventory.
type Tier int

const (
	TierRaw     Tier = iota // Value exactly as transliterated
	TierASCII               // Value in ASCII comma-second spelling
	TierNoComma             // ASCII spelling with redundant commas removed
)

func (t Tier) String() string {
	switch t {
	case TierRaw:
		return "raw"
	case TierASCII:
		return "ascii"
	case TierNoComma:
		return "ascii-nocomma"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// tiers lists the views in the order they are consulted.
var tiers = []Tier{TierRaw, TierASCII, TierNoComma}

// Entry is a sign together with the ASCII spelling of its value.
type Entry struct {
	Sign
	ASCII string
}

// Inventory is an immutable, ordered collection of signs with three keyed
// views. It is safe for concurrent use.
type Inventory struct {
	entries []Entry
	views   [3]map[string][]Sign
}

// NewInventory builds the lookup views for signs. Order is significant: when
// several signs share a key the first one wins a lookup.
func NewInventory(signs []Sign) (*Inventory, error) {
	inv := &Inventory{entries: make([]Entry, 0, len(signs))}
	for i := range inv.views {
		inv.views[i] = make(map[string][]Sign)
	}

	for i, s := range signs {
		if s.Value == "" {
			return nil, fmt.Errorf("%w: record %d has no value", ErrInvalidSign, i)
		}
		if !s.HasGlyph() {
			return nil, fmt.Errorf("%w: record %d (%q) has no glyph", ErrInvalidSign, i, s.Value)
		}

		ascii := translit.Normalize(s.Value)
		inv.entries = append(inv.entries, Entry{Sign: s, ASCII: ascii})

		keys := [3]string{s.Value, ascii, translit.CollapseCommas(ascii)}
		for t, key := range keys {
			inv.views[t][key] = append(inv.views[t][key], s)
		}
	}

	return inv, nil
}

// Len returns the number of signs in the inventory.
func (inv *Inventory) Len() int {
	return len(inv.entries)
}

// Entries returns the signs in insertion order. The slice is shared and must
// not be modified.
func (inv *Inventory) Entries() []Entry {
	return inv.entries
}

// Signs returns a copy of the signs in insertion order.
func (inv *Inventory) Signs() []Sign {
	out := make([]Sign, len(inv.entries))
	for i, e := range inv.entries {
		out[i] = e.Sign
	}
	return out
}

// Get returns every sign stored under key in one tier.
func (inv *Inventory) Get(tier Tier, key string) []Sign {
	if tier < TierRaw || tier > TierNoComma {
		return nil
	}
	return inv.views[tier][key]
}

// Lookup tries the tiers in order and returns the first sign stored under
// key, along with the tier that matched.
func (inv *Inventory) Lookup(key string) (Sign, Tier, bool) {
	for _, t := range tiers {
		if matches := inv.views[t][key]; len(matches) > 0 {
			return matches[0], t, true
		}
	}
	return Sign{}, 0, false
}

// Filter returns an inventory restricted to signs of the given language.
// Signs with no language are kept and dialect tags such as "akk-x-stdbab"
// count as their base language. An empty code returns the receiver.
func (inv *Inventory) Filter(lang string) (*Inventory, error) {
	code, err := ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return inv, nil
	}

	var kept []Sign
	for _, e := range inv.entries {
		if e.Language == "" || e.Language == code || strings.HasPrefix(e.Language, code+"-") {
			kept = append(kept, e.Sign)
		}
	}
	return NewInventory(kept)
}
