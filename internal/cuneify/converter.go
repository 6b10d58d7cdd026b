package cuneify

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/f3rmion/cuneify/internal/logger"
	"github.com/f3rmion/cuneify/internal/sign"
)

// Options configures a Converter.
type Options struct {
	Language   string // Restrict to one language code; empty for all
	Emit       Emit   // Field written for resolved tokens
	Mode       Mode   // Candidate matching mode
	ComposeNFC bool   // Compose decomposed diacritics before tokenizing
}

// Result is the output of a conversion.
type Result struct {
	Lines      []string // One converted line per input line
	Unresolved []string // Tokens that matched no sign, in order
}

// Text joins the converted lines with newlines.
func (r Result) Text() string {
	return strings.Join(r.Lines, "\n")
}

// LineCandidates holds the candidate report for one input line.
type LineCandidates struct {
	Line   int          `json:"line"` // 1-based line number
	Tokens []Candidates `json:"tokens"`
}

// Converter turns transliterated text into cuneiform, or into a report of
// candidate signs. It is safe for concurrent use.
type Converter struct {
	inv      *sign.Inventory
	resolver *Resolver
	finder   *Finder
	opts     Options
}

// NewConverter validates opts and prepares a converter over inv. An
// unsupported language fails with sign.ErrInvalidLanguage.
func NewConverter(inv *sign.Inventory, opts Options) (*Converter, error) {
	filtered, err := inv.Filter(opts.Language)
	if err != nil {
		return nil, err
	}
	if filtered != inv {
		logger.Debug("language %s: %d of %d signs", opts.Language, filtered.Len(), inv.Len())
	}

	return &Converter{
		inv:      filtered,
		resolver: NewResolver(filtered, opts.Emit),
		finder:   NewFinder(filtered, opts.Mode),
		opts:     opts,
	}, nil
}

// Inventory returns the (possibly language-filtered) inventory in use.
func (c *Converter) Inventory() *sign.Inventory {
	return c.inv
}

// Resolver returns the converter's resolver.
func (c *Converter) Resolver() *Resolver {
	return c.resolver
}

// Finder returns the converter's candidate finder.
func (c *Converter) Finder() *Finder {
	return c.finder
}

// Tokenize splits text into lines of tokens the way Convert and Candidates
// see them, after NFC composition when enabled.
func (c *Converter) Tokenize(text string) [][]string {
	return Tokenize(c.prepare(text))
}

// Convert resolves every token of text. Each token is followed by a space
// and line breaks are kept. Unmatched tokens are copied through as is.
func (c *Converter) Convert(text string) Result {
	lines := c.Tokenize(text)

	res := Result{Lines: make([]string, len(lines))}
	for i, tokens := range lines {
		res.Lines[i] = c.resolver.ResolveLine(tokens, &res.Unresolved)
	}

	if len(res.Unresolved) > 0 {
		logger.Debug("%d unresolved tokens: %s", len(res.Unresolved), strings.Join(res.Unresolved, " "))
	}
	return res
}

// Candidates lists the possible signs for every token of text, line by line.
func (c *Converter) Candidates(text string) []LineCandidates {
	lines := c.Tokenize(text)

	out := make([]LineCandidates, 0, len(lines))
	for i, tokens := range lines {
		out = append(out, LineCandidates{
			Line:   i + 1,
			Tokens: c.finder.FindAll(tokens),
		})
	}
	return out
}

func (c *Converter) prepare(text string) string {
	if c.opts.ComposeNFC {
		return norm.NFC.String(text)
	}
	return text
}
