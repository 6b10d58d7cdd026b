// Package ogsl compiles the ORACC Global Sign List XML into sign records.
//
// The sign list nests readings under <sign> and <form> elements:
//
//	<sign n="LUGAL">
//	  <list n="MZL151"/>
//	  <v n="lugal"/>
//	  <v n="šarru"/>
//	  <utf8>𒈗</utf8>
//	  <form var="a" ...>
//	    ...
//	  </form>
//	</sign>
//
// Every <sign> or <form> start element closes the block before it. The
// values collected in a block become one record each, sharing the block's
// glyph, the form and language from its <w> element, and the var suffix of
// the element that opened the block.
package ogsl

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/f3rmion/cuneify/internal/sign"
)

// Stats summarizes a parse.
type Stats struct {
	Blocks  int // Sign and form blocks seen
	Values  int // Readings collected
	Dropped int // Readings without a Unicode glyph
}

// block accumulates one sign or form entry.
type block struct {
	form    string
	lang    string
	variant string
	glyph   string
	values  []string
}

// Parser streams an OGSL document.
type Parser struct {
	stats Stats
}

// NewParser creates a parser.
func NewParser() *Parser {
	return &Parser{}
}

// Stats returns counters for the last parse.
func (p *Parser) Stats() Stats {
	return p.stats
}

// ParseFile parses the sign list at path.
func (p *Parser) ParseFile(path string) ([]sign.Sign, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sign list: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse reads a sign list and returns its readings in document order.
// Readings whose glyph is missing or a placeholder are dropped.
func (p *Parser) Parse(r io.Reader) ([]sign.Sign, error) {
	p.stats = Stats{}

	var (
		signs   []sign.Sign
		cur     block
		inGlyph bool
		glyph   strings.Builder
	)

	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing sign list: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "w":
				cur.form = attr(el, "form")
				cur.lang = attr(el, "lang")
			case "utf8":
				inGlyph = true
				glyph.Reset()
			case "list", "v":
				if n, ok := lookupAttr(el, "n"); ok && n != "" {
					cur.values = append(cur.values, n)
				}
			case "sign", "form":
				signs = p.flush(signs, cur)
				cur = block{variant: attr(el, "var")}
			}
		case xml.CharData:
			if inGlyph {
				glyph.Write(el)
			}
		case xml.EndElement:
			if el.Name.Local == "utf8" && inGlyph {
				cur.glyph = strings.TrimSpace(glyph.String())
				inGlyph = false
			}
		}
	}

	return p.flush(signs, cur), nil
}

// flush appends the records of a finished block.
func (p *Parser) flush(signs []sign.Sign, b block) []sign.Sign {
	if len(b.values) == 0 && b.glyph == "" {
		return signs
	}
	p.stats.Blocks++

	for _, v := range b.values {
		p.stats.Values++
		s := sign.Sign{
			Value:    v + b.variant,
			Form:     b.form,
			Glyph:    b.glyph,
			Language: b.lang,
		}
		if !s.HasGlyph() {
			p.stats.Dropped++
			continue
		}
		signs = append(signs, s)
	}
	return signs
}

func attr(el xml.StartElement, local string) string {
	v, _ := lookupAttr(el, local)
	return v
}

func lookupAttr(el xml.StartElement, local string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}
