package cuneify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/cuneify/internal/sign"
)

func newConverter(t *testing.T, opts Options) *Converter {
	t.Helper()
	c, err := NewConverter(testInventory(t), opts)
	require.NoError(t, err)
	return c
}

func TestConverter_Convert(t *testing.T) {
	c := newConverter(t, Options{})

	tests := []struct {
		name string
		text string
		want string
	}{
		{"single token", "lugal", "EN "},
		{"empty text", "", ""},
		{"unmatched", "zzznotasign", "zzznotasign "},
		{"hyphenated", "lugal-šarru", "EN LUGAL "},
		{"lines kept", "lugal\n[ki]#", "EN \nKI "},
		{"blank line kept", "lugal\n\nki", "EN \n\nKI "},
		{"mixed case", "DINGIR an", "AN AN "},
		{"damaged", "⸢lugal⸣", "⸢lugal⸣ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Convert(tt.text).Text())
		})
	}
}

func TestConverter_Unresolved(t *testing.T) {
	c := newConverter(t, Options{})

	res := c.Convert("lugal foo\nbar ki")
	assert.Equal(t, []string{"EN foo ", "bar KI "}, res.Lines)
	assert.Equal(t, []string{"foo", "bar"}, res.Unresolved)
}

func TestConverter_EmitGlyph(t *testing.T) {
	c := newConverter(t, Options{Emit: EmitGlyph})
	assert.Equal(t, "𒈗 𒆠 ", c.Convert("lugal ki").Text())
}

func TestConverter_Language(t *testing.T) {
	c := newConverter(t, Options{Language: "hit"})
	assert.Equal(t, "lugal HA KI ", c.Convert("lugal ḫa ki").Text())
	assert.Less(t, c.Inventory().Len(), testInventory(t).Len())

	_, err := NewConverter(testInventory(t), Options{Language: "elx"})
	assert.ErrorIs(t, err, sign.ErrInvalidLanguage)
}

func TestConverter_ComposeNFC(t *testing.T) {
	decomposed := "s\u030carru"

	plain := newConverter(t, Options{})
	assert.Equal(t, decomposed+" ", plain.Convert(decomposed).Text())

	nfc := newConverter(t, Options{ComposeNFC: true})
	assert.Equal(t, "LUGAL ", nfc.Convert(decomposed).Text())
}

func TestConverter_Candidates(t *testing.T) {
	c := newConverter(t, Options{})

	report := c.Candidates("lu ki lu\n\nzzz")
	require.Len(t, report, 3)

	assert.Equal(t, 1, report[0].Line)
	require.Len(t, report[0].Tokens, 2)
	assert.Equal(t, "lu", report[0].Tokens[0].Token)
	assert.Equal(t, []string{"lu", "lu₂"}, values(report[0].Tokens[0].Signs))
	assert.Equal(t, "ki", report[0].Tokens[1].Token)

	assert.Equal(t, 2, report[1].Line)
	assert.Empty(t, report[1].Tokens)

	assert.Equal(t, 3, report[2].Line)
	require.Len(t, report[2].Tokens, 1)
	assert.Empty(t, report[2].Tokens[0].Signs)
}

func TestConverter_CandidatesLoose(t *testing.T) {
	c := newConverter(t, Options{Mode: ModeLoose})

	report := c.Candidates("LU")
	require.Len(t, report, 1)
	require.Len(t, report[0].Tokens, 1)
	assert.Equal(t, []string{"lu", "lu₂", "ulu₃"}, values(report[0].Tokens[0].Signs))
}

func TestConverter_ConcurrentUse(t *testing.T) {
	c := newConverter(t, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "EN LUGAL ", c.Convert("lugal šarru").Text())
			assert.Len(t, c.Candidates("lu ki")[0].Tokens, 2)
		}()
	}
	wg.Wait()
}

func TestConverter_Accessors(t *testing.T) {
	c := newConverter(t, Options{Emit: EmitGlyph, Mode: ModeLoose})
	assert.Equal(t, "𒈗", c.Resolver().Resolve("lugal"))
	assert.Len(t, c.Finder().Find("lu"), 3)
}
