package sign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSigns() []Sign {
	return []Sign{
		{Value: "lugal", Form: "EN", Glyph: "𒈗", Language: "sux"},
		{Value: "šarru", Form: "LUGAL", Glyph: "𒈗", Language: "akk"},
		{Value: "ŠA₃", Form: "ŠA3", Glyph: "𒊮"},
		{Value: "lu", Form: "LU", Glyph: "𒇻"},
		{Value: "lu₂", Form: "LU2", Glyph: "𒇽"},
		{Value: "lu", Form: "LU-dup", Glyph: "𒇻"},
		{Value: "ḫa", Form: "HA", Glyph: "𒄩", Language: "hit"},
		{Value: "ša", Form: "ŠA", Glyph: "𒊭", Language: "akk-x-stdbab"},
	}
}

func TestNewInventory(t *testing.T) {
	inv, err := NewInventory(testSigns())
	require.NoError(t, err)

	assert.Equal(t, 8, inv.Len())
	assert.Len(t, inv.Entries(), 8)
	assert.Equal(t, "c,arru", inv.Entries()[1].ASCII)
	assert.Equal(t, testSigns(), inv.Signs())
}

func TestNewInventory_RejectsMissingGlyph(t *testing.T) {
	for _, glyph := range []string{"", "X"} {
		_, err := NewInventory([]Sign{{Value: "lugal", Glyph: "𒈗"}, {Value: "bad", Glyph: glyph}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSign)
	}
}

func TestNewInventory_RejectsEmptyValue(t *testing.T) {
	_, err := NewInventory([]Sign{{Value: "lugal", Glyph: "𒈗"}, {Value: "", Form: "AN", Glyph: "𒀭"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSign)
}

func TestInventory_Get(t *testing.T) {
	inv, err := NewInventory(testSigns())
	require.NoError(t, err)

	tests := []struct {
		tier Tier
		key  string
		want []string
	}{
		{TierRaw, "šarru", []string{"LUGAL"}},
		{TierRaw, "c,arru", nil},
		{TierASCII, "c,arru", []string{"LUGAL"}},
		{TierASCII, "c,A3", []string{"ŠA3"}},
		{TierNoComma, "carru", []string{"LUGAL"}},
		{TierNoComma, "cA3", []string{"ŠA3"}},
		{TierRaw, "lu", []string{"LU", "LU-dup"}},
		{TierASCII, "lu2", []string{"LU2"}},
		{Tier(7), "lu", nil},
	}

	for _, tt := range tests {
		var forms []string
		for _, s := range inv.Get(tt.tier, tt.key) {
			forms = append(forms, s.Form)
		}
		assert.Equal(t, tt.want, forms, "%s %q", tt.tier, tt.key)
	}
}

func TestInventory_Lookup(t *testing.T) {
	inv, err := NewInventory(testSigns())
	require.NoError(t, err)

	tests := []struct {
		key      string
		wantForm string
		wantTier Tier
		wantOK   bool
	}{
		{"lugal", "EN", TierRaw, true},
		{"šarru", "LUGAL", TierRaw, true},
		{"c,arru", "LUGAL", TierASCII, true},
		{"carru", "LUGAL", TierNoComma, true},
		{"lu", "LU", TierRaw, true},
		{"lu2", "LU2", TierASCII, true},
		{"ha", "HA", TierNoComma, true},
		{"LUGAL", "", 0, false},
		{"", "", 0, false},
	}

	for _, tt := range tests {
		s, tier, ok := inv.Lookup(tt.key)
		assert.Equal(t, tt.wantOK, ok, "key %q", tt.key)
		assert.Equal(t, tt.wantForm, s.Form, "key %q", tt.key)
		if ok {
			assert.Equal(t, tt.wantTier, tier, "key %q", tt.key)
		}
	}
}

func TestInventory_Filter(t *testing.T) {
	inv, err := NewInventory(testSigns())
	require.NoError(t, err)

	akk, err := inv.Filter("AKK")
	require.NoError(t, err)

	var values []string
	for _, s := range akk.Signs() {
		values = append(values, s.Value)
	}
	assert.Equal(t, []string{"šarru", "ŠA₃", "lu", "lu₂", "lu", "ša"}, values)

	same, err := inv.Filter("")
	require.NoError(t, err)
	assert.Same(t, inv, same)

	_, err = inv.Filter("elx")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
}

func TestParseLanguage(t *testing.T) {
	for _, code := range []string{"hit", "akk", "sux", " SUX "} {
		got, err := ParseLanguage(code)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	}

	got, err := ParseLanguage("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseLanguage("xyz")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	require.Len(t, langs, 3)
	assert.Equal(t, Language{Code: "hit", Name: "Hittite"}, langs[0])

	langs[0].Code = "changed"
	assert.Equal(t, "hit", Languages()[0].Code)
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "raw", TierRaw.String())
	assert.Equal(t, "ascii", TierASCII.String())
	assert.Equal(t, "ascii-nocomma", TierNoComma.String())
	assert.Equal(t, "tier(9)", Tier(9).String())
}
