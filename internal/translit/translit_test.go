package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"shin", "šarru", "c,arru"},
		{"capital shin", "ŠA₃", "c,A3"},
		{"emphatics", "ṣabu ṭuppu", "s,abu t,uppu"},
		{"capital emphatics", "Ṣ Ṭ", "S, T,"},
		{"het", "ḫa-ḫu", "h,a-h,u"},
		{"capital het", "Ḫ", "H,"},
		{"eng", "ŋa₂ Ŋ", "j,a2 J,"},
		{"eng comma", "ŋ", "j,"},
		{"times", "LAK×KUR", "LAKX,KUR"},
		{"aleph and ayin", "baʾu ʿa", "ba),u (,a"},
		{"subscripts", "₀₁₂₃₄₅₆₇₈₉", "0123456789"},
		{"subscript x", "šeₓ", "c,ex"},
		{"half brackets", "⸢lugal⸣ ⸤ki⸥", "[,lugal], ki"},
		{"superscript r", "aʳ", "a,r"},
		{"plain ascii", "lugal", "lugal"},
		{"empty", "", ""},
		{"unmapped", "é ü", "é ü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"šarru", "ŠA₃", "⸢ḫa⸣-ʾa×ŋ", "lugal", "", "ʳʿ₉ₓ"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestCollapseCommas(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"c,arru", "carru"},
		{"c,A3", "cA3"},
		{"h,a-t,u", "ha-tu"},
		{"j,a2 J,", "ja2 J"},
		{"LAKX,KUR", "LAKXKUR"},
		{"ba),u (,a", "ba)u (a"},
		{"[,lugal],", "[lugal]"},
		{"s,abu S,", "s,abu S,"},
		{"a,r", "a,r"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CollapseCommas(tt.in), "input %q", tt.in)
	}
}

func TestSwapCase(t *testing.T) {
	assert.Equal(t, "LUGAL", SwapCase("lugal"))
	assert.Equal(t, "dingir", SwapCase("DINGIR"))
	assert.Equal(t, "Ša3", SwapCase("šA3"))
	assert.Equal(t, "", SwapCase(""))
	assert.Equal(t, "12-[]", SwapCase("12-[]"))
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "lugal", "lugal"},
		{"exclamation", "lugal!", "lugal"},
		{"question", "lugal?", "lugal"},
		{"hash", "lugal#", "lugal"},
		{"star", "lugal*", "lugal"},
		{"only one marker dropped", "lugal?!", "lugal?"},
		{"single marker kept", "?", "?"},
		{"whitespace", "  lugal\t", "lugal"},
		{"brackets", "[lugal]", "lugal"},
		{"parens and slashes", `(/lugal\)`, "lugal"},
		{"marker then bracket", "[lugal]#", "lugal"},
		{"digits kept", "lu2", "lu2"},
		{"all delimiters", "[()]", ""},
		{"empty", "", ""},
		{"marker after multibyte", "š?", "š"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestCleanPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"lu2", "lu"},
		{"[lu2]#", "lu"},
		{"2(diš)", "diš"},
		{"lu₂", "lu₂"},
		{"123", ""},
		{"šu", "šu"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanPattern(tt.in), "input %q", tt.in)
	}
}
