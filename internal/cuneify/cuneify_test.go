package cuneify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/cuneify/internal/sign"
)

func testSigns() []sign.Sign {
	return []sign.Sign{
		{Value: "lugal", Form: "EN", Glyph: "𒈗", Language: "sux"},
		{Value: "šarru", Form: "LUGAL", Glyph: "𒈗", Language: "akk"},
		{Value: "ŠA₃", Form: "ŠA3", Glyph: "𒊮"},
		{Value: "lu", Form: "LU", Glyph: "𒇻"},
		{Value: "lu₂", Form: "LU2", Glyph: "𒇽"},
		{Value: "ulu₃", Form: "ULU3", Glyph: "𒌌"},
		{Value: "ḫa", Form: "HA", Glyph: "𒄩", Language: "hit"},
		{Value: "dingir", Form: "AN", Glyph: "𒀭"},
		{Value: "an", Form: "AN", Glyph: "𒀭"},
		{Value: "ki", Form: "KI", Glyph: "𒆠"},
		{Value: "ki", Form: "KI", Glyph: "𒆠"},
		{Value: "DIŠ", Form: "DIŠ", Glyph: "𒁹"},
	}
}

func testInventory(t *testing.T) *sign.Inventory {
	t.Helper()
	inv, err := sign.NewInventory(testSigns())
	require.NoError(t, err)
	return inv
}
