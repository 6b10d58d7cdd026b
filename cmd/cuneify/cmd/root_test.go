package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/cuneify/internal/config"
	"github.com/f3rmion/cuneify/internal/cuneify"
	"github.com/f3rmion/cuneify/internal/sign"
)

func TestConverterOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Language = "AKK"
	cfg.CandidateMode = "loose"

	opts, err := converterOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, "akk", opts.Language)
	assert.Equal(t, cuneify.EmitGlyph, opts.Emit)
	assert.Equal(t, cuneify.ModeLoose, opts.Mode)
	assert.True(t, opts.ComposeNFC)
}

func TestConverterOptionsInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.Language = "elx"
	_, err := converterOptions(cfg)
	assert.ErrorIs(t, err, sign.ErrInvalidLanguage)

	cfg = config.Default()
	cfg.Emit = "both"
	_, err = converterOptions(cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.CandidateMode = "fuzzy"
	_, err = converterOptions(cfg)
	assert.Error(t, err)
}

func TestGatherText(t *testing.T) {
	t.Cleanup(func() {
		convertFiles, convertText, convertStdin = "", "", false
	})

	dir := t.TempDir()
	a := filepath.Join(dir, "a.atf")
	b := filepath.Join(dir, "b.atf")
	require.NoError(t, os.WriteFile(a, []byte("lugal\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("dingir\n"), 0644))

	convertFiles = a + " " + b
	convertText = "ki"
	text, err := gatherText(strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "lugal\ndingir\nki", text)

	convertStdin = true
	text, err = gatherText(strings.NewReader("an-ki\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "an-ki", text)
}

func TestGatherTextMissingFile(t *testing.T) {
	t.Cleanup(func() { convertFiles = "" })

	convertFiles = filepath.Join(t.TempDir(), "missing.atf")
	_, err := gatherText(strings.NewReader(""))
	assert.Error(t, err)
}
