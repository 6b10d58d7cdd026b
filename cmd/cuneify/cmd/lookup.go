package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/cuneify/internal/cuneify"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <token>...",
	Short: "Show how tokens resolve and which signs they could stand for",
	Long: `Look up one or more transliterated tokens and display:
  - The sign each token resolves to (form, glyph, reading)
  - Which lookup view matched, and whether the case had to be swapped
  - Every sign whose reading fits the token

Example:
  cuneify lookup lugal
  cuneify lookup ša₃ DINGIR lu --loose`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

var lookupLoose bool

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVar(&lookupLoose, "loose", false, "match candidates case-insensitively anywhere before trailing digits")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()
	if lookupLoose {
		cfg.CandidateMode = cuneify.ModeLoose.String()
	}

	opts, err := converterOptions(cfg)
	if err != nil {
		return err
	}

	conv, err := loadConverter(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, tok := range args {
		fmt.Fprintf(out, "Token: %s\n", tok)

		m, ok := conv.Resolver().Match(tok)
		if !ok {
			fmt.Fprintf(out, "  Resolves to: (no match)\n")
		} else {
			fmt.Fprintf(out, "  Resolves to: %s %s\n", m.Sign.Glyph, m.Sign.Form)
			fmt.Fprintf(out, "  Reading:     %s\n", m.Sign.Value)
			matched := fmt.Sprintf("%s (%s view)", m.Key, m.Tier)
			if m.Swapped {
				matched += ", case swapped"
			}
			fmt.Fprintf(out, "  Matched:     %s\n", matched)
			if m.Sign.Language != "" {
				fmt.Fprintf(out, "  Language:    %s\n", m.Sign.Language)
			}
		}

		finder := conv.Finder()
		fmt.Fprintf(out, "  Candidates (%s, pattern %q):\n", opts.Mode, finder.Pattern(tok))
		var b strings.Builder
		writeSigns(&b, finder.Find(tok))
		fmt.Fprintln(out, b.String())
	}

	return nil
}
