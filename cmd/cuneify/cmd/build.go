package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/cuneify/internal/logger"
	"github.com/f3rmion/cuneify/internal/ogsl"
	"github.com/f3rmion/cuneify/internal/sign"
)

var buildCmd = &cobra.Command{
	Use:   "build <ogsl-sl.xml> <signs.jsonl|signs.db>",
	Short: "Compile the ORACC sign list into a sign inventory",
	Long: `Compile the ORACC Global Sign List XML into the inventory cuneify looks
signs up in. The output format follows the file extension:
  .jsonl   one JSON object per sign
  .db      SQLite database with a signs table

Readings without a Unicode glyph are dropped.

The sign list is available from https://github.com/oracc/coredata
(sign/ogsl-sl.xml).

Example:
  cuneify build ogsl-sl.xml ~/.config/cuneify/signs.db`,
	Args: cobra.ExactArgs(2),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	if _, err := sign.FormatFor(dst); err != nil {
		return err
	}

	parser := ogsl.NewParser()
	signs, err := parser.ParseFile(src)
	if err != nil {
		return err
	}

	stats := parser.Stats()
	logger.Info("%d blocks, %d readings, %d without glyph", stats.Blocks, stats.Values, stats.Dropped)

	// Refuse to write an inventory that could not be loaded back.
	if _, err := sign.NewInventory(signs); err != nil {
		return fmt.Errorf("building inventory: %w", err)
	}

	if err := sign.SaveFile(cmd.Context(), dst, signs); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d signs to %s (%d readings without a glyph skipped)\n",
		len(signs), dst, stats.Dropped)
	return nil
}
