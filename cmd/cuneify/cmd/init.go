package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/cuneify/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize cuneify configuration",
	Long: `Initialize the cuneify configuration file in your config directory.

This creates config.yaml with the default settings:
  - inventory       path to the sign inventory (empty: search data/ and the config dir)
  - language        default language filter (hit, akk, sux, or empty)
  - emit            write glyphs or sign forms
  - candidate_mode  strict or loose matching for --showall
  - compose_nfc     compose decomposed diacritics before lookup

Run 'cuneify build' afterwards to compile the sign inventory.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Download ogsl-sl.xml from https://github.com/oracc/coredata")
	fmt.Fprintf(out, "  2. Run 'cuneify build ogsl-sl.xml %s'\n", filepath.Join(configDir, "signs.db"))
	fmt.Fprintln(out, "  3. Run 'cuneify --text \"lugal-e\"' to convert some text")

	return nil
}
