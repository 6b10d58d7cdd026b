package cmd

import (
	"github.com/spf13/cobra"

	"github.com/f3rmion/cuneify/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI that converts as you type.

Features:
  - Live conversion of the whole input line
  - Match details for the selected token
  - Every candidate sign for the selected token
  - Large glyph preview when a cuneiform font is installed

Controls:
  Tab / Shift+Tab   Select token
  PgUp / PgDn       Scroll candidates
  Ctrl+Y            Copy output
  Esc               Quit`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()
	opts, err := converterOptions(cfg)
	if err != nil {
		return err
	}

	conv, err := loadConverter(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}

	return tui.Run(conv)
}
