package cmd

import "github.com/spf13/cobra"

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List the languages signs can be filtered by",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printLanguages(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(langsCmd)
}
