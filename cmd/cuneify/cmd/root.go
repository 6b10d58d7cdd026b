// Package cmd contains all CLI commands for cuneify.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/cuneify/internal/config"
	"github.com/f3rmion/cuneify/internal/cuneify"
	"github.com/f3rmion/cuneify/internal/logger"
	"github.com/f3rmion/cuneify/internal/sign"
)

var cfgFile string

var (
	convertFiles     string
	convertText      string
	convertStdin     bool
	convertShowAll   bool
	convertLoose     bool
	convertOutfile   string
	convertShowLangs bool
	convertJSON      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cuneify",
	Short: "Convert transliterated cuneiform into Unicode cuneiform signs",
	Long: `cuneify converts transliterations such as "a-na šar-ri be-li₂-ia" into
cuneiform signs, using the ORACC Global Sign List.

Readings may be written in Unicode (š, ḫ, ₂) or in ORACC ASCII (c, h, 2).
Each token is looked up exactly, then in ASCII spelling, then with redundant
commas removed, and finally once more with its case swapped. Tokens that
match nothing are copied through unchanged.

Examples:
  cuneify --text "lugal-e"
  cuneify --file "tablet1.atf tablet2.atf" --outfile signs.txt
  echo "DINGIR-ra" | cuneify --stdin --emit form
  cuneify --text "lu" --showall`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
	RunE: runConvert,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/cuneify)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().StringP("inventory", "i", "", "sign inventory file (.jsonl or .db)")
	rootCmd.PersistentFlags().StringP("lang", "l", "", "only use signs of this language (hit, akk, sux)")
	rootCmd.PersistentFlags().String("emit", "", "write the sign's glyph or form (default from config: glyph)")
	rootCmd.PersistentFlags().Bool("nfc", true, "compose decomposed diacritics before lookup")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("inventory", rootCmd.PersistentFlags().Lookup("inventory"))
	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("lang"))
	viper.BindPFlag("emit", rootCmd.PersistentFlags().Lookup("emit"))
	viper.BindPFlag("compose_nfc", rootCmd.PersistentFlags().Lookup("nfc"))

	f := rootCmd.Flags()
	f.StringVarP(&convertFiles, "file", "f", "", "input file(s), space separated; read before --text")
	f.StringVarP(&convertText, "text", "t", "", "text to convert (processed after --file)")
	f.BoolVarP(&convertStdin, "stdin", "s", false, "read from stdin; overrides --file and --text")
	f.BoolVarP(&convertShowAll, "showall", "a", false, "show every sign that could match each token")
	f.BoolVar(&convertLoose, "loose", false, "with --showall, match case-insensitively anywhere before trailing digits")
	f.StringVarP(&convertOutfile, "outfile", "o", "", "append output to this file instead of stdout")
	f.BoolVar(&convertShowLangs, "show-langs", false, "print supported languages and exit")
	f.BoolVar(&convertJSON, "json", false, "with --showall, print the report as JSON")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("CUNEIFY")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadUserConfig reads config.yaml and applies flag and environment
// overrides on top of it.
func loadUserConfig() *config.Config {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("ignoring config: %v", err)
		}
		cfg = config.Default()
	}

	if viper.IsSet("inventory") {
		cfg.Inventory = viper.GetString("inventory")
	}
	if viper.IsSet("language") {
		cfg.Language = viper.GetString("language")
	}
	if viper.IsSet("emit") {
		cfg.Emit = viper.GetString("emit")
	}
	if viper.IsSet("compose_nfc") {
		cfg.ComposeNFC = viper.GetBool("compose_nfc")
	}
	return cfg
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertShowLangs {
		printLanguages(cmd.OutOrStdout())
		return nil
	}

	cfg := loadUserConfig()
	if convertLoose {
		cfg.CandidateMode = cuneify.ModeLoose.String()
	}

	// Validate options before reading any input.
	opts, err := converterOptions(cfg)
	if err != nil {
		return err
	}

	text, err := gatherText(cmd.InOrStdin())
	if err != nil {
		return err
	}
	if text == "" {
		return cmd.Help()
	}

	conv, err := loadConverter(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if convertOutfile != "" {
		file, err := os.OpenFile(convertOutfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if convertShowAll {
		report := conv.Candidates(text)
		if convertJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(report)
		}
		return writeReport(out, report)
	}

	res := conv.Convert(text)
	if _, err := fmt.Fprintln(out, res.Text()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// converterOptions turns config values into converter options, rejecting
// unknown languages, emit fields and candidate modes.
func converterOptions(cfg *config.Config) (cuneify.Options, error) {
	lang, err := sign.ParseLanguage(cfg.Language)
	if err != nil {
		return cuneify.Options{}, fmt.Errorf("--lang %s: %w (run 'cuneify langs' to see supported languages)", cfg.Language, err)
	}
	emit, err := cuneify.ParseEmit(cfg.Emit)
	if err != nil {
		return cuneify.Options{}, err
	}
	mode, err := cuneify.ParseMode(cfg.CandidateMode)
	if err != nil {
		return cuneify.Options{}, err
	}

	return cuneify.Options{
		Language:   lang,
		Emit:       emit,
		Mode:       mode,
		ComposeNFC: cfg.ComposeNFC,
	}, nil
}

// gatherText collects input: files first, then --text. --stdin replaces
// both.
func gatherText(stdin io.Reader) (string, error) {
	if convertStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	var b strings.Builder
	for _, path := range strings.Fields(convertFiles) {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		b.Write(data)
	}
	b.WriteString(convertText)
	return b.String(), nil
}
