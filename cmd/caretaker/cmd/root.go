package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/msto63/caretaker/foundation/core/log"
	"github.com/msto63/caretaker/foundation/utils/randx"
	"github.com/msto63/caretaker/pkg/core/config"
)

// env carries the resolved configuration shared by all subcommands
type env struct {
	// flag values
	configFile string
	timestamp  bool
	color      string
	seed       uint64
	locale     string

	cfg    *config.Config
	logger *log.Logger
	src    randx.Source
	tag    language.Tag
}

// NewRootCmd builds the caretaker command tree
func NewRootCmd() *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:   "caretaker",
		Short: "caretaker - small helpers for sequences, strings, time and logging",
		Long: `caretaker bundles the toolkit's helpers behind a command line.

Commands:
  split    - split strings or lists at positions or separators
  replace  - replace every occurrence of a substring
  match    - compare a string against candidates, ignoring case
  convert  - convert between time units
  now      - print the current clock time
  enum     - resolve an enumeration index, clamping out-of-range values
  log      - write a coloured log line
  clear    - clear the previous console line
  coin     - flip a (weighted) coin
  pick     - pick a random item`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&e.configFile, "config", "", "config file (default: $"+config.EnvConfigPath+" or ./caretaker.toml)")
	flags.BoolVar(&e.timestamp, "timestamp", false, "prefix log lines with the current time")
	flags.StringVar(&e.color, "color", "auto", "colour mode: auto, always or never")
	flags.Uint64Var(&e.seed, "seed", 0, "seed for reproducible random draws (0 = random)")
	flags.StringVar(&e.locale, "locale", "", "locale for case-insensitive matching (default: $LC_ALL, $LC_MESSAGES, $LANG)")

	rootCmd.AddCommand(
		newSplitCmd(e),
		newReplaceCmd(),
		newMatchCmd(e),
		newConvertCmd(),
		newNowCmd(),
		newEnumCmd(e),
		newLogCmd(e),
		newClearCmd(e),
		newCoinCmd(e),
		newPickCmd(e),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command and reports failures on stderr
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		log.NewWithConfig(log.Config{Output: os.Stderr}).Error(err)
		return err
	}
	return nil
}

// setup loads the configuration, applies flag overrides and builds the
// logger and randomness source.
func (e *env) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if e.configFile != "" {
		cfg, err = config.Load(e.configFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("timestamp") {
		cfg.Log.Timestamp = e.timestamp
	}
	if flags.Changed("color") {
		cfg.Log.Color = e.color
	}
	if flags.Changed("seed") {
		cfg.Random.Seed = e.seed
	}
	if flags.Changed("locale") {
		cfg.Locale = e.locale
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := cfg.LoggerConfig()
	if cfg.Log.Output == "stderr" {
		lc.Output = cmd.ErrOrStderr()
	} else {
		lc.Output = cmd.OutOrStdout()
	}

	e.cfg = cfg
	e.logger = log.NewWithConfig(lc)
	e.src = cfg.Source()
	e.tag = cfg.LocaleTag()

	log.SetDefault(e.logger)
	return nil
}
