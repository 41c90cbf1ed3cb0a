package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ppiankov/connectives/internal/errors"
	"github.com/ppiankov/connectives/internal/logger"
	"github.com/ppiankov/connectives/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is set at build time
var Version = "v0.1.0"

var (
	cfgFile string
	verbose bool
	logJSON bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "connectives",
	Short: "Connectives - aggregate elicited judgments and check cross-linguistic generalizations",
	Long: `Connectives turns per-language judgment data about logical connectives into
summary tables and tests cross-linguistic generalizations against them.

  summarize   aggregate one language's evidence into a summary table
  batch       aggregate several languages listed in a manifest
  merge       stack summary tables into one merged table
  check       test the four generalizations on a merged table
  stats       report per-language coverage of a merged table

It reports what the data shows. It does not model the linguistic theory.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(viper.GetBool("log.json"), viper.GetBool("log.verbose")); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of connectives.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("connectives %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.connectives/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logs)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Bind flags to viper
	_ = viper.BindPFlag("log.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("log-json"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in the .env file, config file and ENV variables
func initConfig() {
	// A missing .env file is not an error
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
		} else {
			// Search for config in home directory
			viper.AddConfigPath(filepath.Join(home, ".connectives"))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	setDefaults(model.DefaultConfig())

	// Read in environment variables that match CONNECTIVES_*, e.g. CONNECTIVES_AGGREGATE_STRICT
	viper.SetEnvPrefix("CONNECTIVES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && viper.GetBool("log.verbose") {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key so env variables and Unmarshal see it
func setDefaults(cfg *model.Config) {
	viper.SetDefault("input.questionnaire", cfg.Input.Questionnaire)
	viper.SetDefault("input.examples", cfg.Input.Examples)
	viper.SetDefault("input.evidence", cfg.Input.Evidence)
	viper.SetDefault("input.merged", cfg.Input.Merged)
	viper.SetDefault("output.summary", cfg.Output.Summary)
	viper.SetDefault("output.dir", cfg.Output.Dir)
	viper.SetDefault("output.null_marker", cfg.Output.NullMarker)
	viper.SetDefault("aggregate.evidence_ref_column", cfg.Aggregate.EvidenceRefColumn)
	viper.SetDefault("aggregate.strict", cfg.Aggregate.Strict)
	viper.SetDefault("cache.enabled", cfg.Cache.Enabled)
	viper.SetDefault("cache.ttl", cfg.Cache.TTL)
	viper.SetDefault("log.json", cfg.Log.JSON)
	viper.SetDefault("log.verbose", cfg.Log.Verbose)
}

// bindFlags binds command flags to config keys. Several commands share keys,
// so binding happens when the command runs rather than in init.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// loadConfig resolves the effective configuration (flags > env > file > defaults)
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "load configuration"), errors.ErrUnexpected)
	}
	return cfg, nil
}
