// =============================================================================
// People CSV Loader - Root Command
// =============================================================================
//
// This file defines the root command of the CLI. Every subcommand inherits
// its persistent flags and the configuration/logger bootstrap below.
//
// COMMAND STRUCTURE:
//   people-loader                 # Root command (shows help)
//   ├── load [file]               # Load a file and print or export it
//   ├── validate [file]           # Load a file and report only the counts
//   ├── process [files...]        # Export several files concurrently
//   └── version                   # Display version information
//
// GLOBAL FLAGS:
//   --config   Path to the main configuration file (default: config.yaml)
//   --verbose  Enable debug logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/people-csv-loader/internal/config"
	"github.com/ginjaninja78/people-csv-loader/internal/observability"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
var cfgFile string

// verbose enables debug logging.
var verbose bool

// appConfig and logger are initialized before any subcommand runs.
var (
	appConfig *config.MainConfig
	logger    *zap.Logger
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "people-loader",

	Short: "People CSV Loader - Load and export semicolon-separated people files",

	Long: `People CSV Loader reads a semicolon-separated file of people records
(id;name;gender;birthDate;department;salary), normalizes every column and
deduplicates departments case-insensitively.

Key Features:
  - Quoted fields, optional header line, comma or period decimals
  - Gender tokens in English and Russian
  - Fail-fast loading with the line number of the first bad record
  - Text, XML, XLSX and YAML exports

Example Usage:
  people-loader load                        # Load foreign_names.csv and print it
  people-loader load staff.csv --format xml # Export staff.csv as XML
  people-loader validate staff.csv          # Only check the file`,

	// Execute prints the error itself.
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize(cmd)
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init defines the persistent flags shared by every subcommand.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// initialize loads the configuration and builds the logger. A missing
// config file is tolerated unless --config was given explicitly.
func initialize(cmd *cobra.Command) error {
	cfg, err := config.LoadMainConfig(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	appConfig = cfg
	logger = log
	return nil
}
