// =============================================================================
// People CSV Loader - Load Command
// =============================================================================
//
// This file defines the 'load' command, the main entry point of the tool.
//
// COMMAND USAGE:
//   people-loader load [file] [flags]
//
// FLAGS:
//   --format      Output format: text (default), xml, xlsx or yaml
//   --output-dir  Directory for xml, xlsx and yaml exports
//   --encoding    Character encoding of the input file
//
// OUTPUT:
//   With --format text every person is printed followed by a blank line,
//   then "Loaded people: N" and "Unique departments: M". Other formats are
//   written to the output directory and the file name is printed.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/people-csv-loader/internal/config"
	"github.com/ginjaninja78/people-csv-loader/internal/converter"
	"github.com/ginjaninja78/people-csv-loader/internal/csvparser"
	"github.com/ginjaninja78/people-csv-loader/internal/report"
	"github.com/ginjaninja78/people-csv-loader/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// outputFormat overrides output_format from the configuration.
var outputFormat string

// outputDir overrides output_dir from the configuration.
var outputDir string

// inputEncoding overrides encoding from the configuration.
var inputEncoding string

// =============================================================================
// LOAD COMMAND DEFINITION
// =============================================================================

// loadCmd represents the 'load' command.
var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load a people file and print or export it",
	Long: `The load command reads a semicolon-separated people file and prints every
record followed by a summary, or writes an export to the output directory.

When no file is given, input_file from the configuration is used
(foreign_names.csv by default).

Loading stops at the first bad line and reports its line number.`,

	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(cmd, args)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the load command and its flags.
func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(
		&outputFormat,
		"format",
		"",
		"Output format: text, xml, xlsx or yaml (default from config)",
	)

	loadCmd.Flags().StringVar(
		&outputDir,
		"output-dir",
		"",
		"Directory for exported files (default from config)",
	)

	loadCmd.Flags().StringVar(
		&inputEncoding,
		"encoding",
		"",
		"Character encoding of the input file, e.g. windows-1251 (default from config)",
	)
}

// =============================================================================
// LOAD LOGIC
// =============================================================================

// runLoad executes the load command.
func runLoad(cmd *cobra.Command, args []string) error {
	if err := applyLoadFlags(appConfig); err != nil {
		return err
	}

	inputPath := utils.ResolveInputPath(args, appConfig.InputFile)
	logInputLocation(inputPath)

	if appConfig.OutputFormat != config.FormatText {
		return runExport(cmd, inputPath)
	}

	loader := csvparser.NewLoader(csvparser.Settings{Encoding: appConfig.Encoding}, logger)
	result, err := loader.LoadFile(inputPath)
	if err != nil {
		return err
	}

	return report.WriteText(cmd.OutOrStdout(), result)
}

// runExport writes the configured export through the converter.
func runExport(cmd *cobra.Command, inputPath string) error {
	result := converter.New(inputPath, appConfig, logger).Run()
	if !result.Success {
		return result.Error
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d people, %d departments)\n",
		result.OutputFile, result.Stats.People, result.Stats.UniqueDepartments)
	return nil
}

// applyLoadFlags copies explicitly set flags into the configuration.
func applyLoadFlags(cfg *config.MainConfig) error {
	if outputFormat != "" {
		cfg.OutputFormat = outputFormat
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if inputEncoding != "" {
		cfg.Encoding = inputEncoding
	}
	return cfg.Validate()
}

// logInputLocation reports where the input is looked up.
func logInputLocation(inputPath string) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	abs, err := filepath.Abs(inputPath)
	if err != nil {
		abs = inputPath
	}
	logger.Debug("resolved input file",
		zap.String("working_dir", wd),
		zap.String("path", abs),
		zap.Bool("exists", utils.FileExists(inputPath)),
	)
}
