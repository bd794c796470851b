// =============================================================================
// People CSV Loader - Process Command
// =============================================================================
//
// This file defines the 'process' command, which exports several people
// files in one run.
//
// COMMAND USAGE:
//   people-loader process [files...] [flags]
//
// FLAGS:
//   --input-dir   Export every *.csv file found under this directory
//   --format      Output format: text, xml, xlsx or yaml
//   --output-dir  Directory for exported files
//   --encoding    Character encoding of the input files
//
// PROCESSING FLOW:
//   1. Collect the files from the arguments and --input-dir
//   2. Export each file in its own goroutine
//   3. Print one line per file and a summary
//
// A failing file does not stop the others. Each failure leaves an error log
// in the output directory.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/people-csv-loader/internal/config"
	"github.com/ginjaninja78/people-csv-loader/internal/converter"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputDir is scanned recursively for *.csv files.
var inputDir string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Export several people files concurrently",
	Long: `The process command exports every given file, and every *.csv file under
--input-dir, in the configured output format.

Processing is done concurrently. Each file is processed independently, and
errors in one file do not affect the processing of others.

On error:
  - An error log is created in the output directory
  - Processing continues for other files`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd, args)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command and its flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&inputDir,
		"input-dir",
		"",
		"Directory scanned recursively for *.csv files",
	)

	processCmd.Flags().StringVar(&outputFormat, "format", "", "Output format: text, xml, xlsx or yaml (default from config)")
	processCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for exported files (default from config)")
	processCmd.Flags().StringVar(&inputEncoding, "encoding", "", "Character encoding of the input files (default from config)")
}

// =============================================================================
// PROCESSING LOGIC
// =============================================================================

// runProcess executes the process command.
func runProcess(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	out := cmd.OutOrStdout()

	if err := applyLoadFlags(appConfig); err != nil {
		return err
	}

	inputFiles := append([]string(nil), args...)
	if inputDir != "" {
		found, err := discoverInputFiles(inputDir)
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
		inputFiles = append(inputFiles, found...)
	}

	if len(inputFiles) == 0 {
		return fmt.Errorf("no input files: pass file names or --input-dir")
	}

	fmt.Fprintf(out, "Found %d file(s) to process\n", len(inputFiles))

	results := exportAll(inputFiles, appConfig)

	var errorCount int
	for _, result := range results {
		if result.Success {
			fmt.Fprintf(out, "  ✓ %s -> %s\n", filepath.Base(result.FilePath), result.OutputFile)
		} else {
			errorCount++
			fmt.Fprintf(out, "  ✗ %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}
	}

	fmt.Fprintln(out, "\n=== Processing Complete ===")
	fmt.Fprintf(out, "Total files:     %d\n", len(inputFiles))
	fmt.Fprintf(out, "Successful:      %d\n", len(inputFiles)-errorCount)
	fmt.Fprintf(out, "Errors:          %d\n", errorCount)
	fmt.Fprintf(out, "Time elapsed:    %s\n", time.Since(startTime).Round(time.Millisecond))

	if errorCount > 0 {
		return fmt.Errorf("%d of %d file(s) failed, see the error logs in %s",
			errorCount, len(inputFiles), appConfig.OutputDir)
	}
	return nil
}

// exportAll runs one converter per file concurrently and returns the
// results in input order.
func exportAll(inputFiles []string, cfg *config.MainConfig) []converter.Result {
	var wg sync.WaitGroup
	results := make([]converter.Result, len(inputFiles))

	for i, file := range inputFiles {
		wg.Add(1)

		go func(i int, filePath string) {
			defer wg.Done()
			results[i] = converter.New(filePath, cfg, logger).Run()
		}(i, file)
	}

	wg.Wait()
	return results
}

// discoverInputFiles finds all *.csv files under dir, sorted by path.
func discoverInputFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if strings.EqualFold(filepath.Ext(path), ".csv") {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
