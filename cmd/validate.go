package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/people-csv-loader/internal/csvparser"
	"github.com/ginjaninja78/people-csv-loader/internal/report"
	"github.com/ginjaninja78/people-csv-loader/pkg/utils"
)

// validateCmd loads a file without printing its records.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a people file without printing it",
	Long: `The validate command loads a people file and prints the record and
department counts, or fails with the first bad line.`,

	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyLoadFlags(appConfig); err != nil {
			return err
		}

		inputPath := utils.ResolveInputPath(args, appConfig.InputFile)
		logInputLocation(inputPath)

		loader := csvparser.NewLoader(csvparser.Settings{Encoding: appConfig.Encoding}, logger)
		result, err := loader.LoadFile(inputPath)
		if err != nil {
			return err
		}

		summary := report.Summarize(result)
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d people, %d departments\n",
			summary.People, summary.UniqueDepartments)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(
		&inputEncoding,
		"encoding",
		"",
		"Character encoding of the input file, e.g. windows-1251 (default from config)",
	)
}
