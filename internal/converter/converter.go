// =============================================================================
// People CSV Loader - Export Pipeline
// =============================================================================
//
// This module runs the export pipeline for a single input file, from loading
// the people file to writing the export into the output directory.
//
// EXPORT PIPELINE:
//   1. Load the people file (fail-fast, first bad line aborts)
//   2. Compute the summary counts
//   3. Render the configured output format (text, xml, xlsx or yaml)
//   4. Write the export into the output directory
//   5. On failure, write an error log into the output directory
//
// CONCURRENCY:
//   A Converter holds no shared state. Several converters can run at the
//   same time, one per input file.
//
// =============================================================================

package converter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ginjaninja78/people-csv-loader/internal/config"
	"github.com/ginjaninja78/people-csv-loader/internal/csvparser"
	"github.com/ginjaninja78/people-csv-loader/internal/report"
	"github.com/ginjaninja78/people-csv-loader/internal/validation"
	"github.com/ginjaninja78/people-csv-loader/internal/xlsxwriter"
	"github.com/ginjaninja78/people-csv-loader/internal/xmlwriter"
	"github.com/ginjaninja78/people-csv-loader/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of exporting a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path to the generated export.
	// This is empty if processing failed.
	OutputFile string

	// ErrorLog is the path to the error log written on failure, if any.
	ErrorLog string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// People is the number of records loaded.
	People int

	// Departments is the number of distinct departments in the file.
	Departments int

	// UniqueDepartments is the number of distinct departments referenced by
	// the loaded people. Equal to Departments for a successful load.
	UniqueDepartments int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter exports a single people file.
type Converter struct {
	inputPath string
	config    *config.MainConfig
	logger    *zap.Logger
}

// New creates a new Converter instance.
//
// PARAMETERS:
//   - inputPath: The path to the input people file.
//   - cfg: The main application configuration (format, output directory).
//   - logger: The logger; nil disables logging.
//
// RETURNS:
//   - A new Converter instance.
func New(inputPath string, cfg *config.MainConfig, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		inputPath: inputPath,
		config:    cfg,
		logger:    logger.With(zap.String("file", inputPath)),
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the export pipeline for the file.
//
// RETURNS:
//   - A Result struct containing the outcome of the processing.
func (c *Converter) Run() (result Result) {
	startTime := time.Now()
	result = Result{
		FilePath: c.inputPath,
		Success:  false,
	}
	defer func() {
		result.Stats.ProcessingTime = time.Since(startTime)
	}()

	c.logger.Info("processing file", zap.String("format", c.config.OutputFormat))

	if err := utils.EnsureDirectory(c.config.OutputDir); err != nil {
		result.Error = err
		return result
	}

	// =========================================================================
	// STEP 1: LOAD THE PEOPLE FILE
	// =========================================================================

	loader := csvparser.NewLoader(csvparser.Settings{Encoding: c.config.Encoding}, c.logger)
	loaded, err := loader.LoadFile(c.inputPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to load %s: %w", c.inputPath, err)
		result.ErrorLog = c.writeErrorLog(err)
		return result
	}

	// =========================================================================
	// STEP 2: SUMMARY
	// =========================================================================

	summary := report.Summarize(loaded)
	result.Stats.People = summary.People
	result.Stats.UniqueDepartments = summary.UniqueDepartments
	result.Stats.Departments = len(loaded.Departments)

	// =========================================================================
	// STEP 3 + 4: RENDER AND WRITE THE EXPORT
	// =========================================================================

	outputPath, err := c.writeOutput(loaded)
	if err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		result.ErrorLog = c.writeErrorLog(err)
		return result
	}

	result.OutputFile = outputPath
	result.Success = true

	c.logger.Info("wrote export",
		zap.String("output", outputPath),
		zap.Int("people", summary.People),
		zap.Int("unique_departments", summary.UniqueDepartments),
	)

	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// writeOutput renders the load result in the configured format and writes
// it into the output directory.
func (c *Converter) writeOutput(loaded *csvparser.LoadResult) (string, error) {
	format := c.config.OutputFormat
	fileName := utils.GenerateOutputFileName(c.config.FileNameFormat, extension(format), map[string]string{
		"input": utils.InputBaseName(c.inputPath),
	})
	outputPath := filepath.Join(c.config.OutputDir, fileName)

	// Excelize writes the file itself.
	if format == config.FormatXLSX {
		if err := xlsxwriter.Write(outputPath, loaded); err != nil {
			return "", err
		}
		return outputPath, nil
	}

	var buffer bytes.Buffer
	switch format {
	case config.FormatXML:
		doc, err := xmlwriter.GenerateWithOptions(loaded, xmlOptions(c.inputPath))
		if err != nil {
			return "", err
		}
		buffer.Write(doc)
	case config.FormatYAML:
		if err := report.WriteYAML(&buffer, loaded); err != nil {
			return "", err
		}
	case config.FormatText:
		if err := report.WriteText(&buffer, loaded); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}

	if err := os.WriteFile(outputPath, buffer.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return outputPath, nil
}

// xmlOptions labels the XML root with the input file name.
func xmlOptions(inputPath string) xmlwriter.GenerateOptions {
	options := xmlwriter.DefaultGenerateOptions()
	options.RootAttributes["source"] = filepath.Base(inputPath)
	return options
}

// extension maps an output format to its file extension.
func extension(format string) string {
	if format == config.FormatText {
		return "txt"
	}
	return format
}

// writeErrorLog records a failed run next to the exports. A failure to
// write the log is only logged.
func (c *Converter) writeErrorLog(err error) string {
	entry := utils.ErrorLogEntry{
		Timestamp:    time.Now(),
		FileName:     c.inputPath,
		ErrorType:    errorType(err),
		ErrorMessage: err.Error(),
	}

	var fieldErr *validation.FieldError
	var columnErr *validation.ColumnCountError
	switch {
	case errors.As(err, &fieldErr):
		entry.LineNumber = fieldErr.Line
		entry.FieldName = fieldErr.Field
		entry.FieldValue = fieldErr.Value
	case errors.As(err, &columnErr):
		entry.LineNumber = columnErr.Line
		entry.FieldValue = columnErr.Text
	}

	c.logger.Warn("export failed", zap.Error(err))

	logPath, logErr := utils.WriteErrorLog([]utils.ErrorLogEntry{entry}, c.config.OutputDir)
	if logErr != nil {
		c.logger.Warn("failed to write error log", zap.Error(logErr))
		return ""
	}
	return logPath
}

// errorType classifies an error for the error log.
func errorType(err error) string {
	var accessErr *csvparser.FileAccessError
	for _, kind := range []error{
		validation.ErrMalformedColumnCount,
		validation.ErrInvalidInteger,
		validation.ErrInvalidDecimal,
		validation.ErrInvalidDate,
		validation.ErrInvalidGenderToken,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	if errors.As(err, &accessErr) {
		return "file access"
	}
	return "export"
}
