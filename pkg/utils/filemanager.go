// =============================================================================
// People CSV Loader - File Manager Utility
// =============================================================================
//
// This module provides file utilities for the loader, including:
//   - Input path resolution
//   - Directory management
//   - Export file naming
//   - Error log generation
//
// ERROR LOGS:
//   A load stops at the first bad line. When an export run fails, the
//   failure is written to error_log_<timestamp>_<id>.txt in the output directory
//   so batch runs leave a trace next to the exports.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// PATHS AND DIRECTORIES
// =============================================================================

// ResolveInputPath returns the first command-line argument, or fallback when
// no argument was given.
func ResolveInputPath(args []string, fallback string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0]
	}
	return fallback
}

// FileExists checks if a regular file exists.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureDirectory creates dir and its parents if they don't exist.
func EnsureDirectory(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// FILE NAMING
// =============================================================================

// GenerateOutputFileName generates an export file name from a format string.
//
// PARAMETERS:
//   - format: The format string with placeholders.
//   - ext: The file extension without the dot ("xml", "xlsx", ...).
//   - params: Additional parameters for placeholder replacement.
//
// PLACEHOLDERS:
//   - {uuid}: A new UUID
//   - {timestamp}: Current timestamp (YYYYMMDD_HHMMSS)
//   - {date}: Current date (YYYYMMDD)
//   - {time}: Current time (HHMMSS)
//   - {input}: Base name of the input file, when given in params
//   - {key}: Any other key from params
//
// RETURNS:
//   - The generated file name with the extension appended if missing.
func GenerateOutputFileName(format, ext string, params map[string]string) string {
	now := time.Now()

	// Generate UUID.
	id := uuid.New().String()

	// Build replacements.
	replacements := map[string]string{
		"{uuid}":      id,
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}

	// Add custom params.
	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	// Apply replacements.
	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Ensure the extension.
	suffix := "." + strings.ToLower(ext)
	if ext != "" && !strings.HasSuffix(strings.ToLower(result), suffix) {
		result += suffix
	}

	return result
}

// InputBaseName strips the directory and extension of an input path:
// "data/foreign_names.csv" -> "foreign_names".
func InputBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// =============================================================================
// ERROR LOGGING
// =============================================================================

// ErrorLogEntry represents a failed run in the error log.
type ErrorLogEntry struct {
	Timestamp    time.Time
	FileName     string
	ErrorType    string
	ErrorMessage string
	LineNumber   int
	FieldName    string
	FieldValue   string
}

// WriteErrorLog writes error entries to a log file.
//
// PARAMETERS:
//   - entries: The error entries to write.
//   - outputDir: The directory where the log file will be created.
//
// RETURNS:
//   - The path to the created log file, empty when there was nothing to log.
//   - An error if the log could not be written.
func WriteErrorLog(entries []ErrorLogEntry, outputDir string) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	// Generate log file name.
	timestamp := time.Now().Format("20060102_150405")
	logFileName := fmt.Sprintf("error_log_%s_%s.txt", timestamp, uuid.New().String()[:8])
	logPath := filepath.Join(outputDir, logFileName)

	file, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	fmt.Fprintf(writer, "People CSV Loader - Error Log\n"+
		"Generated: %s\n"+
		"Total Errors: %d\n"+
		"================================================================================\n\n",
		time.Now().Format("2006-01-02 15:04:05"),
		len(entries))

	for i, entry := range entries {
		fmt.Fprintf(writer, "Error #%d\n"+
			"  Timestamp:      %s\n"+
			"  File:           %s\n"+
			"  Error Type:     %s\n"+
			"  Message:        %s\n",
			i+1,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.FileName,
			entry.ErrorType,
			entry.ErrorMessage)

		if entry.LineNumber > 0 {
			fmt.Fprintf(writer, "  Line Number:    %d\n", entry.LineNumber)
		}
		if entry.FieldName != "" {
			fmt.Fprintf(writer, "  Field:          %s\n", entry.FieldName)
		}
		if entry.FieldValue != "" {
			fmt.Fprintf(writer, "  Value:          %s\n", entry.FieldValue)
		}
		writer.WriteString("\n")
	}

	writer.WriteString("================================================================================\n" +
		"End of Error Log\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush error log: %w", err)
	}

	return logPath, nil
}
