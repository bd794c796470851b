// =============================================================================
// People CSV Loader - Main Entry Point
// =============================================================================
//
// This is the main entry point for the People CSV Loader CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   people-loader load [file]      - Print the records of a people file
//   people-loader validate [file]  - Check a people file
//   people-loader process [files]  - Export several files concurrently
//   people-loader version          - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Loader, normalizers, registry and exporters
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/people-csv-loader/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
