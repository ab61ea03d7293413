// =============================================================================
// Sales Analytics System - Main Entry Point
// =============================================================================
//
// USAGE:
//   sales-analytics analyze     - Run the full analysis pipeline
//   sales-analytics validate    - Parse and validate the feed only
//   sales-analytics version     - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : core pipeline stages (feed, validation, analytics,
//                   enrich, report, pipeline) and supporting modules
//   - pkg/        : shared utilities
//
// =============================================================================

package main

import (
	"github.com/saak2000/sales-analytics-system/cmd"
)

func main() {
	cmd.Execute()
}
