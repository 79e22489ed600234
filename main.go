// =============================================================================
// Thali Combo - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Thali Combo CLI. It delegates command
// execution to the cmd package.
//
// USAGE:
//   thali describe          - One display line per thali
//   thali stats             - Menu summary
//   thali search QUERY      - Find thalis by name or item
//   thali receipt CUSTOMER  - Bill an order
//   thali validate          - Check the menu's thali records
//   thali export            - Write an XLSX report
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Thali operations, menu loading, validation, reports
//   - pkg/           : Shared file utilities
//   - menus/         : Sample menus
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/thali-combo/cmd"
)

func main() {
	cmd.Execute()
}
