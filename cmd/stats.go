package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/thali-combo/internal/thali"
)

// statsJSON prints the summary as JSON instead of a table.
var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the menu: counts, average, cheapest and costliest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the summary as JSON")
}

func runStats(out io.Writer) error {
	m, err := loadMenu()
	if err != nil {
		return err
	}

	summary := thali.StatsOf(m.Entries)
	if summary == nil {
		fmt.Fprintln(out, "No thalis to summarize.")
		return nil
	}

	if statsJSON {
		return writeJSON(out, summary)
	}

	fmt.Fprintf(out, "Total thalis:   %d\n", summary.TotalThalis)
	fmt.Fprintf(out, "Veg:            %d\n", summary.VegCount)
	fmt.Fprintf(out, "Non-veg:        %d\n", summary.NonVegCount)
	fmt.Fprintf(out, "Average price:  Rs.%s\n", summary.AvgPrice)
	fmt.Fprintf(out, "Cheapest:       Rs.%s\n", thali.FormatNumber(summary.Cheapest))
	fmt.Fprintf(out, "Costliest:      Rs.%s\n", thali.FormatNumber(summary.Costliest))
	fmt.Fprintf(out, "Names:          %s\n", strings.Join(summary.Names, ", "))

	return nil
}

// writeJSON prints v as indented JSON. NaN prices cannot be encoded and come
// back as an error.
func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
