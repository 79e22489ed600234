package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/thali-combo/internal/thali"
)

// describeRow selects one menu row (1-based). Zero means every row.
var describeRow int

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print a one-line description of each thali",
	Long: `Print one line per menu entry:

  RAJASTHANI THALI (Veg) - Items: dal, churma - Rs.250.00

An entry that is not a well-formed thali prints an empty line; run
'thali validate' to see why.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDescribe(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().IntVar(&describeRow, "row", 0, "Describe only this menu row (1-based)")
}

func runDescribe(out io.Writer) error {
	m, err := loadMenu()
	if err != nil {
		return err
	}

	if describeRow != 0 {
		if describeRow < 0 || describeRow > m.Len() {
			return fmt.Errorf("row %d is out of range (menu has %d entries)", describeRow, m.Len())
		}
		fmt.Fprintln(out, thali.Describe(m.Entries[describeRow-1]))
		return nil
	}

	for i, entry := range m.Entries {
		line := thali.Describe(entry)
		if line == "" {
			logger.Warn("entry_not_described", slog.Int("row", i+1))
		}
		fmt.Fprintln(out, line)
	}

	return nil
}
