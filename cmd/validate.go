package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/thali-combo/internal/validation"
)

// validateStrict treats warnings as errors.
var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every menu entry against the thali shape",
	Long: `Check that every entry has exactly the fields name, items, price and isVeg
with the right types. Empty names and negative prices are reported as
warnings; --strict makes them fail validation too.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as errors")
}

func runValidate(out io.Writer) error {
	m, err := loadMenu()
	if err != nil {
		return err
	}

	result := validation.ValidateWithOptions(m.Entries, validation.ValidationOptions{
		TreatWarningsAsErrors: validateStrict,
	})

	logger.Debug("validation_done",
		slog.Int("records", result.RecordsValidated),
		slog.Int("errors", result.ErrorCount),
		slog.Int("warnings", result.WarningCount),
	)

	if len(result.Errors) == 0 {
		fmt.Fprintf(out, "All %d thali(s) are valid.\n", result.RecordsValidated)
		return nil
	}

	fmt.Fprintln(out, validation.FormatErrors(result.Errors))

	if !result.IsValid {
		return fmt.Errorf("%d of %d thali(s) failed validation", len(result.InvalidRows), result.RecordsValidated)
	}

	return nil
}
