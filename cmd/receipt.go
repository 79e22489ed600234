package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/thali-combo/internal/report"
	"github.com/ginjaninja78/thali-combo/internal/thali"
	"github.com/ginjaninja78/thali-combo/pkg/utils"
)

var (
	// receiptPick is a comma-separated list of thali names to bill. Empty
	// bills the whole menu.
	receiptPick string

	// receiptSave also writes the receipt into the output directory.
	receiptSave bool
)

var errEmptyOrder = errors.New("nothing to bill: the order is empty")

var receiptCmd = &cobra.Command{
	Use:   "receipt CUSTOMER",
	Short: "Print a receipt for a customer's order",
	Long: `Print a plain-text receipt for CUSTOMER.

The order is the whole menu, or the thalis named with --pick. With --save the
receipt is also written to the output directory using receipt_name_format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReceipt(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(receiptCmd)

	receiptCmd.Flags().StringVar(&receiptPick, "pick", "", "Comma-separated thali names to bill")
	receiptCmd.Flags().BoolVar(&receiptSave, "save", false, "Save the receipt to the output directory")
}

func runReceipt(out io.Writer, customer string) error {
	m, err := loadMenu()
	if err != nil {
		return err
	}

	var receipt string
	if receiptPick != "" {
		order, err := m.Pick(strings.Split(receiptPick, ","))
		if err != nil {
			return err
		}
		receipt = thali.Receipt(customer, order)
	} else {
		receipt = thali.ReceiptOf(customer, m.Entries)
	}

	if receipt == "" {
		return errEmptyOrder
	}

	fmt.Fprintln(out, receipt)

	if !receiptSave {
		return nil
	}

	fm := utils.NewFileManager(appConfig.OutputDir)
	path, err := report.SaveReceipt(fm, appConfig.ReceiptNameFormat, customer, receipt)
	if err != nil {
		return err
	}

	logger.Info("receipt_saved", slog.String("customer", customer), slog.String("path", path))
	fmt.Fprintf(out, "\nSaved receipt to %s\n", path)

	return nil
}
