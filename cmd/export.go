package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/thali-combo/internal/report"
	"github.com/ginjaninja78/thali-combo/pkg/utils"
)

// defaultExportName is used inside the output directory when --out is unset.
const defaultExportName = "menu_report.xlsx"

// exportOut is the export path; its extension picks the format.
var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the menu and its summary to an XLSX workbook or XML file",
	Long: `Write every menu entry and the menu summary to a file. The format follows
the extension of --out: .xml writes an XML document, anything else an XLSX
workbook with "Menu" and "Stats" sheets.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Workbook path (default: <output_dir>/"+defaultExportName+")")
}

func runExport(out io.Writer) error {
	m, err := loadMenu()
	if err != nil {
		return err
	}

	path := exportOut
	if path == "" {
		path = filepath.Join(appConfig.OutputDir, defaultExportName)
	}

	fm := utils.NewFileManager(filepath.Dir(path))
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	replaced := utils.FileExists(path)

	if strings.EqualFold(filepath.Ext(path), ".xml") {
		var buf bytes.Buffer
		if err := report.WriteXML(&buf, m.Entries, report.DefaultXMLOptions()); err != nil {
			return err
		}
		if path, err = fm.WriteOutputFile(filepath.Base(path), buf.Bytes()); err != nil {
			return err
		}
	} else if err := report.WriteWorkbook(path, m.Entries); err != nil {
		return err
	}

	logger.Info("menu_exported", slog.String("path", path), slog.Int("entries", m.Len()), slog.Bool("replaced", replaced))
	fmt.Fprintf(out, "Exported %d thali(s) to %s\n", m.Len(), path)
	if replaced {
		fmt.Fprintln(out, "An existing file at that path was replaced.")
	}

	return nil
}
