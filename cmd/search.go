package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/thali-combo/internal/thali"
)

// searchJSON prints the matching menu entries, as found, as a JSON array.
var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Find thalis by name or item",
	Long: `Find thalis whose name contains QUERY (ignoring case) or that have an
item containing QUERY in lowercase.

Item text is compared as written, so an item spelled "Paneer Tikka" is not
found by "paneer". Search by thali name for those.

Matches are printed the way describe prints them, so an entry that is not a
well-formed thali shows as an empty line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print matches as JSON")
}

func runSearch(out io.Writer, query string) error {
	m, err := loadMenu()
	if err != nil {
		return err
	}

	matches := thali.SearchOf(m.Entries, query)
	logger.Debug("search_done", slog.String("query", query), slog.Int("matches", len(matches)))

	if searchJSON {
		return writeJSON(out, matches)
	}

	for _, entry := range matches {
		fmt.Fprintln(out, thali.Describe(entry))
	}

	return nil
}
