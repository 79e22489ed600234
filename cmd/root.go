// =============================================================================
// Thali Combo - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every other command
// hangs off it:
//
//   rootCmd (thali)
//   ├── describeCmd (thali describe)
//   ├── statsCmd    (thali stats)
//   ├── searchCmd   (thali search QUERY)
//   ├── receiptCmd  (thali receipt CUSTOMER)
//   ├── validateCmd (thali validate)
//   ├── exportCmd   (thali export)
//   ├── configCmd   (thali config)
//   └── versionCmd  (thali version)
//
// The root command owns the global flags, loads the configuration and builds
// the logger before any subcommand runs.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/thali-combo/internal/config"
	"github.com/ginjaninja78/thali-combo/internal/logging"
	"github.com/ginjaninja78/thali-combo/internal/menu"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// menuPath overrides the configured menu file.
var menuPath string

// appConfig and logger are set by PersistentPreRunE.
var (
	appConfig *config.MainConfig
	logger    = logging.Discard()
)

var errNoMenu = errors.New("no menu file: pass --menu or set menu_file in the config")

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "thali",
	Short: "Thali Combo - describe, summarize, search and bill thali menus",
	Long: `Thali Combo reads a thali menu (YAML, JSON, TOML, CSV or XLSX) and runs
the menu helpers over it.

Each thali has exactly four fields: name, items, price and isVeg.

Example Usage:
  thali describe --menu menus/thalis.yaml
  thali stats --json
  thali search dal
  thali receipt "Ramesh" --pick "Rajasthani Thali,Punjabi Thali" --save
  thali validate`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd)
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"thali.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)

	rootCmd.PersistentFlags().StringVarP(
		&menuPath,
		"menu",
		"m",
		"",
		"Menu file to read (overrides menu_file in the config)",
	)
}

// initApp loads the configuration and builds the logger.
func initApp(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg

	level := logging.LevelFromString(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	logger = logging.New(cmd.ErrOrStderr(), level, cfg.LogFormat)

	logger.Debug("config_loaded", slog.String("path", cfgFile), slog.String("command", cmd.Name()))
	return nil
}

// loadMenu reads the menu chosen by --menu or the config.
func loadMenu() (*menu.Menu, error) {
	path := menuPath
	if path == "" {
		path = appConfig.MenuFile
	}
	if path == "" {
		return nil, errNoMenu
	}

	m, err := menu.Load(path, menu.OptionsFromConfig(appConfig))
	if err != nil {
		return nil, err
	}

	logger.Debug("menu_loaded",
		slog.String("path", path),
		slog.String("format", m.Format),
		slog.Int("entries", m.Len()),
	)
	return m, nil
}
