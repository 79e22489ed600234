// =============================================================================
// Thali Combo - Configuration Module
// =============================================================================
//
// This module loads the application configuration. Values are resolved in
// this order (later wins):
//
//   1. Built-in defaults
//   2. The config file (thali.yaml by default, any format viper reads)
//   3. A .env file next to the config file
//   4. THALI_* environment variables (e.g. THALI_OUTPUT_DIR,
//      THALI_CSV_SETTINGS_ITEM_SEPARATOR)
//
// A missing config file is not an error; defaults are used instead.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "THALI"

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// MenuFile is the menu loaded when --menu is not given.
	// Supported extensions: .yaml, .yml, .json, .toml, .csv, .xlsx
	MenuFile string `yaml:"menu_file" mapstructure:"menu_file"`

	// OutputDir receives saved receipts and exported workbooks.
	// Default: "./output"
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir"`

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`

	// LogFormat is "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format" mapstructure:"log_format"`

	// ReceiptNameFormat names saved receipt files.
	// Placeholders: {customer}, {uuid}, {timestamp}, {date}, {time}
	// Default: "receipt_{customer}_{timestamp}_{uuid}.txt"
	ReceiptNameFormat string `yaml:"receipt_name_format" mapstructure:"receipt_name_format"`

	// CSVSettings controls how .csv menus are read.
	CSVSettings CSVSettings `yaml:"csv_settings" mapstructure:"csv_settings"`

	// XLSXSettings controls how .xlsx menus are read.
	XLSXSettings XLSXSettings `yaml:"xlsx_settings" mapstructure:"xlsx_settings"`
}

// CSVSettings contains settings for parsing CSV menus.
type CSVSettings struct {
	// Delimiter separates columns. Default: ","
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`

	// ItemSeparator splits the items cell into dishes. Default: ";"
	ItemSeparator string `yaml:"item_separator" mapstructure:"item_separator"`
}

// XLSXSettings contains settings for reading XLSX menus.
type XLSXSettings struct {
	// Sheet is the worksheet holding the menu. Empty means the first sheet.
	Sheet string `yaml:"sheet" mapstructure:"sheet"`
}

// Default values.
const (
	DefaultOutputDir         = "./output"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultReceiptNameFormat = "receipt_{customer}_{timestamp}_{uuid}.txt"
	DefaultDelimiter         = ","
	DefaultItemSeparator     = ";"
)

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from configPath. An empty path or a path that
// does not exist yields the defaults (still subject to env overrides).
func Load(configPath string) (*MainConfig, error) {
	if err := loadDotEnv(configPath); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config MainConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file is present.
func Default() *MainConfig {
	config := &MainConfig{}
	applyDefaults(config)
	return config
}

// Save writes c as YAML to path.
func (c *MainConfig) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// loadDotEnv loads the .env file that sits beside the config file, if any.
// Variables already present in the environment are left alone.
func loadDotEnv(configPath string) error {
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if _, err := os.Stat(envPath); err != nil {
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("failed to load %s: %w", envPath, err)
	}
	return nil
}

// setDefaults registers every key with viper. Registering is also what makes
// AutomaticEnv see the key during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("menu_file", "")
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("receipt_name_format", DefaultReceiptNameFormat)
	v.SetDefault("csv_settings.delimiter", DefaultDelimiter)
	v.SetDefault("csv_settings.item_separator", DefaultItemSeparator)
	v.SetDefault("xlsx_settings.sheet", "")
}

// applyDefaults fills values a config file set to empty.
func applyDefaults(config *MainConfig) {
	if config.OutputDir == "" {
		config.OutputDir = DefaultOutputDir
	}
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.LogFormat == "" {
		config.LogFormat = DefaultLogFormat
	}
	if config.ReceiptNameFormat == "" {
		config.ReceiptNameFormat = DefaultReceiptNameFormat
	}
	if config.CSVSettings.Delimiter == "" {
		config.CSVSettings.Delimiter = DefaultDelimiter
	}
	if config.CSVSettings.ItemSeparator == "" {
		config.CSVSettings.ItemSeparator = DefaultItemSeparator
	}
}

func validate(config *MainConfig) error {
	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	switch strings.ToLower(config.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", config.LogFormat)
	}

	switch config.CSVSettings.Delimiter {
	case `\t`, "tab":
	default:
		if utf8.RuneCountInString(config.CSVSettings.Delimiter) != 1 {
			return fmt.Errorf("csv_settings.delimiter must be a single character or \"tab\", got %q", config.CSVSettings.Delimiter)
		}
	}
	if config.CSVSettings.ItemSeparator == config.CSVSettings.Delimiter {
		return errors.New("csv_settings.item_separator must differ from the delimiter")
	}

	return nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
