package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configWrite is where to save the effective configuration.
var configWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file, .env and
THALI_* environment variables have been applied. With --write the same
settings are saved as YAML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configWrite, "write", "", "Save the effective configuration to this file")
}

func runConfig(out io.Writer) error {
	if configWrite != "" {
		if err := appConfig.Save(configWrite); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote configuration to %s\n", configWrite)
		return nil
	}

	data, err := yaml.Marshal(appConfig)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprint(out, string(data))

	return nil
}
