package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/vomnibar/internal/config"
)

var schemaOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), GetApp().ConfigManager.ConfigFile())
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of the config file, for editor completion and
validation. With --output the schema is written to a file instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaOutput != "" {
			return config.WriteSchemaFile(schemaOutput)
		}
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd)

	configSchemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to this file")
}
