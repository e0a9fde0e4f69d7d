package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blobrun/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in config. Save it as ~/.blobrun/configs/blobrun.yaml
or ./configs/blobrun.yaml to change it, or pass any file with --config.

Example:
  blobrun config > ~/.blobrun/configs/blobrun.yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML("blobrun"))
		return err
	},
}
