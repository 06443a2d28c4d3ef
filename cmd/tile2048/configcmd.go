package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration. Save it to
~/.tile2048/config.yaml or ./configs/tile2048.yaml and edit it to change the
window, text and colours.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeDefaultConfig(cmd.OutOrStdout())
	},
}

// writeDefaultConfig writes the embedded default configuration file.
func writeDefaultConfig(w io.Writer) error {
	_, err := w.Write(config.DefaultYAML())
	return err
}
