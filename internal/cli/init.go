package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantacode/qoc/internal/config"
)

const defaultConfigPath = ".qoc.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter weight configuration",
		Long: `Write a .qoc.yaml file with the built-in weight presets.

Edit the file to tune how heavily each syntax node kind counts toward the
QOC metric. Kinds not listed weigh 1.0; a weight of 0 excludes a kind
without hiding its children.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if cfgFile != "" {
				path = cfgFile
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.WriteConfig(config.Default(), path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
