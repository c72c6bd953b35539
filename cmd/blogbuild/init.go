// ABOUTME: Cobra command that writes a starter blogbuild.yaml.
// ABOUTME: Refuses to overwrite an existing config unless --force is given.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/2389-research/blogbuild/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default blogbuild.yaml",
	Long:  "Create a config file with the default source, output, index, and site settings.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigFile
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	cfg.SetPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", path)
	return nil
}
