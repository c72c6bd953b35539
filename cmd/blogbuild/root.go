// ABOUTME: Root Cobra command and global flags for the blogbuild CLI.
// ABOUTME: Loads config and the site store, then builds all posts when run without a subcommand.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2389-research/blogbuild/internal/builder"
	"github.com/2389-research/blogbuild/internal/config"
	"github.com/2389-research/blogbuild/internal/logging"
	"github.com/2389-research/blogbuild/internal/render"
	"github.com/2389-research/blogbuild/internal/storage"
)

var globalConfig *config.Config
var globalStore storage.SiteStore
var globalLogger *logrus.Logger

// Flags
var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "blogbuild",
	Short: "Build HTML pages and posts.json from markdown posts",
	Long: `Convert markdown posts in _posts/ into HTML pages under posts/
and write a posts.json index, newest post first.

Paths are relative to the current directory unless blogbuild.yaml
says otherwise.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "init" {
			return nil
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg

		level := cfg.Log.Level
		if logLevel != "" {
			level = logLevel
		}
		logger, err := logging.New(level, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		globalLogger = logger

		sourceDir, err := cfg.GetSourceDir()
		if err != nil {
			return fmt.Errorf("failed to resolve source dir: %w", err)
		}
		outputDir, err := cfg.GetOutputDir()
		if err != nil {
			return fmt.Errorf("failed to resolve output dir: %w", err)
		}
		indexPath, err := cfg.GetIndexPath()
		if err != nil {
			return fmt.Errorf("failed to resolve index path: %w", err)
		}
		store, err := storage.NewDirStore(sourceDir, outputDir, indexPath)
		if err != nil {
			return fmt.Errorf("failed to open site store: %w", err)
		}
		globalStore = store

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if globalStore != nil {
			_ = globalStore.Close()
			globalStore = nil
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is ./blogbuild.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func siteInfo(cfg *config.Config) render.SiteInfo {
	return render.SiteInfo{
		Author:         cfg.Site.Author,
		Year:           cfg.Site.Year,
		EscapeMetadata: cfg.Site.EscapeMetadata,
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	b, err := builder.New(globalStore,
		builder.WithOutput(cmd.OutOrStdout()),
		builder.WithLogger(globalLogger),
		builder.WithSite(siteInfo(globalConfig)),
	)
	if err != nil {
		return err
	}

	if _, err := b.Build(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}
