// Package cmd provides the command-line interface for flowcmd.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/flowcmd/internal/config"
	"github.com/danielolaszy/flowcmd/internal/logging"
)

// Version is set at build time.
var Version = "dev"

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "flowcmd",
	Short: "flowcmd generates the git commands for a branch-per-issue workflow",
	Long: `flowcmd builds the sequence of git commands for working on an issue:
clone, checkout, pull, branch, commit and push. It derives the branch name and
commit message from the issue title and rewrites the repository location for
SSH or HTTPS.

flowcmd never runs the commands it prints.

Defaults are read from .flowcmd.yaml in the working or home directory and from
FLOWCMD_* environment variables (e.g. FLOWCMD_DEFAULTS_BASE_BRANCH=develop).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		level := logging.LogLevel(cfg.Log.Level)
		if cmd.Flags().Changed("log-level") {
			flagLevel, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return err
			}
			level = logging.LogLevel(flagLevel)
			if !level.Valid() {
				return fmt.Errorf("invalid log level %q", flagLevel)
			}
		}
		logging.SetupLogger(os.Stderr, level)

		logging.Debug("configuration loaded",
			"base_branch", cfg.Defaults.BaseBranch,
			"pull_branch", cfg.Defaults.PullBranch,
			"commit_type", cfg.Defaults.CommitType,
			"use_ssh", cfg.Defaults.UseSSH)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default is .flowcmd.yaml in the working or home directory)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(prCmd)
	rootCmd.AddCommand(sshKeysCmd)
	rootCmd.AddCommand(uiCmd)
}
