package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Flags shared across commands.
var (
	flagFile        string
	flagDefaults    string
	flagVersionKey  string
	flagSeparator   string
	flagKeepAll     bool
	flagNoDowngrade bool
	flagDryRun      bool
	flagWatch       bool
	flagVerbosity   string
)

// rootCmd is the top-level command for yamlkeep.
var rootCmd = &cobra.Command{
	Use:   "yamlkeep",
	Short: "Keep YAML configuration files up to date against newer defaults",
	Long: "yamlkeep updates a YAML configuration file against a newer defaults file:\n" +
		"it replays recorded key relocations and value transformations between the\n" +
		"two versions, merges in newly introduced keys, and preserves user comments\n" +
		"and key order.",
	// Default action is update.
	RunE: updateRunE,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "path to the user's YAML file")
	rootCmd.PersistentFlags().StringVarP(&flagDefaults, "defaults", "d", "", "path to the defaults YAML file")
	rootCmd.PersistentFlags().StringVar(&flagVersionKey, "version-key", "config-version", "top-level key holding the integer version id (empty disables versioning)")
	rootCmd.PersistentFlags().StringVar(&flagSeparator, "separator", ".", "route separator for nested keys")
	rootCmd.PersistentFlags().BoolVar(&flagKeepAll, "keep-all", false, "retain user keys absent from the defaults")
	rootCmd.PersistentFlags().BoolVar(&flagNoDowngrade, "no-downgrade", false, "fail when the file's version is newer than the defaults'")
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "print the updated document instead of saving it")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "re-run the update whenever either file changes")
	rootCmd.PersistentFlags().StringVarP(&flagVerbosity, "verbosity", "v", "info", "log verbosity: quiet, info, debug")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
