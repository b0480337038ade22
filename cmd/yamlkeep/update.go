package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamlkeep/yamlkeep"
	"github.com/yamlkeep/yamlkeep/document"
	"github.com/yamlkeep/yamlkeep/logging"
	"github.com/yamlkeep/yamlkeep/updater"
	"github.com/yamlkeep/yamlkeep/versioning"
	"github.com/yamlkeep/yamlkeep/watch"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a YAML file against a defaults file",
	RunE:  updateRunE,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func updateRunE(_ *cobra.Command, _ []string) error {
	logger := logging.NewLogger(flagVerbosity, os.Stderr)

	if flagFile == "" || flagDefaults == "" {
		return errors.New("--file and --defaults are required")
	}
	separators := []rune(flagSeparator)
	if len(separators) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", flagSeparator)
	}
	separator := separators[0]

	settings := buildSettings()

	if flagDryRun {
		return dryRun(settings, separator, logger)
	}

	run := func() error {
		result, err := yamlkeep.UpdateFile(yamlkeep.Options{
			File:      flagFile,
			Defaults:  flagDefaults,
			Settings:  settings,
			Separator: separator,
		})
		if err != nil {
			return err
		}
		logger.Info("update finished",
			slog.String("file", flagFile),
			slog.String("outcome", result.Outcome.String()),
			slog.Bool("saved", result.Saved),
		)
		return nil
	}

	if err := run(); err != nil {
		return err
	}
	if !flagWatch {
		return nil
	}

	watcher, err := watch.New(flagFile, flagDefaults)
	if err != nil {
		return err
	}
	defer watcher.Close()

	logger.Info("watching for changes", slog.String("file", flagFile), slog.String("defaults", flagDefaults))
	return watcher.Run(func(path string) {
		logger.Debug("change detected", slog.String("path", path))
		if err := run(); err != nil {
			logger.Error("update failed", slog.String("error", err.Error()))
		}
	})
}

func buildSettings() *updater.Settings {
	builder := updater.NewBuilder().
		SetKeepAll(flagKeepAll).
		SetEnableDowngrading(!flagNoDowngrade).
		SetAutoSave(!flagDryRun)
	if flagVersionKey != "" {
		builder.SetVersioning(versioning.Basic(flagVersionKey))
	}
	return builder.Build()
}

// dryRun updates in memory and prints the result to stdout.
func dryRun(settings *updater.Settings, separator rune, logger *slog.Logger) error {
	user, err := document.Load(flagFile)
	if err != nil {
		return err
	}
	defaults, err := document.Load(flagDefaults)
	if err != nil {
		return err
	}

	outcome, err := updater.Update(user, defaults, settings, separator)
	if err != nil {
		return err
	}
	logger.Info("update finished", slog.String("outcome", outcome.String()), slog.Bool("saved", false))

	data, err := user.Bytes()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
