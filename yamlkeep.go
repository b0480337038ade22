// Package yamlkeep provides a file-level API for keeping YAML configuration
// documents up to date against newer defaults. It loads both documents,
// replays recorded version steps, merges, and optionally saves the result.
//
// Basic usage:
//
//	result, err := yamlkeep.UpdateFile(yamlkeep.Options{
//	    File:     "config.yml",
//	    Defaults: "defaults.yml",
//	    Settings: updater.NewBuilder().SetVersioning(versioning.Basic("config-version")).Build(),
//	})
//	fmt.Println(result.Outcome) // "Updated"
package yamlkeep

import (
	"errors"

	"github.com/yamlkeep/yamlkeep/document"
	"github.com/yamlkeep/yamlkeep/updater"
)

// Options configures a file-level update.
type Options struct {
	// File is the path to the user's document (required).
	File string

	// Defaults is the path to the defaults document (required).
	Defaults string

	// Settings configures versioning, merge rules and saving behavior.
	// Nil means updater.Default().
	Settings *updater.Settings

	// Separator splits string-based routes. Zero means '.'.
	Separator rune
}

// Result holds the outcome of a file-level update.
type Result struct {
	// Outcome reports what the versioned pipeline did.
	Outcome updater.Outcome

	// Document is the updated user document, already saved when Saved is true.
	Document *document.Document

	// Saved reports whether the document was written back to File.
	Saved bool
}

// UpdateFile loads the user and defaults documents, updates the user
// document in place, and saves it back when auto-save is enabled.
func UpdateFile(opts Options) (*Result, error) {
	if opts.File == "" || opts.Defaults == "" {
		return nil, errors.New("file and defaults paths are required")
	}

	settings := opts.Settings
	if settings == nil {
		settings = updater.Default()
	}

	user, err := document.Load(opts.File)
	if err != nil {
		return nil, err
	}
	defaults, err := document.Load(opts.Defaults)
	if err != nil {
		return nil, err
	}

	outcome, err := updater.Update(user, defaults, settings, opts.Separator)
	if err != nil {
		return nil, err
	}

	result := &Result{Outcome: outcome, Document: user}
	if settings.AutoSave() {
		if err := user.Save(); err != nil {
			return nil, err
		}
		result.Saved = true
	}
	return result, nil
}
