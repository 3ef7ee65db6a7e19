package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mindgrid/editor"
	"mindgrid/graph"
	"mindgrid/storage"
	"mindgrid/term"
)

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the interactive editor",
		Long: "Open the interactive editor on a JSON document file, or on the\n" +
			"autosaved document when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)
	defer logger.Sync()

	store, err := storage.Open(cfg.Storage.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	ed := editor.New(cfg.Editor.HistoryCapacity)

	var filename string
	if len(args) > 0 {
		filename = args[0]
	}
	if filename != "" {
		doc, err := graph.LoadFile(filename)
		switch {
		case err == nil:
			ed.SetDocument(doc)
		case errors.Is(err, os.ErrNotExist):
			// A fresh file: start empty, the first save creates it.
			logger.Info("starting new document", zap.String("file", filename))
		default:
			return err
		}
	} else if doc, err := store.Get(storage.AutosaveSlot); err == nil {
		ed.SetDocument(doc)
	}

	title := filename
	if title == "" {
		title = "autosave"
	}
	view, err := term.New(ed, logger, term.Options{
		Title:         title,
		AutosaveEvery: cfg.Editor.AutosaveInterval,
		OnAutosave: func(doc *graph.Document) error {
			return store.Put(storage.AutosaveSlot, doc)
		},
		OnSave: func(doc *graph.Document) error {
			if filename != "" {
				return graph.SaveFile(filename, doc)
			}
			return store.Put(storage.AutosaveSlot, doc)
		},
	})
	if err != nil {
		return err
	}
	return view.Run()
}
