package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mindgrid/storage"
)

func docsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage stored documents",
	}
	cmd.AddCommand(docsListCmd(), docsRmCmd(), docsExportCmd())
	return cmd
}

func openStore() (*storage.Store, error) {
	cfg := loadConfig()
	return storage.Open(cfg.Storage.DatabasePath, nil)
}

func docsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				subtle.Println("no stored documents")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%-20s %s\n", e.Name, subtle.Sprint(e.UpdatedAt.Local().Format("2006-01-02 15:04:05")))
			}
			return nil
		},
	}
}

func docsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(args[0]); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					bad.Printf("no document named %q\n", args[0])
					return nil
				}
				return err
			}
			good.Printf("deleted %q\n", args[0])
			return nil
		},
	}
}

func docsExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a stored document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			data, err := store.Raw(args[0])
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					bad.Printf("no document named %q\n", args[0])
					return nil
				}
				return err
			}
			if output == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			good.Printf("exported %q to %s\n", args[0], output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
