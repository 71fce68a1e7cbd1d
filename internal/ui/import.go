package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [shifts.json]",
		Short: "Import shifts into the database",
		Long: `Validate a JSON array of shifts and store it in the database.

Shifts with an ID that already exists replace the stored shift. The whole
file is rejected if any record is invalid.

Example:
  payweek import dataset.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts, err := readShifts(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			if err := a.ensureStore(); err != nil {
				return err
			}
			if err := a.store.SaveShifts(context.Background(), shifts); err != nil {
				return fmt.Errorf("saving shifts: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d shifts from %s\n", len(shifts), args[0])
			return nil
		},
	}

	return cmd
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
