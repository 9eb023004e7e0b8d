package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/registry"
)

var renameCmd = &cobra.Command{
	Use:   "rename <exploration.yaml> <old-name> <new-name>",
	Short: "Rename a state, rewriting every reference to it",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, oldName, newName := args[0], args[1], args[2]

		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		exp, err := domain.LoadExplorationYAML(data)
		if err != nil {
			return err
		}

		ed := espalier.New(exp, registry.NewRegistry(),
			espalier.WithLogger(newLogger(cmd)))
		if err := ed.RenameState(oldName, newName); err != nil {
			return err
		}

		out, err := exp.ToYAML()
		if err != nil {
			return err
		}
		if err := os.WriteFile(file, out, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", file, err)
		}

		fmt.Printf("Renamed %q to %q\n", oldName, newName)
		return nil
	},
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
