package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier/pkg/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate <exploration.yaml>",
	Short: "Check the referential integrity of an exploration document",
	Long: `Validate loads an exploration document and verifies that the initial state
exists, every rule destination resolves to a state, and every gadget sits in
a known panel and is visible only in existing states.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		exp, err := domain.LoadExplorationYAML(data)
		if err != nil {
			return err
		}
		if err := exp.Validate(); err != nil {
			return err
		}

		fmt.Printf("OK: %d states, %d gadgets\n",
			len(exp.StateNames()), len(exp.Gadgets().Names()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
