package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier"
	espahttp "github.com/aretw0/espalier/pkg/adapters/http"
	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/registry"
)

var serveCmd = &cobra.Command{
	Use:   "serve <exploration.yaml>",
	Short: "Serve the editing API for an exploration document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

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

		logger := newLogger(cmd)
		ed := espalier.New(exp, registry.NewRegistry(),
			espalier.WithLogger(logger),
			espalier.WithStore(memory.NewStore(), args[0]),
		)

		logger.Info("serving editing API", "addr", addr, "document", args[0])
		return http.ListenAndServe(addr, espahttp.NewHandler(ed))
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}
